package recipes

import (
	"database/sql/driver"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"modernc.org/sqlite"
)

// foldFunc is the SQL name of fold, registered on every sqlite connection.
const foldFunc = "recipe_fold"

func init() {
	if err := sqlite.RegisterDeterministicScalarFunction(foldFunc, 1, foldValue); err != nil {
		panic(err)
	}
}

// fold lowercases s and strips combining marks, so "CRÈME" and "creme"
// compare equal. SQLite's own lower() only handles ASCII.
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

func foldValue(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	switch v := args[0].(type) {
	case nil:
		return nil, nil
	case string:
		return fold(v), nil
	case []byte:
		return fold(string(v)), nil
	default:
		return v, nil
	}
}
