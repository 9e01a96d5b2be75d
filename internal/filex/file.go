// Package filex contains filesystem helpers for locating client data files.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnsureDataDir creates dir (and its parents) with owner/group permissions
// and returns its absolute path. A relative dir is resolved against the
// working directory.
func EnsureDataDir(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", dir, err)
	}
	if err := os.MkdirAll(abs, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", abs, err)
	}
	return abs, nil
}

// PrepareSQLiteDSN makes sure the directory of a file-backed SQLite DSN
// exists. In-memory and URI DSNs are returned unchanged.
func PrepareSQLiteDSN(dsn string) (string, error) {
	if dsn == "" || dsn == ":memory:" || strings.HasPrefix(dsn, "file:") {
		return dsn, nil
	}
	dir := filepath.Dir(dsn)
	if dir == "." {
		return dsn, nil
	}
	if _, err := EnsureDataDir(dir); err != nil {
		return "", err
	}
	return dsn, nil
}
