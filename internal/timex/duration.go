// Package timex provides time helpers for configuration files.
package timex

import (
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
)

// Duration wraps time.Duration so it can be read from JSON either as a Go
// duration string ("500ms", "3s") or as integer nanoseconds.
type Duration struct {
	time.Duration
}

// MarshalJSON encodes the duration as a string like "3s".
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts a duration string or a number of nanoseconds.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value)
		return nil
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", value, err)
		}
		d.Duration = parsed
		return nil
	case nil:
		return nil
	default:
		return errors.New("invalid duration")
	}
}

// Days returns n whole days as a time.Duration.
func Days(n int) time.Duration {
	return time.Duration(n) * 24 * time.Hour
}
