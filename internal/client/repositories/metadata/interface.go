// Package metadata is a small key/value store in the local database. The CLI
// keeps its session and bookkeeping values here.
package metadata

import (
	"context"
)

type Repository interface {
	// Get returns (nil, nil) for a missing key.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
