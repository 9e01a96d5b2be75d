// Package refreshtokens declares the server-side repository contract for
// the refresh tokens issued at login.
package refreshtokens

import (
	"context"
	"time"

	"github.com/dmitrijs2005/recipeplanner/internal/server/models"
)

// Repository stores opaque refresh tokens. A token is single use: it is
// deleted when rotated or revoked.
type Repository interface {
	Create(ctx context.Context, userID string, token string, expiresAt time.Time) error

	// Find returns common.ErrorNotFound when the token is absent.
	Find(ctx context.Context, token string) (*models.RefreshToken, error)

	// Delete is a no-op for an unknown token.
	Delete(ctx context.Context, token string) error

	// DeleteByUser revokes every session of userID and reports how many
	// tokens were removed.
	DeleteByUser(ctx context.Context, userID string) (int64, error)
}
