package favorites

import (
	"context"

	"github.com/dmitrijs2005/recipeplanner/internal/server/models"
)

// Repository stores the favorite recipe ids of each user. Add and Remove are
// idempotent.
type Repository interface {
	Add(ctx context.Context, userID string, recipeID int64) error
	Remove(ctx context.Context, userID string, recipeID int64) error
	List(ctx context.Context, userID string) ([]*models.Favorite, error)
}
