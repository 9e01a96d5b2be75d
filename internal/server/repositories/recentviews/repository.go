package recentviews

import (
	"context"

	"github.com/dmitrijs2005/recipeplanner/internal/server/models"
)

type Repository interface {
	// Record upserts the view and moves it to now.
	Record(ctx context.Context, v *models.RecentlyViewed) error
	// List returns at most limit entries, newest first.
	List(ctx context.Context, userID string, limit int) ([]*models.RecentlyViewed, error)
}
