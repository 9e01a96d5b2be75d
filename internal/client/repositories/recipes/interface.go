package recipes

import (
	"context"
	"time"

	"github.com/dmitrijs2005/recipeplanner/internal/client/models"
)

// Repository is the local recipe cache.
type Repository interface {
	// Upsert inserts or overwrites the given recipes in one transaction.
	Upsert(ctx context.Context, recipes []models.Recipe) error

	// Query returns cached recipes whose title contains substring.
	Query(ctx context.Context, substring string, offset, limit int) ([]models.Recipe, error)

	// GetByID returns common.ErrorNotFound when the recipe is not cached.
	GetByID(ctx context.Context, id int64) (models.Recipe, error)

	// SetFavorite is idempotent and does nothing for unknown ids.
	SetFavorite(ctx context.Context, id int64, favorite bool) error

	ListFavorites(ctx context.Context) ([]models.Recipe, error)

	// FavoriteIDs reports which of ids are cached as favorites.
	FavoriteIDs(ctx context.Context, ids []int64) (map[int64]bool, error)

	// PruneOlderThan removes non-favorite rows older than days and returns
	// the number of rows removed.
	PruneOlderThan(ctx context.Context, days int) (int64, error)

	Stats(ctx context.Context, maxAge time.Duration) (Stats, error)
}

// Stats summarizes the cache contents.
type Stats struct {
	Total     int
	Favorites int
	Stale     int
}
