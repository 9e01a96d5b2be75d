package services

import (
	"context"

	"github.com/dmitrijs2005/recipeplanner/internal/client/client"
	"github.com/dmitrijs2005/recipeplanner/internal/client/models"
	"github.com/dmitrijs2005/recipeplanner/internal/logging"
)

const (
	defaultRecentLimit = 10
	maxRecentLimit     = 50
)

type RecentlyViewedService interface {
	// Record is best effort: failures are logged, never returned.
	Record(ctx context.Context, userID string, recipe models.Recipe)
	List(ctx context.Context, userID string, limit int) ([]models.RecentlyViewedEntry, error)
}

type recentlyViewedService struct {
	client client.RecentlyViewedClient
	log    logging.Logger
}

func NewRecentlyViewedService(c client.RecentlyViewedClient, log logging.Logger) RecentlyViewedService {
	if log == nil {
		log = logging.Nop()
	}
	return &recentlyViewedService{client: c, log: log.With("module", "recent")}
}

func (s *recentlyViewedService) Record(ctx context.Context, userID string, recipe models.Recipe) {
	if userID == "" {
		return
	}
	if err := s.client.RecordRecentlyViewed(ctx, recipe); err != nil {
		s.log.Warn(ctx, "failed to record recently viewed", "recipe_id", recipe.ID, "error", err)
	}
}

func (s *recentlyViewedService) List(ctx context.Context, userID string, limit int) ([]models.RecentlyViewedEntry, error) {
	if userID == "" {
		return nil, ErrAuthRequired
	}
	switch {
	case limit <= 0:
		limit = defaultRecentLimit
	case limit > maxRecentLimit:
		limit = maxRecentLimit
	}
	return s.client.ListRecentlyViewed(ctx, limit)
}
