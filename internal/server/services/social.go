package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/recipeplanner/internal/server/hub"
	"github.com/dmitrijs2005/recipeplanner/internal/server/models"
	"github.com/dmitrijs2005/recipeplanner/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/recipeplanner/internal/validation"
	"github.com/google/uuid"
)

// Recently viewed page size bounds.
const (
	DefaultRecentLimit = 10
	MaxRecentLimit     = 50
)

// SocialService owns the per-user and shared recipe data: favorites,
// comments, ratings, meal plans and the recently viewed list. Recipes
// themselves live in the public catalogue and are referenced by id only.
type SocialService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	validator   *validation.Validator
	hub         *hub.Hub
	newID       func() string
}

func NewSocialService(db *sql.DB, m repomanager.RepositoryManager, v *validation.Validator, h *hub.Hub) *SocialService {
	return &SocialService{
		db:          db,
		repomanager: m,
		validator:   v,
		hub:         h,
		newID:       func() string { return uuid.NewString() },
	}
}

func validRecipeID(recipeID int64) error {
	if recipeID <= 0 {
		return validation.NewError("RecipeID", "recipe id must be positive")
	}
	return nil
}

// isUUID reports whether id can be stored in a UUID column.
func isUUID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// AddFavorite is idempotent.
func (s *SocialService) AddFavorite(ctx context.Context, userID string, recipeID int64) error {
	if err := validRecipeID(recipeID); err != nil {
		return err
	}
	if err := s.repomanager.Favorites(s.db).Add(ctx, userID, recipeID); err != nil {
		return fmt.Errorf("error adding favorite: %w", err)
	}
	return nil
}

// RemoveFavorite is idempotent.
func (s *SocialService) RemoveFavorite(ctx context.Context, userID string, recipeID int64) error {
	if err := s.repomanager.Favorites(s.db).Remove(ctx, userID, recipeID); err != nil {
		return fmt.Errorf("error removing favorite: %w", err)
	}
	return nil
}

func (s *SocialService) ListFavorites(ctx context.Context, userID string) ([]*models.Favorite, error) {
	return s.repomanager.Favorites(s.db).List(ctx, userID)
}

// RecordRecentlyViewed moves the recipe to the top of the user's history.
func (s *SocialService) RecordRecentlyViewed(ctx context.Context, v *models.RecentlyViewed) error {
	if err := validRecipeID(v.RecipeID); err != nil {
		return err
	}
	if err := s.repomanager.RecentViews(s.db).Record(ctx, v); err != nil {
		return fmt.Errorf("error recording view: %w", err)
	}
	return nil
}

// ListRecentlyViewed returns the newest entries first. A non-positive limit
// means DefaultRecentLimit; larger limits are capped at MaxRecentLimit.
func (s *SocialService) ListRecentlyViewed(ctx context.Context, userID string, limit int) ([]*models.RecentlyViewed, error) {
	return s.repomanager.RecentViews(s.db).List(ctx, userID, clampRecentLimit(limit))
}

func clampRecentLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultRecentLimit
	case limit > MaxRecentLimit:
		return MaxRecentLimit
	default:
		return limit
	}
}
