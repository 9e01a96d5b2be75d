package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/recipeplanner/internal/server/models"
)

// SetRating stores the user's single rating of a recipe, replacing any
// earlier one. A blank review is stored as none.
func (s *SocialService) SetRating(ctx context.Context, userID string, recipeID int64, score int, review *string) (*models.Rating, error) {
	if err := validRecipeID(recipeID); err != nil {
		return nil, err
	}
	if err := s.validator.Rating(score); err != nil {
		return nil, err
	}
	review, err := s.validator.Review(review)
	if err != nil {
		return nil, err
	}

	r, err := s.repomanager.Ratings(s.db).Upsert(ctx, &models.Rating{
		ID:       userID,
		RecipeID: recipeID,
		UserID:   userID,
		Score:    score,
		Review:   review,
	})
	if err != nil {
		return nil, fmt.Errorf("error saving rating: %w", err)
	}
	return r, nil
}

func (s *SocialService) ListRatings(ctx context.Context, recipeID int64) ([]*models.Rating, error) {
	return s.repomanager.Ratings(s.db).ListByRecipe(ctx, recipeID)
}

// AverageRating is {0, 0} for an unrated recipe.
func (s *SocialService) AverageRating(ctx context.Context, recipeID int64) (models.AverageRating, error) {
	return s.repomanager.Ratings(s.db).Average(ctx, recipeID)
}
