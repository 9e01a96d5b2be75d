package services

import (
	"context"

	"github.com/dmitrijs2005/recipeplanner/internal/client/client"
	"github.com/dmitrijs2005/recipeplanner/internal/client/models"
	"github.com/dmitrijs2005/recipeplanner/internal/validation"
)

type RatingService interface {
	// Rate creates or replaces the user's rating. A blank review is dropped.
	Rate(ctx context.Context, userID string, recipeID int64, score int, review *string) (models.Rating, error)
	List(ctx context.Context, userID string, recipeID int64) ([]models.Rating, error)
	Average(ctx context.Context, userID string, recipeID int64) (models.AverageRating, error)
}

type ratingService struct {
	client   client.RatingsClient
	validate *validation.Validator
}

func NewRatingService(c client.RatingsClient) RatingService {
	return &ratingService{client: c, validate: validation.New()}
}

func (s *ratingService) Rate(ctx context.Context, userID string, recipeID int64, score int, review *string) (models.Rating, error) {
	if userID == "" {
		return models.Rating{}, ErrAuthRequired
	}
	if err := s.validate.Rating(score); err != nil {
		return models.Rating{}, err
	}
	review, err := s.validate.Review(review)
	if err != nil {
		return models.Rating{}, err
	}
	return s.client.SetRating(ctx, recipeID, score, review)
}

func (s *ratingService) List(ctx context.Context, userID string, recipeID int64) ([]models.Rating, error) {
	if userID == "" {
		return nil, ErrAuthRequired
	}
	return s.client.ListRatings(ctx, recipeID)
}

func (s *ratingService) Average(ctx context.Context, userID string, recipeID int64) (models.AverageRating, error) {
	if userID == "" {
		return models.AverageRating{}, ErrAuthRequired
	}
	return s.client.AverageRating(ctx, recipeID)
}
