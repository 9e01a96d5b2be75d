package ratings

import (
	"context"

	"github.com/dmitrijs2005/recipeplanner/internal/server/models"
)

type Repository interface {
	// Upsert stores one rating per (recipe, user); the last write wins.
	// ID, CreatedAt and UserName are filled from the stored row.
	Upsert(ctx context.Context, r *models.Rating) (*models.Rating, error)
	// ListByRecipe returns the ratings of a recipe, newest first.
	ListByRecipe(ctx context.Context, recipeID int64) ([]*models.Rating, error)
	Average(ctx context.Context, recipeID int64) (models.AverageRating, error)
}
