package comments

import (
	"context"

	"github.com/dmitrijs2005/recipeplanner/internal/server/models"
)

type Repository interface {
	// Create stores c and fills in CreatedAt and the author's UserName.
	Create(ctx context.Context, c *models.Comment) (*models.Comment, error)
	Get(ctx context.Context, id string) (*models.Comment, error)
	// ListByRecipe returns the comments of a recipe, newest first.
	ListByRecipe(ctx context.Context, recipeID int64) ([]*models.Comment, error)
	Delete(ctx context.Context, id string) error
}
