package mealplans

import (
	"context"
	"time"

	"github.com/dmitrijs2005/recipeplanner/internal/server/models"
)

type Repository interface {
	// Upsert inserts p or overwrites the entry with the same id owned by the
	// same user. An id owned by someone else yields common.ErrorForbidden.
	Upsert(ctx context.Context, p *models.MealPlan) (*models.MealPlan, error)
	// List returns the user's entries between from and to inclusive, sorted
	// by date then meal slot. A zero bound is open.
	List(ctx context.Context, userID string, from, to time.Time) ([]*models.MealPlan, error)
	Delete(ctx context.Context, userID, id string) error
}
