package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/recipeplanner/internal/common"
	"github.com/dmitrijs2005/recipeplanner/internal/server/models"
	"github.com/dmitrijs2005/recipeplanner/internal/validation"
)

// AddMealPlan inserts an entry or overwrites the caller's entry with the
// same id. An empty id is assigned by the server; a given one must be a UUID.
func (s *SocialService) AddMealPlan(ctx context.Context, userID string, p *models.MealPlan) (*models.MealPlan, error) {
	if err := validRecipeID(p.RecipeID); err != nil {
		return nil, err
	}
	if p.Date.IsZero() {
		return nil, validation.NewError("Date", "date is required")
	}
	if err := s.validator.MealType(p.MealType); err != nil {
		return nil, err
	}
	if p.ID != "" && !isUUID(p.ID) {
		return nil, validation.NewError("ID", "id must be a UUID")
	}

	entry := *p
	entry.UserID = userID
	if entry.ID == "" {
		entry.ID = s.newID()
	}
	y, m, d := entry.Date.Date()
	entry.Date = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	out, err := s.repomanager.MealPlans(s.db).Upsert(ctx, &entry)
	if err != nil {
		return nil, fmt.Errorf("error saving meal plan: %w", err)
	}
	return out, nil
}

// ListMealPlans returns entries with from <= date <= to ordered by date and
// meal slot. A zero bound is open.
func (s *SocialService) ListMealPlans(ctx context.Context, userID string, from, to time.Time) ([]*models.MealPlan, error) {
	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		return nil, validation.NewError("To", "end date must not be before start date")
	}
	return s.repomanager.MealPlans(s.db).List(ctx, userID, from, to)
}

func (s *SocialService) DeleteMealPlan(ctx context.Context, userID, id string) error {
	if !isUUID(id) {
		return common.ErrorNotFound
	}
	return s.repomanager.MealPlans(s.db).Delete(ctx, userID, id)
}
