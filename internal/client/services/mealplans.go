package services

import (
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/dmitrijs2005/recipeplanner/internal/client/client"
	"github.com/dmitrijs2005/recipeplanner/internal/client/models"
	"github.com/dmitrijs2005/recipeplanner/internal/validation"
	"github.com/google/uuid"
)

// CalendarDay is one date of the meal calendar with its entries in slot order.
type CalendarDay struct {
	Date    time.Time
	Entries []models.MealPlanEntry
}

type MealPlanService interface {
	Add(ctx context.Context, userID string, recipe models.Recipe, date time.Time, mealType string) (models.MealPlanEntry, error)
	// List returns the user's entries sorted by date, then meal slot.
	List(ctx context.Context, userID string) ([]models.MealPlanEntry, error)
	ListRange(ctx context.Context, userID string, from, to time.Time) ([]models.MealPlanEntry, error)
	Delete(ctx context.Context, userID, id string) error
	Calendar(entries []models.MealPlanEntry) []CalendarDay
}

type mealPlanService struct {
	client   client.MealPlansClient
	validate *validation.Validator
	newID    func() string
}

func NewMealPlanService(c client.MealPlansClient) MealPlanService {
	return &mealPlanService{client: c, validate: validation.New(), newID: uuid.NewString}
}

func (s *mealPlanService) Add(ctx context.Context, userID string, recipe models.Recipe, date time.Time, mealType string) (models.MealPlanEntry, error) {
	if userID == "" {
		return models.MealPlanEntry{}, ErrAuthRequired
	}
	if err := s.validate.MealType(mealType); err != nil {
		return models.MealPlanEntry{}, err
	}
	if date.IsZero() {
		return models.MealPlanEntry{}, validation.NewError("Date", "date is required")
	}

	entry := models.MealPlanEntry{
		ID:         s.newID(),
		OwnerID:    userID,
		RecipeID:   recipe.ID,
		RecipeName: recipe.Title,
		Date:       time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
		MealType:   models.MealType(mealType),
	}
	return s.client.AddMealPlan(ctx, entry)
}

func (s *mealPlanService) List(ctx context.Context, userID string) ([]models.MealPlanEntry, error) {
	return s.ListRange(ctx, userID, time.Time{}, time.Time{})
}

func (s *mealPlanService) ListRange(ctx context.Context, userID string, from, to time.Time) ([]models.MealPlanEntry, error) {
	if userID == "" {
		return nil, ErrAuthRequired
	}
	entries, err := s.client.ListMealPlans(ctx, from, to)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		entries[i].OwnerID = userID
	}
	sortEntries(entries)
	return entries, nil
}

func (s *mealPlanService) Delete(ctx context.Context, userID, id string) error {
	if userID == "" {
		return ErrAuthRequired
	}
	if id == "" {
		return validation.NewError("ID", "meal plan id is required")
	}
	return s.client.DeleteMealPlan(ctx, id)
}

func (s *mealPlanService) Calendar(entries []models.MealPlanEntry) []CalendarDay {
	sorted := slices.Clone(entries)
	sortEntries(sorted)

	var days []CalendarDay
	for _, e := range sorted {
		if n := len(days); n > 0 && days[n-1].Date.Equal(e.Date) {
			days[n-1].Entries = append(days[n-1].Entries, e)
			continue
		}
		days = append(days, CalendarDay{Date: e.Date, Entries: []models.MealPlanEntry{e}})
	}
	return days
}

func sortEntries(entries []models.MealPlanEntry) {
	slices.SortStableFunc(entries, func(a, b models.MealPlanEntry) int {
		if c := a.Date.Compare(b.Date); c != 0 {
			return c
		}
		return cmp.Compare(a.MealType.Order(), b.MealType.Order())
	})
}
