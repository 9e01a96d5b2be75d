package models

import (
	"fmt"
	"time"
)

// DateLayout is the wire and display format of meal plan dates.
const DateLayout = "2006-01-02"

type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// MealTypes lists the meal slots in the order they appear within a day.
var MealTypes = []MealType{MealBreakfast, MealLunch, MealDinner, MealSnack}

// Order returns the slot position of m within a day, or len(MealTypes)
// for unknown values.
func (m MealType) Order() int {
	for i, t := range MealTypes {
		if t == m {
			return i
		}
	}
	return len(MealTypes)
}

type Comment struct {
	ID        string
	RecipeID  int64
	UserID    string
	Username  string
	Text      string
	Timestamp time.Time
}

// Rating is a user's score for a recipe. A user has at most one rating per
// recipe, so ID equals UserID.
type Rating struct {
	ID        string
	RecipeID  int64
	UserID    string
	Username  string
	Score     int
	Review    *string
	Timestamp time.Time
}

type AverageRating struct {
	Average float64
	Count   int
}

type MealPlanEntry struct {
	ID         string
	OwnerID    string
	RecipeID   int64
	RecipeName string
	Date       time.Time
	MealType   MealType
}

// DateString returns the entry date in DateLayout.
func (e MealPlanEntry) DateString() string {
	return e.Date.Format(DateLayout)
}

type RecentlyViewedEntry struct {
	RecipeID   int64
	RecipeName string
	ImageURL   string
	ViewedAt   time.Time
}

type UserProfile struct {
	ID        string
	Username  string
	Email     string
	CreatedAt time.Time
	AvatarKey string
}

type Favorite struct {
	RecipeID int64
	AddedAt  time.Time
}

// ParseDate parses a calendar date in DateLayout as a UTC midnight.
func ParseDate(s string) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", s, err)
	}
	return d, nil
}

// FromMillis converts a server timestamp to time.Time.
func FromMillis(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms)
}
