package models

import "time"

type Favorite struct {
	UserID   string
	RecipeID int64
	AddedAt  time.Time
}

// Comment is joined with the author's username on read.
type Comment struct {
	ID        string
	RecipeID  int64
	UserID    string
	UserName  string
	Text      string
	CreatedAt time.Time
}

// Rating is unique per (RecipeID, UserID).
type Rating struct {
	ID        string
	RecipeID  int64
	UserID    string
	UserName  string
	Score     int
	Review    *string
	CreatedAt time.Time
}

type AverageRating struct {
	Average float64
	Count   int
}

// MealPlan dates are calendar days stored without a time of day.
type MealPlan struct {
	ID         string
	UserID     string
	RecipeID   int64
	RecipeName string
	Date       time.Time
	MealType   string
}

type RecentlyViewed struct {
	UserID     string
	RecipeID   int64
	RecipeName string
	ImageURL   string
	ViewedAt   time.Time
}
