package client

import (
	"context"
	"time"

	"github.com/dmitrijs2005/recipeplanner/internal/client/models"
)

type AuthClient interface {
	Ping(ctx context.Context) error
	SetTokens(access, refresh string)
	// OnTokensRefreshed registers fn to be called after a transparent refresh.
	OnTokensRefreshed(fn func(access, refresh string))

	Register(ctx context.Context, email, password, username string) (string, error)
	Login(ctx context.Context, email, password string) (models.Session, error)
	Logout(ctx context.Context) error
	GetProfile(ctx context.Context) (models.UserProfile, error)
	UpdateProfile(ctx context.Context, username string) (models.UserProfile, error)
	ChangePassword(ctx context.Context, current, next string) error
	AvatarUploadURL(ctx context.Context, contentType string) (key, url string, err error)
	AvatarURL(ctx context.Context) (string, error)
}

type FavoritesClient interface {
	AddFavorite(ctx context.Context, recipeID int64) error
	RemoveFavorite(ctx context.Context, recipeID int64) error
	ListFavorites(ctx context.Context) ([]models.Favorite, error)
}

type CommentsClient interface {
	AddComment(ctx context.Context, recipeID int64, text string) (models.Comment, error)
	DeleteComment(ctx context.Context, recipeID int64, commentID string) error
	ListComments(ctx context.Context, recipeID int64) ([]models.Comment, error)
	// WatchComments calls fn with every snapshot until ctx is done or the
	// stream ends.
	WatchComments(ctx context.Context, recipeID int64, fn func([]models.Comment)) error
}

type RatingsClient interface {
	SetRating(ctx context.Context, recipeID int64, score int, review *string) (models.Rating, error)
	ListRatings(ctx context.Context, recipeID int64) ([]models.Rating, error)
	AverageRating(ctx context.Context, recipeID int64) (models.AverageRating, error)
}

type MealPlansClient interface {
	AddMealPlan(ctx context.Context, entry models.MealPlanEntry) (models.MealPlanEntry, error)
	// ListMealPlans filters by date when from or to is non-zero.
	ListMealPlans(ctx context.Context, from, to time.Time) ([]models.MealPlanEntry, error)
	DeleteMealPlan(ctx context.Context, id string) error
}

type RecentlyViewedClient interface {
	RecordRecentlyViewed(ctx context.Context, recipe models.Recipe) error
	ListRecentlyViewed(ctx context.Context, limit int) ([]models.RecentlyViewedEntry, error)
}

// Client is the full backend API.
type Client interface {
	AuthClient
	FavoritesClient
	CommentsClient
	RatingsClient
	MealPlansClient
	RecentlyViewedClient
	Close() error
}
