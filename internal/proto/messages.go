// Package proto defines the RecipePlanner RPC contract: message types, the
// gRPC service descriptor, client stubs and the JSON codec they travel with.
package proto

// Timestamps are Unix milliseconds assigned by the server.
// Dates are calendar dates formatted as "2006-01-02".

type UserProfile struct {
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	CreatedAt int64  `json:"created_at"`
	AvatarKey string `json:"avatar_key,omitempty"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
}

type RegisterResponse struct {
	UserID string `json:"user_id"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	Profile      *UserProfile `json:"profile"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type LogoutResponse struct{}

type GetProfileRequest struct{}

type GetProfileResponse struct {
	Profile *UserProfile `json:"profile"`
}

type UpdateProfileRequest struct {
	Username string `json:"username"`
}

type UpdateProfileResponse struct {
	Profile *UserProfile `json:"profile"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

type ChangePasswordResponse struct{}

type GetAvatarUploadURLRequest struct {
	ContentType string `json:"content_type,omitempty"`
}

type GetAvatarUploadURLResponse struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

type GetAvatarURLRequest struct{}

type GetAvatarURLResponse struct {
	URL string `json:"url"`
}

type Favorite struct {
	RecipeID int64 `json:"recipe_id"`
	AddedAt  int64 `json:"added_at"`
}

type AddFavoriteRequest struct {
	RecipeID int64 `json:"recipe_id"`
}

type AddFavoriteResponse struct{}

type RemoveFavoriteRequest struct {
	RecipeID int64 `json:"recipe_id"`
}

type RemoveFavoriteResponse struct{}

type ListFavoritesRequest struct{}

type ListFavoritesResponse struct {
	Favorites []*Favorite `json:"favorites"`
}

type Comment struct {
	ID        string `json:"id"`
	RecipeID  int64  `json:"recipe_id"`
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"`
}

type AddCommentRequest struct {
	RecipeID int64  `json:"recipe_id"`
	Text     string `json:"text"`
}

type AddCommentResponse struct {
	Comment *Comment `json:"comment"`
}

type DeleteCommentRequest struct {
	RecipeID  int64  `json:"recipe_id"`
	CommentID string `json:"comment_id"`
}

type DeleteCommentResponse struct{}

type ListCommentsRequest struct {
	RecipeID int64 `json:"recipe_id"`
}

type ListCommentsResponse struct {
	Comments []*Comment `json:"comments"`
}

type WatchCommentsRequest struct {
	RecipeID int64 `json:"recipe_id"`
}

// CommentsSnapshot is one frame of the WatchComments stream: the full,
// newest-first comment list of a recipe.
type CommentsSnapshot struct {
	RecipeID int64      `json:"recipe_id"`
	Comments []*Comment `json:"comments"`
}

type Rating struct {
	ID        string  `json:"id"`
	RecipeID  int64   `json:"recipe_id"`
	UserID    string  `json:"user_id"`
	Username  string  `json:"username"`
	Rating    int32   `json:"rating"`
	Review    *string `json:"review,omitempty"`
	Timestamp int64   `json:"timestamp"`
}

type SetRatingRequest struct {
	RecipeID int64   `json:"recipe_id"`
	Rating   int32   `json:"rating"`
	Review   *string `json:"review,omitempty"`
}

type SetRatingResponse struct {
	Rating *Rating `json:"rating"`
}

type ListRatingsRequest struct {
	RecipeID int64 `json:"recipe_id"`
}

type ListRatingsResponse struct {
	Ratings []*Rating `json:"ratings"`
}

type GetAverageRatingRequest struct {
	RecipeID int64 `json:"recipe_id"`
}

type GetAverageRatingResponse struct {
	Average float64 `json:"average"`
	Count   int32   `json:"count"`
}

type MealPlan struct {
	ID         string `json:"id"`
	RecipeID   int64  `json:"recipe_id"`
	RecipeName string `json:"recipe_name"`
	Date       string `json:"date"`
	MealType   string `json:"meal_type"`
}

type AddMealPlanRequest struct {
	Entry *MealPlan `json:"entry"`
}

type AddMealPlanResponse struct {
	Entry *MealPlan `json:"entry"`
}

type ListMealPlansRequest struct {
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
}

type ListMealPlansResponse struct {
	Entries []*MealPlan `json:"entries"`
}

type DeleteMealPlanRequest struct {
	ID string `json:"id"`
}

type DeleteMealPlanResponse struct{}

type RecentlyViewed struct {
	RecipeID   int64  `json:"recipe_id"`
	RecipeName string `json:"recipe_name"`
	ImageURL   string `json:"image_url,omitempty"`
	ViewedAt   int64  `json:"viewed_at"`
}

type RecordRecentlyViewedRequest struct {
	RecipeID   int64  `json:"recipe_id"`
	RecipeName string `json:"recipe_name"`
	ImageURL   string `json:"image_url,omitempty"`
}

type RecordRecentlyViewedResponse struct{}

type ListRecentlyViewedRequest struct {
	Limit int32 `json:"limit"`
}

type ListRecentlyViewedResponse struct {
	Entries []*RecentlyViewed `json:"entries"`
}
