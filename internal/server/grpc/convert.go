package grpc

import (
	"time"

	pb "github.com/dmitrijs2005/recipeplanner/internal/proto"
	"github.com/dmitrijs2005/recipeplanner/internal/server/models"
	"github.com/dmitrijs2005/recipeplanner/internal/validation"
)

const dateLayout = "2006-01-02"

func millis(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}

// parseDate accepts an empty string as an open bound.
func parseDate(field, s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, validation.NewError(field, "date must be formatted as YYYY-MM-DD")
	}
	return d, nil
}

func profileToPB(u *models.User) *pb.UserProfile {
	return &pb.UserProfile{
		UserID:    u.ID,
		Username:  u.UserName,
		Email:     u.Email,
		CreatedAt: millis(u.CreatedAt),
		AvatarKey: u.AvatarKey,
	}
}

func favoritesToPB(list []*models.Favorite) []*pb.Favorite {
	out := make([]*pb.Favorite, 0, len(list))
	for _, f := range list {
		out = append(out, &pb.Favorite{RecipeID: f.RecipeID, AddedAt: millis(f.AddedAt)})
	}
	return out
}

func commentToPB(c *models.Comment) *pb.Comment {
	return &pb.Comment{
		ID:        c.ID,
		RecipeID:  c.RecipeID,
		UserID:    c.UserID,
		Username:  c.UserName,
		Text:      c.Text,
		Timestamp: millis(c.CreatedAt),
	}
}

func commentsToPB(list []*models.Comment) []*pb.Comment {
	out := make([]*pb.Comment, 0, len(list))
	for _, c := range list {
		out = append(out, commentToPB(c))
	}
	return out
}

func ratingToPB(r *models.Rating) *pb.Rating {
	return &pb.Rating{
		ID:        r.ID,
		RecipeID:  r.RecipeID,
		UserID:    r.UserID,
		Username:  r.UserName,
		Rating:    int32(r.Score),
		Review:    r.Review,
		Timestamp: millis(r.CreatedAt),
	}
}

func mealPlanToPB(p *models.MealPlan) *pb.MealPlan {
	return &pb.MealPlan{
		ID:         p.ID,
		RecipeID:   p.RecipeID,
		RecipeName: p.RecipeName,
		Date:       p.Date.Format(dateLayout),
		MealType:   p.MealType,
	}
}

func mealPlanFromPB(p *pb.MealPlan) (*models.MealPlan, error) {
	if p == nil {
		return nil, validation.NewError("Entry", "entry is required")
	}
	d, err := parseDate("Date", p.Date)
	if err != nil {
		return nil, err
	}
	return &models.MealPlan{
		ID:         p.ID,
		RecipeID:   p.RecipeID,
		RecipeName: p.RecipeName,
		Date:       d,
		MealType:   p.MealType,
	}, nil
}

func recentToPB(list []*models.RecentlyViewed) []*pb.RecentlyViewed {
	out := make([]*pb.RecentlyViewed, 0, len(list))
	for _, v := range list {
		out = append(out, &pb.RecentlyViewed{
			RecipeID:   v.RecipeID,
			RecipeName: v.RecipeName,
			ImageURL:   v.ImageURL,
			ViewedAt:   millis(v.ViewedAt),
		})
	}
	return out
}
