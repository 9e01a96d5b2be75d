package client

import (
	"github.com/dmitrijs2005/recipeplanner/internal/client/models"
	pb "github.com/dmitrijs2005/recipeplanner/internal/proto"
)

func profileFromPB(p *pb.UserProfile) models.UserProfile {
	if p == nil {
		return models.UserProfile{}
	}
	return models.UserProfile{
		ID:        p.UserID,
		Username:  p.Username,
		Email:     p.Email,
		CreatedAt: models.FromMillis(p.CreatedAt),
		AvatarKey: p.AvatarKey,
	}
}

func commentFromPB(c *pb.Comment) models.Comment {
	return models.Comment{
		ID:        c.ID,
		RecipeID:  c.RecipeID,
		UserID:    c.UserID,
		Username:  c.Username,
		Text:      c.Text,
		Timestamp: models.FromMillis(c.Timestamp),
	}
}

func commentsFromPB(in []*pb.Comment) []models.Comment {
	out := make([]models.Comment, 0, len(in))
	for _, c := range in {
		if c != nil {
			out = append(out, commentFromPB(c))
		}
	}
	return out
}

func ratingFromPB(r *pb.Rating) models.Rating {
	return models.Rating{
		ID:        r.ID,
		RecipeID:  r.RecipeID,
		UserID:    r.UserID,
		Username:  r.Username,
		Score:     int(r.Rating),
		Review:    r.Review,
		Timestamp: models.FromMillis(r.Timestamp),
	}
}

func mealPlanToPB(e models.MealPlanEntry) *pb.MealPlan {
	return &pb.MealPlan{
		ID:         e.ID,
		RecipeID:   e.RecipeID,
		RecipeName: e.RecipeName,
		Date:       e.DateString(),
		MealType:   string(e.MealType),
	}
}

func mealPlanFromPB(p *pb.MealPlan, owner string) (models.MealPlanEntry, error) {
	d, err := models.ParseDate(p.Date)
	if err != nil {
		return models.MealPlanEntry{}, err
	}
	return models.MealPlanEntry{
		ID:         p.ID,
		OwnerID:    owner,
		RecipeID:   p.RecipeID,
		RecipeName: p.RecipeName,
		Date:       d,
		MealType:   models.MealType(p.MealType),
	}, nil
}

func recentFromPB(r *pb.RecentlyViewed) models.RecentlyViewedEntry {
	return models.RecentlyViewedEntry{
		RecipeID:   r.RecipeID,
		RecipeName: r.RecipeName,
		ImageURL:   r.ImageURL,
		ViewedAt:   models.FromMillis(r.ViewedAt),
	}
}
