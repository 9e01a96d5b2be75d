package grpc

import (
	"context"

	pb "github.com/dmitrijs2005/recipeplanner/internal/proto"
	"github.com/dmitrijs2005/recipeplanner/internal/server/models"
	"google.golang.org/grpc"
)

func (s *GRPCServer) AddFavorite(ctx context.Context, req *pb.AddFavoriteRequest) (*pb.AddFavoriteResponse, error) {
	userID, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.social.AddFavorite(ctx, userID, req.RecipeID); err != nil {
		return nil, s.toStatus(ctx, pb.MethodAddFavorite, err)
	}
	return &pb.AddFavoriteResponse{}, nil
}

func (s *GRPCServer) RemoveFavorite(ctx context.Context, req *pb.RemoveFavoriteRequest) (*pb.RemoveFavoriteResponse, error) {
	userID, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.social.RemoveFavorite(ctx, userID, req.RecipeID); err != nil {
		return nil, s.toStatus(ctx, pb.MethodRemoveFavorite, err)
	}
	return &pb.RemoveFavoriteResponse{}, nil
}

func (s *GRPCServer) ListFavorites(ctx context.Context, _ *pb.ListFavoritesRequest) (*pb.ListFavoritesResponse, error) {
	userID, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	list, err := s.social.ListFavorites(ctx, userID)
	if err != nil {
		return nil, s.toStatus(ctx, pb.MethodListFavorites, err)
	}
	return &pb.ListFavoritesResponse{Favorites: favoritesToPB(list)}, nil
}

func (s *GRPCServer) AddComment(ctx context.Context, req *pb.AddCommentRequest) (*pb.AddCommentResponse, error) {
	userID, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	c, err := s.social.AddComment(ctx, userID, req.RecipeID, req.Text)
	if err != nil {
		return nil, s.toStatus(ctx, pb.MethodAddComment, err)
	}
	return &pb.AddCommentResponse{Comment: commentToPB(c)}, nil
}

func (s *GRPCServer) DeleteComment(ctx context.Context, req *pb.DeleteCommentRequest) (*pb.DeleteCommentResponse, error) {
	userID, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.social.DeleteComment(ctx, userID, req.RecipeID, req.CommentID); err != nil {
		return nil, s.toStatus(ctx, pb.MethodDeleteComment, err)
	}
	return &pb.DeleteCommentResponse{}, nil
}

func (s *GRPCServer) ListComments(ctx context.Context, req *pb.ListCommentsRequest) (*pb.ListCommentsResponse, error) {
	if _, err := s.caller(ctx); err != nil {
		return nil, err
	}
	list, err := s.social.ListComments(ctx, req.RecipeID)
	if err != nil {
		return nil, s.toStatus(ctx, pb.MethodListComments, err)
	}
	return &pb.ListCommentsResponse{Comments: commentsToPB(list)}, nil
}

// WatchComments streams a full snapshot on subscribe and after every change
// until the client goes away.
func (s *GRPCServer) WatchComments(req *pb.WatchCommentsRequest, stream grpc.ServerStreamingServer[pb.CommentsSnapshot]) error {
	ctx := stream.Context()
	if _, err := s.caller(ctx); err != nil {
		return err
	}
	err := s.social.WatchComments(ctx, req.RecipeID, func(list []*models.Comment) error {
		return stream.Send(&pb.CommentsSnapshot{RecipeID: req.RecipeID, Comments: commentsToPB(list)})
	})
	return s.toStatus(ctx, pb.MethodWatchComments, err)
}

func (s *GRPCServer) SetRating(ctx context.Context, req *pb.SetRatingRequest) (*pb.SetRatingResponse, error) {
	userID, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	r, err := s.social.SetRating(ctx, userID, req.RecipeID, int(req.Rating), req.Review)
	if err != nil {
		return nil, s.toStatus(ctx, pb.MethodSetRating, err)
	}
	return &pb.SetRatingResponse{Rating: ratingToPB(r)}, nil
}

func (s *GRPCServer) ListRatings(ctx context.Context, req *pb.ListRatingsRequest) (*pb.ListRatingsResponse, error) {
	if _, err := s.caller(ctx); err != nil {
		return nil, err
	}
	list, err := s.social.ListRatings(ctx, req.RecipeID)
	if err != nil {
		return nil, s.toStatus(ctx, pb.MethodListRatings, err)
	}
	out := make([]*pb.Rating, 0, len(list))
	for _, r := range list {
		out = append(out, ratingToPB(r))
	}
	return &pb.ListRatingsResponse{Ratings: out}, nil
}

func (s *GRPCServer) GetAverageRating(ctx context.Context, req *pb.GetAverageRatingRequest) (*pb.GetAverageRatingResponse, error) {
	if _, err := s.caller(ctx); err != nil {
		return nil, err
	}
	avg, err := s.social.AverageRating(ctx, req.RecipeID)
	if err != nil {
		return nil, s.toStatus(ctx, pb.MethodGetAverageRating, err)
	}
	return &pb.GetAverageRatingResponse{Average: avg.Average, Count: int32(avg.Count)}, nil
}

func (s *GRPCServer) AddMealPlan(ctx context.Context, req *pb.AddMealPlanRequest) (*pb.AddMealPlanResponse, error) {
	userID, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	entry, err := mealPlanFromPB(req.Entry)
	if err != nil {
		return nil, s.toStatus(ctx, pb.MethodAddMealPlan, err)
	}
	out, err := s.social.AddMealPlan(ctx, userID, entry)
	if err != nil {
		return nil, s.toStatus(ctx, pb.MethodAddMealPlan, err)
	}
	return &pb.AddMealPlanResponse{Entry: mealPlanToPB(out)}, nil
}

func (s *GRPCServer) ListMealPlans(ctx context.Context, req *pb.ListMealPlansRequest) (*pb.ListMealPlansResponse, error) {
	userID, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	from, err := parseDate("From", req.From)
	if err != nil {
		return nil, s.toStatus(ctx, pb.MethodListMealPlans, err)
	}
	to, err := parseDate("To", req.To)
	if err != nil {
		return nil, s.toStatus(ctx, pb.MethodListMealPlans, err)
	}
	list, err := s.social.ListMealPlans(ctx, userID, from, to)
	if err != nil {
		return nil, s.toStatus(ctx, pb.MethodListMealPlans, err)
	}
	out := make([]*pb.MealPlan, 0, len(list))
	for _, p := range list {
		out = append(out, mealPlanToPB(p))
	}
	return &pb.ListMealPlansResponse{Entries: out}, nil
}

func (s *GRPCServer) DeleteMealPlan(ctx context.Context, req *pb.DeleteMealPlanRequest) (*pb.DeleteMealPlanResponse, error) {
	userID, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.social.DeleteMealPlan(ctx, userID, req.ID); err != nil {
		return nil, s.toStatus(ctx, pb.MethodDeleteMealPlan, err)
	}
	return &pb.DeleteMealPlanResponse{}, nil
}

func (s *GRPCServer) RecordRecentlyViewed(ctx context.Context, req *pb.RecordRecentlyViewedRequest) (*pb.RecordRecentlyViewedResponse, error) {
	userID, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	err = s.social.RecordRecentlyViewed(ctx, &models.RecentlyViewed{
		UserID:     userID,
		RecipeID:   req.RecipeID,
		RecipeName: req.RecipeName,
		ImageURL:   req.ImageURL,
	})
	if err != nil {
		return nil, s.toStatus(ctx, pb.MethodRecordRecentlyViewed, err)
	}
	return &pb.RecordRecentlyViewedResponse{}, nil
}

func (s *GRPCServer) ListRecentlyViewed(ctx context.Context, req *pb.ListRecentlyViewedRequest) (*pb.ListRecentlyViewedResponse, error) {
	userID, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	list, err := s.social.ListRecentlyViewed(ctx, userID, int(req.Limit))
	if err != nil {
		return nil, s.toStatus(ctx, pb.MethodListRecentlyViewed, err)
	}
	return &pb.ListRecentlyViewedResponse{Entries: recentToPB(list)}, nil
}
