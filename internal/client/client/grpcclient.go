package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/dmitrijs2005/recipeplanner/internal/client/models"
	"github.com/dmitrijs2005/recipeplanner/internal/common"
	pb "github.com/dmitrijs2005/recipeplanner/internal/proto"
	"github.com/dmitrijs2005/recipeplanner/internal/validation"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const pingTimeout = 2 * time.Second

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.RecipePlannerServiceClient
	health      healthpb.HealthClient

	mu           sync.RWMutex
	accessToken  string
	refreshToken string
	onRefresh    func(access, refresh string)

	refreshMu sync.Mutex
}

var _ Client = (*GRPCClient)(nil)

func NewRecipePlannerClient(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	if err := c.InitGRPCClient(); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {
	conn, err := grpc.NewClient(s.endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor),
		grpc.WithStreamInterceptor(s.streamAccessTokenInterceptor),
	)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewRecipePlannerServiceClient(conn)
	s.health = healthpb.NewHealthClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func withAccessToken(ctx context.Context, token string) context.Context {
	if token == "" {
		return ctx
	}
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AccessTokenHeaderName, token)
	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) SetTokens(access, refresh string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = access
	s.refreshToken = refresh
}

func (s *GRPCClient) tokens() (string, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken, s.refreshToken
}

func (s *GRPCClient) OnTokensRefreshed(fn func(access, refresh string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onRefresh = fn
}

func isTokenExpired(err error) bool {
	st, ok := status.FromError(err)
	if !ok {
		return false
	}
	return st.Code() == codes.Unauthenticated && st.Message() == common.ErrTokenExpired.Error()
}

// refresh rotates the token pair unless another caller already replaced
// stale, and returns the access token to retry with.
func (s *GRPCClient) refresh(ctx context.Context, stale string) (string, error) {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	access, refreshToken := s.tokens()
	if access != stale {
		return access, nil
	}
	if refreshToken == "" {
		return "", status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
	}

	resp, err := s.client.RefreshToken(ctx, &pb.RefreshTokenRequest{RefreshToken: refreshToken})
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.accessToken = resp.AccessToken
	s.refreshToken = resp.RefreshToken
	fn := s.onRefresh
	s.mu.Unlock()

	if fn != nil {
		fn(resp.AccessToken, resp.RefreshToken)
	}
	return resp.AccessToken, nil
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	access, _ := s.tokens()
	err := invoker(withAccessToken(ctx, access), method, req, reply, cc, opts...)
	if err == nil || method == pb.MethodRefreshToken || !isTokenExpired(err) {
		return err
	}

	access, err = s.refresh(ctx, access)
	if err != nil {
		return err
	}

	// tokens refreshed, retry once with the new access token
	return invoker(withAccessToken(ctx, access), method, req, reply, cc, opts...)
}

func (s *GRPCClient) streamAccessTokenInterceptor(
	ctx context.Context,
	desc *grpc.StreamDesc,
	cc *grpc.ClientConn,
	method string,
	streamer grpc.Streamer,
	opts ...grpc.CallOption,
) (grpc.ClientStream, error) {
	access, _ := s.tokens()
	cs, err := streamer(withAccessToken(ctx, access), desc, cc, method, opts...)
	if err != nil || !desc.ServerStreams || desc.ClientStreams {
		return cs, err
	}
	return &refreshingStream{
		ClientStream: cs,
		client:       s,
		ctx:          ctx,
		desc:         desc,
		cc:           cc,
		method:       method,
		streamer:     streamer,
		opts:         opts,
		access:       access,
	}, nil
}

// refreshingStream reopens a server stream once when its first receive fails
// with an expired access token, replaying the request with a fresh token.
type refreshingStream struct {
	grpc.ClientStream

	client   *GRPCClient
	ctx      context.Context
	desc     *grpc.StreamDesc
	cc       *grpc.ClientConn
	method   string
	streamer grpc.Streamer
	opts     []grpc.CallOption

	access   string
	req      any
	received bool
	retried  bool
}

func (r *refreshingStream) SendMsg(m any) error {
	r.req = m
	return r.ClientStream.SendMsg(m)
}

func (r *refreshingStream) RecvMsg(m any) error {
	err := r.ClientStream.RecvMsg(m)
	if err == nil {
		r.received = true
		return nil
	}
	if r.received || r.retried || r.req == nil || !isTokenExpired(err) {
		return err
	}
	r.retried = true

	access, err := r.client.refresh(r.ctx, r.access)
	if err != nil {
		return err
	}
	cs, err := r.streamer(withAccessToken(r.ctx, access), r.desc, r.cc, r.method, r.opts...)
	if err != nil {
		return err
	}
	if err := cs.SendMsg(r.req); err != nil {
		return err
	}
	if err := cs.CloseSend(); err != nil {
		return err
	}
	r.ClientStream = cs
	r.access = access
	return r.RecvMsg(m)
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return fmt.Errorf("rpc error: %w", err)
	}
	switch st.Code() {
	case codes.Unauthenticated:
		return ErrUnauthorized
	case codes.PermissionDenied:
		return fmt.Errorf("%w: %s", ErrForbidden, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.NotFound:
		return ErrNotFound
	case codes.AlreadyExists:
		return fmt.Errorf("%w: %s", ErrAlreadyExists, st.Message())
	case codes.InvalidArgument:
		return validationFromStatus(st)
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}

func validationFromStatus(st *status.Status) error {
	verr := &validation.Error{}
	for _, d := range st.Details() {
		br, ok := d.(*errdetails.BadRequest)
		if !ok {
			continue
		}
		for _, fv := range br.GetFieldViolations() {
			verr.Violations = append(verr.Violations, validation.FieldViolation{
				Field:       fv.GetField(),
				Description: fv.GetDescription(),
			})
		}
	}
	if len(verr.Violations) == 0 {
		verr.Violations = []validation.FieldViolation{{Description: st.Message()}}
	}
	return verr
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	resp, err := s.health.Check(ctx, &healthpb.HealthCheckRequest{})
	if err != nil {
		return s.mapError(err)
	}
	if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		return ErrUnavailable
	}
	return nil
}

func (s *GRPCClient) Register(ctx context.Context, email, password, username string) (string, error) {
	resp, err := s.client.Register(ctx, &pb.RegisterRequest{Email: email, Password: password, Username: username})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.UserID, nil
}

func (s *GRPCClient) Login(ctx context.Context, email, password string) (models.Session, error) {
	resp, err := s.client.Login(ctx, &pb.LoginRequest{Email: email, Password: password})
	if err != nil {
		return models.Session{}, s.mapError(err)
	}

	s.SetTokens(resp.AccessToken, resp.RefreshToken)
	p := profileFromPB(resp.Profile)
	return models.Session{
		UserID:       p.ID,
		Username:     p.Username,
		Email:        p.Email,
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
	}, nil
}

// Logout revokes the refresh token and forgets both tokens, even when the
// server call fails.
func (s *GRPCClient) Logout(ctx context.Context) error {
	_, refreshToken := s.tokens()
	defer s.SetTokens("", "")
	if refreshToken == "" {
		return nil
	}
	if _, err := s.client.Logout(ctx, &pb.LogoutRequest{RefreshToken: refreshToken}); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) GetProfile(ctx context.Context) (models.UserProfile, error) {
	resp, err := s.client.GetProfile(ctx, &pb.GetProfileRequest{})
	if err != nil {
		return models.UserProfile{}, s.mapError(err)
	}
	return profileFromPB(resp.Profile), nil
}

func (s *GRPCClient) UpdateProfile(ctx context.Context, username string) (models.UserProfile, error) {
	resp, err := s.client.UpdateProfile(ctx, &pb.UpdateProfileRequest{Username: username})
	if err != nil {
		return models.UserProfile{}, s.mapError(err)
	}
	return profileFromPB(resp.Profile), nil
}

func (s *GRPCClient) ChangePassword(ctx context.Context, current, next string) error {
	_, err := s.client.ChangePassword(ctx, &pb.ChangePasswordRequest{CurrentPassword: current, NewPassword: next})
	return s.mapError(err)
}

func (s *GRPCClient) AvatarUploadURL(ctx context.Context, contentType string) (string, string, error) {
	resp, err := s.client.GetAvatarUploadURL(ctx, &pb.GetAvatarUploadURLRequest{ContentType: contentType})
	if err != nil {
		return "", "", s.mapError(err)
	}
	return resp.Key, resp.URL, nil
}

func (s *GRPCClient) AvatarURL(ctx context.Context) (string, error) {
	resp, err := s.client.GetAvatarURL(ctx, &pb.GetAvatarURLRequest{})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.URL, nil
}

func (s *GRPCClient) AddFavorite(ctx context.Context, recipeID int64) error {
	_, err := s.client.AddFavorite(ctx, &pb.AddFavoriteRequest{RecipeID: recipeID})
	return s.mapError(err)
}

func (s *GRPCClient) RemoveFavorite(ctx context.Context, recipeID int64) error {
	_, err := s.client.RemoveFavorite(ctx, &pb.RemoveFavoriteRequest{RecipeID: recipeID})
	return s.mapError(err)
}

func (s *GRPCClient) ListFavorites(ctx context.Context) ([]models.Favorite, error) {
	resp, err := s.client.ListFavorites(ctx, &pb.ListFavoritesRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	out := make([]models.Favorite, 0, len(resp.Favorites))
	for _, f := range resp.Favorites {
		out = append(out, models.Favorite{RecipeID: f.RecipeID, AddedAt: models.FromMillis(f.AddedAt)})
	}
	return out, nil
}

func (s *GRPCClient) AddComment(ctx context.Context, recipeID int64, text string) (models.Comment, error) {
	resp, err := s.client.AddComment(ctx, &pb.AddCommentRequest{RecipeID: recipeID, Text: text})
	if err != nil {
		return models.Comment{}, s.mapError(err)
	}
	if resp.Comment == nil {
		return models.Comment{}, fmt.Errorf("rpc error: empty comment in response")
	}
	return commentFromPB(resp.Comment), nil
}

func (s *GRPCClient) DeleteComment(ctx context.Context, recipeID int64, commentID string) error {
	_, err := s.client.DeleteComment(ctx, &pb.DeleteCommentRequest{RecipeID: recipeID, CommentID: commentID})
	return s.mapError(err)
}

func (s *GRPCClient) ListComments(ctx context.Context, recipeID int64) ([]models.Comment, error) {
	resp, err := s.client.ListComments(ctx, &pb.ListCommentsRequest{RecipeID: recipeID})
	if err != nil {
		return nil, s.mapError(err)
	}
	return commentsFromPB(resp.Comments), nil
}

// WatchComments returns nil when ctx is canceled or the server closes the
// stream.
func (s *GRPCClient) WatchComments(ctx context.Context, recipeID int64, fn func([]models.Comment)) error {
	stream, err := s.client.WatchComments(ctx, &pb.WatchCommentsRequest{RecipeID: recipeID})
	if err != nil {
		return s.mapError(err)
	}
	for {
		snap, err := stream.Recv()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) || status.Code(err) == codes.Canceled {
				return nil
			}
			if errors.Is(err, io.EOF) {
				return nil
			}
			return s.mapError(err)
		}
		fn(commentsFromPB(snap.Comments))
	}
}

func (s *GRPCClient) SetRating(ctx context.Context, recipeID int64, score int, review *string) (models.Rating, error) {
	resp, err := s.client.SetRating(ctx, &pb.SetRatingRequest{RecipeID: recipeID, Rating: int32(score), Review: review})
	if err != nil {
		return models.Rating{}, s.mapError(err)
	}
	if resp.Rating == nil {
		return models.Rating{}, fmt.Errorf("rpc error: empty rating in response")
	}
	return ratingFromPB(resp.Rating), nil
}

func (s *GRPCClient) ListRatings(ctx context.Context, recipeID int64) ([]models.Rating, error) {
	resp, err := s.client.ListRatings(ctx, &pb.ListRatingsRequest{RecipeID: recipeID})
	if err != nil {
		return nil, s.mapError(err)
	}
	out := make([]models.Rating, 0, len(resp.Ratings))
	for _, r := range resp.Ratings {
		out = append(out, ratingFromPB(r))
	}
	return out, nil
}

func (s *GRPCClient) AverageRating(ctx context.Context, recipeID int64) (models.AverageRating, error) {
	resp, err := s.client.GetAverageRating(ctx, &pb.GetAverageRatingRequest{RecipeID: recipeID})
	if err != nil {
		return models.AverageRating{}, s.mapError(err)
	}
	return models.AverageRating{Average: resp.Average, Count: int(resp.Count)}, nil
}

func (s *GRPCClient) AddMealPlan(ctx context.Context, entry models.MealPlanEntry) (models.MealPlanEntry, error) {
	resp, err := s.client.AddMealPlan(ctx, &pb.AddMealPlanRequest{Entry: mealPlanToPB(entry)})
	if err != nil {
		return models.MealPlanEntry{}, s.mapError(err)
	}
	if resp.Entry == nil {
		return entry, nil
	}
	return mealPlanFromPB(resp.Entry, entry.OwnerID)
}

func (s *GRPCClient) ListMealPlans(ctx context.Context, from, to time.Time) ([]models.MealPlanEntry, error) {
	req := &pb.ListMealPlansRequest{}
	if !from.IsZero() {
		req.From = from.Format(models.DateLayout)
	}
	if !to.IsZero() {
		req.To = to.Format(models.DateLayout)
	}

	resp, err := s.client.ListMealPlans(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}

	out := make([]models.MealPlanEntry, 0, len(resp.Entries))
	for _, e := range resp.Entries {
		m, err := mealPlanFromPB(e, "")
		if err != nil {
			return nil, fmt.Errorf("rpc error: %w", err)
		}
		out = append(out, m)
	}
	return out, nil
}

func (s *GRPCClient) DeleteMealPlan(ctx context.Context, id string) error {
	_, err := s.client.DeleteMealPlan(ctx, &pb.DeleteMealPlanRequest{ID: id})
	return s.mapError(err)
}

func (s *GRPCClient) RecordRecentlyViewed(ctx context.Context, recipe models.Recipe) error {
	_, err := s.client.RecordRecentlyViewed(ctx, &pb.RecordRecentlyViewedRequest{
		RecipeID:   recipe.ID,
		RecipeName: recipe.Title,
		ImageURL:   recipe.ImageURL,
	})
	return s.mapError(err)
}

func (s *GRPCClient) ListRecentlyViewed(ctx context.Context, limit int) ([]models.RecentlyViewedEntry, error) {
	resp, err := s.client.ListRecentlyViewed(ctx, &pb.ListRecentlyViewedRequest{Limit: int32(limit)})
	if err != nil {
		return nil, s.mapError(err)
	}
	out := make([]models.RecentlyViewedEntry, 0, len(resp.Entries))
	for _, e := range resp.Entries {
		out = append(out, recentFromPB(e))
	}
	return out, nil
}
