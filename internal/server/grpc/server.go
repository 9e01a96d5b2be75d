// Package grpc exposes the user and social services over gRPC: request
// handlers, the access token interceptors and error-to-status mapping.
package grpc

import (
	"context"
	"net"
	"time"

	"github.com/dmitrijs2005/recipeplanner/internal/logging"
	pb "github.com/dmitrijs2005/recipeplanner/internal/proto"
	"github.com/dmitrijs2005/recipeplanner/internal/server/metrics"
	"github.com/dmitrijs2005/recipeplanner/internal/server/models"
	"github.com/dmitrijs2005/recipeplanner/internal/server/services"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

const shutdownTimeout = 5 * time.Second

type userSvc interface {
	Register(ctx context.Context, email, password, username string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*services.TokenPair, *models.User, error)
	RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
	Logout(ctx context.Context, userID, refreshToken string) error
	Profile(ctx context.Context, userID string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID, username string) (*models.User, error)
	ChangePassword(ctx context.Context, userID, current, next string) error
	AvatarUploadURL(ctx context.Context, userID, contentType string) (string, string, error)
	AvatarURL(ctx context.Context, userID string) (string, error)
}

type socialSvc interface {
	AddFavorite(ctx context.Context, userID string, recipeID int64) error
	RemoveFavorite(ctx context.Context, userID string, recipeID int64) error
	ListFavorites(ctx context.Context, userID string) ([]*models.Favorite, error)

	AddComment(ctx context.Context, userID string, recipeID int64, text string) (*models.Comment, error)
	DeleteComment(ctx context.Context, userID string, recipeID int64, commentID string) error
	ListComments(ctx context.Context, recipeID int64) ([]*models.Comment, error)
	WatchComments(ctx context.Context, recipeID int64, send func([]*models.Comment) error) error

	SetRating(ctx context.Context, userID string, recipeID int64, score int, review *string) (*models.Rating, error)
	ListRatings(ctx context.Context, recipeID int64) ([]*models.Rating, error)
	AverageRating(ctx context.Context, recipeID int64) (models.AverageRating, error)

	AddMealPlan(ctx context.Context, userID string, p *models.MealPlan) (*models.MealPlan, error)
	ListMealPlans(ctx context.Context, userID string, from, to time.Time) ([]*models.MealPlan, error)
	DeleteMealPlan(ctx context.Context, userID, id string) error

	RecordRecentlyViewed(ctx context.Context, v *models.RecentlyViewed) error
	ListRecentlyViewed(ctx context.Context, userID string, limit int) ([]*models.RecentlyViewed, error)
}

type GRPCServer struct {
	pb.UnimplementedRecipePlannerServiceServer
	address   string
	users     userSvc
	social    socialSvc
	metrics   *metrics.Metrics
	logger    logging.Logger
	jwtSecret []byte
}

func NewGRPCServer(a string, l logging.Logger, us *services.UserService, ss *services.SocialService, m *metrics.Metrics, secretKey string) *GRPCServer {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		users:     us,
		social:    ss,
		metrics:   m,
		jwtSecret: []byte(secretKey),
	}
}

func (s *GRPCServer) newServer() *grpc.Server {
	unary := []grpc.UnaryServerInterceptor{s.accessTokenInterceptor}
	stream := []grpc.StreamServerInterceptor{s.streamAccessTokenInterceptor}
	if s.metrics != nil {
		unary = append([]grpc.UnaryServerInterceptor{s.metrics.UnaryServerInterceptor}, unary...)
		stream = append([]grpc.StreamServerInterceptor{s.metrics.StreamServerInterceptor}, stream...)
	}
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(unary...),
		grpc.ChainStreamInterceptor(stream...),
	)

	pb.RegisterRecipePlannerServiceServer(srv, s)

	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus(pb.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, hs)

	return srv
}

func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.serve(ctx, listen)
}

func (s *GRPCServer) serve(ctx context.Context, listen net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()
		// watch streams never finish on their own
		select {
		case <-stopped:
		case <-time.After(shutdownTimeout):
			srv.Stop()
		}
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil {
		return err
	}
	return nil
}
