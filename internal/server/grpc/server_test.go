package grpc

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/dmitrijs2005/recipeplanner/internal/common"
	"github.com/dmitrijs2005/recipeplanner/internal/logging"
	pb "github.com/dmitrijs2005/recipeplanner/internal/proto"
	"github.com/dmitrijs2005/recipeplanner/internal/server/auth"
	"github.com/dmitrijs2005/recipeplanner/internal/server/metrics"
	"github.com/dmitrijs2005/recipeplanner/internal/server/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// startServer serves s on a loopback port and returns a connected client.
func startServer(t *testing.T, s *GRPCServer) (*grpc.ClientConn, func()) {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.serve(ctx, l) }()

	conn, err := grpc.NewClient(l.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)

	return conn, func() {
		_ = conn.Close()
		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(10 * time.Second):
			t.Fatal("server did not stop within timeout after context cancel")
		}
	}
}

func TestRun_ReturnsErrorOnBadAddress(t *testing.T) {
	srv := NewGRPCServer("127.0.0.1:99999", logging.Nop(), nil, nil, nil, "secret")
	if err := srv.Run(context.Background()); err == nil {
		t.Fatal("expected listen error")
	}
}

func TestServer_EndToEnd(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	u := &fakeUser{profile: &models.User{ID: "u1", UserName: "ann"}}
	so := &fakeSocial{
		comments:  []*models.Comment{{ID: "c1", RecipeID: 7, Text: "one"}, {ID: "c2", RecipeID: 7, Text: "two"}},
		snapshots: 3,
	}
	s := newServer(u, so)
	s.metrics = m

	conn, stop := startServer(t, s)
	defer stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	hc, err := healthpb.NewHealthClient(conn).Check(ctx, &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, hc.Status)

	client := pb.NewRecipePlannerServiceClient(conn)

	_, err = client.GetProfile(ctx, &pb.GetProfileRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	token, err := auth.GenerateToken("u1", s.jwtSecret, time.Minute)
	require.NoError(t, err)
	authCtx := metadata.AppendToOutgoingContext(ctx, common.AccessTokenHeaderName, token)

	prof, err := client.GetProfile(authCtx, &pb.GetProfileRequest{})
	require.NoError(t, err)
	assert.Equal(t, "ann", prof.Profile.Username)
	assert.Equal(t, "u1", u.lastUserID)

	streamCtx, stopStream := context.WithCancel(authCtx)
	stream, err := client.WatchComments(streamCtx, &pb.WatchCommentsRequest{RecipeID: 7})
	require.NoError(t, err)
	for want := 0; want < 3; want++ {
		snap, err := stream.Recv()
		require.NoError(t, err)
		assert.Equal(t, int64(7), snap.RecipeID)
		assert.Len(t, snap.Comments, want)
	}
	stopStream()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues(pb.MethodGetProfile, "OK")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues(pb.MethodGetProfile, "Unauthenticated")))
}
