// Package server wires the RecipePlanner backend: PostgreSQL repositories,
// the user and social services, the gRPC API and the metrics endpoint.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmitrijs2005/recipeplanner/internal/logging"
	"github.com/dmitrijs2005/recipeplanner/internal/server/config"
	"github.com/dmitrijs2005/recipeplanner/internal/server/hub"
	"github.com/dmitrijs2005/recipeplanner/internal/server/metrics"
	"github.com/dmitrijs2005/recipeplanner/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/recipeplanner/internal/server/services"
	"github.com/dmitrijs2005/recipeplanner/internal/validation"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	gs "github.com/dmitrijs2005/recipeplanner/internal/server/grpc"
)

const pingTimeout = 5 * time.Second

// sqlOpen is replaced in tests.
var sqlOpen = sql.Open

type App struct {
	config        *config.Config
	logger        logging.Logger
	db            *sql.DB
	metrics       *metrics.Metrics
	userService   *services.UserService
	socialService *services.SocialService
}

// NewApp opens the database, applies migrations and builds the services.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.New(c.LogFormat, c.LogLevel, os.Stdout)

	db, err := sqlOpen("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db migration error: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewDBStatsCollector(db, "recipeplanner"))

	v := validation.New()

	return &App{
		config:        c,
		logger:        logger,
		db:            db,
		metrics:       metrics.New(reg),
		userService:   services.NewUserService(db, rm, v, services.NewAvatarStore(c), c),
		socialService: services.NewSocialService(db, rm, v, hub.New()),
	}, nil
}

// Run serves gRPC and metrics until SIGINT/SIGTERM or until either server
// fails, then closes the database.
func (app *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()
	defer app.db.Close()

	app.logger.Info(ctx, "Starting app...")

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.userService, app.socialService, app.metrics, app.config.SecretKey)
		return s.Run(ctx)
	})

	g.Go(func() error {
		return metrics.NewServer(app.config.EndpointAddrMetrics, app.metrics, app.logger).Run(ctx)
	})

	err := g.Wait()
	if err != nil {
		app.logger.Error(ctx, "server stopped", "error", err.Error())
	}
	app.logger.Info(ctx, "App stopped")
	return err
}
