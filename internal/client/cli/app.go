package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/recipeplanner/internal/client/client"
	"github.com/dmitrijs2005/recipeplanner/internal/client/config"
	"github.com/dmitrijs2005/recipeplanner/internal/client/feed"
	"github.com/dmitrijs2005/recipeplanner/internal/client/models"
	"github.com/dmitrijs2005/recipeplanner/internal/client/recipeapi"
	"github.com/dmitrijs2005/recipeplanner/internal/client/render"
	"github.com/dmitrijs2005/recipeplanner/internal/client/services"
	"github.com/dmitrijs2005/recipeplanner/internal/client/state"
	"github.com/dmitrijs2005/recipeplanner/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

const pingTimeout = 3 * time.Second

// syncMarker records when favorites were last reconciled.
type syncMarker interface {
	MarkSynced(ctx context.Context, at time.Time) error
}

type App struct {
	config *config.Config
	log    logging.Logger

	recipes   services.RecipeService
	auth      services.AuthService
	comments  services.CommentService
	ratings   services.RatingService
	mealPlans services.MealPlanService
	recent    services.RecentlyViewedService
	synced    syncMarker

	feed     *feed.Feed
	renderer *render.Renderer

	mode   *state.Value[Mode]
	reader *bufio.Reader
	out    io.Writer
	now    func() time.Time

	// recipes listed during this session, so commands can act on an id
	// without another round trip
	mu   sync.Mutex
	seen map[int64]models.Recipe

	closers []io.Closer
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	log := logging.New(c.LogFormat, c.LogLevel, os.Stderr)

	repos, err := client.InitDatabase(ctx, c.CacheDSN)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	apiClient, err := client.NewRecipePlannerClient(c.ServerEndpointAddr)
	if err != nil {
		_ = repos.Close()
		return nil, err
	}

	renderer, err := render.New(render.StyleAuto, render.DefaultWidth)
	if err != nil {
		_ = apiClient.Close()
		_ = repos.Close()
		return nil, err
	}

	source := recipeapi.New(recipeapi.Config{
		BaseURL: c.RecipeAPIBaseURL,
		APIKey:  c.RecipeAPIKey,
		Timeout: c.RecipeAPITimeout,
		RPS:     c.RecipeAPIRPS,
	}, recipeapi.WithLogger(log))

	rs := services.NewRecipeService(source, repos.Recipes, apiClient, log)

	a := &App{
		config:    c,
		log:       log.With("module", "cli"),
		recipes:   rs,
		auth:      services.NewAuthService(apiClient, repos.Sessions, log),
		comments:  services.NewCommentService(apiClient),
		ratings:   services.NewRatingService(apiClient),
		mealPlans: services.NewMealPlanService(apiClient),
		recent:    services.NewRecentlyViewedService(apiClient, log),
		synced:    repos.Sessions,
		feed:      feed.New(rs),
		renderer:  renderer,
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
		closers:   []io.Closer{apiClient, repos},
	}
	return a, nil
}

func (a *App) init() {
	if a.mode == nil {
		a.mode = state.NewValue(ModeOffline)
	}
	if a.out == nil {
		a.out = os.Stdout
	}
	if a.log == nil {
		a.log = logging.Nop()
	}
	if a.now == nil {
		a.now = time.Now
	}
	if a.seen == nil {
		a.seen = make(map[int64]models.Recipe)
	}
}

// Run restores the previous session, starts the online status watcher and
// blocks in the REPL until the user exits or ctx is done.
func (a *App) Run(ctx context.Context) {
	a.init()
	defer a.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	printlnFn("Welcome to RecipePlanner CLI (type 'help' for commands)")

	a.checkOnline(ctx)
	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	a.restoreSession(ctx)

	runREPL(ctx, a.commands(), a.isLoggedIn, a.getStatus, a.reader)
}

func (a *App) Close() {
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			a.log.Warn(context.Background(), "close failed", "error", err)
		}
	}
	a.closers = nil
}

func (a *App) restoreSession(ctx context.Context) {
	sess, ok, err := a.auth.RestoreSession(ctx)
	if err != nil {
		a.log.Warn(ctx, "failed to restore session", "error", err)
		return
	}
	if !ok {
		return
	}
	printlnFn(fmt.Sprintf("Welcome back, %s", sess.Username))
	if a.currentMode() == ModeOnline {
		a.syncFavorites(ctx)
	}
}

func (a *App) syncFavorites(ctx context.Context) {
	if err := a.recipes.SyncFavorites(ctx, a.userID()); err != nil {
		a.log.Warn(ctx, "favorites sync failed", "error", err)
		return
	}
	if a.synced != nil {
		if err := a.synced.MarkSynced(ctx, a.now()); err != nil {
			a.log.Warn(ctx, "failed to record sync time", "error", err)
		}
	}
}

func (a *App) userID() string {
	if a.auth == nil {
		return ""
	}
	return a.auth.CurrentSession().UserID
}

func (a *App) isLoggedIn() bool {
	return a.userID() != ""
}

func (a *App) currentMode() Mode {
	if a.mode == nil {
		return ""
	}
	return a.mode.Get()
}

func (a *App) setMode(mode Mode) {
	if a.mode == nil {
		a.mode = state.NewValue(mode)
		printlnFn(fmt.Sprintf("Switched to %s mode", mode))
		return
	}
	prev := a.mode.Get()
	a.mode.Set(mode)
	if prev != mode {
		printlnFn(fmt.Sprintf("Switched to %s mode", mode))
	}
}

func (a *App) getStatus() string {
	s := ""
	if a.isLoggedIn() {
		s = a.auth.CurrentSession().Username + " "
	}
	if m := a.currentMode(); m != "" {
		s = s + string(m)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

func (a *App) checkOnline(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	err := a.auth.Ping(ctx)
	cancel()

	if err != nil {
		if !errors.Is(err, context.Canceled) {
			a.setMode(ModeOffline)
		}
		return
	}
	a.setMode(ModeOnline)
}

// StartOnlineStatusWatcher pings the backend every interval until ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 3 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) remember(recipes ...models.Recipe) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.seen == nil {
		a.seen = make(map[int64]models.Recipe)
	}
	for _, r := range recipes {
		a.seen[r.ID] = r
	}
}

func (a *App) lookup(id int64) (models.Recipe, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	r, ok := a.seen[id]
	return r, ok
}
