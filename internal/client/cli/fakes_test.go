package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/recipeplanner/internal/client/config"
	"github.com/dmitrijs2005/recipeplanner/internal/client/feed"
	"github.com/dmitrijs2005/recipeplanner/internal/client/models"
	"github.com/dmitrijs2005/recipeplanner/internal/client/render"
	"github.com/dmitrijs2005/recipeplanner/internal/client/repositories/recipes"
	"github.com/dmitrijs2005/recipeplanner/internal/client/services"
	"github.com/stretchr/testify/require"
)

// ------------ output capture ------------

type output struct {
	mu    sync.Mutex
	lines []string
}

func (o *output) String() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return strings.Join(o.lines, "\n")
}

func captureOutput(t *testing.T) *output {
	t.Helper()
	o := &output{}
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		o.mu.Lock()
		defer o.mu.Unlock()
		o.lines = append(o.lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return o
}

func readerFromLines(lines ...string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(strings.Join(lines, "\n") + "\n"))
}

// ------------ fakes ------------

type fakeRecipes struct {
	services.RecipeService

	search       map[string][]models.Recipe
	searchErr    error
	searchOffset []int
	detail       models.RecipeDetail
	detailErr    error
	random       []models.RecipeDetail
	favorites    []models.Recipe
	toggled      []models.Recipe
	toggleErr    error
	syncedUser   string
	syncErr      error
	prunedDays   int
	stats        recipes.Stats
}

func (f *fakeRecipes) SearchRecipes(ctx context.Context, query string, offset int) ([]models.Recipe, error) {
	f.searchOffset = append(f.searchOffset, offset)
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	if offset > 0 {
		return nil, nil
	}
	return f.search[query], nil
}

func (f *fakeRecipes) GetRecipeDetail(ctx context.Context, id int64) (models.RecipeDetail, error) {
	if f.detailErr != nil {
		return models.RecipeDetail{}, f.detailErr
	}
	d := f.detail
	d.ID = id
	return d, nil
}

func (f *fakeRecipes) RandomRecipes(ctx context.Context, count int) ([]models.RecipeDetail, error) {
	return f.random, nil
}

func (f *fakeRecipes) ToggleFavorite(ctx context.Context, userID string, r models.Recipe) (bool, error) {
	if userID == "" {
		return false, services.ErrAuthRequired
	}
	if f.toggleErr != nil {
		return r.IsFavorite, f.toggleErr
	}
	f.toggled = append(f.toggled, r)
	return !r.IsFavorite, nil
}

func (f *fakeRecipes) SyncFavorites(ctx context.Context, userID string) error {
	f.syncedUser = userID
	return f.syncErr
}

func (f *fakeRecipes) Favorites(ctx context.Context) ([]models.Recipe, error) {
	return f.favorites, nil
}

func (f *fakeRecipes) PruneCache(ctx context.Context, days int) (int64, error) {
	f.prunedDays = days
	return 3, nil
}

func (f *fakeRecipes) CacheStats(ctx context.Context, maxAge time.Duration) (recipes.Stats, error) {
	return f.stats, nil
}

type fakeAuth struct {
	services.AuthService

	session models.Session
	pingErr error

	regEmail, regPass, regUser string
	regErr                     error
	loginEmail, loginPass      string
	loginErr                   error
	logoutCalled               bool
	renamed                    string
	passwords                  []string
	uploadType                 string
	uploadData                 []byte
	restore                    models.Session
}

func (f *fakeAuth) CurrentSession() models.Session { return f.session }
func (f *fakeAuth) Ping(ctx context.Context) error { return f.pingErr }
func (f *fakeAuth) Register(ctx context.Context, email, password, username string) (string, error) {
	f.regEmail, f.regPass, f.regUser = email, password, username
	return "u1", f.regErr
}
func (f *fakeAuth) Login(ctx context.Context, email, password string) (models.Session, error) {
	f.loginEmail, f.loginPass = email, password
	if f.loginErr != nil {
		return models.Session{}, f.loginErr
	}
	f.session = models.Session{UserID: "u1", Username: "cook", Email: email, AccessToken: "a", RefreshToken: "r"}
	return f.session, nil
}
func (f *fakeAuth) Logout(ctx context.Context) error {
	f.logoutCalled = true
	f.session = models.Session{}
	return nil
}
func (f *fakeAuth) RestoreSession(ctx context.Context) (models.Session, bool, error) {
	if !f.restore.Valid() {
		return models.Session{}, false, nil
	}
	f.session = f.restore
	return f.restore, true, nil
}
func (f *fakeAuth) Profile(ctx context.Context) (models.UserProfile, error) {
	return models.UserProfile{ID: f.session.UserID, Username: f.session.Username, Email: f.session.Email}, nil
}
func (f *fakeAuth) UpdateProfile(ctx context.Context, username string) (models.UserProfile, error) {
	f.renamed = username
	return models.UserProfile{Username: username}, nil
}
func (f *fakeAuth) ChangePassword(ctx context.Context, current, next, confirm string) error {
	f.passwords = []string{current, next, confirm}
	return nil
}
func (f *fakeAuth) UploadAvatar(ctx context.Context, contentType string, data []byte) (string, error) {
	f.uploadType, f.uploadData = contentType, data
	return "https://cdn.test/avatar", nil
}

type fakeComments struct {
	services.CommentService

	list    []models.Comment
	added   string
	deleted []models.Comment
	watch   [][]models.Comment
}

func (f *fakeComments) Add(ctx context.Context, userID string, recipeID int64, text string) (models.Comment, error) {
	f.added = text
	return models.Comment{ID: "c9", RecipeID: recipeID, UserID: userID, Text: text}, nil
}
func (f *fakeComments) Delete(ctx context.Context, userID string, c models.Comment) error {
	f.deleted = append(f.deleted, c)
	return nil
}
func (f *fakeComments) List(ctx context.Context, userID string, recipeID int64) ([]models.Comment, error) {
	return f.list, nil
}
func (f *fakeComments) Watch(ctx context.Context, userID string, recipeID int64, fn func([]models.Comment)) error {
	for _, s := range f.watch {
		fn(s)
	}
	return nil
}

type fakeRatings struct {
	services.RatingService

	score  int
	review *string
	avg    models.AverageRating
	list   []models.Rating
}

func (f *fakeRatings) Rate(ctx context.Context, userID string, recipeID int64, score int, review *string) (models.Rating, error) {
	f.score, f.review = score, review
	return models.Rating{Score: score, Review: review}, nil
}
func (f *fakeRatings) List(ctx context.Context, userID string, recipeID int64) ([]models.Rating, error) {
	return f.list, nil
}
func (f *fakeRatings) Average(ctx context.Context, userID string, recipeID int64) (models.AverageRating, error) {
	return f.avg, nil
}

type fakeRecent struct {
	services.RecentlyViewedService

	recorded []int64
	list     []models.RecentlyViewedEntry
	limit    int
}

func (f *fakeRecent) Record(ctx context.Context, userID string, r models.Recipe) {
	f.recorded = append(f.recorded, r.ID)
}
func (f *fakeRecent) List(ctx context.Context, userID string, limit int) ([]models.RecentlyViewedEntry, error) {
	f.limit = limit
	return f.list, nil
}

type fakeMarker struct{ at time.Time }

func (f *fakeMarker) MarkSynced(ctx context.Context, at time.Time) error {
	f.at = at
	return nil
}

// fakePlansClient backs a real MealPlanService so Calendar grouping is exercised.
type fakePlansClient struct {
	entries []models.MealPlanEntry
	deleted []string
}

func (f *fakePlansClient) AddMealPlan(ctx context.Context, e models.MealPlanEntry) (models.MealPlanEntry, error) {
	f.entries = append(f.entries, e)
	return e, nil
}
func (f *fakePlansClient) ListMealPlans(ctx context.Context, from, to time.Time) ([]models.MealPlanEntry, error) {
	return append([]models.MealPlanEntry(nil), f.entries...), nil
}
func (f *fakePlansClient) DeleteMealPlan(ctx context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

// ------------ app ------------

type testDeps struct {
	recipes  *fakeRecipes
	auth     *fakeAuth
	comments *fakeComments
	ratings  *fakeRatings
	recent   *fakeRecent
	plans    *fakePlansClient
	marker   *fakeMarker
}

func newTestApp(t *testing.T, r *bufio.Reader) (*App, *testDeps) {
	t.Helper()
	d := &testDeps{
		recipes:  &fakeRecipes{},
		auth:     &fakeAuth{},
		comments: &fakeComments{},
		ratings:  &fakeRatings{},
		recent:   &fakeRecent{},
		plans:    &fakePlansClient{},
		marker:   &fakeMarker{},
	}
	renderer, err := render.New(render.StylePlain, 80)
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.SearchDebounce = 10 * time.Millisecond

	a := &App{
		config:    cfg,
		recipes:   d.recipes,
		auth:      d.auth,
		comments:  d.comments,
		ratings:   d.ratings,
		mealPlans: services.NewMealPlanService(d.plans),
		recent:    d.recent,
		synced:    d.marker,
		feed:      feed.New(d.recipes),
		renderer:  renderer,
		reader:    r,
		now:       func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) },
	}
	a.init()
	a.out = &strings.Builder{}
	return a, d
}

func (d *testDeps) signIn() {
	d.auth.session = models.Session{UserID: "u1", Username: "cook", AccessToken: "a", RefreshToken: "r"}
}
