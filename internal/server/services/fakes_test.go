package services

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/recipeplanner/internal/common"
	"github.com/dmitrijs2005/recipeplanner/internal/dbx"
	"github.com/dmitrijs2005/recipeplanner/internal/server/models"
	"github.com/dmitrijs2005/recipeplanner/internal/server/repositories/comments"
	"github.com/dmitrijs2005/recipeplanner/internal/server/repositories/favorites"
	"github.com/dmitrijs2005/recipeplanner/internal/server/repositories/mealplans"
	"github.com/dmitrijs2005/recipeplanner/internal/server/repositories/ratings"
	"github.com/dmitrijs2005/recipeplanner/internal/server/repositories/recentviews"
	"github.com/dmitrijs2005/recipeplanner/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/recipeplanner/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/recipeplanner/internal/server/repositories/users"
)

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

// fakeRepoManager hands out the same fake for every DBTX. Repositories left
// nil panic through the embedded interface when a test reaches them.
type fakeRepoManager struct {
	repomanager.RepositoryManager
	u  *fakeUsersRepo
	r  *fakeRefreshRepo
	f  *fakeFavoritesRepo
	c  *fakeCommentsRepo
	ra *fakeRatingsRepo
	mp *fakeMealPlansRepo
	rv *fakeRecentRepo
}

func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository                 { return m.u }
func (m *fakeRepoManager) RefreshTokens(dbx.DBTX) refreshtokens.Repository { return m.r }
func (m *fakeRepoManager) Favorites(dbx.DBTX) favorites.Repository         { return m.f }
func (m *fakeRepoManager) Comments(dbx.DBTX) comments.Repository           { return m.c }
func (m *fakeRepoManager) Ratings(dbx.DBTX) ratings.Repository             { return m.ra }
func (m *fakeRepoManager) MealPlans(dbx.DBTX) mealplans.Repository         { return m.mp }
func (m *fakeRepoManager) RecentViews(dbx.DBTX) recentviews.Repository     { return m.rv }

type fakeUsersRepo struct {
	byID      map[string]*models.User
	created   *models.User
	createErr error
	getErr    error
	updateErr error
	hashes    map[string]string
}

func newFakeUsersRepo(list ...*models.User) *fakeUsersRepo {
	f := &fakeUsersRepo{byID: map[string]*models.User{}, hashes: map[string]string{}}
	for _, u := range list {
		f.byID[u.ID] = u
	}
	return f
}

func (f *fakeUsersRepo) Create(_ context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	out := *u
	out.ID = "new-id"
	out.CreatedAt = time.Unix(100, 0)
	f.created = &out
	f.byID[out.ID] = &out
	return &out, nil
}

func (f *fakeUsersRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, u := range f.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsersRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return u, nil
}

func (f *fakeUsersRepo) UpdateUserName(_ context.Context, id, name string) (*models.User, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	u, ok := f.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	u.UserName = name
	return u, nil
}

func (f *fakeUsersRepo) UpdatePasswordHash(_ context.Context, id, hash string) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.hashes[id] = hash
	return nil
}

func (f *fakeUsersRepo) SetAvatarKey(_ context.Context, id, key string) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	u, ok := f.byID[id]
	if !ok {
		return common.ErrorNotFound
	}
	u.AvatarKey = key
	return nil
}

type fakeRefreshRepo struct {
	tokens    map[string]*models.RefreshToken
	findErr   error
	delErr    error
	createErr error
	deleted   []string
	revoked   []string
}

func newFakeRefreshRepo(list ...*models.RefreshToken) *fakeRefreshRepo {
	f := &fakeRefreshRepo{tokens: map[string]*models.RefreshToken{}}
	for _, t := range list {
		f.tokens[t.Token] = t
	}
	return f
}

func (f *fakeRefreshRepo) Create(_ context.Context, userID, token string, expiresAt time.Time) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.tokens[token] = &models.RefreshToken{UserID: userID, Token: token, Expires: expiresAt}
	return nil
}

func (f *fakeRefreshRepo) Find(_ context.Context, token string) (*models.RefreshToken, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	t, ok := f.tokens[token]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return t, nil
}

func (f *fakeRefreshRepo) Delete(_ context.Context, token string) error {
	if f.delErr != nil {
		return f.delErr
	}
	f.deleted = append(f.deleted, token)
	delete(f.tokens, token)
	return nil
}

func (f *fakeRefreshRepo) DeleteByUser(_ context.Context, userID string) (int64, error) {
	if f.delErr != nil {
		return 0, f.delErr
	}
	f.revoked = append(f.revoked, userID)
	var n int64
	for k, t := range f.tokens {
		if t.UserID == userID {
			delete(f.tokens, k)
			n++
		}
	}
	return n, nil
}

type fakeFavoritesRepo struct {
	favorites.Repository
	added   []int64
	removed []int64
	list    []*models.Favorite
	err     error
}

func (f *fakeFavoritesRepo) Add(_ context.Context, _ string, id int64) error {
	f.added = append(f.added, id)
	return f.err
}

func (f *fakeFavoritesRepo) Remove(_ context.Context, _ string, id int64) error {
	f.removed = append(f.removed, id)
	return f.err
}

func (f *fakeFavoritesRepo) List(context.Context, string) ([]*models.Favorite, error) {
	return f.list, f.err
}

type fakeCommentsRepo struct {
	mu      sync.Mutex
	byID    map[string]*models.Comment
	created []*models.Comment
	listErr error
	lists   int
}

func newFakeCommentsRepo(list ...*models.Comment) *fakeCommentsRepo {
	f := &fakeCommentsRepo{byID: map[string]*models.Comment{}}
	for _, c := range list {
		f.byID[c.ID] = c
	}
	return f
}

func (f *fakeCommentsRepo) Create(_ context.Context, c *models.Comment) (*models.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := *c
	out.UserName = "name-" + c.UserID
	out.CreatedAt = time.Unix(200, 0)
	f.byID[out.ID] = &out
	f.created = append(f.created, &out)
	return &out, nil
}

func (f *fakeCommentsRepo) Get(_ context.Context, id string) (*models.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return c, nil
}

func (f *fakeCommentsRepo) ListByRecipe(_ context.Context, recipeID int64) ([]*models.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lists++
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*models.Comment
	for _, c := range f.byID {
		if c.RecipeID == recipeID {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeCommentsRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[id]; !ok {
		return common.ErrorNotFound
	}
	delete(f.byID, id)
	return nil
}

type fakeRatingsRepo struct {
	ratings.Repository
	upserted *models.Rating
	avg      models.AverageRating
}

func (f *fakeRatingsRepo) Upsert(_ context.Context, r *models.Rating) (*models.Rating, error) {
	out := *r
	out.UserName = "ann"
	f.upserted = &out
	return &out, nil
}

func (f *fakeRatingsRepo) ListByRecipe(context.Context, int64) ([]*models.Rating, error) {
	if f.upserted == nil {
		return nil, nil
	}
	return []*models.Rating{f.upserted}, nil
}

func (f *fakeRatingsRepo) Average(context.Context, int64) (models.AverageRating, error) {
	return f.avg, nil
}

type fakeMealPlansRepo struct {
	upserted  *models.MealPlan
	upsertErr error
	from, to  time.Time
	deleted   string
}

func (f *fakeMealPlansRepo) Upsert(_ context.Context, p *models.MealPlan) (*models.MealPlan, error) {
	if f.upsertErr != nil {
		return nil, f.upsertErr
	}
	f.upserted = p
	return p, nil
}

func (f *fakeMealPlansRepo) List(_ context.Context, _ string, from, to time.Time) ([]*models.MealPlan, error) {
	f.from, f.to = from, to
	return nil, nil
}

func (f *fakeMealPlansRepo) Delete(_ context.Context, _ string, id string) error {
	if id == missingPlanID {
		return common.ErrorNotFound
	}
	f.deleted = id
	return nil
}

type fakeRecentRepo struct {
	recorded *models.RecentlyViewed
	limit    int
}

func (f *fakeRecentRepo) Record(_ context.Context, v *models.RecentlyViewed) error {
	f.recorded = v
	return nil
}

func (f *fakeRecentRepo) List(_ context.Context, _ string, limit int) ([]*models.RecentlyViewed, error) {
	f.limit = limit
	return nil, nil
}

type fakePresigner struct {
	putKey, putType string
	getKey          string
	err             error
}

func (f *fakePresigner) PresignPut(_ context.Context, key, contentType string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.putKey, f.putType = key, contentType
	return "https://put/" + key, nil
}

func (f *fakePresigner) PresignGet(_ context.Context, key string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.getKey = key
	return "https://get/" + key, nil
}
