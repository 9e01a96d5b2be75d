package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/dmitrijs2005/recipeplanner/internal/client/client"
	"github.com/dmitrijs2005/recipeplanner/internal/client/models"
	"github.com/dmitrijs2005/recipeplanner/internal/client/recipeapi"
	"github.com/dmitrijs2005/recipeplanner/internal/client/repositories/recipes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- fakes ----

type fakeSource struct {
	mu sync.Mutex

	searchResult models.SearchResult
	searchErr    error
	lastQuery    string
	lastOffset   int

	details   map[int64]models.RecipeDetail
	detailErr error
	detailIDs []int64

	random    []models.RecipeDetail
	randomErr error
}

func (f *fakeSource) Search(ctx context.Context, query string, offset, pageSize int) (models.SearchResult, error) {
	f.lastQuery, f.lastOffset = query, offset
	return f.searchResult, f.searchErr
}

func (f *fakeSource) Detail(ctx context.Context, id int64) (models.RecipeDetail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.detailIDs = append(f.detailIDs, id)
	if f.detailErr != nil {
		return models.RecipeDetail{}, f.detailErr
	}
	d, ok := f.details[id]
	if !ok {
		return models.RecipeDetail{}, recipeapi.HTTPStatusError(404)
	}
	return d, nil
}

func (f *fakeSource) Random(ctx context.Context, count int) ([]models.RecipeDetail, error) {
	return f.random, f.randomErr
}

type fakeFavorites struct {
	added, removed []int64
	list           []models.Favorite
	err            error
}

func (f *fakeFavorites) AddFavorite(ctx context.Context, id int64) error {
	if f.err != nil {
		return f.err
	}
	f.added = append(f.added, id)
	return nil
}

func (f *fakeFavorites) RemoveFavorite(ctx context.Context, id int64) error {
	if f.err != nil {
		return f.err
	}
	f.removed = append(f.removed, id)
	return nil
}

func (f *fakeFavorites) ListFavorites(ctx context.Context) ([]models.Favorite, error) {
	return f.list, f.err
}

// ---- helpers ----

func newCache(t *testing.T) *recipes.SQLiteRepository {
	t.Helper()
	repos, err := client.InitDatabase(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = repos.Close() })
	return repos.Recipes
}

func offline() error {
	return &recipeapi.Error{Kind: recipeapi.KindNoConnectivity, Err: errors.New("dial tcp: connection refused")}
}

func pasta() models.Recipe {
	return models.Recipe{ID: 1, Title: "Pasta", ReadyInMinutes: models.OptionalInt(20)}
}

// ---- tests ----

func TestSearchRecipes_RemoteSuccessCachesAndMergesFavorite(t *testing.T) {
	cache := newCache(t)
	ctx := context.Background()
	require.NoError(t, cache.Upsert(ctx, []models.Recipe{pasta()}))
	require.NoError(t, cache.SetFavorite(ctx, 1, true))

	src := &fakeSource{searchResult: models.SearchResult{Recipes: []models.Recipe{
		{ID: 1, Title: "Pasta v2"},
		{ID: 2, Title: "Salad"},
	}}}
	svc := NewRecipeService(src, cache, &fakeFavorites{}, nil)

	got, err := svc.SearchRecipes(ctx, "  pa  ", 20)
	require.NoError(t, err)
	assert.Equal(t, "pa", src.lastQuery)
	assert.Equal(t, 20, src.lastOffset)

	require.Len(t, got, 2)
	assert.Equal(t, "Pasta v2", got[0].Title)
	assert.True(t, got[0].IsFavorite)
	assert.False(t, got[1].IsFavorite)

	cached, err := cache.GetByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Salad", cached.Title)
}

func TestSearchRecipes_OfflineFallsBackToCache(t *testing.T) {
	cache := newCache(t)
	ctx := context.Background()
	require.NoError(t, cache.Upsert(ctx, []models.Recipe{pasta(), {ID: 2, Title: "Salad"}}))

	svc := NewRecipeService(&fakeSource{searchErr: offline()}, cache, &fakeFavorites{}, nil)

	got, err := svc.SearchRecipes(ctx, "past", 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)

	got, err = svc.SearchRecipes(ctx, "nothing", 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSearchRecipes_OtherErrorsPropagate(t *testing.T) {
	cache := newCache(t)
	svc := NewRecipeService(&fakeSource{searchErr: recipeapi.HTTPStatusError(500)}, cache, &fakeFavorites{}, nil)

	_, err := svc.SearchRecipes(context.Background(), "x", 0)
	require.ErrorIs(t, err, recipeapi.HTTPStatusError(500))
}

func TestGetRecipeDetail_RemoteSuccess(t *testing.T) {
	cache := newCache(t)
	ctx := context.Background()
	src := &fakeSource{details: map[int64]models.RecipeDetail{
		1: {Recipe: pasta(), Ingredients: []models.Ingredient{{Name: "flour"}}},
	}}
	svc := NewRecipeService(src, cache, &fakeFavorites{}, nil)

	d, err := svc.GetRecipeDetail(ctx, 1)
	require.NoError(t, err)
	assert.False(t, d.Cached)
	assert.Len(t, d.Ingredients, 1)

	_, err = cache.GetByID(ctx, 1)
	require.NoError(t, err)
}

func TestGetRecipeDetail_OfflineCachedAndMissing(t *testing.T) {
	cache := newCache(t)
	ctx := context.Background()
	require.NoError(t, cache.Upsert(ctx, []models.Recipe{pasta()}))

	svc := NewRecipeService(&fakeSource{detailErr: offline()}, cache, &fakeFavorites{}, nil)

	d, err := svc.GetRecipeDetail(ctx, 1)
	require.NoError(t, err)
	assert.True(t, d.Cached)
	assert.Equal(t, "Pasta", d.Title)
	assert.Empty(t, d.Ingredients)

	_, err = svc.GetRecipeDetail(ctx, 99)
	require.ErrorIs(t, err, recipeapi.ErrNoConnectivity)
}

func TestToggleFavorite_RequiresAuth(t *testing.T) {
	favs := &fakeFavorites{}
	svc := NewRecipeService(&fakeSource{}, newCache(t), favs, nil)

	_, err := svc.ToggleFavorite(context.Background(), "", pasta())
	require.ErrorIs(t, err, ErrAuthRequired)
	assert.Empty(t, favs.added)
}

func TestToggleFavorite_RemoteFirstThenLocal(t *testing.T) {
	cache := newCache(t)
	ctx := context.Background()
	favs := &fakeFavorites{}
	svc := NewRecipeService(&fakeSource{}, cache, favs, nil)

	on, err := svc.ToggleFavorite(ctx, "u1", pasta())
	require.NoError(t, err)
	assert.True(t, on)
	assert.Equal(t, []int64{1}, favs.added)

	got, err := cache.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.True(t, got.IsFavorite)

	off, err := svc.ToggleFavorite(ctx, "u1", got)
	require.NoError(t, err)
	assert.False(t, off)
	assert.Equal(t, []int64{1}, favs.removed)

	got, err = cache.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.False(t, got.IsFavorite)
}

func TestToggleFavorite_RemoteFailureLeavesLocalUnchanged(t *testing.T) {
	cache := newCache(t)
	ctx := context.Background()
	require.NoError(t, cache.Upsert(ctx, []models.Recipe{pasta()}))

	svc := NewRecipeService(&fakeSource{}, cache, &fakeFavorites{err: client.ErrUnavailable}, nil)

	flag, err := svc.ToggleFavorite(ctx, "u1", pasta())
	require.ErrorIs(t, err, client.ErrUnavailable)
	assert.False(t, flag)

	got, err := cache.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.False(t, got.IsFavorite)
}

func TestSyncFavorites_OneDirectionalWithPrefetch(t *testing.T) {
	cache := newCache(t)
	ctx := context.Background()
	require.NoError(t, cache.Upsert(ctx, []models.Recipe{pasta(), {ID: 2, Title: "Local only"}}))
	require.NoError(t, cache.SetFavorite(ctx, 2, true))

	src := &fakeSource{details: map[int64]models.RecipeDetail{
		3: {Recipe: models.Recipe{ID: 3, Title: "Remote only"}},
	}}
	favs := &fakeFavorites{list: []models.Favorite{{RecipeID: 1}, {RecipeID: 3}, {RecipeID: 4}}}
	svc := NewRecipeService(src, cache, favs, nil)

	require.NoError(t, svc.SyncFavorites(ctx, "u1"))

	list, err := svc.Favorites(ctx)
	require.NoError(t, err)
	ids := map[int64]bool{}
	for _, r := range list {
		ids[r.ID] = true
	}
	// 1 marked, 2 kept although not remote, 3 prefetched, 4 failed to fetch
	assert.Equal(t, map[int64]bool{1: true, 2: true, 3: true}, ids)
	assert.ElementsMatch(t, []int64{3, 4}, src.detailIDs)
}

func TestSyncFavorites_Errors(t *testing.T) {
	svc := NewRecipeService(&fakeSource{}, newCache(t), &fakeFavorites{err: client.ErrUnavailable}, nil)
	require.ErrorIs(t, svc.SyncFavorites(context.Background(), ""), ErrAuthRequired)
	require.ErrorIs(t, svc.SyncFavorites(context.Background(), "u1"), client.ErrUnavailable)
}

func TestRandomRecipes_CachesSummaries(t *testing.T) {
	cache := newCache(t)
	ctx := context.Background()
	src := &fakeSource{random: []models.RecipeDetail{{Recipe: models.Recipe{ID: 9, Title: "Surprise"}}}}
	svc := NewRecipeService(src, cache, &fakeFavorites{}, nil)

	out, err := svc.RandomRecipes(ctx, 1)
	require.NoError(t, err)
	require.Len(t, out, 1)

	_, err = cache.GetByID(ctx, 9)
	require.NoError(t, err)

	src.randomErr = offline()
	_, err = svc.RandomRecipes(ctx, 1)
	require.ErrorIs(t, err, recipeapi.ErrNoConnectivity)
}

func TestPruneCache_DefaultDays(t *testing.T) {
	cache := newCache(t)
	svc := NewRecipeService(&fakeSource{}, cache, &fakeFavorites{}, nil)
	require.NoError(t, cache.Upsert(context.Background(), []models.Recipe{pasta()}))

	n, err := svc.PruneCache(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	stats, err := svc.CacheStats(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Total)
}
