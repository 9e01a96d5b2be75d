package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/recipeplanner/internal/client/client"
	"github.com/dmitrijs2005/recipeplanner/internal/client/models"
	"github.com/dmitrijs2005/recipeplanner/internal/client/recipeapi"
	"github.com/dmitrijs2005/recipeplanner/internal/client/repositories/recipes"
	"github.com/dmitrijs2005/recipeplanner/internal/common"
	"github.com/dmitrijs2005/recipeplanner/internal/logging"
	"golang.org/x/sync/errgroup"
)

const (
	defaultPruneDays = 7
	prefetchLimit    = 3
)

// RecipeService reads recipes remote-first and falls back to the cache when
// the recipe API is unreachable.
type RecipeService interface {
	SearchRecipes(ctx context.Context, query string, offset int) ([]models.Recipe, error)
	GetRecipeDetail(ctx context.Context, id int64) (models.RecipeDetail, error)
	RandomRecipes(ctx context.Context, count int) ([]models.RecipeDetail, error)
	// ToggleFavorite writes the remote favorite first and mirrors it locally
	// only on success. It returns the new flag.
	ToggleFavorite(ctx context.Context, userID string, recipe models.Recipe) (bool, error)
	// SyncFavorites marks every remote favorite as favorite in the cache.
	// Local favorites missing remotely are left unchanged.
	SyncFavorites(ctx context.Context, userID string) error
	Favorites(ctx context.Context) ([]models.Recipe, error)
	PruneCache(ctx context.Context, days int) (int64, error)
	CacheStats(ctx context.Context, maxAge time.Duration) (recipes.Stats, error)
}

type recipeService struct {
	source    recipeapi.Source
	cache     recipes.Repository
	favorites client.FavoritesClient
	log       logging.Logger
}

func NewRecipeService(source recipeapi.Source, cache recipes.Repository, favorites client.FavoritesClient, log logging.Logger) RecipeService {
	if log == nil {
		log = logging.Nop()
	}
	return &recipeService{source: source, cache: cache, favorites: favorites, log: log.With("module", "recipes")}
}

func (s *recipeService) SearchRecipes(ctx context.Context, query string, offset int) ([]models.Recipe, error) {
	query = strings.TrimSpace(query)

	res, err := s.source.Search(ctx, query, offset, common.DefaultPageSize)
	if err != nil {
		if !errors.Is(err, recipeapi.ErrNoConnectivity) {
			return nil, err
		}
		s.log.Warn(ctx, "recipe api unreachable, serving search from cache", "query", query, "offset", offset)
		cached, cerr := s.cache.Query(ctx, query, offset, common.DefaultPageSize)
		if cerr != nil {
			return nil, fmt.Errorf("failed to read cache: %w", cerr)
		}
		return cached, nil
	}

	if err := s.cache.Upsert(ctx, res.Recipes); err != nil {
		s.log.Warn(ctx, "failed to cache search results", "error", err)
	}
	return s.mergeFavorites(ctx, res.Recipes), nil
}

// mergeFavorites copies the cached favorite flag into the remote values.
func (s *recipeService) mergeFavorites(ctx context.Context, in []models.Recipe) []models.Recipe {
	ids := make([]int64, len(in))
	for i, r := range in {
		ids[i] = r.ID
	}
	favs, err := s.cache.FavoriteIDs(ctx, ids)
	if err != nil {
		s.log.Warn(ctx, "failed to read favorite flags", "error", err)
		return in
	}
	out := make([]models.Recipe, len(in))
	for i, r := range in {
		r.IsFavorite = r.IsFavorite || favs[r.ID]
		out[i] = r
	}
	return out
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, id int64) (models.RecipeDetail, error) {
	detail, err := s.source.Detail(ctx, id)
	if err != nil {
		if !errors.Is(err, recipeapi.ErrNoConnectivity) {
			return models.RecipeDetail{}, err
		}
		cached, cerr := s.cache.GetByID(ctx, id)
		if errors.Is(cerr, common.ErrorNotFound) {
			return models.RecipeDetail{}, err
		}
		if cerr != nil {
			return models.RecipeDetail{}, fmt.Errorf("failed to read cache: %w", cerr)
		}
		s.log.Warn(ctx, "recipe api unreachable, serving detail from cache", "id", id)
		return models.RecipeDetail{Recipe: cached, Cached: true}, nil
	}

	if err := s.cache.Upsert(ctx, []models.Recipe{detail.Recipe}); err != nil {
		s.log.Warn(ctx, "failed to cache recipe", "id", id, "error", err)
	}
	merged := s.mergeFavorites(ctx, []models.Recipe{detail.Recipe})
	detail.Recipe = merged[0]
	return detail, nil
}

func (s *recipeService) RandomRecipes(ctx context.Context, count int) ([]models.RecipeDetail, error) {
	out, err := s.source.Random(ctx, count)
	if err != nil {
		return nil, err
	}

	summaries := make([]models.Recipe, len(out))
	for i, d := range out {
		summaries[i] = d.Recipe
	}
	if err := s.cache.Upsert(ctx, summaries); err != nil {
		s.log.Warn(ctx, "failed to cache random recipes", "error", err)
	}
	merged := s.mergeFavorites(ctx, summaries)
	for i := range out {
		out[i].Recipe = merged[i]
	}
	return out, nil
}

func (s *recipeService) ToggleFavorite(ctx context.Context, userID string, recipe models.Recipe) (bool, error) {
	if userID == "" {
		return false, ErrAuthRequired
	}

	next := !recipe.IsFavorite
	var err error
	if next {
		err = s.favorites.AddFavorite(ctx, recipe.ID)
	} else {
		err = s.favorites.RemoveFavorite(ctx, recipe.ID)
	}
	if err != nil {
		return recipe.IsFavorite, fmt.Errorf("failed to update favorite: %w", err)
	}

	// SetFavorite ignores unknown ids, so make sure the recipe is cached
	if _, err := s.cache.GetByID(ctx, recipe.ID); errors.Is(err, common.ErrorNotFound) {
		recipe.IsFavorite = false
		if err := s.cache.Upsert(ctx, []models.Recipe{recipe}); err != nil {
			return next, fmt.Errorf("failed to cache recipe: %w", err)
		}
	}
	if err := s.cache.SetFavorite(ctx, recipe.ID, next); err != nil {
		return next, fmt.Errorf("failed to update local favorite: %w", err)
	}
	return next, nil
}

func (s *recipeService) SyncFavorites(ctx context.Context, userID string) error {
	if userID == "" {
		return ErrAuthRequired
	}

	remote, err := s.favorites.ListFavorites(ctx)
	if err != nil {
		return fmt.Errorf("failed to list remote favorites: %w", err)
	}

	var missing []int64
	for _, f := range remote {
		_, err := s.cache.GetByID(ctx, f.RecipeID)
		if errors.Is(err, common.ErrorNotFound) {
			missing = append(missing, f.RecipeID)
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to read cache: %w", err)
		}
		if err := s.cache.SetFavorite(ctx, f.RecipeID, true); err != nil {
			return err
		}
	}

	s.prefetch(ctx, missing)
	return nil
}

// prefetch fetches remote favorites that were never cached so they show up
// offline. Failures are logged and skipped.
func (s *recipeService) prefetch(ctx context.Context, ids []int64) {
	if len(ids) == 0 {
		return
	}

	var (
		mu      sync.Mutex
		fetched []models.Recipe
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(prefetchLimit)
	for _, id := range ids {
		g.Go(func() error {
			d, err := s.source.Detail(gctx, id)
			if err != nil {
				s.log.Debug(gctx, "favorite prefetch failed", "id", id, "error", err)
				return nil
			}
			d.IsFavorite = true
			mu.Lock()
			fetched = append(fetched, d.Recipe)
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	if err := s.cache.Upsert(ctx, fetched); err != nil {
		s.log.Warn(ctx, "failed to cache prefetched favorites", "error", err)
	}
}

func (s *recipeService) Favorites(ctx context.Context) ([]models.Recipe, error) {
	return s.cache.ListFavorites(ctx)
}

func (s *recipeService) PruneCache(ctx context.Context, days int) (int64, error) {
	if days <= 0 {
		days = defaultPruneDays
	}
	n, err := s.cache.PruneOlderThan(ctx, days)
	if err != nil {
		return 0, err
	}
	s.log.Info(ctx, "cache pruned", "days", days, "removed", n)
	return n, nil
}

func (s *recipeService) CacheStats(ctx context.Context, maxAge time.Duration) (recipes.Stats, error) {
	return s.cache.Stats(ctx, maxAge)
}
