package cli

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/recipeplanner/internal/client/models"
	"github.com/dmitrijs2005/recipeplanner/internal/client/recommend"
	"github.com/dmitrijs2005/recipeplanner/internal/client/search"
)

const (
	recordTimeout       = 3 * time.Second
	defaultRandomCount  = 5
	recommendCandidates = 100
)

// liveExit ends search-as-you-type mode.
const liveExit = "."

func (a *App) Search(ctx context.Context, args []string) error {
	if err := a.feed.Load(ctx, strings.Join(args, " ")); err != nil {
		return err
	}
	st := a.feed.State()
	a.remember(st.Recipes...)
	printRecipes(st.Recipes)
	if st.CanLoadMore {
		printlnFn("Type 'more' for the next page.")
	}
	return nil
}

func (a *App) More(ctx context.Context, _ []string) error {
	before := len(a.feed.State().Recipes)
	if !a.feed.State().CanLoadMore {
		printlnFn("No more results.")
		return nil
	}
	if err := a.feed.LoadMore(ctx); err != nil {
		return err
	}
	st := a.feed.State()
	page := st.Recipes[before:]
	a.remember(page...)
	printRecipes(page)
	if !st.CanLoadMore {
		printlnFn("End of results.")
	}
	return nil
}

// Live reads queries line by line and searches once typing pauses, showing
// only the latest query's results. A line with a single "." leaves.
func (a *App) Live(ctx context.Context, _ []string) error {
	printlnFn(fmt.Sprintf("Live search: type a query per line, %q to stop.", liveExit))

	d := search.New(ctx,
		func(ctx context.Context, q string) ([]models.Recipe, error) {
			return a.recipes.SearchRecipes(ctx, q, 0)
		},
		func(r search.Result[[]models.Recipe]) {
			if r.Err != nil {
				printlnFn(describeError(r.Err))
				return
			}
			a.remember(r.Value...)
			printlnFn(fmt.Sprintf("-- %q --", r.Query))
			printRecipes(r.Value)
		},
		search.WithDelay(a.config.SearchDebounce),
	)
	defer d.Stop()

	for {
		line, err := a.reader.ReadString('\n')
		q := strings.TrimSpace(line)
		if q == liveExit {
			return nil
		}
		if q != "" {
			d.Submit(q)
		}
		if err != nil {
			// input closed: let the last query finish
			d.Wait()
			return nil
		}
	}
}

func (a *App) Random(ctx context.Context, args []string) error {
	out, err := a.recipes.RandomRecipes(ctx, parseCount(args, defaultRandomCount))
	if err != nil {
		return err
	}
	list := make([]models.Recipe, len(out))
	for i, d := range out {
		list[i] = d.Recipe
	}
	a.remember(list...)
	printRecipes(list)
	return nil
}

func (a *App) Show(ctx context.Context, args []string) error {
	id, err := parseID(args, "show <id>")
	if err != nil {
		return err
	}

	d, err := a.recipes.GetRecipeDetail(ctx, id)
	if err != nil {
		return err
	}
	a.remember(d.Recipe)

	out, err := a.renderer.Detail(d)
	if err != nil {
		return err
	}
	printlnFn(out)

	if !d.Cached && a.isLoggedIn() {
		rctx, cancel := context.WithTimeout(ctx, recordTimeout)
		a.recent.Record(rctx, a.userID(), d.Recipe)
		cancel()
	}
	return nil
}

func (a *App) Recent(ctx context.Context, args []string) error {
	entries, err := a.recent.List(ctx, a.userID(), parseCount(args, 0))
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		printlnFn("Nothing viewed yet.")
		return nil
	}
	for _, e := range entries {
		printlnFn(fmt.Sprintf("%8d  %s  (%s)", e.RecipeID, e.RecipeName, e.ViewedAt.Local().Format(time.DateTime)))
	}
	return nil
}

// Recommend ranks the recipes seen in this session and the cached
// favorites. Arguments are pantry ingredients matched against the titles.
func (a *App) Recommend(ctx context.Context, args []string) error {
	favorites, err := a.recipes.Favorites(ctx)
	if err != nil {
		return err
	}

	var recent []models.RecentlyViewedEntry
	if a.isLoggedIn() {
		recent, err = a.recent.List(ctx, a.userID(), 50)
		if err != nil {
			a.log.Warn(ctx, "recently viewed unavailable for recommendations", "error", err)
		}
	}

	candidates := append(a.seenRecipes(), favorites...)
	if len(candidates) > recommendCandidates {
		candidates = candidates[:recommendCandidates]
	}

	sig := recommend.NewSignals(favorites, recent)
	if len(args) > 0 {
		for _, r := range candidates {
			sig.Ingredients[r.ID] = recommend.CountMatches([]string{r.Title}, args)
		}
	}

	ranked := recommend.Rank(candidates, sig, recommend.DefaultMax)
	if len(ranked) == 0 {
		printlnFn("Nothing to recommend yet. Search or favorite a few recipes first.")
		return nil
	}
	for _, s := range ranked {
		printlnFn(fmt.Sprintf("%s  [score %d]", recipeLine(s.Recipe), s.Score))
	}
	return nil
}

func (a *App) seenRecipes() []models.Recipe {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]models.Recipe, 0, len(a.seen))
	for _, r := range a.seen {
		out = append(out, r)
	}
	slices.SortFunc(out, func(x, y models.Recipe) int { return cmp.Compare(x.ID, y.ID) })
	return out
}

func (a *App) Fav(ctx context.Context, args []string) error {
	id, err := parseID(args, "fav <id>")
	if err != nil {
		return err
	}

	r, ok := a.lookup(id)
	if !ok {
		d, err := a.recipes.GetRecipeDetail(ctx, id)
		if err != nil {
			return err
		}
		r = d.Recipe
	}

	on, err := a.recipes.ToggleFavorite(ctx, a.userID(), r)
	if err != nil {
		return err
	}
	r.IsFavorite = on
	a.remember(r)

	if on {
		printlnFn(fmt.Sprintf("Added %q to favorites.", r.Title))
	} else {
		printlnFn(fmt.Sprintf("Removed %q from favorites.", r.Title))
	}
	return nil
}

func (a *App) Favorites(ctx context.Context, _ []string) error {
	list, err := a.recipes.Favorites(ctx)
	if err != nil {
		return err
	}
	a.remember(list...)
	printRecipes(list)
	return nil
}

func (a *App) Sync(ctx context.Context, _ []string) error {
	if err := a.recipes.SyncFavorites(ctx, a.userID()); err != nil {
		return err
	}
	// refresh remembered recipes so fav sees the synced flags
	if favs, err := a.recipes.Favorites(ctx); err != nil {
		a.log.Warn(ctx, "failed to reload favorites after sync", "error", err)
	} else {
		a.remember(favs...)
	}
	if a.synced != nil {
		if err := a.synced.MarkSynced(ctx, a.now()); err != nil {
			a.log.Warn(ctx, "failed to record sync time", "error", err)
		}
	}
	printlnFn("Favorites synchronized.")
	return nil
}

// Prune drops non-favorite cache rows older than the given number of days,
// or than the configured cache max age when no positive value is given.
func (a *App) Prune(ctx context.Context, args []string) error {
	days := a.config.CacheMaxAgeDays
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 0 {
			return usageError("prune [days]")
		}
		if n > 0 {
			days = n
		}
	}
	n, err := a.recipes.PruneCache(ctx, days)
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Removed %d cached recipes.", n))
	return nil
}

func (a *App) CacheStats(ctx context.Context, _ []string) error {
	st, err := a.recipes.CacheStats(ctx, a.config.CacheMaxAge())
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Cached recipes: %d (favorites %d, older than %d days %d)",
		st.Total, st.Favorites, a.config.CacheMaxAgeDays, st.Stale))
	return nil
}

