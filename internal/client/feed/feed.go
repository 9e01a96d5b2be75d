// Package feed keeps the paginated recipe list shown by the browse commands.
package feed

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/dmitrijs2005/recipeplanner/internal/client/models"
	"github.com/dmitrijs2005/recipeplanner/internal/client/state"
	"github.com/dmitrijs2005/recipeplanner/internal/common"
)

// PopularQuery is sent when the user has not typed anything.
const PopularQuery = "popular"

// ErrBusy is returned when a page is already being loaded.
var ErrBusy = errors.New("feed is loading")

type Searcher interface {
	SearchRecipes(ctx context.Context, query string, offset int) ([]models.Recipe, error)
}

type State struct {
	Query       string
	Recipes     []models.Recipe
	CanLoadMore bool
	Loading     bool
	Err         error
}

type Feed struct {
	searcher Searcher
	state    *state.Value[State]

	// serializes page loads; the state itself is guarded by state.Value
	loadMu sync.Mutex
	gen    uint64
}

func New(s Searcher) *Feed {
	return &Feed{searcher: s, state: state.NewValue(State{Query: PopularQuery, CanLoadMore: true})}
}

func (f *Feed) State() State { return f.state.Get() }

// Subscribe calls fn after every state change.
func (f *Feed) Subscribe(fn func(State)) func() { return f.state.Subscribe(fn) }

// Load resets the feed to query and fetches the first page.
func (f *Feed) Load(ctx context.Context, query string) error {
	query = strings.TrimSpace(query)
	if query == "" {
		query = PopularQuery
	}

	f.loadMu.Lock()
	f.gen++
	gen := f.gen
	f.loadMu.Unlock()

	f.state.Set(State{Query: query, CanLoadMore: true, Loading: true})
	return f.fetch(ctx, gen, query, 0)
}

// LoadMore appends the next page. It does nothing once a short page has
// been seen.
func (f *Feed) LoadMore(ctx context.Context) error {
	cur := f.state.Get()
	if !cur.CanLoadMore {
		return nil
	}
	if cur.Loading {
		return ErrBusy
	}

	f.loadMu.Lock()
	gen := f.gen
	f.loadMu.Unlock()

	f.state.Update(func(s State) State {
		s.Loading = true
		s.Err = nil
		return s
	})
	return f.fetch(ctx, gen, cur.Query, len(cur.Recipes))
}

// Refresh reloads the current query from the first page.
func (f *Feed) Refresh(ctx context.Context) error {
	return f.Load(ctx, f.state.Get().Query)
}

func (f *Feed) fetch(ctx context.Context, gen uint64, query string, offset int) error {
	page, err := f.searcher.SearchRecipes(ctx, query, offset)

	f.loadMu.Lock()
	stale := gen != f.gen
	f.loadMu.Unlock()
	if stale {
		return nil
	}

	f.state.Update(func(s State) State {
		s.Loading = false
		if err != nil {
			s.Err = err
			return s
		}
		s.Recipes = append(s.Recipes, page...)
		if len(page) < common.DefaultPageSize {
			s.CanLoadMore = false
		}
		return s
	})
	return err
}
