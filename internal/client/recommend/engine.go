// Package recommend scores cached recipes against the user's favorites,
// recent views and pantry.
package recommend

import (
	"cmp"
	"slices"
	"strings"

	"github.com/dmitrijs2005/recipeplanner/internal/client/models"
)

const (
	DefaultMax = 10

	favoriteWeight   = 2
	ingredientWeight = 3
	recentWeight     = 1

	quickRecipeMinutes = 30
	quickRecipeBonus   = 5
)

// Score weighs ingredient matches highest, then favorites, then recent views,
// and rewards recipes ready in half an hour or less.
func Score(r models.Recipe, favoritesCount, ingredientMatch, recentViews int) int {
	score := favoritesCount*favoriteWeight +
		ingredientMatch*ingredientWeight +
		recentViews*recentWeight
	if r.ReadyInMinutes != nil && *r.ReadyInMinutes <= quickRecipeMinutes {
		score += quickRecipeBonus
	}
	return score
}

// Signals are the per-recipe inputs to Score, keyed by recipe id.
type Signals struct {
	Favorites   map[int64]int
	Ingredients map[int64]int
	RecentViews map[int64]int
}

// NewSignals builds signals from the user's favorites and recently viewed
// entries. Ingredients is left for the caller to fill.
func NewSignals(favorites []models.Recipe, recent []models.RecentlyViewedEntry) Signals {
	s := Signals{
		Favorites:   make(map[int64]int, len(favorites)),
		Ingredients: map[int64]int{},
		RecentViews: make(map[int64]int, len(recent)),
	}
	for _, f := range favorites {
		s.Favorites[f.ID]++
	}
	for _, r := range recent {
		s.RecentViews[r.RecipeID]++
	}
	return s
}

type Scored struct {
	Recipe models.Recipe
	Score  int
}

// Rank returns at most max recipes ordered by score, highest first. Ties keep
// the input order. Duplicate ids are scored once.
func Rank(recipes []models.Recipe, sig Signals, max int) []Scored {
	if max <= 0 {
		max = DefaultMax
	}

	seen := make(map[int64]bool, len(recipes))
	scored := make([]Scored, 0, len(recipes))
	for _, r := range recipes {
		if seen[r.ID] {
			continue
		}
		seen[r.ID] = true
		scored = append(scored, Scored{
			Recipe: r,
			Score:  Score(r, sig.Favorites[r.ID], sig.Ingredients[r.ID], sig.RecentViews[r.ID]),
		})
	}

	slices.SortStableFunc(scored, func(a, b Scored) int { return cmp.Compare(b.Score, a.Score) })
	if len(scored) > max {
		scored = scored[:max]
	}
	return scored
}

// CountMatches counts how many pantry items occur in any of the given
// ingredient names, case-insensitively.
func CountMatches(ingredients, pantry []string) int {
	n := 0
	for _, p := range pantry {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		for _, ing := range ingredients {
			if strings.Contains(strings.ToLower(ing), p) {
				n++
				break
			}
		}
	}
	return n
}
