// Package models defines client-side data models used by the RecipePlanner CLI.
package models

import "strings"

// Recipe is the summary form of a recipe as it is listed and cached.
// Empty strings and nil pointers mean the value is unknown.
type Recipe struct {
	ID             int64
	Title          string
	ImageURL       string
	Summary        string
	ReadyInMinutes *int
	Servings       *int
	SourceURL      string
	IsFavorite     bool
}

// Ingredient is one line of a recipe's ingredient list.
type Ingredient struct {
	ID       int64
	Name     string
	Amount   float64
	Unit     string
	ImageURL string
}

// RecipeDetail is a recipe with its full content.
//
// Cached is set when the detail was rebuilt from the local cache because the
// recipe API was unreachable. Ingredients and Instructions are empty then.
type RecipeDetail struct {
	Recipe
	Ingredients  []Ingredient
	Instructions string
	Cuisines     []string
	DishTypes    []string
	Cached       bool
}

// SearchResult is one page of a remote search.
type SearchResult struct {
	Recipes      []Recipe
	Offset       int
	Number       int
	TotalResults int
}

// OptionalInt maps the zero value to nil.
func OptionalInt(v int) *int {
	if v == 0 {
		return nil
	}
	return &v
}

// IntValue returns the pointed-to value or 0.
func IntValue(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

// IngredientNames returns the lower-cased, trimmed names of the ingredients.
func (d RecipeDetail) IngredientNames() []string {
	names := make([]string, 0, len(d.Ingredients))
	for _, in := range d.Ingredients {
		n := strings.ToLower(strings.TrimSpace(in.Name))
		if n != "" {
			names = append(names, n)
		}
	}
	return names
}
