package recipeapi

import (
	"github.com/dmitrijs2005/recipeplanner/internal/client/models"
)

type searchResponse struct {
	Results      []recipeDTO `json:"results"`
	Offset       int         `json:"offset"`
	Number       int         `json:"number"`
	TotalResults int         `json:"totalResults"`
}

type randomResponse struct {
	Recipes []recipeDTO `json:"recipes"`
}

type recipeDTO struct {
	ID                  int64           `json:"id"`
	Title               string          `json:"title"`
	Image               string          `json:"image"`
	Summary             string          `json:"summary"`
	ReadyInMinutes      int             `json:"readyInMinutes"`
	Servings            int             `json:"servings"`
	SourceURL           string          `json:"sourceUrl"`
	ExtendedIngredients []ingredientDTO `json:"extendedIngredients"`
	Instructions        string          `json:"instructions"`
	Cuisines            []string        `json:"cuisines"`
	DishTypes           []string        `json:"dishTypes"`
}

type ingredientDTO struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
	Image  string  `json:"image"`
}

func (d recipeDTO) toRecipe() models.Recipe {
	return models.Recipe{
		ID:             d.ID,
		Title:          d.Title,
		ImageURL:       d.Image,
		Summary:        d.Summary,
		ReadyInMinutes: models.OptionalInt(d.ReadyInMinutes),
		Servings:       models.OptionalInt(d.Servings),
		SourceURL:      d.SourceURL,
	}
}

func (d recipeDTO) toDetail() models.RecipeDetail {
	detail := models.RecipeDetail{
		Recipe:       d.toRecipe(),
		Instructions: d.Instructions,
		Cuisines:     d.Cuisines,
		DishTypes:    d.DishTypes,
	}
	for _, in := range d.ExtendedIngredients {
		detail.Ingredients = append(detail.Ingredients, models.Ingredient{
			ID:       in.ID,
			Name:     in.Name,
			Amount:   in.Amount,
			Unit:     in.Unit,
			ImageURL: in.Image,
		})
	}
	return detail
}
