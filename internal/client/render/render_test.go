package render

import (
	"testing"

	"github.com/dmitrijs2005/recipeplanner/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPlain(t *testing.T) *Renderer {
	t.Helper()
	r, err := New(StylePlain, 60)
	require.NoError(t, err)
	return r
}

func TestHTMLToMarkdown(t *testing.T) {
	r := newPlain(t)

	out, err := r.HTMLToMarkdown("A <b>quick</b> dinner with <a href=\"https://x.test\">tips</a>.")
	require.NoError(t, err)
	assert.Equal(t, "A **quick** dinner with [tips](https://x.test).", out)

	out, err = r.HTMLToMarkdown("   ")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestDetailMarkdown(t *testing.T) {
	r := newPlain(t)
	d := models.RecipeDetail{
		Recipe: models.Recipe{
			ID:             1,
			Title:          "Pasta",
			Summary:        "<p>Simple <em>and</em> fast</p>",
			ReadyInMinutes: models.OptionalInt(20),
			Servings:       models.OptionalInt(2),
			SourceURL:      "https://example.test/pasta",
			IsFavorite:     true,
		},
		Ingredients: []models.Ingredient{
			{Name: "spaghetti", Amount: 200, Unit: "g"},
			{Name: "eggs", Amount: 2},
			{Name: "salt"},
		},
		Instructions: "<ol><li>Boil</li><li>Mix</li></ol>",
		Cuisines:     []string{"Italian"},
	}

	doc, err := r.DetailMarkdown(d)
	require.NoError(t, err)
	assert.Contains(t, doc, "# Pasta ★")
	assert.Contains(t, doc, "20 min · 2 servings · Italian")
	assert.Contains(t, doc, "Simple _and_ fast")
	assert.Contains(t, doc, "- 200 g spaghetti\n- 2 eggs\n- salt\n")
	assert.Contains(t, doc, "## Instructions")
	assert.Contains(t, doc, "Boil")
	assert.Contains(t, doc, "Source: https://example.test/pasta")
	assert.NotContains(t, doc, "Offline")
}

func TestDetailMarkdown_CachedOmitsSections(t *testing.T) {
	r := newPlain(t)
	doc, err := r.DetailMarkdown(models.RecipeDetail{Recipe: models.Recipe{Title: "Soup"}, Cached: true})
	require.NoError(t, err)
	assert.Contains(t, doc, "Offline")
	assert.NotContains(t, doc, "## Ingredients")
	assert.NotContains(t, doc, "## Instructions")
}

func TestDetail_Renders(t *testing.T) {
	r := newPlain(t)
	out, err := r.Detail(models.RecipeDetail{Recipe: models.Recipe{Title: "Salad"}})
	require.NoError(t, err)
	assert.Contains(t, out, "Salad")
}
