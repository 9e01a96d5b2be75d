// Package render turns recipes into terminal output. Recipe API summaries and
// instructions arrive as HTML; they are converted to Markdown first and then
// rendered with glamour.
package render

import (
	"fmt"
	"strconv"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/charmbracelet/glamour"

	"github.com/dmitrijs2005/recipeplanner/internal/client/models"
)

const (
	DefaultWidth = 80

	// StyleAuto picks a dark or light theme from the terminal background.
	StyleAuto = "auto"
	// StylePlain renders without colors, for pipes and tests.
	StylePlain = "notty"
)

type Renderer struct {
	conv *md.Converter
	term *glamour.TermRenderer
}

// New creates a renderer wrapping at width columns. style is a glamour
// standard style name or StyleAuto.
func New(style string, width int) (*Renderer, error) {
	if width <= 0 {
		width = DefaultWidth
	}
	styleOpt := glamour.WithStandardStyle(style)
	if style == "" || style == StyleAuto {
		styleOpt = glamour.WithAutoStyle()
	}

	term, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(width))
	if err != nil {
		return nil, fmt.Errorf("failed to create terminal renderer: %w", err)
	}
	return &Renderer{conv: md.NewConverter("", true, nil), term: term}, nil
}

// HTMLToMarkdown converts an HTML fragment. Plain text passes through.
func (r *Renderer) HTMLToMarkdown(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", nil
	}
	out, err := r.conv.ConvertString(html)
	if err != nil {
		return "", fmt.Errorf("failed to convert html: %w", err)
	}
	return strings.TrimSpace(out), nil
}

// DetailMarkdown builds the Markdown document for a recipe detail.
func (r *Renderer) DetailMarkdown(d models.RecipeDetail) (string, error) {
	var b strings.Builder

	title := d.Title
	if d.IsFavorite {
		title += " ★"
	}
	fmt.Fprintf(&b, "# %s\n\n", title)

	if meta := metaLine(d); meta != "" {
		fmt.Fprintf(&b, "%s\n\n", meta)
	}
	if d.Cached {
		b.WriteString("> Offline: showing the cached summary only.\n\n")
	}

	summary, err := r.HTMLToMarkdown(d.Summary)
	if err != nil {
		return "", err
	}
	if summary != "" {
		fmt.Fprintf(&b, "%s\n\n", summary)
	}

	if len(d.Ingredients) > 0 {
		b.WriteString("## Ingredients\n\n")
		for _, in := range d.Ingredients {
			fmt.Fprintf(&b, "- %s\n", ingredientLine(in))
		}
		b.WriteString("\n")
	}

	instructions, err := r.HTMLToMarkdown(d.Instructions)
	if err != nil {
		return "", err
	}
	if instructions != "" {
		fmt.Fprintf(&b, "## Instructions\n\n%s\n\n", instructions)
	}

	if d.SourceURL != "" {
		fmt.Fprintf(&b, "Source: %s\n", d.SourceURL)
	}
	return b.String(), nil
}

// Detail renders a recipe detail for the terminal.
func (r *Renderer) Detail(d models.RecipeDetail) (string, error) {
	doc, err := r.DetailMarkdown(d)
	if err != nil {
		return "", err
	}
	return r.Markdown(doc)
}

func (r *Renderer) Markdown(doc string) (string, error) {
	out, err := r.term.Render(doc)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return out, nil
}

func metaLine(d models.RecipeDetail) string {
	var parts []string
	if d.ReadyInMinutes != nil {
		parts = append(parts, fmt.Sprintf("%d min", *d.ReadyInMinutes))
	}
	if d.Servings != nil {
		parts = append(parts, fmt.Sprintf("%d servings", *d.Servings))
	}
	if len(d.Cuisines) > 0 {
		parts = append(parts, strings.Join(d.Cuisines, ", "))
	}
	if len(d.DishTypes) > 0 {
		parts = append(parts, strings.Join(d.DishTypes, ", "))
	}
	return strings.Join(parts, " · ")
}

func ingredientLine(in models.Ingredient) string {
	if in.Amount == 0 {
		return in.Name
	}
	amount := strconv.FormatFloat(in.Amount, 'f', -1, 64)
	if in.Unit != "" {
		return fmt.Sprintf("%s %s %s", amount, in.Unit, in.Name)
	}
	return fmt.Sprintf("%s %s", amount, in.Name)
}
