package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/recipeplanner/internal/client/client"
	"github.com/dmitrijs2005/recipeplanner/internal/client/models"
	"github.com/dmitrijs2005/recipeplanner/internal/client/recipeapi"
	"github.com/dmitrijs2005/recipeplanner/internal/client/services"
	"github.com/dmitrijs2005/recipeplanner/internal/validation"
)

var errUsage = errors.New("usage")

func usageError(usage string) error {
	return fmt.Errorf("%w: %s", errUsage, usage)
}

// describeError turns an error into a one-line message for the user.
func describeError(err error) string {
	var verr *validation.Error
	var apiErr *recipeapi.Error

	switch {
	case errors.Is(err, errUsage):
		return "Usage: " + strings.TrimPrefix(err.Error(), errUsage.Error()+": ")
	case errors.Is(err, services.ErrAuthRequired):
		return "Please sign in first (login)."
	case errors.As(err, &verr):
		return "Invalid input: " + verr.Error()
	case errors.Is(err, client.ErrUnavailable):
		return "Server unavailable, try again later."
	case errors.Is(err, client.ErrUnauthorized):
		return "Not authorized: " + err.Error()
	case errors.Is(err, client.ErrForbidden):
		return "Not allowed: " + err.Error()
	case errors.Is(err, client.ErrNotFound):
		return "Not found."
	case errors.Is(err, client.ErrAlreadyExists):
		return "Already exists: " + err.Error()
	case errors.As(err, &apiErr):
		if apiErr.Kind == recipeapi.KindNoConnectivity {
			return "No internet connection and nothing cached for this request."
		}
		return "Recipe service error: " + apiErr.Error()
	default:
		return "Error: " + err.Error()
	}
}

func parseID(args []string, usage string) (int64, error) {
	if len(args) == 0 {
		return 0, usageError(usage)
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, usageError(usage)
	}
	return id, nil
}

func parseCount(args []string, def int) int {
	if len(args) == 0 {
		return def
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func recipeLine(r models.Recipe) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%8d  %s", r.ID, r.Title)
	if r.ReadyInMinutes != nil {
		fmt.Fprintf(&b, " (%d min)", *r.ReadyInMinutes)
	}
	if r.IsFavorite {
		b.WriteString(" ★")
	}
	return b.String()
}

func printRecipes(recipes []models.Recipe) {
	if len(recipes) == 0 {
		printlnFn("No recipes found.")
		return
	}
	for _, r := range recipes {
		printlnFn(recipeLine(r))
	}
}

func stars(score int) string {
	if score < 0 {
		score = 0
	}
	if score > validation.MaxRating {
		score = validation.MaxRating
	}
	return strings.Repeat("★", score) + strings.Repeat("☆", validation.MaxRating-score)
}
