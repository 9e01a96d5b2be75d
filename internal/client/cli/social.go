package cli

import (
	"context"
	"fmt"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/dmitrijs2005/recipeplanner/internal/client/client"
	"github.com/dmitrijs2005/recipeplanner/internal/client/models"
)

// notifyContext is a test seam for signal.NotifyContext.
var notifyContext = signal.NotifyContext

func (a *App) Comments(ctx context.Context, args []string) error {
	id, err := parseID(args, "comments <id>")
	if err != nil {
		return err
	}
	list, err := a.comments.List(ctx, a.userID(), id)
	if err != nil {
		return err
	}
	printComments(list)
	return nil
}

func printComments(list []models.Comment) {
	if len(list) == 0 {
		printlnFn("No comments yet.")
		return
	}
	for _, c := range list {
		printlnFn(fmt.Sprintf("[%s] %s, %s: %s", c.ID, c.Username, c.Timestamp.Local().Format(time.DateTime), c.Text))
	}
}

func (a *App) Comment(ctx context.Context, args []string) error {
	id, err := parseID(args, "comment <id>")
	if err != nil {
		return err
	}
	text, err := getSimpleText(a.reader, "Enter comment", a.out)
	if err != nil {
		return err
	}
	c, err := a.comments.Add(ctx, a.userID(), id, text)
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Comment %s added.", c.ID))
	return nil
}

func (a *App) Uncomment(ctx context.Context, args []string) error {
	id, err := parseID(args, "uncomment <id> <commentId>")
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return usageError("uncomment <id> <commentId>")
	}
	commentID := args[1]

	list, err := a.comments.List(ctx, a.userID(), id)
	if err != nil {
		return err
	}
	for _, c := range list {
		if c.ID != commentID {
			continue
		}
		if err := a.comments.Delete(ctx, a.userID(), c); err != nil {
			return err
		}
		printlnFn("Comment deleted.")
		return nil
	}
	return client.ErrNotFound
}

// Watch prints the comment list of a recipe every time it changes, until
// Ctrl+C.
func (a *App) Watch(ctx context.Context, args []string) error {
	id, err := parseID(args, "watch <id>")
	if err != nil {
		return err
	}

	wctx, stop := notifyContext(ctx, syscall.SIGINT)
	defer stop()

	printlnFn("Watching comments, press Ctrl+C to stop.")
	err = a.comments.Watch(wctx, a.userID(), id, func(list []models.Comment) {
		printlnFn(fmt.Sprintf("-- %d comments --", len(list)))
		printComments(list)
	})
	if err != nil && wctx.Err() == nil {
		return err
	}
	return nil
}

func (a *App) Rate(ctx context.Context, args []string) error {
	id, err := parseID(args, "rate <id>")
	if err != nil {
		return err
	}
	raw, err := getSimpleText(a.reader, "Score (1-5)", a.out)
	if err != nil {
		return err
	}
	score, err := strconv.Atoi(raw)
	if err != nil {
		return usageError("score must be a number from 1 to 5")
	}
	review, err := getSimpleText(a.reader, "Review (optional)", a.out)
	if err != nil {
		return err
	}

	r, err := a.ratings.Rate(ctx, a.userID(), id, score, &review)
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Rated %s", stars(r.Score)))
	return nil
}

func (a *App) Ratings(ctx context.Context, args []string) error {
	id, err := parseID(args, "ratings <id>")
	if err != nil {
		return err
	}
	avg, err := a.ratings.Average(ctx, a.userID(), id)
	if err != nil {
		return err
	}
	list, err := a.ratings.List(ctx, a.userID(), id)
	if err != nil {
		return err
	}

	if avg.Count == 0 {
		printlnFn("No ratings yet.")
		return nil
	}
	printlnFn(fmt.Sprintf("Average %.1f from %d ratings", avg.Average, avg.Count))
	for _, r := range list {
		line := fmt.Sprintf("%s %s", stars(r.Score), r.Username)
		if r.Review != nil {
			line += ": " + *r.Review
		}
		printlnFn(line)
	}
	return nil
}

func (a *App) Plan(ctx context.Context, args []string) error {
	id, err := parseID(args, "plan <id>")
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

	raw, err := getSimpleText(a.reader, "Date (YYYY-MM-DD, empty for today)", a.out)
	if err != nil {
		return err
	}
	date := a.now()
	if raw != "" {
		if date, err = models.ParseDate(raw); err != nil {
			return usageError("date must look like 2024-05-01")
		}
	}

	names := make([]string, len(models.MealTypes))
	for i, m := range models.MealTypes {
		names[i] = string(m)
	}
	mealType, err := getSimpleText(a.reader, "Meal ("+strings.Join(names, ", ")+")", a.out)
	if err != nil {
		return err
	}

	e, err := a.mealPlans.Add(ctx, a.userID(), r, date, strings.ToLower(mealType))
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Planned %q for %s %s [%s]", e.RecipeName, e.DateString(), e.MealType, e.ID))
	return nil
}

// Plans prints the meal calendar, optionally limited to a date range.
func (a *App) Plans(ctx context.Context, args []string) error {
	var from, to time.Time
	var err error
	if len(args) > 0 {
		if from, err = models.ParseDate(args[0]); err != nil {
			return usageError("plans [from] [to]")
		}
	}
	if len(args) > 1 {
		if to, err = models.ParseDate(args[1]); err != nil {
			return usageError("plans [from] [to]")
		}
	}

	entries, err := a.mealPlans.ListRange(ctx, a.userID(), from, to)
	if err != nil {
		return err
	}
	days := a.mealPlans.Calendar(entries)
	if len(days) == 0 {
		printlnFn("Meal plan is empty.")
		return nil
	}
	for _, d := range days {
		printlnFn(d.Date.Format("Mon 2006-01-02"))
		for _, e := range d.Entries {
			printlnFn(fmt.Sprintf("  %-9s %s (#%d) [%s]", e.MealType, e.RecipeName, e.RecipeID, e.ID))
		}
	}
	return nil
}

func (a *App) Unplan(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError("unplan <planId>")
	}
	if err := a.mealPlans.Delete(ctx, a.userID(), args[0]); err != nil {
		return err
	}
	printlnFn("Meal plan entry removed.")
	return nil
}
