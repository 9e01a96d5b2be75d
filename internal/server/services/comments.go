package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/recipeplanner/internal/common"
	"github.com/dmitrijs2005/recipeplanner/internal/server/models"
)

// ErrNotCommentAuthor is returned when deleting someone else's comment.
var ErrNotCommentAuthor = fmt.Errorf("%w: you can only delete your own comments", common.ErrorForbidden)

// AddComment trims and validates text, stores the comment and wakes the
// watchers of the recipe.
func (s *SocialService) AddComment(ctx context.Context, userID string, recipeID int64, text string) (*models.Comment, error) {
	if err := validRecipeID(recipeID); err != nil {
		return nil, err
	}
	text, err := s.validator.Comment(text)
	if err != nil {
		return nil, err
	}

	c, err := s.repomanager.Comments(s.db).Create(ctx, &models.Comment{
		ID:       s.newID(),
		RecipeID: recipeID,
		UserID:   userID,
		Text:     text,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating comment: %w", err)
	}
	s.hub.Publish(recipeID)
	return c, nil
}

// DeleteComment removes a comment authored by userID. A comment of another
// recipe is reported as not found.
func (s *SocialService) DeleteComment(ctx context.Context, userID string, recipeID int64, commentID string) error {
	if !isUUID(commentID) {
		return common.ErrorNotFound
	}
	repo := s.repomanager.Comments(s.db)

	c, err := repo.Get(ctx, commentID)
	if err != nil {
		return err
	}
	if c.RecipeID != recipeID {
		return common.ErrorNotFound
	}
	if c.UserID != userID {
		return ErrNotCommentAuthor
	}
	if err := repo.Delete(ctx, commentID); err != nil {
		return err
	}
	s.hub.Publish(recipeID)
	return nil
}

// ListComments returns the recipe's comments, newest first.
func (s *SocialService) ListComments(ctx context.Context, recipeID int64) ([]*models.Comment, error) {
	return s.repomanager.Comments(s.db).ListByRecipe(ctx, recipeID)
}

// WatchComments sends the current comment list, then a fresh list after
// every change, until ctx is done or send fails.
func (s *SocialService) WatchComments(ctx context.Context, recipeID int64, send func([]*models.Comment) error) error {
	changed, cancel := s.hub.Subscribe(recipeID)
	defer cancel()

	for {
		list, err := s.ListComments(ctx, recipeID)
		if err != nil {
			if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
				return nil
			}
			return err
		}
		if err := send(list); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return nil
		case <-changed:
		}
	}
}
