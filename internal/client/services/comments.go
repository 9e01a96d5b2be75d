package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/recipeplanner/internal/client/client"
	"github.com/dmitrijs2005/recipeplanner/internal/client/models"
	"github.com/dmitrijs2005/recipeplanner/internal/validation"
)

type CommentService interface {
	Add(ctx context.Context, userID string, recipeID int64, text string) (models.Comment, error)
	// Delete refuses comments written by someone else.
	Delete(ctx context.Context, userID string, comment models.Comment) error
	List(ctx context.Context, userID string, recipeID int64) ([]models.Comment, error)
	// Watch blocks, calling fn with the newest-first comment list after
	// every change, until ctx is done.
	Watch(ctx context.Context, userID string, recipeID int64, fn func([]models.Comment)) error
}

type commentService struct {
	client   client.CommentsClient
	validate *validation.Validator
}

func NewCommentService(c client.CommentsClient) CommentService {
	return &commentService{client: c, validate: validation.New()}
}

func (s *commentService) Add(ctx context.Context, userID string, recipeID int64, text string) (models.Comment, error) {
	if userID == "" {
		return models.Comment{}, ErrAuthRequired
	}
	text, err := s.validate.Comment(text)
	if err != nil {
		return models.Comment{}, err
	}
	return s.client.AddComment(ctx, recipeID, text)
}

func (s *commentService) Delete(ctx context.Context, userID string, comment models.Comment) error {
	if userID == "" {
		return ErrAuthRequired
	}
	if comment.UserID != userID {
		return fmt.Errorf("%w: you can only delete your own comments", client.ErrForbidden)
	}
	return s.client.DeleteComment(ctx, comment.RecipeID, comment.ID)
}

func (s *commentService) List(ctx context.Context, userID string, recipeID int64) ([]models.Comment, error) {
	if userID == "" {
		return nil, ErrAuthRequired
	}
	return s.client.ListComments(ctx, recipeID)
}

func (s *commentService) Watch(ctx context.Context, userID string, recipeID int64, fn func([]models.Comment)) error {
	if userID == "" {
		return ErrAuthRequired
	}
	return s.client.WatchComments(ctx, recipeID, fn)
}
