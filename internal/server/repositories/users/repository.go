package users

import (
	"context"

	"github.com/dmitrijs2005/recipeplanner/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	UpdateUserName(ctx context.Context, id, userName string) (*models.User, error)
	UpdatePasswordHash(ctx context.Context, id, hash string) error
	SetAvatarKey(ctx context.Context, id, key string) error
}
