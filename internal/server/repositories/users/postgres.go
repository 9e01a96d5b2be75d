// Package users provides the PostgreSQL-backed repository of user accounts.
package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/recipeplanner/internal/common"
	"github.com/dmitrijs2005/recipeplanner/internal/dbx"
	"github.com/dmitrijs2005/recipeplanner/internal/server/models"
)

// Field names reported with common.ErrorAlreadyExists.
const (
	FieldEmail    = "email"
	FieldUserName = "username"
)

const selectUser = `SELECT id, email, username, password_hash, avatar_key, created_at FROM users`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func scanUser(row *sql.Row) (*models.User, error) {
	u := &models.User{}
	err := row.Scan(&u.ID, &u.Email, &u.UserName, &u.PasswordHash, &u.AvatarKey, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return u, nil
}

// duplicate translates a unique violation on email or username into
// common.ErrorAlreadyExists naming the field.
func duplicate(err error) error {
	constraint, ok := dbx.UniqueViolation(err)
	if !ok {
		return fmt.Errorf("db error: %w", err)
	}
	field := FieldEmail
	if strings.Contains(constraint, FieldUserName) {
		field = FieldUserName
	}
	return fmt.Errorf("%w: %s", common.ErrorAlreadyExists, field)
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	query :=
		`INSERT INTO users (email, username, password_hash)
         VALUES ($1, $2, $3)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		user.Email, user.UserName, user.PasswordHash).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		return nil, duplicate(err)
	}

	return user, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return scanUser(r.db.QueryRowContext(ctx, selectUser+` WHERE email = $1`, email))
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	return scanUser(r.db.QueryRowContext(ctx, selectUser+` WHERE id = $1`, id))
}

func (r *PostgresRepository) UpdateUserName(ctx context.Context, id, userName string) (*models.User, error) {
	query :=
		`UPDATE users SET username = $2
		 WHERE id = $1
		 RETURNING id, email, username, password_hash, avatar_key, created_at
		 `
	u, err := scanUser(r.db.QueryRowContext(ctx, query, id, userName))
	if _, dup := dbx.UniqueViolation(err); dup {
		return nil, duplicate(err)
	}
	return u, err
}

func (r *PostgresRepository) UpdatePasswordHash(ctx context.Context, id, hash string) error {
	return r.exec(ctx, `UPDATE users SET password_hash = $2 WHERE id = $1`, id, hash)
}

func (r *PostgresRepository) SetAvatarKey(ctx context.Context, id, key string) error {
	return r.exec(ctx, `UPDATE users SET avatar_key = $2 WHERE id = $1`, id, key)
}

func (r *PostgresRepository) exec(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if dbx.RowsAffected(res) == 0 {
		return common.ErrorNotFound
	}
	return nil
}
