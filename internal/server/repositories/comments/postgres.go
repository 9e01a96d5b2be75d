// Package comments provides the PostgreSQL-backed recipe comments repository.
package comments

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/recipeplanner/internal/common"
	"github.com/dmitrijs2005/recipeplanner/internal/dbx"
	"github.com/dmitrijs2005/recipeplanner/internal/server/models"
)

const selectComment = `
	SELECT c.id, c.recipe_id, c.user_id, u.username, c.text, c.created_at
	FROM comments c
	JOIN users u ON u.id = c.user_id
`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, c *models.Comment) (*models.Comment, error) {
	query := `
		WITH inserted AS (
			INSERT INTO comments (id, recipe_id, user_id, text)
			VALUES ($1, $2, $3, $4)
			RETURNING created_at, user_id
		)
		SELECT i.created_at, u.username
		FROM inserted i
		JOIN users u ON u.id = i.user_id
	`
	err := r.db.QueryRowContext(ctx, query, c.ID, c.RecipeID, c.UserID, c.Text).Scan(&c.CreatedAt, &c.UserName)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return c, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.Comment, error) {
	c := &models.Comment{}
	err := r.db.QueryRowContext(ctx, selectComment+`WHERE c.id = $1`, id).
		Scan(&c.ID, &c.RecipeID, &c.UserID, &c.UserName, &c.Text, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return c, nil
}

func (r *PostgresRepository) ListByRecipe(ctx context.Context, recipeID int64) ([]*models.Comment, error) {
	rows, err := r.db.QueryContext(ctx, selectComment+`WHERE c.recipe_id = $1 ORDER BY c.created_at DESC, c.id`, recipeID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Comment
	for rows.Next() {
		c := &models.Comment{}
		if err := rows.Scan(&c.ID, &c.RecipeID, &c.UserID, &c.UserName, &c.Text, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if dbx.RowsAffected(res) == 0 {
		return common.ErrorNotFound
	}
	return nil
}
