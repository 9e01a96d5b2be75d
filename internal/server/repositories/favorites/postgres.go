// Package favorites provides the PostgreSQL-backed favorites repository.
package favorites

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/recipeplanner/internal/dbx"
	"github.com/dmitrijs2005/recipeplanner/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Add(ctx context.Context, userID string, recipeID int64) error {
	query := `
		INSERT INTO favorites (user_id, recipe_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, recipe_id) DO NOTHING
	`
	if _, err := r.db.ExecContext(ctx, query, userID, recipeID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Remove(ctx context.Context, userID string, recipeID int64) error {
	query := `DELETE FROM favorites WHERE user_id = $1 AND recipe_id = $2`
	if _, err := r.db.ExecContext(ctx, query, userID, recipeID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// List returns the most recently added favorites first.
func (r *PostgresRepository) List(ctx context.Context, userID string) ([]*models.Favorite, error) {
	query := `
		SELECT recipe_id, added_at
		FROM favorites
		WHERE user_id = $1
		ORDER BY added_at DESC, recipe_id
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Favorite
	for rows.Next() {
		f := &models.Favorite{UserID: userID}
		if err := rows.Scan(&f.RecipeID, &f.AddedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}
