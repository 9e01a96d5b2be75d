// Package recentviews provides the PostgreSQL-backed recently viewed
// recipes repository.
package recentviews

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

func (r *PostgresRepository) Record(ctx context.Context, v *models.RecentlyViewed) error {
	query := `
		INSERT INTO recently_viewed (user_id, recipe_id, recipe_name, image_url, viewed_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (user_id, recipe_id) DO UPDATE SET
			recipe_name = EXCLUDED.recipe_name,
			image_url = EXCLUDED.image_url,
			viewed_at = now()
	`
	if _, err := r.db.ExecContext(ctx, query, v.UserID, v.RecipeID, v.RecipeName, v.ImageURL); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) List(ctx context.Context, userID string, limit int) ([]*models.RecentlyViewed, error) {
	query := `
		SELECT recipe_id, recipe_name, image_url, viewed_at
		FROM recently_viewed
		WHERE user_id = $1
		ORDER BY viewed_at DESC, recipe_id
		LIMIT $2
	`
	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.RecentlyViewed
	for rows.Next() {
		v := &models.RecentlyViewed{UserID: userID}
		if err := rows.Scan(&v.RecipeID, &v.RecipeName, &v.ImageURL, &v.ViewedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}
