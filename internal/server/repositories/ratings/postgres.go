// Package ratings provides the PostgreSQL-backed recipe ratings repository.
package ratings

import (
	"context"
	"database/sql"
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

// Upsert stores one rating per (recipe, user). The rating id is the user id.
func (r *PostgresRepository) Upsert(ctx context.Context, rt *models.Rating) (*models.Rating, error) {
	query := `
		WITH stored AS (
			INSERT INTO ratings (recipe_id, user_id, score, review)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (recipe_id, user_id)
			DO UPDATE SET score = EXCLUDED.score, review = EXCLUDED.review, created_at = now()
			RETURNING user_id, created_at
		)
		SELECT s.user_id, s.created_at, u.username
		FROM stored s
		JOIN users u ON u.id = s.user_id
	`
	err := r.db.QueryRowContext(ctx, query, rt.RecipeID, rt.UserID, rt.Score, nullString(rt.Review)).
		Scan(&rt.ID, &rt.CreatedAt, &rt.UserName)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return rt, nil
}

func (r *PostgresRepository) ListByRecipe(ctx context.Context, recipeID int64) ([]*models.Rating, error) {
	query := `
		SELECT r.recipe_id, r.user_id, u.username, r.score, r.review, r.created_at
		FROM ratings r
		JOIN users u ON u.id = r.user_id
		WHERE r.recipe_id = $1
		ORDER BY r.created_at DESC, r.user_id
	`
	rows, err := r.db.QueryContext(ctx, query, recipeID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Rating
	for rows.Next() {
		var review sql.NullString
		rt := &models.Rating{}
		if err := rows.Scan(&rt.RecipeID, &rt.UserID, &rt.UserName, &rt.Score, &review, &rt.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		rt.ID = rt.UserID
		if review.Valid {
			rt.Review = &review.String
		}
		result = append(result, rt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

// Average is 0 with a count of 0 for an unrated recipe.
func (r *PostgresRepository) Average(ctx context.Context, recipeID int64) (models.AverageRating, error) {
	query := `SELECT COALESCE(AVG(score), 0)::float8, COUNT(*) FROM ratings WHERE recipe_id = $1`

	var avg models.AverageRating
	if err := r.db.QueryRowContext(ctx, query, recipeID).Scan(&avg.Average, &avg.Count); err != nil {
		return models.AverageRating{}, fmt.Errorf("db error: %w", err)
	}
	return avg, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
