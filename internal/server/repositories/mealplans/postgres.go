// Package mealplans provides the PostgreSQL-backed meal plan repository.
package mealplans

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/recipeplanner/internal/common"
	"github.com/dmitrijs2005/recipeplanner/internal/dbx"
	"github.com/dmitrijs2005/recipeplanner/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Upsert(ctx context.Context, p *models.MealPlan) (*models.MealPlan, error) {
	query := `
		INSERT INTO meal_plans (id, user_id, recipe_id, recipe_name, plan_date, meal_type)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			recipe_id = EXCLUDED.recipe_id,
			recipe_name = EXCLUDED.recipe_name,
			plan_date = EXCLUDED.plan_date,
			meal_type = EXCLUDED.meal_type
		WHERE meal_plans.user_id = EXCLUDED.user_id
		RETURNING id
	`
	var id string
	err := r.db.QueryRowContext(ctx, query, p.ID, p.UserID, p.RecipeID, p.RecipeName, p.Date, p.MealType).Scan(&id)
	if err != nil {
		// the conflicting row belongs to another user
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorForbidden
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}

func (r *PostgresRepository) List(ctx context.Context, userID string, from, to time.Time) ([]*models.MealPlan, error) {
	query := `
		SELECT id, recipe_id, recipe_name, plan_date, meal_type
		FROM meal_plans
		WHERE user_id = $1
		  AND ($2::date IS NULL OR plan_date >= $2::date)
		  AND ($3::date IS NULL OR plan_date <= $3::date)
		ORDER BY plan_date,
			CASE meal_type WHEN 'breakfast' THEN 0 WHEN 'lunch' THEN 1 WHEN 'dinner' THEN 2 ELSE 3 END,
			id
	`
	rows, err := r.db.QueryContext(ctx, query, userID, nullDate(from), nullDate(to))
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.MealPlan
	for rows.Next() {
		p := &models.MealPlan{UserID: userID}
		if err := rows.Scan(&p.ID, &p.RecipeID, &p.RecipeName, &p.Date, &p.MealType); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, userID, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM meal_plans WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if dbx.RowsAffected(res) == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func nullDate(t time.Time) sql.NullTime {
	if t.IsZero() {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t, Valid: true}
}
