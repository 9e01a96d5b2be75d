package recipes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/recipeplanner/internal/client/models"
	"github.com/dmitrijs2005/recipeplanner/internal/common"
	"github.com/dmitrijs2005/recipeplanner/internal/dbx"
)

const recipeColumns = `id, title, image_url, summary, ready_in_minutes, servings, source_url, is_favorite`

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db  dbx.DBTX
	now func() time.Time
}

type Option func(*SQLiteRepository)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(r *SQLiteRepository) { r.now = now }
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX, opts ...Option) *SQLiteRepository {
	r := &SQLiteRepository{db: db, now: time.Now}
	for _, o := range opts {
		o(r)
	}
	return r
}

// IsStale reports whether a row refreshed at refreshedAt is older than maxAge.
func IsStale(refreshedAt, now time.Time, maxAge time.Duration) bool {
	return now.Sub(refreshedAt) > maxAge
}

// Upsert writes recipes by id. A stored favorite flag is never cleared here.
// Duplicate ids within the batch collapse to the last occurrence.
func (r *SQLiteRepository) Upsert(ctx context.Context, recipes []models.Recipe) error {
	if len(recipes) == 0 {
		return nil
	}
	if db, ok := r.db.(*sql.DB); ok {
		return dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
			return r.upsert(ctx, tx, recipes)
		})
	}
	return r.upsert(ctx, r.db, recipes)
}

func (r *SQLiteRepository) upsert(ctx context.Context, db dbx.DBTX, recipes []models.Recipe) error {
	query := `INSERT INTO recipes (id, title, image_url, summary, ready_in_minutes, servings, source_url, is_favorite, refreshed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			image_url = excluded.image_url,
			summary = excluded.summary,
			ready_in_minutes = excluded.ready_in_minutes,
			servings = excluded.servings,
			source_url = excluded.source_url,
			is_favorite = MAX(recipes.is_favorite, excluded.is_favorite),
			refreshed_at = excluded.refreshed_at`

	ts := r.now().UnixMilli()
	for _, rc := range recipes {
		_, err := db.ExecContext(ctx, query,
			rc.ID, rc.Title,
			nullString(rc.ImageURL), nullString(rc.Summary),
			nullInt(rc.ReadyInMinutes), nullInt(rc.Servings),
			nullString(rc.SourceURL), boolToInt(rc.IsFavorite), ts)
		if err != nil {
			return fmt.Errorf("failed to upsert recipe %d: %w", rc.ID, err)
		}
	}
	return nil
}

// Query matches title case-insensitively. limit <= 0 means common.DefaultPageSize.
func (r *SQLiteRepository) Query(ctx context.Context, substring string, offset, limit int) ([]models.Recipe, error) {
	if limit <= 0 {
		limit = common.DefaultPageSize
	}
	if offset < 0 {
		offset = 0
	}

	substring = strings.TrimSpace(substring)
	var (
		rows *sql.Rows
		err  error
	)
	if substring == "" || strings.EqualFold(substring, common.PopularQuery) {
		rows, err = r.db.QueryContext(ctx,
			`SELECT `+recipeColumns+` FROM recipes ORDER BY refreshed_at DESC, id ASC LIMIT ? OFFSET ?`,
			limit, offset)
	} else {
		rows, err = r.db.QueryContext(ctx,
			`SELECT `+recipeColumns+` FROM recipes WHERE instr(`+foldFunc+`(title), ?) > 0
			ORDER BY refreshed_at DESC, id ASC LIMIT ? OFFSET ?`,
			fold(substring), limit, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query recipes: %w", err)
	}
	return scanRecipes(rows)
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id int64) (models.Recipe, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+recipeColumns+` FROM recipes WHERE id = ?`, id)
	rc, err := scanRecipe(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Recipe{}, common.ErrorNotFound
	}
	if err != nil {
		return models.Recipe{}, fmt.Errorf("failed to get recipe %d: %w", id, err)
	}
	return rc, nil
}

func (r *SQLiteRepository) SetFavorite(ctx context.Context, id int64, favorite bool) error {
	_, err := r.db.ExecContext(ctx, `UPDATE recipes SET is_favorite = ? WHERE id = ?`, boolToInt(favorite), id)
	if err != nil {
		return fmt.Errorf("failed to set favorite for recipe %d: %w", id, err)
	}
	return nil
}

func (r *SQLiteRepository) ListFavorites(ctx context.Context) ([]models.Recipe, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+recipeColumns+` FROM recipes WHERE is_favorite = 1 ORDER BY refreshed_at DESC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	return scanRecipes(rows)
}

func (r *SQLiteRepository) FavoriteIDs(ctx context.Context, ids []int64) (map[int64]bool, error) {
	result := make(map[int64]bool)
	if len(ids) == 0 {
		return result, nil
	}

	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")

	rows, err := r.db.QueryContext(ctx,
		`SELECT id FROM recipes WHERE is_favorite = 1 AND id IN (`+placeholders+`)`, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select favorite ids: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan favorite id: %w", err)
		}
		result[id] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate favorite ids: %w", err)
	}
	return result, nil
}

func (r *SQLiteRepository) PruneOlderThan(ctx context.Context, days int) (int64, error) {
	cutoff := r.now().Add(-time.Duration(days) * 24 * time.Hour).UnixMilli()
	res, err := r.db.ExecContext(ctx, `DELETE FROM recipes WHERE is_favorite = 0 AND refreshed_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to prune recipes: %w", err)
	}
	return dbx.RowsAffected(res), nil
}

func (r *SQLiteRepository) Stats(ctx context.Context, maxAge time.Duration) (Stats, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT is_favorite, refreshed_at FROM recipes`)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to read cache stats: %w", err)
	}
	defer rows.Close()

	now := r.now()
	var s Stats
	for rows.Next() {
		var fav, ts int64
		if err := rows.Scan(&fav, &ts); err != nil {
			return Stats{}, fmt.Errorf("failed to scan cache stats: %w", err)
		}
		s.Total++
		if fav != 0 {
			s.Favorites++
		} else if IsStale(time.UnixMilli(ts), now, maxAge) {
			s.Stale++
		}
	}
	if err := rows.Err(); err != nil {
		return Stats{}, fmt.Errorf("failed to iterate cache stats: %w", err)
	}
	return s, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecipe(s scanner) (models.Recipe, error) {
	var (
		rc                     models.Recipe
		image, summary, source sql.NullString
		readyIn, servings      sql.NullInt64
		fav                    int64
	)
	if err := s.Scan(&rc.ID, &rc.Title, &image, &summary, &readyIn, &servings, &source, &fav); err != nil {
		return models.Recipe{}, err
	}
	rc.ImageURL = image.String
	rc.Summary = summary.String
	rc.SourceURL = source.String
	rc.ReadyInMinutes = models.OptionalInt(int(readyIn.Int64))
	rc.Servings = models.OptionalInt(int(servings.Int64))
	rc.IsFavorite = fav != 0
	return rc, nil
}

func scanRecipes(rows *sql.Rows) ([]models.Recipe, error) {
	defer rows.Close()

	result := []models.Recipe{}
	for rows.Next() {
		rc, err := scanRecipe(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recipe: %w", err)
		}
		result = append(result, rc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate recipes: %w", err)
	}
	return result, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullInt(p *int) sql.NullInt64 {
	if p == nil || *p == 0 {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*p), Valid: true}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
