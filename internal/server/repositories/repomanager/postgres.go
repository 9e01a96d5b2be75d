// Package repomanager provides a concrete RepositoryManager for PostgreSQL,
// wiring together repository constructors and database migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/recipeplanner/internal/dbx"
	"github.com/dmitrijs2005/recipeplanner/internal/server/migrations"
	"github.com/dmitrijs2005/recipeplanner/internal/server/repositories/comments"
	"github.com/dmitrijs2005/recipeplanner/internal/server/repositories/favorites"
	"github.com/dmitrijs2005/recipeplanner/internal/server/repositories/mealplans"
	"github.com/dmitrijs2005/recipeplanner/internal/server/repositories/ratings"
	"github.com/dmitrijs2005/recipeplanner/internal/server/repositories/recentviews"
	"github.com/dmitrijs2005/recipeplanner/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/recipeplanner/internal/server/repositories/users"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository implementations
// and exposes a schema migration hook.
type PostgresRepositoryManager struct{}

func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) RefreshTokens(db dbx.DBTX) refreshtokens.Repository {
	return refreshtokens.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Favorites(db dbx.DBTX) favorites.Repository {
	return favorites.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Comments(db dbx.DBTX) comments.Repository {
	return comments.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Ratings(db dbx.DBTX) ratings.Repository {
	return ratings.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) MealPlans(db dbx.DBTX) mealplans.Repository {
	return mealplans.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) RecentViews(db dbx.DBTX) recentviews.Repository {
	return recentviews.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations applies the embedded migrations to db.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, ".")
}

func NewPostgresRepositoryManager() RepositoryManager {
	return &PostgresRepositoryManager{}
}
