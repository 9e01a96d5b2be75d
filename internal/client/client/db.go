package client

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/recipeplanner/internal/client/migrations"
	"github.com/dmitrijs2005/recipeplanner/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/recipeplanner/internal/client/repositories/recipes"
	"github.com/dmitrijs2005/recipeplanner/internal/filex"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

type Repositories struct {
	DB       *sql.DB
	Recipes  *recipes.SQLiteRepository
	Metadata *metadata.SQLiteRepository
	Sessions *metadata.SessionStore
}

func (r *Repositories) Close() error {
	return r.DB.Close()
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return gooseUpContext(ctx, db, ".")
}

// InitDatabase opens the cache database at dsn, creating its directory when
// needed, and migrates it. Connections are limited to one so writers are
// serialized.
func InitDatabase(ctx context.Context, dsn string, opts ...recipes.Option) (*Repositories, error) {
	dsn, err := filex.PrepareSQLiteDSN(dsn)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate cache database: %w", err)
	}

	meta := metadata.NewSQLiteRepository(db)
	return &Repositories{
		DB:       db,
		Recipes:  recipes.NewSQLiteRepository(db, opts...),
		Metadata: meta,
		Sessions: metadata.NewSessionStore(meta),
	}, nil
}
