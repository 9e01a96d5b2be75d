package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/recipeplanner/internal/dbx"
	"github.com/dmitrijs2005/recipeplanner/internal/server/repositories/comments"
	"github.com/dmitrijs2005/recipeplanner/internal/server/repositories/favorites"
	"github.com/dmitrijs2005/recipeplanner/internal/server/repositories/mealplans"
	"github.com/dmitrijs2005/recipeplanner/internal/server/repositories/ratings"
	"github.com/dmitrijs2005/recipeplanner/internal/server/repositories/recentviews"
	"github.com/dmitrijs2005/recipeplanner/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/recipeplanner/internal/server/repositories/users"
)

// RepositoryManager binds repositories to a DBTX so a service can use the
// same repository types with *sql.DB or inside a transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Favorites(db dbx.DBTX) favorites.Repository
	Comments(db dbx.DBTX) comments.Repository
	Ratings(db dbx.DBTX) ratings.Repository
	MealPlans(db dbx.DBTX) mealplans.Repository
	RecentViews(db dbx.DBTX) recentviews.Repository
}
