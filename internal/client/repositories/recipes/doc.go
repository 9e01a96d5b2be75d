// Package recipes implements the local recipe cache on SQLite.
//
// Rows are keyed by the recipe API id. Every write refreshes refreshed_at
// (Unix milliseconds) so stale rows can be pruned. A favorite flag, once set
// locally, survives later upserts of the same recipe; only SetFavorite clears
// it. Favorites are never pruned.
//
// Query treats an empty substring and the "popular" sentinel as "match all".
// Results are ordered by refreshed_at DESC, id ASC.
package recipes
