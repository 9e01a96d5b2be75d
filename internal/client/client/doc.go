// Package client contains the client-side building blocks of RecipePlanner
// that talk to the backend and bootstrap local storage.
//
// # Overview
//
//  1. Narrow API contracts (AuthClient, FavoritesClient, CommentsClient,
//     RatingsClient, MealPlansClient, RecentlyViewedClient, combined in
//     Client) consumed by the services layer.
//  2. GRPCClient, the gRPC implementation. It injects the access token via
//     interceptors, refreshes an expired token once and retries, and maps
//     gRPC status codes to sentinel errors.
//  3. InitDatabase and RunMigrations, which open the local SQLite cache and
//     apply the embedded goose migrations.
//
// # Error Handling
//
// Callers match ErrUnavailable, ErrUnauthorized, ErrForbidden, ErrNotFound and
// ErrAlreadyExists with errors.Is. InvalidArgument statuses are turned into
// *validation.Error from their BadRequest details.
package client
