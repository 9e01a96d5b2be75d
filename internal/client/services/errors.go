// Package services contains application services for the RecipePlanner client.
//
// RecipeService is the offline-first synchronizer between the recipe API and
// the local cache. The social services (auth, comments, ratings, meal plans,
// recently viewed) validate input before any network call and require a
// signed-in user.
package services

import "errors"

// ErrAuthRequired is returned by operations that need a signed-in user.
var ErrAuthRequired = errors.New("sign in required")
