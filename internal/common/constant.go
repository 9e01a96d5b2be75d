// Package common contains shared constants and sentinel errors used across
// RecipePlanner components.
package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// PopularQuery is the sentinel search term used when the user has not typed
// anything. The local cache treats it as "match everything".
const PopularQuery = "popular"

// DefaultPageSize is the number of recipes requested per page.
const DefaultPageSize = 20
