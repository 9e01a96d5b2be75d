// Package cli provides the interactive RecipePlanner command-line client.
//
// It wires configuration, the local recipe cache, the recipe API, the
// backend gRPC client and an interactive REPL. Browsing works offline from
// the cache; account, favorites, comments, ratings and meal plans need the
// backend. A background watcher pings the backend and switches the prompt
// between online and offline mode.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher and runREPL for details.
package cli
