// Package royale is the typed client for the deck-analyzer HTTP API.
//
// Client.Do is the single request path: it resolves endpoints against the
// configured base URL, attaches the bearer credential from the injected
// Credentials, and turns non-2xx responses into *RequestError. The facade
// methods (GetPlayer, AnalyzeDeck, ListCards, Login, ...) unwrap the
// backend's {success, data, error} envelope into the types in types.go.
package royale
