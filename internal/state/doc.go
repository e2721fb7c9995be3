// Package state holds the dashboard request lifecycle for the UI.
//
// A load is bracketed by Begin and Finish:
//
//	seq := store.Begin(tag)            // phase = loading, old view cleared
//	res := loader.Load(ctx, tag)       // runs off the UI goroutine
//	store.Finish(seq, res)             // phase = ready or failed
//
// Each Begin bumps a sequence number. Finish only applies a result whose
// sequence is still current, so a slow response for a tag the user has
// already navigated away from never replaces the newer view. Reset does the
// same when the user leaves the dashboard.
//
// Snapshot returns the state by value. The resolved viewmodel.Dashboard is
// built once in Finish and is not mutated afterwards, so copies are safe to
// render from any goroutine.
//
// The zero Store is ready to use.
package state
