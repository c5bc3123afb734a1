// Package engine implements the tabular data pipeline behind the roster
// views: filtering a fetched record batch by free-text query, ordering it
// by a selected field with a stable total order, slicing it into fixed
// pages, and the view-state rules coupling those stages (debounced query
// commits, sort toggling, page resets).
//
// The stages are pure functions over well-formed records; View is the one
// stateful type and the sole writer of view-state.
package engine
