// Package edgebuffer implements the ordered, time-indexed sequence of
// Transforms for a single directed (parent, child) edge.
//
// A Buffer keeps its entries sorted strictly by ascending timestamp,
// replaces same-timestamp entries on Insert rather than stacking
// duplicates, and evicts from the front any entry older than
// latest.Timestamp - MaxAge after every mutation. Sample never
// extrapolates: a request before the oldest entry or after the newest
// by more than the configured slack (zero by default) returns a
// sentinel error instead of a guessed value; one within the slack gets
// that endpoint entry unchanged.
package edgebuffer
