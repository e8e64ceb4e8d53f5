// Package framegraph maintains the tree of rigid-body relationships
// between frames: a child → (parent, EdgeBuffer) map, enforcement of
// the single-parent-per-child invariant, and path discovery plus
// composition between two arbitrary frames.
//
// The graph is represented as a single child → parent map rather than a
// general adjacency structure: this forbids multi-parent trees by
// construction and turns path discovery into a two-ancestor-list
// lowest-common-ancestor walk instead of a general shortest-path search.
// Acyclicity is a caller precondition; Graph does not detect cycles.
package framegraph
