package framegraph

import "errors"

// Sentinel errors for Graph.Add and Graph.Chain.
var (
	// ErrParentConflict indicates a frame already has a different
	// parent bound than the one in a new Add call.
	ErrParentConflict = errors.New("framegraph: child frame already has a different parent")

	// ErrDisconnected indicates no common ancestor exists between the
	// two frames in a Chain query.
	ErrDisconnected = errors.New("framegraph: frames share no common ancestor")
)
