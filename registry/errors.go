package registry

import "errors"

// Sentinel errors for AwaitTransform's suspension control flow. The
// temporal/topological errors surfaced by GetTransform and AwaitTransform
// are edgebuffer.ErrNotFound, edgebuffer.ErrBeforeBuffer,
// edgebuffer.ErrAfterBuffer, and framegraph.ErrDisconnected; AddTransform
// surfaces xform.ErrSameFrame, xform.ErrInvalidQuaternion, and
// framegraph.ErrParentConflict. Callers should use errors.Is against
// those sentinels directly rather than against anything declared here.
var (
	// ErrTimeout indicates an AwaitTransform deadline (blocking profile)
	// or context deadline (cooperative profile) elapsed before the
	// query became answerable.
	ErrTimeout = errors.New("registry: await deadline exceeded")

	// ErrCancelled indicates the caller's context was cancelled while
	// AwaitTransform was suspended (cooperative profile only; the
	// blocking profile has no cancellation).
	ErrCancelled = errors.New("registry: await cancelled")
)
