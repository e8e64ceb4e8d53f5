// Package xform defines the rigid-transform value type shared by every
// layer of tframe: FrameID, Transform, its Inverse, and Compose.
//
// A stored Transform {Parent: P, Child: C, Translation: t, Rotation: q,
// Timestamp: tau} expresses the pose of C in P at time tau. Applying it
// to a point vector v expressed in C yields q*v*q^-1 + t, expressed in
// P. This package fixes the conventions (inverse, composition order) that
// every caller — edgebuffer, framegraph, registry — must honor
// identically; see the Inverse and Compose doc comments for the exact
// formulas.
package xform

import "errors"

// ErrSameFrame indicates parent and child refer to the same frame,
// which is forbidden for a stored Transform (invariant 1 of the data
// model). Callers asking for a transform from a frame to itself should
// receive the identity rather than this error; see registry.GetTransform.
var ErrSameFrame = errors.New("xform: parent and child frame must differ")

// ErrInvalidQuaternion indicates a Transform's rotation has a
// non-finite component.
var ErrInvalidQuaternion = errors.New("xform: rotation quaternion has non-finite component")
