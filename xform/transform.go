package xform

import "github.com/tframelib/tframe/vecmath"

// FrameID identifies a coordinate frame by name. Equality is
// byte-exact string comparison; interning is an optional optimization
// this package does not perform, since Go string comparison and
// map-keying are already O(len) / hashed without it.
type FrameID string

// Transform is the rigid pose of Child expressed in Parent's
// coordinates at Timestamp: a translation plus a unit-quaternion
// rotation, no scale or shear.
type Transform struct {
	Translation vecmath.Vector3
	Rotation    vecmath.Quaternion
	Timestamp   vecmath.Timestamp
	Parent      FrameID
	Child       FrameID
}

// Identity returns the identity transform between frame f and itself at
// time t: zero translation, identity rotation.
func Identity(f FrameID, t vecmath.Timestamp) Transform {
	return Transform{
		Translation: vecmath.ZeroVector3,
		Rotation:    vecmath.IdentityQuaternion,
		Timestamp:   t,
		Parent:      f,
		Child:       f,
	}
}

// Validate checks the invariants a caller-supplied Transform must
// satisfy before it may be stored: parent != child, and a finite
// rotation. It does not check translation finiteness — vecmath.Vector3
// arithmetic that produces a non-finite translation will naturally
// propagate NaN/Inf through sampling, which is the caller's concern,
// not a configuration error.
func (tf Transform) Validate() error {
	if tf.Parent == tf.Child {
		return ErrSameFrame
	}
	if !tf.Rotation.IsFinite() {
		return ErrInvalidQuaternion
	}
	return nil
}

// Inverse returns the rigid transform that expresses Parent in Child's
// coordinates: inv({P, C, t, q, tau}) = {C, P, -(q^-1 * t * q), q^-1, tau}.
func (tf Transform) Inverse() Transform {
	qInv := tf.Rotation.Inverse()
	return Transform{
		Translation: qInv.RotateVector3(tf.Translation).Negate(),
		Rotation:    qInv,
		Timestamp:   tf.Timestamp,
		Parent:      tf.Child,
		Child:       tf.Parent,
	}
}

// Compose returns a ∘ b, the transform expressing b's child directly in
// a's parent: A_in_P ∘ B_in_A = B_in_P. Requires a.Child == b.Parent;
// callers (framegraph.Chain) are responsible for only composing
// adjacent hops. The result's Timestamp is the caller-supplied query
// time when composing along a chain — this function takes it as an
// explicit parameter rather than deriving min(a, b), since every call
// site already knows the query instant.
func Compose(a, b Transform, at vecmath.Timestamp) Transform {
	return Transform{
		Translation: a.Translation.Add(a.Rotation.RotateVector3(b.Translation)),
		Rotation:    a.Rotation.Mul(b.Rotation),
		Timestamp:   at,
		Parent:      a.Parent,
		Child:       b.Child,
	}
}
