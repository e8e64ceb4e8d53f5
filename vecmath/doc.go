// Package vecmath provides the leaf arithmetic types shared across tframe:
// nanosecond timestamps/durations, 3-vectors, and unit quaternions.
//
// Nothing in this package knows about frames, edges, or interpolation
// policy — it is pure, allocation-free arithmetic. Quaternions are
// assumed normalized by the caller; Normalize exists
// for callers (and interpolate.Slerp) that need to restore that
// invariant after arithmetic.
package vecmath
