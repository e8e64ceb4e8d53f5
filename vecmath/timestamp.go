package vecmath

import "time"

// Timestamp is a monotonic non-negative count of nanoseconds since an
// unspecified epoch. Equality and ordering are exact integer comparisons.
type Timestamp int64

// Duration is a nanosecond span between two Timestamps. It is a signed
// type: Sub returns a negative Duration when t precedes other, and the
// Infinite sentinel is -1.
type Duration int64

// Infinite is the "no eviction" Duration sentinel for EdgeBuffer max_age.
const Infinite Duration = -1

// Sub returns the signed nanosecond distance t - other.
func (t Timestamp) Sub(other Timestamp) Duration {
	return Duration(t - other)
}

// Before reports whether t occurs strictly earlier than other.
func (t Timestamp) Before(other Timestamp) bool { return t < other }

// After reports whether t occurs strictly later than other.
func (t Timestamp) After(other Timestamp) bool { return t > other }

// AsDuration converts a Go time.Duration into a vecmath.Duration.
func AsDuration(d time.Duration) Duration { return Duration(d.Nanoseconds()) }
