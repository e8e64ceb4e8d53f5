package interpolate

import (
	"math"

	"github.com/tframelib/tframe/vecmath"
)

// slerpEpsilon is the |dot| threshold above which two quaternions are
// treated as parallel enough that SLERP degrades to normalized lerp.
const slerpEpsilon = 1e-9

// Fraction computes u = (t - a) / (b - a), clamped to [0, 1] to absorb
// floating-point rounding at the endpoints. Callers must ensure
// a <= t <= b and a != b.
func Fraction(a, t, b vecmath.Timestamp) float64 {
	span := float64(b - a)
	u := float64(t-a) / span
	if u < 0 {
		return 0
	}
	if u > 1 {
		return 1
	}
	return u
}

// Lerp returns the component-wise linear interpolation of a and b at
// fraction u. u == 0 returns a bit-identically; u == 1 returns b
// bit-identically.
func Lerp(a, b vecmath.Vector3, u float64) vecmath.Vector3 {
	if u == 0 {
		return a
	}
	if u == 1 {
		return b
	}
	return vecmath.Vector3{
		X: a.X + (b.X-a.X)*u,
		Y: a.Y + (b.Y-a.Y)*u,
		Z: a.Z + (b.Z-a.Z)*u,
	}
}

// Slerp returns the shortest-arc spherical linear interpolation of a and
// b at fraction u, renormalized. If a and b are nearly parallel or
// anti-parallel (|dot| >= 1 - slerpEpsilon), it falls back to
// normalized linear interpolation to avoid dividing by a near-zero
// sin(theta). u == 0 returns a; u == 1 returns b (both already unit by
// contract, so no extra normalization is forced on exact endpoints).
func Slerp(a, b vecmath.Quaternion, u float64) vecmath.Quaternion {
	if u == 0 {
		return a
	}
	if u == 1 {
		return b
	}

	dot := a.Dot(b)
	if dot < 0 {
		// Take the shorter arc by negating one operand.
		b = b.Negate()
		dot = -dot
	}

	if dot >= 1-slerpEpsilon {
		return vecmath.Quaternion{
			W: a.W + (b.W-a.W)*u,
			X: a.X + (b.X-a.X)*u,
			Y: a.Y + (b.Y-a.Y)*u,
			Z: a.Z + (b.Z-a.Z)*u,
		}.Normalize()
	}

	theta := math.Acos(clampUnit(dot))
	sinTheta := math.Sin(theta)
	sa := math.Sin((1 - u) * theta)
	sb := math.Sin(u * theta)

	return vecmath.Quaternion{
		W: (sa*a.W + sb*b.W) / sinTheta,
		X: (sa*a.X + sb*b.X) / sinTheta,
		Y: (sa*a.Y + sb*b.Y) / sinTheta,
		Z: (sa*a.Z + sb*b.Z) / sinTheta,
	}.Normalize()
}

// clampUnit clamps x into [-1, 1] so that rounding error in a dot
// product of two (near-)unit quaternions never pushes math.Acos into
// NaN territory.
func clampUnit(x float64) float64 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return x
}
