package vecmath

import "math"

// Vector3 is a 3-component vector of finite 64-bit floats.
type Vector3 struct {
	X, Y, Z float64
}

// ZeroVector3 is the additive identity.
var ZeroVector3 = Vector3{}

// Add returns the component-wise sum of v and o.
func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns the component-wise difference v - o.
func (v Vector3) Sub(o Vector3) Vector3 {
	return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v multiplied by the scalar s.
func (v Vector3) Scale(s float64) Vector3 {
	return Vector3{v.X * s, v.Y * s, v.Z * s}
}

// Negate returns the additive inverse of v.
func (v Vector3) Negate() Vector3 { return v.Scale(-1) }

// Dot returns the scalar (inner) product of v and o.
func (v Vector3) Dot(o Vector3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Norm returns the Euclidean length of v.
func (v Vector3) Norm() float64 { return math.Sqrt(v.Dot(v)) }

// IsFinite reports whether every component of v is a finite float.
func (v Vector3) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0) &&
		!math.IsNaN(v.Z) && !math.IsInf(v.Z, 0)
}

// Equal reports whether v and o are bit-identical component-wise.
func (v Vector3) Equal(o Vector3) bool {
	return v.X == o.X && v.Y == o.Y && v.Z == o.Z
}
