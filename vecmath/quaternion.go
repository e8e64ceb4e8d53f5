package vecmath

import "math"

// Quaternion is a 4-component quaternion (w, x, y, z), semantically a
// unit quaternion representing a rotation. Callers are expected to
// supply normalized values; arithmetic here does not normalize its
// inputs, only its documented outputs (see interpolate.Slerp).
type Quaternion struct {
	W, X, Y, Z float64
}

// IdentityQuaternion is the rotation identity (1, 0, 0, 0).
var IdentityQuaternion = Quaternion{W: 1}

// IsFinite reports whether every component of q is a finite float.
func (q Quaternion) IsFinite() bool {
	for _, c := range [4]float64{q.W, q.X, q.Y, q.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// Dot returns the 4-vector inner product of q and o.
func (q Quaternion) Dot(o Quaternion) float64 {
	return q.W*o.W + q.X*o.X + q.Y*o.Y + q.Z*o.Z
}

// Norm returns the Euclidean length of q's 4-vector.
func (q Quaternion) Norm() float64 { return math.Sqrt(q.Dot(q)) }

// Negate returns the component-wise negation of q. A unit quaternion
// and its negation represent the same rotation; negation is used to
// take the shorter arc during interpolation.
func (q Quaternion) Negate() Quaternion {
	return Quaternion{-q.W, -q.X, -q.Y, -q.Z}
}

// Normalize returns q scaled to unit length. If q has zero norm, the
// identity quaternion is returned rather than dividing by zero.
func (q Quaternion) Normalize() Quaternion {
	n := q.Norm()
	if n == 0 {
		return IdentityQuaternion
	}
	return Quaternion{q.W / n, q.X / n, q.Y / n, q.Z / n}
}

// Conjugate returns (w, -x, -y, -z). For a unit quaternion this equals
// its inverse.
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{q.W, -q.X, -q.Y, -q.Z}
}

// Inverse returns q's multiplicative inverse under the Hamilton product.
// For a (near-)unit quaternion this is its conjugate; the general form
// divides by the squared norm so Inverse remains correct even if the
// caller's normalization has drifted.
func (q Quaternion) Inverse() Quaternion {
	n2 := q.Dot(q)
	if n2 == 0 {
		return IdentityQuaternion
	}
	c := q.Conjugate()
	return Quaternion{c.W / n2, c.X / n2, c.Y / n2, c.Z / n2}
}

// Mul returns the Hamilton product q * o (q applied after o when used
// to rotate a vector: q.Mul(o) rotates by o first, then by q).
func (q Quaternion) Mul(o Quaternion) Quaternion {
	return Quaternion{
		W: q.W*o.W - q.X*o.X - q.Y*o.Y - q.Z*o.Z,
		X: q.W*o.X + q.X*o.W + q.Y*o.Z - q.Z*o.Y,
		Y: q.W*o.Y - q.X*o.Z + q.Y*o.W + q.Z*o.X,
		Z: q.W*o.Z + q.X*o.Y - q.Y*o.X + q.Z*o.W,
	}
}

// RotateVector3 applies q's rotation to v: q * v * q^-1, treating v as a
// pure quaternion (0, v.X, v.Y, v.Z).
func (q Quaternion) RotateVector3(v Vector3) Vector3 {
	vq := Quaternion{0, v.X, v.Y, v.Z}
	r := q.Mul(vq).Mul(q.Inverse())
	return Vector3{r.X, r.Y, r.Z}
}
