package vecmath_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tframelib/tframe/vecmath"
)

func TestVector3_AddSubRoundTrip(t *testing.T) {
	a := vecmath.Vector3{X: 1, Y: 2, Z: 3}
	b := vecmath.Vector3{X: -4, Y: 5, Z: 0.5}
	require.True(t, a.Equal(a.Add(b).Sub(b)))
}

func TestVector3_NegateIsScaleByMinusOne(t *testing.T) {
	v := vecmath.Vector3{X: 1, Y: -2, Z: 3}
	require.True(t, v.Negate().Equal(v.Scale(-1)))
}

func TestVector3_Norm(t *testing.T) {
	v := vecmath.Vector3{X: 3, Y: 4, Z: 0}
	require.InDelta(t, 5.0, v.Norm(), 1e-12)
}

func TestVector3_IsFinite(t *testing.T) {
	require.True(t, vecmath.Vector3{X: 1, Y: 2, Z: 3}.IsFinite())
	require.False(t, vecmath.Vector3{X: math.Inf(1)}.IsFinite())
	require.False(t, vecmath.Vector3{Y: math.NaN()}.IsFinite())
}
