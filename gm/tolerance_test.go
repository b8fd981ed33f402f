package gm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func signbitOf(x float64) bool {
	return math.Signbit(x)
}

func TestNearZero(t *testing.T) {
	require.True(t, NearZero(0, 0))
	require.True(t, NearZero(1e-10, LinearEpsilon))
	require.True(t, NearZero(-1e-10, LinearEpsilon))
	require.False(t, NearZero(1e-8, LinearEpsilon))
}

func TestNearEqual(t *testing.T) {
	require.True(t, NearEqual(1, 1+1e-10, LinearEpsilon))
	require.False(t, NearEqual(1, 1.1, LinearEpsilon))
	require.True(t, NearEqual(math.Inf(1), math.Inf(1), 0))
	require.False(t, NearEqual(math.NaN(), math.NaN(), 1))

	require.True(t, NearOne(1-1e-13, UnitEpsilon))
	require.False(t, NearOne(1-1e-6, UnitEpsilon))
}

func TestNearEqualRel(t *testing.T) {
	require.True(t, NearEqualRel(1e12, 1e12+1, 1e-9, 0))
	require.False(t, NearEqualRel(1, 1+1e-6, 1e-9, 1e-9))
	require.True(t, NearEqualRel(1e-12, 2e-12, 1e-9, 1e-9))
}

func TestNegativeEpsilonPanics(t *testing.T) {
	requirePanicsWith(t, ErrTolerance, func() { NearZero(1, -1) })
	requirePanicsWith(t, ErrTolerance, func() { NearEqual(1, 1, -1e-12) })
	requirePanicsWith(t, ErrTolerance, func() { NearEqualRel(1, 1, 1e-9, -1) })
	requirePanicsWith(t, ErrTolerance, func() { VecOne().ApproxEqual(VecOne(), -1) })
	requirePanicsWith(t, ErrTolerance, func() { IdentityMat().IsIdentity(-1) })
	requirePanicsWith(t, ErrTolerance, func() { IdentityRot().ApproxEqual(IdentityRot(), -1) })
	requirePanicsWith(t, ErrTolerance, func() { IdentityMat().InverseTolerant(-1) })
}
