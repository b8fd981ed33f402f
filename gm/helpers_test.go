package gm

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestRand(t *testing.T) *rand.Rand {
	t.Helper()
	return rand.New(rand.NewPCG(0x5eed, uint64(len(t.Name()))))
}

func requireVec(t *testing.T, expected, actual Vec, delta float64) {
	t.Helper()
	require.InDelta(t, expected.X, actual.X, delta, "x of %s", actual)
	require.InDelta(t, expected.Y, actual.Y, delta, "y of %s", actual)
}

func requireMat(t *testing.T, expected, actual Mat, delta float64) {
	t.Helper()
	require.True(t, expected.ApproxEqual(actual, delta), "expected %s, got %s", expected, actual)
}

func requireTransform(t *testing.T, expected, actual Transform, delta float64) {
	t.Helper()
	require.True(t, expected.ApproxEqual(actual, delta, delta), "expected %s, got %s", expected, actual)
}

func requirePanicsWith(t *testing.T, target error, fn func()) {
	t.Helper()

	defer func() {
		t.Helper()

		r := recover()
		require.NotNil(t, r, "expected a panic")

		err, ok := r.(error)
		require.True(t, ok, "expected panic with an error, got %v", r)
		require.True(t, errors.Is(err, target), "expected %v, got %v", target, err)
	}()

	fn()
}
