package soa

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/oliverbestmann/planar/gm"
	"github.com/stretchr/testify/require"
)

func newTestRand(t testing.TB) *rand.Rand {
	return rand.New(rand.NewPCG(0x50a, uint64(len(t.Name()))))
}

func randomVecs(rng *rand.Rand, n int) []gm.Vec {
	vecs := make([]gm.Vec, n)
	for idx := range vecs {
		vecs[idx] = gm.RandomVec(rng).Mul(100)
	}

	return vecs
}

func mustFromVecs(t testing.TB, vecs []gm.Vec) *Buffer {
	buf, err := FromVecs(vecs)
	require.NoError(t, err)
	return buf
}

func TestNew(t *testing.T) {
	buf, err := New(3)
	require.NoError(t, err)
	require.Equal(t, 3, buf.Len())
	require.Equal(t, make([]float64, 6), buf.Data())

	for _, capacity := range []int{0, -1} {
		_, err := New(capacity)
		require.ErrorIs(t, err, ErrRange)
		require.ErrorIs(t, err, gm.ErrInvalidArgument)
	}

	_, err = FromVecs(nil)
	require.ErrorIs(t, err, ErrRange)
}

func TestBuffer_Layout(t *testing.T) {
	buf := mustFromVecs(t, []gm.Vec{{X: 1, Y: 2}, {X: 3, Y: 4}, {X: 5, Y: 6}})

	require.Equal(t, []float64{1, 3, 5, 2, 4, 6}, buf.Data())
	require.Equal(t, []float64{1, 3, 5}, buf.X())
	require.Equal(t, []float64{2, 4, 6}, buf.Y())

	// views share memory with the buffer
	buf.X()[1] = 30
	buf.Y()[2] = 60

	vec, err := buf.Get(1)
	require.NoError(t, err)
	require.Equal(t, gm.Vec{X: 30, Y: 4}, vec)

	vec, err = buf.Get(2)
	require.NoError(t, err)
	require.Equal(t, gm.Vec{X: 5, Y: 60}, vec)

	// appending to a view must not overwrite the y components
	_ = append(buf.X(), 99)
	require.Equal(t, []float64{2, 4, 60}, buf.Y())
}

func TestBuffer_GetSet(t *testing.T) {
	buf, err := New(2)
	require.NoError(t, err)

	require.NoError(t, buf.Set(1, gm.Vec{X: 7, Y: -7}))

	vec, err := buf.Get(1)
	require.NoError(t, err)
	require.Equal(t, gm.Vec{X: 7, Y: -7}, vec)

	for _, idx := range []int{-1, 2, 100} {
		_, err := buf.Get(idx)
		require.ErrorIs(t, err, ErrRange)
		require.ErrorIs(t, buf.Set(idx, gm.Vec{}), ErrRange)
	}
}

func TestBuffer_RoundTrip(t *testing.T) {
	rng := newTestRand(t)

	vecs := randomVecs(rng, 100)
	buf := mustFromVecs(t, vecs)

	require.Equal(t, vecs, buf.ToVecs(nil))

	// the destination is reused if it is large enough
	dst := make([]gm.Vec, 3, 200)
	out := buf.ToVecs(dst)
	require.Equal(t, vecs, out)
	require.Same(t, &dst[0], &out[0])

	clone := buf.Clone()
	require.True(t, clone.Equal(buf))
	require.NotSame(t, &clone.Data()[0], &buf.Data()[0])
}

func TestBuffer_SetVecs(t *testing.T) {
	rng := newTestRand(t)

	buf, err := New(50)
	require.NoError(t, err)

	backing := &buf.Data()[0]

	for range 3 {
		vecs := randomVecs(rng, 50)
		require.NoError(t, buf.SetVecs(vecs))
		require.Equal(t, vecs, buf.ToVecs(nil))

		// the buffer keeps its storage
		require.Same(t, backing, &buf.Data()[0])
	}

	before := buf.Clone()

	err = buf.SetVecs(randomVecs(rng, 49))
	require.ErrorIs(t, err, ErrRange)
	require.ErrorIs(t, err, gm.ErrInvalidArgument)

	err = buf.SetVecs(nil)
	require.ErrorIs(t, err, ErrRange)

	// failed calls leave the buffer untouched
	require.True(t, before.Equal(buf))
}

func TestBuffer_SetVecs_Allocations(t *testing.T) {
	rng := newTestRand(t)

	buf, err := New(64)
	require.NoError(t, err)

	vecs := randomVecs(rng, 64)

	allocs := testing.AllocsPerRun(100, func() {
		_ = buf.SetVecs(vecs)
	})

	require.Zero(t, allocs)
}

func TestPutInterleaved(t *testing.T) {
	buf := mustFromVecs(t, []gm.Vec{{X: 1, Y: 2}, {X: 3, Y: 4}})

	dst64 := make([]float64, 5)
	require.NoError(t, PutInterleaved(dst64, 1, buf))
	require.Equal(t, []float64{0, 1, 2, 3, 4}, dst64)

	dst32 := make([]float32, 4)
	require.NoError(t, PutInterleaved(dst32, 0, buf))
	require.Equal(t, []float32{1, 2, 3, 4}, dst32)

	require.ErrorIs(t, PutInterleaved(dst32, 1, buf), ErrRange)
	require.ErrorIs(t, PutInterleaved(dst32, -1, buf), ErrRange)
}

func TestBuffer_Hash(t *testing.T) {
	a := mustFromVecs(t, []gm.Vec{{X: 1, Y: 2}, {X: 3, Y: 4}})
	b := mustFromVecs(t, []gm.Vec{{X: 1 + 1e-9, Y: 2}, {X: 3, Y: 4 - 1e-9}})
	c := mustFromVecs(t, []gm.Vec{{X: 3, Y: 4}, {X: 1, Y: 2}})

	require.Equal(t, a.Hash(), a.Clone().Hash())
	require.Equal(t, a.Hash(), b.Hash())
	require.NotEqual(t, a.Hash(), c.Hash())

	require.False(t, a.Equal(b))
	require.True(t, a.ApproxEqual(b, 1e-6))
	require.False(t, a.ApproxEqual(c, 1e-6))
	require.False(t, a.Equal(mustFromVecs(t, []gm.Vec{{X: 1, Y: 2}})))
}

func TestBuffer_String(t *testing.T) {
	buf, err := New(4)
	require.NoError(t, err)
	require.Equal(t, "soa.Buffer(len=4)", buf.String())
}

func TestBuffer_NaN(t *testing.T) {
	buf := mustFromVecs(t, []gm.Vec{{X: math.NaN()}})
	require.False(t, buf.Equal(buf.Clone()))
}
