package soa

import (
	"math"
	"testing"

	"github.com/oliverbestmann/planar/gm"
	"github.com/stretchr/testify/require"
)

func TestAddBatch(t *testing.T) {
	rng := newTestRand(t)

	as := randomVecs(rng, 64)
	bs := randomVecs(rng, 64)

	a := mustFromVecs(t, as)
	b := mustFromVecs(t, bs)

	dst, err := New(64)
	require.NoError(t, err)
	require.NoError(t, AddBatch(dst, a, b))

	for idx := range as {
		vec, err := dst.Get(idx)
		require.NoError(t, err)
		require.Equal(t, as[idx].Add(bs[idx]), vec)
	}

	// in place, aliasing the destination
	require.NoError(t, a.Add(b))
	require.True(t, a.Equal(dst))

	require.NoError(t, a.Sub(b))
	require.True(t, a.ApproxEqual(mustFromVecs(t, as), 1e-12))

	short, err := New(3)
	require.NoError(t, err)

	require.ErrorIs(t, AddBatch(dst, a, short), ErrRange)
	require.ErrorIs(t, AddBatch(short, a, b), ErrRange)
	require.ErrorIs(t, a.Add(short), ErrRange)
	require.ErrorIs(t, a.Sub(short), ErrRange)
	require.ErrorIs(t, a.CopyFrom(short), ErrRange)
}

func TestBuffer_FillCopy(t *testing.T) {
	a, err := New(3)
	require.NoError(t, err)

	a.Fill(gm.Vec{X: 1, Y: -1})
	require.Equal(t, []gm.Vec{{X: 1, Y: -1}, {X: 1, Y: -1}, {X: 1, Y: -1}}, a.ToVecs(nil))

	b, err := New(3)
	require.NoError(t, err)

	require.NoError(t, b.CopyFrom(a))
	require.True(t, a.Equal(b))

	a.Fill(gm.Vec{})
	require.False(t, a.Equal(b), "copies do not share memory")
}

func TestBuffer_Scale(t *testing.T) {
	buf := mustFromVecs(t, []gm.Vec{{X: 1, Y: 2}, {X: -3, Y: 4}})

	buf.Scale(2)
	require.Equal(t, []gm.Vec{{X: 2, Y: 4}, {X: -6, Y: 8}}, buf.ToVecs(nil))

	buf.ScaleEach(gm.Vec{X: 0.5, Y: -1})
	require.Equal(t, []gm.Vec{{X: 1, Y: -4}, {X: -3, Y: -8}}, buf.ToVecs(nil))

	buf.Translate(gm.Vec{X: 1, Y: 1})
	require.Equal(t, []gm.Vec{{X: 2, Y: -3}, {X: -2, Y: -7}}, buf.ToVecs(nil))
}

func TestBuffer_Transform(t *testing.T) {
	rng := newTestRand(t)

	vecs := randomVecs(rng, 100)
	tr := gm.RandomTransform(rng, 50)
	m := gm.RandomMat(rng, 2)

	points := mustFromVecs(t, vecs)
	points.TransformPoints(tr)

	directions := mustFromVecs(t, vecs)
	directions.TransformVecs(tr)

	matrix := mustFromVecs(t, vecs)
	matrix.MulMat(m)

	for idx, vec := range vecs {
		point, _ := points.Get(idx)
		require.True(t, tr.TransformPoint(vec).ApproxEqual(point, 1e-12))

		direction, _ := directions.Get(idx)
		require.True(t, tr.TransformVec(vec).ApproxEqual(direction, 1e-12))

		product, _ := matrix.Get(idx)
		require.True(t, m.Transform(vec).ApproxEqual(product, 1e-12))
	}
}

func TestBuffer_DotLengths(t *testing.T) {
	a := mustFromVecs(t, []gm.Vec{{X: 3, Y: 4}, {X: 1, Y: 0}, {}})
	b := mustFromVecs(t, []gm.Vec{{X: 1, Y: 1}, {X: 0, Y: 1}, {X: 5, Y: 5}})

	dots := make([]float64, 3)
	require.NoError(t, a.Dot(dots, b))
	require.Equal(t, []float64{7, 0, 0}, dots)

	lengths := make([]float64, 3)
	require.NoError(t, a.Lengths(lengths))
	require.Equal(t, []float64{5, 1, 0}, lengths)

	require.ErrorIs(t, a.Dot(make([]float64, 2), b), ErrRange)
	require.ErrorIs(t, a.Lengths(make([]float64, 4)), ErrRange)

	short := mustFromVecs(t, []gm.Vec{{X: 1}})
	require.ErrorIs(t, a.Dot(dots, short), ErrRange)
}

func TestBuffer_NormalizeSafe(t *testing.T) {
	buf := mustFromVecs(t, []gm.Vec{{X: 3, Y: 4}, {}, {X: 0, Y: -2}})
	buf.NormalizeSafe()

	require.Equal(t, []gm.Vec{{X: 0.6, Y: 0.8}, {}, {X: 0, Y: -1}}, buf.ToVecs(nil))

	rng := newTestRand(t)
	random := mustFromVecs(t, randomVecs(rng, 100))
	random.NormalizeSafe()

	lengths := make([]float64, 100)
	require.NoError(t, random.Lengths(lengths))

	for _, length := range lengths {
		require.InDelta(t, 1, length, 1e-15)
	}
}

func TestBuffer_Bounds(t *testing.T) {
	buf := mustFromVecs(t, []gm.Vec{{X: 1, Y: 5}, {X: -3, Y: 2}, {X: 0, Y: 7}})

	expected, err := gm.RectEnclosing(buf.ToVecs(nil)...)
	require.NoError(t, err)

	require.Equal(t, expected, buf.Bounds())
	require.Equal(t, gm.Rect{Min: gm.Vec{X: -3, Y: 2}, Max: gm.Vec{X: 1, Y: 7}}, buf.Bounds())

	single := mustFromVecs(t, []gm.Vec{{X: math.Pi, Y: 1}})
	require.Equal(t, gm.Rect{Min: gm.Vec{X: math.Pi, Y: 1}, Max: gm.Vec{X: math.Pi, Y: 1}}, single.Bounds())
}

func BenchmarkBuffer(b *testing.B) {
	rng := newTestRand(b)

	const n = 4096

	buf := mustFromVecs(b, randomVecs(rng, n))
	other := mustFromVecs(b, randomVecs(rng, n))
	tr := gm.RandomTransform(rng, 10)

	b.Run("AddBatch", func(b *testing.B) {
		b.ReportAllocs()

		for range b.N {
			_ = AddBatch(buf, buf, other)
		}
	})

	b.Run("TransformPoints", func(b *testing.B) {
		b.ReportAllocs()

		for range b.N {
			buf.TransformPoints(tr)
		}
	})

	b.Run("TransformPoints/vecs", func(b *testing.B) {
		vecs := buf.ToVecs(nil)

		b.ReportAllocs()

		for range b.N {
			for idx, vec := range vecs {
				vecs[idx] = tr.TransformPoint(vec)
			}
		}
	})
}
