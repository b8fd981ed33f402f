package soa

import (
	"fmt"
	"math"

	"github.com/oliverbestmann/planar/gm"
)

// Fill sets every vector of the buffer to vec.
func (b *Buffer) Fill(vec gm.Vec) {
	for idx := range b.xs {
		b.xs[idx] = vec.X
	}

	for idx := range b.ys {
		b.ys[idx] = vec.Y
	}
}

// CopyFrom copies all vectors from other, which must have the same length.
func (b *Buffer) CopyFrom(other *Buffer) error {
	if err := checkSameLength("copy", b, other); err != nil {
		return err
	}

	copy(b.data, other.data)
	return nil
}

// Add adds other to b element wise.
func (b *Buffer) Add(other *Buffer) error {
	return AddBatch(b, b, other)
}

// Sub subtracts other from b element wise.
func (b *Buffer) Sub(other *Buffer) error {
	if err := checkSameLength("subtract", b, other); err != nil {
		return err
	}

	src := other.data[:len(b.data)]
	for idx := range b.data {
		b.data[idx] -= src[idx]
	}

	return nil
}

// Translate adds offset to every vector.
func (b *Buffer) Translate(offset gm.Vec) {
	for idx := range b.xs {
		b.xs[idx] += offset.X
	}

	for idx := range b.ys {
		b.ys[idx] += offset.Y
	}
}

// Scale multiplies every vector with scalar.
func (b *Buffer) Scale(scalar float64) {
	for idx := range b.data {
		b.data[idx] *= scalar
	}
}

// ScaleEach multiplies the x components with scale.X and the y components with scale.Y.
func (b *Buffer) ScaleEach(scale gm.Vec) {
	for idx := range b.xs {
		b.xs[idx] *= scale.X
	}

	for idx := range b.ys {
		b.ys[idx] *= scale.Y
	}
}

// AddBatch sets dst to the element wise sum of a and b.
// All buffers must have the same length, dst may alias a or b.
func AddBatch(dst, a, b *Buffer) error {
	if err := checkSameLength("add", a, b); err != nil {
		return err
	}

	if err := checkSameLength("add", dst, a); err != nil {
		return err
	}

	out := dst.data
	lhs := a.data[:len(out)]
	rhs := b.data[:len(out)]

	for idx := range out {
		out[idx] = lhs[idx] + rhs[idx]
	}

	return nil
}

// TransformPoints applies the rigid transform to every vector as a point,
// including the translation.
func (b *Buffer) TransformPoints(t gm.Transform) {
	c, s := t.R.C, t.R.S
	px, py := t.P.X, t.P.Y

	ys := b.ys[:len(b.xs)]
	for idx, x := range b.xs {
		y := ys[idx]
		b.xs[idx] = c*x - s*y + px
		ys[idx] = s*x + c*y + py
	}
}

// TransformVecs applies only the rotation of the transform to every vector.
func (b *Buffer) TransformVecs(t gm.Transform) {
	c, s := t.R.C, t.R.S

	ys := b.ys[:len(b.xs)]
	for idx, x := range b.xs {
		y := ys[idx]
		b.xs[idx] = c*x - s*y
		ys[idx] = s*x + c*y
	}
}

// MulMat multiplies every vector with the matrix, v' = m·v.
func (b *Buffer) MulMat(m gm.Mat) {
	ys := b.ys[:len(b.xs)]
	for idx, x := range b.xs {
		y := ys[idx]
		b.xs[idx] = m.M00*x + m.M01*y
		ys[idx] = m.M10*x + m.M11*y
	}
}

// Dot writes the dot products of the vectors in b and other into dst.
// other and dst must have the same length as b.
func (b *Buffer) Dot(dst []float64, other *Buffer) error {
	if err := checkSameLength("dot", b, other); err != nil {
		return err
	}

	if err := b.checkOutput(dst); err != nil {
		return err
	}

	ys, oxs, oys := b.ys[:len(dst)], other.xs[:len(dst)], other.ys[:len(dst)]
	for idx, x := range b.xs[:len(dst)] {
		dst[idx] = x*oxs[idx] + ys[idx]*oys[idx]
	}

	return nil
}

// Lengths writes the length of every vector into dst, which must have the same length as b.
func (b *Buffer) Lengths(dst []float64) error {
	if err := b.checkOutput(dst); err != nil {
		return err
	}

	ys := b.ys[:len(dst)]
	for idx, x := range b.xs[:len(dst)] {
		dst[idx] = math.Hypot(x, ys[idx])
	}

	return nil
}

// NormalizeSafe scales every vector to unit length. Zero vectors are left untouched.
func (b *Buffer) NormalizeSafe() {
	ys := b.ys[:len(b.xs)]
	for idx, x := range b.xs {
		y := ys[idx]

		length := math.Hypot(x, y)
		if length == 0 {
			continue
		}

		b.xs[idx] = x / length
		ys[idx] = y / length
	}
}

// Bounds returns the smallest axis aligned rectangle containing all vectors.
func (b *Buffer) Bounds() gm.Rect {
	minX, maxX := b.xs[0], b.xs[0]
	for _, x := range b.xs[1:] {
		minX = min(minX, x)
		maxX = max(maxX, x)
	}

	minY, maxY := b.ys[0], b.ys[0]
	for _, y := range b.ys[1:] {
		minY = min(minY, y)
		maxY = max(maxY, y)
	}

	return gm.Rect{
		Min: gm.Vec{X: minX, Y: minY},
		Max: gm.Vec{X: maxX, Y: maxY},
	}
}

func (b *Buffer) checkOutput(dst []float64) error {
	if len(dst) != b.Len() {
		return fmt.Errorf("output of length %d for buffer of length %d: %w", len(dst), b.Len(), ErrRange)
	}

	return nil
}
