// Package soa stores vectors as a struct of arrays: all x components
// followed by all y components in one contiguous slice. Bulk operations run
// over plain float64 slices and the buffer can be handed to graphics or
// physics code without copying.
//
// A Buffer has a fixed length. It is not safe for concurrent use, but
// distinct buffers can be processed by distinct goroutines.
package soa

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/oliverbestmann/planar/gm"
)

// ErrRange is returned for indices outside of a buffer and for operands of
// different length. It wraps gm.ErrInvalidArgument.
var ErrRange = fmt.Errorf("range error: %w", gm.ErrInvalidArgument)

// Buffer holds a fixed number of vectors.
type Buffer struct {
	// data holds all x components followed by all y components
	data []float64
	xs   []float64
	ys   []float64
}

// New creates a buffer holding capacity zero vectors.
func New(capacity int) (*Buffer, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("capacity must be positive, got %d: %w", capacity, ErrRange)
	}

	data := make([]float64, 2*capacity)

	buf := &Buffer{
		data: data,
		xs:   data[:capacity:capacity],
		ys:   data[capacity:],
	}

	return buf, nil
}

// FromVecs creates a buffer holding a copy of the given vectors.
func FromVecs(vecs []gm.Vec) (*Buffer, error) {
	buf, err := New(len(vecs))
	if err != nil {
		return nil, err
	}

	if err := buf.SetVecs(vecs); err != nil {
		return nil, err
	}

	return buf, nil
}

// SetVecs overwrites the buffer with the given vectors without allocating.
// The number of vectors must match the length of the buffer.
func (b *Buffer) SetVecs(vecs []gm.Vec) error {
	if len(vecs) != b.Len() {
		return fmt.Errorf("set %d vectors into buffer of length %d: %w", len(vecs), b.Len(), ErrRange)
	}

	ys := b.ys[:len(b.xs)]
	for idx, vec := range vecs {
		b.xs[idx] = vec.X
		ys[idx] = vec.Y
	}

	return nil
}

// Len returns the number of vectors in the buffer.
func (b *Buffer) Len() int {
	return len(b.xs)
}

// X returns the x components. Writes to the returned slice modify the buffer.
func (b *Buffer) X() []float64 {
	return b.xs
}

// Y returns the y components. Writes to the returned slice modify the buffer.
func (b *Buffer) Y() []float64 {
	return b.ys
}

// Data returns the backing slice with all x components followed by all y components.
func (b *Buffer) Data() []float64 {
	return b.data
}

func (b *Buffer) Get(idx int) (gm.Vec, error) {
	if err := b.checkIndex(idx); err != nil {
		return gm.Vec{}, err
	}

	return gm.Vec{X: b.xs[idx], Y: b.ys[idx]}, nil
}

func (b *Buffer) Set(idx int, vec gm.Vec) error {
	if err := b.checkIndex(idx); err != nil {
		return err
	}

	b.xs[idx] = vec.X
	b.ys[idx] = vec.Y
	return nil
}

// Clone returns a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	clone, _ := New(b.Len())
	copy(clone.data, b.data)
	return clone
}

// ToVecs copies the vectors into dst and returns it. The capacity of dst is
// reused if it is large enough, otherwise a new slice is allocated.
func (b *Buffer) ToVecs(dst []gm.Vec) []gm.Vec {
	if cap(dst) < b.Len() {
		dst = make([]gm.Vec, b.Len())
	}

	dst = dst[:b.Len()]

	ys := b.ys[:len(b.xs)]
	for idx, x := range b.xs {
		dst[idx] = gm.Vec{X: x, Y: ys[idx]}
	}

	return dst
}

// PutInterleaved writes the vectors as x0, y0, x1, y1, ... into dst, starting at offset.
// Use a []float32 to fill a vertex buffer.
func PutInterleaved[F gm.Scalar](dst []F, offset int, b *Buffer) error {
	if offset < 0 || offset+2*b.Len() > len(dst) {
		return fmt.Errorf("put %d vectors at offset %d into slice of length %d: %w",
			b.Len(), offset, len(dst), ErrRange)
	}

	out := dst[offset : offset+2*b.Len()]

	ys := b.ys[:len(b.xs)]
	for idx, x := range b.xs {
		out[2*idx] = F(x)
		out[2*idx+1] = F(ys[idx])
	}

	return nil
}

// Hash returns a deterministic, non cryptographic hash over the vectors
// of the buffer, each rounded as in gm.Vec.Hash.
func (b *Buffer) Hash() uint64 {
	digest := xxhash.New()

	var scratch [8]byte

	ys := b.ys[:len(b.xs)]
	for idx, x := range b.xs {
		binary.LittleEndian.PutUint64(scratch[:], gm.Vec{X: x, Y: ys[idx]}.Hash())
		_, _ = digest.Write(scratch[:])
	}

	return digest.Sum64()
}

// Equal reports whether both buffers have the same length and hold exactly equal vectors.
func (b *Buffer) Equal(other *Buffer) bool {
	if b.Len() != other.Len() {
		return false
	}

	for idx, value := range b.data {
		if value != other.data[idx] {
			return false
		}
	}

	return true
}

// ApproxEqual reports whether both buffers have the same length and all
// components differ by at most eps.
func (b *Buffer) ApproxEqual(other *Buffer, eps float64) bool {
	if b.Len() != other.Len() {
		return false
	}

	for idx, value := range b.data {
		if !gm.NearEqual(value, other.data[idx], eps) {
			return false
		}
	}

	return true
}

func (b *Buffer) String() string {
	return fmt.Sprintf("soa.Buffer(len=%d)", b.Len())
}

func (b *Buffer) checkIndex(idx int) error {
	if idx < 0 || idx >= b.Len() {
		return fmt.Errorf("index %d out of range [0, %d): %w", idx, b.Len(), ErrRange)
	}

	return nil
}

func checkSameLength(op string, a, b *Buffer) error {
	if a.Len() != b.Len() {
		return fmt.Errorf("%s buffers of length %d and %d: %w", op, a.Len(), b.Len(), ErrRange)
	}

	return nil
}
