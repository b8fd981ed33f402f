package robust

import (
	"math"

	"github.com/oliverbestmann/planar/gm"
)

const (
	// epsilon is half an ulp of one, the largest relative rounding error of float64.
	epsilon = 0x1p-53

	orientErrBound   = (3 + 16*epsilon) * epsilon
	inCircleErrBound = (10 + 96*epsilon) * epsilon

	// Nonzero coordinate differences within these ranges keep every product
	// of the fast path a normal float64, so the relative error bounds hold.
	orientMinDiff   = 0x1p-480
	orientMaxDiff   = 0x1p480
	inCircleMinDiff = 0x1p-240
	inCircleMaxDiff = 0x1p240

	// inCircleUnderflow covers the absolute rounding error of the final
	// products of the incircle fast path, which may still be subnormal.
	inCircleUnderflow = 0x1p-1060
)

// Direction is an indication of the ordering of a set of points.
type Direction int

const (
	Clockwise        Direction = -1
	Collinear        Direction = 0
	CounterClockwise Direction = 1
)

func (d Direction) String() string {
	switch d {
	case Clockwise:
		return "Clockwise"
	case Collinear:
		return "Collinear"
	case CounterClockwise:
		return "CounterClockwise"
	default:
		return "Direction(invalid)"
	}
}

// Orient2D returns twice the signed area of the triangle (a, b, c). The result
// is positive if the points are in counter-clockwise order, negative if they
// are in clockwise order and exactly zero if they are collinear.
//
// The sign is always correct. The magnitude is only an approximation
// if the points are nearly collinear.
func Orient2D(a, b, c gm.Vec) float64 {
	acx, bcy := a.X-c.X, b.Y-c.Y
	acy, bcx := a.Y-c.Y, b.X-c.X

	if !inRange(acx, orientMinDiff, orientMaxDiff) || !inRange(bcy, orientMinDiff, orientMaxDiff) ||
		!inRange(acy, orientMinDiff, orientMaxDiff) || !inRange(bcx, orientMinDiff, orientMaxDiff) {
		return orient2DExact(a, b, c)
	}

	// explicit conversions prevent fused multiply-adds,
	// the error bound assumes separately rounded products.
	detLeft := float64(acx * bcy)
	detRight := float64(acy * bcx)
	det := detLeft - detRight

	var detSum float64

	switch {
	case detLeft > 0:
		if detRight <= 0 {
			return positiveZero(det)
		}

		detSum = detLeft + detRight

	case detLeft < 0:
		if detRight >= 0 {
			return positiveZero(det)
		}

		detSum = -detLeft - detRight

	default:
		// a difference is exactly zero, det is -detRight with the correct sign
		return positiveZero(det)
	}

	errBound := orientErrBound * detSum
	if det >= errBound || -det >= errBound {
		return det
	}

	return orient2DExact(a, b, c)
}

// Orient2DFast evaluates the orientation determinant without any error
// control. The sign may be wrong for nearly collinear points.
func Orient2DFast(a, b, c gm.Vec) float64 {
	return (a.X-c.X)*(b.Y-c.Y) - (a.Y-c.Y)*(b.X-c.X)
}

// Orientation classifies the ordering of the points a, b and c.
func Orientation(a, b, c gm.Vec) Direction {
	return Direction(signOf(Orient2D(a, b, c)))
}

func orient2DExact(a, b, c gm.Vec) float64 {
	ar := arenas.Get()
	defer arenas.Put(ar)

	acx := ar.diff(a.X, c.X)
	bcy := ar.diff(b.Y, c.Y)
	acy := ar.diff(a.Y, c.Y)
	bcx := ar.diff(b.X, c.X)

	exp, ok := normalizeExpansions(2, acx, bcy, acy, bcx)
	if !ok {
		return orient2DRational(a, b, c)
	}

	left := ar.product(acx, bcy)
	right := negate(ar.product(acy, bcx))

	return unscale(estimate(ar.sum(left, right)), 2*exp)
}

func positiveZero(value float64) float64 {
	if value == 0 {
		return 0
	}

	return value
}

// inRange reports whether value is zero or its magnitude lies within [lo, hi].
// It is false for NaN and infinite values.
func inRange(value, lo, hi float64) bool {
	magnitude := math.Abs(value)
	return value == 0 || (magnitude >= lo && magnitude <= hi)
}

func signOf(value float64) int {
	switch {
	case value > 0:
		return 1
	case value < 0:
		return -1
	default:
		return 0
	}
}
