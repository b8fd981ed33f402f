package gm

import (
	"fmt"
	"math"
)

const (
	Pi     = math.Pi
	Tau    = 2 * math.Pi
	HalfPi = math.Pi / 2

	// DegToRadFactor converts degrees to radians by multiplication.
	DegToRadFactor = math.Pi / 180

	// RadToDegFactor converts radians to degrees by multiplication.
	RadToDegFactor = 180 / math.Pi
)

// Scalar is the set of numeric types accepted by the generic helpers.
type Scalar interface {
	~float32 | ~float64
}

// Clamp limits value to the range [lo, hi].
func Clamp[S Scalar](value, lo, hi S) S {
	return min(max(value, lo), hi)
}

// Clamp01 limits value to the range [0, 1].
func Clamp01[S Scalar](value S) S {
	return Clamp(value, 0, 1)
}

// Lerp does a linear interpolation between a and b using the factor t.
// A value for t of 0 returns a, a value of 1 returns b. t is not clamped.
func Lerp[S Scalar](a, b, t S) S {
	return (b-a)*t + a
}

// InverseLerp returns the factor t for which Lerp(a, b, t) == value.
func InverseLerp(a, b, value float64) (float64, error) {
	if a == b {
		return 0, fmt.Errorf("inverse lerp of empty range [%v, %v]: %w", a, b, ErrDomain)
	}

	return (value - a) / (b - a), nil
}

// Remap maps value from the range [fromLo, fromHi] to the range [toLo, toHi].
func Remap(value, fromLo, fromHi, toLo, toHi float64) (float64, error) {
	t, err := InverseLerp(fromLo, fromHi, value)
	if err != nil {
		return 0, err
	}

	return Lerp(toLo, toHi, t), nil
}

// Smoothstep performs a hermite interpolation between 0 and 1 when edge0 < x < edge1.
// Values outside of the edges are clamped. Equal edges act as a step function.
func Smoothstep(edge0, edge1, x float64) float64 {
	if edge0 == edge1 {
		if x < edge0 {
			return 0
		}

		return 1
	}

	t := Clamp01((x - edge0) / (edge1 - edge0))
	return t * t * (3 - 2*t)
}

// Smootherstep is Ken Perlin's variant of Smoothstep with zero first and second
// derivatives at the edges.
func Smootherstep(edge0, edge1, x float64) float64 {
	if edge0 == edge1 {
		if x < edge0 {
			return 0
		}

		return 1
	}

	t := Clamp01((x - edge0) / (edge1 - edge0))
	return t * t * t * (t*(t*6-15) + 10)
}

// Sign returns -1, 0 or 1 depending on the sign of x. NaN is returned as is.
func Sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return x
	}
}

// roundTo rounds x to the given number of decimal digits and folds
// negative zero into positive zero.
func roundTo(x float64, digits int) float64 {
	scale := math.Pow10(digits)
	rounded := math.Round(x*scale) / scale
	if rounded == 0 {
		return 0
	}

	return rounded
}
