package gm

import (
	"fmt"
	"math"
)

// Rad is an angle in radians.
type Rad float64

func (r Rad) Degrees() float64 {
	return float64(r) * RadToDegFactor
}

// Radians returns the value of the angle in radians as float64.
func (r Rad) Radians() float64 {
	return float64(r)
}

// Normalized returns the angle normalized to the range [-π, π)
func (r Rad) Normalized() Rad {
	angle := float64(r)

	angle = math.Mod(angle+math.Pi, Tau)
	if angle < 0 {
		angle += Tau
	}

	// adding Tau to a tiny negative value can round up to Tau itself
	if angle >= Tau {
		angle = 0
	}

	return Rad(angle - math.Pi)
}

// Wrapped returns the angle wrapped to the range [0, 2π)
func (r Rad) Wrapped() Rad {
	angle := math.Mod(float64(r), Tau)
	if angle < 0 {
		angle += Tau
	}

	// adding Tau to a tiny negative value can round up to Tau itself
	if angle >= Tau {
		angle = 0
	}

	return Rad(angle)
}

// DifferenceTo returns the smallest difference between to angles
// normalized to the range [-π, π)
func (r Rad) DifferenceTo(other Rad) Rad {
	return (r - other).Normalized()
}

// ShortestArcTo returns the signed angle to rotate r onto other along
// the shorter arc, in the range [-π, π).
func (r Rad) ShortestArcTo(other Rad) Rad {
	return other.DifferenceTo(r)
}

// Cos returns the cosine of the angle.
func (r Rad) Cos() float64 {
	return math.Cos(float64(r))
}

// Sin returns the sine of the angle.
func (r Rad) Sin() float64 {
	return math.Sin(float64(r))
}

// Sincos returns sine and cosine of the angle.
func (r Rad) Sincos() (sin, cos float64) {
	return math.Sincos(float64(r))
}

func (r Rad) String() string {
	return fmt.Sprintf("%grad", float64(r))
}

func DegToRad(deg float64) Rad {
	return Rad(deg * DegToRadFactor)
}

// LerpAngle interpolates between two angles along the shorter arc.
// The result is not normalized.
func LerpAngle(from, to Rad, t float64) Rad {
	return from + Rad(t)*from.ShortestArcTo(to)
}

// CircularMean returns the mean direction of the given angles, normalized
// to the range [-π, π). The mean is undefined if the angles cancel each
// other out, e.g. for 0 and π.
func CircularMean(angles ...Rad) (Rad, error) {
	if len(angles) == 0 {
		return 0, fmt.Errorf("circular mean of no angles: %w", ErrInvalidArgument)
	}

	var sumSin, sumCos float64
	for _, angle := range angles {
		sin, cos := angle.Sincos()
		sumSin += sin
		sumCos += cos
	}

	n := float64(len(angles))
	// the mean resultant length is measured in units of the unit circle
	if math.Hypot(sumSin/n, sumCos/n) <= UnitEpsilon {
		return 0, fmt.Errorf("circular mean of %d angles has no direction: %w", len(angles), ErrDomain)
	}

	return Rad(math.Atan2(sumSin, sumCos)).Normalized(), nil
}
