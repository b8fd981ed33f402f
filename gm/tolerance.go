package gm

import (
	"math"

	"github.com/oliverbestmann/planar/internal/assert"
)

// Tolerances by measurement kind. Do not mix them up: a linear epsilon is measured
// in world units, an angular epsilon in radians and a unit epsilon is the allowed
// deviation of a squared magnitude from one.
const (
	// LinearEpsilon is the default tolerance for lengths, coordinates and determinants.
	LinearEpsilon = 1e-9

	// AngularEpsilon is the default tolerance for angles in radians.
	AngularEpsilon = 1e-9

	// UnitEpsilon is the default allowed drift of c²+s² (or x²+y²) away from one.
	UnitEpsilon = 1e-12

	// SlerpEpsilon is the angle below which spherical interpolation degrades to
	// a linear one to avoid dividing by a vanishing sine.
	SlerpEpsilon = 1e-6
)

// HashPrecision is the number of decimal digits kept by the Hash methods.
const HashPrecision = 6

func checkEpsilon(eps float64) {
	assert.NonNegative("epsilon", eps, ErrTolerance)
}

// NearZero reports whether |x| <= eps.
func NearZero(x, eps float64) bool {
	checkEpsilon(eps)
	return math.Abs(x) <= eps
}

// NearEqual reports whether |a-b| <= eps.
func NearEqual(a, b, eps float64) bool {
	checkEpsilon(eps)

	if a == b {
		return true
	}

	return math.Abs(a-b) <= eps
}

// NearOne reports whether |x-1| <= eps.
func NearOne(x, eps float64) bool {
	return NearEqual(x, 1, eps)
}

// NearEqualRel compares two values using an absolute tolerance for values close
// to zero and a relative tolerance scaled by the larger magnitude otherwise.
func NearEqualRel(a, b, relEps, absEps float64) bool {
	checkEpsilon(relEps)
	checkEpsilon(absEps)

	if a == b {
		return true
	}

	diff := math.Abs(a - b)
	if diff <= absEps {
		return true
	}

	return diff <= relEps*max(math.Abs(a), math.Abs(b))
}
