package robust

import (
	"math"
	"math/big"

	"github.com/oliverbestmann/planar/gm"
)

// The rational evaluations are the last resort for inputs whose coordinate
// differences overflow, or span too many binades for the float expansions.
// They allocate.

func orient2DRational(a, b, c gm.Vec) float64 {
	if !a.IsFinite() || !b.IsFinite() || !c.IsFinite() {
		return math.NaN()
	}

	left := new(big.Rat).Mul(bigDiff(a.X, c.X), bigDiff(b.Y, c.Y))
	right := new(big.Rat).Mul(bigDiff(a.Y, c.Y), bigDiff(b.X, c.X))

	return bigValue(left.Sub(left, right))
}

func inCircleRational(a, b, c, d gm.Vec) float64 {
	if !a.IsFinite() || !b.IsFinite() || !c.IsFinite() || !d.IsFinite() {
		return math.NaN()
	}

	adx, ady := bigDiff(a.X, d.X), bigDiff(a.Y, d.Y)
	bdx, bdy := bigDiff(b.X, d.X), bigDiff(b.Y, d.Y)
	cdx, cdy := bigDiff(c.X, d.X), bigDiff(c.Y, d.Y)

	det := new(big.Rat).Mul(bigLift(adx, ady), bigCross(bdx, bdy, cdx, cdy))
	det.Add(det, new(big.Rat).Mul(bigLift(bdx, bdy), bigCross(cdx, cdy, adx, ady)))
	det.Add(det, new(big.Rat).Mul(bigLift(cdx, cdy), bigCross(adx, ady, bdx, bdy)))

	return bigValue(det)
}

func bigDiff(x, y float64) *big.Rat {
	diff := new(big.Rat).SetFloat64(x)
	return diff.Sub(diff, new(big.Rat).SetFloat64(y))
}

func bigLift(x, y *big.Rat) *big.Rat {
	lift := new(big.Rat).Mul(x, x)
	return lift.Add(lift, new(big.Rat).Mul(y, y))
}

// bigCross returns x0*y1 - x1*y0.
func bigCross(x0, y0, x1, y1 *big.Rat) *big.Rat {
	cross := new(big.Rat).Mul(x0, y1)
	return cross.Sub(cross, new(big.Rat).Mul(x1, y0))
}

// bigValue converts value to float64, keeping the sign even if the
// magnitude is out of range.
func bigValue(value *big.Rat) float64 {
	result, _ := value.Float64()

	switch {
	case value.Sign() == 0:
		return 0
	case result == 0:
		return math.Copysign(math.SmallestNonzeroFloat64, float64(value.Sign()))
	case math.IsInf(result, 0):
		return math.Copysign(math.MaxFloat64, result)
	default:
		return result
	}
}
