package robust

import (
	"math"

	"github.com/oliverbestmann/planar/gm"
)

// Side describes the location of a point relative to a circle.
type Side int

const (
	Outside  Side = -1
	OnCircle Side = 0
	Inside   Side = 1
)

func (s Side) String() string {
	switch s {
	case Outside:
		return "Outside"
	case OnCircle:
		return "OnCircle"
	case Inside:
		return "Inside"
	default:
		return "Side(invalid)"
	}
}

// InCircle tests the point d against the circle through a, b and c, which
// must be in counter-clockwise order. The result is positive if d lies inside
// the circle, negative if it lies outside and exactly zero if the four points
// are cocircular. For clockwise a, b and c the sign is reversed.
//
// The sign is always correct.
func InCircle(a, b, c, d gm.Vec) float64 {
	adx, ady := a.X-d.X, a.Y-d.Y
	bdx, bdy := b.X-d.X, b.Y-d.Y
	cdx, cdy := c.X-d.X, c.Y-d.Y

	for _, diff := range [...]float64{adx, ady, bdx, bdy, cdx, cdy} {
		if !inRange(diff, inCircleMinDiff, inCircleMaxDiff) {
			return inCircleExact(a, b, c, d)
		}
	}

	// explicit conversions prevent fused multiply-adds,
	// the error bound assumes separately rounded products.
	bdxcdy := float64(bdx * cdy)
	cdxbdy := float64(cdx * bdy)
	aLift := float64(adx*adx) + float64(ady*ady)

	cdxady := float64(cdx * ady)
	adxcdy := float64(adx * cdy)
	bLift := float64(bdx*bdx) + float64(bdy*bdy)

	adxbdy := float64(adx * bdy)
	bdxady := float64(bdx * ady)
	cLift := float64(cdx*cdx) + float64(cdy*cdy)

	det := float64(aLift*(bdxcdy-cdxbdy)) +
		float64(bLift*(cdxady-adxcdy)) +
		float64(cLift*(adxbdy-bdxady))

	permanent := float64((math.Abs(bdxcdy)+math.Abs(cdxbdy))*aLift) +
		float64((math.Abs(cdxady)+math.Abs(adxcdy))*bLift) +
		float64((math.Abs(adxbdy)+math.Abs(bdxady))*cLift)

	errBound := inCircleErrBound*permanent + inCircleUnderflow
	if det > errBound || -det > errBound {
		return det
	}

	return inCircleExact(a, b, c, d)
}

// InCircleFast evaluates the incircle determinant without any error
// control. The sign may be wrong for nearly cocircular points.
func InCircleFast(a, b, c, d gm.Vec) float64 {
	adx, ady := a.X-d.X, a.Y-d.Y
	bdx, bdy := b.X-d.X, b.Y-d.Y
	cdx, cdy := c.X-d.X, c.Y-d.Y

	aLift := adx*adx + ady*ady
	bLift := bdx*bdx + bdy*bdy
	cLift := cdx*cdx + cdy*cdy

	return aLift*(bdx*cdy-cdx*bdy) +
		bLift*(cdx*ady-adx*cdy) +
		cLift*(adx*bdy-bdx*ady)
}

// InCircleSide classifies the location of d relative to the circle
// through the counter-clockwise points a, b and c.
func InCircleSide(a, b, c, d gm.Vec) Side {
	return Side(signOf(InCircle(a, b, c, d)))
}

func inCircleExact(a, b, c, d gm.Vec) float64 {
	ar := arenas.Get()
	defer arenas.Put(ar)

	adx, ady := ar.diff(a.X, d.X), ar.diff(a.Y, d.Y)
	bdx, bdy := ar.diff(b.X, d.X), ar.diff(b.Y, d.Y)
	cdx, cdy := ar.diff(c.X, d.X), ar.diff(c.Y, d.Y)

	exp, ok := normalizeExpansions(4, adx, ady, bdx, bdy, cdx, cdy)
	if !ok {
		return inCircleRational(a, b, c, d)
	}

	aLift := ar.sum(ar.product(adx, adx), ar.product(ady, ady))
	bLift := ar.sum(ar.product(bdx, bdx), ar.product(bdy, bdy))
	cLift := ar.sum(ar.product(cdx, cdx), ar.product(cdy, cdy))

	bc := ar.sum(ar.product(bdx, cdy), negate(ar.product(cdx, bdy)))
	ca := ar.sum(ar.product(cdx, ady), negate(ar.product(adx, cdy)))
	ab := ar.sum(ar.product(adx, bdy), negate(ar.product(bdx, ady)))

	det := ar.sum(ar.product(aLift, bc), ar.product(bLift, ca))
	det = ar.sum(det, ar.product(cLift, ab))

	return unscale(estimate(det), 4*exp)
}
