package robust

import (
	"math"
	"math/big"
	"math/rand/v2"
	"testing"

	"github.com/oliverbestmann/planar/gm"
	"github.com/stretchr/testify/require"
)

func newTestRand(t testing.TB) *rand.Rand {
	return rand.New(rand.NewPCG(0xb16, uint64(len(t.Name()))))
}

func rat(x float64) *big.Rat {
	return new(big.Rat).SetFloat64(x)
}

func ratSub(a, b float64) *big.Rat {
	return new(big.Rat).Sub(rat(a), rat(b))
}

func ratMul(a, b *big.Rat) *big.Rat {
	return new(big.Rat).Mul(a, b)
}

// exactOrient2D computes the sign of the orientation determinant with rational arithmetic.
func exactOrient2D(a, b, c gm.Vec) int {
	left := ratMul(ratSub(a.X, c.X), ratSub(b.Y, c.Y))
	right := ratMul(ratSub(a.Y, c.Y), ratSub(b.X, c.X))
	return new(big.Rat).Sub(left, right).Sign()
}

// exactInCircle computes the sign of the incircle determinant with rational arithmetic.
func exactInCircle(a, b, c, d gm.Vec) int {
	adx, ady := ratSub(a.X, d.X), ratSub(a.Y, d.Y)
	bdx, bdy := ratSub(b.X, d.X), ratSub(b.Y, d.Y)
	cdx, cdy := ratSub(c.X, d.X), ratSub(c.Y, d.Y)

	lift := func(x, y *big.Rat) *big.Rat {
		return new(big.Rat).Add(ratMul(x, x), ratMul(y, y))
	}

	cross := func(x0, y0, x1, y1 *big.Rat) *big.Rat {
		return new(big.Rat).Sub(ratMul(x0, y1), ratMul(x1, y0))
	}

	det := ratMul(lift(adx, ady), cross(bdx, bdy, cdx, cdy))
	det.Add(det, ratMul(lift(bdx, bdy), cross(cdx, cdy, adx, ady)))
	det.Add(det, ratMul(lift(cdx, cdy), cross(adx, ady, bdx, bdy)))

	return det.Sign()
}

// expansionValue sums up all components of an expansion exactly.
func expansionValue(e []float64) *big.Rat {
	sum := new(big.Rat)
	for _, component := range e {
		sum.Add(sum, rat(component))
	}

	return sum
}

// requireExpansion checks that e is free of zeros and sorted by strictly increasing magnitude.
func requireExpansion(t *testing.T, e []float64) {
	t.Helper()

	for idx, component := range e {
		require.NotZero(t, component, "zero component in %v", e)

		if idx > 0 {
			require.Less(t, math.Abs(e[idx-1]), math.Abs(component), "unsorted components in %v", e)
		}
	}
}

// randomFloat returns a random value with a random magnitude between 2^-30 and 2^30.
func randomFloat(rng *rand.Rand) float64 {
	return math.Ldexp(rng.Float64()-0.5, rng.IntN(60)-30)
}

func randomPoint(rng *rand.Rand, extent float64) gm.Vec {
	return gm.Vec{
		X: gm.RandomIn(rng, -extent, extent),
		Y: gm.RandomIn(rng, -extent, extent),
	}
}

// randomWidePoint returns a point with coordinates of random sign and a random
// magnitude between 2^-1000 and 2^1000.
func randomWidePoint(rng *rand.Rand) gm.Vec {
	coordinate := func() float64 {
		return math.Ldexp(rng.Float64()-0.5, rng.IntN(2001)-1000)
	}

	return gm.Vec{X: coordinate(), Y: coordinate()}
}
