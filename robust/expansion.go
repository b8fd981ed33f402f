package robust

import (
	"math"

	"github.com/oliverbestmann/planar/internal/typedpool"
)

// An expansion is a sum of float64 components that do not overlap, sorted
// by increasing magnitude. Zero components are eliminated, so an empty
// expansion represents zero and the last component carries the sign.

// twoSum returns x = fl(a+b) and the rounding error y, with a+b = x+y exactly.
func twoSum(a, b float64) (x, y float64) {
	x = a + b
	bVirtual := x - a
	aVirtual := x - bVirtual
	bRoundoff := b - bVirtual
	aRoundoff := a - aVirtual
	y = aRoundoff + bRoundoff
	return x, y
}

// fastTwoSum is twoSum for |a| >= |b|.
func fastTwoSum(a, b float64) (x, y float64) {
	x = a + b
	bVirtual := x - a
	y = b - bVirtual
	return x, y
}

// twoDiff returns x = fl(a-b) and the rounding error y, with a-b = x+y exactly.
func twoDiff(a, b float64) (x, y float64) {
	x = a - b
	bVirtual := a - x
	aVirtual := x + bVirtual
	bRoundoff := bVirtual - b
	aRoundoff := a - aVirtual
	y = aRoundoff + bRoundoff
	return x, y
}

// twoProduct returns x = fl(a*b) and the rounding error y, with a*b = x+y exactly.
func twoProduct(a, b float64) (x, y float64) {
	x = a * b
	y = math.FMA(a, b, -x)
	return x, y
}

// diffExpansion appends the expansion of a-b to dst.
func diffExpansion(dst []float64, a, b float64) []float64 {
	x, y := twoDiff(a, b)

	if y != 0 {
		dst = append(dst, y)
	}

	if x != 0 {
		dst = append(dst, x)
	}

	return dst
}

// growExpansion appends the expansion of e+b to dst.
// dst needs room for len(e)+1 components.
func growExpansion(dst []float64, e []float64, b float64) []float64 {
	q := b

	for _, component := range e {
		var h float64
		q, h = twoSum(q, component)

		if h != 0 {
			dst = append(dst, h)
		}
	}

	if q != 0 {
		dst = append(dst, q)
	}

	return dst
}

// sumExpansion appends the expansion of e+f to dst.
// dst needs room for len(e)+len(f) components.
func sumExpansion(dst []float64, e, f []float64) []float64 {
	if len(e) == 0 {
		return append(dst, f...)
	}

	if len(f) == 0 {
		return append(dst, e...)
	}

	h := dst[len(dst) : len(dst)+len(e)+len(f)]

	q := f[0]
	for idx, component := range e {
		q, h[idx] = twoSum(q, component)
	}

	last := len(e)
	h[last] = q

	for fIdx := 1; fIdx < len(f); fIdx++ {
		q = f[fIdx]

		for hIdx := fIdx; hIdx <= last; hIdx++ {
			q, h[hIdx] = twoSum(q, h[hIdx])
		}

		last++
		h[last] = q
	}

	return dst[:len(dst)+len(eliminateZeros(h))]
}

// scaleExpansion appends the expansion of e*b to dst.
// dst needs room for 2*len(e) components.
func scaleExpansion(dst []float64, e []float64, b float64) []float64 {
	if len(e) == 0 || b == 0 {
		return dst
	}

	q, h := twoProduct(e[0], b)
	if h != 0 {
		dst = append(dst, h)
	}

	for _, component := range e[1:] {
		productHi, productLo := twoProduct(component, b)

		var sum float64
		sum, h = twoSum(q, productLo)
		if h != 0 {
			dst = append(dst, h)
		}

		q, h = fastTwoSum(productHi, sum)
		if h != 0 {
			dst = append(dst, h)
		}
	}

	if q != 0 {
		dst = append(dst, q)
	}

	return dst
}

// eliminateZeros removes zero components in place.
func eliminateZeros(e []float64) []float64 {
	n := 0

	for _, component := range e {
		if component != 0 {
			e[n] = component
			n++
		}
	}

	return e[:n]
}

// negate flips the sign of the expansion in place.
func negate(e []float64) []float64 {
	for idx := range e {
		e[idx] = -e[idx]
	}

	return e
}

// estimate approximates the value of the expansion. The result
// always has the sign of the exact value.
func estimate(e []float64) float64 {
	if len(e) == 0 {
		return 0
	}

	var sum float64
	for _, component := range e {
		sum += component
	}

	if math.IsNaN(sum) {
		return sum
	}

	largest := e[len(e)-1]
	if sum == 0 || (sum > 0) != (largest > 0) {
		return largest
	}

	return sum
}

// minGranularity is the exponent of the smallest subnormal float64. Products
// are exact as long as all bits of the rounding error lie above it.
const minGranularity = -1074

// normalizeExpansions scales the components of all expansions in place by a
// power of two, so the largest component lies in [0.5, 1). It returns the
// exponent that was removed.
//
// ok is false if a component is not finite, or if the components span so many
// binades that a product of degree components could drop bits below the
// subnormal range. The expansions are left untouched in that case.
func normalizeExpansions(degree int, es ...[]float64) (exp int, ok bool) {
	minExp, maxExp := math.MaxInt, math.MinInt

	for _, e := range es {
		for _, component := range e {
			if math.IsNaN(component) || math.IsInf(component, 0) {
				return 0, false
			}

			_, componentExp := math.Frexp(component)
			minExp = min(minExp, componentExp)
			maxExp = max(maxExp, componentExp)
		}
	}

	if maxExp == math.MinInt {
		// all expansions are zero
		return 0, true
	}

	// the lowest bit of a component with exponent e is at least 2^(e-53)
	if degree*(minExp-maxExp-53) < minGranularity {
		return 0, false
	}

	for _, e := range es {
		for idx := range e {
			e[idx] = math.Ldexp(e[idx], -maxExp)
		}
	}

	return maxExp, true
}

// unscale multiplies value by 2^exp. The sign is kept even if the magnitude
// leaves the range of float64.
func unscale(value float64, exp int) float64 {
	if value == 0 || math.IsNaN(value) {
		return positiveZero(value)
	}

	scaled := math.Ldexp(value, exp)

	switch {
	case scaled == 0:
		return math.Copysign(math.SmallestNonzeroFloat64, value)
	case math.IsInf(scaled, 0):
		return math.Copysign(math.MaxFloat64, value)
	default:
		return scaled
	}
}

// arena hands out scratch slices for the exact evaluation of a predicate.
// Slices handed out stay valid until the arena is reset.
type arena struct {
	buf    []float64
	offset int
}

var arenas = typedpool.New(func(a *arena) { a.offset = 0 })

// alloc returns an empty slice with room for n components.
func (a *arena) alloc(n int) []float64 {
	if a.offset+n > len(a.buf) {
		// slices handed out earlier keep the previous buffer alive
		a.buf = make([]float64, max(2*len(a.buf), n, 64))
		a.offset = 0
	}

	s := a.buf[a.offset : a.offset : a.offset+n]
	a.offset += n
	return s
}

func (a *arena) diff(x, y float64) []float64 {
	return diffExpansion(a.alloc(2), x, y)
}

func (a *arena) sum(e, f []float64) []float64 {
	if len(f) == 1 {
		return growExpansion(a.alloc(len(e)+1), e, f[0])
	}

	return sumExpansion(a.alloc(len(e)+len(f)), e, f)
}

// product returns the expansion of e*f.
func (a *arena) product(e, f []float64) []float64 {
	if len(e) < len(f) {
		e, f = f, e
	}

	var result []float64
	for _, component := range f {
		scaled := scaleExpansion(a.alloc(2*len(e)), e, component)
		result = a.sum(result, scaled)
	}

	return result
}
