// Package robust implements the orientation and incircle predicates with
// adaptive precision.
//
// Each predicate first evaluates its determinant in ordinary floating point
// together with an error bound derived from the magnitudes of the
// intermediate products (Shewchuk, "Adaptive Precision Floating-Point
// Arithmetic and Fast Robust Geometric Predicates"). If the magnitude of the
// result exceeds the bound, its sign is certified and returned. Otherwise the
// determinant is evaluated exactly using nonoverlapping floating-point
// expansions, so the sign of the result always matches the sign of the
// mathematically exact determinant.
//
// Inputs are assumed to be finite and far enough from the limits of float64
// that no intermediate product overflows or underflows. The result for
// non-finite inputs is unspecified, but the predicates never panic.
package robust
