package assert

import (
	"fmt"
	"math"
)

// NonNegative panics with an error wrapping cause if value is negative or NaN.
// It is meant for programming errors, like passing a negative tolerance.
func NonNegative(name string, value float64, cause error) {
	if value >= 0 {
		return
	}

	panic(fmt.Errorf("%s must be non-negative, got %v: %w", name, value, cause))
}

// Finite panics with an error wrapping cause if value is NaN or infinite.
func Finite(name string, value float64, cause error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		panic(fmt.Errorf("%s must be finite, got %v: %w", name, value, cause))
	}
}
