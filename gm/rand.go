package gm

import (
	"math/rand/v2"
)

// The random helpers take an optional source of randomness. Pass nil
// to use the global generator of math/rand/v2.

func randFloat(rng *rand.Rand) float64 {
	if rng == nil {
		return rand.Float64()
	}

	return rng.Float64()
}

// RandomIn returns a random value uniformly sampled from the given range, excluding max.
func RandomIn[S Scalar](rng *rand.Rand, min, max S) S {
	return S(randFloat(rng)*(float64(max)-float64(min))) + min
}

// RandomAngle returns a random angle uniformly sampled from the full circle
func RandomAngle(rng *rand.Rand) Rad {
	return Rad(RandomIn(rng, 0, Tau))
}

// RandomVec returns a vector uniformly sampled from within the unit circle.
func RandomVec(rng *rand.Rand) Vec {
	for {
		v := Vec{
			X: RandomIn(rng, -1.0, 1.0),
			Y: RandomIn(rng, -1.0, 1.0),
		}

		if v.LengthSqr() <= 1 {
			return v
		}
	}
}

// RandomRot returns a unit rotation with a uniformly sampled angle.
func RandomRot(rng *rand.Rand) Rot {
	return RotFromAngle(RandomAngle(rng))
}

// RandomTransform returns a transform with a random rotation and a
// translation within [-extent, extent) on both axes.
func RandomTransform(rng *rand.Rand, extent float64) Transform {
	return Transform{
		P: Vec{
			X: RandomIn(rng, -extent, extent),
			Y: RandomIn(rng, -extent, extent),
		},
		R: RandomRot(rng),
	}
}

// RandomMat returns a matrix with elements uniformly sampled from [-extent, extent).
func RandomMat(rng *rand.Rand, extent float64) Mat {
	return Mat{
		M00: RandomIn(rng, -extent, extent),
		M01: RandomIn(rng, -extent, extent),
		M10: RandomIn(rng, -extent, extent),
		M11: RandomIn(rng, -extent, extent),
	}
}
