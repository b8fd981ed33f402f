package gm

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRad_Normalized(t *testing.T) {
	require.InDelta(t, 0, float64(Rad(Tau).Normalized()), 1e-12)
	require.InDelta(t, -math.Pi, float64(Rad(math.Pi).Normalized()), 1e-12)
	require.InDelta(t, -math.Pi/2, float64(Rad(3*math.Pi/2).Normalized()), 1e-12)
	require.InDelta(t, math.Pi/2, float64(Rad(-3*math.Pi/2).Normalized()), 1e-12)
	require.InDelta(t, 0.5, float64(Rad(0.5+10*Tau).Normalized()), 1e-9)

	// just below -π, adding Tau rounds up to Tau
	below := Rad(math.Nextafter(-math.Pi, math.Inf(-1))).Normalized()
	require.GreaterOrEqual(t, float64(below), -math.Pi)
	require.Less(t, float64(below), math.Pi)
	require.InDelta(t, math.Pi, math.Abs(float64(below)), 1e-15)

	rng := rand.New(rand.NewPCG(3, 4))
	for range 1000 {
		angle := Rad(math.Nextafter(-math.Pi, math.Inf(-1)) - RandomIn(rng, 0, 1e-12)*float64(rng.IntN(8)))
		normalized := angle.Normalized()
		require.GreaterOrEqual(t, float64(normalized), -math.Pi, "angle %v", angle)
		require.Less(t, float64(normalized), math.Pi, "angle %v", angle)
	}
}

func TestRad_Wrapped(t *testing.T) {
	require.InDelta(t, 3*math.Pi/2, float64(Rad(-math.Pi/2).Wrapped()), 1e-12)
	require.InDelta(t, 0, float64(Rad(Tau).Wrapped()), 1e-12)
	require.InDelta(t, 1, float64(Rad(1+4*Tau).Wrapped()), 1e-9)

	wrapped := Rad(-1e-18).Wrapped()
	require.GreaterOrEqual(t, float64(wrapped), 0.0)
	require.Less(t, float64(wrapped), Tau)
}

func TestRad_DifferenceTo(t *testing.T) {
	// crossing the discontinuity uses the short way around
	diff := DegToRad(170).ShortestArcTo(DegToRad(-170))
	require.InDelta(t, 20, diff.Degrees(), 1e-9)

	diff = DegToRad(-170).ShortestArcTo(DegToRad(170))
	require.InDelta(t, -20, diff.Degrees(), 1e-9)

	require.InDelta(t, -20, DegToRad(170).DifferenceTo(DegToRad(-170)).Degrees(), 1e-9)
}

func TestRad_Conversions(t *testing.T) {
	require.InDelta(t, 180, Rad(math.Pi).Degrees(), 1e-12)
	require.InDelta(t, math.Pi/2, float64(DegToRad(90)), 1e-15)
	require.Equal(t, 2.5, Rad(2.5).Radians())

	sin, cos := DegToRad(90).Sincos()
	require.InDelta(t, 1, sin, 1e-15)
	require.InDelta(t, 0, cos, 1e-15)
	require.InDelta(t, 1, DegToRad(90).Sin(), 1e-15)
	require.InDelta(t, -1, Rad(math.Pi).Cos(), 1e-15)
}

func TestLerpAngle(t *testing.T) {
	angle := LerpAngle(DegToRad(170), DegToRad(-170), 0.5)
	require.InDelta(t, 180, angle.Degrees(), 1e-9)

	angle = LerpAngle(0, DegToRad(90), 0.25)
	require.InDelta(t, 22.5, angle.Degrees(), 1e-9)
}

func TestCircularMean(t *testing.T) {
	t.Run("across the discontinuity", func(t *testing.T) {
		mean, err := CircularMean(DegToRad(170), DegToRad(-170))
		require.NoError(t, err)
		require.InDelta(t, 180, math.Abs(mean.Degrees()), 1e-9)
	})

	t.Run("simple", func(t *testing.T) {
		mean, err := CircularMean(DegToRad(10), DegToRad(20), DegToRad(30))
		require.NoError(t, err)
		require.InDelta(t, 20, mean.Degrees(), 1e-9)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := CircularMean()
		require.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("opposite angles cancel", func(t *testing.T) {
		_, err := CircularMean(0, math.Pi)
		require.ErrorIs(t, err, ErrDomain)

		_, err = CircularMean(0, Tau/3, 2*Tau/3)
		require.ErrorIs(t, err, ErrDomain)
	})

	t.Run("short resultant still has a direction", func(t *testing.T) {
		mean, err := CircularMean(0, math.Pi-2e-10)
		require.NoError(t, err)
		require.InDelta(t, 90, mean.Degrees(), 1e-3)
	})
}
