package physics

import (
	"testing"

	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/planar/gm"
	"github.com/stretchr/testify/require"
)

func TestVectorConversion(t *testing.T) {
	require.Equal(t, cp.Vector{X: 1, Y: -2}, VectorOf(gm.Vec{X: 1, Y: -2}))
	require.Equal(t, gm.Vec{X: 1, Y: -2}, VecOf(cp.Vector{X: 1, Y: -2}))
}

func TestCpTransform(t *testing.T) {
	tr := gm.TransformFromAngle(gm.Vec{X: 3, Y: -1}, 0.7)
	converted := CpTransform(tr)

	for _, point := range []gm.Vec{{}, {X: 1}, {X: -2, Y: 5}} {
		expected := tr.TransformPoint(point)
		actual := VecOf(converted.Point(VectorOf(point)))
		require.True(t, expected.ApproxEqual(actual, 1e-12), "expected %s, got %s", expected, actual)
	}
}

func TestSyncBody(t *testing.T) {
	body := NewBody(gm.TransformFromAngle(gm.Vec{X: 3, Y: 4}, 0.5), 1, 1)
	body.Velocity = Velocity{Linear: gm.Vec{X: 1, Y: -1}, Angular: 0.25}

	cpBody := cp.NewKinematicBody()
	SyncBody(cpBody, &body)

	require.Equal(t, cp.Vector{X: 3, Y: 4}, cpBody.Position())
	require.InDelta(t, 0.5, cpBody.Angle(), 1e-15)
	require.Equal(t, cp.Vector{X: 1, Y: -1}, cpBody.Velocity())
	require.Equal(t, 0.25, cpBody.AngularVelocity())

	requireTransform(t, body.Transform, TransformOfBody(cpBody), 1e-12)

	var read Body
	read.Mass = 5
	ReadBody(&read, cpBody)

	require.Equal(t, 5.0, read.Mass)
	require.Equal(t, body.Velocity, read.Velocity)
	requireTransform(t, body.Transform, read.Transform, 1e-12)
}
