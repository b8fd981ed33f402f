package physics

import (
	"github.com/oliverbestmann/planar/gm"
)

// Velocity of a body in the world frame.
type Velocity struct {
	Linear gm.Vec
	// Angular velocity in radians per second, counter-clockwise.
	Angular gm.Rad
}

// ExternalForces accumulate until the next call to Body.Integrate.
type ExternalForces struct {
	Linear gm.Vec
	Torque float64
}

// Body is a rigid body moving in the plane.
//
// A body with a non-positive Mass is not accelerated by forces, a body with a
// non-positive Moment is not accelerated by torque. Both still move with their
// current velocity.
type Body struct {
	Transform gm.Transform
	Velocity  Velocity

	Mass   float64
	Moment float64

	Forces ExternalForces
}

// NewBody creates a body at rest with the given pose and mass properties.
func NewBody(transform gm.Transform, mass, moment float64) Body {
	return Body{
		Transform: transform,
		Mass:      mass,
		Moment:    moment,
	}
}
