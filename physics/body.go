package physics

import (
	"log/slog"

	"github.com/oliverbestmann/planar/gm"
	"github.com/oliverbestmann/planar/internal/assert"
)

// ApplyForce applies a force in world coordinates at the center of mass.
func (b *Body) ApplyForce(force gm.Vec) {
	b.Forces.Linear.AddAssign(force)
}

// ApplyLocalForce applies a force given in the local frame of the body at the center of mass.
func (b *Body) ApplyLocalForce(force gm.Vec) {
	b.Forces.Linear.AddAssign(b.Transform.TransformVec(force))
}

// ApplyForceAt applies a world force at a world point, which adds a torque
// if the point is not the center of mass.
func (b *Body) ApplyForceAt(force, point gm.Vec) {
	arm := point.Sub(b.Transform.P)

	b.Forces.Linear.AddAssign(force)
	b.Forces.Torque += arm.Cross(force)
}

func (b *Body) ApplyTorque(torque float64) {
	b.Forces.Torque += torque
}

// Integrate advances the body by dt seconds using semi-implicit Euler:
// accumulated forces update the velocity first, the new velocity then
// moves the body. Forces are cleared afterwards.
//
// dt must be finite and non-negative.
func (b *Body) Integrate(dt float64) {
	assert.Finite("dt", dt, gm.ErrInvalidArgument)
	assert.NonNegative("dt", dt, gm.ErrInvalidArgument)

	if b.Mass > 0 {
		b.Velocity.Linear.AddAssign(b.Forces.Linear.Mul(dt / b.Mass))
	}

	if b.Moment > 0 {
		b.Velocity.Angular += gm.Rad(b.Forces.Torque * dt / b.Moment)
	}

	b.Forces = ExternalForces{}

	b.Transform.P.AddAssign(b.Velocity.Linear.Mul(dt))
	b.Transform.R.PreMulAssign(gm.RotFromAngle(b.Velocity.Angular * gm.Rad(dt)))

	if !b.Transform.R.IsNormalized(gm.UnitEpsilon) {
		Logger().Debug("Renormalize drifted body rotation",
			slog.Float64("magnitude", b.Transform.R.Magnitude()),
			slog.Float64("angle", float64(b.Transform.R.Angle())),
		)

		b.Transform.R.NormalizeIfNeededAssign(gm.UnitEpsilon)
	}
}

// Advance moves the body by delta, given in the local frame of the body.
func (b *Body) Advance(delta gm.Transform) {
	b.Transform.MulAssign(delta)
}

// Relative returns the pose of other expressed in the frame of b.
func (b *Body) Relative(other *Body) gm.Transform {
	return b.Transform.Relative(other.Transform)
}

// LocalToWorld maps a point in the local frame of the body to world coordinates.
func (b *Body) LocalToWorld(point gm.Vec) gm.Vec {
	return b.Transform.TransformPoint(point)
}

// WorldToLocal maps a point in world coordinates into the local frame of the body.
func (b *Body) WorldToLocal(point gm.Vec) gm.Vec {
	return b.Transform.InverseTransformPoint(point)
}

// VelocityAt returns the velocity of the body at the given world point,
// including the contribution of the angular velocity.
func (b *Body) VelocityAt(point gm.Vec) gm.Vec {
	arm := point.Sub(b.Transform.P)
	return b.Velocity.Linear.Add(arm.Perp().Mul(float64(b.Velocity.Angular)))
}
