package physics

import (
	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/planar/gm"
)

func VectorOf(vec gm.Vec) cp.Vector {
	return cp.Vector{X: vec.X, Y: vec.Y}
}

func VecOf(vec cp.Vector) gm.Vec {
	return gm.Vec{X: vec.X, Y: vec.Y}
}

// CpTransform converts the rigid transform into a chipmunk transform.
func CpTransform(t gm.Transform) cp.Transform {
	return cp.NewTransformRigid(VectorOf(t.P), float64(t.R.Angle()))
}

// TransformOfBody returns the pose of a chipmunk body.
func TransformOfBody(body *cp.Body) gm.Transform {
	return gm.TransformFromAngle(VecOf(body.Position()), gm.Rad(body.Angle()))
}

// SyncBody writes the pose and velocity of src to the chipmunk body. Values
// that did not change are not written, so a sleeping body stays asleep.
func SyncBody(dst *cp.Body, src *Body) {
	if dst.Velocity() != VectorOf(src.Velocity.Linear) {
		dst.SetVelocityVector(VectorOf(src.Velocity.Linear))
	}

	if dst.AngularVelocity() != float64(src.Velocity.Angular) {
		dst.SetAngularVelocity(float64(src.Velocity.Angular))
	}

	if !vecSimilar(dst.Position(), VectorOf(src.Transform.P)) {
		dst.SetPosition(VectorOf(src.Transform.P))
	}

	angle := src.Transform.R.Angle()
	if gm.Rad(dst.Angle()).DifferenceTo(angle) != 0 {
		dst.SetAngle(float64(angle))
	}
}

// ReadBody reads the pose and velocity of the chipmunk body into dst.
// Mass properties and accumulated forces of dst are kept.
func ReadBody(dst *Body, src *cp.Body) {
	dst.Transform = TransformOfBody(src)
	dst.Velocity = Velocity{
		Linear:  VecOf(src.Velocity()),
		Angular: gm.Rad(src.AngularVelocity()),
	}
}

func vecSimilar(a, b cp.Vector) bool {
	return VecOf(a).DistanceSqr(VecOf(b)) < 1e-14
}
