package gm

import "fmt"

// Transform is a rigid transformation of the plane: a rotation R followed
// by a translation P. A point x is mapped to R·x + P.
//
// Use IdentityTransform to build a new identity transformation,
// the zero value is not a valid transform.
type Transform struct {
	P Vec `json:"p"`
	R Rot `json:"r"`
}

// IdentityTransform returns the identity transformation.
func IdentityTransform() Transform {
	return Transform{R: IdentityRot()}
}

func TransformOf(translation Vec, rotation Rot) Transform {
	return Transform{P: translation, R: rotation}
}

func TransformFromAngle(translation Vec, angle Rad) Transform {
	return Transform{P: translation, R: RotFromAngle(angle)}
}

// Translation returns a transform that only translates.
func Translation(translation Vec) Transform {
	return Transform{P: translation, R: IdentityRot()}
}

// TransformPoint applies the transform to the given point and returns
// the transformed point.
func (t Transform) TransformPoint(point Vec) Vec {
	return t.R.Rotate(point).Add(t.P)
}

// TransformVec applies the transform to a vector. This is different from transforming
// a point in that it will not apply the translation component of the transform.
// The vector will only be rotated.
func (t Transform) TransformVec(vec Vec) Vec {
	return t.R.Rotate(vec)
}

// InverseTransformPoint maps a point from the target frame back into the source frame.
func (t Transform) InverseTransformPoint(point Vec) Vec {
	return t.R.InverseRotate(point.Sub(t.P))
}

// InverseTransformVec rotates vec by the inverse rotation.
func (t Transform) InverseTransformVec(vec Vec) Vec {
	return t.R.InverseRotate(vec)
}

// Mul composes two transforms. The effect of the resulting transformation is
// the same as transforming a point first by other and then by t.
func (t Transform) Mul(other Transform) Transform {
	return Transform{
		P: t.R.Rotate(other.P).Add(t.P),
		R: t.R.Mul(other.R),
	}
}

// Inverse returns the inverse transform (-R⁻¹·P, R⁻¹).
func (t Transform) Inverse() Transform {
	inv := t.R.Inverse()
	return Transform{
		P: inv.Rotate(t.P).Neg(),
		R: inv,
	}
}

// Relative returns t⁻¹∘other: the pose of other expressed in the frame of t.
func (t Transform) Relative(other Transform) Transform {
	inv := t.R.Inverse()
	return Transform{
		P: inv.Rotate(other.P.Sub(t.P)),
		R: inv.Mul(other.R),
	}
}

// Slerp interpolates the translation linearly and the rotation along the shorter arc.
func (t Transform) Slerp(other Transform, f float64) Transform {
	return Transform{
		P: t.P.Lerp(other.P, f),
		R: t.R.Slerp(other.R, f),
	}
}

// Nlerp interpolates the translation linearly and the rotation using Rot.Nlerp.
func (t Transform) Nlerp(other Transform, f float64) Transform {
	return Transform{
		P: t.P.Lerp(other.P, f),
		R: t.R.Nlerp(other.R, f),
	}
}

// Normalize renormalizes the rotation if it drifted by more than UnitEpsilon.
func (t Transform) Normalize() Transform {
	t.R = t.R.NormalizeIfNeeded(UnitEpsilon)
	return t
}

// Affine converts the rigid transform into a general affine transform.
func (t Transform) Affine() Affine {
	return Affine{
		Matrix:      t.R.Mat(),
		Translation: t.P,
	}
}

// Equal reports whether both transforms are exactly equal.
func (t Transform) Equal(other Transform) bool {
	return t == other
}

// ApproxEqual compares the translations using the linear epsilon and the
// rotations using the angular epsilon.
func (t Transform) ApproxEqual(other Transform, linearEps, angularEps float64) bool {
	return t.P.ApproxEqual(other.P, linearEps) && t.R.ApproxEqual(other.R, angularEps)
}

// Hash returns a deterministic, non cryptographic hash of the rounded components.
func (t Transform) Hash() uint64 {
	return hashFloats(t.P.X, t.P.Y, t.R.C, t.R.S)
}

func (t Transform) String() string {
	return fmt.Sprintf("transform(p=%s, angle=%s)", t.P, t.R.Angle())
}

// SetMul sets t to a∘b and returns t.
//
// It is safe for t to alias a or b, e.g. t.SetMul(t, delta) to accumulate
// a motion in place: both operands are read completely before t is written.
func (t *Transform) SetMul(a, b *Transform) *Transform {
	aP, aR := a.P, a.R
	bP, bR := b.P, b.R

	t.P = aR.Rotate(bP).Add(aP)
	t.R = aR.Mul(bR)
	return t
}

// MulAssign sets t to t∘delta: delta is applied in the local frame of t.
func (t *Transform) MulAssign(delta Transform) *Transform {
	return t.SetMul(t, &delta)
}

// PreMulAssign sets t to parent∘t: t is moved into the frame of parent.
func (t *Transform) PreMulAssign(parent Transform) *Transform {
	return t.SetMul(&parent, t)
}

func (t *Transform) InvertAssign() *Transform {
	*t = t.Inverse()
	return t
}
