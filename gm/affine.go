package gm

import (
	"fmt"

	"golang.org/x/image/math/f64"
)

// Affine represents an affine transformation. It consists of a Matrix that describes
// rotation, scale and shear, as well as a Translation vector.
//
// Use IdentityAffine to build a new identity transformation. For rigid motions
// prefer Transform, which keeps the rotation normalized and is cheaper to invert.
type Affine struct {
	Matrix      Mat `json:"matrix"`
	Translation Vec `json:"translation"`
}

// IdentityAffine returns the identity transformation.
func IdentityAffine() Affine {
	return Affine{
		Matrix: IdentityMat(),
	}
}

func (a Affine) Rotate(angle Rad) Affine {
	rot := Affine{Matrix: RotationMat(angle)}
	return a.Mul(rot)
}

func (a Affine) Scale(scale Vec) Affine {
	rot := Affine{Matrix: ScaleMat(scale)}
	return a.Mul(rot)
}

func (a Affine) Translate(translate Vec) Affine {
	rot := Affine{Matrix: IdentityMat(), Translation: translate}
	return a.Mul(rot)
}

// Transform applies the affine transform to the given point and returns
// the transformed point.
func (a Affine) Transform(point Vec) Vec {
	return a.Matrix.Transform(point).Add(a.Translation)
}

// TransformVec applies the transform to a vector. This is different from transforming
// a point in that it will not apply the translation component of the Affine transform.
// The vector will only be rotated and scaled.
func (a Affine) TransformVec(vec Vec) Vec {
	return a.Matrix.Transform(vec)
}

// Mul multiplies the affine transformation with another transformation.
// The effect of the resulting transformation is the same as transforming a
// point first by other and then by a.
func (a Affine) Mul(other Affine) Affine {
	return Affine{
		Matrix:      a.Matrix.Mul(other.Matrix),
		Translation: a.Matrix.Transform(other.Translation).Add(a.Translation),
	}
}

// Inverse returns the inverse of the Affine transformation.
// It fails if the matrix is singular.
func (a Affine) Inverse() (Affine, error) {
	mat, err := a.Matrix.Inverse()
	if err != nil {
		return Affine{}, fmt.Errorf("invert affine: %w", err)
	}

	translation := mat.Transform(a.Translation).Mul(-1)
	inverse := Affine{
		Matrix:      mat,
		Translation: translation,
	}

	return inverse, nil
}

// InverseSafe returns the inverse of the Affine transformation,
// or the zero transformation if the matrix is singular.
func (a Affine) InverseSafe() Affine {
	inverse, err := a.Inverse()
	if err != nil {
		return Affine{}
	}

	return inverse
}

// Rigid converts the affine transformation into a rigid Transform. This fails
// if the matrix is not a rotation within eps.
func (a Affine) Rigid(eps float64) (Transform, error) {
	if !a.Matrix.IsRotation(eps) {
		return Transform{}, fmt.Errorf("affine matrix %s is not a rotation: %w", a.Matrix, ErrDomain)
	}

	rot, err := RotFromMat(a.Matrix)
	if err != nil {
		return Transform{}, err
	}

	return Transform{P: a.Translation, R: rot}, nil
}

// Aff3 returns the transformation as a row major 3x3 affine matrix
// with an implicit bottom row of [0 0 1].
func (a Affine) Aff3() f64.Aff3 {
	m := a.Matrix
	return f64.Aff3{
		m.M00, m.M01, a.Translation.X,
		m.M10, m.M11, a.Translation.Y,
	}
}

// AffineFromAff3 is the inverse of Affine.Aff3.
func AffineFromAff3(m f64.Aff3) Affine {
	return Affine{
		Matrix:      Mat{M00: m[0], M01: m[1], M10: m[3], M11: m[4]},
		Translation: Vec{X: m[2], Y: m[5]},
	}
}

func (a Affine) ApproxEqual(other Affine, eps float64) bool {
	return a.Matrix.ApproxEqual(other.Matrix, eps) && a.Translation.ApproxEqual(other.Translation, eps)
}
