package gm

import (
	"fmt"
	"math"
)

// Rot is an orientation stored as the unit complex number C + iS, with
// C = cos(angle) and S = sin(angle). Composing two rotations is a single
// complex multiplication.
//
// Repeated composition lets the magnitude drift away from one. Use
// NormalizeIfNeeded from time to time to pull it back onto the unit circle.
type Rot struct {
	C float64 `json:"c"`
	S float64 `json:"s"`
}

func IdentityRot() Rot {
	return Rot{C: 1}
}

func RotFromAngle(angle Rad) Rot {
	sin, cos := angle.Sincos()
	return Rot{C: cos, S: sin}
}

// RotFromCS builds a rotation from a cosine and sine. The values
// are used as is, without normalization.
func RotFromCS(cos, sin float64) Rot {
	return Rot{C: cos, S: sin}
}

// RotBetween returns the rotation that turns the direction of from
// onto the direction of to.
func RotBetween(from, to Vec) (Rot, error) {
	if from.IsZero() || to.IsZero() {
		return Rot{}, fmt.Errorf("rotation between %s and %s: %w", from, to, ErrDomain)
	}

	return Rot{C: from.Dot(to), S: from.Cross(to)}.Normalize()
}

// RotFromMat extracts the rotation of the first column of the matrix.
func RotFromMat(m Mat) (Rot, error) {
	return Rot{C: m.M00, S: m.M10}.Normalize()
}

// Angle returns the rotation angle in the range [-π, π]
func (r Rot) Angle() Rad {
	return Rad(math.Atan2(r.S, r.C))
}

func (r Rot) Magnitude() float64 {
	return math.Hypot(r.C, r.S)
}

// Mat returns the rotation matrix of r.
func (r Rot) Mat() Mat {
	return RotationMatCS(r.C, r.S)
}

// Mul composes both rotations. Applied to a vector, other acts first,
// but as rotations commute in 2d, the order only matters for rounding.
func (r Rot) Mul(other Rot) Rot {
	return Rot{
		C: r.C*other.C - r.S*other.S,
		S: r.S*other.C + r.C*other.S,
	}
}

// Inverse returns the conjugate, which is the inverse of a unit rotation.
func (r Rot) Inverse() Rot {
	return Rot{C: r.C, S: -r.S}
}

// Rotate rotates vec by r.
func (r Rot) Rotate(vec Vec) Vec {
	return Vec{
		X: r.C*vec.X - r.S*vec.Y,
		Y: r.S*vec.X + r.C*vec.Y,
	}
}

// InverseRotate rotates vec by the inverse of r.
func (r Rot) InverseRotate(vec Vec) Vec {
	return Vec{
		X: r.C*vec.X + r.S*vec.Y,
		Y: -r.S*vec.X + r.C*vec.Y,
	}
}

// AngleTo returns the signed angle along the shorter arc to rotate r onto other.
func (r Rot) AngleTo(other Rot) Rad {
	delta := r.Inverse().Mul(other)
	return Rad(math.Atan2(delta.S, delta.C))
}

// Normalize scales r back to unit magnitude. A zero rotation can not be normalized.
func (r Rot) Normalize() (Rot, error) {
	magnitude := r.Magnitude()
	if magnitude == 0 {
		return Rot{}, fmt.Errorf("normalize zero rotation: %w", ErrDomain)
	}

	return Rot{C: r.C / magnitude, S: r.S / magnitude}, nil
}

// NormalizeSafe is like Normalize, but returns the identity rotation
// if r has zero magnitude.
func (r Rot) NormalizeSafe() Rot {
	magnitude := r.Magnitude()
	if magnitude == 0 {
		return IdentityRot()
	}

	return Rot{C: r.C / magnitude, S: r.S / magnitude}
}

// NormalizeIfNeeded only normalizes r if c²+s² differs from one by more than eps.
// Use UnitEpsilon as a default.
func (r Rot) NormalizeIfNeeded(eps float64) Rot {
	if r.IsNormalized(eps) {
		return r
	}

	return r.NormalizeSafe()
}

// IsNormalized reports whether c²+s² differs from one by at most eps.
func (r Rot) IsNormalized(eps float64) bool {
	return NearOne(r.C*r.C+r.S*r.S, eps)
}

// Slerp interpolates the angle between r and other along the shorter arc.
func (r Rot) Slerp(other Rot, t float64) Rot {
	delta := r.AngleTo(other)
	return r.Mul(RotFromAngle(delta * Rad(t)))
}

// Nlerp blends the components linearly and normalizes the result. It is cheaper
// than Slerp, but does not advance with a constant angular velocity.
// For exactly opposite rotations at t=0.5 the identity is returned.
func (r Rot) Nlerp(other Rot, t float64) Rot {
	blended := Rot{
		C: r.C + (other.C-r.C)*t,
		S: r.S + (other.S-r.S)*t,
	}

	return blended.NormalizeSafe()
}

// Equal reports whether both rotations are exactly equal.
func (r Rot) Equal(other Rot) bool {
	return r == other
}

// ApproxEqual reports whether the shortest arc between both rotations
// is at most eps radians.
func (r Rot) ApproxEqual(other Rot, eps float64) bool {
	return NearZero(float64(r.AngleTo(other)), eps)
}

// Hash returns a deterministic, non cryptographic hash of the rounded components.
func (r Rot) Hash() uint64 {
	return hashFloats(r.C, r.S)
}

func (r Rot) String() string {
	return fmt.Sprintf("rot(c=%v, s=%v)", r.C, r.S)
}

// SetMul sets r to the composition a·b. It is safe for r to alias a or b.
func (r *Rot) SetMul(a, b *Rot) *Rot {
	*r = a.Mul(*b)
	return r
}

// MulAssign sets r to r·other.
func (r *Rot) MulAssign(other Rot) *Rot {
	*r = r.Mul(other)
	return r
}

// PreMulAssign sets r to other·r.
func (r *Rot) PreMulAssign(other Rot) *Rot {
	*r = other.Mul(*r)
	return r
}

// NormalizeAssign normalizes r in place. r is left untouched if it has zero magnitude.
func (r *Rot) NormalizeAssign() error {
	normalized, err := r.Normalize()
	if err != nil {
		return err
	}

	*r = normalized
	return nil
}

func (r *Rot) NormalizeIfNeededAssign(eps float64) *Rot {
	*r = r.NormalizeIfNeeded(eps)
	return r
}
