package gm

import (
	"fmt"
	"math"
)

// Vec is a point or a direction in the plane.
type Vec struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func VecOf(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// VecSplat returns a vector with both components set to value.
func VecSplat(value float64) Vec {
	return Vec{X: value, Y: value}
}

// VecFromAngle returns a vector of the given length pointing in the direction
// of angle, measured counter-clockwise from the positive x axis.
func VecFromAngle(angle Rad, length float64) Vec {
	sin, cos := angle.Sincos()
	return Vec{X: cos * length, Y: sin * length}
}

func VecZero() Vec  { return Vec{} }
func VecOne() Vec   { return Vec{X: 1, Y: 1} }
func VecUnitX() Vec { return Vec{X: 1} }
func VecUnitY() Vec { return Vec{Y: 1} }

func (v Vec) XY() (float64, float64) {
	return v.X, v.Y
}

func (v Vec) Add(other Vec) Vec {
	v.X += other.X
	v.Y += other.Y
	return v
}

func (v Vec) Sub(other Vec) Vec {
	v.X -= other.X
	v.Y -= other.Y
	return v
}

func (v Vec) Mul(scalar float64) Vec {
	v.X *= scalar
	v.Y *= scalar
	return v
}

func (v Vec) MulEach(other Vec) Vec {
	v.X *= other.X
	v.Y *= other.Y
	return v
}

// Div divides both components by scalar. Dividing by zero is an error.
func (v Vec) Div(scalar float64) (Vec, error) {
	if scalar == 0 {
		return Vec{}, fmt.Errorf("divide %s by zero: %w", v, ErrDomain)
	}

	return Vec{X: v.X / scalar, Y: v.Y / scalar}, nil
}

// DivSafe divides both components by scalar and returns the zero vector
// if scalar is zero.
func (v Vec) DivSafe(scalar float64) Vec {
	if scalar == 0 {
		return Vec{}
	}

	return Vec{X: v.X / scalar, Y: v.Y / scalar}
}

// DivEach divides the components of v by the components of other. A zero
// component in other is an error.
func (v Vec) DivEach(other Vec) (Vec, error) {
	if other.X == 0 || other.Y == 0 {
		return Vec{}, fmt.Errorf("divide %s by %s: %w", v, other, ErrDomain)
	}

	return Vec{X: v.X / other.X, Y: v.Y / other.Y}, nil
}

// DivEachSafe divides the components of v by the components of other.
// Components divided by zero are set to zero.
func (v Vec) DivEachSafe(other Vec) Vec {
	var result Vec

	if other.X != 0 {
		result.X = v.X / other.X
	}

	if other.Y != 0 {
		result.Y = v.Y / other.Y
	}

	return result
}

func (v Vec) Neg() Vec {
	return Vec{X: -v.X, Y: -v.Y}
}

func (v Vec) Abs() Vec {
	return Vec{X: math.Abs(v.X), Y: math.Abs(v.Y)}
}

// Min returns the component wise minimum of both vectors.
func (v Vec) Min(other Vec) Vec {
	return Vec{X: min(v.X, other.X), Y: min(v.Y, other.Y)}
}

// Max returns the component wise maximum of both vectors.
func (v Vec) Max(other Vec) Vec {
	return Vec{X: max(v.X, other.X), Y: max(v.Y, other.Y)}
}

func (v Vec) Dot(other Vec) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Cross returns the z component of the 3d cross product of v and other.
// It is positive if other is counter-clockwise of v.
func (v Vec) Cross(other Vec) float64 {
	return v.X*other.Y - v.Y*other.X
}

// Perp returns the vector rotated by 90° counter-clockwise.
func (v Vec) Perp() Vec {
	return Vec{X: -v.Y, Y: v.X}
}

// PerpCW returns the vector rotated by 90° clockwise.
func (v Vec) PerpCW() Vec {
	return Vec{X: v.Y, Y: -v.X}
}

// Length returns the euclidean length of the vector. It does not overflow
// or underflow for large or tiny components.
func (v Vec) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

func (v Vec) LengthSqr() float64 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vec) Distance(other Vec) float64 {
	return v.Sub(other).Length()
}

func (v Vec) DistanceSqr(other Vec) float64 {
	return v.Sub(other).LengthSqr()
}

// Normalized returns a vector of length one pointing in the same direction.
// The zero vector can not be normalized.
func (v Vec) Normalized() (Vec, error) {
	length := v.Length()
	if length == 0 {
		return Vec{}, fmt.Errorf("normalize zero length vector: %w", ErrDomain)
	}

	v.X /= length
	v.Y /= length
	return v, nil
}

// NormalizedSafe is like Normalized, but returns the zero vector
// if v has zero length.
func (v Vec) NormalizedSafe() Vec {
	length := v.Length()
	if length == 0 {
		return Vec{}
	}

	v.X /= length
	v.Y /= length
	return v
}

// Angle returns the angle of the vector measured from the positive x axis,
// in the range [-π, π]
func (v Vec) Angle() Rad {
	return Rad(math.Atan2(v.Y, v.X))
}

// AngleTo returns the signed angle to rotate v onto the direction of other.
// The result is positive for counter-clockwise rotations.
func (v Vec) AngleTo(other Vec) Rad {
	return Rad(math.Atan2(v.Cross(other), v.Dot(other)))
}

// Rotate rotates the vector counter-clockwise by the given angle.
func (v Vec) Rotate(angle Rad) Vec {
	sin, cos := angle.Sincos()
	return v.RotateCS(cos, sin)
}

// RotateCS rotates the vector using a precomputed cosine and sine.
func (v Vec) RotateCS(cos, sin float64) Vec {
	return Vec{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Project returns the projection of v onto the given axis.
// The axis does not need to be normalized, but must not be zero.
func (v Vec) Project(axis Vec) (Vec, error) {
	lengthSqr := axis.LengthSqr()
	if lengthSqr == 0 {
		return Vec{}, fmt.Errorf("project onto zero axis: %w", ErrDomain)
	}

	return axis.Mul(v.Dot(axis) / lengthSqr), nil
}

// ProjectSafe is like Project, but returns the zero vector for a zero axis.
func (v Vec) ProjectSafe(axis Vec) Vec {
	lengthSqr := axis.LengthSqr()
	if lengthSqr == 0 {
		return Vec{}
	}

	return axis.Mul(v.Dot(axis) / lengthSqr)
}

// Reflect mirrors v on a surface with the given normal. The normal does
// not need to be normalized, but must not be zero.
func (v Vec) Reflect(normal Vec) (Vec, error) {
	lengthSqr := normal.LengthSqr()
	if lengthSqr == 0 {
		return Vec{}, fmt.Errorf("reflect on zero normal: %w", ErrDomain)
	}

	return v.Sub(normal.Mul(2 * v.Dot(normal) / lengthSqr)), nil
}

// ReflectSafe is like Reflect, but returns the zero vector for a zero normal.
func (v Vec) ReflectSafe(normal Vec) Vec {
	lengthSqr := normal.LengthSqr()
	if lengthSqr == 0 {
		return Vec{}
	}

	return v.Sub(normal.Mul(2 * v.Dot(normal) / lengthSqr))
}

// ClampLength scales the vector so its length lies within [minLength, maxLength].
// The zero vector has no direction and is returned unchanged.
func (v Vec) ClampLength(minLength, maxLength float64) (Vec, error) {
	if minLength < 0 || minLength > maxLength {
		return Vec{}, fmt.Errorf("clamp length to [%v, %v]: %w", minLength, maxLength, ErrInvalidArgument)
	}

	length := v.Length()

	switch {
	case length == 0:
		return v, nil
	case length > maxLength:
		return v.Mul(maxLength / length), nil
	case length < minLength:
		return v.Mul(minLength / length), nil
	default:
		return v, nil
	}
}

// Lerp does a linear interpolation between v and other. The factor t
// is not clamped, values outside of [0, 1] extrapolate.
func (v Vec) Lerp(other Vec, t float64) Vec {
	return Vec{
		X: v.X + (other.X-v.X)*t,
		Y: v.Y + (other.Y-v.Y)*t,
	}
}

// LerpClamped is like Lerp with t clamped to [0, 1].
func (v Vec) LerpClamped(other Vec, t float64) Vec {
	return v.Lerp(other, Clamp01(t))
}

// Slerp rotates the direction of v towards the direction of other by the fraction t
// of the angle between them, while the length is interpolated linearly.
//
// If one of the vectors is zero, or the angle between them is less than
// SlerpEpsilon, Slerp falls back to a linear interpolation.
func (v Vec) Slerp(other Vec, t float64) Vec {
	lenA := v.Length()
	lenB := other.Length()
	if lenA == 0 || lenB == 0 {
		return v.Lerp(other, t)
	}

	angle := v.AngleTo(other)
	if math.Abs(float64(angle)) < SlerpEpsilon {
		return v.Lerp(other, t)
	}

	direction := v.Mul(1 / lenA).Rotate(angle * Rad(t))
	return direction.Mul(Lerp(lenA, lenB, t))
}

// Equal reports whether both vectors are exactly equal.
func (v Vec) Equal(other Vec) bool {
	return v == other
}

// ApproxEqual reports whether each component differs by at most eps.
// A negative eps panics.
func (v Vec) ApproxEqual(other Vec, eps float64) bool {
	return NearEqual(v.X, other.X, eps) && NearEqual(v.Y, other.Y, eps)
}

func (v Vec) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

func (v Vec) IsFinite() bool {
	return isFinite(v.X) && isFinite(v.Y)
}

func (v Vec) String() string {
	return fmt.Sprintf("vec(x=%v, y=%v)", v.X, v.Y)
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
