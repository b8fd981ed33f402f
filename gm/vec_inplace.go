package gm

// In place variants of the Vec operations. They modify the receiver and return it,
// so calls can be chained without allocating, e.g. v.AddAssign(a).MulAssign(2).

func (v *Vec) Set(other Vec) *Vec {
	*v = other
	return v
}

func (v *Vec) SetXY(x, y float64) *Vec {
	v.X = x
	v.Y = y
	return v
}

func (v *Vec) AddAssign(other Vec) *Vec {
	v.X += other.X
	v.Y += other.Y
	return v
}

func (v *Vec) SubAssign(other Vec) *Vec {
	v.X -= other.X
	v.Y -= other.Y
	return v
}

func (v *Vec) MulAssign(scalar float64) *Vec {
	v.X *= scalar
	v.Y *= scalar
	return v
}

func (v *Vec) MulEachAssign(other Vec) *Vec {
	v.X *= other.X
	v.Y *= other.Y
	return v
}

// DivAssign divides v by scalar. v is left untouched if scalar is zero.
func (v *Vec) DivAssign(scalar float64) error {
	result, err := v.Div(scalar)
	if err != nil {
		return err
	}

	*v = result
	return nil
}

func (v *Vec) NegAssign() *Vec {
	v.X = -v.X
	v.Y = -v.Y
	return v
}

// NormalizeAssign normalizes v. v is left untouched if it has zero length.
func (v *Vec) NormalizeAssign() error {
	result, err := v.Normalized()
	if err != nil {
		return err
	}

	*v = result
	return nil
}

// NormalizeSafeAssign normalizes v, or sets it to zero if it has zero length.
func (v *Vec) NormalizeSafeAssign() *Vec {
	*v = v.NormalizedSafe()
	return v
}

func (v *Vec) RotateAssign(angle Rad) *Vec {
	*v = v.Rotate(angle)
	return v
}

func (v *Vec) RotateCSAssign(cos, sin float64) *Vec {
	*v = v.RotateCS(cos, sin)
	return v
}

func (v *Vec) LerpAssign(other Vec, t float64) *Vec {
	*v = v.Lerp(other, t)
	return v
}

// ClampLengthAssign clamps the length of v to [minLength, maxLength].
// v is left untouched if the range is invalid.
func (v *Vec) ClampLengthAssign(minLength, maxLength float64) error {
	result, err := v.ClampLength(minLength, maxLength)
	if err != nil {
		return err
	}

	*v = result
	return nil
}
