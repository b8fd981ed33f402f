package gm

import "fmt"

func VecFromArray(values [2]float64) Vec {
	return Vec{X: values[0], Y: values[1]}
}

// VecFromSlice builds a vector from a slice holding exactly two finite values.
func VecFromSlice(values []float64) (Vec, error) {
	if err := checkFloats("vec", values, 2); err != nil {
		return Vec{}, err
	}

	return Vec{X: values[0], Y: values[1]}, nil
}

func (v Vec) Array() [2]float64 {
	return [2]float64{v.X, v.Y}
}

// PutVec writes the components of v into dst at the given offset.
func PutVec[F Scalar](dst []F, offset int, v Vec) error {
	return putFloats(dst, offset, v.X, v.Y)
}

// ParseVec parses a vector in the form "x,y". Whitespace around the components
// and surrounding parentheses are allowed.
func ParseVec(text string) (Vec, error) {
	values, err := parseFloats("vec", text, 2)
	if err != nil {
		return Vec{}, err
	}

	return Vec{X: values[0], Y: values[1]}, nil
}

func (v Vec) MarshalText() ([]byte, error) {
	return []byte(formatFloats(v.X, v.Y)), nil
}

func (v *Vec) UnmarshalText(text []byte) error {
	parsed, err := ParseVec(string(text))
	if err != nil {
		return err
	}

	*v = parsed
	return nil
}

// UnmarshalJSON accepts either an object {"x": 1, "y": 2} or an array [1, 2].
// Both components are required.
func (v *Vec) UnmarshalJSON(data []byte) error {
	if isJSONArray(data) {
		values, err := decodeJSONArray("vec", data, 2)
		if err != nil {
			return err
		}

		*v = VecFromArray([2]float64(values))
		return nil
	}

	var obj struct {
		X *float64 `json:"x"`
		Y *float64 `json:"y"`
	}

	if err := decodeStrictJSON("vec", data, &obj); err != nil {
		return err
	}

	switch {
	case obj.X == nil:
		return missingField("vec", "x")
	case obj.Y == nil:
		return missingField("vec", "y")
	}

	*v = Vec{X: *obj.X, Y: *obj.Y}
	return nil
}

// MarshalJSON encodes the vector as an object. It is implemented explicitly
// because Vec implements encoding.TextMarshaler, which would win otherwise.
func (v Vec) MarshalJSON() ([]byte, error) {
	return fmt.Appendf(nil, `{"x":%s,"y":%s}`, formatFloats(v.X), formatFloats(v.Y)), nil
}

// Hash returns a deterministic hash of the vector with the components rounded to
// HashPrecision decimal digits. It is meant for cache and bucket keys, it is
// not a cryptographic hash.
func (v Vec) Hash() uint64 {
	return hashFloats(v.X, v.Y)
}
