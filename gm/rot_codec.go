package gm

// PutRot writes c and s into dst at the given offset.
func PutRot[F Scalar](dst []F, offset int, r Rot) error {
	return putFloats(dst, offset, r.C, r.S)
}

// PutTransform writes the translation followed by c and s into dst.
func PutTransform[F Scalar](dst []F, offset int, t Transform) error {
	return putFloats(dst, offset, t.P.X, t.P.Y, t.R.C, t.R.S)
}

// ParseRot parses a rotation in the form "c,s". The values are
// not normalized.
func ParseRot(text string) (Rot, error) {
	values, err := parseFloats("rot", text, 2)
	if err != nil {
		return Rot{}, err
	}

	return Rot{C: values[0], S: values[1]}, nil
}

// ParseTransform parses a transform in the form "x,y,c,s".
func ParseTransform(text string) (Transform, error) {
	values, err := parseFloats("transform", text, 4)
	if err != nil {
		return Transform{}, err
	}

	return Transform{
		P: Vec{X: values[0], Y: values[1]},
		R: Rot{C: values[2], S: values[3]},
	}, nil
}

// UnmarshalJSON accepts either an object {"c": 1, "s": 0} or an array [1, 0].
func (r *Rot) UnmarshalJSON(data []byte) error {
	if isJSONArray(data) {
		values, err := decodeJSONArray("rot", data, 2)
		if err != nil {
			return err
		}

		*r = Rot{C: values[0], S: values[1]}
		return nil
	}

	var obj struct {
		C *float64 `json:"c"`
		S *float64 `json:"s"`
	}

	if err := decodeStrictJSON("rot", data, &obj); err != nil {
		return err
	}

	switch {
	case obj.C == nil:
		return missingField("rot", "c")
	case obj.S == nil:
		return missingField("rot", "s")
	}

	*r = Rot{C: *obj.C, S: *obj.S}
	return nil
}

// UnmarshalJSON decodes an object {"p": ..., "r": ...}. Both fields are required.
func (t *Transform) UnmarshalJSON(data []byte) error {
	var obj struct {
		P *Vec `json:"p"`
		R *Rot `json:"r"`
	}

	if err := decodeStrictJSON("transform", data, &obj); err != nil {
		return err
	}

	switch {
	case obj.P == nil:
		return missingField("transform", "p")
	case obj.R == nil:
		return missingField("transform", "r")
	}

	*t = Transform{P: *obj.P, R: *obj.R}
	return nil
}
