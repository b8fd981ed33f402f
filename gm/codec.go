package gm

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

func putFloats[F Scalar](dst []F, offset int, values ...float64) error {
	if offset < 0 || offset > len(dst)-len(values) {
		return fmt.Errorf("write %d values at offset %d into buffer of length %d: %w",
			len(values), offset, len(dst), ErrInvalidArgument)
	}

	for idx, value := range values {
		dst[offset+idx] = F(value)
	}

	return nil
}

func checkFloats(kind string, values []float64, count int) error {
	if len(values) != count {
		return fmt.Errorf("%s requires %d values, got %d: %w", kind, count, len(values), ErrInvalidArgument)
	}

	for idx, value := range values {
		if !isFinite(value) {
			return fmt.Errorf("%s value %d is not finite (%v): %w", kind, idx, value, ErrInvalidArgument)
		}
	}

	return nil
}

// parseFloats parses count comma separated numbers, optionally
// surrounded by parentheses.
func parseFloats(kind string, text string, count int) ([]float64, error) {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "(") && strings.HasSuffix(text, ")") {
		text = text[1 : len(text)-1]
	}

	fields := strings.Split(text, ",")
	if len(fields) != count {
		return nil, fmt.Errorf("parse %s from %q: expected %d fields, got %d: %w",
			kind, text, count, len(fields), ErrInvalidArgument)
	}

	values := make([]float64, count)
	for idx, field := range fields {
		value, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, fmt.Errorf("parse %s field %d: %w: %w", kind, idx, ErrInvalidArgument, err)
		}

		values[idx] = value
	}

	if err := checkFloats(kind, values, count); err != nil {
		return nil, err
	}

	return values, nil
}

func formatFloats(values ...float64) string {
	var sb strings.Builder
	for idx, value := range values {
		if idx > 0 {
			sb.WriteByte(',')
		}

		sb.WriteString(strconv.FormatFloat(value, 'g', -1, 64))
	}

	return sb.String()
}

// hashFloats hashes the values after rounding them to HashPrecision digits.
// Values that differ only by rounding noise hash to the same key.
func hashFloats(values ...float64) uint64 {
	var buf [8 * 8]byte

	n := min(len(values), 8)
	for idx := range n {
		rounded := roundTo(values[idx], HashPrecision)
		binary.LittleEndian.PutUint64(buf[idx*8:], math.Float64bits(rounded))
	}

	return xxhash.Sum64(buf[:n*8])
}

// decodeStrictJSON decodes an object into target and rejects unknown fields.
func decodeStrictJSON(kind string, data []byte, target any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	if err := dec.Decode(target); err != nil {
		return fmt.Errorf("decode %s: %w: %w", kind, ErrInvalidArgument, err)
	}

	return nil
}

func isJSONArray(data []byte) bool {
	data = bytes.TrimSpace(data)
	return len(data) > 0 && data[0] == '['
}

func decodeJSONArray(kind string, data []byte, count int) ([]float64, error) {
	var values []float64
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("decode %s: %w: %w", kind, ErrInvalidArgument, err)
	}

	if err := checkFloats(kind, values, count); err != nil {
		return nil, err
	}

	return values, nil
}

func missingField(kind, name string) error {
	return fmt.Errorf("decode %s: missing field %q: %w", kind, name, ErrInvalidArgument)
}
