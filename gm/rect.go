package gm

import "fmt"

// Rect is an axis aligned rectangle with Min <= Max.
type Rect struct {
	Min, Max Vec
}

func RectWithPoints(a, b Vec) Rect {
	return Rect{
		Min: a.Min(b),
		Max: a.Max(b),
	}
}

// RectEnclosing returns the smallest rectangle containing all points.
func RectEnclosing(points ...Vec) (Rect, error) {
	if len(points) == 0 {
		return Rect{}, fmt.Errorf("enclose no points: %w", ErrInvalidArgument)
	}

	rect := Rect{Min: points[0], Max: points[0]}
	for _, point := range points[1:] {
		rect = rect.Extend(point)
	}

	return rect, nil
}

func RectWithSize(size Vec) Rect {
	return Rect{
		Max: size,
	}
}

func RectWithOriginAndSize(origin, size Vec) Rect {
	return Rect{
		Min: origin,
		Max: origin.Add(size),
	}
}

func RectWithCenterAndSize(center, size Vec) Rect {
	half := size.Mul(0.5)
	return Rect{
		Min: center.Sub(half),
		Max: center.Add(half),
	}
}

func (r Rect) Center() Vec {
	return r.Min.Add(r.Max).Mul(0.5)
}

func (r Rect) Size() Vec {
	return r.Max.Sub(r.Min)
}

func (r Rect) Translate(offset Vec) Rect {
	return Rect{
		Min: r.Min.Add(offset),
		Max: r.Max.Add(offset),
	}
}

func (r Rect) Contains(p Vec) bool {
	return r.Min.X <= p.X && p.X <= r.Max.X &&
		r.Min.Y <= p.Y && p.Y <= r.Max.Y
}

// Extend returns the smallest rectangle containing r and p.
func (r Rect) Extend(p Vec) Rect {
	return Rect{
		Min: r.Min.Min(p),
		Max: r.Max.Max(p),
	}
}

// Union returns the smallest rectangle containing both rectangles.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		Min: r.Min.Min(other.Min),
		Max: r.Max.Max(other.Max),
	}
}

// Intersects reports whether both rectangles overlap. Touching edges count as overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.Min.X <= other.Max.X && other.Min.X <= r.Max.X &&
		r.Min.Y <= other.Max.Y && other.Min.Y <= r.Max.Y
}

func (r Rect) String() string {
	return fmt.Sprintf("rect(min=%s, max=%s)", r.Min, r.Max)
}
