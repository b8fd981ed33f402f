// Package tween animates geometry values over time. The eased progress comes
// from a gween tween running from zero to one. The values themselves are
// interpolated in float64 with the interpolation that fits their type, so
// rotations turn along the shorter arc instead of through zero.
//
// There is no global animation manager, call Update each frame.
package tween

import (
	"github.com/oliverbestmann/planar/gm"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Tween animates a value of type T from one value to another.
type Tween[T any] struct {
	from, to    T
	interpolate func(from, to T, f float64) T
	progress    *gween.Tween
}

func newTween[T any](from, to T, duration float32, easing ease.TweenFunc, interpolate func(from, to T, f float64) T) *Tween[T] {
	return &Tween[T]{
		from:        from,
		to:          to,
		interpolate: interpolate,
		progress:    gween.New(0, 1, duration, easing),
	}
}

// NewTransform animates a rigid transform. The translation moves along a straight
// line while the rotation turns with a constant angular velocity.
func NewTransform(from, to gm.Transform, duration float32, easing ease.TweenFunc) *Tween[gm.Transform] {
	return newTween(from, to, duration, easing, gm.Transform.Slerp)
}

func NewRot(from, to gm.Rot, duration float32, easing ease.TweenFunc) *Tween[gm.Rot] {
	return newTween(from, to, duration, easing, gm.Rot.Slerp)
}

func NewVec(from, to gm.Vec, duration float32, easing ease.TweenFunc) *Tween[gm.Vec] {
	return newTween(from, to, duration, easing, gm.Vec.Lerp)
}

// NewAngle animates an angle along the shorter arc.
func NewAngle(from, to gm.Rad, duration float32, easing ease.TweenFunc) *Tween[gm.Rad] {
	return newTween(from, to, duration, easing, gm.LerpAngle)
}

// Update advances the tween by dt seconds and returns the current value.
// The final value is returned exactly once the tween is finished.
func (t *Tween[T]) Update(dt float32) (T, bool) {
	return t.value(t.progress.Update(dt))
}

// Set moves the tween to the given point in time.
func (t *Tween[T]) Set(time float32) (T, bool) {
	return t.value(t.progress.Set(time))
}

// Reset rewinds the tween to its start.
func (t *Tween[T]) Reset() {
	t.progress.Reset()
}

func (t *Tween[T]) value(progress float32, finished bool) (T, bool) {
	if finished {
		return t.to, true
	}

	return t.interpolate(t.from, t.to, float64(progress)), false
}
