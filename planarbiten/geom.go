// Package planarbiten converts planar geometry into ebiten draw parameters.
//
// ebiten stores its matrices in float32, converting a value there and back
// loses precision.
package planarbiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/oliverbestmann/planar/gm"
)

// GeoM converts an affine transformation into an ebiten.GeoM.
func GeoM(affine gm.Affine) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, affine.Matrix.M00)
	g.SetElement(0, 1, affine.Matrix.M01)
	g.SetElement(0, 2, affine.Translation.X)
	g.SetElement(1, 0, affine.Matrix.M10)
	g.SetElement(1, 1, affine.Matrix.M11)
	g.SetElement(1, 2, affine.Translation.Y)
	return g
}

// GeoMOfTransform converts a rigid transform into an ebiten.GeoM.
func GeoMOfTransform(tr gm.Transform) ebiten.GeoM {
	return GeoM(tr.Affine())
}

func AffineOf(g ebiten.GeoM) gm.Affine {
	return gm.Affine{
		Matrix: gm.Mat{
			M00: g.Element(0, 0),
			M01: g.Element(0, 1),
			M10: g.Element(1, 0),
			M11: g.Element(1, 1),
		},
		Translation: gm.Vec{
			X: g.Element(0, 2),
			Y: g.Element(1, 2),
		},
	}
}

// DrawOptions builds the options to draw an image scaled by scale and then
// placed by the given transform.
func DrawOptions(tr gm.Transform, scale gm.Vec) *ebiten.DrawImageOptions {
	var op ebiten.DrawImageOptions
	op.GeoM = GeoM(tr.Affine().Scale(scale))
	return &op
}

// Apply transforms a point with the given GeoM.
func Apply(g ebiten.GeoM, point gm.Vec) gm.Vec {
	x, y := g.Apply(point.X, point.Y)
	return gm.Vec{X: x, Y: y}
}
