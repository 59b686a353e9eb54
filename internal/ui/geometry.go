package ui

import (
	"math"

	"fyne.io/fyne/v2"

	"github.com/ytget/radial-progress/internal/config"
)

// SliceStartAngle is 12 o'clock; the slice sweeps clockwise from there.
const SliceStartAngle = -math.Pi / 2

// Geometry places the disc and the slice inside a widget's bounds. The disc
// is the largest circle centred in the bounds; the slice is a ring stroke
// whose outer edge touches the disc edge.
type Geometry struct {
	Origin      fyne.Position // top-left of the disc's bounding square
	Diameter    float32
	StrokeWidth float32 // sliceSize * radius
	ArcRadius   float32 // radius of the stroke centre line
}

// ComputeGeometry lays out a disc in size with a slice of the given
// thickness (fraction of the radius).
func ComputeGeometry(size fyne.Size, sliceSize float64) Geometry {
	d := min(size.Width, size.Height)
	if d < 0 {
		d = 0
	}
	r := d / 2
	stroke := float32(config.ClampSliceSize(sliceSize)) * r
	return Geometry{
		Origin:      fyne.NewPos((size.Width-d)/2, (size.Height-d)/2),
		Diameter:    d,
		StrokeWidth: stroke,
		ArcRadius:   r - stroke/2,
	}
}

// Radius returns the disc radius
func (g Geometry) Radius() float32 {
	return g.Diameter / 2
}

// Center returns the disc centre in widget coordinates
func (g Geometry) Center() fyne.Position {
	return g.Origin.Add(fyne.NewPos(g.Radius(), g.Radius()))
}

// SquareSize returns the size of the disc's bounding square
func (g Geometry) SquareSize() fyne.Size {
	return fyne.NewSquareSize(g.Diameter)
}

// SweepAngle returns the end angle of the slice for a fill fraction
func SweepAngle(fill float64) float64 {
	return SliceStartAngle + 2*math.Pi*fill
}
