package ui

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"github.com/gogpu/gg"

	"github.com/ytget/radial-progress/internal/model"
)

// drawSlice rasterizes the slice arc into a w×h pixel image. The image is
// transparent outside the stroke, so it can sit on top of the disc.
func drawSlice(w, h int, fill float64, c color.Color, sliceSize float64) (image.Image, error) {
	if w <= 0 || h <= 0 {
		return image.NewNRGBA(image.Rect(0, 0, 1, 1)), nil
	}

	dc := gg.NewContext(w, h)
	defer dc.Close()

	fill = model.ClampFill(fill)
	if fill <= 0 || isTransparent(c) {
		return dc.Image(), nil
	}

	g := ComputeGeometry(fyne.NewSize(float32(w), float32(h)), sliceSize)
	center := g.Center()

	dc.SetColor(c)
	dc.SetLineWidth(float64(g.StrokeWidth))
	dc.SetLineCap(gg.LineCapButt)
	dc.DrawArc(float64(center.X), float64(center.Y), float64(g.ArcRadius), SliceStartAngle, SweepAngle(fill))
	if err := dc.Stroke(); err != nil {
		return dc.Image(), err
	}
	return dc.Image(), nil
}

func isTransparent(c color.Color) bool {
	if c == nil {
		return true
	}
	_, _, _, a := c.RGBA()
	return a == 0
}
