package geom

import (
	"image/color"
	"math"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// colorAt returns colors[i] or nil if colors is too short.
func colorAt(colors []color.Color, i int) color.Color {
	if i < len(colors) {
		return colors[i]
	}
	return nil
}

// sizeAt returns sizes[i] or 0 if sizes is too short.
func sizeAt(sizes []vg.Length, i int) vg.Length {
	if i < len(sizes) {
		return sizes[i]
	}
	return 0
}

func finite(x ...float64) bool {
	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// xyRange is plotter.XYRange ignoring NaN and infinite coordinates.
// All four values are NaN if no point is finite.
func xyRange(xys plotter.XYs) (xmin, xmax, ymin, ymax float64) {
	xmin, xmax = math.NaN(), math.NaN()
	ymin, ymax = math.NaN(), math.NaN()
	for _, xy := range xys {
		if !finite(xy.X, xy.Y) {
			continue
		}
		if !(xmin <= xy.X) {
			xmin = xy.X
		}
		if !(xmax >= xy.X) {
			xmax = xy.X
		}
		if !(ymin <= xy.Y) {
			ymin = xy.Y
		}
		if !(ymax >= xy.Y) {
			ymax = xy.Y
		}
	}
	return xmin, xmax, ymin, ymax
}

// Alpha returns c with its alpha channel scaled by alpha.
func Alpha(c color.Color, alpha float64) color.Color {
	if c == nil {
		return nil
	}
	r, g, b, a := c.RGBA()
	f := math.Max(0, math.Min(1, alpha))
	return color.NRGBA64{
		R: uint16(unpremul(r, a)),
		G: uint16(unpremul(g, a)),
		B: uint16(unpremul(b, a)),
		A: uint16(float64(a) * f),
	}
}

func unpremul(v, a uint32) uint32 {
	if a == 0 {
		return 0
	}
	return v * 0xffff / a
}
