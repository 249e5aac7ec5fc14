// Package geom provides gonum plotters drawing data with per point
// aesthetics.
//
// The plotters of gonum.org/v1/plot/plotter style all their points
// the same way. The geoms here take optional slices with one color,
// size and shape (or dash pattern) per data point and fall back to a
// default style for nil slices. They are used to draw the hue, size
// and style mappings of a facet grid.
//
// The names are singular even if a geom draws many points to match
// the naming in ggplot2.
package geom

import (
	"image/color"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ----------------------------------------------------------------------------
// Point

// Point draws points / symbols.
type Point struct {
	XY plotter.XYs

	Colors []color.Color
	Sizes  []vg.Length // glyph radii; a zero size selects the default
	Shapes []draw.GlyphDrawer

	Default draw.GlyphStyle
}

func (p Point) style(i int) draw.GlyphStyle {
	sty := p.Default
	if sty.Shape == nil {
		sty.Shape = draw.CircleGlyph{}
	}
	if c := colorAt(p.Colors, i); c != nil {
		sty.Color = c
	}
	if s := sizeAt(p.Sizes, i); s > 0 {
		sty.Radius = s
	}
	if i < len(p.Shapes) && p.Shapes[i] != nil {
		sty.Shape = p.Shapes[i]
	}
	return sty
}

// Plot implements plot.Plotter.
func (p Point) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	for i, xy := range p.XY {
		if !finite(xy.X, xy.Y) {
			continue
		}
		center := vg.Point{X: trX(xy.X), Y: trY(xy.Y)}
		if !c.Contains(center) {
			continue
		}
		c.DrawGlyph(p.style(i), center)
	}
}

// DataRange implements plot.DataRanger.
func (p Point) DataRange() (xmin, xmax, ymin, ymax float64) {
	return xyRange(p.XY)
}

// GlyphBoxes implements plot.GlyphBoxer.
func (p Point) GlyphBoxes(plt *plot.Plot) []plot.GlyphBox {
	var bs []plot.GlyphBox
	for i, xy := range p.XY {
		if !finite(xy.X, xy.Y) {
			continue
		}
		bs = append(bs, plot.GlyphBox{
			X:         plt.X.Norm(xy.X),
			Y:         plt.Y.Norm(xy.Y),
			Rectangle: p.style(i).Rectangle(),
		})
	}
	return bs
}

// ----------------------------------------------------------------------------
// Path

// Path connects the given points in data order through straight line
// segments. The aesthetics style the individual segments based on
// their first point.
//
// (To draw them in order of x values see Line.)
type Path struct {
	XY plotter.XYs

	Colors []color.Color
	Widths []vg.Length
	Dashes [][]vg.Length

	Default draw.LineStyle
}

func (p Path) style(i int) draw.LineStyle {
	sty := p.Default
	if c := colorAt(p.Colors, i); c != nil {
		sty.Color = c
	}
	if w := sizeAt(p.Widths, i); w > 0 {
		sty.Width = w
	}
	if i < len(p.Dashes) {
		sty.Dashes = p.Dashes[i]
	}
	return sty
}

// Plot implements plot.Plotter.
func (p Path) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	for i := 0; i < len(p.XY)-1; i++ {
		a, b := p.XY[i], p.XY[i+1]
		if !finite(a.X, a.Y) || !finite(b.X, b.Y) {
			continue
		}
		left := vg.Point{X: trX(a.X), Y: trY(a.Y)}
		right := vg.Point{X: trX(b.X), Y: trY(b.Y)}
		c.StrokeLines(p.style(i), c.ClipLinesXY([]vg.Point{left, right})...)
	}
}

// DataRange implements plot.DataRanger.
func (p Path) DataRange() (xmin, xmax, ymin, ymax float64) {
	return xyRange(p.XY)
}

// ----------------------------------------------------------------------------
// Line

// Line connects the given points in order of the x values by straight
// line segments. The aesthetics style the individual segments based on
// their first point.
//
// (To draw them in data order see Path.)
type Line Path

// toPath sorts the points and their aesthetics by x.
func (l Line) toPath() Path {
	perm := make([]int, len(l.XY))
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(i, j int) bool { return l.XY[perm[i]].X < l.XY[perm[j]].X })

	path := Path{Default: l.Default, XY: make(plotter.XYs, len(perm))}
	if l.Colors != nil {
		path.Colors = make([]color.Color, len(perm))
	}
	if l.Widths != nil {
		path.Widths = make([]vg.Length, len(perm))
	}
	if l.Dashes != nil {
		path.Dashes = make([][]vg.Length, len(perm))
	}
	for j, i := range perm {
		path.XY[j] = l.XY[i]
		if l.Colors != nil {
			path.Colors[j] = colorAt(l.Colors, i)
		}
		if l.Widths != nil {
			path.Widths[j] = sizeAt(l.Widths, i)
		}
		if l.Dashes != nil && i < len(l.Dashes) {
			path.Dashes[j] = l.Dashes[i]
		}
	}
	return path
}

// Plot implements plot.Plotter.
func (l Line) Plot(c draw.Canvas, plt *plot.Plot) {
	l.toPath().Plot(c, plt)
}

// DataRange implements plot.DataRanger.
func (l Line) DataRange() (xmin, xmax, ymin, ymax float64) {
	return xyRange(l.XY) // no need to sort
}
