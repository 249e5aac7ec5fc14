package gonumplot

import (
	"fmt"
	"image/color"
	"math"

	"github.com/vdobler/facetgrid"
	"github.com/vdobler/facetgrid/geom"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A Panel is one gonum plot inside a Figure.
type Panel struct {
	style *Style
	plot  *plot.Plot

	title, rowTitle string
	xr, yr          facetgrid.Interval
	hidden          bool
	layers          int
}

var _ facetgrid.Surface = (*Panel)(nil)

func newPanel(sty *Style) (*Panel, error) {
	plt, err := plot.New()
	if err != nil {
		return nil, err
	}
	plt.BackgroundColor = nil
	plt.X.Label.TextStyle = sty.Axis.Label
	plt.Y.Label.TextStyle = sty.Axis.Label
	plt.X.Tick.Label = sty.Axis.TickLabel
	plt.Y.Tick.Label = sty.Axis.TickLabel
	plt.X.LineStyle.Width = 0
	plt.Y.LineStyle.Width = 0

	grid := plotter.NewGrid()
	grid.Vertical = sty.Grid.Major
	grid.Horizontal = sty.Grid.Major
	plt.Add(grid)

	return &Panel{
		style: sty,
		plot:  plt,
		xr:    facetgrid.Interval{Min: math.NaN(), Max: math.NaN()},
		yr:    facetgrid.Interval{Min: math.NaN(), Max: math.NaN()},
	}, nil
}

// Plot returns the underlying gonum plot.
func (p *Panel) Plot() *plot.Plot { return p.plot }

// Hidden reports whether p was removed from the figure.
func (p *Panel) Hidden() bool { return p.hidden }

// Title returns the title drawn above p.
func (p *Panel) Title() string { return p.title }

// RowTitle returns the title drawn right of p.
func (p *Panel) RowTitle() string { return p.rowTitle }

// add adds pl to the plot if it covers any finite data.
func (p *Panel) add(pl plot.Plotter, xmin, xmax, ymin, ymax float64) {
	if math.IsNaN(xmin) || math.IsNaN(ymin) {
		return
	}
	p.xr.Update(xmin, xmax)
	p.yr.Update(ymin, ymax)
	p.plot.Add(pl)
	p.layers++
}

func xys(x, y []float64) (plotter.XYs, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("gonumplot: %d x values but %d y values", len(x), len(y))
	}
	pts := make(plotter.XYs, len(x))
	for i := range x {
		pts[i].X, pts[i].Y = x[i], y[i]
	}
	return pts, nil
}

func (p *Panel) color(a facetgrid.Attrs) color.Color {
	if a.Color != nil {
		return a.Color
	}
	return p.style.Geom.Color
}

// Scatter implements facetgrid.Surface.
func (p *Panel) Scatter(x, y []float64, a facetgrid.Attrs) error {
	pts, err := xys(x, y)
	if err != nil {
		return err
	}
	g := geom.Point{
		XY:     pts,
		Colors: a.Colors,
		Sizes:  a.Sizes,
		Default: draw.GlyphStyle{
			Color:  p.color(a),
			Radius: p.style.Geom.Radius,
			Shape:  draw.CircleGlyph{},
		},
	}
	if a.Size > 0 {
		g.Default.Radius = a.Size
	}
	if a.Style != nil {
		g.Default.Shape = a.Style.Shape
	}
	if a.Styles != nil {
		g.Shapes = make([]draw.GlyphDrawer, len(a.Styles))
		for i, t := range a.Styles {
			g.Shapes[i] = t.Shape
		}
	}
	xmin, xmax, ymin, ymax := g.DataRange()
	p.add(g, xmin, xmax, ymin, ymax)
	return nil
}

// lineWidth turns a marker radius into a line width.
func lineWidth(size vg.Length) vg.Length {
	return size / 2
}

// Line implements facetgrid.Surface. Points with different sizes or
// styles are drawn as separate lines.
func (p *Panel) Line(x, y []float64, a facetgrid.Attrs) error {
	pts, err := xys(x, y)
	if err != nil {
		return err
	}

	type key struct {
		size  vg.Length
		style string
	}
	var order []key
	groups := make(map[key][]int)
	for i := range pts {
		var k key
		if a.Sizes != nil {
			k.size = a.Sizes[i]
		}
		if a.Styles != nil {
			k.style = a.Styles[i].Name
		}
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}
		groups[k] = append(groups[k], i)
	}

	for _, k := range order {
		idx := groups[k]
		l := geom.Line{
			XY: make(plotter.XYs, len(idx)),
			Default: draw.LineStyle{
				Color: p.color(a),
				Width: p.style.Geom.LineWidth,
			},
		}
		if a.Size > 0 {
			l.Default.Width = lineWidth(a.Size)
		}
		if k.size > 0 {
			l.Default.Width = lineWidth(k.size)
		}
		if a.Style != nil {
			l.Default.Dashes = a.Style.Dashes
		}
		if a.Styles != nil {
			l.Default.Dashes = a.Styles[idx[0]].Dashes
		}
		if a.Colors != nil {
			l.Colors = make([]color.Color, len(idx))
		}
		for j, i := range idx {
			l.XY[j] = pts[i]
			if a.Colors != nil {
				l.Colors[j] = a.Colors[i]
			}
		}
		xmin, xmax, ymin, ymax := l.DataRange()
		p.add(l, xmin, xmax, ymin, ymax)
	}
	return nil
}

// Hist implements facetgrid.Surface. NaN values are ignored.
func (p *Panel) Hist(x []float64, a facetgrid.Attrs) error {
	var vals plotter.Values
	for _, v := range x {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			vals = append(vals, v)
		}
	}
	if len(vals) == 0 {
		return nil
	}
	h, err := plotter.NewHist(vals, a.Bins)
	if err != nil {
		return err
	}
	c := p.color(a)
	h.FillColor = geom.Alpha(c, p.style.Geom.HistAlpha)
	h.LineStyle.Color = c
	h.LineStyle.Width = vg.Length(0.5)
	xmin, xmax, ymin, ymax := h.DataRange()
	p.add(h, xmin, xmax, ymin, ymax)
	return nil
}

// SetTitle implements facetgrid.Surface.
func (p *Panel) SetTitle(title string) { p.title = title }

// SetRowTitle implements facetgrid.Surface.
func (p *Panel) SetRowTitle(title string) { p.rowTitle = title }

// SetLabels implements facetgrid.Surface.
func (p *Panel) SetLabels(x, y string) {
	p.plot.X.Label.Text = x
	p.plot.Y.Label.Text = y
}

// SetTimeAxis implements facetgrid.Surface.
func (p *Panel) SetTimeAxis(x, y bool) {
	if x {
		p.plot.X.Tick.Marker = plot.TimeTicks{Format: "2006-01-02"}
	}
	if y {
		p.plot.Y.Tick.Marker = plot.TimeTicks{Format: "2006-01-02"}
	}
}

func categoryTicks(levels facetgrid.LevelSet) plot.ConstantTicks {
	ticks := make(plot.ConstantTicks, len(levels))
	for i, l := range levels {
		ticks[i] = plot.Tick{Value: float64(i), Label: l}
	}
	return ticks
}

// SetCategoryAxis implements facetgrid.Surface.
func (p *Panel) SetCategoryAxis(x, y facetgrid.LevelSet) {
	if x != nil {
		p.plot.X.Tick.Marker = categoryTicks(x)
	}
	if y != nil {
		p.plot.Y.Tick.Marker = categoryTicks(y)
	}
}

// DataRange implements facetgrid.Surface.
func (p *Panel) DataRange() (x, y facetgrid.Interval) {
	return p.xr, p.yr
}

// SetLimits implements facetgrid.Surface.
func (p *Panel) SetLimits(x, y facetgrid.Interval) {
	if x.Valid() {
		p.plot.X.Min, p.plot.X.Max = x.Min, x.Max
	}
	if y.Valid() {
		p.plot.Y.Min, p.plot.Y.Max = y.Min, y.Max
	}
}

// Hide implements facetgrid.Surface.
func (p *Panel) Hide() { p.hidden = true }

// draw draws p onto the tile c and adds the strips.
func (p *Panel) draw(c draw.Canvas) {
	sty := p.style
	da := p.plot.DataCanvas(c)
	if sty.Panel.Background != nil {
		da.SetColor(sty.Panel.Background)
		da.Fill(da.Rectangle.Path())
	}
	p.plot.Draw(c)

	if p.title != "" {
		strip := c
		strip.Min.X, strip.Max.X = da.Min.X, da.Max.X
		strip.Min.Y = da.Max.Y
		strip.Max.Y = da.Max.Y + sty.HStrip.Height
		strip.SetColor(sty.HStrip.Background)
		strip.Fill(strip.Rectangle.Path())
		strip.FillText(sty.HStrip.TextStyle, strip.Center(), p.title)
	}
	if p.rowTitle != "" {
		strip := c
		strip.Min.Y, strip.Max.Y = da.Min.Y, da.Max.Y
		strip.Min.X = c.Max.X
		strip.Max.X = c.Max.X + sty.VStrip.Width
		strip.SetColor(sty.VStrip.Background)
		strip.Fill(strip.Rectangle.Path())
		strip.FillText(sty.VStrip.TextStyle, strip.Center(), p.rowTitle)
	}
}
