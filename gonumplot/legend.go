package gonumplot

import (
	"github.com/vdobler/facetgrid"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// thumb draws the symbol of one legend entry.
type thumb struct {
	entry facetgrid.LegendEntry
	style *Style
}

// Thumbnail implements plot.Thumbnailer.
func (t thumb) Thumbnail(c *draw.Canvas) {
	a := t.entry.Attrs
	gs := draw.GlyphStyle{
		Color:  t.style.Geom.Color,
		Radius: t.style.Geom.Radius,
		Shape:  draw.CircleGlyph{},
	}
	if a.Color != nil {
		gs.Color = a.Color
	}
	if a.Size > 0 {
		gs.Radius = a.Size
	}
	center := c.Center()

	if a.Style != nil {
		gs.Shape = a.Style.Shape
		if len(a.Style.Dashes) > 0 {
			ls := draw.LineStyle{Color: gs.Color, Width: t.style.Geom.LineWidth, Dashes: a.Style.Dashes}
			c.StrokeLine2(ls, c.Min.X, center.Y, c.Max.X, center.Y)
		}
	}
	c.DrawGlyph(gs, center)
}

func (f *Figure) newLegend() (plot.Legend, error) {
	l, err := plot.NewLegend()
	if err != nil {
		return l, err
	}
	l.TextStyle = f.Style.Legend.Label
	l.ThumbnailWidth = f.Style.Legend.ThumbnailWidth
	l.Top = true
	for _, e := range f.legend {
		if e.Title {
			l.Add(e.Label)
			continue
		}
		l.Add(e.Label, thumb{entry: e, style: &f.Style})
	}
	return l, nil
}

// legendWidth is the horizontal space taken by an outside legend.
func (f *Figure) legendWidth() vg.Length {
	sty := f.Style.Legend
	var w vg.Length
	for _, e := range f.legend {
		font := sty.Label.Font
		if e.Title {
			font = sty.Title.Font
		}
		if tw := font.Width(e.Label); tw > w {
			w = tw
		}
	}
	return w + sty.ThumbnailWidth + 3*sty.Pad
}

func (f *Figure) drawLegend(c draw.Canvas) error {
	l, err := f.newLegend()
	if err != nil {
		return err
	}
	if f.placement == facetgrid.LegendOutside {
		l.Left = true
		l.XOffs = f.Style.Legend.Pad
	} else {
		l.XOffs = -f.Style.Legend.Pad
	}
	l.YOffs = -f.Style.Legend.Pad
	l.Draw(c)
	return nil
}
