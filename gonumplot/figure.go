// Package gonumplot renders facet grids with gonum.org/v1/plot.
//
// A Figure implements facetgrid.Renderer. Every panel is a gonum
// plot.Plot; the panels are aligned with plot.Align and decorated with
// ggplot2 like strips for the facet titles.
package gonumplot

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/vdobler/facetgrid"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"
)

// Figure is an array of panels drawn with gonum plot.
type Figure struct {
	Style Style

	opts      facetgrid.FigureOptions
	panels    [][]*Panel
	legend    []facetgrid.LegendEntry
	placement facetgrid.LegendPlacement
}

var _ facetgrid.Renderer = (*Figure)(nil)

// New returns an empty figure using DefaultStyle(12).
func New() *Figure {
	return &Figure{Style: DefaultStyle(12)}
}

// Subplots implements facetgrid.Renderer.
func (f *Figure) Subplots(opts facetgrid.FigureOptions) error {
	if opts.Rows < 1 || opts.Cols < 1 {
		return fmt.Errorf("gonumplot: cannot create %dx%d subplots", opts.Rows, opts.Cols)
	}
	f.opts = opts
	f.panels = make([][]*Panel, opts.Rows)
	for r := range f.panels {
		f.panels[r] = make([]*Panel, opts.Cols)
		for c := range f.panels[r] {
			p, err := newPanel(&f.Style)
			if err != nil {
				return err
			}
			f.panels[r][c] = p
		}
	}
	return nil
}

// Surface implements facetgrid.Renderer.
func (f *Figure) Surface(row, col int) facetgrid.Surface {
	return f.panels[row][col]
}

// Panel returns the panel in row and col.
func (f *Figure) Panel(row, col int) *Panel {
	return f.panels[row][col]
}

// Legend implements facetgrid.Renderer. The legend is drawn by Draw.
func (f *Figure) Legend(entries []facetgrid.LegendEntry, placement facetgrid.LegendPlacement) error {
	f.legend = entries
	f.placement = placement
	return nil
}

// Size returns the natural size of the figure.
func (f *Figure) Size() (width, height vg.Length) {
	width = vg.Length(f.opts.Cols) * f.opts.Width
	height = vg.Length(f.opts.Rows) * f.opts.Height
	if f.opts.Title != "" {
		height += f.Style.TitleHeight
	}
	if len(f.legend) > 0 && f.placement == facetgrid.LegendOutside {
		width += f.legendWidth()
	}
	return width, height
}

// Draw draws the figure onto c.
func (f *Figure) Draw(c draw.Canvas) error {
	if f.panels == nil {
		return fmt.Errorf("gonumplot: no subplots")
	}
	sty := f.Style

	if sty.Background != nil {
		c.SetColor(sty.Background)
		c.Fill(c.Rectangle.Path())
	}
	if f.opts.Title != "" {
		c.FillText(sty.Title, vg.Point{X: c.Center().X, Y: c.Max.Y}, f.opts.Title)
		c.Max.Y -= sty.TitleHeight
	}

	var legend draw.Canvas
	if len(f.legend) > 0 {
		legend = c
		if f.placement == facetgrid.LegendOutside {
			w := f.legendWidth()
			legend.Min.X = c.Max.X - w
			c.Max.X -= w
		}
	}

	titles, rowTitles := false, false
	plots := make([][]*plot.Plot, len(f.panels))
	for r, row := range f.panels {
		plots[r] = make([]*plot.Plot, len(row))
		for col, p := range row {
			if p.hidden {
				continue
			}
			plots[r][col] = p.plot
			titles = titles || p.title != ""
			rowTitles = rowTitles || p.rowTitle != ""
		}
	}

	tiles := draw.Tiles{
		Rows: f.opts.Rows,
		Cols: f.opts.Cols,
		PadX: sty.Panel.PadX,
		PadY: sty.Panel.PadY,
	}
	if titles {
		tiles.PadTop = sty.HStrip.Height
		tiles.PadY += sty.HStrip.Height
	}
	if rowTitles {
		tiles.PadRight = sty.VStrip.Width
		tiles.PadX += sty.VStrip.Width
	}

	canvases := plot.Align(plots, tiles, c)
	for r, row := range f.panels {
		for col, p := range row {
			if p.hidden {
				continue
			}
			p.draw(canvases[r][col])
		}
	}

	if len(f.legend) > 0 {
		if err := f.drawLegend(legend); err != nil {
			return err
		}
	}
	return nil
}

func newCanvas(format string, width, height vg.Length) (vg.CanvasWriterTo, error) {
	switch strings.ToLower(format) {
	case "png":
		return vgimg.PngCanvas{Canvas: vgimg.New(width, height)}, nil
	case "svg":
		return vgsvg.New(width, height), nil
	case "pdf":
		return vgpdf.New(width, height), nil
	}
	return nil, fmt.Errorf("gonumplot: unsupported format %q", format)
}

// WriteTo draws f in the given format (png, svg or pdf) and writes it
// to w.
func (f *Figure) WriteTo(w io.Writer, format string) (int64, error) {
	width, height := f.Size()
	cw, err := newCanvas(format, width, height)
	if err != nil {
		return 0, err
	}
	if err := f.Draw(draw.New(cw)); err != nil {
		return 0, err
	}
	return cw.WriteTo(w)
}

// Save writes f to the named file. The format is taken from the file
// extension.
func (f *Figure) Save(path string) (err error) {
	format := strings.TrimPrefix(filepath.Ext(path), ".")
	if _, err := newCanvas(format, 1, 1); err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()
	_, err = f.WriteTo(file, format)
	return err
}
