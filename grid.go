package facetgrid

import (
	"fmt"
	"image/color"
	"math"

	"github.com/vdobler/facetgrid/data"
	"gonum.org/v1/plot/vg"
)

// State is the life cycle state of a Grid. States only advance, and
// Finalize requires Drawn.
type State int

const (
	Unbound State = iota
	Bound
	LaidOut
	Drawn
	Finalized
)

func (s State) String() string {
	switch s {
	case Unbound:
		return "unbound"
	case Bound:
		return "bound"
	case LaidOut:
		return "laid-out"
	case Drawn:
		return "drawn"
	case Finalized:
		return "finalized"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

type gridKind int

const (
	facetKind gridKind = iota
	pairKind
)

// semantics names the size and style variables of a grid.
type semantics struct {
	Size     string
	SizeCfg  SizeConfig
	Style    string
	StyleCfg StyleConfig
}

// rowAttrs holds the visual attributes of every observation of the
// source, resolved once when the grid is bound.
type rowAttrs struct {
	keep   []bool
	hue    []int         // index into the hue levels
	colors []color.Color // continuous hue only
	sizes  []vg.Length
	styles []StyleToken
}

// A Grid is an array of panels sharing semantic mappings and axes.
// A Grid is not safe for concurrent use.
type Grid struct {
	Hue   *HueMapping   // nil if no hue variable
	Size  *SizeMapping  // nil if no size variable
	Style *StyleMapping // nil if no style variable

	opts     Options
	src      data.Source
	renderer Renderer
	layout   *Layout
	kind     gridKind
	state    State
	attrs    rowAttrs
}

// NewFacetGrid resolves the faceting variables of opts on src and sets
// up the panels on r. All configuration, binding and mapping errors
// are reported before r is asked to create any panel.
func NewFacetGrid(src data.Source, opts Options, r Renderer) (*Grid, error) {
	return newGrid(src, opts, semantics{}, r)
}

func newGrid(src data.Source, opts Options, sem semantics, r Renderer) (*Grid, error) {
	if r == nil {
		return nil, &ConfigurationError{"renderer", "must not be nil"}
	}
	layout, err := Resolve(src, opts)
	if err != nil {
		return nil, err
	}
	g := &Grid{opts: opts, src: src, renderer: r, layout: layout}
	if err := g.bind(sem); err != nil {
		return nil, err
	}
	if err := g.layOut(); err != nil {
		return nil, err
	}
	return g, nil
}

// bind builds the semantic mappings and resolves the attributes of
// every observation.
func (g *Grid) bind(sem semantics) error {
	opts := g.opts
	if opts.Hue != "" {
		v, err := data.Bind(g.src, opts.Hue)
		if err != nil {
			return err
		}
		cfg := HueConfig{Order: opts.HueOrder, Palette: opts.Palette, Colors: opts.Colors}
		if v.Numeric() && cfg.Order == nil {
			g.Hue, err = NewContinuousHue(v, cfg)
		} else {
			levels := levelsOf(v, cfg.Order)
			if opts.MaxLevels > 0 && len(levels) > opts.MaxLevels {
				return &TooManyLevelsError{Dim: "hue", Var: v.Name, Levels: len(levels), Max: opts.MaxLevels}
			}
			g.Hue, err = NewDiscreteHue(v, levels, cfg)
		}
		if err != nil {
			return err
		}
	}
	if sem.Size != "" {
		v, err := data.Bind(g.src, sem.Size)
		if err != nil {
			return err
		}
		if g.Size, err = NewSizeMapping(v, sem.SizeCfg); err != nil {
			return err
		}
	}
	if sem.Style != "" {
		v, err := data.Bind(g.src, sem.Style)
		if err != nil {
			return err
		}
		if g.Style, err = NewStyleMapping(v, sem.StyleCfg); err != nil {
			return err
		}
	}

	n := g.src.Len()
	a := rowAttrs{keep: make([]bool, n), hue: make([]int, n)}
	if g.Hue != nil && g.Hue.Continuous() {
		a.colors = make([]color.Color, n)
	}
	if g.Size != nil {
		a.sizes = make([]vg.Length, n)
	}
	if g.Style != nil {
		a.styles = make([]StyleToken, n)
	}
	// unordered handles an observation whose level has no entry in
	// an explicit order: an error unless dropping was requested.
	unordered := func(i int, ch Channel, v *data.Variable) error {
		if g.opts.DropUnorderedLevels {
			a.keep[i] = false
			return nil
		}
		return &MappingError{Channel: ch, Var: v.Name, Level: v.Label(i), Reason: "level not in explicit order"}
	}
	for i := 0; i < n; i++ {
		a.keep[i] = true
		if m := g.Hue; m != nil {
			if m.Continuous() {
				a.colors[i] = m.Map(m.Var.Value(i))
			} else if a.hue[i] = m.Levels.Index(m.Var.Label(i)); a.hue[i] < 0 {
				if err := unordered(i, HueChannel, m.Var); err != nil {
					return err
				}
			}
		}
		if m := g.Size; m != nil {
			if m.Continuous() {
				if x := m.Var.Value(i); !math.IsNaN(x) {
					a.sizes[i] = m.Map(x)
				}
			} else if s, err := m.Size(m.Var.Label(i)); err == nil {
				a.sizes[i] = s
			} else if err := unordered(i, SizeChannel, m.Var); err != nil {
				return err
			}
		}
		if m := g.Style; m != nil {
			if t, err := m.Style(m.Var.Label(i)); err == nil {
				a.styles[i] = t
			} else if err := unordered(i, StyleChannel, m.Var); err != nil {
				return err
			}
		}
	}
	g.attrs = a
	g.state = Bound
	debug.Printf("bound %d observations: hue=%q size=%q style=%q", n, g.opts.Hue, sem.Size, sem.Style)
	return nil
}

// layOut creates the panels and hides the empty ones.
func (g *Grid) layOut() error {
	l := g.layout
	h := vg.Length(g.opts.height()) * vg.Inch
	fo := FigureOptions{
		Rows:   l.NRow,
		Cols:   l.NCol,
		Height: h,
		Width:  h * vg.Length(g.opts.aspect()),
		Title:  g.opts.Title,
	}
	if err := g.renderer.Subplots(fo); err != nil {
		return fmt.Errorf("facetgrid: creating %dx%d subplots: %w", l.NRow, l.NCol, err)
	}
	for _, row := range l.Cells {
		for _, c := range row {
			c.grid = g
			if c.Empty {
				c.Surface().Hide()
			}
		}
	}
	g.state = LaidOut
	debug.Printf("laid out %dx%d panels, %d empty", l.NRow, l.NCol, l.EmptyCells())
	return nil
}

// State returns the life cycle state of g.
func (g *Grid) State() State { return g.state }

// Layout returns the resolved panel layout of g.
func (g *Grid) Layout() *Layout { return g.layout }

// Cell returns the panel at (row, col).
func (g *Grid) Cell(row, col int) *Cell { return g.layout.Cells[row][col] }

// SetAxisLabels overrides the axis labels of all panels. Labels set
// by Map are only used if no label was set before.
func (g *Grid) SetAxisLabels(x, y string) {
	g.eachCell(func(c *Cell) {
		c.xlabel, c.ylabel = x, y
	})
}

// eachCell calls fn for all non-empty cells in row-major order.
func (g *Grid) eachCell(fn func(c *Cell)) {
	for _, row := range g.layout.Cells {
		for _, c := range row {
			if !c.Empty {
				fn(c)
			}
		}
	}
}

// Finalize computes the shared axis limits from everything drawn so
// far, sets titles and axis labels and draws the legend. It fails with
// ErrFinalized if called twice and with ErrNotDrawn if Map was never
// called.
func (g *Grid) Finalize() error {
	switch g.state {
	case Finalized:
		return ErrFinalized
	case Drawn:
	default:
		return ErrNotDrawn
	}
	g.shareAxes()
	g.labelPanels()
	if !g.opts.HideLegend {
		entries := AssembleLegend(g.Hue, g.Size, g.Style)
		if len(entries) > 0 {
			if err := g.renderer.Legend(entries, g.opts.Legend); err != nil {
				return fmt.Errorf("facetgrid: drawing legend: %w", err)
			}
		}
	}
	g.state = Finalized
	return nil
}

// shareAxes unions the data ranges of all panels in one sharing group,
// expands them and pushes the result to every panel of the group.
func (g *Grid) shareAxes() {
	xs := make(map[[2]int]*axisScale)
	ys := make(map[[2]int]*axisScale)
	get := func(m map[[2]int]*axisScale, k [2]int, lim []float64) *axisScale {
		if m[k] == nil {
			m[k] = newAxisScale()
			if len(lim) == 2 {
				m[k].FixMin(lim[0])
				m[k].FixMax(lim[1])
			}
		}
		return m[k]
	}
	ykey := func(c *Cell) [2]int {
		if c.ownY {
			return [2]int{c.Row, -2 - c.Col}
		}
		return g.opts.ShareY.key(c.Row, c.Col)
	}

	g.eachCell(func(c *Cell) {
		sx := get(xs, g.opts.ShareX.key(c.Row, c.Col), g.opts.XLim)
		sy := get(ys, ykey(c), g.opts.YLim)
		if !c.drawn {
			return
		}
		x, y := c.Surface().DataRange()
		sx.UpdateData(x)
		sy.UpdateData(y)
	})
	for _, s := range xs {
		s.autoscale()
	}
	for _, s := range ys {
		s.autoscale()
	}
	g.debugScales(xs, ys)

	g.eachCell(func(c *Cell) {
		c.Surface().SetLimits(xs[g.opts.ShareX.key(c.Row, c.Col)].Interval, ys[ykey(c)].Interval)
	})
}

func (g *Grid) debugScales(xs, ys map[[2]int]*axisScale) {
	debug.Printf("shared axes (x=%s, y=%s)", g.opts.ShareX, g.opts.ShareY)
	for k, s := range xs {
		debug.Printf("    x%v: %s", k, s)
	}
	for k, s := range ys {
		debug.Printf("    y%v: %s", k, s)
	}
}

// labelPanels titles the panels and puts axis labels on the outer
// panels: x labels on panels without a panel below, y labels on the
// first panel of each row.
func (g *Grid) labelPanels() {
	l := g.layout
	margin := g.opts.MarginTitles && l.Wrap == 0
	g.eachCell(func(c *Cell) {
		s := c.Surface()
		switch {
		case g.kind == pairKind:
		case margin:
			if c.Row == 0 && l.ColVar != "" {
				s.SetTitle(l.ColVar + " = " + c.ID.Col)
			}
			if c.Col == l.NCol-1 && l.RowVar != "" {
				s.SetRowTitle(l.RowVar + " = " + c.ID.Row)
			}
		default:
			s.SetTitle(l.title(c))
		}

		var x, y string
		if c.Row+1 >= l.NRow || l.Cells[c.Row+1][c.Col].Empty {
			x = c.xlabel
		}
		first := true
		for k := 0; k < c.Col; k++ {
			if !l.Cells[c.Row][k].Empty {
				first = false
			}
		}
		if first {
			y = c.ylabel
		}
		s.SetLabels(x, y)
	})
}
