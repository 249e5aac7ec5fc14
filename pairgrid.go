package facetgrid

import (
	"fmt"
	"image/color"

	"github.com/vdobler/facetgrid/data"
)

// PairOptions configures a pair grid.
type PairOptions struct {
	// Vars are the variables plotted against each other. Nil
	// selects all continuous columns except Hue.
	Vars []string `yaml:"vars" toml:"vars"`

	Hue      string        `yaml:"hue" toml:"hue"`
	HueOrder []string      `yaml:"hue_order" toml:"hue_order"`
	Palette  string        `yaml:"palette" toml:"palette"`
	Colors   []color.Color `yaml:"-" toml:"-"`

	// DropUnorderedLevels skips observations whose hue level is
	// missing from HueOrder instead of failing.
	DropUnorderedLevels bool `yaml:"drop_unordered_levels" toml:"drop_unordered_levels"`

	// Corner hides the panels above the diagonal.
	Corner bool `yaml:"corner" toml:"corner"`

	Height     float64         `yaml:"height" toml:"height"`
	Aspect     float64         `yaml:"aspect" toml:"aspect"`
	MaxLevels  int             `yaml:"max_levels" toml:"max_levels"`
	Legend     LegendPlacement `yaml:"legend" toml:"legend"`
	HideLegend bool            `yaml:"hide_legend" toml:"hide_legend"`
	Title      string          `yaml:"title" toml:"title"`
}

func (po PairOptions) options() Options {
	return Options{
		Hue:        po.Hue,
		HueOrder:   po.HueOrder,
		Palette:    po.Palette,
		Colors:     po.Colors,
		Height:     po.Height,
		Aspect:     po.Aspect,
		ShareX:     ShareCol,
		ShareY:     ShareRow,
		MaxLevels:  po.MaxLevels,
		Legend:     po.Legend,
		HideLegend: po.HideLegend,
		Title:      po.Title,

		DropUnorderedLevels: po.DropUnorderedLevels,
	}
}

// A PairGrid plots every pair of a list of variables against each
// other. Panel (i, j) shows Vars[j] on the x axis and Vars[i] on the
// y axis. Panels in a column share the x axis, panels in a row the y
// axis except for the diagonal.
type PairGrid struct {
	*Grid
	Vars []string
}

// NewPairGrid sets up the len(Vars) x len(Vars) panels on r.
func NewPairGrid(src data.Source, po PairOptions, r Renderer) (*PairGrid, error) {
	opts := po.options()
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if r == nil {
		return nil, &ConfigurationError{"renderer", "must not be nil"}
	}
	vars := po.Vars
	if vars == nil {
		for _, name := range src.Columns() {
			if k, _ := src.Kind(name); k == data.Continuous && name != po.Hue {
				vars = append(vars, name)
			}
		}
	}
	if len(vars) == 0 {
		return nil, &ConfigurationError{"vars", "no variables to pair"}
	}
	if err := checkOrder("vars", vars); err != nil {
		return nil, err
	}
	for _, name := range vars {
		if _, err := data.Bind(src, name); err != nil {
			return nil, err
		}
	}

	all := make([]int, src.Len())
	for i := range all {
		all[i] = i
	}
	n := len(vars)
	l := &Layout{NRow: n, NCol: n, Cells: make([][]*Cell, n)}
	for i := range l.Cells {
		l.Cells[i] = make([]*Cell, n)
		for j := range l.Cells[i] {
			l.Cells[i][j] = &Cell{
				Row:    i,
				Col:    j,
				ID:     GroupID{Row: vars[i], Col: vars[j]},
				Index:  all,
				Empty:  po.Corner && j > i,
				xlabel: vars[j],
				ylabel: vars[i],
				ownY:   i == j,
			}
		}
	}

	g := &Grid{opts: opts, src: src, renderer: r, layout: l, kind: pairKind}
	if err := g.bind(semantics{}); err != nil {
		return nil, err
	}
	if err := g.layOut(); err != nil {
		return nil, err
	}
	return &PairGrid{Grid: g, Vars: vars}, nil
}

func (p *PairGrid) pair(c *Cell) []string { return []string{p.Vars[c.Col], p.Vars[c.Row]} }
func (p *PairGrid) diag(c *Cell) []string { return []string{p.Vars[c.Col]} }

// Map draws fn with x and y variables into every panel, the diagonal
// included.
func (p *PairGrid) Map(fn PlotFunc) error {
	return p.dispatch(fn, func(*Cell) bool { return true }, p.pair)
}

// MapDiag draws the univariate fn into the diagonal panels.
func (p *PairGrid) MapDiag(fn PlotFunc) error {
	return p.dispatch(fn, func(c *Cell) bool { return c.Row == c.Col }, p.diag)
}

// MapOffDiag draws fn into all panels off the diagonal.
func (p *PairGrid) MapOffDiag(fn PlotFunc) error {
	return p.dispatch(fn, func(c *Cell) bool { return c.Row != c.Col }, p.pair)
}

// MapLower draws fn into the panels below the diagonal.
func (p *PairGrid) MapLower(fn PlotFunc) error {
	return p.dispatch(fn, func(c *Cell) bool { return c.Row > c.Col }, p.pair)
}

// MapUpper draws fn into the panels above the diagonal. It draws
// nothing in a corner grid.
func (p *PairGrid) MapUpper(fn PlotFunc) error {
	return p.dispatch(fn, func(c *Cell) bool { return c.Row < c.Col }, p.pair)
}

// Pairplot draws histograms on the diagonal and scatter plots off it
// and finalizes the grid.
func Pairplot(src data.Source, po PairOptions, r Renderer) (*PairGrid, error) {
	p, err := NewPairGrid(src, po, r)
	if err != nil {
		return nil, err
	}
	if err := p.MapDiag(Hist); err != nil {
		return nil, err
	}
	if err := p.MapOffDiag(Scatter); err != nil {
		return nil, err
	}
	if err := p.Finalize(); err != nil {
		return nil, fmt.Errorf("facetgrid: pairplot: %w", err)
	}
	return p, nil
}
