package facetgrid

import (
	"fmt"
	"image/color"

	"github.com/vdobler/facetgrid/data"
	"gonum.org/v1/plot/vg"
)

// Map draws fn into every panel of g, once per hue level, handing it
// the columns vars restricted to the observations of the panel and the
// hue level. The first two variables label the x and y axis.
//
// All variables are bound before the first call to fn. An error of fn
// aborts drawing and is returned wrapped with the panel it occurred in.
// Map may be called several times to layer plots; after Finalize it
// fails with ErrFinalized.
func (g *Grid) Map(fn PlotFunc, vars ...string) error {
	return g.dispatch(fn, func(*Cell) bool { return true }, func(*Cell) []string { return vars })
}

// MapNamed is like Map but looks up the plot function registered as
// name.
func (g *Grid) MapNamed(name string, vars ...string) error {
	fn, ok := LookupPlotFunc(name)
	if !ok {
		return &ConfigurationError{"plot function", fmt.Sprintf("%q is not registered", name)}
	}
	return g.Map(fn, vars...)
}

// dispatch calls fn for all cells selected by pick with the variables
// returned by vars.
func (g *Grid) dispatch(fn PlotFunc, pick func(*Cell) bool, vars func(*Cell) []string) error {
	if g.state == Finalized {
		return ErrFinalized
	}
	if fn == nil {
		return &ConfigurationError{"plot function", "must not be nil"}
	}

	// Bind everything up front so that no panel is drawn if some
	// variable is missing.
	bound := make(map[string]*data.Variable)
	var cells []*Cell
	g.eachCell(func(c *Cell) {
		if pick(c) {
			cells = append(cells, c)
		}
	})
	for _, c := range cells {
		for _, name := range vars(c) {
			if bound[name] != nil {
				continue
			}
			v, err := data.Bind(g.src, name)
			if err != nil {
				return err
			}
			bound[name] = v
		}
	}

	for _, c := range cells {
		names := vars(c)
		if len(names) > 0 && c.xlabel == "" {
			c.xlabel = names[0]
		}
		if len(names) > 1 && c.ylabel == "" {
			c.ylabel = names[1]
		}
		for h, idx := range g.split(c) {
			if len(idx) == 0 {
				continue
			}
			cols := make([]Column, len(names))
			for k, name := range names {
				cols[k] = column(bound[name], idx)
			}
			a := g.attrsOf(h, idx)
			debug.Printf("draw %s hue=%q: %d observations", c.ID, a.Label, len(idx))
			if err := fn(c.Surface(), cols, a); err != nil {
				return fmt.Errorf("facetgrid: panel %s: %w", c.ID, err)
			}
			c.drawn = true
		}
	}
	g.state = Drawn
	return nil
}

// split partitions the observations of c by hue level. Without a
// discrete hue there is a single part.
func (g *Grid) split(c *Cell) [][]int {
	n := 1
	if g.Hue != nil && !g.Hue.Continuous() {
		n = len(g.Hue.Levels)
	}
	parts := make([][]int, n)
	for _, i := range c.Index {
		if !g.attrs.keep[i] {
			continue
		}
		h := g.attrs.hue[i]
		parts[h] = append(parts[h], i)
	}
	return parts
}

// attrsOf resolves the attributes of the observations idx of hue
// level h.
func (g *Grid) attrsOf(h int, idx []int) Attrs {
	var a Attrs
	if m := g.Hue; m != nil {
		if m.Continuous() {
			a.Colors = make([]color.Color, len(idx))
			for j, i := range idx {
				a.Colors[j] = g.attrs.colors[i]
			}
		} else {
			a.Label = m.Levels[h]
			a.Color = m.table[a.Label]
		}
	}
	if g.attrs.sizes != nil {
		a.Sizes = make([]vg.Length, len(idx))
		for j, i := range idx {
			a.Sizes[j] = g.attrs.sizes[i]
		}
	}
	if g.attrs.styles != nil {
		a.Styles = make([]StyleToken, len(idx))
		for j, i := range idx {
			a.Styles[j] = g.attrs.styles[i]
		}
	}
	return a
}

// column extracts the observations idx of v. Categorical values are
// replaced by the position of their level.
func column(v *data.Variable, idx []int) Column {
	col := Column{Name: v.Name, Kind: v.Kind}
	if v.Numeric() {
		col.Values = v.Select(idx)
		return col
	}
	col.Levels = levelsOf(v, nil)
	col.Values = make([]float64, len(idx))
	for j, i := range idx {
		col.Values[j] = float64(col.Levels.Index(v.Label(i)))
	}
	return col
}
