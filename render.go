package facetgrid

import (
	"fmt"
	"image/color"
	"sort"
	"sync"

	"github.com/vdobler/facetgrid/data"
	"gonum.org/v1/plot/vg"
)

// FigureOptions describes the subplot array a Renderer has to set up.
type FigureOptions struct {
	Rows, Cols int
	Height     vg.Length // of one panel
	Width      vg.Length // of one panel
	Title      string
}

// A Renderer is the drawing backend of a grid.
type Renderer interface {
	// Subplots creates the rows x cols array of panels.
	Subplots(opts FigureOptions) error

	// Surface returns the drawing surface of panel (row, col).
	Surface(row, col int) Surface

	// Legend draws the legend entries.
	Legend(entries []LegendEntry, placement LegendPlacement) error
}

// A Surface is the drawing area of one panel.
type Surface interface {
	Scatter(x, y []float64, a Attrs) error
	Line(x, y []float64, a Attrs) error
	Hist(x []float64, a Attrs) error

	// SetTitle sets the panel title drawn above the panel.
	SetTitle(title string)

	// SetRowTitle sets the title drawn in the right margin.
	SetRowTitle(title string)

	// SetLabels sets the axis labels. Empty labels are not drawn.
	SetLabels(x, y string)

	// SetTimeAxis marks the axes passed as true as showing Unix
	// seconds. False leaves an axis unchanged.
	SetTimeAxis(x, y bool)

	// SetCategoryAxis labels the integer positions of an axis with
	// the given levels. A nil LevelSet leaves an axis unchanged.
	SetCategoryAxis(x, y LevelSet)

	// DataRange returns the range of all data drawn so far.
	DataRange() (x, y Interval)

	// SetLimits sets the axis limits. Invalid intervals are ignored.
	SetLimits(x, y Interval)

	// Hide removes the panel from the figure.
	Hide()
}

// Attrs are the visual attributes resolved for one draw call.
// Per-row slices, if non-nil, have one entry per row of the columns
// and take precedence over the scalar fields.
type Attrs struct {
	// Label identifies the hue level of the call. It is empty if
	// there is no hue variable.
	Label string

	Color  color.Color
	Colors []color.Color

	Size  vg.Length // marker radius or line width; 0 means default
	Sizes []vg.Length

	Style  *StyleToken
	Styles []StyleToken

	// Bins is the number of histogram bins; 0 means default.
	Bins int
}

// A Column is one named data column handed to a PlotFunc. Values of
// categorical columns are the positions of their levels in Levels.
type Column struct {
	Name   string
	Kind   data.Kind
	Values []float64
	Levels LevelSet // categorical columns only
}

// axisKinds announces time and category axes of cols[0] (x) and, if
// present, cols[1] (y) to s.
func axisKinds(s Surface, cols []Column) {
	x, y := cols[0], Column{}
	if len(cols) > 1 {
		y = cols[1]
	}
	s.SetTimeAxis(x.Kind == data.Datetime, len(cols) > 1 && y.Kind == data.Datetime)
	if x.Levels != nil || y.Levels != nil {
		s.SetCategoryAxis(x.Levels, y.Levels)
	}
}

// A PlotFunc draws the columns with attributes a onto s. It is called
// once per panel and hue level.
type PlotFunc func(s Surface, cols []Column, a Attrs) error

// ----------------------------------------------------------------------------
// PlotFunc registry

var (
	registryMu sync.Mutex
	registry   = map[string]PlotFunc{}
)

// RegisterPlotFunc makes fn available under name. Registering a name
// twice replaces the earlier function.
func RegisterPlotFunc(name string, fn PlotFunc) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = fn
}

// LookupPlotFunc returns the function registered as name.
func LookupPlotFunc(name string) (PlotFunc, bool) {
	registryMu.Lock()
	defer registryMu.Unlock()
	fn, ok := registry[name]
	return fn, ok
}

// PlotFuncs returns the sorted names of all registered functions.
func PlotFuncs() []string {
	registryMu.Lock()
	defer registryMu.Unlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	RegisterPlotFunc("scatter", Scatter)
	RegisterPlotFunc("line", Line)
	RegisterPlotFunc("hist", Hist)
}

func wantCols(name string, cols []Column, n int) error {
	if len(cols) != n {
		return fmt.Errorf("facetgrid: %s needs %d columns, got %d", name, n, len(cols))
	}
	return nil
}

// Scatter draws cols[0] against cols[1] as points.
func Scatter(s Surface, cols []Column, a Attrs) error {
	if err := wantCols("scatter", cols, 2); err != nil {
		return err
	}
	axisKinds(s, cols)
	return s.Scatter(cols[0].Values, cols[1].Values, a)
}

// Line connects the points (cols[0], cols[1]) in order of x.
func Line(s Surface, cols []Column, a Attrs) error {
	if err := wantCols("line", cols, 2); err != nil {
		return err
	}
	axisKinds(s, cols)
	x, y, a := sortByX(cols[0].Values, cols[1].Values, a)
	return s.Line(x, y, a)
}

// sortByX orders the points and their per-row attributes by x.
func sortByX(x, y []float64, a Attrs) ([]float64, []float64, Attrs) {
	perm := make([]int, len(x))
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(i, j int) bool { return x[perm[i]] < x[perm[j]] })

	sx, sy := make([]float64, len(x)), make([]float64, len(y))
	for j, i := range perm {
		sx[j], sy[j] = x[i], y[i]
	}
	if a.Colors != nil {
		cs := make([]color.Color, len(perm))
		for j, i := range perm {
			cs[j] = a.Colors[i]
		}
		a.Colors = cs
	}
	if a.Sizes != nil {
		ss := make([]vg.Length, len(perm))
		for j, i := range perm {
			ss[j] = a.Sizes[i]
		}
		a.Sizes = ss
	}
	if a.Styles != nil {
		ts := make([]StyleToken, len(perm))
		for j, i := range perm {
			ts[j] = a.Styles[i]
		}
		a.Styles = ts
	}
	return sx, sy, a
}

// Hist draws a histogram of cols[0].
func Hist(s Surface, cols []Column, a Attrs) error {
	if err := wantCols("hist", cols, 1); err != nil {
		return err
	}
	axisKinds(s, cols)
	return s.Hist(cols[0].Values, a)
}
