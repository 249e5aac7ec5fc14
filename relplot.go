package facetgrid

import (
	"fmt"
	"strings"

	"github.com/vdobler/facetgrid/data"
)

// RelOptions configures a relational plot: a facet grid of scatter or
// line plots of Y against X with optional size and style mappings.
type RelOptions struct {
	Options `yaml:",inline"`

	X string `yaml:"x" toml:"x"`
	Y string `yaml:"y" toml:"y"`

	// Kind is "scatter" (the default) or "line".
	Kind string `yaml:"kind" toml:"kind"`

	Size      string    `yaml:"size" toml:"size"`
	SizeOrder []string  `yaml:"size_order" toml:"size_order"`
	Sizes     []float64 `yaml:"sizes" toml:"sizes"`           // min and max size in points
	SizeTrans string    `yaml:"size_trans" toml:"size_trans"` // see TransformationByName

	Style      string   `yaml:"style" toml:"style"`
	StyleOrder []string `yaml:"style_order" toml:"style_order"`
	Markers    []string `yaml:"markers" toml:"markers"` // style tokens, see ParseStyle
	StyleCycle bool     `yaml:"style_cycle" toml:"style_cycle"`
}

// semantics checks the size and style options.
func (ro RelOptions) semantics() (semantics, error) {
	sem := semantics{
		Size:     ro.Size,
		SizeCfg:  SizeConfig{Order: ro.SizeOrder},
		Style:    ro.Style,
		StyleCfg: StyleConfig{Order: ro.StyleOrder, Cycle: ro.StyleCycle},
	}
	switch len(ro.Sizes) {
	case 0:
	case 2:
		sem.SizeCfg.Min, sem.SizeCfg.Max = ro.Sizes[0], ro.Sizes[1]
	default:
		return sem, &ConfigurationError{"sizes", fmt.Sprintf("need min and max, got %d values", len(ro.Sizes))}
	}
	t, ok := TransformationByName(ro.SizeTrans)
	if !ok {
		return sem, &ConfigurationError{"size_trans", fmt.Sprintf("unknown transformation %q", ro.SizeTrans)}
	}
	sem.SizeCfg.Trans = t
	if ro.Markers != nil {
		toks, err := ParseStyles(ro.Markers)
		if err != nil {
			return sem, &ConfigurationError{"markers", err.Error()}
		}
		sem.StyleCfg.Tokens = toks
	}
	for name, order := range map[string][]string{"size_order": ro.SizeOrder, "style_order": ro.StyleOrder} {
		if err := checkOrder(name, order); err != nil {
			return sem, err
		}
	}
	return sem, nil
}

func (ro RelOptions) plotFunc() (PlotFunc, error) {
	switch strings.ToLower(ro.Kind) {
	case "", "scatter":
		return Scatter, nil
	case "line":
		return Line, nil
	}
	return nil, &ConfigurationError{"kind", fmt.Sprintf("unknown kind %q", ro.Kind)}
}

// Relplot draws Y against X into a facet grid on r and finalizes it.
func Relplot(src data.Source, ro RelOptions, r Renderer) (*Grid, error) {
	if err := ro.Options.validate(); err != nil {
		return nil, err
	}
	if ro.X == "" || ro.Y == "" {
		return nil, &ConfigurationError{"x/y", "both must be set"}
	}
	fn, err := ro.plotFunc()
	if err != nil {
		return nil, err
	}
	sem, err := ro.semantics()
	if err != nil {
		return nil, err
	}
	for _, name := range []string{ro.X, ro.Y} {
		if _, err := data.Bind(src, name); err != nil {
			return nil, err
		}
	}
	g, err := newGrid(src, ro.Options, sem, r)
	if err != nil {
		return nil, err
	}
	if err := g.Map(fn, ro.X, ro.Y); err != nil {
		return nil, err
	}
	if err := g.Finalize(); err != nil {
		return nil, err
	}
	return g, nil
}

// Scatterplot is Relplot of kind scatter in a single panel.
func Scatterplot(src data.Source, ro RelOptions, r Renderer) (*Grid, error) {
	ro.Kind = "scatter"
	ro.Row, ro.Col, ro.ColWrap = "", "", 0
	return Relplot(src, ro, r)
}

// Lineplot is Relplot of kind line in a single panel.
func Lineplot(src data.Source, ro RelOptions, r Renderer) (*Grid, error) {
	ro.Kind = "line"
	ro.Row, ro.Col, ro.ColWrap = "", "", 0
	return Relplot(src, ro, r)
}
