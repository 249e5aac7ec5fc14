// Semantic Mappings
//
// A mapping turns the levels or values of one variable into one visual
// attribute: a color (hue), a marker size or line width (size) or a
// marker shape and dash pattern (style).

package facetgrid

import (
	"fmt"
	"image/color"
	"math"

	ggpalette "github.com/aclements/go-gg/palette"
	"github.com/aclements/go-moremath/scale"
	"github.com/aclements/go-moremath/vec"
	"github.com/vdobler/facetgrid/data"
	"gonum.org/v1/plot/vg"
)

// A Channel is a semantic dimension a variable can be mapped to.
type Channel int

const (
	HueChannel Channel = iota
	SizeChannel
	StyleChannel
)

func (c Channel) String() string {
	switch c {
	case HueChannel:
		return "hue"
	case SizeChannel:
		return "size"
	case StyleChannel:
		return "style"
	}
	return fmt.Sprintf("Channel(%d)", int(c))
}

// ----------------------------------------------------------------------------
// Hue

// HueConfig configures the color mapping.
type HueConfig struct {
	Order   []string      // explicit level order; forces a discrete mapping
	Palette string        // see Options.Palette
	Colors  []color.Color // explicit colors, take precedence over Palette
}

// A HueMapping maps the levels of a discrete variable to colors from a
// palette or the values of a continuous variable through a color map.
type HueMapping struct {
	Var    *data.Variable
	Levels LevelSet

	// Range is the data range of a continuous mapping.
	Range Interval

	table map[string]color.Color
	cmap  ggpalette.Continuous
	norm  scale.Linear
}

var missingColor = color.Gray{0x99}

// NewHueMapping builds the color mapping of v. Numeric variables
// without an explicit order get a continuous mapping.
func NewHueMapping(v *data.Variable, cfg HueConfig) (*HueMapping, error) {
	if v.Numeric() && cfg.Order == nil {
		return NewContinuousHue(v, cfg)
	}
	return NewDiscreteHue(v, levelsOf(v, cfg.Order), cfg)
}

// NewDiscreteHue maps the levels to the palette colors, cycling the
// palette if there are more levels than colors.
func NewDiscreteHue(v *data.Variable, levels LevelSet, cfg HueConfig) (*HueMapping, error) {
	colors, err := discreteColors(cfg.Palette, cfg.Colors, len(levels))
	if err != nil {
		return nil, &MappingError{Channel: HueChannel, Var: v.Name, Reason: err.Error()}
	}
	if len(colors) == 0 {
		return nil, &MappingError{Channel: HueChannel, Var: v.Name, Reason: "empty palette"}
	}
	m := &HueMapping{
		Var:    v,
		Levels: levels,
		Range:  unsetInterval(),
		table:  make(map[string]color.Color, len(levels)),
	}
	for i, l := range levels {
		m.table[l] = colors[i%len(colors)]
	}
	return m, nil
}

// NewContinuousHue normalises the values of v onto [0,1] and maps them
// through a continuous palette. The smallest value gets the start of
// the palette, the largest its end.
func NewContinuousHue(v *data.Variable, cfg HueConfig) (*HueMapping, error) {
	if !v.Numeric() {
		return nil, &MappingError{Channel: HueChannel, Var: v.Name,
			Reason: fmt.Sprintf("%s variable cannot be mapped continuously", v.Kind)}
	}
	cmap, err := continuousPalette(cfg.Palette, cfg.Colors)
	if err != nil {
		return nil, &MappingError{Channel: HueChannel, Var: v.Name, Reason: err.Error()}
	}
	min, max := v.Range()
	m := &HueMapping{
		Var:   v,
		Range: Interval{min, max},
		cmap:  cmap,
		norm:  scale.Linear{Min: min, Max: max, Clamp: true},
	}
	if min == max {
		m.norm.Min, m.norm.Max = min-1, max+1
	}
	return m, nil
}

// Continuous reports whether m maps values instead of levels.
func (m *HueMapping) Continuous() bool { return m.cmap != nil }

// Color returns the color of level.
func (m *HueMapping) Color(level string) (color.Color, error) {
	c, ok := m.table[level]
	if !ok {
		return nil, &MappingError{Channel: HueChannel, Var: m.Var.Name, Level: level, Reason: "unmapped level"}
	}
	return c, nil
}

// Map returns the color of value x of a continuous mapping. Missing
// values are drawn gray.
func (m *HueMapping) Map(x float64) color.Color {
	if math.IsNaN(x) {
		return missingColor
	}
	return m.cmap.Map(m.norm.Map(x))
}

// ----------------------------------------------------------------------------
// Size

// Default size range in points.
const (
	DefaultMinSize = 2
	DefaultMaxSize = 8
)

// SizeConfig configures the size mapping. A zero Min and Max select
// the default range.
type SizeConfig struct {
	Order    []string
	Min, Max float64
	Trans    Transformation // for continuous variables; zero means linear
}

// A SizeMapping maps levels or values to marker radii and line widths.
type SizeMapping struct {
	Var    *data.Variable
	Levels LevelSet

	// Range is the data range of a continuous mapping and Sizes the
	// size range in points.
	Range Interval
	Sizes Interval

	trans Transformation
	table map[string]vg.Length
}

// NewSizeMapping builds the size mapping of v. Numeric variables
// without an explicit order are interpolated between cfg.Min and
// cfg.Max; discrete levels get evenly spaced sizes in level order.
func NewSizeMapping(v *data.Variable, cfg SizeConfig) (*SizeMapping, error) {
	lo, hi := cfg.Min, cfg.Max
	if lo == 0 && hi == 0 {
		lo, hi = DefaultMinSize, DefaultMaxSize
	}
	if lo > hi {
		return nil, &InvalidRangeError{Min: lo, Max: hi}
	}
	m := &SizeMapping{Var: v, Sizes: Interval{lo, hi}, Range: unsetInterval(), trans: cfg.Trans}
	if m.trans.Trans == nil {
		m.trans = LinearTrans
	}

	if v.Numeric() && cfg.Order == nil {
		min, max := v.Range()
		m.Range = Interval{min, max}
		if m.trans.Name == Log10Trans.Name && !(min > 0) {
			return nil, &MappingError{Channel: SizeChannel, Var: v.Name,
				Reason: fmt.Sprintf("log transformation needs positive values, min is %g", min)}
		}
		return m, nil
	}

	m.Levels = levelsOf(v, cfg.Order)
	m.table = make(map[string]vg.Length, len(m.Levels))
	var sizes []float64
	switch len(m.Levels) {
	case 0:
	case 1:
		sizes = []float64{(lo + hi) / 2}
	default:
		sizes = vec.Linspace(lo, hi, len(m.Levels))
	}
	for i, l := range m.Levels {
		m.table[l] = vg.Points(sizes[i])
	}
	return m, nil
}

// Continuous reports whether m interpolates values.
func (m *SizeMapping) Continuous() bool { return m.table == nil }

// Size returns the size of level.
func (m *SizeMapping) Size(level string) (vg.Length, error) {
	s, ok := m.table[level]
	if !ok {
		return 0, &MappingError{Channel: SizeChannel, Var: m.Var.Name, Level: level, Reason: "unmapped level"}
	}
	return s, nil
}

// Map returns the size of value x of a continuous mapping.
func (m *SizeMapping) Map(x float64) vg.Length {
	return vg.Points(m.trans.Trans(m.Range, m.Sizes, x))
}

// ----------------------------------------------------------------------------
// Style

// StyleConfig configures the style mapping.
type StyleConfig struct {
	Order  []string
	Tokens []StyleToken // nil selects DefaultStyles

	// Cycle reuses tokens if there are more levels than tokens.
	Cycle bool
}

// A StyleMapping maps discrete levels to style tokens.
type StyleMapping struct {
	Var    *data.Variable
	Levels LevelSet
	table  map[string]StyleToken
}

// NewStyleMapping assigns the tokens to the levels of v in order.
// Numeric variables are treated as discrete.
func NewStyleMapping(v *data.Variable, cfg StyleConfig) (*StyleMapping, error) {
	tokens := cfg.Tokens
	if tokens == nil {
		tokens = DefaultStyles()
	}
	if len(tokens) == 0 {
		return nil, &MappingError{Channel: StyleChannel, Var: v.Name, Reason: "no style tokens"}
	}
	levels := levelsOf(v, cfg.Order)
	if len(levels) > len(tokens) && !cfg.Cycle {
		return nil, &TooManyLevelsError{Dim: "style", Var: v.Name, Levels: len(levels), Max: len(tokens)}
	}
	m := &StyleMapping{Var: v, Levels: levels, table: make(map[string]StyleToken, len(levels))}
	for i, l := range levels {
		m.table[l] = tokens[i%len(tokens)]
	}
	return m, nil
}

// Style returns the token of level.
func (m *StyleMapping) Style(level string) (StyleToken, error) {
	t, ok := m.table[level]
	if !ok {
		return StyleToken{}, &MappingError{Channel: StyleChannel, Var: m.Var.Name, Level: level, Reason: "unmapped level"}
	}
	return t, nil
}
