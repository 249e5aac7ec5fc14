package facetgrid

import (
	"fmt"
	"image/color"
	"strings"
)

// Default figure geometry.
const (
	DefaultHeight = 3.0 // inches per facet
	DefaultAspect = 1.0 // width = Aspect * Height
)

// Options configures a facet grid. The zero value is a single panel
// without semantic mappings and with all axes shared.
type Options struct {
	// Row, Col and Hue name the faceting and color variables.
	// Each may be empty.
	Row string `yaml:"row" toml:"row"`
	Col string `yaml:"col" toml:"col"`
	Hue string `yaml:"hue" toml:"hue"`

	// ColWrap wraps the column facets after this many panels.
	// It cannot be combined with Row.
	ColWrap int `yaml:"col_wrap" toml:"col_wrap"`

	// Explicit level orders. Row and col levels missing from an
	// order are not drawn; levels without data produce empty
	// panels. An observed hue, size or style level missing from its
	// order is a MappingError unless DropUnorderedLevels is set, in
	// which case its observations are not drawn.
	RowOrder []string `yaml:"row_order" toml:"row_order"`
	ColOrder []string `yaml:"col_order" toml:"col_order"`
	HueOrder []string `yaml:"hue_order" toml:"hue_order"`

	DropUnorderedLevels bool `yaml:"drop_unordered_levels" toml:"drop_unordered_levels"`

	// Palette names the hue palette: "default", a ColorBrewer
	// name like "Set1", "heat", "rainbow", a moreland color map
	// like "kindlmann" or a comma separated list of #rrggbb
	// colors. Colors, if non-nil, takes precedence.
	Palette string        `yaml:"palette" toml:"palette"`
	Colors  []color.Color `yaml:"-" toml:"-"`

	// Height of each facet in inches and its width to height
	// ratio. Zero selects DefaultHeight and DefaultAspect.
	Height float64 `yaml:"height" toml:"height"`
	Aspect float64 `yaml:"aspect" toml:"aspect"`

	// ShareX and ShareY control which panels share axis limits.
	ShareX Share `yaml:"sharex" toml:"sharex"`
	ShareY Share `yaml:"sharey" toml:"sharey"`

	// XLim and YLim, if given as [min, max], fix the axis limits
	// of every panel instead of deriving them from the data.
	XLim []float64 `yaml:"xlim" toml:"xlim"`
	YLim []float64 `yaml:"ylim" toml:"ylim"`

	// MarginTitles draws row levels on the right margin and
	// column levels above the top row instead of titling every
	// panel.
	MarginTitles bool `yaml:"margin_titles" toml:"margin_titles"`

	// MaxLevels caps the number of levels of the row, col and
	// hue variables. Zero means no limit.
	MaxLevels int `yaml:"max_levels" toml:"max_levels"`

	// Legend places the legend; HideLegend suppresses it.
	Legend     LegendPlacement `yaml:"legend" toml:"legend"`
	HideLegend bool            `yaml:"hide_legend" toml:"hide_legend"`

	// Title is the figure title.
	Title string `yaml:"title" toml:"title"`
}

func (o Options) height() float64 {
	if o.Height == 0 {
		return DefaultHeight
	}
	return o.Height
}

func (o Options) aspect() float64 {
	if o.Aspect == 0 {
		return DefaultAspect
	}
	return o.Aspect
}

// validate checks option combinations that cannot work. It never
// looks at the data.
func (o Options) validate() error {
	if o.ColWrap < 0 {
		return &ConfigurationError{"col_wrap", fmt.Sprintf("must not be negative, got %d", o.ColWrap)}
	}
	if o.ColWrap > 0 && o.Row != "" {
		return &ConfigurationError{"col_wrap", "cannot be combined with row"}
	}
	if o.ColWrap > 0 && o.Col == "" {
		return &ConfigurationError{"col_wrap", "requires col"}
	}
	if o.Height < 0 {
		return &ConfigurationError{"height", fmt.Sprintf("must be positive, got %g", o.Height)}
	}
	if o.Aspect < 0 {
		return &ConfigurationError{"aspect", fmt.Sprintf("must be positive, got %g", o.Aspect)}
	}
	if o.MaxLevels < 0 {
		return &ConfigurationError{"max_levels", fmt.Sprintf("must not be negative, got %d", o.MaxLevels)}
	}
	for name, lim := range map[string][]float64{"xlim": o.XLim, "ylim": o.YLim} {
		if err := checkLimits(name, lim); err != nil {
			return err
		}
	}
	for name, order := range map[string][]string{
		"row_order": o.RowOrder,
		"col_order": o.ColOrder,
		"hue_order": o.HueOrder,
	} {
		if err := checkOrder(name, order); err != nil {
			return err
		}
	}
	return nil
}

func checkLimits(name string, lim []float64) error {
	switch {
	case len(lim) == 0:
		return nil
	case len(lim) != 2:
		return &ConfigurationError{name, fmt.Sprintf("want [min, max], got %d values", len(lim))}
	case !(lim[0] < lim[1]):
		return &ConfigurationError{name, fmt.Sprintf("min %g must be less than max %g", lim[0], lim[1])}
	}
	return nil
}

func checkOrder(name string, order []string) error {
	seen := make(map[string]bool, len(order))
	for _, l := range order {
		if seen[l] {
			return &ConfigurationError{name, fmt.Sprintf("duplicate level %q", l)}
		}
		seen[l] = true
	}
	return nil
}

// ----------------------------------------------------------------------------
// Share

// Share selects which panels of a grid share the limits of an axis.
type Share int

const (
	ShareAll  Share = iota // all panels
	ShareNone              // every panel scales independently
	ShareCol               // panels in the same column
	ShareRow               // panels in the same row
)

func (s Share) String() string {
	switch s {
	case ShareAll:
		return "all"
	case ShareNone:
		return "none"
	case ShareCol:
		return "col"
	case ShareRow:
		return "row"
	}
	return fmt.Sprintf("Share(%d)", int(s))
}

// UnmarshalText accepts "all", "none", "col", "row" and the booleans
// "true" and "false".
func (s *Share) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "all", "true", "":
		*s = ShareAll
	case "none", "false":
		*s = ShareNone
	case "col":
		*s = ShareCol
	case "row":
		*s = ShareRow
	default:
		return &ConfigurationError{"share", fmt.Sprintf("unknown value %q", text)}
	}
	return nil
}

// key returns the sharing group of the panel at (row, col).
func (s Share) key(row, col int) [2]int {
	switch s {
	case ShareNone:
		return [2]int{row, col}
	case ShareCol:
		return [2]int{-1, col}
	case ShareRow:
		return [2]int{row, -1}
	}
	return [2]int{-1, -1}
}

// ----------------------------------------------------------------------------
// LegendPlacement

// LegendPlacement positions the legend relative to the panels.
type LegendPlacement int

const (
	LegendOutside LegendPlacement = iota // right of the panels
	LegendInside                         // inside the top right panel
)

func (p LegendPlacement) String() string {
	if p == LegendInside {
		return "inside"
	}
	return "outside"
}

// UnmarshalText accepts "outside" and "inside".
func (p *LegendPlacement) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "outside", "out", "":
		*p = LegendOutside
	case "inside", "in":
		*p = LegendInside
	default:
		return &ConfigurationError{"legend", fmt.Sprintf("unknown placement %q", text)}
	}
	return nil
}
