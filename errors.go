package facetgrid

import (
	"errors"
	"fmt"

	"github.com/vdobler/facetgrid/data"
)

// DataBindingError reports a variable naming a column absent from the
// data source.
type DataBindingError = data.BindingError

// ErrFinalized is returned when drawing into a grid whose legend and
// shared axes have already been finalized.
var ErrFinalized = errors.New("facetgrid: grid already finalized")

// ErrNotDrawn is returned when finalizing a grid nothing was mapped
// into.
var ErrNotDrawn = errors.New("facetgrid: grid finalized before drawing")

// ConfigurationError reports options that cannot be used together or
// carry invalid values.
type ConfigurationError struct {
	Option string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("facetgrid: bad option %s: %s", e.Option, e.Reason)
}

// MappingError reports a failure to produce a visual mapping for a
// semantic channel.
type MappingError struct {
	Channel Channel
	Var     string
	Level   string // offending level, if any
	Reason  string
}

func (e *MappingError) Error() string {
	if e.Level != "" {
		return fmt.Sprintf("facetgrid: %s mapping of %q: level %q: %s", e.Channel, e.Var, e.Level, e.Reason)
	}
	return fmt.Sprintf("facetgrid: %s mapping of %q: %s", e.Channel, e.Var, e.Reason)
}

// TooManyLevelsError reports a variable with more levels than a
// discrete channel or grid dimension can take.
type TooManyLevelsError struct {
	Dim    string // "style", "row", "col", "hue"
	Var    string
	Levels int
	Max    int
}

func (e *TooManyLevelsError) Error() string {
	return fmt.Sprintf("facetgrid: %s variable %q has %d levels, at most %d allowed",
		e.Dim, e.Var, e.Levels, e.Max)
}

// InvalidRangeError reports a size range whose minimum exceeds its
// maximum.
type InvalidRangeError struct {
	Min, Max float64
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("facetgrid: invalid size range [%g, %g]", e.Min, e.Max)
}
