// Package facetgrid draws faceted statistical plots in the manner of
// seaborn's FacetGrid and relplot.
//
// The drawing itself is done by a Renderer; package gonumplot provides
// one on top of gonum.org/v1/plot.
//
// # Data
//
// A data.Source is a table of named columns. Each column used by a
// plot is bound to a data.Variable which has one of the kinds
// categorical, continuous or datetime. Binding an unknown column
// fails with a DataBindingError.
//
// # Faceted Plots and Grouping
//
// The levels of the row and col variables span the panel grid. A col
// variable may be wrapped after ColWrap panels instead, leaving the
// trailing cells of the last row empty. Level order is, in priority:
//  1. The explicit RowOrder, ColOrder or HueOrder.
//  2. The order declared by the source (see data.Frame.SetCategories).
//  3. Sorted order for continuous and datetime variables.
//  4. Order of first appearance.
//
// # Semantic Mappings
//
// Three channels map data to visual attributes:
//   - Hue    Color of points and lines. Discrete or continuous.
//   - Size   Marker radius and line width. Discrete or continuous.
//   - Style  Marker shape and dash pattern. Always discrete.
//
// A style variable with more levels than style tokens is an error
// (TooManyLevelsError) unless cycling is requested. An explicit hue,
// size or style order must list every observed level; otherwise
// NewFacetGrid fails with a MappingError unless DropUnorderedLevels
// is set.
//
// # Grid Life Cycle
//
// A Grid moves through the states
//
//	Unbound -> Bound -> LaidOut -> Drawn -> Finalized
//
// NewFacetGrid performs the first three transitions: it binds all
// variables, builds the mappings and creates the panels. Map draws and
// may be called repeatedly to layer plots. Finalize, which needs at
// least one Map, computes shared axis limits, labels the panels and
// draws the legend; after it the grid rejects further drawing.
//
// All configuration errors are reported before the Renderer creates
// any panel.
package facetgrid
