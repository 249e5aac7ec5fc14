package facetgrid

import (
	"fmt"
	"math"
)

// ----------------------------------------------------------------------------
// axisScale

// axisScale collects the data ranges drawn by all panels sharing one
// axis and turns them into the common axis limits.
type axisScale struct {
	// Data is the range covered by actual data.
	Data Interval

	// Interval is the resulting axis range. It may be larger or
	// smaller than the Data range.
	Interval

	Autoscaling
}

func newAxisScale() *axisScale {
	s := &axisScale{
		Data:     unsetInterval(),
		Interval: unsetInterval(),
		Autoscaling: Autoscaling{
			MinRange: unsetInterval(),
			MaxRange: unsetInterval(),
		},
	}
	s.Expand.Relative = 0.05
	return s
}

// UpdateData updates s to cover i.
func (s *axisScale) UpdateData(i Interval) {
	s.Data.Update(i.Min, i.Max)
}

// FixMin fixes the min of s to x.
func (s *axisScale) FixMin(x float64) {
	s.MinRange.Min, s.MinRange.Max = x, x
}

// FixMax fixes the max of s to x.
func (s *axisScale) FixMax(x float64) {
	s.MaxRange.Min, s.MaxRange.Max = x, x
}

// HasData reports whether the Data interval of s is valid.
func (s *axisScale) HasData() bool {
	return !math.IsNaN(s.Data.Min) && !math.IsNaN(s.Data.Max)
}

func (s *axisScale) String() string {
	if s == nil {
		return "<nil>"
	}
	return fmt.Sprintf("Range=[%.2f:%.2f] Data=[%.2f:%.2f]",
		s.Min, s.Max, s.Data.Min, s.Data.Max)
}

// autoscale turns the data range into the axis range.
func (s *axisScale) autoscale() {
	if !s.HasData() {
		if s.MinRange.Min == s.MinRange.Max && s.MaxRange.Min == s.MaxRange.Max {
			s.Min, s.Max = s.MinRange.Min, s.MaxRange.Min
		}
		return
	}

	ext := s.Expand.Relative*(s.Data.Max-s.Data.Min) + s.Expand.Absolute
	if s.Data.Min == s.Data.Max {
		ext = 0.5
	}

	// Left edge.
	if s.MinRange.Min == s.MinRange.Max {
		// Degenerate and non NaN: the user fixed Min.
		s.Min = s.MinRange.Min
	} else {
		s.Min = s.Data.Min - ext
		if s.MinRange.Min > s.Min {
			s.Min = s.MinRange.Min
		}
		if s.MinRange.Max < s.Min {
			s.Min = s.MinRange.Max
		}
	}

	// Right edge.
	if s.MaxRange.Min == s.MaxRange.Max {
		s.Max = s.MaxRange.Min
	} else {
		s.Max = s.Data.Max + ext
		if s.MaxRange.Min > s.Max {
			s.Max = s.MaxRange.Min
		}
		if s.MaxRange.Max < s.Max {
			s.Max = s.MaxRange.Max
		}
	}
}

// ----------------------------------------------------------------------------
// Interval

// Interval represents a (potentially degenerate) real interval.
// Both edges of the interval may be NaN indicating this edge is not
// determined.
type Interval struct {
	Min, Max float64
}

func unsetInterval() Interval {
	return Interval{math.NaN(), math.NaN()}
}

// Update expands i to include x.
func (i *Interval) Update(x ...float64) {
	for _, v := range x {
		if math.IsNaN(v) {
			continue
		}
		if !(i.Min < v) {
			i.Min = v
		}
		if !(i.Max > v) {
			i.Max = v
		}
	}
}

// Equal reports whether i and j have the same edges, treating NaN
// edges as equal.
func (i Interval) Equal(j Interval) bool {
	eq := func(a, b float64) bool {
		return a == b || math.IsNaN(a) && math.IsNaN(b)
	}
	return eq(i.Min, j.Min) && eq(i.Max, j.Max)
}

// Valid reports whether both edges of i are set.
func (i Interval) Valid() bool {
	return !math.IsNaN(i.Min) && !math.IsNaN(i.Max)
}

// ----------------------------------------------------------------------------
// Autoscaling

// Autoscaling controls how the min and max value of a scale are scaled.
// Setting a range to a degenerate interval [f:f] will turn of autoscaling
// and fix the value to f. A non-degenerate range [u:v] will allow autoscaling
// between u and v. A NaN value works like -Inf for u and +Inf for v.
type Autoscaling struct {
	// Expand determines how much the actual data range is expanded.
	Expand struct {
		Absolute float64
		Relative float64
	}

	MinRange Interval // MinRange determines the allowed range of the Min of a scale.
	MaxRange Interval // MaxRange determines the allowed range of the Max of a scale.
}
