// Scale Transformations
//
// Transformations map a data interval onto an aesthetic interval,
// e.g. the value range of a size variable onto marker radii.

package facetgrid

import (
	"math"
	"strings"
)

// A Transformation maps x from the interval from onto the interval to.
type Transformation struct {
	Name  string
	Trans func(from, to Interval, x float64) float64
}

// LinearTrans implements a linear mapping of from to to.
var LinearTrans = Transformation{
	Name: "linear",
	Trans: func(from, to Interval, x float64) float64 {
		if from.Max == from.Min {
			return (to.Min + to.Max) / 2
		}
		return to.Min + (to.Max-to.Min)*(x-from.Min)/(from.Max-from.Min)
	},
}

// SqrtTrans implements a square root transformation suitable to map
// a size variable to the radius of a point so that the area of the
// point grows linearly.
var SqrtTrans = Transformation{
	Name: "sqrt",
	Trans: func(from, to Interval, x float64) float64 {
		area := Interval{to.Min * to.Min, to.Max * to.Max}
		return math.Sqrt(LinearTrans.Trans(from, area, x))
	},
}

// SqrtTransFix0 is like SqrtTrans but maps 0 to 0.
var SqrtTransFix0 = Transformation{
	Name: "sqrt0",
	Trans: func(from, to Interval, x float64) float64 {
		from.Min, to.Min = 0, 0
		area := Interval{to.Min * to.Min, to.Max * to.Max}
		return math.Sqrt(LinearTrans.Trans(from, area, x))
	},
}

// Log10Trans maps from logarithmically. It requires from.Min > 0.
var Log10Trans = Transformation{
	Name: "log10",
	Trans: func(from, to Interval, x float64) float64 {
		if from.Max == from.Min {
			return (to.Min + to.Max) / 2
		}
		t := math.Log10(x/from.Min) / math.Log10(from.Max/from.Min)
		return to.Min + t*(to.Max-to.Min)
	},
}

// TransformationByName returns the transformation called name. The
// empty name selects LinearTrans.
func TransformationByName(name string) (Transformation, bool) {
	switch strings.ToLower(name) {
	case "", "linear":
		return LinearTrans, true
	case "sqrt", "area":
		return SqrtTrans, true
	case "sqrt0":
		return SqrtTransFix0, true
	case "log10", "log":
		return Log10Trans, true
	}
	return Transformation{}, false
}
