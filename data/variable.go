package data

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"time"

	"github.com/aclements/go-gg/generic/slice"
)

// BindingError reports a variable that names no column of its source.
type BindingError struct {
	Name    string
	Columns []string
}

func (e *BindingError) Error() string {
	return fmt.Sprintf("data: no column %q in source (have %q)", e.Name, e.Columns)
}

// A Variable is a named column of a Source together with its
// inferred Kind. A Variable never changes once bound.
type Variable struct {
	Name string
	Kind Kind

	declared []string
	labels   []string
	values   []float64 // nil for categorical variables
}

// Bind looks up the column name in src and binds it.
func Bind(src Source, name string) (*Variable, error) {
	kind, err := src.Kind(name)
	if err != nil {
		return nil, err
	}
	col := src.Column(name)
	if col == nil {
		return nil, &BindingError{Name: name, Columns: src.Columns()}
	}

	v := &Variable{Name: name, Kind: kind, declared: src.Categories(name)}
	rv := reflect.ValueOf(col)
	n := rv.Len()
	v.labels = make([]string, n)

	switch kind {
	case Continuous:
		slice.Convert(&v.values, col)
		for i, x := range v.values {
			v.labels[i] = strconv.FormatFloat(x, 'g', -1, 64)
		}
	case Datetime:
		v.values = make([]float64, n)
		for i := 0; i < n; i++ {
			t := rv.Index(i).Interface().(time.Time)
			v.values[i] = float64(t.UnixNano()) / 1e9
			v.labels[i] = formatTime(t)
		}
	default:
		for i := 0; i < n; i++ {
			v.labels[i] = fmt.Sprint(rv.Index(i).Interface())
		}
	}
	return v, nil
}

func formatTime(t time.Time) string {
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
		return t.Format("2006-01-02")
	}
	return t.Format(time.RFC3339)
}

// Len returns the number of observations of v.
func (v *Variable) Len() int { return len(v.labels) }

// Label returns the level label of observation i.
func (v *Variable) Label(i int) string { return v.labels[i] }

// Numeric reports whether v has a float value per observation.
func (v *Variable) Numeric() bool { return v.values != nil }

// Value returns the numeric value of observation i. Datetimes are
// reported in Unix seconds. It returns NaN for categorical variables.
func (v *Variable) Value(i int) float64 {
	if v.values == nil {
		return math.NaN()
	}
	return v.values[i]
}

// Select returns the numeric values of the observations idx.
func (v *Variable) Select(idx []int) []float64 {
	out := make([]float64, len(idx))
	for j, i := range idx {
		out[j] = v.Value(i)
	}
	return out
}

// Declared returns the level order declared by the source, if any.
func (v *Variable) Declared() []string { return v.declared }

// Range returns the smallest and largest non-NaN value of v. Both are
// NaN if v is not numeric or holds no numbers.
func (v *Variable) Range() (min, max float64) {
	min, max = math.NaN(), math.NaN()
	for _, x := range v.values {
		if math.IsNaN(x) {
			continue
		}
		if !(min <= x) {
			min = x
		}
		if !(max >= x) {
			max = x
		}
	}
	return min, max
}

// Observed returns the distinct labels of v. Numeric variables are
// ordered by value, categorical ones by first appearance. NaNs are
// skipped.
func (v *Variable) Observed() []string {
	seen := make(map[string]bool)
	var labels []string
	var order []int
	for i, l := range v.labels {
		if v.values != nil && math.IsNaN(v.values[i]) {
			continue
		}
		if seen[l] {
			continue
		}
		seen[l] = true
		labels = append(labels, l)
		order = append(order, i)
	}
	if v.values != nil {
		sort.Sort(byValue{labels, order, v.values})
	}
	return labels
}

type byValue struct {
	labels []string
	rows   []int
	values []float64
}

func (s byValue) Len() int           { return len(s.labels) }
func (s byValue) Less(i, j int) bool { return s.values[s.rows[i]] < s.values[s.rows[j]] }
func (s byValue) Swap(i, j int) {
	s.labels[i], s.labels[j] = s.labels[j], s.labels[i]
	s.rows[i], s.rows[j] = s.rows[j], s.rows[i]
}
