// Package data binds tidy tabular data to the plotting core.
//
// A Source is anything that can look up columns by name, filter rows
// and report the kind of a column. Frame is the implementation used
// throughout this module; it stores its columns in a go-gg table.
package data

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"reflect"
	"time"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
)

// Kind is the inferred nature of a column.
type Kind int

const (
	Categorical Kind = iota
	Continuous
	Datetime
)

// String returns the name of k.
func (k Kind) String() string {
	switch k {
	case Categorical:
		return "categorical"
	case Continuous:
		return "continuous"
	case Datetime:
		return "datetime"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// A Source is a tabular data source: one column per variable, one row
// per observation.
type Source interface {
	// Len returns the number of rows.
	Len() int

	// Columns returns the column names in order.
	Columns() []string

	// Column returns the named column as a Go slice or nil if
	// there is no such column.
	Column(name string) interface{}

	// Kind reports the kind of the named column.
	Kind(name string) (Kind, error)

	// Categories returns the declared level order of the named
	// column or nil if the source does not declare one.
	Categories(name string) []string

	// Filter returns a Source holding the rows i for which keep(i)
	// is true, in their original order.
	Filter(keep func(i int) bool) Source
}

var timeType = reflect.TypeOf(time.Time{})

// KindOf infers the Kind of values of type t.
func KindOf(t reflect.Type) Kind {
	if t == timeType {
		return Datetime
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return Continuous
	}
	return Categorical
}

// ----------------------------------------------------------------------------
// Frame

// Frame is a Source backed by a go-gg table.
type Frame struct {
	tab        *table.Table
	categories map[string][]string
}

// NewFrame wraps t. A nil t yields an empty Frame.
func NewFrame(t *table.Table) *Frame {
	if t == nil {
		t = new(table.Table)
	}
	return &Frame{tab: t, categories: make(map[string][]string)}
}

// FromStructs builds a Frame from a slice of structs, one column per
// exported field.
func FromStructs(rows interface{}) *Frame {
	return NewFrame(table.TableFromStructs(rows))
}

// ReadCSV reads a CSV document with a header line. Columns whose
// values all parse as numbers become numeric columns.
func ReadCSV(r io.Reader) (*Frame, error) {
	rows, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("data: reading CSV: %w", err)
	}
	if len(rows) == 0 {
		return nil, errors.New("data: CSV input has no header")
	}
	return NewFrame(table.TableFromStrings(rows[0], rows[1:], true)), nil
}

// Table returns the underlying go-gg table.
func (f *Frame) Table() *table.Table { return f.tab }

func (f *Frame) Len() int          { return f.tab.Len() }
func (f *Frame) Columns() []string { return f.tab.Columns() }

func (f *Frame) Column(name string) interface{} { return f.tab.Column(name) }

func (f *Frame) Kind(name string) (Kind, error) {
	if f.tab.Column(name) == nil {
		return Categorical, &BindingError{Name: name, Columns: f.Columns()}
	}
	if _, ok := f.categories[name]; ok {
		return Categorical, nil
	}
	return KindOf(table.ColType(f.tab, name).Elem()), nil
}

func (f *Frame) Categories(name string) []string {
	return f.categories[name]
}

// SetCategories declares col to be categorical with the given level
// order. It returns f to allow chaining.
func (f *Frame) SetCategories(col string, levels ...string) *Frame {
	f.categories[col] = append([]string(nil), levels...)
	return f
}

// ParseTime converts the string column col into a datetime column
// using layout.
func (f *Frame) ParseTime(col, layout string) error {
	raw := f.tab.Column(col)
	if raw == nil {
		return &BindingError{Name: col, Columns: f.Columns()}
	}
	strs, ok := raw.([]string)
	if !ok {
		return fmt.Errorf("data: column %q is %T, not []string", col, raw)
	}
	times := make([]time.Time, len(strs))
	for i, s := range strs {
		t, err := time.Parse(layout, s)
		if err != nil {
			return fmt.Errorf("data: column %q row %d: %w", col, i, err)
		}
		times[i] = t
	}
	f.tab = table.NewBuilder(f.tab).Add(col, times).Done()
	return nil
}

func (f *Frame) Filter(keep func(i int) bool) Source {
	var idx []int
	for i := 0; i < f.Len(); i++ {
		if keep(i) {
			idx = append(idx, i)
		}
	}
	return f.Take(idx)
}

// Take returns a Frame holding the rows idx of f in the given order.
func (f *Frame) Take(idx []int) *Frame {
	if idx == nil {
		idx = []int{}
	}
	b := new(table.Builder)
	for _, col := range f.Columns() {
		b.Add(col, slice.Select(f.tab.Column(col), idx))
	}
	sub := NewFrame(b.Done())
	for k, v := range f.categories {
		sub.categories[k] = v
	}
	return sub
}

// Fprint prints f as an aligned text table to w.
func (f *Frame) Fprint(w io.Writer) {
	table.Fprint(w, f.tab)
}
