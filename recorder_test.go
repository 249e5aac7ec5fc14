package facetgrid

import (
	"fmt"
	"math"

	"github.com/aclements/go-gg/table"
	"github.com/vdobler/facetgrid/data"
)

// tips is a small excerpt in the shape of the classic restaurant tips
// data set. The first row is a dinner but time declares Lunch first.
func tips() *data.Frame {
	f := data.NewFrame(new(table.Builder).
		Add("total_bill", []float64{10, 20, 15, 30, 25, 12, 18, 22, 28, 16, 14, 24}).
		Add("tip", []float64{1, 3, 2, 5, 4, 1.5, 2.5, 3.5, 4.5, 2, 1.8, 3}).
		Add("day", []string{"Thur", "Fri", "Sat", "Sun", "Thur", "Fri", "Sat", "Sun", "Thur", "Fri", "Sat", "Sun"}).
		Add("time", []string{"Dinner", "Lunch", "Dinner", "Dinner", "Lunch", "Lunch", "Dinner", "Dinner", "Lunch", "Dinner", "Lunch", "Dinner"}).
		Add("size", []int{2, 3, 2, 4, 1, 2, 3, 2, 6, 2, 5, 3}).
		Add("smoker", []string{"No", "Yes", "No", "No", "Yes", "No", "Yes", "No", "No", "Yes", "No", "Yes"}).
		Done())
	return f.SetCategories("time", "Lunch", "Dinner")
}

// sixLevels has a kind column with six levels a to f.
func sixLevels() *data.Frame {
	kinds := []string{"a", "b", "c", "d", "e", "f", "a", "b", "c", "d", "e", "f"}
	x := make([]float64, len(kinds))
	for i := range x {
		x[i] = float64(i)
	}
	return data.NewFrame(new(table.Builder).
		Add("kind", kinds).
		Add("x", x).
		Add("y", x).
		Done())
}

// levels returns a frame whose column g has n levels L00, L01, ...
// with two observations each.
func levels(n int) *data.Frame {
	var g []string
	var x []float64
	for i := 0; i < 2*n; i++ {
		g = append(g, fmt.Sprintf("L%02d", i%n))
		x = append(x, float64(i))
	}
	return data.NewFrame(new(table.Builder).Add("g", g).Add("x", x).Add("y", x).Done())
}

// ----------------------------------------------------------------------------
// recorder

type pos struct{ Row, Col int }

type drawCall struct {
	Kind  string
	X, Y  []float64
	Attrs Attrs
}

// recorder is a Renderer keeping track of everything asked of it.
type recorder struct {
	fig       *FigureOptions
	subplots  int
	surfaces  [][]*recSurface
	draws     []pos
	legend    []LegendEntry
	placement LegendPlacement
	legends   int

	failOn *pos // Scatter on this panel fails
}

func (r *recorder) Subplots(fo FigureOptions) error {
	r.subplots++
	r.fig = &fo
	r.surfaces = make([][]*recSurface, fo.Rows)
	for i := range r.surfaces {
		r.surfaces[i] = make([]*recSurface, fo.Cols)
		for j := range r.surfaces[i] {
			r.surfaces[i][j] = &recSurface{rec: r, at: pos{i, j},
				x: unsetInterval(), y: unsetInterval(), xlim: unsetInterval(), ylim: unsetInterval()}
		}
	}
	return nil
}

func (r *recorder) Surface(row, col int) Surface { return r.surfaces[row][col] }

func (r *recorder) Legend(entries []LegendEntry, p LegendPlacement) error {
	r.legends++
	r.legend, r.placement = entries, p
	return nil
}

func (r *recorder) at(row, col int) *recSurface { return r.surfaces[row][col] }

type recSurface struct {
	rec *recorder
	at  pos

	calls           []drawCall
	title, rowTitle string
	xlabel, ylabel  string
	timeX, timeY    bool
	catX, catY      LevelSet
	x, y            Interval
	xlim, ylim      Interval
	hidden          bool
}

func (s *recSurface) record(kind string, x, y []float64, a Attrs) {
	s.rec.draws = append(s.rec.draws, s.at)
	s.calls = append(s.calls, drawCall{kind, x, y, a})
	s.x.Update(x...)
	s.y.Update(y...)
}

func (s *recSurface) Scatter(x, y []float64, a Attrs) error {
	if f := s.rec.failOn; f != nil && *f == s.at {
		return fmt.Errorf("scatter failed")
	}
	s.record("scatter", x, y, a)
	return nil
}

func (s *recSurface) Line(x, y []float64, a Attrs) error {
	s.record("line", x, y, a)
	return nil
}

func (s *recSurface) Hist(x []float64, a Attrs) error {
	s.record("hist", x, []float64{0, float64(len(x))}, a)
	return nil
}

func (s *recSurface) SetTitle(t string)    { s.title = t }
func (s *recSurface) SetRowTitle(t string) { s.rowTitle = t }
func (s *recSurface) SetLabels(x, y string) {
	s.xlabel, s.ylabel = x, y
}

func (s *recSurface) SetTimeAxis(x, y bool) {
	s.timeX = s.timeX || x
	s.timeY = s.timeY || y
}

func (s *recSurface) SetCategoryAxis(x, y LevelSet) {
	if x != nil {
		s.catX = x
	}
	if y != nil {
		s.catY = y
	}
}

func (s *recSurface) DataRange() (x, y Interval) { return s.x, s.y }

func (s *recSurface) SetLimits(x, y Interval) {
	if x.Valid() {
		s.xlim = x
	}
	if y.Valid() {
		s.ylim = y
	}
}

func (s *recSurface) Hide() { s.hidden = true }

func (s *recSurface) points() int {
	n := 0
	for _, c := range s.calls {
		n += len(c.X)
	}
	return n
}

func near(a, b Interval) bool {
	return math.Abs(a.Min-b.Min) < 1e-9 && math.Abs(a.Max-b.Max) < 1e-9
}
