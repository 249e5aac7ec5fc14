package facetgrid

import (
	"errors"
	"testing"

	"github.com/aclements/go-gg/table"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vdobler/facetgrid/data"
)

func TestDeclaredColumnOrder(t *testing.T) {
	rec := &recorder{}
	g, err := NewFacetGrid(tips(), Options{Col: "time"}, rec)
	require.NoError(t, err)

	l := g.Layout()
	assert.Equal(t, LevelSet{"Lunch", "Dinner"}, l.Cols)
	assert.Equal(t, 1, l.NRow)
	assert.Equal(t, 2, l.NCol)
	assert.Equal(t, "Lunch", g.Cell(0, 0).ID.Col)
	assert.Equal(t, []int{1, 4, 5, 8, 10}, g.Cell(0, 0).Index)
	assert.Equal(t, []int{0, 2, 3, 6, 7, 9, 11}, g.Cell(0, 1).Index)

	require.NoError(t, g.Map(Scatter, "total_bill", "tip"))
	require.NoError(t, g.Finalize())
	assert.Equal(t, "time = Lunch", rec.at(0, 0).title)
	assert.Equal(t, "time = Dinner", rec.at(0, 1).title)
}

func TestFirstAppearanceColumnOrder(t *testing.T) {
	src := data.NewFrame(new(table.Builder).
		Add("total_bill", []float64{20, 10, 25, 15}).
		Add("tip", []float64{3, 1, 4, 2}).
		Add("time", []string{"Lunch", "Dinner", "Lunch", "Dinner"}).
		Done())
	rec := &recorder{}
	g, err := NewFacetGrid(src, Options{Col: "time"}, rec)
	require.NoError(t, err)
	assert.Equal(t, LevelSet{"Lunch", "Dinner"}, g.Layout().Cols)
	assert.Equal(t, []int{0, 2}, g.Cell(0, 0).Index)

	require.NoError(t, g.Map(Scatter, "total_bill", "tip"))
	require.NoError(t, g.Finalize())
	assert.Equal(t, "time = Lunch", rec.at(0, 0).title)
	assert.Equal(t, []float64{20, 25}, rec.at(0, 0).calls[0].X)
}

func TestColWrap(t *testing.T) {
	rec := &recorder{}
	g, err := NewFacetGrid(levels(11), Options{Col: "g", ColWrap: 4}, rec)
	require.NoError(t, err)

	l := g.Layout()
	assert.Equal(t, 3, l.NRow)
	assert.Equal(t, 4, l.NCol)
	assert.Equal(t, 1, l.EmptyCells())
	assert.True(t, l.Cell(2, 3).Empty)
	assert.Equal(t, "L04", l.Cell(1, 0).ID.Col)
	assert.Equal(t, "L10", l.Cell(2, 2).ID.Col)

	require.NotNil(t, rec.fig)
	assert.Equal(t, 3, rec.fig.Rows)
	assert.Equal(t, 4, rec.fig.Cols)
	assert.True(t, rec.at(2, 3).hidden)
	assert.False(t, rec.at(2, 2).hidden)

	require.NoError(t, g.Map(Scatter, "x", "y"))
	require.NoError(t, g.Finalize())
	assert.Empty(t, rec.at(2, 3).calls)

	// Panels without a panel below carry the x label, the first
	// panel of each row the y label.
	assert.Equal(t, "x", rec.at(1, 3).xlabel)
	assert.Equal(t, "x", rec.at(2, 0).xlabel)
	assert.Equal(t, "", rec.at(0, 0).xlabel)
	assert.Equal(t, "y", rec.at(1, 0).ylabel)
	assert.Equal(t, "", rec.at(1, 1).ylabel)
}

func TestColWrapFewLevels(t *testing.T) {
	l, err := Resolve(levels(3), Options{Col: "g", ColWrap: 4})
	require.NoError(t, err)
	assert.Equal(t, 1, l.NRow)
	assert.Equal(t, 4, l.NCol)
	assert.Equal(t, 1, l.EmptyCells())
}

func TestConfigurationErrors(t *testing.T) {
	for _, tc := range []struct {
		name   string
		opts   Options
		option string
	}{
		{"row with col_wrap", Options{Row: "smoker", Col: "day", ColWrap: 2}, "col_wrap"},
		{"col_wrap without col", Options{ColWrap: 2}, "col_wrap"},
		{"negative col_wrap", Options{Col: "day", ColWrap: -1}, "col_wrap"},
		{"short xlim", Options{XLim: []float64{1}}, "xlim"},
		{"reversed ylim", Options{YLim: []float64{5, 1}}, "ylim"},
		{"negative height", Options{Height: -1}, "height"},
		{"negative aspect", Options{Aspect: -2}, "aspect"},
		{"duplicate order", Options{Col: "day", ColOrder: []string{"Fri", "Fri"}}, "col_order"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			rec := &recorder{}
			_, err := NewFacetGrid(tips(), tc.opts, rec)
			var ce *ConfigurationError
			require.True(t, errors.As(err, &ce), "got %v", err)
			assert.Equal(t, tc.option, ce.Option)
			assert.Zero(t, rec.subplots, "subplots created")
		})
	}
}

func TestBindingErrorBeforeSubplots(t *testing.T) {
	for _, opts := range []Options{{Col: "weekday"}, {Row: "weekday"}, {Hue: "weekday"}} {
		rec := &recorder{}
		_, err := NewFacetGrid(tips(), opts, rec)
		var be *DataBindingError
		require.True(t, errors.As(err, &be), "got %v", err)
		assert.Equal(t, "weekday", be.Name)
		assert.Zero(t, rec.subplots)
	}
}

func TestMaxLevels(t *testing.T) {
	for _, tc := range []struct {
		opts Options
		dim  string
	}{
		{Options{Col: "day", MaxLevels: 3}, "col"},
		{Options{Row: "day", MaxLevels: 3}, "row"},
		{Options{Hue: "day", MaxLevels: 3}, "hue"},
	} {
		rec := &recorder{}
		_, err := NewFacetGrid(tips(), tc.opts, rec)
		var tm *TooManyLevelsError
		require.True(t, errors.As(err, &tm), "got %v", err)
		assert.Equal(t, tc.dim, tm.Dim)
		assert.Equal(t, 4, tm.Levels)
		assert.Zero(t, rec.subplots)
	}

	_, err := NewFacetGrid(tips(), Options{Col: "day", MaxLevels: 4}, &recorder{})
	assert.NoError(t, err)
}

func TestResolveIdempotent(t *testing.T) {
	for _, opts := range []Options{
		{Col: "time"},
		{Row: "smoker", Col: "day"},
		{Col: "day", ColWrap: 3},
		{Row: "time", RowOrder: []string{"Dinner"}},
	} {
		a, err := Resolve(tips(), opts)
		require.NoError(t, err)
		b, err := Resolve(tips(), opts)
		require.NoError(t, err)
		if diff := cmp.Diff(a, b, cmpopts.IgnoreUnexported(Cell{})); diff != "" {
			t.Errorf("Resolve(%+v) not idempotent (-first +second):\n%s", opts, diff)
		}
	}
}

func TestRowColSubsets(t *testing.T) {
	l, err := Resolve(tips(), Options{Row: "smoker", Col: "time"})
	require.NoError(t, err)
	assert.Equal(t, LevelSet{"No", "Yes"}, l.Rows)
	assert.Equal(t, LevelSet{"Lunch", "Dinner"}, l.Cols)

	total := 0
	for _, row := range l.Cells {
		for _, c := range row {
			total += len(c.Index)
		}
	}
	assert.Equal(t, 12, total)
	assert.Equal(t, GroupID{Row: "Yes", Col: "Lunch"}, l.Cell(1, 0).ID)
	assert.Equal(t, []int{1, 4}, l.Cell(1, 0).Index)
}

func TestExplicitOrderSubset(t *testing.T) {
	l, err := Resolve(tips(), Options{Col: "time", ColOrder: []string{"Dinner", "Brunch"}})
	require.NoError(t, err)
	assert.Equal(t, 2, l.NCol)
	assert.Len(t, l.Cell(0, 0).Index, 7)
	assert.Empty(t, l.Cell(0, 1).Index)
}

func TestStateMachine(t *testing.T) {
	g, err := NewFacetGrid(tips(), Options{Col: "time"}, &recorder{})
	require.NoError(t, err)
	assert.Equal(t, LaidOut, g.State())
	assert.ErrorIs(t, g.Finalize(), ErrNotDrawn)
	assert.Equal(t, LaidOut, g.State())

	require.NoError(t, g.Map(Scatter, "total_bill", "tip"))
	assert.Equal(t, Drawn, g.State())
	require.NoError(t, g.Map(Line, "total_bill", "tip"))
	assert.Equal(t, Drawn, g.State())

	require.NoError(t, g.Finalize())
	assert.Equal(t, Finalized, g.State())
	assert.Equal(t, "finalized", g.State().String())

	assert.ErrorIs(t, g.Map(Scatter, "total_bill", "tip"), ErrFinalized)
	assert.ErrorIs(t, g.Finalize(), ErrFinalized)
}

func TestSharedAxes(t *testing.T) {
	for _, tc := range []struct {
		share   Share
		lunchX  Interval
		dinnerX Interval
	}{
		{ShareAll, Interval{9, 31}, Interval{9, 31}},
		{ShareNone, Interval{11.2, 28.8}, Interval{9, 31}},
	} {
		t.Run(tc.share.String(), func(t *testing.T) {
			rec := &recorder{}
			g, err := NewFacetGrid(tips(), Options{Col: "time", ShareX: tc.share}, rec)
			require.NoError(t, err)
			require.NoError(t, g.Map(Scatter, "total_bill", "tip"))

			// Limits are set only when finalizing.
			assert.False(t, rec.at(0, 0).xlim.Valid())

			require.NoError(t, g.Finalize())
			assert.True(t, near(tc.lunchX, rec.at(0, 0).xlim), "lunch %v", rec.at(0, 0).xlim)
			assert.True(t, near(tc.dinnerX, rec.at(0, 1).xlim), "dinner %v", rec.at(0, 1).xlim)
			assert.True(t, near(Interval{0.8, 5.2}, rec.at(0, 0).ylim), "y %v", rec.at(0, 0).ylim)
		})
	}
}

func TestFixedLimits(t *testing.T) {
	rec := &recorder{}
	g, err := NewFacetGrid(tips(), Options{Col: "time", ColOrder: []string{"Lunch", "Dinner", "Brunch"},
		ShareX: ShareNone, XLim: []float64{0, 50}, YLim: []float64{0, 10}}, rec)
	require.NoError(t, err)
	require.NoError(t, g.Map(Scatter, "total_bill", "tip"))
	require.NoError(t, g.Finalize())
	for col := 0; col < 3; col++ {
		assert.Equal(t, Interval{0, 50}, rec.at(0, col).xlim, "col %d", col)
		assert.Equal(t, Interval{0, 10}, rec.at(0, col).ylim, "col %d", col)
	}
}

func TestShareRowCol(t *testing.T) {
	rec := &recorder{}
	g, err := NewFacetGrid(tips(), Options{Row: "smoker", Col: "time", ShareX: ShareCol, ShareY: ShareRow}, rec)
	require.NoError(t, err)
	require.NoError(t, g.Map(Scatter, "total_bill", "tip"))
	require.NoError(t, g.Finalize())

	assert.Equal(t, rec.at(0, 0).xlim, rec.at(1, 0).xlim)
	assert.Equal(t, rec.at(0, 1).xlim, rec.at(1, 1).xlim)
	assert.NotEqual(t, rec.at(0, 0).xlim, rec.at(0, 1).xlim)
	assert.Equal(t, rec.at(0, 0).ylim, rec.at(0, 1).ylim)
	assert.NotEqual(t, rec.at(0, 0).ylim, rec.at(1, 0).ylim)
}

func TestMarginTitles(t *testing.T) {
	rec := &recorder{}
	g, err := NewFacetGrid(tips(), Options{Row: "smoker", Col: "time", MarginTitles: true}, rec)
	require.NoError(t, err)
	require.NoError(t, g.Map(Scatter, "total_bill", "tip"))
	require.NoError(t, g.Finalize())

	assert.Equal(t, "time = Lunch", rec.at(0, 0).title)
	assert.Equal(t, "time = Dinner", rec.at(0, 1).title)
	assert.Equal(t, "", rec.at(1, 0).title)
	assert.Equal(t, "smoker = No", rec.at(0, 1).rowTitle)
	assert.Equal(t, "smoker = Yes", rec.at(1, 1).rowTitle)
	assert.Equal(t, "", rec.at(1, 0).rowTitle)
}

func TestSetAxisLabels(t *testing.T) {
	rec := &recorder{}
	g, err := NewFacetGrid(tips(), Options{Col: "time"}, rec)
	require.NoError(t, err)
	g.SetAxisLabels("Total bill ($)", "Tip ($)")
	require.NoError(t, g.Map(Scatter, "total_bill", "tip"))
	require.NoError(t, g.Finalize())
	assert.Equal(t, "Total bill ($)", rec.at(0, 1).xlabel)
	assert.Equal(t, "Tip ($)", rec.at(0, 0).ylabel)
	assert.Equal(t, "", rec.at(0, 1).ylabel)
}

func TestFigureGeometry(t *testing.T) {
	rec := &recorder{}
	_, err := NewFacetGrid(tips(), Options{Col: "time", Aspect: 1.5, Title: "Tips"}, rec)
	require.NoError(t, err)
	assert.InDelta(t, 3*72, float64(rec.fig.Height), 1e-9)
	assert.InDelta(t, 4.5*72, float64(rec.fig.Width), 1e-9)
	assert.Equal(t, "Tips", rec.fig.Title)
}
