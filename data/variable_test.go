package data

import (
	"errors"
	"math"
	"strconv"
	"testing"
	"time"

	"github.com/aclements/go-gg/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFrame() *Frame {
	day := func(d int) time.Time { return time.Date(2020, 3, d, 0, 0, 0, 0, time.UTC) }
	return NewFrame(new(table.Builder).
		Add("time", []string{"Lunch", "Dinner", "Dinner", "Lunch"}).
		Add("size", []int{3, 1, 2, 1}).
		Add("tip", []float64{1.5, math.NaN(), 0.5, 2}).
		Add("when", []time.Time{day(2), day(1), day(3), day(1)}).
		Done())
}

func TestBindMissing(t *testing.T) {
	_, err := Bind(testFrame(), "smoker")
	var be *BindingError
	require.True(t, errors.As(err, &be))
	assert.Equal(t, "smoker", be.Name)
}

var observedTests = []struct {
	col  string
	kind Kind
	want []string
}{
	{"time", Categorical, []string{"Lunch", "Dinner"}},
	{"size", Continuous, []string{"1", "2", "3"}},
	{"tip", Continuous, []string{"0.5", "1.5", "2"}},
	{"when", Datetime, []string{"2020-03-01", "2020-03-02", "2020-03-03"}},
}

func TestObserved(t *testing.T) {
	f := testFrame()
	for i, tc := range observedTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			v, err := Bind(f, tc.col)
			require.NoError(t, err)
			assert.Equal(t, tc.kind, v.Kind)
			assert.Equal(t, tc.want, v.Observed())
			assert.Equal(t, 4, v.Len())
		})
	}
}

func TestVariableValues(t *testing.T) {
	f := testFrame()

	size, err := Bind(f, "size")
	require.NoError(t, err)
	assert.True(t, size.Numeric())
	assert.Equal(t, []float64{1, 3}, size.Select([]int{1, 0}))
	lo, hi := size.Range()
	assert.Equal(t, 1.0, lo)
	assert.Equal(t, 3.0, hi)

	tim, err := Bind(f, "time")
	require.NoError(t, err)
	assert.False(t, tim.Numeric())
	assert.True(t, math.IsNaN(tim.Value(0)))
	lo, _ = tim.Range()
	assert.True(t, math.IsNaN(lo))

	when, err := Bind(f, "when")
	require.NoError(t, err)
	assert.Equal(t, float64(time.Date(2020, 3, 2, 0, 0, 0, 0, time.UTC).Unix()), when.Value(0))
}

func TestBindDeclared(t *testing.T) {
	f := testFrame().SetCategories("time", "Dinner", "Lunch")
	v, err := Bind(f, "time")
	require.NoError(t, err)
	assert.Equal(t, []string{"Dinner", "Lunch"}, v.Declared())
	assert.Equal(t, "Lunch", v.Label(0))
}
