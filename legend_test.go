package facetgrid

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssembleLegendEmpty(t *testing.T) {
	assert.Empty(t, AssembleLegend(nil, nil, nil))
}

func TestAssembleLegendSingleChannel(t *testing.T) {
	hue, err := NewHueMapping(bind(t, tips(), "day"), HueConfig{})
	require.NoError(t, err)

	entries := AssembleLegend(hue, nil, nil)
	require.Len(t, entries, 4)
	for i, e := range entries {
		assert.False(t, e.Title)
		assert.Equal(t, HueChannel, e.Channel)
		assert.Equal(t, hue.Levels[i], e.Label)
		c, _ := hue.Color(e.Label)
		assert.Equal(t, c, e.Attrs.Color)
	}
}

func TestAssembleLegendGroups(t *testing.T) {
	src := tips()
	hue, err := NewHueMapping(bind(t, src, "day"), HueConfig{})
	require.NoError(t, err)
	style, err := NewStyleMapping(bind(t, src, "smoker"), StyleConfig{})
	require.NoError(t, err)

	entries := AssembleLegend(hue, nil, style)
	var labels []string
	var titles []bool
	for _, e := range entries {
		labels = append(labels, e.Label)
		titles = append(titles, e.Title)
	}
	assert.Equal(t, []string{"day", "Thur", "Fri", "Sat", "Sun", "smoker", "No", "Yes"}, labels)
	assert.Equal(t, []bool{true, false, false, false, false, true, false, false}, titles)
	assert.Equal(t, StyleChannel, entries[6].Channel)
	require.NotNil(t, entries[6].Attrs.Style)
	assert.Equal(t, "circle", entries[6].Attrs.Style.Name)
	assert.Equal(t, "square", entries[7].Attrs.Style.Name)
}

func TestAssembleLegendContinuous(t *testing.T) {
	src := tips()
	hue, err := NewHueMapping(bind(t, src, "total_bill"), HueConfig{})
	require.NoError(t, err)
	size, err := NewSizeMapping(bind(t, src, "tip"), SizeConfig{})
	require.NoError(t, err)

	entries := AssembleLegend(hue, size, nil)
	require.True(t, entries[0].Title)
	var prev float64
	seenSize := false
	for _, e := range entries[1:] {
		if e.Title {
			assert.Equal(t, "tip", e.Label)
			seenSize = true
			continue
		}
		x, err := strconv.ParseFloat(e.Label, 64)
		require.NoError(t, err, e.Label)
		if e.Channel == HueChannel {
			assert.True(t, x >= 10 && x <= 30, "hue tick %g", x)
			assert.NotNil(t, e.Attrs.Color)
			continue
		}
		assert.True(t, x >= 1 && x <= 5, "size tick %g", x)
		assert.Greater(t, float64(e.Attrs.Size), prev)
		prev = float64(e.Attrs.Size)
	}
	assert.True(t, seenSize)
}

func TestGridLegend(t *testing.T) {
	for _, tc := range []struct {
		name  string
		opts  Options
		calls int
	}{
		{"hue", Options{Hue: "smoker", Legend: LegendInside}, 1},
		{"hidden", Options{Hue: "smoker", HideLegend: true}, 0},
		{"no mapping", Options{}, 0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			rec := &recorder{}
			g, err := NewFacetGrid(tips(), tc.opts, rec)
			require.NoError(t, err)
			require.NoError(t, g.Map(Scatter, "total_bill", "tip"))
			require.NoError(t, g.Finalize())
			assert.Equal(t, tc.calls, rec.legends)
			if tc.calls > 0 {
				assert.Len(t, rec.legend, 2)
				assert.Equal(t, tc.opts.Legend, rec.placement)
			}
		})
	}
}
