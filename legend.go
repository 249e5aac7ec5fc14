package facetgrid

import (
	"strconv"
	"time"

	"github.com/vdobler/facetgrid/data"
	"gonum.org/v1/plot"
)

// A LegendEntry is one line of a legend.
type LegendEntry struct {
	Label   string
	Title   bool // channel sub-title without a thumbnail
	Channel Channel
	Attrs   Attrs
}

// AssembleLegend merges the mappings into legend entries grouped by
// channel in the order hue, size, style. Nil mappings are skipped. If
// more than one mapping is given every group starts with a title entry
// naming its variable. Discrete mappings contribute one entry per
// level, continuous ones one per major tick of their data range.
func AssembleLegend(hue *HueMapping, size *SizeMapping, style *StyleMapping) []LegendEntry {
	n := 0
	for _, active := range []bool{hue != nil, size != nil, style != nil} {
		if active {
			n++
		}
	}
	titled := n > 1

	var entries []LegendEntry
	group := func(ch Channel, v *data.Variable) {
		if titled {
			entries = append(entries, LegendEntry{Label: v.Name, Title: true, Channel: ch})
		}
	}

	if hue != nil {
		group(HueChannel, hue.Var)
		if hue.Continuous() {
			for _, t := range legendTicks(hue.Range) {
				entries = append(entries, LegendEntry{
					Label:   tickLabel(hue.Var, t),
					Channel: HueChannel,
					Attrs:   Attrs{Color: hue.Map(t.Value)},
				})
			}
		} else {
			for _, l := range hue.Levels {
				entries = append(entries, LegendEntry{
					Label:   l,
					Channel: HueChannel,
					Attrs:   Attrs{Label: l, Color: hue.table[l]},
				})
			}
		}
	}

	if size != nil {
		group(SizeChannel, size.Var)
		if size.Continuous() {
			for _, t := range legendTicks(size.Range) {
				entries = append(entries, LegendEntry{
					Label:   tickLabel(size.Var, t),
					Channel: SizeChannel,
					Attrs:   Attrs{Size: size.Map(t.Value)},
				})
			}
		} else {
			for _, l := range size.Levels {
				entries = append(entries, LegendEntry{
					Label:   l,
					Channel: SizeChannel,
					Attrs:   Attrs{Size: size.table[l]},
				})
			}
		}
	}

	if style != nil {
		group(StyleChannel, style.Var)
		for _, l := range style.Levels {
			tok := style.table[l]
			entries = append(entries, LegendEntry{
				Label:   l,
				Channel: StyleChannel,
				Attrs:   Attrs{Style: &tok},
			})
		}
	}
	return entries
}

// legendTicks returns the labeled ticks inside r.
func legendTicks(r Interval) []plot.Tick {
	if !r.Valid() {
		return nil
	}
	if r.Min == r.Max {
		return []plot.Tick{{Value: r.Min, Label: formatFloat(r.Min)}}
	}
	var ticks []plot.Tick
	for _, t := range (plot.DefaultTicks{}).Ticks(r.Min, r.Max) {
		if t.IsMinor() || t.Value < r.Min || t.Value > r.Max {
			continue
		}
		ticks = append(ticks, t)
	}
	return ticks
}

func tickLabel(v *data.Variable, t plot.Tick) string {
	if v.Kind == data.Datetime {
		return time.Unix(int64(t.Value), 0).UTC().Format("2006-01-02")
	}
	return t.Label
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', 4, 64)
}
