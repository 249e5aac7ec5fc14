package facetgrid

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	ggpalette "github.com/aclements/go-gg/palette"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotutil"
)

// ColorBrewer schemes come in 3 to maxBrewer colors.
const maxBrewer = 12

var colorMaps = map[string]func() palette.ColorMap{
	"kindlmann":          func() palette.ColorMap { return moreland.Kindlmann() },
	"extendedkindlmann":  func() palette.ColorMap { return moreland.ExtendedKindlmann() },
	"blackbody":          func() palette.ColorMap { return moreland.BlackBody() },
	"extendedblackbody":  func() palette.ColorMap { return moreland.ExtendedBlackBody() },
	"smoothbluered":      func() palette.ColorMap { return moreland.SmoothBlueRed() },
	"smoothbluetan":      func() palette.ColorMap { return moreland.SmoothBlueTan() },
	"smoothgreenpurple":  func() palette.ColorMap { return moreland.SmoothGreenPurple() },
	"smoothgreenred":     func() palette.ColorMap { return moreland.SmoothGreenRed() },
	"smoothpurpleorange": func() palette.ColorMap { return moreland.SmoothPurpleOrange() },
}

// discreteColors returns the colors to cycle through for n levels.
// Explicit colors take precedence over the palette name.
func discreteColors(name string, colors []color.Color, n int) ([]color.Color, error) {
	if colors != nil {
		return colors, nil
	}
	if n < 1 {
		n = 1
	}
	key := strings.ToLower(name)
	switch {
	case key == "" || key == "default":
		return plotutil.DefaultColors, nil
	case strings.HasPrefix(key, "#"):
		return parseColors(name)
	case key == "heat":
		return palette.Heat(n, 1).Colors(), nil
	case key == "rainbow":
		return palette.Rainbow(n, palette.Red, palette.Magenta, 1, 1, 1).Colors(), nil
	case colorMaps[key] != nil:
		cm := colorMaps[key]()
		cm.SetMin(0)
		cm.SetMax(1)
		return cm.Palette(n).Colors(), nil
	}
	return brewerColors(name, n)
}

// brewerColors returns the ColorBrewer scheme name with up to n
// colors. Schemes with fewer colors are cycled by the caller.
func brewerColors(name string, n int) ([]color.Color, error) {
	if n > maxBrewer {
		n = maxBrewer
	}
	if n < 3 {
		n = 3
	}
	var lastErr error
	for k := n; k >= 3; k-- {
		p, err := brewer.GetPalette(brewer.TypeAny, name, k)
		if err == nil {
			return p.Colors(), nil
		}
		lastErr = err
	}
	return nil, fmt.Errorf("unknown palette %q: %v", name, lastErr)
}

// continuousPalette returns the gradient used for continuous hues.
func continuousPalette(name string, colors []color.Color) (ggpalette.Continuous, error) {
	if colors != nil {
		return gradient(colors)
	}
	key := strings.ToLower(name)
	switch {
	case key == "" || key == "default":
		return colorMapPalette(moreland.Kindlmann()), nil
	case strings.HasPrefix(key, "#"):
		cs, err := parseColors(name)
		if err != nil {
			return nil, err
		}
		return gradient(cs)
	case colorMaps[key] != nil:
		return colorMapPalette(colorMaps[key]()), nil
	}
	cs, err := brewerColors(name, 9)
	if err != nil {
		return nil, err
	}
	return gradient(cs)
}

func gradient(colors []color.Color) (ggpalette.Continuous, error) {
	if len(colors) == 0 {
		return nil, fmt.Errorf("empty palette")
	}
	g := ggpalette.RGBGradient{Colors: make([]color.RGBA, len(colors))}
	for i, c := range colors {
		g.Colors[i] = color.RGBAModel.Convert(c).(color.RGBA)
	}
	return g, nil
}

// colorMap adapts a gonum color map to a go-gg continuous palette.
type colorMap struct {
	cm palette.ColorMap
}

func colorMapPalette(cm palette.ColorMap) colorMap {
	cm.SetMin(0)
	cm.SetMax(1)
	return colorMap{cm}
}

func (c colorMap) Map(x float64) color.Color {
	x = math.Max(0, math.Min(1, x))
	col, err := c.cm.At(x)
	if err != nil {
		return color.Black
	}
	return col
}

// parseColors parses a comma separated list of #rrggbb or #rrggbbaa
// colors.
func parseColors(s string) ([]color.Color, error) {
	var cs []color.Color
	for _, f := range strings.Split(s, ",") {
		c, err := ParseColor(strings.TrimSpace(f))
		if err != nil {
			return nil, err
		}
		cs = append(cs, c)
	}
	return cs, nil
}

// ParseColor parses a color in #rrggbb or #rrggbbaa notation.
func ParseColor(s string) (color.Color, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 || hex == s {
		return nil, fmt.Errorf("bad color %q", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("bad color %q", s)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
