package facetgrid

import (
	"fmt"
	"strings"

	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A StyleToken is one value of the style channel: a marker shape for
// points and a dash pattern for lines.
type StyleToken struct {
	Name   string
	Shape  draw.GlyphDrawer
	Dashes []vg.Length
}

var shapes = []struct {
	name  string
	shape draw.GlyphDrawer
}{
	{"circle", draw.CircleGlyph{}},
	{"square", draw.SquareGlyph{}},
	{"triangle", draw.TriangleGlyph{}},
	{"cross", draw.CrossGlyph{}},
	{"plus", draw.PlusGlyph{}},
	{"ring", draw.RingGlyph{}},
	{"box", draw.BoxGlyph{}},
	{"pyramid", draw.PyramidGlyph{}},
}

var dashes = map[string][]vg.Length{
	"solid":   nil,
	"dashed":  {vg.Points(6), vg.Points(2)},
	"dotted":  {vg.Points(1), vg.Points(2)},
	"dashdot": {vg.Points(6), vg.Points(2), vg.Points(1), vg.Points(2)},
	"long":    {vg.Points(10), vg.Points(3)},
}

// DefaultStyles returns one token per known marker shape, combined
// with gonum's default dash patterns.
func DefaultStyles() []StyleToken {
	toks := make([]StyleToken, len(shapes))
	for i, s := range shapes {
		toks[i] = StyleToken{Name: s.name, Shape: s.shape, Dashes: plotutil.Dashes(i)}
	}
	return toks
}

// ParseStyle parses a token of the form "shape" or "shape/dash",
// e.g. "square/dashed".
func ParseStyle(s string) (StyleToken, error) {
	shapeName, dashName := s, "solid"
	if i := strings.IndexByte(s, '/'); i >= 0 {
		shapeName, dashName = s[:i], s[i+1:]
	}
	tok := StyleToken{Name: s}
	for _, sh := range shapes {
		if sh.name == shapeName {
			tok.Shape = sh.shape
		}
	}
	if tok.Shape == nil {
		return tok, fmt.Errorf("unknown marker %q", shapeName)
	}
	d, ok := dashes[dashName]
	if !ok {
		return tok, fmt.Errorf("unknown dash pattern %q", dashName)
	}
	tok.Dashes = d
	return tok, nil
}

// ParseStyles parses every name with ParseStyle.
func ParseStyles(names []string) ([]StyleToken, error) {
	toks := make([]StyleToken, len(names))
	for i, n := range names {
		t, err := ParseStyle(n)
		if err != nil {
			return nil, err
		}
		toks[i] = t
	}
	return toks, nil
}
