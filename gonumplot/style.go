package gonumplot

import (
	"image/color"
	"math"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A Style controls how a Figure is drawn.
type Style struct {
	Background color.Color

	Title       draw.TextStyle
	TitleHeight vg.Length

	Panel struct {
		Background color.Color
		PadX       vg.Length
		PadY       vg.Length
	}
	HStrip struct {
		Background color.Color
		Height     vg.Length
		draw.TextStyle
	}
	VStrip struct {
		Background color.Color
		Width      vg.Length
		draw.TextStyle
	}

	Grid struct {
		Major draw.LineStyle
	}

	Axis struct {
		Label     draw.TextStyle
		TickLabel draw.TextStyle
	}

	Geom struct {
		Color     color.Color
		Radius    vg.Length
		LineWidth vg.Length
		HistAlpha float64
	}

	Legend struct {
		Title draw.TextStyle
		Label draw.TextStyle

		ThumbnailWidth vg.Length
		Pad            vg.Length
	}
}

// DefaultStyle returns a Style which mimics the appearance of ggplot2.
// The baseFontSize is the font size for axis titles and strip labels, the title
// is a bit bigger, tick labels a bit smaller.
func DefaultStyle(baseFontSize vg.Length) Style {
	scale := func(x vg.Length, f float64) vg.Length {
		return vg.Length(math.Round(f * float64(x)))
	}

	titleFont, err := vg.MakeFont("Helvetica-Bold", scale(baseFontSize, 1.2))
	if err != nil {
		panic(err)
	}
	baseFont, err := vg.MakeFont("Helvetica", baseFontSize)
	if err != nil {
		panic(err)
	}
	tickFont, err := vg.MakeFont("Helvetica", scale(baseFontSize, 1/1.2))
	if err != nil {
		panic(err)
	}

	fs := Style{}
	fs.Background = color.White

	fs.TitleHeight = scale(baseFontSize, 3)
	fs.Title.Color = color.Black
	fs.Title.Font = titleFont
	fs.Title.XAlign = draw.XCenter
	fs.Title.YAlign = draw.YTop

	fs.Panel.Background = color.Gray16{0xeeee}
	fs.Panel.PadX = scale(baseFontSize, 0.5)
	fs.Panel.PadY = fs.Panel.PadX

	fs.HStrip.Background = color.Gray16{0xcccc}
	fs.HStrip.Color = color.Black
	fs.HStrip.Font = baseFont
	fs.HStrip.Height = scale(baseFontSize, 2)
	fs.HStrip.XAlign = draw.XCenter
	fs.HStrip.YAlign = -0.3 // draw.YCenter

	fs.VStrip.Background = color.Gray16{0xcccc}
	fs.VStrip.Color = color.Black
	fs.VStrip.Font = baseFont
	fs.VStrip.Width = scale(baseFontSize, 2)
	fs.VStrip.XAlign = draw.XCenter
	fs.VStrip.YAlign = -0.3 // draw.YCenter
	fs.VStrip.Rotation = -math.Pi / 2

	fs.Grid.Major.Color = color.White
	fs.Grid.Major.Width = vg.Length(1)

	fs.Axis.Label.Color = color.Black
	fs.Axis.Label.Font = baseFont
	fs.Axis.TickLabel.Color = color.Black
	fs.Axis.TickLabel.Font = tickFont

	fs.Geom.Color = color.RGBA{0x33, 0x66, 0x99, 0xff}
	fs.Geom.Radius = vg.Length(2.5)
	fs.Geom.LineWidth = vg.Length(1.5)
	fs.Geom.HistAlpha = 0.6

	fs.Legend.Title.Color = color.Black
	fs.Legend.Title.Font = baseFont
	fs.Legend.Label.Color = color.Black
	fs.Legend.Label.Font = tickFont
	fs.Legend.ThumbnailWidth = vg.Length(16)
	fs.Legend.Pad = scale(baseFontSize, 0.5)

	return fs
}
