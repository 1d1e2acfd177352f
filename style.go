package livechart

import (
	"image/color"
	"math"

	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A Style controls how a Chart is drawn.
type Style struct {
	Background color.Color

	Title       draw.TextStyle
	TitleHeight vg.Length

	Panel struct {
		Background color.Color
		PadLeft    vg.Length // room for the y tick labels
		PadBottom  vg.Length // room for the x labels
		PadTop     vg.Length
		PadRight   vg.Length
	}

	Grid draw.LineStyle

	YAxis struct {
		Label draw.TextStyle
		Tick  draw.LineStyle
	}
	XAxis struct {
		Label draw.TextStyle
	}

	// DataLabel is the text style of point labels.
	DataLabel draw.TextStyle

	// StrokeWidth is used for series without an own stroke width.
	StrokeWidth vg.Length
}

// DefaultStyle returns a Style which mimics the appearance of ggplot2.
// The baseFontSize is the font size for tick labels, the title is a bit
// bigger, data labels a bit smaller.
func DefaultStyle(baseFontSize vg.Length) (Style, error) {
	scale := func(x vg.Length, f float64) vg.Length {
		return vg.Length(math.Round(f * float64(x)))
	}

	titleFont, err := vg.MakeFont("Helvetica-Bold", scale(baseFontSize, 1.2))
	if err != nil {
		return Style{}, err
	}
	baseFont, err := vg.MakeFont("Helvetica", baseFontSize)
	if err != nil {
		return Style{}, err
	}
	labelFont, err := vg.MakeFont("Helvetica", scale(baseFontSize, 1/1.2))
	if err != nil {
		return Style{}, err
	}

	s := Style{}
	s.Background = color.White

	s.Title.Color = color.Black
	s.Title.Font = titleFont
	s.Title.XAlign = draw.XCenter
	s.Title.YAlign = draw.YTop
	s.TitleHeight = scale(baseFontSize, 3)

	s.Panel.Background = color.Gray16{0xeeee}
	s.Panel.PadLeft = scale(baseFontSize, 4)
	s.Panel.PadBottom = scale(baseFontSize, 2)
	s.Panel.PadTop = scale(baseFontSize, 1)
	s.Panel.PadRight = scale(baseFontSize, 1)

	s.Grid.Color = color.White
	s.Grid.Width = vg.Length(1)

	s.YAxis.Label.Color = color.Black
	s.YAxis.Label.Font = baseFont
	s.YAxis.Label.XAlign = draw.XRight
	s.YAxis.Label.YAlign = -0.3 // draw.YCenter
	s.YAxis.Tick.Color = color.Gray16{0x1111}
	s.YAxis.Tick.Width = vg.Length(1)

	s.XAxis.Label.Color = color.Black
	s.XAxis.Label.Font = baseFont
	s.XAxis.Label.XAlign = draw.XCenter
	s.XAxis.Label.YAlign = draw.YTop

	s.DataLabel.Color = color.Gray16{0x3333}
	s.DataLabel.Font = labelFont
	s.DataLabel.XAlign = draw.XCenter
	s.DataLabel.YAlign = draw.YBottom

	s.StrokeWidth = vg.Length(1)

	return s, nil
}

// SeriesColor returns the default fill color of the i'th series.
func SeriesColor(i int) color.Color {
	return plotutil.Color(i)
}

// ColorMapColors samples n colors evenly from cm. The range of cm is reset
// to [0,1].
func ColorMapColors(cm palette.ColorMap, n int) ([]color.Color, error) {
	cm.SetMin(0)
	cm.SetMax(1)
	colors := make([]color.Color, n)
	for i := range colors {
		v := 0.5
		if n > 1 {
			v = float64(i) / float64(n-1)
		}
		c, err := cm.At(v)
		if err != nil {
			return nil, err
		}
		colors[i] = c
	}
	return colors, nil
}
