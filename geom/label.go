package geom

import (
	"math"
	"strconv"

	"github.com/vdobler/livechart"
	"gonum.org/v1/plot/vg/draw"
)

// Labeler is an animatable primitive showing the data of a point.
type Labeler interface {
	livechart.Primitive
	livechart.Animatable

	// Measure sets the text from the payload and sizes the label.
	Measure(livechart.Payload)
}

// LabelStyler is implemented by chart views which provide a text style
// for data labels.
type LabelStyler interface {
	DataLabelStyle() draw.TextStyle
}

// Label is a text anchored at (Left, Top). How the text is placed relative
// to the anchor is determined by the alignment of Style.
type Label struct {
	Left, Top     float64
	Width, Height float64
	Text          string
	Style         draw.TextStyle

	// Format turns the payload into the text. Nil means the y value.
	Format func(livechart.Payload) string
}

// NewLabel returns an empty label drawn in style.
func NewLabel(style draw.TextStyle) *Label {
	return &Label{Style: style}
}

// FormatValue formats the y value of p in plain decimal notation with at
// most four decimals.
func FormatValue(p livechart.Payload) string {
	y := math.Round(p.Y*1e4) / 1e4
	if y == 0 {
		y = 0 // no "-0"
	}
	return strconv.FormatFloat(y, 'f', -1, 64)
}

func (l *Label) hasFont() bool { return l.Style.Font.Size > 0 }

// Measure implements Labeler.
func (l *Label) Measure(p livechart.Payload) {
	format := l.Format
	if format == nil {
		format = FormatValue
	}
	l.Text = format(p)
	l.Width, l.Height = 0, 0
	if l.hasFont() {
		l.Width = float64(l.Style.Width(l.Text))
		l.Height = float64(l.Style.Height(l.Text))
	}
}

func (l *Label) Get(p livechart.Property) float64 {
	switch p {
	case livechart.Left:
		return l.Left
	case livechart.Top:
		return l.Top
	case livechart.Width:
		return l.Width
	case livechart.Height:
		return l.Height
	}
	panic("geom: unknown property " + p.String())
}

func (l *Label) Set(p livechart.Property, v float64) {
	switch p {
	case livechart.Left:
		l.Left = v
	case livechart.Top:
		l.Top = v
	case livechart.Width:
		l.Width = v
	case livechart.Height:
		l.Height = v
	default:
		panic("geom: unknown property " + p.String())
	}
}

// Draw implements livechart.Primitive. Labels without font or text are
// not drawn.
func (l *Label) Draw(c draw.Canvas) {
	if l.Text == "" || !l.hasFont() {
		return
	}
	c.FillText(l.Style, livechart.ToCanvas(c, l.Left, l.Top), l.Text)
}
