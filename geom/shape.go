package geom

import (
	"image/color"
	"math"

	"github.com/vdobler/livechart"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// BoxStyle combines a line style for the border with a fill color for
// the interior of a shape.
type BoxStyle struct {
	Fill   color.Color
	Border draw.LineStyle
}

// Shape is an animatable primitive used to draw a point.
type Shape interface {
	livechart.Primitive
	livechart.Animatable

	Style() BoxStyle
	SetStyle(BoxStyle)
}

// CornerRounder is implemented by shapes with rounded corners.
type CornerRounder interface {
	SetCornerRadius(rx, ry float64)
	CornerRadius() (rx, ry float64)
}

// box holds the geometry and style shared by all shapes.
type box struct {
	Left, Top     float64
	Width, Height float64
	BoxStyle
}

func (b *box) Get(p livechart.Property) float64 {
	switch p {
	case livechart.Left:
		return b.Left
	case livechart.Top:
		return b.Top
	case livechart.Width:
		return b.Width
	case livechart.Height:
		return b.Height
	}
	panic("geom: unknown property " + p.String())
}

func (b *box) Set(p livechart.Property, v float64) {
	switch p {
	case livechart.Left:
		b.Left = v
	case livechart.Top:
		b.Top = v
	case livechart.Width:
		b.Width = v
	case livechart.Height:
		b.Height = v
	default:
		panic("geom: unknown property " + p.String())
	}
}

func (b *box) Style() BoxStyle     { return b.BoxStyle }
func (b *box) SetStyle(s BoxStyle) { b.BoxStyle = s }

// bounds returns the outline of b on c or false if b is empty.
func (b *box) bounds(c draw.Canvas) (vg.Rectangle, bool) {
	rect := CanonicRectangle(vg.Rectangle{
		Min: livechart.ToCanvas(c, b.Left, b.Top+b.Height),
		Max: livechart.ToCanvas(c, b.Left+b.Width, b.Top),
	})
	size := rect.Size()
	return rect, size.X > 0 && size.Y > 0
}

// inset shrinks rect so that a border of the given width is drawn inside.
func inset(rect vg.Rectangle, width vg.Length) (vg.Rectangle, bool) {
	w := 0.499 * width
	rect.Min.X += w
	rect.Min.Y += w
	rect.Max.X -= w
	rect.Max.Y -= w
	return rect, rect.Min.X < rect.Max.X && rect.Min.Y < rect.Max.Y
}

// paint fills and strokes the outline produced by path.
func (b *box) paint(c draw.Canvas, path func(vg.Rectangle) vg.Path) {
	rect, ok := b.bounds(c)
	if !ok {
		return
	}
	if b.Fill != nil {
		c.SetColor(b.Fill)
		c.Fill(path(rect))
	}
	if b.Border.Color == nil || b.Border.Width <= 0 {
		return
	}
	inner, ok := inset(rect, b.Border.Width)
	if !ok {
		return
	}
	c.SetLineStyle(b.Border)
	c.Stroke(path(inner))
}

// ----------------------------------------------------------------------------
// Rectangle

// Rectangle is a shape with optionally rounded corners.
// The border is drawn inside the rectangle.
type Rectangle struct {
	box
	RadiusX, RadiusY float64
}

// NewRectangle returns an empty rectangle.
func NewRectangle() Shape { return &Rectangle{} }

func (r *Rectangle) SetCornerRadius(rx, ry float64) { r.RadiusX, r.RadiusY = rx, ry }
func (r *Rectangle) CornerRadius() (rx, ry float64) { return r.RadiusX, r.RadiusY }

// Draw implements livechart.Primitive.
func (r *Rectangle) Draw(c draw.Canvas) {
	r.paint(c, func(rect vg.Rectangle) vg.Path {
		size := rect.Size()
		rx := math.Min(r.RadiusX, float64(size.X)/2)
		ry := math.Min(r.RadiusY, float64(size.Y)/2)
		return roundedPath(rect, vg.Length(rx), vg.Length(ry))
	})
}

const arcSteps = 8

// roundedPath returns the outline of rect with elliptic corners of radii
// rx and ry.
func roundedPath(rect vg.Rectangle, rx, ry vg.Length) vg.Path {
	if rx <= 0 || ry <= 0 {
		return rect.Path()
	}
	corners := []struct {
		cx, cy vg.Length
		start  float64
	}{
		{rect.Max.X - rx, rect.Min.Y + ry, -math.Pi / 2}, // bottom right
		{rect.Max.X - rx, rect.Max.Y - ry, 0},            // top right
		{rect.Min.X + rx, rect.Max.Y - ry, math.Pi / 2},  // top left
		{rect.Min.X + rx, rect.Min.Y + ry, math.Pi},      // bottom left
	}
	var p vg.Path
	for i, k := range corners {
		for j := 0; j <= arcSteps; j++ {
			a := k.start + float64(j)*math.Pi/2/arcSteps
			pt := vg.Point{
				X: k.cx + rx*vg.Length(math.Cos(a)),
				Y: k.cy + ry*vg.Length(math.Sin(a)),
			}
			if i == 0 && j == 0 {
				p.Move(pt)
			} else {
				p.Line(pt)
			}
		}
	}
	p.Close()
	return p
}

// ----------------------------------------------------------------------------
// Ellipse

// Ellipse is a shape filling its bounding box with an ellipse.
// It has no corners to round.
type Ellipse struct {
	box
}

// NewEllipse returns an empty ellipse.
func NewEllipse() Shape { return &Ellipse{} }

// Draw implements livechart.Primitive.
func (e *Ellipse) Draw(c draw.Canvas) {
	e.paint(c, ellipsePath)
}

func ellipsePath(rect vg.Rectangle) vg.Path {
	const steps = 4 * arcSteps
	size := rect.Size()
	rx, ry := size.X/2, size.Y/2
	cx, cy := rect.Min.X+rx, rect.Min.Y+ry
	var p vg.Path
	for j := 0; j < steps; j++ {
		a := float64(j) * 2 * math.Pi / steps
		pt := vg.Point{X: cx + rx*vg.Length(math.Cos(a)), Y: cy + ry*vg.Length(math.Sin(a))}
		if j == 0 {
			p.Move(pt)
		} else {
			p.Line(pt)
		}
	}
	p.Close()
	return p
}

// CanonicRectangle returns the canonical form of r, i.e. its Min points
// having smaller coordinates than its Max point.
func CanonicRectangle(r vg.Rectangle) vg.Rectangle {
	if r.Min.X > r.Max.X {
		r.Min.X, r.Max.X = r.Max.X, r.Min.X
	}
	if r.Min.Y > r.Max.Y {
		r.Min.Y, r.Max.Y = r.Max.Y, r.Min.Y
	}
	return r
}
