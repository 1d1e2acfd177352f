package geom

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vdobler/livechart"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/recorder"
)

func TestRectangleProperties(t *testing.T) {
	r := NewRectangle()
	for i, p := range livechart.Properties {
		r.Set(p, float64(i+1))
	}
	for i, p := range livechart.Properties {
		assert.Equal(t, float64(i+1), r.Get(p), p.String())
	}
	assert.Panics(t, func() { r.Get(livechart.Property(17)) })
}

func TestRectangleDraw(t *testing.T) {
	for _, tc := range []struct {
		name   string
		rect   *Rectangle
		wantOp bool
	}{
		{"collapsed", &Rectangle{box: box{Left: 10, Top: 55, Width: 20}}, false},
		{"filled", &Rectangle{box: box{Left: 10, Top: 5, Width: 20, Height: 50,
			BoxStyle: BoxStyle{Fill: color.White}}}, true},
		{"rounded", &Rectangle{box: box{Left: 10, Top: 5, Width: 20, Height: 50,
			BoxStyle: BoxStyle{Fill: color.White}}, RadiusX: 4, RadiusY: 4}, true},
		{"unstyled", &Rectangle{box: box{Left: 10, Top: 5, Width: 20, Height: 50}}, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			rec := &recorder.Canvas{}
			tc.rect.Draw(draw.NewCanvas(rec, 100, 100))
			assert.Equal(t, tc.wantOp, len(rec.Actions) > 0, "%d actions", len(rec.Actions))
		})
	}
}

func TestRoundedPath(t *testing.T) {
	rect := vg.Rectangle{Max: vg.Point{X: 20, Y: 50}}

	plain := roundedPath(rect, 0, 4)
	assert.Len(t, plain, len(rect.Path()))

	p := roundedPath(rect, 4, 4)
	assert.Len(t, p, 4*(arcSteps+1)+1)
	assert.Equal(t, vg.MoveComp, p[0].Type)
	assert.Equal(t, vg.CloseComp, p[len(p)-1].Type)
	for _, c := range p[:len(p)-1] {
		assert.True(t, c.Pos.X >= -1e-9 && c.Pos.X <= 20+1e-9, "x %v", c.Pos.X)
		assert.True(t, c.Pos.Y >= -1e-9 && c.Pos.Y <= 50+1e-9, "y %v", c.Pos.Y)
	}
}

func TestEllipseDraw(t *testing.T) {
	e := NewEllipse()
	e.Set(livechart.Width, 10)
	e.Set(livechart.Height, 10)
	e.SetStyle(BoxStyle{Fill: color.Black, Border: draw.LineStyle{Color: color.White, Width: 1}})
	rec := &recorder.Canvas{}
	e.Draw(draw.NewCanvas(rec, 100, 100))
	assert.NotEmpty(t, rec.Actions)
}

func TestCanonicRectangle(t *testing.T) {
	r := CanonicRectangle(vg.Rectangle{Min: vg.Point{X: 5, Y: 7}, Max: vg.Point{X: 1, Y: 2}})
	assert.Equal(t, vg.Rectangle{Min: vg.Point{X: 1, Y: 2}, Max: vg.Point{X: 5, Y: 7}}, r)
}

func TestFormatValue(t *testing.T) {
	for _, tc := range []struct {
		y    float64
		want string
	}{
		{50, "50"},
		{12345, "12345"},
		{-2.5, "-2.5"},
		{1.0 / 3, "0.3333"},
		{1e7, "10000000"},
		{-0.00001, "0"},
	} {
		t.Run(tc.want, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatValue(livechart.Payload{Y: tc.y}))
		})
	}
}

func TestLabelMeasureWithoutFont(t *testing.T) {
	l := NewLabel(draw.TextStyle{})
	l.Format = func(p livechart.Payload) string { return p.Series + ":" + p.Label }
	l.Measure(livechart.Payload{Series: "A", Label: "go", Y: 3})
	assert.Equal(t, "A:go", l.Text)
	assert.Equal(t, 0.0, l.Width)

	rec := &recorder.Canvas{}
	l.Draw(draw.NewCanvas(rec, 100, 100))
	assert.Empty(t, rec.Actions)
}
