package livechart

import (
	"fmt"
	"image/color"
	"time"

	"github.com/google/uuid"
	"github.com/vdobler/livechart/data"
	"gonum.org/v1/plot/vg"
)

// ----------------------------------------------------------------------------
// Series

// Series is one set of records drawn as columns.
//
// Stroke, Fill and StrokeWidth are read by the point views on every draw,
// PointCornerRadius only when a view creates its shape.
type Series struct {
	ID    uuid.UUID
	Title string
	Data  data.XYLabeler

	Stroke            color.Color
	Fill              color.Color
	StrokeWidth       vg.Length
	PointCornerRadius float64

	// DataLabels turns on a label above each column.
	DataLabels bool

	// View creates the point view for one point of this series.
	View func(ChartView) (PointView, error)
}

// NewSeries returns a series with a fresh random ID.
func NewSeries(title string, d data.XYLabeler) *Series {
	return &Series{
		ID:    uuid.New(),
		Title: title,
		Data:  d,
	}
}

// Points returns the chart points of s in data order.
func (s *Series) Points() []*ChartPoint {
	if s.Data == nil {
		return nil
	}
	points := make([]*ChartPoint, s.Data.Len())
	for i := range points {
		x, y := s.Data.XY(i)
		points[i] = &ChartPoint{
			Key:    PointKey{Series: s.ID, Index: i},
			Series: s,
			X:      x,
			Y:      y,
			Label:  s.Data.Label(i),
		}
	}
	return points
}

// ----------------------------------------------------------------------------
// ChartPoint

// PointKey identifies a point across layout passes.
type PointKey struct {
	Series uuid.UUID
	Index  int
}

func (k PointKey) String() string {
	return fmt.Sprintf("%s/%d", k.Series, k.Index)
}

// ChartPoint associates one record of a series with its coordinate.
// A fresh ChartPoint is produced on every layout pass.
type ChartPoint struct {
	Key    PointKey
	Series *Series
	X, Y   float64
	Label  string
}

// Payload is the full data carried by a point, used to size labels.
type Payload struct {
	Series string
	Label  string
	X, Y   float64
}

// PackAll returns the full data payload of p.
func (p *ChartPoint) PackAll() Payload {
	pl := Payload{Label: p.Label, X: p.X, Y: p.Y}
	if p.Series != nil {
		pl.Series = p.Series.Title
	}
	return pl
}

// ----------------------------------------------------------------------------
// View models

// ColumnViewModel is the geometry of one column in device units. The origin
// is the top left corner of the chart, y grows downwards. Zero is the
// vertical position of the baseline.
type ColumnViewModel struct {
	Left, Top     float64
	Width, Height float64
	Zero          float64
}

// Location is a point in device units.
type Location struct {
	X, Y float64
}

// ----------------------------------------------------------------------------
// Views

// ChartView is what a point view needs from its chart.
type ChartView interface {
	// AnimationsSpeed is the duration of all transitions.
	AnimationsSpeed() time.Duration

	// Surface is where primitives get added and removed.
	Surface() Surface

	// Animator schedules property transitions.
	Animator() Animator
}

// PointView renders one chart point.
type PointView interface {
	Draw(point, previous *ChartPoint, vm ColumnViewModel) error
	DrawLabel(point *ChartPoint, at Location) error
	Dispose()
}

// ViewState is the lifecycle state of a point view.
type ViewState int

const (
	Uninitialized ViewState = iota
	Drawn
	Disposed
)

func (s ViewState) String() string {
	names := []string{"uninitialized", "drawn", "disposed"}
	if s < 0 || int(s) >= len(names) {
		return fmt.Sprintf("ViewState(%d)", int(s))
	}
	return names[s]
}

// CheckView reports whether view can serve point views.
func CheckView(view ChartView) error {
	if view == nil {
		return ErrNoView
	}
	if view.Surface() == nil {
		return fmt.Errorf("%T: %w", view, ErrNoSurface)
	}
	if view.Animator() == nil {
		return fmt.Errorf("%T: %w", view, ErrNoAnimator)
	}
	return nil
}

// Solid converts c to a solid color. A nil color becomes transparent.
func Solid(c color.Color) color.NRGBA {
	if c == nil {
		return color.NRGBA{}
	}
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}
