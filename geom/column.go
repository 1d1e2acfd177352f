package geom

import (
	"github.com/vdobler/livechart"
	"gonum.org/v1/plot/vg/draw"
)

// ----------------------------------------------------------------------------
// ColumnPointView

// ColumnPointView draws one point of a column series as a shape (by default
// a Rectangle) and an optional label.
//
// The shape is created on the first Draw, starting collapsed on the
// baseline, and is then animated towards each new geometry. Stroke and
// fill are taken from the series on every Draw; the corner radius only
// when the shape is created.
type ColumnPointView struct {
	// NewShape creates the shape of the column.
	NewShape func() Shape

	// NewLabel creates the data label.
	NewLabel func() Labeler

	Shape Shape
	Label Labeler

	view     livechart.ChartView
	surface  livechart.Surface
	animator livechart.Animator
	state    livechart.ViewState

	shapeAnims map[livechart.Property]*livechart.Animation
	labelAnims map[livechart.Property]*livechart.Animation
}

// NewColumnPointView returns a view drawing onto the surface of view.
func NewColumnPointView(view livechart.ChartView) (*ColumnPointView, error) {
	if err := livechart.CheckView(view); err != nil {
		return nil, err
	}

	var style draw.TextStyle
	if ls, ok := view.(LabelStyler); ok {
		style = ls.DataLabelStyle()
	}

	return &ColumnPointView{
		NewShape:   NewRectangle,
		NewLabel:   func() Labeler { return NewLabel(style) },
		view:       view,
		surface:    view.Surface(),
		animator:   view.Animator(),
		shapeAnims: make(map[livechart.Property]*livechart.Animation),
		labelAnims: make(map[livechart.Property]*livechart.Animation),
	}, nil
}

// NewView is a livechart.ViewFactory producing ColumnPointViews.
func NewView(view livechart.ChartView) (livechart.PointView, error) {
	v, err := NewColumnPointView(view)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// State returns the lifecycle state of v.
func (v *ColumnPointView) State() livechart.ViewState { return v.state }

func (v *ColumnPointView) check(point *livechart.ChartPoint) error {
	if v.state == livechart.Disposed {
		return livechart.ErrDisposed
	}
	if point == nil {
		return livechart.ErrNilPoint
	}
	return nil
}

// Draw implements livechart.PointView. The previous point is not needed:
// columns always move from their current geometry.
func (v *ColumnPointView) Draw(point, previous *livechart.ChartPoint, vm livechart.ColumnViewModel) error {
	if err := v.check(point); err != nil {
		return err
	}

	if v.Shape == nil {
		v.Shape = v.NewShape()
		if r, ok := v.Shape.(CornerRounder); ok && point.Series != nil {
			radius := point.Series.PointCornerRadius
			r.SetCornerRadius(radius, radius)
		}
		v.surface.Add(v.Shape)
		v.Shape.Set(livechart.Left, vm.Left)
		v.Shape.Set(livechart.Top, vm.Zero)
		v.Shape.Set(livechart.Width, vm.Width)
		v.Shape.Set(livechart.Height, 0)
		v.state = livechart.Drawn
		livechart.Logger.Debug("column created", "point", point.Key, "left", vm.Left, "zero", vm.Zero)
	}

	v.Shape.SetStyle(seriesStyle(point.Series))

	v.animate(v.Shape, v.shapeAnims, livechart.Left, vm.Left)
	v.animate(v.Shape, v.shapeAnims, livechart.Top, vm.Top)
	v.animate(v.Shape, v.shapeAnims, livechart.Width, vm.Width)
	v.animate(v.Shape, v.shapeAnims, livechart.Height, vm.Height)
	return nil
}

// DrawLabel implements livechart.PointView. A new label starts at the top
// center of the shape.
func (v *ColumnPointView) DrawLabel(point *livechart.ChartPoint, at livechart.Location) error {
	if err := v.check(point); err != nil {
		return err
	}

	if v.Label == nil {
		v.Label = v.NewLabel()
		if v.Shape != nil {
			v.Label.Set(livechart.Left, v.Shape.Get(livechart.Left)+v.Shape.Get(livechart.Width)/2)
			v.Label.Set(livechart.Top, v.Shape.Get(livechart.Top))
		}
		v.surface.Add(v.Label)
		v.state = livechart.Drawn
	}
	v.Label.Measure(point.PackAll())

	v.animate(v.Label, v.labelAnims, livechart.Left, at.X)
	v.animate(v.Label, v.labelAnims, livechart.Top, at.Y)
	return nil
}

// animate moves property p of target to to unless it is there already or
// a running animation is heading there.
func (v *ColumnPointView) animate(target livechart.Animatable, running map[livechart.Property]*livechart.Animation, p livechart.Property, to float64) {
	if a := running[p]; a != nil && !a.Done() {
		if a.To == to {
			return
		}
	} else if target.Get(p) == to {
		return
	}
	running[p] = v.animator.Animate(target, p, target.Get(p), to, v.view.AnimationsSpeed())
}

// Dispose implements livechart.PointView. Running animations are
// cancelled and both primitives are removed at once. Further calls do
// nothing.
func (v *ColumnPointView) Dispose() {
	if v.state == livechart.Disposed {
		return
	}
	for _, running := range []map[livechart.Property]*livechart.Animation{v.shapeAnims, v.labelAnims} {
		for p, a := range running {
			a.Cancel()
			delete(running, p)
		}
	}
	if v.Shape != nil {
		v.surface.Remove(v.Shape)
	}
	if v.Label != nil {
		v.surface.Remove(v.Label)
	}
	livechart.Logger.Debug("column disposed")
	v.state = livechart.Disposed
}

func seriesStyle(s *livechart.Series) BoxStyle {
	if s == nil {
		return BoxStyle{}
	}
	return BoxStyle{
		Fill: livechart.Solid(s.Fill),
		Border: draw.LineStyle{
			Color: livechart.Solid(s.Stroke),
			Width: s.StrokeWidth,
		},
	}
}
