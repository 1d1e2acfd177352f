package livechart

import (
	"fmt"
	"math"
	"time"

	"github.com/vdobler/livechart/data"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ViewFactory creates the point view for one point.
type ViewFactory func(ChartView) (PointView, error)

// ----------------------------------------------------------------------------
// Chart

// Chart is a column chart of several series. It implements ChartView.
//
// Typical use is one Update after every data change and, in the render
// loop, one Tick followed by one Render per frame.
type Chart struct {
	Title  string
	Series []*Series

	XScale, YScale *Scale

	Style  Style
	Config Config

	// DefaultView is used for series without an own View factory.
	DefaultView ViewFactory

	layer     *Layer
	scheduler *Scheduler
	panel     Panel
	views     map[PointKey]PointView
	previous  map[PointKey]*ChartPoint
}

// NewChart creates an empty chart.
func NewChart(cfg Config) (*Chart, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	style, err := DefaultStyle(vg.Length(cfg.FontSize))
	if err != nil {
		return nil, fmt.Errorf("livechart: cannot load fonts: %w", err)
	}
	c := &Chart{
		Title:     cfg.Title,
		XScale:    NewDiscreteScale(),
		YScale:    NewScale(),
		Style:     style,
		Config:    cfg,
		layer:     NewLayer(),
		scheduler: NewScheduler(),
		views:     make(map[PointKey]PointView),
		previous:  make(map[PointKey]*ChartPoint),
	}
	return c, nil
}

// AnimationsSpeed implements ChartView.
func (c *Chart) AnimationsSpeed() time.Duration { return c.Config.AnimationsSpeed }

// Surface implements ChartView.
func (c *Chart) Surface() Surface {
	if c.layer == nil {
		return nil
	}
	return c.layer
}

// Animator implements ChartView.
func (c *Chart) Animator() Animator {
	if c.scheduler == nil {
		return nil
	}
	return c.scheduler
}

// DataLabelStyle returns the text style of data labels.
func (c *Chart) DataLabelStyle() draw.TextStyle { return c.Style.DataLabel }

// Layer returns the layer holding all primitives of c.
func (c *Chart) Layer() *Layer { return c.layer }

// Scheduler returns the scheduler animating the primitives of c.
func (c *Chart) Scheduler() *Scheduler { return c.scheduler }

// Panel returns the plot area computed by the last Update.
func (c *Chart) Panel() Panel { return c.panel }

// View returns the point view of the point with the given key or nil.
func (c *Chart) View(key PointKey) PointView { return c.views[key] }

// Views returns the number of live point views.
func (c *Chart) Views() int { return len(c.views) }

// Add appends series to c. Unset fill colors, corner radii and label
// settings are taken from the chart's defaults.
func (c *Chart) Add(series ...*Series) {
	for _, s := range series {
		if s.Fill == nil {
			s.Fill = SeriesColor(len(c.Series))
		}
		if s.Stroke != nil && s.StrokeWidth == 0 {
			s.StrokeWidth = c.Style.StrokeWidth
		}
		if s.PointCornerRadius == 0 {
			s.PointCornerRadius = c.Config.CornerRadius
		}
		if c.Config.Labels {
			s.DataLabels = true
		}
		c.Series = append(c.Series, s)
	}
}

// Remove drops s from c. Its views are disposed on the next Update.
func (c *Chart) Remove(s *Series) bool {
	for i, t := range c.Series {
		if t == s {
			c.Series = append(c.Series[:i], c.Series[i+1:]...)
			return true
		}
	}
	return false
}

// learnDataRange learns the data ranges of the x and y scale. The y scale
// always covers the baseline 0.
func (c *Chart) learnDataRange() {
	c.XScale.Reset()
	c.YScale.Reset()
	for _, s := range c.Series {
		if s.Data == nil || s.Data.Len() == 0 {
			continue
		}
		xmin, xmax, ymin, ymax := data.XYRange(s.Data)
		c.XScale.UpdateData(xmin, xmax)
		c.YScale.UpdateData(ymin, ymax)
	}
	if c.YScale.HasData() {
		c.YScale.UpdateData(0)
	}
}

// layout places the panel inside the chart area.
func (c *Chart) layout() {
	st := c.Style
	top := float64(st.Panel.PadTop)
	if c.Title != "" {
		top += float64(st.TitleHeight)
	}
	left := float64(st.Panel.PadLeft)
	c.panel = Panel{
		Left:   left,
		Top:    top,
		Width:  math.Max(0, c.Config.Width-left-float64(st.Panel.PadRight)),
		Height: math.Max(0, c.Config.Height-top-float64(st.Panel.PadBottom)),
		X:      c.XScale,
		Y:      c.YScale,
	}
}

func (c *Chart) view(p *ChartPoint) (PointView, error) {
	if v, ok := c.views[p.Key]; ok {
		return v, nil
	}
	factory := p.Series.View
	if factory == nil {
		factory = c.DefaultView
	}
	if factory == nil {
		return nil, fmt.Errorf("series %q: %w", p.Series.Title, ErrNoViewFactory)
	}
	v, err := factory(c)
	if err != nil {
		return nil, fmt.Errorf("series %q point %d: %w", p.Series.Title, p.Key.Index, err)
	}
	c.views[p.Key] = v
	Logger.Debug("point view created", "point", p.Key)
	return v, nil
}

// Update is the layout pass: it computes the geometry of every point,
// draws each point through its view and disposes the views of points
// which are gone.
func (c *Chart) Update() error {
	oldX, oldY := c.XScale.Interval, c.YScale.Interval
	c.learnDataRange()
	for _, s := range []*Scale{c.XScale, c.YScale} {
		s.autoscale()
		s.deDegenerate()
	}
	if !c.XScale.Interval.Equal(oldX) || !c.YScale.Interval.Equal(oldY) {
		Logger.Debug("rescaled", "x", c.XScale, "y", c.YScale)
	}
	c.layout()

	bg := NewBarGroups(c.Config.GroupGap, c.Config.BarGap, true)
	var points []*ChartPoint
	for _, s := range c.Series {
		for _, p := range s.Points() {
			bg.Record(p.X, len(points))
			points = append(points, p)
		}
	}

	seen := make(map[PointKey]bool, len(points))
	for i, p := range points {
		center, halfwidth := bg.Width(p.X, i)
		vm := c.panel.Column(center-halfwidth, center+halfwidth, p.Y)

		view, err := c.view(p)
		if err != nil {
			return err
		}
		if err := view.Draw(p, c.previous[p.Key], vm); err != nil {
			return fmt.Errorf("series %q point %d: %w", p.Series.Title, p.Key.Index, err)
		}
		if p.Series.DataLabels {
			at := Location{X: vm.Left + vm.Width/2, Y: vm.Top}
			if err := view.DrawLabel(p, at); err != nil {
				return fmt.Errorf("series %q label %d: %w", p.Series.Title, p.Key.Index, err)
			}
		}
		c.previous[p.Key] = p
		seen[p.Key] = true
	}

	for key, view := range c.views {
		if seen[key] {
			continue
		}
		view.Dispose()
		delete(c.views, key)
		delete(c.previous, key)
		Logger.Debug("point view disposed", "point", key)
	}
	return nil
}

// Tick advances all animations of c by delta and returns the number of
// animations still running.
func (c *Chart) Tick(delta time.Duration) int {
	return c.scheduler.Tick(delta)
}

// Clear disposes all point views of c.
func (c *Chart) Clear() {
	for key, view := range c.views {
		view.Dispose()
		delete(c.views, key)
	}
	c.previous = make(map[PointKey]*ChartPoint)
}

// categories returns the x label of each category.
func (c *Chart) categories() map[float64]string {
	labels := make(map[float64]string)
	for _, s := range c.Series {
		if s.Data == nil {
			continue
		}
		for i := 0; i < s.Data.Len(); i++ {
			x, _ := s.Data.XY(i)
			if l := s.Data.Label(i); l != "" && labels[x] == "" {
				labels[x] = l
			}
		}
	}
	return labels
}

// Render draws c onto dc. The top left corner of dc is the device origin.
func (c *Chart) Render(dc draw.Canvas) {
	st := c.Style
	if st.Background != nil {
		dc.SetColor(st.Background)
		dc.Fill(dc.Rectangle.Path())
	}

	if c.Title != "" {
		dc.FillText(st.Title, ToCanvas(dc, c.Config.Width/2, 0), c.Title)
	}

	p := c.panel
	area := vg.Rectangle{
		Min: ToCanvas(dc, p.Left, p.Bottom()),
		Max: ToCanvas(dc, p.Right(), p.Top),
	}
	if st.Panel.Background != nil {
		dc.SetColor(st.Panel.Background)
		dc.Fill(area.Path())
	}

	// Grid lines and tick labels on the y axis.
	for _, tick := range c.YScale.Ticks() {
		if !c.YScale.InRange(tick.Value) {
			continue
		}
		y := ToCanvas(dc, 0, p.MapY(tick.Value)).Y
		if st.Grid.Color != nil {
			dc.StrokeLine2(st.Grid, area.Min.X, y, area.Max.X, y)
		}
		if tick.IsMinor() {
			continue
		}
		if st.YAxis.Tick.Color != nil {
			dc.StrokeLine2(st.YAxis.Tick, area.Min.X-5, y, area.Min.X, y)
		}
		dc.FillText(st.YAxis.Label, vg.Point{X: area.Min.X - 7, Y: y}, tick.Label)
	}

	// Category labels on the x axis.
	for x, label := range c.categories() {
		if !c.XScale.InRange(x) {
			continue
		}
		pt := ToCanvas(dc, p.MapX(x), p.Bottom()+3)
		dc.FillText(st.XAxis.Label, pt, label)
	}

	c.layer.Draw(dc)
}
