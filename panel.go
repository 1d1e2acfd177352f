package livechart

import "math"

// ----------------------------------------------------------------------------
// Panel

// A Panel is the plot area of a chart: a rectangle in device units with
// its origin in the top left corner of the chart.
type Panel struct {
	Left, Top     float64
	Width, Height float64

	X, Y *Scale
}

// Right returns the right edge of p.
func (p Panel) Right() float64 { return p.Left + p.Width }

// Bottom returns the bottom edge of p.
func (p Panel) Bottom() float64 { return p.Top + p.Height }

// MapX maps the data coordinate x to a horizontal device position.
func (p Panel) MapX(x float64) float64 {
	return LinearTrans.Trans(unit, Interval{p.Left, p.Right()}, p.X.Map(x))
}

// MapY maps the data coordinate y to a vertical device position.
// Larger values end up further up, i.e. at smaller device positions.
func (p Panel) MapY(y float64) float64 {
	return LinearTrans.Trans(unit, Interval{p.Bottom(), p.Top}, p.Y.Map(y))
}

// Column returns the view model of a column spanning [x0,x1] in x and
// standing on (or hanging from) y=0 up (or down) to y.
func (p Panel) Column(x0, x1, y float64) ColumnViewModel {
	left, right := p.MapX(x0), p.MapX(x1)
	zero := p.MapY(clamp(0, p.Y.Min, p.Y.Max))
	end := p.MapY(y)

	vm := ColumnViewModel{
		Left:  math.Min(left, right),
		Width: math.Abs(right - left),
		Zero:  zero,
	}
	if end <= zero {
		vm.Top, vm.Height = end, zero-end
	} else {
		// Negative value: the column hangs from the baseline.
		vm.Top, vm.Height = zero, end-zero
	}
	return vm
}

func clamp(v, min, max float64) float64 {
	return math.Max(min, math.Min(max, v))
}
