// Transformations and easing
//
// Transformations map one interval onto another. They are used to map data
// to device coordinates and to interpolate animated properties.
package livechart

import "math"

// A Transformation bundles two functions Trans and Inverse together.
// The two functions map two intervals.
type Transformation struct {
	Name    string
	Trans   func(from, to Interval, x float64) float64
	Inverse func(from, to Interval, y float64) float64
}

// LinearTrans implements a linear mapping of from to to.
var LinearTrans = Transformation{
	Name: "Linear",
	Trans: func(from, to Interval, x float64) float64 {
		return to.Min + (to.Max-to.Min)*(x-from.Min)/(from.Max-from.Min)
	},
	Inverse: func(from, to Interval, y float64) float64 {
		return from.Min + (from.Max-from.Min)*(y-to.Min)/(to.Max-to.Min)
	},
}

// SqrtTrans implements a square root transformation. Mapped onto [0,1]
// it starts fast and slows down.
var SqrtTrans = Transformation{
	Name: "SquareRoot",
	Trans: func(from, to Interval, x float64) float64 {
		area := Interval{to.Min * to.Min, to.Max * to.Max}
		return math.Sqrt(LinearTrans.Trans(from, area, x))
	},
	Inverse: func(from, to Interval, y float64) float64 {
		area := Interval{to.Min * to.Min, to.Max * to.Max}
		return LinearTrans.Inverse(from, area, y*y)
	},
}

// ----------------------------------------------------------------------------
// Easing

// Easing maps the elapsed fraction t ∈ [0,1] of an animation to the
// covered fraction of the distance.
type Easing func(t float64) float64

var unit = Interval{0, 1}

var (
	// EaseLinear moves at constant speed.
	EaseLinear Easing = func(t float64) float64 { return t }

	// EaseOut decelerates towards the end.
	EaseOut Easing = func(t float64) float64 {
		return SqrtTrans.Trans(unit, unit, t)
	}

	// EaseInOut accelerates first and decelerates towards the end.
	EaseInOut Easing = func(t float64) float64 {
		if t < 0.5 {
			return 2 * t * t
		}
		return 1 - 2*(1-t)*(1-t)
	}
)

// interpolate returns the value between from and to after the fraction t
// of the animation eased by e.
func interpolate(e Easing, from, to, t float64) float64 {
	if t <= 0 {
		return from
	}
	if t >= 1 {
		return to
	}
	if e == nil {
		e = EaseLinear
	}
	return LinearTrans.Trans(unit, Interval{from, to}, e(t))
}
