package livechart

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
)

// ----------------------------------------------------------------------------
// Scale

// Scale is a generalized axis: it maps the range of the data to [0,1].
type Scale struct {
	// Title is the scale's title.
	Title string

	// Data is the range covered by actual data.
	Data Interval

	// Interval captures the range of this scale. It may be larger or
	// smaller than the actual Data range.
	Interval

	// ScaleType determines the fundamental nature of the scale.
	ScaleType ScaleType

	// Autoscaling can be used to control autoscaling of this scale.
	Autoscaling

	// Ticker is responsible for generating the ticks.
	Ticker plot.Ticker
}

// NewScale returns a new linear scale which autoscales to the actual data.
func NewScale() *Scale {
	s := &Scale{
		Data:      unsetInterval(),
		Interval:  unsetInterval(),
		ScaleType: Linear,
		Autoscaling: Autoscaling{
			MinRange: unsetInterval(),
			MaxRange: unsetInterval(),
		},
		Ticker: plot.DefaultTicks{},
	}
	s.Autoscaling.Expand.Relative = 0.05

	return s
}

// NewDiscreteScale returns a scale for category positions 0, 1, 2, ...
func NewDiscreteScale() *Scale {
	s := NewScale()
	s.ScaleType = Discrete
	s.Autoscaling.Expand.Relative = 0
	return s
}

// Map maps the interval [s.Min, s.Max] to [0, 1].
// Values outside of [s.Min, s.Max] are mapped to values < 0 or > 1.
// If s's Interval is degenerate or unset Map returns NaN.
func (s *Scale) Map(x float64) float64 {
	if math.IsNaN(s.Min) || math.IsNaN(s.Max) || s.Min == s.Max {
		return math.NaN()
	}
	return LinearTrans.Trans(s.Interval, unit, x)
}

// Reset forgets the learned data range and the autoscaled interval.
func (s *Scale) Reset() {
	s.Data = unsetInterval()
	s.Interval = unsetInterval()
}

// UpdateData updates s to cover i.
func (s *Scale) UpdateData(x ...float64) {
	s.Data.Update(x...)
}

// FixMin fixes the min of s to x. If x is NaN the min is determined by
// autoscaling to the actual data.
func (s *Scale) FixMin(x float64) {
	s.MinRange.Min = x
	s.MinRange.Max = x
}

// FixMax fixes the max of s to x. If x is NaN the max is determined by
// autoscaling to the actual data.
func (s *Scale) FixMax(x float64) {
	s.MaxRange.Min = x
	s.MaxRange.Max = x
}

// HasData reports whether the Data interval of s is valid.
func (s *Scale) HasData() bool {
	return !math.IsNaN(s.Data.Min) && !math.IsNaN(s.Data.Max)
}

// InRange reports whether x lies in the range of s.
func (s *Scale) InRange(x float64) bool {
	return x >= s.Min && x <= s.Max
}

// Ticks returns the ticks for the current range of s.
func (s *Scale) Ticks() []plot.Tick {
	if s.Ticker == nil || math.IsNaN(s.Min) || math.IsNaN(s.Max) {
		return nil
	}
	return s.Ticker.Ticks(s.Min, s.Max)
}

func (s *Scale) String() string {
	if s == nil {
		return "<nil>"
	}
	return fmt.Sprintf("Range=[%.2f:%.2f] Data=[%.2f:%.2f] %s %q",
		s.Min, s.Max, s.Data.Min, s.Data.Max, s.ScaleType, s.Title)
}

// autoscale turns the data range into an actual scale range.
func (s *Scale) autoscale() {
	if !s.HasData() {
		return
	}

	ext := s.Expand.Relative*(s.Data.Max-s.Data.Min) + s.Expand.Absolute
	if s.ScaleType == Discrete {
		ext += 0.5
	}

	// Determine the left edge of s.
	if s.MinRange.Min == s.MinRange.Max {
		// Degenerate MinRange interval and non NaN:
		// The user has set a fixed Min.
		s.Min = s.MinRange.Min
	} else {
		s.Min = s.Data.Min - ext

		// Clip autoscaling
		if s.MinRange.Min > s.Min {
			s.Min = s.MinRange.Min
		}
		if s.MinRange.Max < s.Min {
			s.Min = s.MinRange.Max
		}
	}

	// Determine the right edge of s.
	if s.MaxRange.Min == s.MaxRange.Max {
		s.Max = s.MaxRange.Min
	} else {
		s.Max = s.Data.Max + ext

		if s.MaxRange.Min > s.Max {
			s.Max = s.MaxRange.Min
		}
		if s.MaxRange.Max < s.Max {
			s.Max = s.MaxRange.Max
		}
	}
}

// deDegenerate makes sure s has a usable, non-empty range.
func (s *Scale) deDegenerate() {
	if math.IsNaN(s.Min) {
		s.Min = -1
	}
	if math.IsNaN(s.Max) {
		s.Max = 1
	}
	if s.Min == s.Max {
		s.Min--
		s.Max++
	}
}

// ----------------------------------------------------------------------------
// Interval

// Interval represents a (potentially degenerate) real interval.
// Both edges of the interval may be NaN indicating this edge is not
// set determined.
type Interval struct {
	Min, Max float64
}

func unsetInterval() Interval {
	return Interval{math.NaN(), math.NaN()}
}

// Update expands i to include x.
func (i *Interval) Update(x ...float64) {
	for _, v := range x {
		if math.IsNaN(v) {
			continue
		}
		if !(i.Min < v) {
			i.Min = v
		}
		if !(i.Max > v) {
			i.Max = v
		}
	}
}

// Equal reports whether i and j have the same edges. Two unset (NaN)
// edges are equal.
func (i *Interval) Equal(j Interval) bool {
	return sameEdge(i.Min, j.Min) && sameEdge(i.Max, j.Max)
}

func sameEdge(a, b float64) bool {
	return a == b || (math.IsNaN(a) && math.IsNaN(b))
}

// ----------------------------------------------------------------------------
// ScaleType

// ScaleType selects one of the known scale types.
type ScaleType int

// String returns the type of st.
func (st ScaleType) String() string {
	return []string{"linear", "discrete"}[int(st)]
}

const (
	Linear ScaleType = iota
	Discrete
)

// ----------------------------------------------------------------------------
// Autoscaling

// Autoscaling controls how the min and max value of a scale are scaled.
// Setting a range to a degenerate interval [f:f] will turn of autoscaling
// and fix the value to f. A non-degenerate range [u:v] will allow autoscaling
// between u and v. A NaN value works like -Inf for u and +Inf for v.
type Autoscaling struct {
	// Expand determines how much the actual data range is expanded.
	Expand struct {
		Absolute float64
		Relative float64
	}

	MinRange Interval // MinRange determines the allowed range of the Min of a scale.
	MaxRange Interval // MaxRange determines the allowed range of the Max of a scale.
}
