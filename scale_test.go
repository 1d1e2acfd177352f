package livechart

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

var nan = math.NaN()

var intervalUpdateTests = []struct {
	old  Interval
	x    float64
	want Interval
}{
	{Interval{3, 6}, 4, Interval{3, 6}},
	{Interval{3, 6}, 2, Interval{2, 6}},
	{Interval{3, 6}, 7, Interval{3, 7}},
	{Interval{nan, nan}, nan, Interval{nan, nan}},
	{Interval{nan, nan}, 5, Interval{5, 5}},
	{Interval{5, 5}, nan, Interval{5, 5}},
}

func TestIntervalUpdate(t *testing.T) {
	for i, tc := range intervalUpdateTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			got := tc.old
			got.Update(tc.x)
			if !got.Equal(tc.want) {
				t.Errorf("%v update %v = %v, want %v",
					tc.old, tc.x, got, tc.want)
			}
		})
	}
}

func TestIntervalEqual(t *testing.T) {
	for i, tc := range []struct {
		a, b Interval
		want bool
	}{
		{Interval{1, 2}, Interval{1, 2}, true},
		{Interval{1, 2}, Interval{1, 3}, false},
		{Interval{nan, nan}, Interval{nan, nan}, true},
		{Interval{nan, 2}, Interval{nan, 3}, false},
		{Interval{nan, 2}, Interval{nan, 2}, true},
		{Interval{1, nan}, Interval{1, 2}, false},
	} {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.Equal(tc.b))
		})
	}
}

var autoscaleTests = []struct {
	name     string
	scale    func() *Scale
	data     []float64
	min, max float64
}{
	{"linear", NewScale, []float64{0, 100}, -5, 105},
	{"discrete", NewDiscreteScale, []float64{0, 1, 2, 3}, -0.5, 3.5},
	{"fixed-min", func() *Scale { s := NewScale(); s.FixMin(0); return s }, []float64{0, 100}, 0, 105},
	{"fixed-max", func() *Scale { s := NewScale(); s.FixMax(50); return s }, []float64{0, 100}, -5, 50},
	{"clipped", func() *Scale {
		s := NewScale()
		s.MinRange = Interval{-1, 10}
		return s
	}, []float64{0, 100}, -1, 105},
	{"degenerate", NewScale, []float64{0, 0}, -1, 1},
	{"empty", NewScale, nil, -1, 1},
}

func TestAutoscale(t *testing.T) {
	for _, tc := range autoscaleTests {
		t.Run(tc.name, func(t *testing.T) {
			s := tc.scale()
			s.UpdateData(tc.data...)
			s.autoscale()
			s.deDegenerate()
			assert.InDelta(t, tc.min, s.Min, 1e-9)
			assert.InDelta(t, tc.max, s.Max, 1e-9)
		})
	}
}

func TestScaleMap(t *testing.T) {
	s := NewScale()
	assert.True(t, math.IsNaN(s.Map(3)), "unset scale")

	s.Min, s.Max = 10, 20
	assert.Equal(t, 0.0, s.Map(10))
	assert.Equal(t, 0.5, s.Map(15))
	assert.Equal(t, 1.5, s.Map(25))
	assert.True(t, s.InRange(20))
	assert.False(t, s.InRange(21))

	s.Reset()
	assert.False(t, s.HasData())
	assert.True(t, math.IsNaN(s.Map(15)))
}

func TestScaleTicks(t *testing.T) {
	s := NewScale()
	assert.Nil(t, s.Ticks())
	s.Min, s.Max = 0, 100
	assert.NotEmpty(t, s.Ticks())
}
