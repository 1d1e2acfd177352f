package livechart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBarGroupsDodge(t *testing.T) {
	bg := NewBarGroups(0.2, 0, true)
	for i, x := range []float64{0, 1, 2, 0, 1, 2} {
		bg.Record(x, i)
	}
	assert.Equal(t, []float64{0, 1, 2}, bg.Xs())
	assert.Equal(t, 1.0, bg.MinDelta())
	assert.Equal(t, 2, bg.MaxGroupSize())

	for _, tc := range []struct {
		x      float64
		i      int
		center float64
	}{
		{0, 0, -0.2},
		{0, 3, 0.2},
		{2, 2, 1.8},
		{2, 5, 2.2},
	} {
		center, halfwidth := bg.Width(tc.x, tc.i)
		assert.InDelta(t, tc.center, center, 1e-9, "center of %d", tc.i)
		assert.InDelta(t, 0.2, halfwidth, 1e-9, "halfwidth of %d", tc.i)
	}
}

func TestBarGroupsSingle(t *testing.T) {
	bg := NewBarGroups(0.5, 0, false)
	bg.Record(5, 0)
	center, halfwidth := bg.Width(5, 0)
	assert.Equal(t, 5.0, center)
	assert.Equal(t, 0.25, halfwidth)
}

func TestBarGroupsWithoutGroupGap(t *testing.T) {
	bg := NewBarGroups(0, 0, true)
	bg.Record(0, 0)
	bg.Record(1, 1)
	center, halfwidth := bg.Width(1, 1)
	assert.Equal(t, 1.0, center)
	assert.Equal(t, 0.5, halfwidth, "groups touch")
}

func TestBarGroupsBarGap(t *testing.T) {
	bg := NewBarGroups(0, 0.5, true)
	bg.Record(0, 0)
	bg.Record(1, 1)
	_, halfwidth := bg.Width(0, 0)
	assert.Equal(t, 0.0, halfwidth, "gap larger than bar")
}

func TestBarGroupsUnknownPoint(t *testing.T) {
	bg := NewBarGroups(0, 0, true)
	bg.Record(0, 0)
	assert.Panics(t, func() { bg.Width(0, 7) })
	assert.Panics(t, func() { bg.Width(3, 0) })
}
