package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/plot/plotter"
)

func TestXYRange(t *testing.T) {
	d := Records{{X: 3, Y: -2}, {X: 1, Y: 5}, {X: 2, Y: 0}}
	xmin, xmax, ymin, ymax := XYRange(d)
	assert.Equal(t, 1.0, xmin)
	assert.Equal(t, 3.0, xmax)
	assert.Equal(t, -2.0, ymin)
	assert.Equal(t, 5.0, ymax)
}

func TestLabeled(t *testing.T) {
	d := Labeled([]string{"go", "rust"}, 95, 10, 60)
	assert.Equal(t, 3, d.Len())
	assert.Equal(t, "rust", d.Label(1))
	assert.Equal(t, "", d.Label(2))
	x, y := d.XY(2)
	assert.Equal(t, 2.0, x)
	assert.Equal(t, 60.0, y)
}

func TestFromXYer(t *testing.T) {
	d := FromXYer(plotter.XYs{{X: 1, Y: 2}, {X: 3, Y: 4}}, "a")
	assert.Equal(t, 2, d.Len())
	x, y := d.XY(1)
	assert.Equal(t, 3.0, x)
	assert.Equal(t, 4.0, y)
	assert.Equal(t, "a", d.Label(0))
	assert.Equal(t, "", d.Label(1))
}
