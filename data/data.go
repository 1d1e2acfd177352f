// Package data contains the data interfaces used by series and a
// prototypical implementation.
package data

import (
	"math"

	"gonum.org/v1/plot/plotter"
)

// XYLabeler wraps the Len, XY and Label methods.
type XYLabeler interface {
	// Len returns the number of records.
	Len() int

	// XY returns the x, y pair of record i.
	XY(i int) (x, y float64)

	// Label returns a human readable name of record i. It may be empty.
	Label(i int) string
}

// XYRange returns the minimum and maximum x and y values.
func XYRange(d XYLabeler) (xmin, xmax, ymin, ymax float64) {
	xmin, xmax = math.Inf(1), math.Inf(-1)
	ymin, ymax = math.Inf(1), math.Inf(-1)
	for i := 0; i < d.Len(); i++ {
		x, y := d.XY(i)
		xmin, xmax = math.Min(xmin, x), math.Max(xmax, x)
		ymin, ymax = math.Min(ymin, y), math.Max(ymax, y)
	}
	return xmin, xmax, ymin, ymax
}

// Record is one x, y pair with an optional label.
type Record struct {
	X, Y  float64
	Label string
}

// Records implements the XYLabeler interface.
type Records []Record

func (d Records) Len() int                { return len(d) }
func (d Records) XY(i int) (x, y float64) { return d[i].X, d[i].Y }
func (d Records) Label(i int) string      { return d[i].Label }

// Values returns Records placing ys at x = 0, 1, 2, ...
func Values(ys ...float64) Records {
	d := make(Records, len(ys))
	for i, y := range ys {
		d[i].X, d[i].Y = float64(i), y
	}
	return d
}

// Labeled returns Records placing ys at x = 0, 1, 2, ... labeled with
// the corresponding entry of labels.
func Labeled(labels []string, ys ...float64) Records {
	d := Values(ys...)
	for i := range d {
		if i < len(labels) {
			d[i].Label = labels[i]
		}
	}
	return d
}

// FromXYer turns any plotter.XYer into an XYLabeler. Labels are taken from
// labels where present.
func FromXYer(xy plotter.XYer, labels ...string) XYLabeler {
	return xyer{xy, labels}
}

type xyer struct {
	plotter.XYer
	labels []string
}

func (d xyer) Label(i int) string {
	if i < len(d.labels) {
		return d.labels[i]
	}
	return ""
}
