package livechart

import (
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Primitive is something drawable: a shape or a label.
type Primitive interface {
	// Draw paints the primitive onto c. Primitives use device coordinates
	// with the origin in the top left corner of c.
	Draw(c draw.Canvas)
}

// Surface is a container of primitives.
type Surface interface {
	Add(p Primitive)
	Remove(p Primitive)
}

// ----------------------------------------------------------------------------
// Layer

// Layer is a retained Surface. Its children are drawn in insertion order.
//
// Adding a primitive already on the layer and removing one which is not on
// it are no-ops.
type Layer struct {
	children []Primitive

	// Inserted and Removed count the effective Add and Remove calls.
	Inserted, Removed int
}

// NewLayer returns an empty layer.
func NewLayer() *Layer {
	return &Layer{}
}

func (l *Layer) index(p Primitive) int {
	for i, c := range l.children {
		if c == p {
			return i
		}
	}
	return -1
}

// Add appends p to l.
func (l *Layer) Add(p Primitive) {
	if p == nil || l.index(p) >= 0 {
		return
	}
	l.children = append(l.children, p)
	l.Inserted++
}

// Remove takes p off l.
func (l *Layer) Remove(p Primitive) {
	if p == nil {
		return
	}
	i := l.index(p)
	if i < 0 {
		return
	}
	l.children = append(l.children[:i], l.children[i+1:]...)
	l.Removed++
}

// Contains reports whether p is on l.
func (l *Layer) Contains(p Primitive) bool {
	return p != nil && l.index(p) >= 0
}

// Len returns the number of primitives on l.
func (l *Layer) Len() int { return len(l.children) }

// Children returns the primitives on l in drawing order.
func (l *Layer) Children() []Primitive {
	return append([]Primitive(nil), l.children...)
}

// Draw paints all children onto c.
func (l *Layer) Draw(c draw.Canvas) {
	for _, p := range l.children {
		p.Draw(c)
	}
}

// ToCanvas converts the device coordinate (left, top) to a point on c.
func ToCanvas(c draw.Canvas, left, top float64) vg.Point {
	return vg.Point{
		X: c.Min.X + vg.Length(left),
		Y: c.Max.Y - vg.Length(top),
	}
}
