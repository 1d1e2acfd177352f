// Package livechart draws animated column charts on top of gonum.org/v1/plot.
//
// Charts, Layers and Animations
//
// A Chart owns a Layer and a Scheduler. The Layer is a retained list of
// Primitives (shapes and labels) which are painted onto a draw.Canvas in
// insertion order. The Scheduler interpolates numeric properties of those
// primitives (left, top, width and height) and is advanced by calling Tick
// from the render loop, typically once per frame.
//
// Each data point of a Series is represented by a PointView. On every
// layout pass (Chart.Update) the chart computes a ColumnViewModel for each
// point and hands it to the point's view which then creates its primitive
// once and animates it towards the new geometry:
//
//   - a new bar starts collapsed on the baseline (height 0 at Zero) and grows
//   - a moved bar keeps its primitive and is retargeted in place
//   - a point which vanished from the data has its view disposed
//
// All of this happens on one goroutine: the one which calls Update, Tick
// and Render. Nothing in this package locks.
//
// The concrete views and primitives live in package geom.
package livechart
