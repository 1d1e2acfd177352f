package livechart

import "errors"

var (
	// ErrNoView is returned when a point view is built without a chart view.
	ErrNoView = errors.New("livechart: no chart view")

	// ErrNoSurface is returned when the chart view provides no render surface.
	ErrNoSurface = errors.New("livechart: chart view has no render surface")

	// ErrNoAnimator is returned when the chart view provides no animator.
	ErrNoAnimator = errors.New("livechart: chart view has no animator")

	// ErrNilPoint is returned when a nil chart point is drawn.
	ErrNilPoint = errors.New("livechart: nil chart point")

	// ErrDisposed is returned when a disposed point view is drawn again.
	ErrDisposed = errors.New("livechart: point view already disposed")

	// ErrNoViewFactory is returned by Chart.Update for a series without View.
	ErrNoViewFactory = errors.New("livechart: series has no point view factory")
)
