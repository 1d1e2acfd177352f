package livechart

import (
	"errors"
	"image/color"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vdobler/livechart/data"
)

func TestSeriesPoints(t *testing.T) {
	s := NewSeries("Sales", data.Labeled([]string{"Q1", "Q2"}, 3, -4))
	require.NotEqual(t, uuid.Nil, s.ID)

	points := s.Points()
	require.Len(t, points, 2)
	p := points[1]
	assert.Equal(t, PointKey{Series: s.ID, Index: 1}, p.Key)
	assert.Same(t, s, p.Series)
	assert.Equal(t, 1.0, p.X)
	assert.Equal(t, -4.0, p.Y)
	assert.Equal(t, Payload{Series: "Sales", Label: "Q2", X: 1, Y: -4}, p.PackAll())

	assert.Nil(t, (&Series{}).Points())
	assert.NotEqual(t, s.ID, NewSeries("Sales", nil).ID)
}

type fakeView struct {
	surface  Surface
	animator Animator
}

func (v fakeView) AnimationsSpeed() time.Duration { return time.Second }
func (v fakeView) Surface() Surface               { return v.surface }
func (v fakeView) Animator() Animator             { return v.animator }

func TestCheckView(t *testing.T) {
	assert.True(t, errors.Is(CheckView(nil), ErrNoView))
	assert.True(t, errors.Is(CheckView(fakeView{animator: NewScheduler()}), ErrNoSurface))
	assert.True(t, errors.Is(CheckView(fakeView{surface: NewLayer()}), ErrNoAnimator))
	assert.NoError(t, CheckView(fakeView{NewLayer(), NewScheduler()}))
}

func TestSolid(t *testing.T) {
	assert.Equal(t, color.NRGBA{}, Solid(nil))
	assert.Equal(t, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, Solid(color.White))
}

func TestViewStateString(t *testing.T) {
	assert.Equal(t, "disposed", Disposed.String())
	assert.Equal(t, "ViewState(3)", ViewState(3).String())
}
