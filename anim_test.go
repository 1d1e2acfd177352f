package livechart

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bar is a minimal Animatable.
type bar struct{ v [4]float64 }

func (b *bar) Get(p Property) float64    { return b.v[p] }
func (b *bar) Set(p Property, v float64) { b.v[p] = v }

func TestSchedulerTick(t *testing.T) {
	s := NewScheduler()
	b := &bar{}
	a := s.Animate(b, Height, 0, 50, 100*time.Millisecond)

	assert.Equal(t, 1, s.Len())
	assert.Same(t, a, s.Running(b, Height))
	assert.Nil(t, s.Running(b, Top))

	assert.Equal(t, 1, s.Tick(25*time.Millisecond))
	assert.InDelta(t, 12.5, b.Get(Height), 1e-9)

	assert.Equal(t, 0, s.Tick(100*time.Millisecond))
	assert.Equal(t, 50.0, b.Get(Height))
	assert.True(t, a.Done())
	assert.Equal(t, a.Duration, a.Elapsed)
}

func TestSchedulerSupersede(t *testing.T) {
	s := NewScheduler()
	b := &bar{}
	first := s.Animate(b, Left, 0, 100, time.Second)
	s.Tick(500 * time.Millisecond)
	require.InDelta(t, 50, b.Get(Left), 1e-9)

	second := s.Animate(b, Left, b.Get(Left), 0, time.Second)
	assert.True(t, first.Done())
	assert.False(t, second.Done())
	assert.Equal(t, 1, s.Len())

	s.Tick(500 * time.Millisecond)
	assert.InDelta(t, 25, b.Get(Left), 1e-9)
}

func TestSchedulerChannelsAreIndependent(t *testing.T) {
	s := NewScheduler()
	b1, b2 := &bar{}, &bar{}
	s.Animate(b1, Left, 0, 10, time.Second)
	s.Animate(b1, Top, 0, 10, time.Second)
	s.Animate(b2, Left, 0, 10, time.Second)
	assert.Equal(t, 3, s.Len())

	s.Cancel(b1)
	assert.Equal(t, 1, s.Len())
	s.Tick(time.Second)
	assert.Equal(t, 0.0, b1.Get(Left))
	assert.Equal(t, 10.0, b2.Get(Left))
}

func TestSchedulerZeroDuration(t *testing.T) {
	s := NewScheduler()
	b := &bar{}
	a := s.Animate(b, Width, 3, 7, 0)
	assert.True(t, a.Done())
	assert.Equal(t, 7.0, b.Get(Width))
	assert.Equal(t, 0, s.Len())
}

func TestAnimationCancel(t *testing.T) {
	s := NewScheduler()
	b := &bar{}
	a := s.Animate(b, Top, 55, 5, time.Second)
	s.Tick(200 * time.Millisecond)
	a.Cancel()
	assert.Equal(t, 0, s.Len())
	assert.Nil(t, s.Running(b, Top))

	v := b.Get(Top)
	assert.Equal(t, 0, s.Tick(time.Second))
	assert.Equal(t, v, b.Get(Top), "cancelled animation keeps its value")
}

func TestSchedulerEasing(t *testing.T) {
	s := NewScheduler()
	s.Easing = EaseOut
	b := &bar{}
	s.Animate(b, Height, 0, 100, time.Second)
	s.Tick(250 * time.Millisecond)
	assert.InDelta(t, 50, b.Get(Height), 1e-9)
}

func TestSchedulerFinish(t *testing.T) {
	s := NewScheduler()
	b := &bar{}
	s.Animate(b, Left, 0, 10, time.Second)
	s.Animate(b, Height, 0, 20, time.Second)
	s.Finish()
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, [4]float64{10, 0, 0, 20}, b.v)
}

func TestPropertyString(t *testing.T) {
	assert.Equal(t, "height", Height.String())
	assert.Equal(t, "Property(9)", Property(9).String())
}
