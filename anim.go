package livechart

import (
	"fmt"
	"time"
)

// ----------------------------------------------------------------------------
// Properties

// Property names an animatable numeric property of a primitive.
type Property int

const (
	Left Property = iota
	Top
	Width
	Height
)

// Properties lists all animatable properties.
var Properties = []Property{Left, Top, Width, Height}

func (p Property) String() string {
	if p < 0 || int(p) >= len(Properties) {
		return fmt.Sprintf("Property(%d)", int(p))
	}
	return []string{"left", "top", "width", "height"}[int(p)]
}

// Animatable is a primitive whose properties can be read and written.
type Animatable interface {
	Get(p Property) float64
	Set(p Property, v float64)
}

// ----------------------------------------------------------------------------
// Animation

// Animation interpolates one property of one target from From to To.
type Animation struct {
	Target   Animatable
	Property Property
	From, To float64
	Duration time.Duration
	Easing   Easing

	// Elapsed is the time the animation has been running.
	Elapsed time.Duration

	done bool
}

// Cancel stops a; the property keeps its current value.
func (a *Animation) Cancel() { a.done = true }

// Done reports whether a finished or was cancelled.
func (a *Animation) Done() bool { return a.done }

// Value is the current value of the animated property.
func (a *Animation) Value() float64 {
	if a.Duration <= 0 {
		return a.To
	}
	t := float64(a.Elapsed) / float64(a.Duration)
	return interpolate(a.Easing, a.From, a.To, t)
}

func (a *Animation) String() string {
	return fmt.Sprintf("%s %.2f->%.2f %s/%s", a.Property, a.From, a.To, a.Elapsed, a.Duration)
}

// Animator schedules property animations.
type Animator interface {
	// Animate starts moving property p of target from from to to within d.
	// It must not block. A running animation of the same property of the
	// same target is superseded.
	Animate(target Animatable, p Property, from, to float64, d time.Duration) *Animation
}

// ----------------------------------------------------------------------------
// Scheduler

type channel struct {
	target Animatable
	prop   Property
}

// Scheduler is an Animator driven by explicit ticks from the render loop.
// Each (target, property) pair is one channel with at most one running
// animation.
type Scheduler struct {
	// Easing is used for new animations. Nil means EaseLinear.
	Easing Easing

	running map[channel]*Animation
}

// NewScheduler returns a scheduler without running animations.
func NewScheduler() *Scheduler {
	return &Scheduler{running: make(map[channel]*Animation)}
}

// Animate implements Animator. The property is set to from immediately.
// A non-positive d sets to immediately and returns a finished animation.
func (s *Scheduler) Animate(target Animatable, p Property, from, to float64, d time.Duration) *Animation {
	ch := channel{target, p}
	if old, ok := s.running[ch]; ok {
		old.Cancel()
		delete(s.running, ch)
		Logger.Debug("animation superseded", "property", p, "old", old.To, "new", to)
	}

	a := &Animation{
		Target:   target,
		Property: p,
		From:     from,
		To:       to,
		Duration: d,
		Easing:   s.Easing,
	}
	if d <= 0 {
		target.Set(p, to)
		a.done = true
		return a
	}
	target.Set(p, from)
	s.running[ch] = a
	return a
}

// Running returns the animation currently running on property p of target
// or nil.
func (s *Scheduler) Running(target Animatable, p Property) *Animation {
	if a := s.running[channel{target, p}]; a != nil && !a.done {
		return a
	}
	return nil
}

// Len returns the number of running animations.
func (s *Scheduler) Len() int {
	n := 0
	for _, a := range s.running {
		if !a.done {
			n++
		}
	}
	return n
}

// Tick advances all running animations by delta, writes the interpolated
// values to their targets and returns the number still running.
func (s *Scheduler) Tick(delta time.Duration) int {
	for ch, a := range s.running {
		if a.done {
			delete(s.running, ch)
			continue
		}
		a.Elapsed += delta
		if a.Elapsed >= a.Duration {
			a.Elapsed = a.Duration
			a.done = true
			delete(s.running, ch)
		}
		a.Target.Set(a.Property, a.Value())
	}
	return len(s.running)
}

// Cancel stops all animations of target.
func (s *Scheduler) Cancel(target Animatable) {
	for ch, a := range s.running {
		if ch.target == target {
			a.Cancel()
			delete(s.running, ch)
		}
	}
}

// Finish jumps all running animations to their end values.
func (s *Scheduler) Finish() {
	for ch, a := range s.running {
		a.Elapsed = a.Duration
		a.done = true
		a.Target.Set(a.Property, a.To)
		delete(s.running, ch)
	}
}
