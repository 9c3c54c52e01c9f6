// Package anim holds the animated scalars the sidebar drives: a value, a
// curve it is travelling along, and a completion callback. Frames are
// pushed in from outside through Step; nothing here owns a clock or a
// goroutine.
package anim

import "time"

// Driver says where a platform would run the animation. Compositor values
// only feed transforms and opacity; Layout values change geometry and have
// to be stepped with layout.
type Driver int

const (
	DriverCompositor Driver = iota
	DriverLayout
)

func (d Driver) String() string {
	if d == DriverLayout {
		return "layout"
	}
	return "compositor"
}

// CompletionFunc is called once per animation. finished is false when the
// animation was superseded or cancelled before reaching its target.
type CompletionFunc func(finished bool)

// Interpolant is a tracked animated scalar.
type Interpolant struct {
	name   string
	driver Driver
	value  float64
	target float64

	motion     motion
	onComplete CompletionFunc
}

// New returns an idle interpolant resting at initial.
func New(name string, initial float64, driver Driver) *Interpolant {
	return &Interpolant{name: name, driver: driver, value: initial, target: initial}
}

func (i *Interpolant) Name() string   { return i.name }
func (i *Interpolant) Driver() Driver { return i.driver }

// Value is the current interpolated value.
func (i *Interpolant) Value() float64 { return i.value }

// Target is where the current (or last) animation is heading.
func (i *Interpolant) Target() float64 { return i.target }

// Animating reports whether an animation is in flight.
func (i *Interpolant) Animating() bool { return i.motion != nil }

// Set jumps to v immediately, cancelling any in-flight animation.
func (i *Interpolant) Set(v float64) {
	i.Cancel()
	i.value = v
	i.target = v
}

// AnimateTo starts travelling toward target along curve. An animation
// already in flight is superseded and its callback gets finished=false.
// done may be nil.
func (i *Interpolant) AnimateTo(target float64, curve Curve, done CompletionFunc) {
	i.Cancel()
	i.target = target
	i.motion = curve.begin(i.value, target)
	i.onComplete = done
}

// Cancel stops the in-flight animation where it is.
func (i *Interpolant) Cancel() {
	if i.motion == nil {
		return
	}
	cb := i.onComplete
	i.motion = nil
	i.onComplete = nil
	if cb != nil {
		cb(false)
	}
}

// Step advances the in-flight animation by dt and fires the completion
// callback when it arrives. It returns true while still animating.
func (i *Interpolant) Step(dt time.Duration) bool {
	if i.motion == nil {
		return false
	}
	v, done := i.motion.step(dt)
	i.value = v
	if !done {
		return true
	}
	// Clear before calling back: the callback may start a new animation.
	cb := i.onComplete
	i.motion = nil
	i.onComplete = nil
	if cb != nil {
		cb(true)
	}
	return i.motion != nil
}

// Parallel joins n completions into one. done fires after all n have
// reported, with finished true only if every one of them finished.
func Parallel(n int, done CompletionFunc) []CompletionFunc {
	remaining := n
	allFinished := true
	cbs := make([]CompletionFunc, n)
	for k := range cbs {
		fired := false
		cbs[k] = func(finished bool) {
			if fired {
				return
			}
			fired = true
			allFinished = allFinished && finished
			remaining--
			if remaining == 0 && done != nil {
				done(allFinished)
			}
		}
	}
	return cbs
}
