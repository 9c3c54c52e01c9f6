package anim

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

// Rest thresholds for springs, in value units and value units per second.
const (
	restDisplacement = 0.001
	restSpeed        = 0.001
	// maxSpringTime snaps a spring that has not come to rest, which only
	// happens with a badly configured curve.
	maxSpringTime = 10 * time.Second
)

// Curve describes how an interpolant travels from its current value to a
// target. Spring and Timing are the two kinds.
type Curve interface {
	begin(from, to float64) motion
}

// motion is a single in-flight run of a curve.
type motion interface {
	step(dt time.Duration) (value float64, done bool)
}

// Spring is parameterised the way mobile animation runtimes take it:
// tension and friction on the origami scale. They are converted to a
// stiffness and damping for a unit mass.
type Spring struct {
	Tension  float64
	Friction float64
}

// Stiffness returns the spring constant for a unit mass.
func (s Spring) Stiffness() float64 {
	k := (s.Tension-30)*3.62 + 194
	if k < 1 {
		k = 1
	}
	return k
}

// Damping returns the damping coefficient for a unit mass.
func (s Spring) Damping() float64 {
	c := (s.Friction-8)*3 + 25
	if c < 0 {
		c = 0
	}
	return c
}

// AngularFrequency and DampingRatio are what harmonica consumes.
func (s Spring) AngularFrequency() float64 {
	return math.Sqrt(s.Stiffness())
}

func (s Spring) DampingRatio() float64 {
	return s.Damping() / (2 * s.AngularFrequency())
}

func (s Spring) begin(from, to float64) motion {
	return &springMotion{
		pos:     from,
		target:  to,
		angular: s.AngularFrequency(),
		ratio:   s.DampingRatio(),
	}
}

type springMotion struct {
	pos, vel, target float64
	angular, ratio   float64
	elapsed          time.Duration
}

func (m *springMotion) step(dt time.Duration) (float64, bool) {
	if dt <= 0 {
		return m.pos, m.atRest()
	}
	m.elapsed += dt
	spring := harmonica.NewSpring(dt.Seconds(), m.angular, m.ratio)
	m.pos, m.vel = spring.Update(m.pos, m.vel, m.target)
	if m.atRest() || m.elapsed >= maxSpringTime {
		m.pos, m.vel = m.target, 0
		return m.pos, true
	}
	return m.pos, false
}

func (m *springMotion) atRest() bool {
	return math.Abs(m.pos-m.target) <= restDisplacement && math.Abs(m.vel) <= restSpeed
}

// Timing runs for a fixed duration along an easing function.
// A nil Easing means EaseInOut.
type Timing struct {
	Duration time.Duration
	Easing   Easing
}

func (t Timing) begin(from, to float64) motion {
	easing := t.Easing
	if easing == nil {
		easing = EaseInOut
	}
	return &timingMotion{from: from, to: to, duration: t.Duration, easing: easing}
}

type timingMotion struct {
	from, to float64
	duration time.Duration
	elapsed  time.Duration
	easing   Easing
}

func (m *timingMotion) step(dt time.Duration) (float64, bool) {
	if m.duration <= 0 {
		return m.to, true
	}
	m.elapsed += dt
	progress := float64(m.elapsed) / float64(m.duration)
	if progress >= 1 {
		return m.to, true
	}
	if progress < 0 {
		progress = 0
	}
	return m.from + (m.to-m.from)*m.easing(progress), false
}
