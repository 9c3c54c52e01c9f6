package sidebar

import (
	"time"

	"github.com/kastheco/dashshell/anim"
)

// Tokens is the fixed geometry the controller works with, in layout points.
type Tokens struct {
	Breakpoint        float64
	ExpandedThreshold float64
	ExpandedWidth     float64
	CompactWidth      float64
	HeaderHeight      float64
}

// DefaultTokens returns the stock dashboard geometry.
func DefaultTokens() Tokens {
	return Tokens{
		Breakpoint:        768,
		ExpandedThreshold: 1024,
		ExpandedWidth:     260,
		CompactWidth:      72,
		HeaderHeight:      72,
	}
}

// HiddenOffset is the drawer's slide offset when fully off screen.
func (t Tokens) HiddenOffset() float64 {
	return -t.ExpandedWidth
}

// Motion holds the curves used for each transition.
type Motion struct {
	WidthSpring  anim.Spring
	DrawerSpring anim.Spring
	FadeIn       time.Duration
	FadeOut      time.Duration
}

// DefaultMotion returns the stock curves.
func DefaultMotion() Motion {
	return Motion{
		WidthSpring:  anim.Spring{Tension: 100, Friction: 10},
		DrawerSpring: anim.Spring{Tension: 80, Friction: 12},
		FadeIn:       200 * time.Millisecond,
		FadeOut:      150 * time.Millisecond,
	}
}
