// Package theme owns the light/dark signal. The signal is passed around
// explicitly; there is no package-level provider to fall back on.
package theme

import (
	"context"
	"errors"
)

// ErrNoThemeSignal is returned when a theme signal is requested outside a
// scope that provides one.
var ErrNoThemeSignal = errors.New("theme: no theme signal in scope; construct a Provider and pass it in")

// Mode is a concrete theme choice.
type Mode int

const (
	Light Mode = iota
	Dark
)

func (m Mode) String() string {
	if m == Dark {
		return "dark"
	}
	return "light"
}

// ParseMode accepts "light" or "dark".
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "light":
		return Light, true
	case "dark":
		return Dark, true
	}
	return Light, false
}

// Signal is what consumers see: the current mode and a way to flip it.
type Signal interface {
	IsDark() bool
	Toggle()
}

// Provider resolves the mode from an optional system signal and an optional
// manual override. The override wins until the process exits.
type Provider struct {
	system *Mode
	manual *Mode
	// onChange is called after any change to the effective mode.
	onChange func(dark bool)
}

// NewProvider returns a provider with no system signal and no override,
// which resolves to light.
func NewProvider() *Provider {
	return &Provider{}
}

// OnChange registers a callback for effective mode changes.
func (p *Provider) OnChange(fn func(dark bool)) {
	p.onChange = fn
}

// SetSystem records the platform's current preference.
func (p *Provider) SetSystem(m Mode) {
	p.update(func() { p.system = &m })
}

// ClearSystem records that no platform preference is available.
func (p *Provider) ClearSystem() {
	p.update(func() { p.system = nil })
}

// SetManual sets the override. nil clears it and hands control back to the
// system signal.
func (p *Provider) SetManual(m *Mode) {
	p.update(func() {
		if m == nil {
			p.manual = nil
			return
		}
		v := *m
		p.manual = &v
	})
}

// Overridden reports whether a manual override is active.
func (p *Provider) Overridden() bool {
	return p.manual != nil
}

// Mode returns the effective mode.
func (p *Provider) Mode() Mode {
	switch {
	case p.manual != nil:
		return *p.manual
	case p.system != nil:
		return *p.system
	}
	return Light
}

func (p *Provider) IsDark() bool {
	return p.Mode() == Dark
}

// Toggle flips the effective mode by setting the override to its opposite.
func (p *Provider) Toggle() {
	next := Dark
	if p.IsDark() {
		next = Light
	}
	p.SetManual(&next)
}

func (p *Provider) update(fn func()) {
	before := p.IsDark()
	fn()
	if after := p.IsDark(); after != before && p.onChange != nil {
		p.onChange(after)
	}
}

type signalKey struct{}

// WithSignal scopes s to ctx.
func WithSignal(ctx context.Context, s Signal) context.Context {
	return context.WithValue(ctx, signalKey{}, s)
}

// FromContext returns the signal scoped to ctx, or ErrNoThemeSignal.
func FromContext(ctx context.Context) (Signal, error) {
	if ctx == nil {
		return nil, ErrNoThemeSignal
	}
	s, ok := ctx.Value(signalKey{}).(Signal)
	if !ok || s == nil {
		return nil, ErrNoThemeSignal
	}
	return s, nil
}
