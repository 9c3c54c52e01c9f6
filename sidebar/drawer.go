package sidebar

import "fmt"

// DrawerState is the lifecycle of the mobile drawer.
type DrawerState string

const (
	DrawerClosed  DrawerState = "closed"
	DrawerOpening DrawerState = "opening"
	DrawerOpen    DrawerState = "open"
	DrawerClosing DrawerState = "closing"
)

// Interactive reports whether the backdrop and drawer content accept taps.
// The drawer is usable as soon as it starts opening.
func (s DrawerState) Interactive() bool {
	return s == DrawerOpening || s == DrawerOpen
}

// DrawerEvent triggers a drawer transition.
type DrawerEvent string

const (
	// DrawerShow is the hamburger press.
	DrawerShow DrawerEvent = "show"
	// DrawerOpeningSettled fires when both entrance animations finish.
	DrawerOpeningSettled DrawerEvent = "opening_settled"
	// DrawerBackdropTap is a tap on the dimmed backdrop.
	DrawerBackdropTap DrawerEvent = "backdrop_tap"
	// DrawerClosingSettled fires when both exit animations finish, or the
	// close watchdog expires.
	DrawerClosingSettled DrawerEvent = "closing_settled"
	// DrawerReset forces the drawer shut, e.g. when leaving mobile layout.
	DrawerReset DrawerEvent = "reset"
)

// drawerTransitions defines all valid drawer transitions.
// Key: current state → event → new state. Reset is handled separately
// because it is valid from every state.
var drawerTransitions = map[DrawerState]map[DrawerEvent]DrawerState{
	DrawerClosed: {
		DrawerShow: DrawerOpening,
	},
	DrawerOpening: {
		DrawerOpeningSettled: DrawerOpen,
		DrawerBackdropTap:    DrawerClosing,
	},
	DrawerOpen: {
		DrawerBackdropTap: DrawerClosing,
	},
	DrawerClosing: {
		DrawerClosingSettled: DrawerClosed,
		DrawerShow:           DrawerOpening,
	},
}

// ApplyDrawerEvent returns the state that event moves current to, or an
// error if the transition is not valid.
func ApplyDrawerEvent(current DrawerState, event DrawerEvent) (DrawerState, error) {
	if event == DrawerReset {
		return DrawerClosed, nil
	}
	events, ok := drawerTransitions[current]
	if !ok {
		return "", fmt.Errorf("no transitions defined for drawer state %q", current)
	}
	next, ok := events[event]
	if !ok {
		return "", fmt.Errorf("invalid drawer transition: %q + %q", current, event)
	}
	return next, nil
}
