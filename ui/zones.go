package ui

import "fmt"

// Zone ID constants for bubblezone hit detection.
// These are used both in render paths (zone.Mark) and input paths (zone.Get().InBounds).
const (
	ZoneHamburger   = "zone-hamburger"
	ZoneBackdrop    = "zone-backdrop"
	ZoneThemeSwitch = "zone-theme-switch"
	ZoneCounterDec  = "zone-counter-dec"
	ZoneCounterInc  = "zone-counter-inc"
)

// MenuItemZoneID returns the zone ID for the sidebar menu item at idx.
func MenuItemZoneID(idx int) string {
	return fmt.Sprintf("zone-menu-item-%d", idx)
}
