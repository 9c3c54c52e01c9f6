package ui

import "math"

// AppTitle is shown next to the logo.
const AppTitle = "Dashboard"

// Metrics converts between layout points and terminal cells.
type Metrics struct {
	PointsPerCell float64
	PointsPerRow  float64
}

// DefaultMetrics makes 96 columns the mobile breakpoint and 128 columns the
// expanded threshold.
var DefaultMetrics = Metrics{PointsPerCell: 8, PointsPerRow: 18}

// Points converts a column count to layout points.
func (m Metrics) Points(cols int) float64 {
	return float64(cols) * m.PointsPerCell
}

// Cols converts a horizontal length in points to whole columns, rounding
// to nearest. Negative lengths keep their sign.
func (m Metrics) Cols(points float64) int {
	if m.PointsPerCell <= 0 {
		return 0
	}
	return int(math.Round(points / m.PointsPerCell))
}

// Rows converts a vertical length in points to rows, never less than one.
func (m Metrics) Rows(points float64) int {
	if m.PointsPerRow <= 0 {
		return 1
	}
	return max(1, int(math.Round(points/m.PointsPerRow)))
}
