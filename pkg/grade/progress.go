package grade

import "math"

// Progress bar classes, from best to worst projection.
const (
	ProgressGreen  = "progress-bar-green"
	ProgressOrange = "progress-bar-orange"
	ProgressRed    = "progress-bar-red"
)

// ProgressClass colors a committee's progress bar by projecting its share of
// the maximum onto the congress-wide pass rate: percentMax / percentPassed * 100.
// A projection of 75 or more is green, 50 or more orange, anything lower red.
//
// A congress with no passed items (percentPassed <= 0) or non-finite input
// has no meaningful projection and is red.
func ProgressClass(percentMax, percentPassed float64) string {
	if percentPassed <= 0 || !finite(percentMax) || !finite(percentPassed) {
		return ProgressRed
	}

	projected := percentMax / percentPassed * 100
	switch {
	case projected >= 75:
		return ProgressGreen
	case projected >= 50:
		return ProgressOrange
	default:
		return ProgressRed
	}
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
