// Package colour provides utility functions for color manipulation and analysis.
package colour

import "math"

// AdjustSaturation adjusts the saturation of a color by a given factor.
// factor < 1.0 reduces saturation (creates muted colors).
// factor > 1.0 increases saturation (creates more vibrant colors).
// factor = 1.0 leaves saturation unchanged.
func AdjustSaturation(h, s, l, factor float64) RGB {
	newS := math.Max(0.0, math.Min(1.0, s*factor))
	return HSL{H: h, S: newS, L: l}.ToRGB()
}

// AdjustLuminance adjusts the luminance of a color by a delta value.
// delta > 0 makes the color lighter.
// delta < 0 makes the color darker.
// Result is clamped to [0.0, 1.0].
func AdjustLuminance(h, s, l, delta float64) RGB {
	newL := math.Max(0.0, math.Min(1.0, l+delta))
	return HSL{H: h, S: s, L: newL}.ToRGB()
}
