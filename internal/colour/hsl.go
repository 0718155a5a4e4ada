package colour

import "math"

// HSL represents a colour in hue/saturation/lightness space: hue in
// [0,360), saturation and lightness in [0,1].
type HSL struct {
	H float64
	S float64
	L float64
}

// ToHSL converts an RGB tuple to HSL using the standard non-perceptual
// formula. There is a known singularity at S=0 where hue is undefined; this
// implementation reports hue 0 in that case, matching the conventional
// "achromatic" fallback.
func ToHSL(rgb RGB) HSL {
	r := float64(rgb.R) / 255.0
	g := float64(rgb.G) / 255.0
	b := float64(rgb.B) / 255.0

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	l := (maxVal + minVal) / 2.0

	if delta == 0 {
		return HSL{H: 0, S: 0, L: l}
	}

	var s float64
	if l < 0.5 {
		s = delta / (maxVal + minVal)
	} else {
		s = delta / (2.0 - maxVal - minVal)
	}

	var h float64
	switch maxVal {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	default: // b
		h = (r-g)/delta + 4
	}
	h *= 60

	return HSL{H: h, S: s, L: l}
}

// ToRGB converts HSL back to an opaque RGB tuple using the standard inverse
// transform.
func (hsl HSL) ToRGB() RGB {
	if hsl.S == 0 {
		v := uint8(math.Round(hsl.L * 255)) //nolint:gosec // L clamped by caller convention
		return RGB{R: v, G: v, B: v, A: 255}
	}

	var q float64
	if hsl.L < 0.5 {
		q = hsl.L * (1 + hsl.S)
	} else {
		q = hsl.L + hsl.S - hsl.L*hsl.S
	}
	p := 2*hsl.L - q

	r := hueToChannel(p, q, hsl.H+120)
	g := hueToChannel(p, q, hsl.H)
	b := hueToChannel(p, q, hsl.H-120)

	return RGB{
		R: channelByte(r),
		G: channelByte(g),
		B: channelByte(b),
		A: 255,
	}
}

func channelByte(v float64) uint8 {
	return clampByte(math.Round(v * 255))
}

// hueToChannel is a helper for the HSL-to-RGB inverse transform.
func hueToChannel(p, q, t float64) float64 {
	for t < 0 {
		t += 360
	}
	for t >= 360 {
		t -= 360
	}

	switch {
	case t < 60:
		return p + (q-p)*t/60
	case t < 180:
		return q
	case t < 240:
		return p + (q-p)*(240-t)/60
	default:
		return p
	}
}

// HueDistance calculates the angular distance between two hues on the
// colour wheel, returning a value between 0 and 180 degrees (shortest path
// around the wheel).
func HueDistance(h1, h2 float64) float64 {
	diff := math.Abs(h1 - h2)
	if diff > 180 {
		diff = 360 - diff
	}
	return diff
}

// IsAnalogous reports whether two hues are within 30 degrees of each other.
func IsAnalogous(h1, h2 float64) bool {
	return HueDistance(h1, h2) <= 30
}
