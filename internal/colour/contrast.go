package colour

import (
	"image/color"
	"math"
)

// Luminance calculates the relative luminance of a colour according to
// WCAG 2.0. Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef
func Luminance(c color.Color) float64 {
	r, g, b, _ := c.RGBA()
	rf := gammaCorrect(float64(r>>8) / 255.0)
	gf := gammaCorrect(float64(g>>8) / 255.0)
	bf := gammaCorrect(float64(b>>8) / 255.0)
	return 0.2126*rf + 0.7152*gf + 0.0722*bf
}

// gammaCorrect applies sRGB gamma correction to a single channel.
func gammaCorrect(v float64) float64 {
	if v < 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio calculates the WCAG 2.0 contrast ratio between two colours,
// a value between 1 and 21. bg must be fully opaque (alpha 255); if fg is
// translucent it is composited over bg first.
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef
func ContrastRatio(fg, bg color.Color) float64 {
	assertOpaque(bg)

	_, _, _, fa := fg.RGBA()
	if uint8(fa>>8) < 255 { //nolint:gosec
		fg = compositeStdColor(fg, bg)
	}

	l1 := Luminance(fg)
	l2 := Luminance(bg)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

func compositeStdColor(fg, bg color.Color) color.Color {
	fgR, fgG, fgB, fgA := straightRGBA(fg)
	bgR, bgG, bgB, _ := straightRGBA(bg)
	f32 := Color32FromStd(fgR, fgG, fgB, fgA)
	b32 := Color32FromStd(bgR, bgG, bgB, 255)
	return CompositeColors(f32, b32, CompositeStandard).ToStdColor()
}

// straightRGBA extracts a colour's straight (non-premultiplied) 8-bit
// channels. color.Color.RGBA() always returns alpha-premultiplied values
// per its interface contract, so reading a translucent colour's channels
// directly and handing them to CompositeColors (which premultiplies again)
// would double the foreground's alpha contribution. Unpremultiplying here
// first avoids that.
func straightRGBA(c color.Color) (r, g, b, a uint8) {
	pr, pg, pb, pa := c.RGBA()
	a = uint8(pa >> 8) //nolint:gosec
	if pa == 0 {
		return 0, 0, 0, 0
	}
	r = uint8(pr * 0xff / pa) //nolint:gosec
	g = uint8(pg * 0xff / pa) //nolint:gosec
	b = uint8(pb * 0xff / pa) //nolint:gosec
	return r, g, b, a
}

// Color32FromStd is a small convenience constructor mirroring PackARGB with
// an (r,g,b,a) argument order that matches color.Color.RGBA()'s channel
// grouping.
func Color32FromStd(r, g, b, a uint8) Color32 {
	return PackARGB(a, r, g, b)
}

// MinAlpha performs a bounded binary search for the minimum alpha in
// [0,255] at which overlaying fg on bg reaches the given contrast target.
// bg must be opaque. Returns (alpha, true) on success, or (0, false) if
// even a fully-opaque fg cannot reach target.
//
// The search terminates after at most 10 iterations or once the bracket
// width drops to 10 or less, returning the known-passing end of the final
// bracket (hi). This caps the search at O(1) wall-clock cost and is
// deliberately approximate — it will not find the exact minimal alpha, only
// one within the final bracket width.
func MinAlpha(fg, bg color.Color, target float64) (int, bool) {
	assertOpaque(bg)

	fullyOpaque := setStdAlpha(fg, 255)
	if ContrastRatio(fullyOpaque, bg) < target {
		return 0, false
	}

	lo, hi := 0, 255
	for iterations := 0; iterations < 10 && hi-lo > 10; iterations++ {
		mid := (lo + hi) / 2
		candidate := setStdAlpha(fg, mid)
		if ContrastRatio(candidate, bg) < target {
			lo = mid
		} else {
			hi = mid
		}
	}
	return hi, true
}

func setStdAlpha(c color.Color, alpha int) color.Color {
	assertAlpha(alpha)
	r, g, b, _ := c.RGBA()
	return color.NRGBA{
		R: uint8(r >> 8), //nolint:gosec
		G: uint8(g >> 8), //nolint:gosec
		B: uint8(b >> 8), //nolint:gosec
		A: uint8(alpha),  //nolint:gosec
	}
}

func assertOpaque(c color.Color) {
	_, _, _, a := c.RGBA()
	assertf(uint8(a>>8) == 255, "colour.ContrastRatio/MinAlpha: background must be opaque, got alpha %d", uint8(a>>8)) //nolint:gosec
}

func assertAlpha(alpha int) {
	assertf(alpha >= 0 && alpha <= 255, "colour: alpha %d out of range [0,255]", alpha)
}
