// Package colour provides colour extraction and palette generation functionality.
package colour

import (
	"fmt"
	"image/color"
	"math"
)

// Color32 is a packed 32-bit ARGB colour: bits 24-31 alpha, 16-23 red,
// 8-15 green, 0-7 blue. It is the primary interchange currency of the
// quantizer core.
type Color32 uint32

// PackARGB packs four 0-255 channel values into a Color32.
func PackARGB(a, r, g, b uint8) Color32 {
	return Color32(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// A returns the alpha channel (0-255).
func (c Color32) A() uint8 { return uint8(c >> 24) } //nolint:gosec // intentional truncation

// R returns the red channel (0-255).
func (c Color32) R() uint8 { return uint8(c >> 16) } //nolint:gosec

// G returns the green channel (0-255).
func (c Color32) G() uint8 { return uint8(c >> 8) } //nolint:gosec

// B returns the blue channel (0-255).
func (c Color32) B() uint8 { return uint8(c) } //nolint:gosec

// SetAlphaComponent returns a copy of c with its alpha byte replaced.
// Preconditions on alpha (0-255) are unchecked at the bit level; callers
// that pass an out-of-range int simply get a truncated byte. assertAlpha
// catches the contract violation in debug builds, see invariant.go.
func (c Color32) SetAlphaComponent(alpha int) Color32 {
	assertAlpha(alpha)
	return PackARGB(uint8(alpha), c.R(), c.G(), c.B()) //nolint:gosec
}

// ToRGB converts a Color32 to an RGB tuple.
func (c Color32) ToRGB() RGB {
	return RGB{R: c.R(), G: c.G(), B: c.B(), A: c.A()}
}

// ToStdColor converts a Color32 to a standard library color.Color.
func (c Color32) ToStdColor() color.Color {
	return color.RGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}
}

// String renders the colour as a hex string with alpha last, e.g. "#1a2b3cff".
func (c Color32) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R(), c.G(), c.B(), c.A())
}

// RGB represents a colour as a four-tuple (red, green, blue, alpha), each
// 0-255.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

// ToColor32 packs the RGB tuple into a Color32.
func (rgb RGB) ToColor32() Color32 {
	return PackARGB(rgb.A, rgb.R, rgb.G, rgb.B)
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as a hex string (e.g., "#1a2b3c"), ignoring alpha.
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// ToRGB converts a standard library color.Color to an RGB tuple, copying its
// alpha. Channels are taken as RGBA() reports them (alpha-premultiplied).
func ToRGB(c color.Color) RGB {
	r, g, b, a := c.RGBA()
	return RGB{
		R: uint8(r >> 8), //nolint:gosec
		G: uint8(g >> 8), //nolint:gosec
		B: uint8(b >> 8), //nolint:gosec
		A: uint8(a >> 8), //nolint:gosec
	}
}

// RGBToColor converts an RGB value to a standard library color.Color.
func RGBToColor(rgb RGB) color.Color {
	a := rgb.A
	if a == 0 {
		a = 255
	}
	return color.NRGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: a}
}

// CompositeVariant selects which alpha-over formula CompositeColors uses.
// See DESIGN.md for why both exist: the reference median-cut implementation
// this engine is ported from computes composite alpha as
// (af+ab)*(1-af) instead of the standard af+ab*(1-af). That looks like a
// bug, but callers porting fixtures from the reference need to be able to
// reproduce it exactly, so it is kept as an explicit opt-in rather than
// silently "fixed".
type CompositeVariant int

const (
	// CompositeStandard uses the conventional alpha-over formula.
	CompositeStandard CompositeVariant = iota
	// CompositeReferenceBug reproduces the reference implementation's
	// (af+ab)*(1-af) composite-alpha formula verbatim.
	CompositeReferenceBug
)

// CompositeColors alpha-composites fg over bg using double-precision
// arithmetic internally, clamping and rounding the result to the nearest
// integer channel value.
func CompositeColors(fg, bg Color32, variant CompositeVariant) Color32 {
	af := float64(fg.A()) / 255.0
	ab := float64(bg.A()) / 255.0

	var aOut float64
	switch variant {
	case CompositeReferenceBug:
		aOut = (af + ab) * (1 - af)
	default:
		aOut = af + ab*(1-af)
	}

	compositeChannel := func(cf, cb uint8) uint8 {
		fc := float64(cf) / 255.0
		bc := float64(cb) / 255.0
		premult := fc*af + bc*ab*(1-af)
		var result float64
		if aOut > 0 {
			result = premult / aOut
		}
		return clampByte(math.Round(result * 255.0))
	}

	return PackARGB(
		clampByte(math.Round(aOut*255.0)),
		compositeChannel(fg.R(), bg.R()),
		compositeChannel(fg.G(), bg.G()),
		compositeChannel(fg.B(), bg.B()),
	)
}

func clampByte(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v) //nolint:gosec // clamped above
}
