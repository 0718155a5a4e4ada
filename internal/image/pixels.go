package image

import (
	stdimage "image"

	"github.com/colorcut/colorcut/internal/colour"
)

// ToARGB32 flattens a decoded image into a sequence of packed ARGB32 pixels,
// the input type the quantizer in internal/colour expects. The adapter, not
// the quantizer, owns any subsampling decision.
func ToARGB32(img stdimage.Image) []colour.Color32 {
	bounds := img.Bounds()
	pixels := make([]colour.Color32, 0, bounds.Dx()*bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			pixels = append(pixels, colour.PackARGB(
				uint8(a>>8), //nolint:gosec // RGBA() guarantees 0-65535, shift is exact
				uint8(r>>8),
				uint8(g>>8),
				uint8(b>>8),
			))
		}
	}
	return pixels
}

// ToARGB32Sampled behaves like ToARGB32 but grid-samples large images down to
// approximately maxSamples pixels, stepping by the integer square root of
// the pixel count over maxSamples in both directions.
func ToARGB32Sampled(img stdimage.Image, maxSamples int) []colour.Color32 {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	total := width * height

	if total <= maxSamples || maxSamples <= 0 {
		return ToARGB32(img)
	}

	step := isqrt(total / maxSamples)
	if step < 1 {
		step = 1
	}

	pixels := make([]colour.Color32, 0, maxSamples)
	for y := bounds.Min.Y; y < bounds.Max.Y; y += step {
		for x := bounds.Min.X; x < bounds.Max.X; x += step {
			r, g, b, a := img.At(x, y).RGBA()
			pixels = append(pixels, colour.PackARGB(
				uint8(a>>8), //nolint:gosec
				uint8(r>>8),
				uint8(g>>8),
				uint8(b>>8),
			))
			if len(pixels) >= maxSamples {
				return pixels
			}
		}
	}
	return pixels
}

// isqrt computes an integer square root without pulling in math.Sqrt for a
// single call site.
func isqrt(n int) int {
	if n <= 0 {
		return 0
	}
	x := n
	y := (x + 1) / 2
	for y < x {
		x = y
		y = (x + n/x) / 2
	}
	return x
}
