package colour

import (
	"context"
	"math/rand"
	"testing"
)

// TestPropertyPartition verifies that after a split, every colour index in
// a box's original [lower,upper] range ends up in exactly one of the two
// resulting boxes.
func TestPropertyPartition(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	colors := randomColors(rng, 64)

	b := &vbox{lower: 0, upper: len(colors) - 1}
	b.fitBox(colors)
	split := b.findSplitPoint(colors)

	left := &vbox{lower: b.lower, upper: split}
	right := &vbox{lower: split + 1, upper: b.upper}

	if left.colorCount()+right.colorCount() != len(colors) {
		t.Errorf("partition lost colours: left=%d right=%d total=%d", left.colorCount(), right.colorCount(), len(colors))
	}
}

// TestPropertyTightFit verifies fitBox always reports extrema that are
// actually present in the box's slice.
func TestPropertyTightFit(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	colors := randomColors(rng, 32)

	b := &vbox{lower: 0, upper: len(colors) - 1}
	b.fitBox(colors)

	var sawMinR, sawMaxR bool
	for _, c := range colors {
		if c.R() == b.minR {
			sawMinR = true
		}
		if c.R() == b.maxR {
			sawMaxR = true
		}
	}
	if !sawMinR || !sawMaxR {
		t.Error("fitBox reported R extrema not present in the box's colours")
	}
}

// TestPropertyCountBound verifies ExtractPalette never emits more swatches
// than maxColors.
func TestPropertyCountBound(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for trial := 0; trial < 10; trial++ {
		pixels := randomColors(rng, 500)
		maxColors := 1 + rng.Intn(20)

		p, err := ExtractPalette(context.Background(), pixels, maxColors)
		if err != nil {
			t.Fatalf("ExtractPalette error = %v", err)
		}
		if len(p.Swatches) > maxColors {
			t.Errorf("trial %d: got %d swatches, want at most %d", trial, len(p.Swatches), maxColors)
		}
	}
}

// TestPropertyPopulationConservation verifies the sum of all swatch
// populations equals the pixel count, for colours that survive the filter.
func TestPropertyPopulationConservation(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	pixels := make([]Color32, 0, 1000)
	for i := 0; i < 1000; i++ {
		// Keep to mid lightness with red strictly the smallest reduced
		// channel, so every hue (and every box average) lies in
		// [120,240] degrees, clear of the skin-tone band. Nothing is
		// dropped by shouldIgnore and conservation is exact.
		r := uint8(60 + rng.Intn(40))
		g := uint8(104 + rng.Intn(56))
		b := uint8(104 + rng.Intn(56))
		pixels = append(pixels, PackARGB(255, r, g, b))
	}

	p, err := ExtractPalette(context.Background(), pixels, 16)
	if err != nil {
		t.Fatalf("ExtractPalette error = %v", err)
	}
	if got := p.TotalPopulation(); got != len(pixels) {
		t.Errorf("TotalPopulation() = %d, want %d", got, len(pixels))
	}
}

// TestPropertyHSLRoundTrip verifies RGB -> HSL -> RGB is identity within
// rounding error across random samples.
func TestPropertyHSLRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 200; i++ {
		rgb := RGB{R: uint8(rng.Intn(256)), G: uint8(rng.Intn(256)), B: uint8(rng.Intn(256)), A: 255}
		got := ToHSL(rgb).ToRGB()
		if absDiff(got.R, rgb.R) > 1 || absDiff(got.G, rgb.G) > 1 || absDiff(got.B, rgb.B) > 1 {
			t.Errorf("round trip for %+v produced %+v", rgb, got)
		}
	}
}

// TestPropertyContrastMonotonic verifies contrast against a fixed light
// background strictly decreases as the foreground grey lightens toward it.
func TestPropertyContrastMonotonic(t *testing.T) {
	bg := RGBToColor(RGB{R: 255, G: 255, B: 255, A: 255})

	prev := 1e9
	for grey := 0; grey <= 255; grey += 15 {
		fg := RGBToColor(RGB{R: uint8(grey), G: uint8(grey), B: uint8(grey), A: 255})
		contrast := ContrastRatio(fg, bg)
		if contrast > prev+1e-9 {
			t.Errorf("contrast increased while lightening toward the background: grey=%d contrast=%v prev=%v", grey, contrast, prev)
		}
		prev = contrast
	}
}

// TestPropertyMinAlphaCorrectness verifies that whenever MinAlpha reports
// success, the returned alpha actually clears the requested target.
func TestPropertyMinAlphaCorrectness(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	bg := RGBToColor(RGB{R: 255, G: 255, B: 255, A: 255})

	for i := 0; i < 50; i++ {
		fgRGB := RGB{R: uint8(rng.Intn(256)), G: uint8(rng.Intn(256)), B: uint8(rng.Intn(256)), A: 255}
		fg := RGBToColor(fgRGB)
		target := 1.5 + rng.Float64()*5

		alpha, ok := MinAlpha(fg, bg, target)
		if !ok {
			continue
		}
		candidate := RGBToColor(RGB{R: fgRGB.R, G: fgRGB.G, B: fgRGB.B, A: uint8(alpha)})
		if got := ContrastRatio(candidate, bg); got < target {
			t.Errorf("MinAlpha(%+v, target=%v) returned alpha %d, but contrast %v is below target", fgRGB, target, alpha, got)
		}
	}
}

// TestPropertyFilterIdempotent verifies shouldIgnore is a pure function of
// its HSL input: calling it twice on the same value always agrees.
func TestPropertyFilterIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		hsl := HSL{H: rng.Float64() * 360, S: rng.Float64(), L: rng.Float64()}
		if shouldIgnore(hsl) != shouldIgnore(hsl) {
			t.Errorf("shouldIgnore(%+v) is not idempotent", hsl)
		}
	}
}

func randomColors(rng *rand.Rand, n int) []Color32 {
	out := make([]Color32, n)
	for i := range out {
		out[i] = PackARGB(255, uint8(rng.Intn(256)), uint8(rng.Intn(256)), uint8(rng.Intn(256)))
	}
	return out
}
