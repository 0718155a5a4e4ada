package colour

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"sort"
)

// MedianCutExtractor implements the Extractor interface over the package's
// core median-cut quantizer (see quantizer.go). It adapts between the
// Extractor interface's image.Image/Palette vocabulary and the core
// engine's Color32/QuantizedPalette vocabulary, ordering the resulting
// palette by population descending so callers get the most visually
// significant swatches first.
type MedianCutExtractor struct{}

// NewMedianCutExtractor creates a new MedianCutExtractor.
func NewMedianCutExtractor() *MedianCutExtractor {
	return &MedianCutExtractor{}
}

// flattenToColor32 reads every pixel of img into a flat Color32 slice. It
// lives here rather than reusing internal/image's ToARGB32 because
// internal/image imports this package; importing it back would create an
// import cycle.
func flattenToColor32(img image.Image) []Color32 {
	bounds := img.Bounds()
	pixels := make([]Color32, 0, bounds.Dx()*bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			pixels = append(pixels, PackARGB(uint8(a>>8), uint8(r>>8), uint8(g>>8), uint8(b>>8))) //nolint:gosec
		}
	}
	return pixels
}

// Extract extracts a palette from img using median-cut quantization.
func (e *MedianCutExtractor) Extract(img image.Image, count int) (*Palette, error) {
	if img == nil {
		return nil, fmt.Errorf("image cannot be nil")
	}
	if count < 1 {
		return nil, fmt.Errorf("color count must be at least 1, got %d", count)
	}
	if count > 256 {
		return nil, fmt.Errorf("color count too large: %d (maximum: 256)", count)
	}

	pixels := flattenToColor32(img)
	if len(pixels) == 0 {
		return nil, fmt.Errorf("no pixels found in image")
	}

	quantized, err := ExtractPalette(context.Background(), pixels, count)
	if err != nil {
		return nil, fmt.Errorf("median cut extraction failed: %w", err)
	}

	swatches := quantized.Swatches
	sort.Slice(swatches, func(i, j int) bool {
		return swatches[i].Population > swatches[j].Population
	})

	colors := make([]color.Color, len(swatches))
	weights := make([]float64, len(swatches))
	total := quantized.TotalPopulation()
	for i, s := range swatches {
		colors[i] = s.RGB.ToColor32().ToStdColor()
		if total > 0 {
			weights[i] = float64(s.Population) / float64(total)
		}
	}

	return NewPaletteWithWeights(colors, weights), nil
}
