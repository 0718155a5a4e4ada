package colour

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-hclog"
)

// QuantizerConfig configures a median-cut quantization run.
type QuantizerConfig struct {
	// MaxColors is the target palette size. Must be >= 1.
	MaxColors int

	// Variant records an alpha-over formula choice for callers that pass it
	// on to CompositeColors. The quantizer itself never composites and does
	// not read this field, and ContrastRatio/MinAlpha always use
	// CompositeStandard. Defaults to CompositeStandard.
	Variant CompositeVariant

	// Logger receives Trace-level messages for each box pop/split/push,
	// useful for diagnosing pathological splits. Nil-safe: defaults to a
	// no-op logger, mirroring go-plugin's own NewNullLogger convention.
	Logger hclog.Logger
}

// DefaultQuantizerConfig returns the default quantizer configuration.
func DefaultQuantizerConfig() QuantizerConfig {
	return QuantizerConfig{
		MaxColors: 16,
		Variant:   CompositeStandard,
	}
}

// Validate validates the quantizer configuration.
func (c QuantizerConfig) Validate() error {
	if c.MaxColors < 1 {
		return fmt.Errorf("max colors must be at least 1, got %d", c.MaxColors)
	}
	return nil
}

// QuantizedPalette is the output of a quantization run: an unordered list
// of PaletteSwatch records. Callers that require ordering (e.g. by
// population) must sort the result themselves.
type QuantizedPalette struct {
	Swatches []*PaletteSwatch
}

// TotalPopulation sums the population of every swatch in the palette.
func (p *QuantizedPalette) TotalPopulation() int {
	total := 0
	for _, s := range p.Swatches {
		total += s.Population
	}
	return total
}

// ExtractPalette is the core entry point: given a finite sequence of ARGB32
// pixels and a target palette size, produce a palette of representative
// swatches via a modified median-cut quantizer. Each pixel's alpha is
// ignored and reset to opaque during histogramming. ctx is checked only at
// the histogram-build boundary; the box-splitting loop itself is a pure,
// synchronous computation with no suspension points.
func ExtractPalette(ctx context.Context, pixels []Color32, maxColors int) (*QuantizedPalette, error) {
	cfg := DefaultQuantizerConfig()
	cfg.MaxColors = maxColors
	return ExtractPaletteWithConfig(ctx, pixels, cfg)
}

// ExtractPaletteWithConfig is ExtractPalette with an explicit QuantizerConfig.
func ExtractPaletteWithConfig(ctx context.Context, pixels []Color32, cfg QuantizerConfig) (*QuantizedPalette, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid quantizer config: %w", err)
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	logger := cfg.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	if len(pixels) == 0 {
		return &QuantizedPalette{}, nil
	}

	q := newQuantizer(pixels, logger)
	return q.run(cfg.MaxColors), nil
}

// quantizer owns the colour array and population map for a single
// quantization run. Every vbox produced during the run is a non-owning
// view into quantizer.colors, valid only for the lifetime of this run.
type quantizer struct {
	colors      []Color32 // quantizer-owned, mutated in place by box splits
	pop         map[Color32]int
	nextOrdinal int
	logger      hclog.Logger
}

func newQuantizer(pixels []Color32, logger hclog.Logger) *quantizer {
	hist := BuildHistogram(pixels)
	reducedColors, reducedCounts := hist.Colors()

	pop := make(map[Color32]int, len(reducedColors))
	for i, c := range reducedColors {
		pop[c] = reducedCounts[i]
	}

	candidates := make([]Color32, 0, len(reducedColors))
	for _, c := range reducedColors {
		if !shouldIgnore(ToHSL(c.ToRGB())) {
			candidates = append(candidates, c)
		}
	}

	return &quantizer{colors: candidates, pop: pop, logger: logger}
}

func (q *quantizer) newOrdinal() int {
	o := q.nextOrdinal
	q.nextOrdinal++
	return o
}

// run executes the box-splitting loop and returns the resulting palette.
func (q *quantizer) run(maxColors int) *QuantizedPalette {
	v := len(q.colors)
	if v == 0 {
		return &QuantizedPalette{}
	}

	if v <= maxColors {
		// Below the cap: emit one swatch per remaining colour directly,
		// skipping the box-splitting loop entirely.
		swatches := make([]*PaletteSwatch, 0, v)
		for _, c := range q.colors {
			swatches = append(swatches, NewPaletteSwatch(c.ToRGB(), q.pop[c]))
		}
		return &QuantizedPalette{Swatches: swatches}
	}

	queue := &boxQueue{}
	seed := &vbox{lower: 0, upper: v - 1, ordinal: q.newOrdinal()}
	seed.fitBox(q.colors)
	pushBox(queue, seed)

	for queue.Len() < maxColors {
		box := popMax(queue)
		if !box.canSplit() {
			q.logger.Trace("box cannot split further, stopping", "colorCount", box.colorCount())
			pushBox(queue, box)
			break
		}

		split := box.findSplitPoint(q.colors)
		right := &vbox{lower: split + 1, upper: box.upper, ordinal: q.newOrdinal()}
		box.upper = split
		box.fitBox(q.colors)
		right.fitBox(q.colors)

		q.logger.Trace("split box", "at", split, "leftCount", box.colorCount(), "rightCount", right.colorCount())

		pushBox(queue, box)
		pushBox(queue, right)
	}

	swatches := make([]*PaletteSwatch, 0, queue.Len())
	for _, box := range *queue {
		avg, total := box.averageColor(q.colors, q.pop)
		if total == 0 {
			continue // guard against division by zero; not expected in practice
		}
		if shouldIgnore(ToHSL(avg)) {
			continue // averaging can drift back into an excluded region
		}
		swatches = append(swatches, NewPaletteSwatch(avg, total))
	}

	return &QuantizedPalette{Swatches: swatches}
}
