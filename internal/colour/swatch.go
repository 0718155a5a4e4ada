package colour

import (
	"image/color"
	"sync"
)

const (
	bodyContrastTarget  = 4.5 // WCAG AA, normal text
	titleContrastTarget = 3.0 // WCAG AA, large text
)

var (
	textWhite = RGBToColor(RGB{R: 255, G: 255, B: 255, A: 255})
	textBlack = RGBToColor(RGB{R: 0, G: 0, B: 0, A: 255})
)

// TextColor is a foreground overlay colour for text rendered on a swatch:
// a grayscale value (0=black, 1=white) plus the minimum alpha required to
// meet a WCAG contrast target against the swatch.
type TextColor struct {
	Gray  uint8
	Alpha float64
}

// PaletteSwatch is a final output record: a representative colour, its
// pixel population, and lazily-computed, memoized WCAG title/body text
// colours.
type PaletteSwatch struct {
	RGB        RGB
	Population int

	textOnce sync.Once
	title    *TextColor
	body     *TextColor
}

// NewPaletteSwatch constructs a swatch from an averaged colour and its
// total population.
func NewPaletteSwatch(rgb RGB, population int) *PaletteSwatch {
	rgb.A = 255
	return &PaletteSwatch{RGB: rgb, Population: population}
}

// Color32 returns the swatch's colour packed as a Color32.
func (s *PaletteSwatch) Color32() Color32 {
	return s.RGB.ToColor32()
}

// TitleTextColor returns the swatch's title (large-text, 3:1) foreground
// colour, computing and caching it on first call. ok is false if no
// foreground colour could be resolved.
func (s *PaletteSwatch) TitleTextColor() (tc TextColor, ok bool) {
	s.ensureTextColors()
	if s.title == nil {
		return TextColor{}, false
	}
	return *s.title, true
}

// BodyTextColor returns the swatch's body (normal-text, 4.5:1) foreground
// colour, computing and caching it on first call. ok is false if no
// foreground colour could be resolved.
func (s *PaletteSwatch) BodyTextColor() (tc TextColor, ok bool) {
	s.ensureTextColors()
	if s.body == nil {
		return TextColor{}, false
	}
	return *s.body, true
}

// Equals reports whether two swatches have equal RGB tuples and equal
// populations, per the spec's equality definition.
func (s *PaletteSwatch) Equals(other *PaletteSwatch) bool {
	if other == nil {
		return false
	}
	return s.RGB == other.RGB && s.Population == other.Population
}

// Hash combines the swatch's RGB tuple and population, matching Equals's
// field set.
func (s *PaletteSwatch) Hash() uint64 {
	h := uint64(s.RGB.R)
	h = h*31 + uint64(s.RGB.G)
	h = h*31 + uint64(s.RGB.B)
	h = h*31 + uint64(s.Population)
	return h
}

// ensureTextColors runs the generator at most once per swatch, per the
// spec's memoization requirement.
func (s *PaletteSwatch) ensureTextColors() {
	s.textOnce.Do(func() {
		s.title, s.body = generateTextColors(RGBToColor(s.RGB))
	})
}

// generateTextColors implements the C5 algorithm: try a white overlay for
// both targets, then black, then fall back to an independently-resolved
// mixed pair.
func generateTextColors(bg color.Color) (title, body *TextColor) {
	whiteBody, whiteBodyOK := MinAlpha(textWhite, bg, bodyContrastTarget)
	whiteTitle, whiteTitleOK := MinAlpha(textWhite, bg, titleContrastTarget)
	if whiteBodyOK && whiteTitleOK {
		return &TextColor{Gray: 1, Alpha: float64(whiteTitle) / 255.0},
			&TextColor{Gray: 1, Alpha: float64(whiteBody) / 255.0}
	}

	blackBody, blackBodyOK := MinAlpha(textBlack, bg, bodyContrastTarget)
	blackTitle, blackTitleOK := MinAlpha(textBlack, bg, titleContrastTarget)
	if blackBodyOK && blackTitleOK {
		return &TextColor{Gray: 0, Alpha: float64(blackTitle) / 255.0},
			&TextColor{Gray: 0, Alpha: float64(blackBody) / 255.0}
	}

	// Mixed fallback: resolve body and title independently, preferring
	// white where it works.
	switch {
	case whiteBodyOK:
		body = &TextColor{Gray: 1, Alpha: float64(whiteBody) / 255.0}
	case blackBodyOK:
		body = &TextColor{Gray: 0, Alpha: float64(blackBody) / 255.0}
	}

	switch {
	case whiteTitleOK:
		title = &TextColor{Gray: 1, Alpha: float64(whiteTitle) / 255.0}
	case blackTitleOK:
		title = &TextColor{Gray: 0, Alpha: float64(blackTitle) / 255.0}
	}

	return title, body
}
