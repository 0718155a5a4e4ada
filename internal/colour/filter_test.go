package colour

import "testing"

func TestShouldIgnoreNearBlackAndWhite(t *testing.T) {
	if !shouldIgnore(HSL{H: 0, S: 0, L: 0.02}) {
		t.Error("expected near-black to be ignored")
	}
	if !shouldIgnore(HSL{H: 0, S: 0, L: 0.98}) {
		t.Error("expected near-white to be ignored")
	}
	if shouldIgnore(HSL{H: 0, S: 0, L: 0.5}) {
		t.Error("expected mid-lightness grey to be kept")
	}
}

func TestShouldIgnoreRedILine(t *testing.T) {
	if !shouldIgnore(HSL{H: 20, S: 0.5, L: 0.5}) {
		t.Error("expected a desaturated skin-tone hue to be ignored")
	}
	if shouldIgnore(HSL{H: 20, S: 0.9, L: 0.5}) {
		t.Error("expected a highly saturated colour in the skin-tone hue range to be kept")
	}
	if shouldIgnore(HSL{H: 200, S: 0.5, L: 0.5}) {
		t.Error("expected a hue outside the skin-tone range to be kept")
	}
}

func TestShouldIgnoreIdempotent(t *testing.T) {
	hsl := HSL{H: 20, S: 0.5, L: 0.5}
	first := shouldIgnore(hsl)
	second := shouldIgnore(hsl)
	if first != second {
		t.Error("shouldIgnore must be a pure, idempotent predicate")
	}
}
