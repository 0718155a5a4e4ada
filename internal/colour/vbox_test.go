package colour

import "testing"

func TestVboxFitBox(t *testing.T) {
	colors := []Color32{
		PackARGB(255, 10, 200, 50),
		PackARGB(255, 100, 20, 250),
		PackARGB(255, 5, 90, 150),
	}
	b := &vbox{lower: 0, upper: 2}
	b.fitBox(colors)

	if b.minR != 5 || b.maxR != 100 {
		t.Errorf("R span = [%d,%d], want [5,100]", b.minR, b.maxR)
	}
	if b.minG != 20 || b.maxG != 200 {
		t.Errorf("G span = [%d,%d], want [20,200]", b.minG, b.maxG)
	}
	if b.minB != 50 || b.maxB != 250 {
		t.Errorf("B span = [%d,%d], want [50,250]", b.minB, b.maxB)
	}
}

func TestVboxCanSplit(t *testing.T) {
	single := &vbox{lower: 0, upper: 0}
	if single.canSplit() {
		t.Error("a box covering one colour should not be splittable")
	}
	multi := &vbox{lower: 0, upper: 1}
	if !multi.canSplit() {
		t.Error("a box covering two colours should be splittable")
	}
}

func TestVboxFindSplitPointPartitionsInPlace(t *testing.T) {
	colors := []Color32{
		PackARGB(255, 0, 0, 0),
		PackARGB(255, 255, 0, 0),
		PackARGB(255, 128, 0, 0),
		PackARGB(255, 64, 0, 0),
	}
	b := &vbox{lower: 0, upper: 3}
	b.fitBox(colors)

	split := b.findSplitPoint(colors)
	if split < b.lower || split >= b.upper {
		t.Fatalf("findSplitPoint returned %d, out of [%d,%d)", split, b.lower, b.upper)
	}

	// After sorting along the split dimension, every colour at or before
	// split must be <= every colour after it, on that dimension.
	d := b.longestDimension()
	for i := b.lower; i <= split; i++ {
		for j := split + 1; j <= b.upper; j++ {
			if channelOf(colors[i], d) > channelOf(colors[j], d) {
				t.Errorf("partition violated: colors[%d]=%d > colors[%d]=%d on dim %v", i, channelOf(colors[i], d), j, channelOf(colors[j], d), d)
			}
		}
	}
}

func TestVboxAverageColorIsPopulationWeighted(t *testing.T) {
	c1 := PackARGB(255, 0, 0, 0)
	c2 := PackARGB(255, 100, 100, 100)
	colors := []Color32{c1, c2}
	pop := map[Color32]int{c1: 3, c2: 1}

	b := &vbox{lower: 0, upper: 1}
	b.fitBox(colors)

	avg, total := b.averageColor(colors, pop)
	if total != 4 {
		t.Fatalf("total population = %d, want 4", total)
	}
	// Weighted average of 0 (x3) and 100 (x1) is 25.
	if absDiff(avg.R, 25) > 1 {
		t.Errorf("averageColor R = %d, want ~25", avg.R)
	}
}

func TestVboxLongestDimensionTiebreak(t *testing.T) {
	b := &vbox{minR: 0, maxR: 10, minG: 0, maxG: 10, minB: 0, maxB: 10}
	if got := b.longestDimension(); got != dimRed {
		t.Errorf("expected R > G > B tiebreak to pick dimRed for equal spans, got %v", got)
	}
}
