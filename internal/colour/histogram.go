package colour

// Histogram is a mapping from reduced-precision Color32 to pixel count.
// Reduced precision means each of R, G, B has its low 3 bits cleared
// (retaining the high 5 bits in place), with alpha forced to 0xFF; this collapses
// 24-bit colour into a 15-bit key space (32,768 buckets max). A Histogram
// owns no input pixels after construction.
type Histogram struct {
	counts map[Color32]int
}

// reduceKey quantizes a pixel's channels to 5 bits each and forces the
// colour opaque, per the spec's channel-reduction policy. This is
// deliberate: it caps the key space at 32,768 buckets and implicitly
// smooths JPEG-artifact noise. Population merging is driven entirely by
// equality of this reduced key, not the original 24-bit colour.
func reduceKey(p Color32) Color32 {
	return PackARGB(0xFF, p.R()>>3<<3, p.G()>>3<<3, p.B()>>3<<3)
}

// BuildHistogram tallies a finite sequence of ARGB32 pixels into a
// Histogram. Alpha on each input pixel is ignored and reset to opaque
// during histogramming, matching the entry-point precondition in spec.md §6.
func BuildHistogram(pixels []Color32) *Histogram {
	h := &Histogram{counts: make(map[Color32]int)}
	for _, p := range pixels {
		h.counts[reduceKey(p)]++
	}
	return h
}

// Colors returns the histogram's colours and their counts as two parallel
// arrays, in arbitrary order.
func (h *Histogram) Colors() (colors []Color32, counts []int) {
	colors = make([]Color32, 0, len(h.counts))
	counts = make([]int, 0, len(h.counts))
	for c, n := range h.counts {
		colors = append(colors, c)
		counts = append(counts, n)
	}
	return colors, counts
}

// Len returns the number of distinct reduced colours in the histogram.
func (h *Histogram) Len() int {
	return len(h.counts)
}
