package colour

import "sort"

// dimension identifies one of the three colour channels a Vbox can split
// along.
type dimension int

const (
	dimRed dimension = iota
	dimGreen
	dimBlue
)

// vbox is a half-open region of 3-D colour space anchored to a contiguous
// slice [lower, upper] of the quantizer's shared, mutable colour array. It
// is a non-owning view: the quantizer holds the backing array and
// population map, a vbox is a plain value struct carrying only index
// bounds, fitted channel extrema, and a tiebreak ordinal.
type vbox struct {
	lower, upper int // inclusive indices into the quantizer's colour array

	minR, maxR uint8
	minG, maxG uint8
	minB, maxB uint8

	ordinal int // monotonically increasing, used only as a heap tiebreaker
}

// colorCount returns the number of colours covered by this box.
func (b *vbox) colorCount() int {
	return b.upper - b.lower + 1
}

// canSplit reports whether the box has more than one colour and so could
// be split further.
func (b *vbox) canSplit() bool {
	return b.colorCount() > 1
}

// volume returns the product of the box's per-channel inclusive spans.
func (b *vbox) volume() int {
	return int(b.maxR-b.minR+1) * int(b.maxG-b.minG+1) * int(b.maxB-b.minB+1)
}

// fitBox scans the box's slice of the shared colour array and sets each
// channel's min/max to the observed extrema (inclusive). It must be called
// any time the underlying slice for this box's [lower,upper] range changes.
func (b *vbox) fitBox(colors []Color32) {
	first := colors[b.lower]
	minR, maxR := first.R(), first.R()
	minG, maxG := first.G(), first.G()
	minB, maxB := first.B(), first.B()

	for i := b.lower + 1; i <= b.upper; i++ {
		c := colors[i]
		if r := c.R(); r < minR {
			minR = r
		} else if r > maxR {
			maxR = r
		}
		if g := c.G(); g < minG {
			minG = g
		} else if g > maxG {
			maxG = g
		}
		if bl := c.B(); bl < minB {
			minB = bl
		} else if bl > maxB {
			maxB = bl
		}
	}

	b.minR, b.maxR = minR, maxR
	b.minG, b.maxG = minG, maxG
	b.minB, b.maxB = minB, maxB
}

// longestDimension returns the channel with the largest max-min span,
// breaking ties R > G > B.
func (b *vbox) longestDimension() dimension {
	rSpan := int(b.maxR) - int(b.minR)
	gSpan := int(b.maxG) - int(b.minG)
	bSpan := int(b.maxB) - int(b.minB)

	switch {
	case rSpan >= gSpan && rSpan >= bSpan:
		return dimRed
	case gSpan >= bSpan:
		return dimGreen
	default:
		return dimBlue
	}
}

func channelOf(c Color32, d dimension) uint8 {
	switch d {
	case dimRed:
		return c.R()
	case dimGreen:
		return c.G()
	default:
		return c.B()
	}
}

func (b *vbox) midpoint(d dimension) int {
	switch d {
	case dimRed:
		return (int(b.minR) + int(b.maxR)) / 2
	case dimGreen:
		return (int(b.minG) + int(b.maxG)) / 2
	default:
		return (int(b.minB) + int(b.maxB)) / 2
	}
}

// findSplitPoint sorts the box's slice of the shared colour array in place
// by the box's longest dimension, then returns the index of the first
// element at or past that dimension's midpoint. For R and G the comparison
// is "at or past" (>=); for B it is strict (>), an asymmetry preserved
// verbatim from the reference algorithm — see DESIGN.md. If no index
// matches, lower is returned (a degenerate split, handled by the caller).
func (b *vbox) findSplitPoint(colors []Color32) int {
	d := b.longestDimension()
	slice := colors[b.lower : b.upper+1]
	sort.Slice(slice, func(i, j int) bool {
		return channelOf(slice[i], d) < channelOf(slice[j], d)
	})

	mid := b.midpoint(d)
	for i := b.lower; i < b.upper; i++ {
		v := int(channelOf(colors[i], d))
		if d == dimBlue {
			if v > mid {
				return i
			}
		} else if v >= mid {
			return i
		}
	}
	return b.lower
}

// averageColor computes the population-weighted average colour over the
// box's slice, along with its total population. The alpha channel of the
// result is always 255.
func (b *vbox) averageColor(colors []Color32, pop map[Color32]int) (RGB, int) {
	var sumR, sumG, sumB, total int64
	for i := b.lower; i <= b.upper; i++ {
		c := colors[i]
		n := int64(pop[c])
		sumR += int64(c.R()) * n
		sumG += int64(c.G()) * n
		sumB += int64(c.B()) * n
		total += n
	}
	if total == 0 {
		return RGB{}, 0
	}

	round := func(sum int64) uint8 {
		return clampByte(float64(sum)/float64(total) + 0.5)
	}

	return RGB{R: round(sumR), G: round(sumG), B: round(sumB), A: 255}, int(total)
}
