package colour

// shouldIgnore implements the colour filter policy: reject near-black,
// near-white, and "red I-line" (empirical skin-tone) colours. Applied to
// both source colours before quantization and to averaged box outputs
// after quantization — averaging can drift an accepted box's output back
// into an excluded region, so the filter runs twice.
func shouldIgnore(hsl HSL) bool {
	if hsl.L <= 0.05 || hsl.L >= 0.95 {
		return true
	}
	if hsl.H >= 10 && hsl.H <= 37 && hsl.S <= 0.82 {
		return true
	}
	return false
}
