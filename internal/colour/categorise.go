package colour

import "sort"

// Role identifies the part a swatch plays in a themed UI once a palette has
// been categorised.
type Role int

const (
	RoleBackground Role = iota
	RoleForeground
	RoleAccent
	RoleMuted
)

func (r Role) String() string {
	switch r {
	case RoleBackground:
		return "background"
	case RoleForeground:
		return "foreground"
	case RoleAccent:
		return "accent"
	case RoleMuted:
		return "muted"
	default:
		return "unknown"
	}
}

// CategorisationConfig tunes how Categorise assigns roles to a quantized
// palette's swatches.
type CategorisationConfig struct {
	// MinForegroundContrast is the minimum WCAG contrast ratio a candidate
	// must reach against the chosen background to be accepted as the
	// foreground swatch.
	MinForegroundContrast float64

	// AccentCount caps how many of the remaining swatches are labelled
	// accents (by population, descending) before the rest fall back to
	// RoleMuted.
	AccentCount int
}

// DefaultCategorisationConfig returns the default categorisation
// configuration: WCAG AA body-text contrast, up to 3 accents.
func DefaultCategorisationConfig() CategorisationConfig {
	return CategorisationConfig{
		MinForegroundContrast: bodyContrastTarget,
		AccentCount:           3,
	}
}

const (
	// mutedSaturationFactor desaturates RoleMuted swatches so they recede
	// visually behind the foreground/accent swatches.
	mutedSaturationFactor = 0.5
	// accentLuminanceBoost lifts RoleAccent swatches slightly so they read
	// as a highlight against the background.
	accentLuminanceBoost = 0.08
)

// CategorisedSwatch pairs a PaletteSwatch with the role it was assigned and
// a Display colour styled for that role: RoleMuted is desaturated, RoleAccent
// is brightened, and RoleBackground/RoleForeground are left untouched.
type CategorisedSwatch struct {
	*PaletteSwatch
	Role    Role
	Display RGB
}

// styleForRole derives a role-appropriate display colour from a swatch's
// averaged colour.
func styleForRole(rgb RGB, role Role) RGB {
	hsl := ToHSL(rgb)
	switch role {
	case RoleMuted:
		return AdjustSaturation(hsl.H, hsl.S, hsl.L, mutedSaturationFactor)
	case RoleAccent:
		return AdjustLuminance(hsl.H, hsl.S, hsl.L, accentLuminanceBoost)
	default:
		return rgb
	}
}

// CategorisedPalette is a QuantizedPalette with roles assigned to each
// swatch.
type CategorisedPalette struct {
	Swatches []CategorisedSwatch
}

// Background returns the swatch assigned RoleBackground, if any.
func (p *CategorisedPalette) Background() (*PaletteSwatch, bool) {
	return p.firstWithRole(RoleBackground)
}

// Foreground returns the swatch assigned RoleForeground, if any.
func (p *CategorisedPalette) Foreground() (*PaletteSwatch, bool) {
	return p.firstWithRole(RoleForeground)
}

// Accents returns every swatch assigned RoleAccent, ordered by population
// descending.
func (p *CategorisedPalette) Accents() []*PaletteSwatch {
	var out []*PaletteSwatch
	for _, s := range p.Swatches {
		if s.Role == RoleAccent {
			out = append(out, s.PaletteSwatch)
		}
	}
	return out
}

func (p *CategorisedPalette) firstWithRole(r Role) (*PaletteSwatch, bool) {
	for _, s := range p.Swatches {
		if s.Role == r {
			return s.PaletteSwatch, true
		}
	}
	return nil, false
}

// Categorise assigns background/foreground/accent/muted roles to a
// quantized palette's swatches. The background is the most populous
// swatch; the foreground is the candidate with the highest contrast
// against the background that still clears MinForegroundContrast; among
// candidates with exactly equal contrast, the more populous one wins.
// Remaining swatches, ranked by
// population, become accents up to AccentCount and muted beyond that.
func Categorise(palette *QuantizedPalette, cfg CategorisationConfig) *CategorisedPalette {
	if palette == nil || len(palette.Swatches) == 0 {
		return &CategorisedPalette{}
	}

	ranked := make([]*PaletteSwatch, len(palette.Swatches))
	copy(ranked, palette.Swatches)
	sort.Slice(ranked, func(i, j int) bool {
		return ranked[i].Population > ranked[j].Population
	})

	background := ranked[0]
	fgIdx := selectForeground(ranked[1:], background, cfg.MinForegroundContrast)

	out := &CategorisedPalette{Swatches: make([]CategorisedSwatch, 0, len(ranked))}
	out.Swatches = append(out.Swatches, CategorisedSwatch{
		PaletteSwatch: background,
		Role:          RoleBackground,
		Display:       styleForRole(background.RGB, RoleBackground),
	})

	accents := 0
	for i, s := range ranked[1:] {
		role := RoleMuted
		switch {
		case i == fgIdx:
			role = RoleForeground
		case accents < cfg.AccentCount:
			role = RoleAccent
			accents++
		}
		out.Swatches = append(out.Swatches, CategorisedSwatch{
			PaletteSwatch: s,
			Role:          role,
			Display:       styleForRole(s.RGB, role),
		})
	}

	return out
}

// selectForeground finds the index (within candidates) of the swatch with
// the highest contrast against bg, returning -1 if none clears minContrast.
func selectForeground(candidates []*PaletteSwatch, bg *PaletteSwatch, minContrast float64) int {
	best := -1
	bestContrast := 0.0
	bgColor := RGBToColor(bg.RGB)

	for i, c := range candidates {
		contrast := ContrastRatio(RGBToColor(c.RGB), bgColor)
		if contrast >= minContrast && contrast > bestContrast {
			best = i
			bestContrast = contrast
		}
	}
	return best
}
