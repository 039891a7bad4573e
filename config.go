package landing

// MobileBreakpoint is the viewport width below which the reduced mobile
// configuration is used and the floating testimonials are skipped.
const MobileBreakpoint = 768

const (
	// PointerRadius is the distance within which a particle is attracted to
	// the pointer and glows.
	PointerRadius = 200.0
	// PointerLineRadius is the distance within which a connector line is
	// drawn from a particle to the pointer.
	PointerLineRadius = 180.0

	attractStrength = 0.08
	glowDecay       = 0.02
	glowGrowth      = 3.0
	glowBlur        = 15.0

	pairLineScale    = 0.15
	pairLineWidth    = 1.0
	pointerLineScale = 0.4
	pointerLineWidth = 1.5

	// symbolMargin is how far past an edge a symbol drifts before wrapping.
	symbolMargin = 20.0
)

// accent is the sky-blue used throughout the backdrop.
var accent = RGB255(56, 189, 248, 1)

// Config holds the backdrop tunables. It is chosen once when a Backdrop is
// created and never mutated afterward.
type Config struct {
	ParticleCount int
	SymbolCount   int
	ParticleColor Color
	LineColor     Color
	SymbolColor   Color
	// MaxDistance is the pairwise connector cutoff.
	MaxDistance   float64
	ParticleSpeed float64
	Symbols       []string
}

// DefaultSymbols is the glyph set drifting symbols are drawn from.
var DefaultSymbols = []string{"</", "/>", "{}", "()", "[]", "=>", "/*", "*/"}

// DesktopConfig returns the configuration for unconstrained viewports.
func DesktopConfig() Config {
	return Config{
		ParticleCount: 80,
		SymbolCount:   15,
		ParticleColor: accent.WithAlpha(0.5),
		LineColor:     accent.WithAlpha(0.1),
		SymbolColor:   accent.WithAlpha(0.2),
		MaxDistance:   150,
		ParticleSpeed: 0.4,
		Symbols:       DefaultSymbols,
	}
}

// MobileConfig returns the configuration for viewports narrower than
// MobileBreakpoint.
func MobileConfig() Config {
	c := DesktopConfig()
	c.ParticleCount = 30
	c.SymbolCount = 5
	c.MaxDistance = 100
	return c
}

// ConfigForWidth selects MobileConfig or DesktopConfig by viewport width.
func ConfigForWidth(width int) Config {
	if IsMobileWidth(width) {
		return MobileConfig()
	}
	return DesktopConfig()
}

// IsMobileWidth reports whether width is below MobileBreakpoint.
func IsMobileWidth(width int) bool {
	return width < MobileBreakpoint
}
