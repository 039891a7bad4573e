package landing

import "math/rand/v2"

// Symbol is a code glyph that drifts vertically, spins slowly and wraps
// between the top and bottom edges.
type Symbol struct {
	X, Y    float64
	Glyph   string
	Size    float64
	VY      float64
	Opacity float64
	// Angle and Spin are in degrees and degrees per frame.
	Angle float64
	Spin  float64

	color Color
}

var (
	symbolSize    = Range{12, 26}
	symbolOpacity = Range{0.1, 0.4}
	symbolAngle   = Range{0, 360}
)

// NewSymbol seeds a symbol at a random position inside a w x h viewport with
// a glyph picked from cfg.Symbols.
func NewSymbol(rng *rand.Rand, w, h float64, cfg Config) *Symbol {
	glyphs := cfg.Symbols
	if len(glyphs) == 0 {
		glyphs = DefaultSymbols
	}
	return &Symbol{
		X:       rng.Float64() * w,
		Y:       rng.Float64() * h,
		Glyph:   glyphs[rng.IntN(len(glyphs))],
		Size:    symbolSize.Random(rng),
		VY:      (rng.Float64() - 0.5) * 0.3,
		Opacity: symbolOpacity.Random(rng),
		Angle:   symbolAngle.Random(rng),
		Spin:    (rng.Float64() - 0.5) * 0.5,
		color:   cfg.SymbolColor,
	}
}

// Update advances the drift and rotation for a viewport of height h.
func (s *Symbol) Update(h float64) {
	s.Y += s.VY
	s.Angle += s.Spin

	if s.Y < -symbolMargin {
		s.Y = h + symbolMargin
	}
	if s.Y > h+symbolMargin {
		s.Y = -symbolMargin
	}
}

func (s *Symbol) Draw(c Canvas) {
	c.FillGlyph(s.Glyph, s.X, s.Y, s.Size, s.Angle, s.color.WithAlpha(s.Opacity))
}
