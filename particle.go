package landing

import (
	"math"
	"math/rand/v2"
)

// Particle is a drifting point that is pulled toward the pointer and glows
// while it is close.
type Particle struct {
	X, Y     float64
	VX, VY   float64
	BaseSize float64
	// Size is BaseSize plus the glow contribution, recomputed every Update.
	Size float64
	// Glow is in [0, 1]. It jumps to the pointer proximity when in range and
	// decays by glowDecay per frame otherwise.
	Glow float64

	color Color
}

var particleSize = Range{1, 4}

// NewParticle seeds a particle at a random position inside a w x h viewport.
func NewParticle(rng *rand.Rand, w, h float64, cfg Config) *Particle {
	size := particleSize.Random(rng)
	return &Particle{
		X:        rng.Float64() * w,
		Y:        rng.Float64() * h,
		VX:       (rng.Float64() - 0.5) * cfg.ParticleSpeed,
		VY:       (rng.Float64() - 0.5) * cfg.ParticleSpeed,
		BaseSize: size,
		Size:     size,
		color:    cfg.ParticleColor,
	}
}

// Update advances the particle one frame inside a w x h viewport. pointer is
// nil when the pointer is outside the surface.
func (p *Particle) Update(pointer *Vec2, w, h float64) {
	p.X += p.VX
	p.Y += p.VY

	if p.X < 0 || p.X > w {
		p.VX = -p.VX
	}
	if p.Y < 0 || p.Y > h {
		p.VY = -p.VY
	}
	p.clampTo(w, h)

	// Without a pointer the glow holds its value.
	if pointer != nil {
		dx := pointer.X - p.X
		dy := pointer.Y - p.Y
		d := math.Sqrt(dx*dx + dy*dy)
		if d < PointerRadius {
			proximity := 1 - d/PointerRadius
			force := proximity * attractStrength
			p.X += dx * force
			p.Y += dy * force
			p.Glow = proximity
			// The pull never overshoots the pointer, but the pointer itself
			// may sit on the edge of the surface.
			p.clampTo(w, h)
		} else {
			p.Glow = math.Max(0, p.Glow-glowDecay)
		}
	}
	p.Size = p.BaseSize + p.Glow*glowGrowth
}

func (p *Particle) clampTo(w, h float64) {
	p.X = clamp(p.X, 0, w)
	p.Y = clamp(p.Y, 0, h)
}

// Draw fills the particle. Glowing particles are brighter and blurred.
func (p *Particle) Draw(c Canvas) {
	if p.Glow > 0 {
		fill := accent.WithAlpha(0.5 + p.Glow*0.5)
		c.FillCircle(p.X, p.Y, p.Size, fill, glowBlur*p.Glow, accent.WithAlpha(0.8))
		return
	}
	c.FillCircle(p.X, p.Y, p.Size, p.color, 0, Color{})
}
