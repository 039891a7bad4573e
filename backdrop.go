package landing

import (
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Backdrop owns the hero animation: particles, drifting symbols and the last
// known pointer position. It implements ebiten.Game; the simulation advances
// once per drawn frame.
//
// Lifecycle: NewBackdrop, then Resize (or the first Layout) seeds the
// populations; every resize replaces them wholesale; Close drops them.
type Backdrop struct {
	cfg    Config
	rng    *rand.Rand
	width  float64
	height float64
	closed bool

	particles []*Particle
	symbols   []*Symbol
	pointer   *Vec2

	canvas *ImageCanvas
	clock  *FrameClock
	doc    *Document

	updateFunc func() error
	drawFunc   func(screen *ebiten.Image)

	// Input polling and synthetic events.
	lastCursor   [2]int
	cursorSeen   bool
	cursorTravel float64
	unfocused    bool
	focusFunc    func() bool // nil uses ebiten.IsFocused
	injectQueue  []pointerEvent
	script       *Script

	// Screenshots are written here by Screenshot. Defaults to "screenshots".
	ScreenshotDir   string
	screenshotQueue []string
	screenshots     int

	debug      bool
	debugFrame int
}

// NewBackdrop creates a backdrop with the given configuration. rng seeds the
// populations; nil uses a randomly seeded source. The backdrop is empty until
// Resize or Layout gives it a size.
func NewBackdrop(cfg Config, rng *rand.Rand) *Backdrop {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Backdrop{
		cfg:           cfg,
		rng:           rng,
		ScreenshotDir: "screenshots",
	}
}

// Config returns the configuration chosen at creation.
func (b *Backdrop) Config() Config {
	return b.cfg
}

// Size returns the current viewport size.
func (b *Backdrop) Size() (w, h float64) {
	return b.width, b.height
}

// Particles returns the live particles. The returned slice MUST NOT be mutated.
func (b *Backdrop) Particles() []*Particle {
	return b.particles
}

// Symbols returns the live symbols. The returned slice MUST NOT be mutated.
func (b *Backdrop) Symbols() []*Symbol {
	return b.symbols
}

// Resize sets the viewport size and regenerates every particle and symbol.
func (b *Backdrop) Resize(w, h int) {
	if b.closed {
		return
	}
	b.width, b.height = float64(w), float64(h)

	b.particles = make([]*Particle, b.cfg.ParticleCount)
	for i := range b.particles {
		b.particles[i] = NewParticle(b.rng, b.width, b.height, b.cfg)
	}
	b.symbols = make([]*Symbol, b.cfg.SymbolCount)
	for i := range b.symbols {
		b.symbols[i] = NewSymbol(b.rng, b.width, b.height, b.cfg)
	}
}

// Close tears the backdrop down. Later steps and resizes are no-ops.
func (b *Backdrop) Close() {
	b.closed = true
	b.particles = nil
	b.symbols = nil
	b.pointer = nil
}

// Closed reports whether Close has been called.
func (b *Backdrop) Closed() bool {
	return b.closed
}

// PointerMove records the pointer at (x, y) in surface coordinates.
func (b *Backdrop) PointerMove(x, y float64) {
	b.pointer = &Vec2{X: x, Y: y}
}

// PointerLeave clears the pointer.
func (b *Backdrop) PointerLeave() {
	b.pointer = nil
}

// Pointer returns the pointer position and whether it is over the surface.
func (b *Backdrop) Pointer() (Vec2, bool) {
	if b.pointer == nil {
		return Vec2{}, false
	}
	return *b.pointer, true
}

// Step runs one frame: clear, update and draw symbols, draw connector lines,
// update and draw particles.
func (b *Backdrop) Step(c Canvas) {
	if b.closed {
		return
	}
	var t0 time.Time
	if b.debug {
		t0 = time.Now()
	}

	c.Clear()
	for _, s := range b.symbols {
		s.Update(b.height)
		s.Draw(c)
	}
	lines := drawConnectors(c, b.particles, b.pointer, b.cfg.MaxDistance, accent)
	glowing := 0
	for _, p := range b.particles {
		p.Update(b.pointer, b.width, b.height)
		p.Draw(c)
		if p.Glow > 0 {
			glowing++
		}
	}

	if b.debug {
		b.debugLog(debugStats{
			stepTime:  time.Since(t0),
			particles: len(b.particles),
			symbols:   len(b.symbols),
			lines:     lines,
			glowing:   glowing,
		})
	}
}

// SetClock attaches a FrameClock that Update advances by one tick per frame.
func (b *Backdrop) SetClock(c *FrameClock) {
	b.clock = c
}

// SetDocument attaches the page that scripted clicks are dispatched to.
func (b *Backdrop) SetDocument(d *Document) {
	b.doc = d
}

// SetUpdateFunc sets a callback run at the end of every Update.
func (b *Backdrop) SetUpdateFunc(fn func() error) {
	b.updateFunc = fn
}

// SetDrawFunc sets a callback that draws on top of the backdrop each frame.
func (b *Backdrop) SetDrawFunc(fn func(screen *ebiten.Image)) {
	b.drawFunc = fn
}

// SetCanvas replaces the canvas used by Draw, e.g. to set a background or a
// glyph font.
func (b *Backdrop) SetCanvas(c *ImageCanvas) {
	b.canvas = c
}

// Update implements ebiten.Game.
func (b *Backdrop) Update() error {
	if b.script != nil {
		b.script.step(b)
	}
	b.processInput()
	if b.clock != nil {
		b.clock.Tick()
	}
	if b.updateFunc != nil {
		return b.updateFunc()
	}
	return nil
}

// Draw implements ebiten.Game.
func (b *Backdrop) Draw(screen *ebiten.Image) {
	if b.canvas == nil {
		font, err := LoadGlyphFont()
		if err != nil {
			logf("draw: symbols disabled: %v", err)
		}
		b.canvas = NewImageCanvas(screen, font)
	}
	b.canvas.SetTarget(screen)
	b.Step(b.canvas)
	if b.drawFunc != nil {
		b.drawFunc(screen)
	}
	b.flushScreenshots(screen)
}

// Layout implements ebiten.Game. A change of outside size resizes the
// backdrop.
func (b *Backdrop) Layout(outsideWidth, outsideHeight int) (int, int) {
	if float64(outsideWidth) != b.width || float64(outsideHeight) != b.height {
		b.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
