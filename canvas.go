package landing

import (
	"bytes"
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gomono"
)

// Canvas is the 2D drawing surface the backdrop renders onto.
type Canvas interface {
	// Clear erases the whole surface.
	Clear()
	// FillCircle fills a circle. A positive blur adds a soft halo of that
	// radius in shadow.
	FillCircle(x, y, r float64, fill Color, blur float64, shadow Color)
	// StrokeLine draws a straight segment.
	StrokeLine(x1, y1, x2, y2, width float64, stroke Color)
	// FillGlyph draws s centered on (x, y), rotated by angle degrees, with a
	// monospaced font of the given pixel size.
	FillGlyph(s string, x, y, size, angle float64, fill Color)
}

// Sprite is anything the render loop can draw each frame.
type Sprite interface {
	Draw(c Canvas)
}

// --- Ebitengine canvas ---

// GlyphFont is a parsed monospaced font used for drifting symbols. Faces are
// cached per pixel size.
type GlyphFont struct {
	source *text.GoTextFaceSource
	faces  map[float64]*text.GoTextFace
}

// LoadGlyphFont parses Go Mono.
func LoadGlyphFont() (*GlyphFont, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return nil, fmt.Errorf("landing: failed to parse glyph font: %w", err)
	}
	return &GlyphFont{source: source, faces: make(map[float64]*text.GoTextFace)}, nil
}

// Face returns the face for the given pixel size, rounded to whole pixels.
func (f *GlyphFont) Face(size float64) *text.GoTextFace {
	// Symbol sizes are continuous; bucket to whole pixels to bound the cache.
	size = math.Round(size)
	if face, ok := f.faces[size]; ok {
		return face
	}
	face := &text.GoTextFace{Source: f.source, Size: size}
	f.faces[size] = face
	return face
}

// ImageCanvas renders onto an *ebiten.Image with the vector and text/v2
// packages.
type ImageCanvas struct {
	dst  *ebiten.Image
	font *GlyphFont

	// Background fills the surface on Clear. A zero Background clears to
	// transparent.
	Background Color
}

// NewImageCanvas wraps dst. font may be nil, in which case glyphs are skipped.
func NewImageCanvas(dst *ebiten.Image, font *GlyphFont) *ImageCanvas {
	return &ImageCanvas{dst: dst, font: font}
}

// SetTarget retargets the canvas, typically to the screen image passed to
// Draw each frame.
func (c *ImageCanvas) SetTarget(dst *ebiten.Image) {
	c.dst = dst
}

func (c *ImageCanvas) Clear() {
	if c.Background.A > 0 {
		c.dst.Fill(c.Background.toRGBA())
		return
	}
	c.dst.Clear()
}

const haloSteps = 4

func (c *ImageCanvas) FillCircle(x, y, r float64, fill Color, blur float64, shadow Color) {
	if blur > 0 {
		// Approximate a Gaussian shadow with widening translucent rings.
		for i := haloSteps; i >= 1; i-- {
			t := float64(i) / haloSteps
			halo := shadow.WithAlpha(shadow.A * (1 - t) / 2)
			vector.DrawFilledCircle(c.dst, float32(x), float32(y), float32(r+blur*t), halo.toRGBA(), true)
		}
	}
	vector.DrawFilledCircle(c.dst, float32(x), float32(y), float32(r), fill.toRGBA(), true)
}

func (c *ImageCanvas) StrokeLine(x1, y1, x2, y2, width float64, stroke Color) {
	vector.StrokeLine(c.dst, float32(x1), float32(y1), float32(x2), float32(y2), float32(width), stroke.toRGBA(), true)
}

func (c *ImageCanvas) FillGlyph(s string, x, y, size, angle float64, fill Color) {
	if c.font == nil {
		return
	}
	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignEnd
	op.GeoM.Rotate(angle * math.Pi / 180)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(fill.toRGBA())
	text.Draw(c.dst, s, c.font.Face(size), op)
}

// --- Recording canvas ---

// OpKind identifies a recorded drawing operation.
type OpKind uint8

const (
	OpClear  OpKind = iota // surface cleared
	OpCircle               // filled circle
	OpLine                 // stroked line
	OpGlyph                // text glyph
)

// DrawOp is one operation captured by RecordingCanvas.
type DrawOp struct {
	Kind           OpKind
	X1, Y1, X2, Y2 float64
	Size           float64 // radius, line width or font size
	Blur           float64
	Angle          float64
	Color          Color
	Text           string
}

// RecordingCanvas captures drawing operations instead of rasterizing them.
// Used by tests and by debug stats.
type RecordingCanvas struct {
	Ops []DrawOp
}

func (c *RecordingCanvas) Clear() {
	c.Ops = append(c.Ops[:0], DrawOp{Kind: OpClear})
}

func (c *RecordingCanvas) FillCircle(x, y, r float64, fill Color, blur float64, _ Color) {
	c.Ops = append(c.Ops, DrawOp{Kind: OpCircle, X1: x, Y1: y, Size: r, Blur: blur, Color: fill})
}

func (c *RecordingCanvas) StrokeLine(x1, y1, x2, y2, width float64, stroke Color) {
	c.Ops = append(c.Ops, DrawOp{Kind: OpLine, X1: x1, Y1: y1, X2: x2, Y2: y2, Size: width, Color: stroke})
}

func (c *RecordingCanvas) FillGlyph(s string, x, y, size, angle float64, fill Color) {
	c.Ops = append(c.Ops, DrawOp{Kind: OpGlyph, X1: x, Y1: y, Size: size, Angle: angle, Color: fill, Text: s})
}

// Count returns how many recorded operations are of kind k.
func (c *RecordingCanvas) Count(k OpKind) int {
	n := 0
	for i := range c.Ops {
		if c.Ops[i].Kind == k {
			n++
		}
	}
	return n
}
