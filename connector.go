package landing

import "math"

// ConnectorOpacity returns the line opacity for two points d apart: a linear
// falloff from scale at d=0 to zero at maxDist. It is zero at and beyond
// maxDist.
func ConnectorOpacity(d, maxDist, scale float64) float64 {
	if maxDist <= 0 || d >= maxDist {
		return 0
	}
	return (1 - d/maxDist) * scale
}

// drawConnectors strokes a line between every pair of particles closer than
// maxDist, and from every particle within PointerLineRadius to the pointer.
// It returns the number of lines drawn.
func drawConnectors(c Canvas, particles []*Particle, pointer *Vec2, maxDist float64, tint Color) int {
	lines := 0
	for i, a := range particles {
		for _, b := range particles[i+1:] {
			d := math.Hypot(a.X-b.X, a.Y-b.Y)
			if op := ConnectorOpacity(d, maxDist, pairLineScale); op > 0 {
				c.StrokeLine(a.X, a.Y, b.X, b.Y, pairLineWidth, tint.WithAlpha(op))
				lines++
			}
		}

		if pointer == nil {
			continue
		}
		d := math.Hypot(pointer.X-a.X, pointer.Y-a.Y)
		if op := ConnectorOpacity(d, PointerLineRadius, pointerLineScale); op > 0 {
			c.StrokeLine(a.X, a.Y, pointer.X, pointer.Y, pointerLineWidth, tint.WithAlpha(op))
			lines++
		}
	}
	return lines
}
