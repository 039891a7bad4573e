package landing

import (
	"fmt"
	"time"
)

// Floating testimonial ids and classes.
const (
	TestimonialsID = "floatingTestimonials"
	SnippetClass   = "floating-snippet"
	classInView    = "in-view"
)

const highlightInterval = 4 * time.Second

// DefaultSnippets are the quotes floated behind the hero.
var DefaultSnippets = []string{
	`"Excellent work!"`,
	`"Delivered on time"`,
	`"Professional team"`,
	`"Clean design"`,
	`"Highly recommend"`,
	`"Fast loading site"`,
	`"Great value"`,
	`"Modern aesthetics"`,
}

// Testimonials floats short quotes and highlights one at a time.
type Testimonials struct {
	snippets []*Element
	current  int
	timer    Timer
}

// StartTestimonials fills the floating container with snippets and starts
// cycling the highlight every four seconds, beginning immediately. It
// returns false when the container is missing or the viewport is narrower
// than MobileBreakpoint.
func StartTestimonials(doc *Document, viewportWidth int, quotes []string, sched Scheduler) (*Testimonials, bool) {
	container := doc.ByID(TestimonialsID)
	if container == nil || IsMobileWidth(viewportWidth) || len(quotes) == 0 {
		return nil, false
	}

	t := &Testimonials{}
	for i, q := range quotes {
		el := NewElement("", SnippetClass)
		el.Text = q
		el.SetStyle("top", fmt.Sprintf("%d%%", 10+i*12))
		el.SetStyle("left", fmt.Sprintf("%d%%", 5+(i%4)*25))
		el.SetStyle("animationDelay", fmt.Sprintf("%gs", float64(i)*2.5))
		container.AppendChild(el)
		t.snippets = append(t.snippets, el)
	}

	t.highlight()
	t.timer = sched.Every(highlightInterval, t.highlight)
	return t, true
}

// Snippets returns the created snippet elements.
func (t *Testimonials) Snippets() []*Element {
	return t.snippets
}

// Stop ends the highlight cycle.
func (t *Testimonials) Stop() {
	if t.timer != nil {
		t.timer.Stop()
	}
}

func (t *Testimonials) highlight() {
	for _, s := range t.snippets {
		s.RemoveClass(classInView)
	}
	t.snippets[t.current].AddClass(classInView)
	t.current = (t.current + 1) % len(t.snippets)
}
