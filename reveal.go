package landing

// Intersection is one visibility report from the host for an observed
// element. Ratio is the visible fraction in [0, 1].
type Intersection struct {
	Target *Element
	Ratio  float64
}

// RevealObserver adds a class to observed elements the first time they
// become visible enough. The class is never removed.
type RevealObserver struct {
	Threshold float64
	Class     string
	observed  []*Element
}

// Reveal presets.
const (
	RevealClass          = "animate-reveal"
	TestimonialCardClass = "testimonial-card"
	classInFocus         = "in-focus"
)

// ObserveReveal observes every ".animate-reveal" element, activating at 10%
// visibility.
func ObserveReveal(doc *Document) *RevealObserver {
	o := &RevealObserver{Threshold: 0.1, Class: ClassActive}
	o.Observe(doc.ByClass(RevealClass)...)
	return o
}

// ObserveTestimonialCards observes every ".testimonial-card", focusing at
// 50% visibility. It returns false when there are no cards.
func ObserveTestimonialCards(doc *Document) (*RevealObserver, bool) {
	cards := doc.ByClass(TestimonialCardClass)
	if len(cards) == 0 {
		return nil, false
	}
	o := &RevealObserver{Threshold: 0.5, Class: classInFocus}
	o.Observe(cards...)
	return o, true
}

// Observe adds elements to the observed set.
func (o *RevealObserver) Observe(elems ...*Element) {
	o.observed = append(o.observed, elems...)
}

// Observed returns the observed elements.
func (o *RevealObserver) Observed() []*Element {
	return o.observed
}

// Intersect applies a batch of visibility reports. Reports for elements not
// being observed are ignored.
func (o *RevealObserver) Intersect(entries ...Intersection) {
	for _, e := range entries {
		if e.Target == nil || e.Ratio <= 0 || e.Ratio < o.Threshold {
			continue
		}
		for _, el := range o.observed {
			if el == e.Target {
				el.AddClass(o.Class)
				break
			}
		}
	}
}
