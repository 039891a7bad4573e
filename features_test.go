package landing

import (
	"testing"
	"time"
)

func menuPage() *Document {
	doc := NewDocument()
	links := NewElement("", NavLinksClass)
	links.AppendChild(NewElement("about", NavLinkClass))
	links.AppendChild(NewElement("work", NavLinkClass))
	doc.Add(NewElement(MenuToggleID), links)
	return doc
}

func TestMenuToggleAndClose(t *testing.T) {
	doc := menuPage()
	m, ok := BindMenu(doc)
	if !ok {
		t.Fatal("BindMenu failed")
	}
	toggle := doc.ByID(MenuToggleID)

	toggle.Click()
	if !m.Open() || !toggle.HasClass(ClassActive) {
		t.Fatal("menu should open on toggle click")
	}
	toggle.Click()
	if m.Open() || toggle.HasClass(ClassActive) {
		t.Fatal("menu should close on second toggle click")
	}
	toggle.Click()
	doc.ByID("work").Click()
	if m.Open() || toggle.HasClass(ClassActive) {
		t.Error("link click should close the menu")
	}
}

func TestMenuMissing(t *testing.T) {
	if _, ok := BindMenu(NewDocument()); ok {
		t.Error("BindMenu ok on empty page")
	}
}

func TestRevealObserver(t *testing.T) {
	doc := NewDocument()
	a := NewElement("a", RevealClass)
	b := NewElement("b", RevealClass)
	stray := NewElement("stray")
	doc.Add(a, b, stray)

	o := ObserveReveal(doc)
	if len(o.Observed()) != 2 {
		t.Fatalf("observed = %d, want 2", len(o.Observed()))
	}
	o.Intersect(
		Intersection{Target: a, Ratio: 0.05},
		Intersection{Target: b, Ratio: 0.1},
		Intersection{Target: stray, Ratio: 1},
	)
	if a.HasClass(ClassActive) {
		t.Error("a activated below threshold")
	}
	if !b.HasClass(ClassActive) {
		t.Error("b not activated at threshold")
	}
	if stray.HasClass(ClassActive) {
		t.Error("unobserved element activated")
	}

	// Leaving the viewport never removes the class.
	o.Intersect(Intersection{Target: b, Ratio: 0})
	if !b.HasClass(ClassActive) {
		t.Error("class removed after leaving")
	}
}

func TestTestimonialCards(t *testing.T) {
	doc := NewDocument()
	if _, ok := ObserveTestimonialCards(doc); ok {
		t.Error("ok without cards")
	}
	card := NewElement("c1", TestimonialCardClass)
	doc.Add(card)
	o, ok := ObserveTestimonialCards(doc)
	if !ok {
		t.Fatal("ObserveTestimonialCards failed")
	}
	o.Intersect(Intersection{Target: card, Ratio: 0.4})
	if card.HasClass("in-focus") {
		t.Error("focused below 50%")
	}
	o.Intersect(Intersection{Target: card, Ratio: 0.6})
	if !card.HasClass("in-focus") {
		t.Error("not focused above 50%")
	}
}

func TestTestimonialsLayoutAndCycle(t *testing.T) {
	doc := NewDocument()
	doc.Add(NewElement(TestimonialsID))
	clock := NewFrameClock()

	tm, ok := StartTestimonials(doc, 1280, DefaultSnippets, clock)
	if !ok {
		t.Fatal("StartTestimonials failed")
	}
	snips := tm.Snippets()
	if len(snips) != 8 {
		t.Fatalf("snippets = %d, want 8", len(snips))
	}
	if len(doc.ByClass(SnippetClass)) != 8 {
		t.Error("snippets not attached to the container")
	}

	s5 := snips[5]
	if s5.Style("top") != "70%" || s5.Style("left") != "30%" || s5.Style("animationDelay") != "12.5s" {
		t.Errorf("snippet 5 style = %s/%s/%s, want 70%%/30%%/12.5s",
			s5.Style("top"), s5.Style("left"), s5.Style("animationDelay"))
	}

	inView := func() int {
		for i, s := range snips {
			if s.HasClass("in-view") {
				return i
			}
		}
		return -1
	}
	if inView() != 0 {
		t.Fatalf("highlight = %d at start, want 0", inView())
	}
	clock.Advance(4 * time.Second)
	if inView() != 1 {
		t.Errorf("highlight = %d after 4s, want 1", inView())
	}
	clock.Advance(7 * 4 * time.Second)
	if inView() != 0 {
		t.Errorf("highlight = %d after a full cycle, want 0", inView())
	}

	tm.Stop()
	clock.Advance(4 * time.Second)
	if inView() != 0 {
		t.Error("highlight moved after Stop")
	}
}

func TestTestimonialsSkippedOnMobile(t *testing.T) {
	doc := NewDocument()
	doc.Add(NewElement(TestimonialsID))
	clock := NewFrameClock()
	if _, ok := StartTestimonials(doc, 767, DefaultSnippets, clock); ok {
		t.Error("testimonials started on a mobile viewport")
	}
	if clock.Pending() != 0 {
		t.Error("timer scheduled on a mobile viewport")
	}
}

func TestFAQToggle(t *testing.T) {
	doc := NewDocument()
	item := NewElement("item")
	q := NewElement("q", FAQQuestionClass)
	item.AppendChild(q)
	doc.Add(item)

	if n := BindFAQ(doc); n != 1 {
		t.Fatalf("bound = %d, want 1", n)
	}
	q.Click()
	if !item.HasClass("open") {
		t.Error("item not open after click")
	}
	q.Click()
	if item.HasClass("open") {
		t.Error("item still open after second click")
	}
}

func TestBackToTop(t *testing.T) {
	doc := NewDocument()
	btn := NewElement(BackToTopID)
	doc.Add(btn)

	scrolledTo := -1.0
	b, ok := BindBackToTop(doc, func(y float64) { scrolledTo = y })
	if !ok {
		t.Fatal("BindBackToTop failed")
	}
	b.Scrolled(300)
	if btn.HasClass("show") {
		t.Error("shown at exactly 300")
	}
	b.Scrolled(301)
	if !btn.HasClass("show") {
		t.Error("not shown past 300")
	}
	b.Scrolled(10)
	if btn.HasClass("show") {
		t.Error("still shown after scrolling back up")
	}
	btn.Click()
	if scrolledTo != 0 {
		t.Errorf("scrollTo = %v, want 0", scrolledTo)
	}

	if _, ok := BindBackToTop(NewDocument(), nil); ok {
		t.Error("ok without button")
	}
}
