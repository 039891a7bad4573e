package landing

// FAQ and back-to-top anchors.
const (
	FAQQuestionClass = "faq-question"
	classFAQOpen     = "open"

	BackToTopID     = "backToTop"
	classShow       = "show"
	backToTopOffset = 300
)

// BindFAQ makes every ".faq-question" toggle "open" on its parent item. It
// returns the number of questions bound.
func BindFAQ(doc *Document) int {
	questions := doc.ByClass(FAQQuestionClass)
	for _, q := range questions {
		q.OnClick(func(e *Element) {
			if e.Parent != nil {
				e.Parent.ToggleClass(classFAQOpen)
			}
		})
	}
	return len(questions)
}

// BackToTop shows a button once the page has scrolled far enough.
type BackToTop struct {
	button *Element
}

// BindBackToTop wires the button. scrollTo is called with 0 when the button
// is clicked; the host performs the smooth scroll. It returns false when the
// button is missing.
func BindBackToTop(doc *Document, scrollTo func(y float64)) (*BackToTop, bool) {
	button := doc.ByID(BackToTopID)
	if button == nil {
		return nil, false
	}
	if scrollTo != nil {
		button.OnClick(func(*Element) { scrollTo(0) })
	}
	return &BackToTop{button: button}, true
}

// Scrolled updates the button for the page's vertical scroll offset.
func (b *BackToTop) Scrolled(offset float64) {
	if offset > backToTopOffset {
		b.button.AddClass(classShow)
		return
	}
	b.button.RemoveClass(classShow)
}
