package landing

import (
	"slices"
	"strings"
)

// Element is a node of the page whose identifier, classes and inline styles
// drive the stylesheet. Features only toggle state on elements; layout and
// painting belong to the host.
type Element struct {
	ID       string
	Text     string
	Disabled bool
	// Value is the current input value for form fields.
	Value string

	Parent   *Element
	children []*Element

	classes []string
	style   map[string]string
	onClick []func(*Element)
}

// NewElement creates a detached element with the given id and classes.
func NewElement(id string, classes ...string) *Element {
	e := &Element{ID: id}
	for _, c := range classes {
		e.AddClass(c)
	}
	return e
}

// AppendChild attaches child as the last child of e.
func (e *Element) AppendChild(child *Element) {
	if child.Parent != nil {
		child.Parent.removeChild(child)
	}
	child.Parent = e
	e.children = append(e.children, child)
}

func (e *Element) removeChild(child *Element) {
	if i := slices.Index(e.children, child); i >= 0 {
		e.children = slices.Delete(e.children, i, i+1)
	}
	child.Parent = nil
}

// Children returns e's children. The returned slice MUST NOT be mutated.
func (e *Element) Children() []*Element {
	return e.children
}

// Walk visits e and its descendants in document order.
func (e *Element) Walk(fn func(*Element)) {
	fn(e)
	for _, c := range e.children {
		c.Walk(fn)
	}
}

// HasClass reports whether the class list contains name.
func (e *Element) HasClass(name string) bool {
	return slices.Contains(e.classes, name)
}

// AddClass adds name to the class list if absent.
func (e *Element) AddClass(name string) {
	if name == "" || e.HasClass(name) {
		return
	}
	e.classes = append(e.classes, name)
}

// RemoveClass removes name from the class list if present.
func (e *Element) RemoveClass(name string) {
	if i := slices.Index(e.classes, name); i >= 0 {
		e.classes = slices.Delete(e.classes, i, i+1)
	}
}

// ToggleClass flips name and reports whether it is now present.
func (e *Element) ToggleClass(name string) bool {
	if e.HasClass(name) {
		e.RemoveClass(name)
		return false
	}
	e.AddClass(name)
	return true
}

// SetClassName replaces the whole class list with the space-separated names.
func (e *Element) SetClassName(names string) {
	e.classes = e.classes[:0]
	for _, n := range strings.Fields(names) {
		e.AddClass(n)
	}
}

// ClassName returns the class list joined by spaces.
func (e *Element) ClassName() string {
	return strings.Join(e.classes, " ")
}

// SetStyle sets an inline style property.
func (e *Element) SetStyle(prop, value string) {
	if e.style == nil {
		e.style = make(map[string]string)
	}
	e.style[prop] = value
}

// Style returns an inline style property, or "" when unset.
func (e *Element) Style(prop string) string {
	return e.style[prop]
}

// OnClick registers a click handler.
func (e *Element) OnClick(fn func(*Element)) {
	e.onClick = append(e.onClick, fn)
}

// Click dispatches a click to e's handlers.
func (e *Element) Click() {
	for _, fn := range e.onClick {
		fn(e)
	}
}

// Hidden reports whether e carries the "hidden" class.
func (e *Element) Hidden() bool {
	return e.HasClass(ClassHidden)
}

// Class names shared by several features.
const (
	ClassActive    = "active"
	ClassHidden    = "hidden"
	ClassCollapsed = "collapsed"
)

// Document is a tree of elements rooted at Body.
type Document struct {
	Body *Element
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{Body: NewElement("body")}
}

// Add appends elements to the body and returns the first one.
func (d *Document) Add(elems ...*Element) *Element {
	for _, e := range elems {
		d.Body.AppendChild(e)
	}
	if len(elems) == 0 {
		return nil
	}
	return elems[0]
}

// ByID returns the first element with the given id, or nil.
func (d *Document) ByID(id string) *Element {
	var found *Element
	d.Body.Walk(func(e *Element) {
		if found == nil && e.ID == id {
			found = e
		}
	})
	return found
}

// ByClass returns every element carrying class, in document order.
func (d *Document) ByClass(class string) []*Element {
	var out []*Element
	d.Body.Walk(func(e *Element) {
		if e.HasClass(class) {
			out = append(out, e)
		}
	})
	return out
}
