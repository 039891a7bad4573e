package landing

// Element ids and classes of the navigation menu.
const (
	MenuToggleID  = "mobile-menu"
	NavLinksClass = "nav-links"
	NavLinkClass  = "nav-link"
)

// Menu is the collapsible mobile navigation.
type Menu struct {
	toggle *Element
	links  *Element
}

// BindMenu wires the menu toggle and its links. A click on the toggle opens
// or closes the menu; a click on any link closes it. It returns false when
// either anchor is missing.
func BindMenu(doc *Document) (*Menu, bool) {
	toggle := doc.ByID(MenuToggleID)
	lists := doc.ByClass(NavLinksClass)
	if toggle == nil || len(lists) == 0 {
		return nil, false
	}
	m := &Menu{toggle: toggle, links: lists[0]}

	toggle.OnClick(func(*Element) { m.Toggle() })
	m.links.Walk(func(e *Element) {
		if e.HasClass(NavLinkClass) {
			e.OnClick(func(*Element) { m.Close() })
		}
	})
	return m, true
}

// Toggle flips the open state.
func (m *Menu) Toggle() {
	m.links.ToggleClass(ClassActive)
	m.toggle.ToggleClass(ClassActive)
}

// Close closes the menu.
func (m *Menu) Close() {
	m.links.RemoveClass(ClassActive)
	m.toggle.RemoveClass(ClassActive)
}

// Open reports whether the menu is open.
func (m *Menu) Open() bool {
	return m.links.HasClass(ClassActive)
}
