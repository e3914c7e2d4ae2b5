package components

import (
	"github.com/alexisbeaulieu97/themecore/internal/app/theme"
)

// ComponentEntry is one initialized component prepared for rendering.
type ComponentEntry struct {
	Name          string
	ID            string
	Line          int
	Subscriptions int
}

// Aliased reports whether the document named the component by an alias.
func (e ComponentEntry) Aliased() bool {
	return e.ID != "" && e.ID != e.Name
}

// ComponentList renders initialized components in document order.
type ComponentList struct {
	entries []ComponentEntry
}

// NewComponentList constructs a component list.
func NewComponentList(initialized []theme.Initialized) ComponentList {
	entries := make([]ComponentEntry, 0, len(initialized))
	for _, c := range initialized {
		entries = append(entries, ComponentEntry{
			Name:          c.Name,
			ID:            c.ID,
			Line:          c.Line,
			Subscriptions: len(c.Subscriptions),
		})
	}
	return ComponentList{entries: entries}
}

// Entries returns the ordered entries.
func (l ComponentList) Entries() []ComponentEntry {
	clone := make([]ComponentEntry, len(l.entries))
	copy(clone, l.entries)
	return clone
}
