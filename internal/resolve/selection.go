package resolve

// SelectionSet is an insertion-ordered collection of entries, unique by
// (platform, id). Order is preserved so output is reproducible for
// identical inputs and registry responses; downstream consumers attach no
// meaning to it.
type SelectionSet struct {
	order   []Key
	entries map[Key]*Entry
}

// NewSelectionSet returns an empty set.
func NewSelectionSet() *SelectionSet {
	return &SelectionSet{entries: make(map[Key]*Entry)}
}

// Add inserts the entry if its key is not already present. It reports
// whether the entry was inserted.
func (s *SelectionSet) Add(e *Entry) bool {
	k := e.Key()
	if _, exists := s.entries[k]; exists {
		return false
	}
	s.entries[k] = e
	s.order = append(s.order, k)
	return true
}

// Get returns the entry for the given key, if present.
func (s *SelectionSet) Get(k Key) (*Entry, bool) {
	e, ok := s.entries[k]
	return e, ok
}

// Has reports whether an entry with the given key is present.
func (s *SelectionSet) Has(k Key) bool {
	_, ok := s.entries[k]
	return ok
}

// Len returns the number of entries.
func (s *SelectionSet) Len() int {
	return len(s.order)
}

// Entries returns the entries in insertion order. The returned slice is
// freshly allocated; the entries themselves are shared.
func (s *SelectionSet) Entries() []*Entry {
	out := make([]*Entry, 0, len(s.order))
	for _, k := range s.order {
		out = append(out, s.entries[k])
	}
	return out
}
