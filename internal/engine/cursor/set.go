package cursor

import (
	"sort"

	"github.com/dshills/textforge/internal/engine/coords"
)

// Set is the ordered collection of active cursors. There is always at
// least one cursor (the main cursor at index 0). current is the index
// of the cursor new operations act on; lastAdded remembers which
// cursor was placed most recently so removing "the newest" works even
// after the set was re-sorted.
type Set struct {
	cursors   []Cursor
	current   int
	lastAdded int
}

// NewSet returns a set holding one collapsed cursor at the origin.
func NewSet() *Set {
	return &Set{cursors: []Cursor{{}}}
}

// Count returns the number of cursors.
func (s *Set) Count() int { return len(s.cursors) }

// Get returns cursor i by value.
func (s *Set) Get(i int) Cursor { return s.cursors[i] }

// Main returns the main cursor.
func (s *Set) Main() Cursor { return s.cursors[s.current] }

// CurrentIndex returns the index of the cursor operations act on.
func (s *Set) CurrentIndex() int { return s.current }

// SetCursor replaces cursor i.
func (s *Set) SetCursor(i int, c Cursor) { s.cursors[i] = c }

// SetPosition moves cursor i's interactive end, and its start too when
// clearSelection is set.
func (s *Set) SetPosition(i int, pos coords.Coordinate, clearSelection bool) {
	if clearSelection {
		s.cursors[i].InteractiveStart = pos
	}
	s.cursors[i].InteractiveEnd = pos
}

// Add appends a cursor, which becomes current and last-added.
func (s *Set) Add(c Cursor) {
	s.cursors = append(s.cursors, c)
	s.current = len(s.cursors) - 1
	s.lastAdded = s.current
}

// ClearExtras collapses the set to the current cursor only.
func (s *Set) ClearExtras() {
	if len(s.cursors) <= 1 {
		return
	}
	main := s.cursors[s.current]
	s.cursors = []Cursor{main}
	s.current = 0
	s.lastAdded = 0
}

// LastAddedIndex returns the index of the most recently added cursor,
// falling back to 0 when it no longer exists.
func (s *Set) LastAddedIndex() int {
	if s.lastAdded >= len(s.cursors) {
		return 0
	}
	return s.lastAdded
}

// RemoveLastAdded drops the most recently added cursor, keeping at
// least one.
func (s *Set) RemoveLastAdded() {
	if len(s.cursors) <= 1 {
		return
	}
	i := s.LastAddedIndex()
	s.cursors = append(s.cursors[:i], s.cursors[i+1:]...)
	if s.current >= len(s.cursors) {
		s.current = len(s.cursors) - 1
	}
	s.lastAdded = 0
}

// All returns the cursors slice. Callers must treat it as read-only.
func (s *Set) All() []Cursor { return s.cursors }

// AnyHasSelection reports whether any cursor carries a selection.
func (s *Set) AnyHasSelection() bool {
	for _, c := range s.cursors {
		if c.HasSelection() {
			return true
		}
	}
	return false
}

// AllHaveSelection reports whether every cursor carries a selection.
func (s *Set) AllHaveSelection() bool {
	for _, c := range s.cursors {
		if !c.HasSelection() {
			return false
		}
	}
	return true
}

// SortTopToBottom orders cursors by selection start. The last-added
// index is re-resolved afterwards by matching its pre-sort position.
func (s *Set) SortTopToBottom() {
	lastAddedPos := s.cursors[s.LastAddedIndex()].InteractiveEnd
	sort.SliceStable(s.cursors, func(a, b int) bool {
		return s.cursors[a].SelectionStart().Before(s.cursors[b].SelectionStart())
	})
	for c := len(s.cursors) - 1; c > -1; c-- {
		if s.cursors[c].InteractiveEnd == lastAddedPos {
			s.lastAdded = c
		}
	}
	s.current = len(s.cursors) - 1
}

// Merge collapses cursors whose selections contain or overlap each
// other, and duplicate carets when nothing is selected. Requires the
// set to be sorted top to bottom.
func (s *Set) Merge() {
	toDelete := make(map[int]bool)
	if s.AnyHasSelection() {
		for c := len(s.cursors) - 1; c > 0; c-- {
			pc := c - 1
			pcContainsC := !s.cursors[pc].SelectionEnd().Before(s.cursors[c].SelectionEnd())
			pcContainsStartOfC := s.cursors[pc].SelectionEnd().After(s.cursors[c].SelectionStart())
			if pcContainsC {
				toDelete[c] = true
			} else if pcContainsStartOfC {
				pcStart := s.cursors[pc].SelectionStart()
				cEnd := s.cursors[c].SelectionEnd()
				s.cursors[pc].InteractiveEnd = cEnd
				s.cursors[pc].InteractiveStart = pcStart
				toDelete[c] = true
			}
		}
	} else {
		for c := len(s.cursors) - 1; c > 0; c-- {
			if s.cursors[c-1].InteractiveEnd == s.cursors[c].InteractiveEnd {
				toDelete[c] = true
			}
		}
	}
	for c := len(s.cursors) - 1; c > -1; c-- {
		if toDelete[c] {
			s.cursors = append(s.cursors[:c], s.cursors[c+1:]...)
		}
	}
	s.current -= len(toDelete)
	if s.current < 0 {
		s.current = 0
	}
	if s.current >= len(s.cursors) {
		s.current = len(s.cursors) - 1
	}
}

// State is a deep snapshot of the set, stored in undo records.
type State struct {
	Cursors   []Cursor
	Current   int
	LastAdded int
}

// Snapshot captures the set.
func (s *Set) Snapshot() State {
	return State{
		Cursors:   append([]Cursor(nil), s.cursors...),
		Current:   s.current,
		LastAdded: s.lastAdded,
	}
}

// Restore replaces the set's contents with a snapshot.
func (s *Set) Restore(st State) {
	s.cursors = append([]Cursor(nil), st.Cursors...)
	if len(s.cursors) == 0 {
		s.cursors = []Cursor{{}}
	}
	s.current = st.Current
	s.lastAdded = st.LastAdded
	if s.current >= len(s.cursors) {
		s.current = len(s.cursors) - 1
	}
}
