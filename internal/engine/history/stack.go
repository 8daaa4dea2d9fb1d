package history

// Stack holds undo records with a replay position. index counts the
// records currently applied to the document: records[index-1] is the
// next undo, records[index] the next redo. Pushing a fresh record
// discards the redo tail.
type Stack struct {
	records    []Record
	index      int
	maxEntries int
}

// NewStack returns a stack bounded to maxEntries records. A bound of
// 0 or less means unbounded.
func NewStack(maxEntries int) *Stack {
	return &Stack{maxEntries: maxEntries}
}

// Push appends a record at the current position, truncating any redo
// tail and trimming the oldest entries past the bound.
func (s *Stack) Push(r Record) {
	s.records = append(s.records[:s.index], r)
	s.index++
	if s.maxEntries > 0 && len(s.records) > s.maxEntries {
		drop := len(s.records) - s.maxEntries
		s.records = append([]Record(nil), s.records[drop:]...)
		s.index -= drop
	}
}

// CanUndo reports whether an applied record exists.
func (s *Stack) CanUndo() bool { return s.index > 0 }

// CanRedo reports whether a previously undone record exists.
func (s *Stack) CanRedo() bool { return s.index < len(s.records) }

// Undo steps back one record, replaying it inverted on t.
func (s *Stack) Undo(t Target) bool {
	if !s.CanUndo() {
		return false
	}
	s.index--
	s.records[s.index].Undo(t)
	return true
}

// Redo re-applies the next undone record on t.
func (s *Stack) Redo(t Target) bool {
	if !s.CanRedo() {
		return false
	}
	s.records[s.index].Redo(t)
	s.index++
	return true
}

// Len returns the number of stored records.
func (s *Stack) Len() int { return len(s.records) }

// Index returns the number of currently applied records.
func (s *Stack) Index() int { return s.index }

// Clear drops all records.
func (s *Stack) Clear() {
	s.records = s.records[:0]
	s.index = 0
}
