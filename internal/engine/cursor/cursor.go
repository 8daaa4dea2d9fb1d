// Package cursor implements the multi-cursor selection model. A
// cursor keeps its interactive ends as the user placed them; ordered
// accessors derive the normalized selection on demand.
package cursor

import (
	"github.com/dshills/textforge/internal/engine/coords"
)

// Cursor is one caret with an optional selection. InteractiveStart is
// where the selection was anchored, InteractiveEnd is the moving end.
// The two are deliberately not normalized so that extending a
// backwards selection keeps its orientation.
type Cursor struct {
	InteractiveStart coords.Coordinate
	InteractiveEnd   coords.Coordinate
}

// At returns a collapsed cursor at the given position.
func At(pos coords.Coordinate) Cursor {
	return Cursor{InteractiveStart: pos, InteractiveEnd: pos}
}

// SelectionStart returns the earlier of the two ends.
func (c Cursor) SelectionStart() coords.Coordinate {
	return coords.Min(c.InteractiveStart, c.InteractiveEnd)
}

// SelectionEnd returns the later of the two ends.
func (c Cursor) SelectionEnd() coords.Coordinate {
	return coords.Max(c.InteractiveStart, c.InteractiveEnd)
}

// HasSelection reports whether the two ends differ.
func (c Cursor) HasSelection() bool {
	return c.InteractiveStart != c.InteractiveEnd
}
