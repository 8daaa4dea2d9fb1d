package cursor

import (
	"github.com/dshills/textforge/internal/engine/coords"
	"github.com/dshills/textforge/internal/engine/document"
)

// Tracker keeps a cursor set consistent across document edits. It
// implements document.Observer: structural changes shift whole lines,
// and same-line splices move carets sitting to the right of the edit.
type Tracker struct {
	doc *document.Document
	set *Set

	// pending holds (cursor index, target cell index) pairs captured
	// by the before phase of OnLineChanged.
	pending []pendingMove
}

type pendingMove struct {
	cursor    int
	charIndex int
}

// NewTracker wires a set to a document's change notifications.
func NewTracker(doc *document.Document, set *Set) *Tracker {
	t := &Tracker{doc: doc, set: set}
	doc.Observe(t)
	return t
}

// OnLineInserted shifts cursors at or below the new line down one
// line, collapsing their selections.
func (t *Tracker) OnLineInserted(index int) {
	for c := range t.set.cursors {
		end := t.set.cursors[c].InteractiveEnd
		if end.Line >= index {
			t.set.SetPosition(c, coords.Coordinate{Line: end.Line + 1, Column: end.Column}, true)
		}
	}
}

// OnLineRemoved shifts cursors at or below the removed line up one
// line, skipping cursors the edit already repositioned.
func (t *Tracker) OnLineRemoved(index int, handled map[int]bool) {
	for c := range t.set.cursors {
		end := t.set.cursors[c].InteractiveEnd
		if end.Line >= index && !handled[c] {
			t.set.SetPosition(c, coords.Coordinate{Line: end.Line - 1, Column: end.Column}, true)
		}
	}
}

// OnLinesRemoved shifts both cursor ends up by the number of removed
// lines, preserving selections.
func (t *Tracker) OnLinesRemoved(first, last int) {
	n := last - first
	for c := range t.set.cursors {
		if t.set.cursors[c].InteractiveEnd.Line >= first {
			target := t.set.cursors[c].InteractiveEnd.Line - n
			if target < 0 {
				target = 0
			}
			t.set.cursors[c].InteractiveEnd.Line = target
		}
		if t.set.cursors[c].InteractiveStart.Line >= first {
			target := t.set.cursors[c].InteractiveStart.Line - n
			if target < 0 {
				target = 0
			}
			t.set.cursors[c].InteractiveStart.Line = target
		}
	}
}

// OnLinesMerged re-homes cursors that lived on the absorbed trailing
// line of a multi-line delete. Their cell indices carry over shifted
// by the first line's remaining head. Cursors selecting exactly the
// deleted range are left alone; the edit repositions those itself.
func (t *Tracker) OnLinesMerged(start, end coords.Coordinate) {
	startIndex := t.doc.CharIndexRight(start)
	for c := range t.set.cursors {
		cur := t.set.cursors[c]
		if cur.SelectionStart() == start && cur.SelectionEnd() == end {
			continue
		}
		if cur.InteractiveEnd.Line > end.Line {
			break
		}
		if cur.InteractiveEnd.Line != end.Line {
			continue
		}
		endCharIndex := t.doc.CharIndexRight(cur.InteractiveEnd)
		startCharIndex := t.doc.CharIndexRight(cur.InteractiveStart)
		targetEnd := coords.Coordinate{
			Line:   start.Line,
			Column: t.doc.CharColumn(start.Line, startIndex+endCharIndex),
		}
		targetStart := coords.Coordinate{
			Line:   start.Line,
			Column: t.doc.CharColumn(start.Line, startIndex+startCharIndex),
		}
		t.set.SetPosition(c, targetStart, true)
		t.set.SetPosition(c, targetEnd, false)
	}
}

// OnLineChanged moves selection-less carets on the edited line that
// sit to the right of the splice. The before phase records their cell
// indices against the old content; the after phase converts the
// shifted indices back to columns against the new content.
func (t *Tracker) OnLineChanged(before bool, line, column, count int, deleted bool) {
	if before {
		t.pending = t.pending[:0]
		for c := range t.set.cursors {
			cur := t.set.cursors[c]
			if cur.InteractiveEnd.Line == line &&
				cur.InteractiveEnd.Column > column &&
				!cur.HasSelection() {
				charIndex := t.doc.CharIndexRight(coords.Coordinate{Line: line, Column: cur.InteractiveEnd.Column})
				if deleted {
					charIndex -= count
				} else {
					charIndex += count
				}
				t.pending = append(t.pending, pendingMove{cursor: c, charIndex: charIndex})
			}
		}
		return
	}
	for _, m := range t.pending {
		pos := coords.Coordinate{Line: line, Column: t.doc.CharColumn(line, m.charIndex)}
		t.set.SetPosition(m.cursor, pos, true)
	}
}
