package engine

import (
	"github.com/rivo/uniseg"

	"github.com/dshills/textforge/internal/engine/coords"
	"github.com/dshills/textforge/internal/engine/cursor"
)

// ClearExtraCursors collapses the set to the main cursor.
func (e *Editor) ClearExtraCursors() { e.cursors.ClearExtras() }

// ClearSelections collapses every cursor at its selection end.
func (e *Editor) ClearSelections() {
	for c := e.cursors.Count() - 1; c > -1; c-- {
		end := e.cursors.Get(c).SelectionEnd()
		e.cursors.SetCursor(c, cursor.At(end))
	}
}

// SelectAll selects the whole document with a single cursor.
func (e *Editor) SelectAll() {
	e.ClearSelections()
	e.ClearExtraCursors()
	e.MoveTop(false)
	e.MoveBottom(true)
}

// SelectLine selects one full line with a single cursor.
func (e *Editor) SelectLine(line int) {
	e.ClearSelections()
	e.ClearExtraCursors()
	e.SetSelection(coords.Coordinate{Line: line}, coords.Coordinate{Line: line, Column: e.doc.MaxColumn(line)}, -1)
	e.onCursorPositionChanged()
}

// SelectRegion selects a cell range with a single cursor.
func (e *Editor) SelectRegion(startLine, startChar, endLine, endChar int) {
	e.ClearSelections()
	e.ClearExtraCursors()
	start := coords.Coordinate{Line: startLine, Column: e.doc.CharColumn(startLine, startChar)}
	end := coords.Coordinate{Line: endLine, Column: e.doc.CharColumn(endLine, endChar)}
	e.SetSelection(start, end, -1)
	e.onCursorPositionChanged()
}

// SelectWordUnderCursor selects the motion unit under the main cursor.
func (e *Editor) SelectWordUnderCursor() {
	pos := e.sanitizedCursor(-1)
	e.SetSelection(e.doc.FindWordStart(pos), e.doc.FindWordEnd(pos), -1)
	e.onCursorPositionChanged()
}

// SelectNextOccurrenceOf selects the next match of text after the
// current cursor, collapsing extra cursors first. The search wraps.
func (e *Editor) SelectNextOccurrenceOf(text string, caseSensitive bool) bool {
	e.ClearSelections()
	e.ClearExtraCursors()
	return e.selectNextOccurrenceOf(text, -1, caseSensitive)
}

func (e *Editor) selectNextOccurrenceOf(text string, i int, caseSensitive bool) bool {
	if i == -1 {
		i = e.cursors.CurrentIndex()
	}
	start, end, ok := e.FindNextOccurrence(text, e.cursors.Get(i).InteractiveEnd, caseSensitive)
	if !ok {
		return false
	}
	e.SetSelection(start, end, i)
	e.onCursorPositionChanged()
	return true
}

// AddCursorForNextOccurrence adds a cursor selecting the next match of
// the last-added cursor's selection.
func (e *Editor) AddCursorForNextOccurrence(caseSensitive bool) bool {
	current := e.cursors.Get(e.cursors.LastAddedIndex())
	if current.SelectionStart() == current.SelectionEnd() {
		return false
	}

	selText := e.doc.TextInRange(current.SelectionStart(), current.SelectionEnd())
	start, end, ok := e.FindNextOccurrence(selText, current.SelectionEnd(), caseSensitive)
	if !ok {
		return false
	}

	e.cursors.Add(cursor.Cursor{})
	e.SetSelection(start, end, e.cursors.CurrentIndex())
	e.cursors.SortTopToBottom()
	e.cursors.Merge()
	e.cursorsMoved = false
	return true
}

// SelectAllOccurrencesOf selects every match of text, one cursor per
// match.
func (e *Editor) SelectAllOccurrencesOf(text string, caseSensitive bool) {
	e.ClearSelections()
	e.ClearExtraCursors()
	if !e.selectNextOccurrenceOf(text, -1, caseSensitive) {
		return
	}
	startPos := e.cursors.Get(e.cursors.LastAddedIndex()).InteractiveEnd
	for {
		if !e.AddCursorForNextOccurrence(caseSensitive) {
			break
		}
		lastAddedPos := e.cursors.Get(e.cursors.LastAddedIndex()).InteractiveEnd
		if lastAddedPos == startPos {
			break
		}
	}
}

// AddCursorAbove duplicates every cursor one line up.
func (e *Editor) AddCursorAbove() { e.addCursorsWithLineOffset(-1) }

// AddCursorBelow duplicates every cursor one line down.
func (e *Editor) AddCursorBelow() { e.addCursorsWithLineOffset(1) }

func (e *Editor) addCursorsWithLineOffset(offset int) {
	if offset == 0 {
		return
	}

	type span struct{ start, end coords.Coordinate }
	var newSelections []span
	for c := 0; c < e.cursors.Count(); c++ {
		cur := e.cursors.Get(c)
		anchor := e.doc.Sanitize(cur.InteractiveEnd)
		targetLine := anchor.Line + offset
		if targetLine < 0 || targetLine >= e.doc.LineCount() {
			continue
		}

		maxColumn := e.doc.MaxColumn(targetLine)
		clamp := func(col int) int {
			return max(0, min(col, maxColumn))
		}

		if cur.HasSelection() && cur.InteractiveStart.Line == cur.InteractiveEnd.Line {
			start := coords.Coordinate{Line: targetLine, Column: clamp(cur.InteractiveStart.Column)}
			end := coords.Coordinate{Line: targetLine, Column: clamp(cur.InteractiveEnd.Column)}
			newSelections = append(newSelections, span{start, end})
		} else {
			target := coords.Coordinate{Line: targetLine, Column: clamp(anchor.Column)}
			newSelections = append(newSelections, span{target, target})
		}
	}
	if len(newSelections) == 0 {
		return
	}

	for _, sel := range newSelections {
		e.cursors.Add(cursor.Cursor{})
		if sel.start == sel.end {
			e.setCursorPosition(sel.start, e.cursors.CurrentIndex(), true)
		} else {
			e.SetSelection(sel.start, sel.end, e.cursors.CurrentIndex())
		}
	}
	e.cursors.SortTopToBottom()
	e.cursors.Merge()
	e.cursorsMoved = false
}

// FindNextOccurrence scans forward from a coordinate for the next
// match of text, wrapping at the document end. Matching is
// cluster-wise; case-insensitive search folds ASCII letters. Newlines
// in the needle match line boundaries.
func (e *Editor) FindNextOccurrence(text string, from coords.Coordinate, caseSensitive bool) (coords.Coordinate, coords.Coordinate, bool) {
	var none coords.Coordinate
	needle := splitNeedle(text)
	if len(needle) == 0 {
		return none, none, false
	}

	fline := from.Line
	findex := e.doc.CharIndexRight(from)
	ifline, ifindex := fline, findex

	for {
		// match attempt at (fline, findex)
		lineOffset := 0
		currentCharIndex := findex
		i := 0
		for ; i < len(needle); i++ {
			if currentCharIndex == e.doc.LineLen(fline+lineOffset) {
				if needle[i] == "\n" && fline+lineOffset+1 < e.doc.LineCount() {
					currentCharIndex = 0
					lineOffset++
				} else {
					break
				}
			} else {
				a := e.doc.Line(fline + lineOffset)[currentCharIndex].Cluster
				if !clusterEqualFold(a, needle[i], caseSensitive) {
					break
				}
				currentCharIndex++
			}
		}
		if i == len(needle) {
			start := coords.Coordinate{Line: fline, Column: e.doc.CharColumn(fline, findex)}
			end := coords.Coordinate{
				Line:   fline + lineOffset,
				Column: e.doc.CharColumn(fline+lineOffset, currentCharIndex),
			}
			return start, end, true
		}

		// move forward, wrapping at the document end
		if findex == e.doc.LineLen(fline) {
			if fline == e.doc.LineCount()-1 {
				fline = 0
			} else {
				fline++
			}
			findex = 0
		} else {
			findex++
		}

		if findex == ifindex && fline == ifline {
			return none, none, false
		}
	}
}

// FindMatchingBracket finds the bracket matching the one at a cell
// position, scanning backwards from a closer or forwards from an
// opener with nesting.
func (e *Editor) FindMatchingBracket(line, charIndex int) (coords.Coordinate, bool) {
	var none coords.Coordinate
	if line > e.doc.LineCount()-1 {
		return none, false
	}
	if charIndex > e.doc.LineLen(line)-1 {
		return none, false
	}

	currentLine := line
	currentCharIndex := charIndex
	counter := 1
	anchor := e.doc.Line(line)[charIndex].Cluster

	if open, ok := matchingOpenBracket(anchor); ok {
		closeCl := anchor
		for {
			l, i, moved := e.doc.MoveIndex(currentLine, currentCharIndex, true, false)
			if !moved {
				break
			}
			currentLine, currentCharIndex = l, i
			if currentCharIndex < e.doc.LineLen(currentLine) {
				switch e.doc.Line(currentLine)[currentCharIndex].Cluster {
				case open:
					counter--
					if counter == 0 {
						return coords.Coordinate{Line: currentLine, Column: e.doc.CharColumn(currentLine, currentCharIndex)}, true
					}
				case closeCl:
					counter++
				}
			}
		}
	} else if closeCl, ok := matchingCloseBracket(anchor); ok {
		open := anchor
		for {
			l, i, moved := e.doc.MoveIndex(currentLine, currentCharIndex, false, false)
			if !moved {
				break
			}
			currentLine, currentCharIndex = l, i
			if currentCharIndex < e.doc.LineLen(currentLine) {
				switch e.doc.Line(currentLine)[currentCharIndex].Cluster {
				case closeCl:
					counter--
					if counter == 0 {
						return coords.Coordinate{Line: currentLine, Column: e.doc.CharColumn(currentLine, currentCharIndex)}, true
					}
				case open:
					counter++
				}
			}
		}
	}
	return none, false
}

func matchingOpenBracket(cl string) (string, bool) {
	switch cl {
	case ")":
		return "(", true
	case "]":
		return "[", true
	case "}":
		return "{", true
	}
	return "", false
}

func matchingCloseBracket(cl string) (string, bool) {
	switch cl {
	case "(":
		return ")", true
	case "[":
		return "]", true
	case "{":
		return "}", true
	}
	return "", false
}

func splitNeedle(text string) []string {
	var out []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		cl := gr.Str()
		if cl == "\r\n" {
			cl = "\n"
		}
		out = append(out, cl)
	}
	return out
}

func clusterEqualFold(a, b string, caseSensitive bool) bool {
	if caseSensitive {
		return a == b
	}
	if len(a) == 1 && len(b) == 1 {
		ca, cb := a[0], b[0]
		if ca >= 'A' && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if cb >= 'A' && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		return ca == cb
	}
	return a == b
}
