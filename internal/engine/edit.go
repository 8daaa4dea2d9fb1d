package engine

import (
	"strings"

	"github.com/dshills/textforge/internal/engine/coords"
	"github.com/dshills/textforge/internal/engine/cursor"
	"github.com/dshills/textforge/internal/engine/document"
	"github.com/dshills/textforge/internal/engine/history"
)

// EnterCharacter types one rune at every cursor, deleting selections
// first. Typing a tab while any cursor spans multiple lines indents
// the selected lines instead. A newline copies the current line's
// leading whitespace when auto-indent is on.
func (e *Editor) EnterCharacter(ch rune, shift bool) error {
	if e.readOnly {
		return ErrReadOnly
	}

	hasSelection := e.cursors.AnyHasSelection()
	anyMultiline := false
	for c := e.cursors.Count() - 1; c > -1; c-- {
		cur := e.cursors.Get(c)
		if cur.SelectionStart().Line != cur.SelectionEnd().Line {
			anyMultiline = true
			break
		}
	}
	if hasSelection && anyMultiline && ch == '\t' {
		return e.ChangeCurrentLinesIndentation(!shift)
	}

	var u history.Record
	u.Before = e.cursors.Snapshot()

	if hasSelection {
		for c := e.cursors.Count() - 1; c > -1; c-- {
			cur := e.cursors.Get(c)
			u.Operations = append(u.Operations, history.Operation{
				Text:  e.selectedText(c),
				Start: cur.SelectionStart(),
				End:   cur.SelectionEnd(),
				Type:  history.OpDelete,
			})
			e.deleteSelection(c)
		}
	}

	// Descending order matters when several cursors share a line.
	var touched []coords.Coordinate
	for c := e.cursors.Count() - 1; c > -1; c-- {
		coord := e.sanitizedCursor(c)
		touched = append(touched, coord)
		added := history.Operation{Type: history.OpAdd, Start: coord}

		if ch == '\n' {
			e.doc.InsertLine(coord.Line + 1)
			added.Text = "\n"
			if e.autoIndent {
				var indent []document.Glyph
				for _, g := range e.doc.Line(coord.Line) {
					if g.Cluster != " " && g.Cluster != "\t" {
						break
					}
					indent = append(indent, g)
					added.Text += g.Cluster
				}
				if len(indent) > 0 {
					e.doc.AddGlyphs(coord.Line+1, 0, indent)
				}
			}

			whitespaceSize := e.doc.LineLen(coord.Line + 1)
			cindex := e.doc.CharIndexRight(coord)
			tail := append([]document.Glyph(nil), e.doc.Line(coord.Line)[cindex:]...)
			if len(tail) > 0 {
				e.doc.AddGlyphs(coord.Line+1, whitespaceSize, tail)
			}
			e.doc.RemoveGlyphs(coord.Line, cindex, -1)
			e.setCursorPosition(coords.Coordinate{
				Line:   coord.Line + 1,
				Column: e.doc.CharColumn(coord.Line+1, whitespaceSize),
			}, c, true)
		} else {
			cindex := e.doc.CharIndexRight(coord)
			e.doc.AddGlyph(coord.Line, cindex, document.Glyph{Cluster: string(ch)})
			cindex++
			added.Text = string(ch)
			e.setCursorPosition(coords.Coordinate{
				Line:   coord.Line,
				Column: e.doc.CharColumn(coord.Line, cindex),
			}, c, true)
		}

		added.End = e.sanitizedCursor(c)
		u.Operations = append(u.Operations, added)
	}

	e.onCursorPositionChanged()
	u.After = e.cursors.Snapshot()
	e.undo.Push(u)

	for _, coord := range touched {
		e.colorizer.MarkDirty(coord.Line-1, 3)
	}
	return nil
}

// InsertText types a string at every cursor as one undoable action.
func (e *Editor) InsertText(text string) error {
	if e.readOnly {
		return ErrReadOnly
	}
	if text == "" {
		return nil
	}

	var u history.Record
	u.Before = e.cursors.Snapshot()

	if e.cursors.AnyHasSelection() {
		for c := e.cursors.Count() - 1; c > -1; c-- {
			cur := e.cursors.Get(c)
			if !cur.HasSelection() {
				continue
			}
			u.Operations = append(u.Operations, history.Operation{
				Text:  e.selectedText(c),
				Start: cur.SelectionStart(),
				End:   cur.SelectionEnd(),
				Type:  history.OpDelete,
			})
			e.deleteSelection(c)
		}
	}

	for c := e.cursors.Count() - 1; c > -1; c-- {
		start := e.sanitizedCursor(c)
		e.insertTextAtCursor(text, c)
		u.Operations = append(u.Operations, history.Operation{
			Text:  text,
			Start: start,
			End:   e.sanitizedCursor(c),
			Type:  history.OpAdd,
		})
	}

	e.onCursorPositionChanged()
	u.After = e.cursors.Snapshot()
	e.undo.Push(u)
	return nil
}

// insertTextAtCursor splices text at cursor i and moves it past the
// insertion.
func (e *Editor) insertTextAtCursor(text string, i int) {
	pos := e.sanitizedCursor(i)
	start := coords.Min(pos, e.cursors.Get(i).SelectionStart())
	totalLines := pos.Line - start.Line

	pos, added := e.doc.InsertTextAt(pos, text)
	totalLines += added

	e.setCursorPosition(pos, i, true)
	e.colorizer.MarkDirty(start.Line-1, totalLines+2)
}

// Backspace deletes one cell (or word) to the left of every cursor,
// or the selections when any exist. A cursor at the document start
// turns the whole action into a no-op.
func (e *Editor) Backspace(wordMode bool) error {
	if e.readOnly {
		return ErrReadOnly
	}

	if e.cursors.AnyHasSelection() {
		return e.deleteImpl(wordMode, nil)
	}

	before := e.cursors.Snapshot()
	e.MoveLeft(true, wordMode)
	if !e.cursors.AllHaveSelection() {
		if e.cursors.AnyHasSelection() {
			e.MoveRight(false, false)
		}
		return nil
	}
	e.onCursorPositionChanged()
	return e.deleteImpl(wordMode, &before)
}

// Delete removes one cell (or word) to the right of every cursor, or
// the selections when any exist.
func (e *Editor) Delete(wordMode bool) error {
	if e.readOnly {
		return ErrReadOnly
	}
	return e.deleteImpl(wordMode, nil)
}

// deleteImpl deletes all selections, synthesizing them by a rightward
// move when none exist. stateBefore overrides the undo record's
// before-snapshot when the caller already moved cursors to form the
// selections.
func (e *Editor) deleteImpl(wordMode bool, stateBefore *cursor.State) error {
	if e.cursors.AnyHasSelection() {
		var u history.Record
		if stateBefore != nil {
			u.Before = *stateBefore
		} else {
			u.Before = e.cursors.Snapshot()
		}
		for c := e.cursors.Count() - 1; c > -1; c-- {
			cur := e.cursors.Get(c)
			if !cur.HasSelection() {
				continue
			}
			u.Operations = append(u.Operations, history.Operation{
				Text:  e.selectedText(c),
				Start: cur.SelectionStart(),
				End:   cur.SelectionEnd(),
				Type:  history.OpDelete,
			})
			e.deleteSelection(c)
		}
		e.onCursorPositionChanged()
		u.After = e.cursors.Snapshot()
		e.undo.Push(u)
		return nil
	}

	before := e.cursors.Snapshot()
	e.MoveRight(true, wordMode)
	if !e.cursors.AllHaveSelection() {
		if e.cursors.AnyHasSelection() {
			e.MoveLeft(false, false)
		}
		return nil
	}
	e.onCursorPositionChanged()
	return e.deleteImpl(wordMode, &before)
}

// deleteSelection removes cursor i's selected range and collapses the
// cursor at its start.
func (e *Editor) deleteSelection(i int) {
	cur := e.cursors.Get(i)
	if !cur.HasSelection() {
		return
	}
	newPos := cur.SelectionStart()
	e.doc.DeleteRange(newPos, cur.SelectionEnd())
	e.setCursorPosition(newPos, i, true)
	e.colorizer.MarkDirty(newPos.Line, 1)
}

// Copy returns the selected text of all cursors joined with newlines,
// or the current line when nothing is selected. The host owns the
// real clipboard.
func (e *Editor) Copy() string {
	if e.cursors.AnyHasSelection() {
		var parts []string
		for c := 0; c < e.cursors.Count(); c++ {
			cur := e.cursors.Get(c)
			if cur.SelectionStart().Before(cur.SelectionEnd()) {
				parts = append(parts, e.selectedText(c))
			}
		}
		return strings.Join(parts, "\n")
	}
	return e.doc.LineText(e.sanitizedCursor(-1).Line)
}

// Cut copies and deletes the selections as one undoable action. On a
// read-only editor it degrades to Copy.
func (e *Editor) Cut() string {
	text := e.Copy()
	if e.readOnly || !e.cursors.AnyHasSelection() {
		return text
	}

	var u history.Record
	u.Before = e.cursors.Snapshot()
	for c := e.cursors.Count() - 1; c > -1; c-- {
		cur := e.cursors.Get(c)
		if !cur.HasSelection() {
			continue
		}
		u.Operations = append(u.Operations, history.Operation{
			Text:  e.selectedText(c),
			Start: cur.SelectionStart(),
			End:   cur.SelectionEnd(),
			Type:  history.OpDelete,
		})
		e.deleteSelection(c)
	}
	e.onCursorPositionChanged()
	u.After = e.cursors.Snapshot()
	e.undo.Push(u)
	return text
}

// Paste inserts host-provided text at every cursor. When the payload
// has exactly one line per cursor, each cursor receives its own line.
func (e *Editor) Paste(text string) error {
	if e.readOnly {
		return ErrReadOnly
	}
	if text == "" {
		return nil
	}

	var lines []string
	multiCursor := false
	if e.cursors.Count() > 1 {
		lines = strings.Split(text, "\n")
		multiCursor = len(lines) == e.cursors.Count()
	}

	var u history.Record
	u.Before = e.cursors.Snapshot()

	if e.cursors.AnyHasSelection() {
		for c := e.cursors.Count() - 1; c > -1; c-- {
			cur := e.cursors.Get(c)
			if !cur.HasSelection() {
				continue
			}
			u.Operations = append(u.Operations, history.Operation{
				Text:  e.selectedText(c),
				Start: cur.SelectionStart(),
				End:   cur.SelectionEnd(),
				Type:  history.OpDelete,
			})
			e.deleteSelection(c)
		}
	}

	for c := e.cursors.Count() - 1; c > -1; c-- {
		start := e.sanitizedCursor(c)
		payload := text
		if multiCursor {
			payload = lines[c]
		}
		e.insertTextAtCursor(payload, c)
		u.Operations = append(u.Operations, history.Operation{
			Text:  payload,
			Start: start,
			End:   e.sanitizedCursor(c),
			Type:  history.OpAdd,
		})
	}

	e.onCursorPositionChanged()
	u.After = e.cursors.Snapshot()
	e.undo.Push(u)
	return nil
}

// ReplaceRange replaces the cell range [startLine:startChar,
// endLine:endChar) with text as one undoable action, leaving the
// cursor after the inserted text.
func (e *Editor) ReplaceRange(startLine, startChar, endLine, endChar int, text string) error {
	if e.readOnly {
		return ErrReadOnly
	}

	var u history.Record
	u.Before = e.cursors.Snapshot()

	i := e.cursors.CurrentIndex()
	start := coords.Coordinate{Line: startLine, Column: e.doc.CharColumn(startLine, startChar)}
	end := coords.Coordinate{Line: endLine, Column: e.doc.CharColumn(endLine, endChar)}
	e.SetSelection(start, end, i)

	cur := e.cursors.Get(i)
	if cur.SelectionStart().Before(cur.SelectionEnd()) {
		u.Operations = append(u.Operations, history.Operation{
			Text:  e.selectedText(i),
			Start: cur.SelectionStart(),
			End:   cur.SelectionEnd(),
			Type:  history.OpDelete,
		})
		e.deleteSelection(i)
	}

	if text != "" {
		insertStart := e.sanitizedCursor(i)
		e.insertTextAtCursor(text, i)
		u.Operations = append(u.Operations, history.Operation{
			Text:  text,
			Start: insertStart,
			End:   e.sanitizedCursor(i),
			Type:  history.OpAdd,
		})
	}

	e.onCursorPositionChanged()
	u.After = e.cursors.Snapshot()
	e.undo.Push(u)
	return nil
}
