package engine

import (
	"sort"

	"github.com/dshills/textforge/internal/engine/coords"
	"github.com/dshills/textforge/internal/engine/history"
)

// affectedLines collects the distinct lines touched by every cursor's
// selection, skipping a trailing line when the selection ends exactly
// at its column 0.
func (e *Editor) affectedLines() (lines []int, minLine, maxLine int) {
	seen := make(map[int]bool)
	minLine, maxLine = -1, -1
	for c := e.cursors.Count() - 1; c > -1; c-- {
		cur := e.cursors.Get(c)
		for currentLine := cur.SelectionEnd().Line; currentLine >= cur.SelectionStart().Line; currentLine-- {
			endsAtLineStart := (coords.Coordinate{Line: currentLine}) == cur.SelectionEnd() &&
				cur.SelectionEnd() != cur.SelectionStart()
			if endsAtLineStart {
				continue
			}
			if !seen[currentLine] {
				seen[currentLine] = true
				lines = append(lines, currentLine)
			}
			if minLine == -1 || currentLine < minLine {
				minLine = currentLine
			}
			if maxLine == -1 || currentLine > maxLine {
				maxLine = currentLine
			}
		}
	}
	sort.Ints(lines)
	return lines, minLine, maxLine
}

// ChangeCurrentLinesIndentation adds or removes one tab of leading
// indentation on every selected line as one undoable action. Removal
// only fires on lines whose first tab-stop worth of cells is all
// whitespace.
func (e *Editor) ChangeCurrentLinesIndentation(increase bool) error {
	if e.readOnly {
		return ErrReadOnly
	}

	var u history.Record
	u.Before = e.cursors.Snapshot()

	for c := e.cursors.Count() - 1; c > -1; c-- {
		cur := e.cursors.Get(c)
		for currentLine := cur.SelectionEnd().Line; currentLine >= cur.SelectionStart().Line; currentLine-- {
			endsAtLineStart := (coords.Coordinate{Line: currentLine}) == cur.SelectionEnd() &&
				cur.SelectionEnd() != cur.SelectionStart()
			if endsAtLineStart {
				continue
			}

			if increase {
				if e.doc.LineLen(currentLine) > 0 {
					lineStart := coords.Coordinate{Line: currentLine}
					insertionEnd, _ := e.doc.InsertTextAt(lineStart, "\t")
					u.Operations = append(u.Operations, history.Operation{
						Text:  "\t",
						Start: lineStart,
						End:   insertionEnd,
						Type:  history.OpAdd,
					})
					e.colorizer.MarkDirty(currentLine, 1)
				}
			} else {
				start := coords.Coordinate{Line: currentLine}
				end := coords.Coordinate{Line: currentLine, Column: e.doc.TabSize()}
				charIndex := e.doc.CharIndexLeft(end) - 1
				for charIndex > -1 {
					cl := e.doc.Line(currentLine)[charIndex].Cluster
					if cl != " " && cl != "\t" {
						break
					}
					charIndex--
				}
				if charIndex == -1 {
					u.Operations = append(u.Operations, history.Operation{
						Text:  e.doc.TextInRange(start, end),
						Start: start,
						End:   end,
						Type:  history.OpDelete,
					})
					e.doc.DeleteRange(start, end)
					e.colorizer.MarkDirty(currentLine, 1)
				}
			}
		}
	}

	if len(u.Operations) > 0 {
		u.After = e.cursors.Snapshot()
		e.undo.Push(u)
	}
	return nil
}

// MoveUpCurrentLines swaps every selected line with the line above it,
// cursors included.
func (e *Editor) MoveUpCurrentLines() error {
	if e.readOnly {
		return ErrReadOnly
	}

	var u history.Record
	u.Before = e.cursors.Snapshot()

	lines, minLine, maxLine := e.affectedLines()
	if minLine <= 0 {
		return nil
	}

	start := coords.Coordinate{Line: minLine - 1}
	end := coords.Coordinate{Line: maxLine, Column: e.doc.MaxColumn(maxLine)}
	u.Operations = append(u.Operations, history.Operation{
		Text:  e.doc.TextInRange(start, end),
		Start: start,
		End:   end,
		Type:  history.OpDelete,
	})

	for _, line := range lines {
		e.doc.SwapLines(line-1, line)
	}
	for c := e.cursors.Count() - 1; c > -1; c-- {
		cur := e.cursors.Get(c)
		cur.InteractiveStart.Line--
		cur.InteractiveEnd.Line--
		e.cursors.SetCursor(c, cur)
	}

	// the max line was swapped with the one above, so its width changed
	end = coords.Coordinate{Line: maxLine, Column: e.doc.MaxColumn(maxLine)}
	u.Operations = append(u.Operations, history.Operation{
		Text:  e.doc.TextInRange(start, end),
		Start: start,
		End:   end,
		Type:  history.OpAdd,
	})
	u.After = e.cursors.Snapshot()
	e.undo.Push(u)
	e.colorizer.MarkDirty(minLine-1, maxLine-minLine+2)
	return nil
}

// MoveDownCurrentLines swaps every selected line with the line below
// it, cursors included.
func (e *Editor) MoveDownCurrentLines() error {
	if e.readOnly {
		return ErrReadOnly
	}

	var u history.Record
	u.Before = e.cursors.Snapshot()

	lines, minLine, maxLine := e.affectedLines()

	lastMovable := e.doc.LineCount() - 1
	if e.doc.LineLen(lastMovable) == 0 {
		lastMovable--
	}
	if maxLine >= lastMovable {
		return nil
	}

	start := coords.Coordinate{Line: minLine}
	end := coords.Coordinate{Line: maxLine + 1, Column: e.doc.MaxColumn(maxLine + 1)}
	u.Operations = append(u.Operations, history.Operation{
		Text:  e.doc.TextInRange(start, end),
		Start: start,
		End:   end,
		Type:  history.OpDelete,
	})

	for i := len(lines) - 1; i > -1; i-- {
		e.doc.SwapLines(lines[i]+1, lines[i])
	}
	for c := e.cursors.Count() - 1; c > -1; c-- {
		cur := e.cursors.Get(c)
		cur.InteractiveStart.Line++
		cur.InteractiveEnd.Line++
		e.cursors.SetCursor(c, cur)
	}

	end = coords.Coordinate{Line: maxLine + 1, Column: e.doc.MaxColumn(maxLine + 1)}
	u.Operations = append(u.Operations, history.Operation{
		Text:  e.doc.TextInRange(start, end),
		Start: start,
		End:   end,
		Type:  history.OpAdd,
	})
	u.After = e.cursors.Snapshot()
	e.undo.Push(u)
	e.colorizer.MarkDirty(minLine, maxLine-minLine+2)
	return nil
}

// ToggleLineComment comments every selected line with the language's
// line comment token, or uncomments when every non-blank selected
// line already carries one.
func (e *Editor) ToggleLineComment() error {
	if e.readOnly {
		return ErrReadOnly
	}
	lang := e.colorizer.Language()
	if lang == nil || lang.SingleLineComment == "" {
		return nil
	}
	comment := lang.SingleLineComment

	var u history.Record
	u.Before = e.cursors.Snapshot()

	shouldAdd := false
	lines, _, _ := e.affectedLines()
	for _, currentLine := range lines {
		idx := e.firstNonBlankIndex(currentLine)
		if idx == e.doc.LineLen(currentLine) {
			continue
		}
		if !e.lineHasTokenAt(currentLine, idx, comment) {
			shouldAdd = true
		}
	}

	if shouldAdd {
		for _, currentLine := range lines {
			lineStart := coords.Coordinate{Line: currentLine}
			insertionEnd, _ := e.doc.InsertTextAt(lineStart, comment+" ")
			u.Operations = append(u.Operations, history.Operation{
				Text:  comment + " ",
				Start: lineStart,
				End:   insertionEnd,
				Type:  history.OpAdd,
			})
			e.colorizer.MarkDirty(currentLine, 1)
		}
	} else {
		for _, currentLine := range lines {
			idx := e.firstNonBlankIndex(currentLine)
			if idx == e.doc.LineLen(currentLine) {
				continue
			}
			n := len(comment)
			if idx+n < e.doc.LineLen(currentLine) && e.doc.Line(currentLine)[idx+n].Cluster == " " {
				n++
			}
			start := coords.Coordinate{Line: currentLine, Column: e.doc.CharColumn(currentLine, idx)}
			end := coords.Coordinate{Line: currentLine, Column: e.doc.CharColumn(currentLine, idx+n)}
			u.Operations = append(u.Operations, history.Operation{
				Text:  e.doc.TextInRange(start, end),
				Start: start,
				End:   end,
				Type:  history.OpDelete,
			})
			e.doc.DeleteRange(start, end)
			e.colorizer.MarkDirty(currentLine, 1)
		}
	}

	u.After = e.cursors.Snapshot()
	e.undo.Push(u)
	return nil
}

// RemoveCurrentLines deletes every line a cursor sits on as one
// undoable action.
func (e *Editor) RemoveCurrentLines() error {
	if e.readOnly {
		return ErrReadOnly
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
	e.MoveHome(false)
	e.onCursorPositionChanged()

	for c := e.cursors.Count() - 1; c > -1; c-- {
		currentLine := e.cursors.Get(c).InteractiveEnd.Line
		nextLine := currentLine + 1
		prevLine := currentLine - 1

		var toDeleteStart, toDeleteEnd coords.Coordinate
		switch {
		case e.doc.LineCount() > nextLine:
			toDeleteStart = coords.Coordinate{Line: currentLine}
			toDeleteEnd = coords.Coordinate{Line: nextLine}
			e.setCursorPosition(coords.Coordinate{Line: currentLine}, c, true)
		case prevLine > -1:
			toDeleteStart = coords.Coordinate{Line: prevLine, Column: e.doc.MaxColumn(prevLine)}
			toDeleteEnd = coords.Coordinate{Line: currentLine, Column: e.doc.MaxColumn(currentLine)}
			e.setCursorPosition(coords.Coordinate{Line: prevLine}, c, true)
		default:
			toDeleteStart = coords.Coordinate{Line: currentLine}
			toDeleteEnd = coords.Coordinate{Line: currentLine, Column: e.doc.MaxColumn(currentLine)}
			e.setCursorPosition(coords.Coordinate{Line: currentLine}, c, true)
		}

		u.Operations = append(u.Operations, history.Operation{
			Text:  e.doc.TextInRange(toDeleteStart, toDeleteEnd),
			Start: toDeleteStart,
			End:   toDeleteEnd,
			Type:  history.OpDelete,
		})

		if toDeleteStart.Line != toDeleteEnd.Line {
			e.doc.RemoveLine(currentLine, map[int]bool{c: true})
		} else {
			e.doc.DeleteRange(toDeleteStart, toDeleteEnd)
		}
	}
	e.colorizer.MarkDirty(0, -1)

	e.onCursorPositionChanged()
	u.After = e.cursors.Snapshot()
	e.undo.Push(u)
	return nil
}

func (e *Editor) firstNonBlankIndex(line int) int {
	idx := 0
	for idx < e.doc.LineLen(line) {
		cl := e.doc.Line(line)[idx].Cluster
		if cl != " " && cl != "\t" {
			break
		}
		idx++
	}
	return idx
}

func (e *Editor) lineHasTokenAt(line, index int, token string) bool {
	i := 0
	for i < len(token) && index+i < e.doc.LineLen(line) {
		if e.doc.Line(line)[index+i].Cluster != string(token[i]) {
			break
		}
		i++
	}
	return i == len(token)
}
