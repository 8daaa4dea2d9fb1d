package engine

import (
	"github.com/dshills/textforge/internal/engine/coords"
)

type moveDirection int

const (
	moveRight moveDirection = iota
	moveLeft
	moveUp
	moveDown
)

// moveCoords steps a coordinate one unit in a direction. Horizontal
// moves are cell-accurate (word-accurate in word mode) and cross line
// boundaries; vertical moves keep the display column so carets hold
// their position through tab stops.
func (e *Editor) moveCoords(c coords.Coordinate, dir moveDirection, wordMode bool, lineCount int) coords.Coordinate {
	charIndex := e.doc.CharIndexRight(c)
	lineIndex := c.Line
	switch dir {
	case moveRight:
		if charIndex >= e.doc.LineLen(lineIndex) {
			if lineIndex < e.doc.LineCount()-1 {
				c.Line = min(e.doc.LineCount()-1, lineIndex+1)
				if c.Line < 0 {
					c.Line = 0
				}
				c.Column = 0
			}
		} else {
			lineIndex, charIndex, _ = e.doc.MoveIndex(lineIndex, charIndex, false, false)
			oneStepRight := e.doc.CharColumn(lineIndex, charIndex)
			if wordMode {
				c = e.doc.FindWordEnd(c)
				if c.Column < oneStepRight {
					c.Column = oneStepRight
				}
			} else {
				c.Column = oneStepRight
			}
		}
	case moveLeft:
		if charIndex == 0 {
			if lineIndex > 0 {
				c.Line = lineIndex - 1
				c.Column = e.doc.MaxColumn(c.Line)
			}
		} else {
			lineIndex, charIndex, _ = e.doc.MoveIndex(lineIndex, charIndex, true, false)
			c.Column = e.doc.CharColumn(lineIndex, charIndex)
			if wordMode {
				c = e.doc.FindWordStart(c)
			}
		}
	case moveUp:
		c.Line = max(0, lineIndex-lineCount)
	case moveDown:
		c.Line = max(0, min(e.doc.LineCount()-1, lineIndex+lineCount))
	}
	return c
}

// MoveUp moves every cursor up by amount lines.
func (e *Editor) MoveUp(amount int, sel bool) {
	for c := 0; c < e.cursors.Count(); c++ {
		next := e.moveCoords(e.cursors.Get(c).InteractiveEnd, moveUp, false, amount)
		e.setCursorPosition(next, c, !sel)
	}
	e.onCursorPositionChanged()
}

// MoveDown moves every cursor down by amount lines.
func (e *Editor) MoveDown(amount int, sel bool) {
	for c := 0; c < e.cursors.Count(); c++ {
		next := e.moveCoords(e.cursors.Get(c).InteractiveEnd, moveDown, false, amount)
		e.setCursorPosition(next, c, !sel)
	}
	e.onCursorPositionChanged()
}

// MoveLeft moves every cursor one cell (or word) left. Without sel or
// word mode, cursors with selections collapse to their selection
// start instead.
func (e *Editor) MoveLeft(sel, wordMode bool) {
	if e.cursors.AnyHasSelection() && !sel && !wordMode {
		for c := 0; c < e.cursors.Count(); c++ {
			e.setCursorPosition(e.cursors.Get(c).SelectionStart(), c, true)
		}
	} else {
		for c := 0; c < e.cursors.Count(); c++ {
			next := e.moveCoords(e.cursors.Get(c).InteractiveEnd, moveLeft, wordMode, 1)
			e.setCursorPosition(next, c, !sel)
		}
	}
	e.onCursorPositionChanged()
}

// MoveRight mirrors MoveLeft.
func (e *Editor) MoveRight(sel, wordMode bool) {
	if e.cursors.AnyHasSelection() && !sel && !wordMode {
		for c := 0; c < e.cursors.Count(); c++ {
			e.setCursorPosition(e.cursors.Get(c).SelectionEnd(), c, true)
		}
	} else {
		for c := 0; c < e.cursors.Count(); c++ {
			next := e.moveCoords(e.cursors.Get(c).InteractiveEnd, moveRight, wordMode, 1)
			e.setCursorPosition(next, c, !sel)
		}
	}
	e.onCursorPositionChanged()
}

// MoveTop moves the current cursor to the document start.
func (e *Editor) MoveTop(sel bool) {
	e.setCursorPosition(coords.Coordinate{}, e.cursors.CurrentIndex(), !sel)
	e.onCursorPositionChanged()
}

// MoveBottom moves the current cursor past the last cell.
func (e *Editor) MoveBottom(sel bool) {
	e.setCursorPosition(e.doc.EndCoordinate(), e.cursors.CurrentIndex(), !sel)
	e.onCursorPositionChanged()
}

// MoveHome moves every cursor to column 0 of its line.
func (e *Editor) MoveHome(sel bool) {
	for c := 0; c < e.cursors.Count(); c++ {
		line := e.cursors.Get(c).InteractiveEnd.Line
		e.setCursorPosition(coords.Coordinate{Line: line}, c, !sel)
	}
	e.onCursorPositionChanged()
}

// MoveEnd moves every cursor past the last cell of its line.
func (e *Editor) MoveEnd(sel bool) {
	for c := 0; c < e.cursors.Count(); c++ {
		line := e.cursors.Get(c).InteractiveEnd.Line
		e.setCursorPosition(coords.Coordinate{Line: line, Column: e.doc.MaxColumn(line)}, c, !sel)
	}
	e.onCursorPositionChanged()
}

// SetCursorPosition collapses the current cursor at a position.
func (e *Editor) SetCursorPosition(pos coords.Coordinate) {
	e.setCursorPosition(e.doc.Sanitize(pos), e.cursors.CurrentIndex(), true)
	e.onCursorPositionChanged()
}

// SetSelection sets cursor i's selection, clamped into the document.
// An i of -1 targets the current cursor.
func (e *Editor) SetSelection(start, end coords.Coordinate, i int) {
	if i == -1 {
		i = e.cursors.CurrentIndex()
	}
	minCoords := coords.Coordinate{}
	maxCoords := e.doc.EndCoordinate()
	start = coords.Max(minCoords, coords.Min(start, maxCoords))
	end = coords.Max(minCoords, coords.Min(end, maxCoords))

	cur := e.cursors.Get(i)
	cur.InteractiveStart = start
	e.cursors.SetCursor(i, cur)
	e.setCursorPosition(end, i, false)
}
