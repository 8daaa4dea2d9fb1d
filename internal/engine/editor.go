// Package engine ties the document, cursor set, history and colorizer
// together into the editing facade hosts embed. The editor is not safe
// for concurrent use; callers serialize access the same way a UI loop
// does.
package engine

import (
	"github.com/dshills/textforge/internal/engine/coords"
	"github.com/dshills/textforge/internal/engine/cursor"
	"github.com/dshills/textforge/internal/engine/document"
	"github.com/dshills/textforge/internal/engine/history"
	"github.com/dshills/textforge/internal/layout"
	"github.com/dshills/textforge/internal/style"
	"github.com/dshills/textforge/internal/syntax"
)

// Coordinate is re-exported for host convenience.
type Coordinate = coords.Coordinate

// Cursor is re-exported for host convenience.
type Cursor = cursor.Cursor

// Editor is the complete editing engine: a document, a multi-cursor
// set kept consistent by a tracker, an undo history, an incremental
// colorizer and a visual layout.
type Editor struct {
	doc       *document.Document
	cursors   *cursor.Set
	tracker   *cursor.Tracker
	undo      *history.Stack
	colorizer *syntax.Colorizer
	layout    *layout.Engine
	palette   style.Palette

	autoIndent bool
	readOnly   bool

	// cursorsMoved defers the sort+merge pass to the end of the
	// operation that moved a cursor.
	cursorsMoved bool

	// creation-time settings
	initContent    string
	initLanguage   string
	tabSize        int
	maxUndoEntries int
	wrapEnabled    bool
	wrapColumn     int
}

// New creates an editor.
func New(opts ...Option) *Editor {
	e := &Editor{
		tabSize:        DefaultTabSize,
		maxUndoEntries: DefaultMaxUndoEntries,
		wrapColumn:     DefaultWrapColumn,
		autoIndent:     true,
		palette:        style.Dark(),
	}
	for _, opt := range opts {
		opt(e)
	}

	e.doc = document.New(e.tabSize)
	e.cursors = cursor.NewSet()
	e.tracker = cursor.NewTracker(e.doc, e.cursors)
	e.undo = history.NewStack(e.maxUndoEntries)
	e.colorizer = syntax.NewColorizer(e.doc, nil)
	e.layout = layout.NewEngine(e.doc)
	e.layout.SetWordWrap(e.wrapEnabled, e.wrapColumn)

	if e.initLanguage != "" {
		_ = e.SetLanguage(e.initLanguage)
	}
	if e.initContent != "" {
		e.doc.SetText(e.initContent)
		e.colorizer.MarkDirty(0, -1)
	}
	return e
}

// Document exposes the underlying line buffer.
func (e *Editor) Document() *document.Document { return e.doc }

// Cursors exposes the cursor set.
func (e *Editor) Cursors() *cursor.Set { return e.cursors }

// Layout exposes the visual layout engine.
func (e *Editor) Layout() *layout.Engine { return e.layout }

// Colorizer exposes the incremental colorizer.
func (e *Editor) Colorizer() *syntax.Colorizer { return e.colorizer }

// ReadOnly reports whether the editor rejects writes.
func (e *Editor) ReadOnly() bool { return e.readOnly }

// SetReadOnly toggles the write guard.
func (e *Editor) SetReadOnly(on bool) { e.readOnly = on }

// TabSize returns the current tab size.
func (e *Editor) TabSize() int { return e.doc.TabSize() }

// SetTabSize changes the tab size, clamped to 1..64.
func (e *Editor) SetTabSize(n int) { e.doc.SetTabSize(n) }

// AutoIndent reports whether newline insertion copies indentation.
func (e *Editor) AutoIndent() bool { return e.autoIndent }

// SetAutoIndent toggles indentation copying.
func (e *Editor) SetAutoIndent(on bool) { e.autoIndent = on }

// Palette returns the palette used to resolve glyph colors.
func (e *Editor) Palette() style.Palette { return e.palette }

// SetPalette replaces the palette.
func (e *Editor) SetPalette(p style.Palette) { e.palette = p }

// WordWrap returns the layout's wrap setting.
func (e *Editor) WordWrap() (bool, int) { return e.layout.WordWrap() }

// SetWordWrap enables or disables wrapping at a display column.
func (e *Editor) SetWordWrap(enabled bool, column int) {
	e.layout.SetWordWrap(enabled, column)
}

// SetLanguage selects the language definition by name and schedules a
// full recolor.
func (e *Editor) SetLanguage(name string) error {
	lang := syntax.LanguageByName(name)
	if lang == nil {
		return ErrUnknownLanguage
	}
	e.colorizer.SetLanguage(lang)
	return nil
}

// LanguageName returns the active language's name, or "".
func (e *Editor) LanguageName() string {
	if lang := e.colorizer.Language(); lang != nil {
		return lang.Name
	}
	return ""
}

// Text returns the whole document.
func (e *Editor) Text() string { return e.doc.Text() }

// TextLines returns every line's text.
func (e *Editor) TextLines() []string { return e.doc.TextLines() }

// LineCount returns the number of document lines.
func (e *Editor) LineCount() int { return e.doc.LineCount() }

// SetText replaces the document, clears history and schedules a full
// recolor.
func (e *Editor) SetText(text string) {
	e.doc.SetText(text)
	e.cursors.ClearExtras()
	e.cursors.SetPosition(e.cursors.CurrentIndex(), e.doc.Sanitize(e.cursors.Main().InteractiveEnd), true)
	e.undo.Clear()
	e.colorizer.MarkDirty(0, -1)
}

// SelectedText returns the current cursor's selection.
func (e *Editor) SelectedText() string {
	c := e.cursors.Main()
	return e.doc.TextInRange(c.SelectionStart(), c.SelectionEnd())
}

// GlyphColor resolves the display color of a glyph under the active
// palette. Comment tags win over the token color; the preprocessor
// tag blends the token color toward the preprocessor color.
func (e *Editor) GlyphColor(g document.Glyph) style.Color {
	if e.colorizer.Language() == nil {
		return e.palette[style.Default]
	}
	if g.Comment {
		return e.palette[style.Comment]
	}
	if g.MultilineComment {
		return e.palette[style.MultiLineComment]
	}
	color := e.palette[g.Color]
	if g.Preprocessor {
		return style.Blend(e.palette[style.Preprocessor], color)
	}
	return color
}

// Update runs one colorizer slice. Hosts call it once per frame; it
// reports whether colorization work remains.
func (e *Editor) Update() bool { return e.colorizer.Update() }

// CanUndo reports whether an undoable action exists.
func (e *Editor) CanUndo() bool { return !e.readOnly && e.undo.CanUndo() }

// CanRedo reports whether a redoable action exists.
func (e *Editor) CanRedo() bool { return !e.readOnly && e.undo.CanRedo() }

// Undo reverts up to steps actions.
func (e *Editor) Undo(steps int) error {
	if e.readOnly {
		return ErrReadOnly
	}
	if !e.undo.CanUndo() {
		return ErrNothingToUndo
	}
	for steps > 0 && e.undo.Undo(e) {
		steps--
	}
	return nil
}

// Redo re-applies up to steps undone actions.
func (e *Editor) Redo(steps int) error {
	if e.readOnly {
		return ErrReadOnly
	}
	if !e.undo.CanRedo() {
		return ErrNothingToRedo
	}
	for steps > 0 && e.undo.Redo(e) {
		steps--
	}
	return nil
}

// --- history.Target ---

// InsertTextAt splices text into the document. Part of the history
// replay surface.
func (e *Editor) InsertTextAt(where coords.Coordinate, text string) (coords.Coordinate, int) {
	return e.doc.InsertTextAt(where, text)
}

// DeleteRange removes [start, end). Part of the history replay surface.
func (e *Editor) DeleteRange(start, end coords.Coordinate) {
	e.doc.DeleteRange(start, end)
}

// Recolorize marks lines dirty for the tokenizer.
func (e *Editor) Recolorize(fromLine, lineCount int) {
	e.colorizer.MarkDirty(fromLine, lineCount)
}

// RestoreCursors replaces the cursor layout from a snapshot.
func (e *Editor) RestoreCursors(st cursor.State) {
	e.cursors.Restore(st)
}

// --- internal helpers ---

// setCursorPosition moves cursor i's end (and start unless selecting)
// to pos and flags the deferred merge pass.
func (e *Editor) setCursorPosition(pos coords.Coordinate, i int, clearSelection bool) {
	if i == -1 {
		i = e.cursors.CurrentIndex()
	}
	e.cursorsMoved = true
	e.cursors.SetPosition(i, pos, clearSelection)
}

// sanitizedCursor returns cursor i's interactive end clamped into the
// document.
func (e *Editor) sanitizedCursor(i int) coords.Coordinate {
	if i == -1 {
		i = e.cursors.CurrentIndex()
	}
	return e.doc.Sanitize(e.cursors.Get(i).InteractiveEnd)
}

// onCursorPositionChanged re-sorts and merges cursors after moves.
func (e *Editor) onCursorPositionChanged() {
	if !e.cursorsMoved {
		return
	}
	e.cursors.SortTopToBottom()
	e.cursors.Merge()
	e.cursorsMoved = false
}

func (e *Editor) selectedText(i int) string {
	c := e.cursors.Get(i)
	return e.doc.TextInRange(c.SelectionStart(), c.SelectionEnd())
}
