// Package history records edits as replayable operations so undo and
// redo restore both text and the exact cursor layout of each step.
package history

import (
	"github.com/dshills/textforge/internal/engine/coords"
	"github.com/dshills/textforge/internal/engine/cursor"
)

// OperationType distinguishes insertions from deletions.
type OperationType int

const (
	// OpAdd records text that was inserted at [Start, End).
	OpAdd OperationType = iota
	// OpDelete records text that was removed from [Start, End).
	OpDelete
)

// Operation is one primitive edit inside a record. Start and End are
// the display coordinates the text occupied (for OpAdd, after the
// insert; for OpDelete, before the delete).
type Operation struct {
	Text  string
	Start coords.Coordinate
	End   coords.Coordinate
	Type  OperationType
}

// Target is the editing surface operations replay against.
type Target interface {
	// InsertTextAt splices text and returns the end coordinate and
	// number of added lines.
	InsertTextAt(where coords.Coordinate, text string) (coords.Coordinate, int)
	// DeleteRange removes [start, end).
	DeleteRange(start, end coords.Coordinate)
	// Recolorize marks lines dirty for the tokenizer.
	Recolorize(fromLine, lineCount int)
	// RestoreCursors replaces the cursor layout.
	RestoreCursors(st cursor.State)
}

// Record is one undoable user action: the primitive operations it
// performed plus full cursor snapshots from either side.
type Record struct {
	Operations []Operation
	Before     cursor.State
	After      cursor.State
}

// Undo replays the record's operations inverted and in reverse order,
// then restores the cursor layout from before the action.
func (r *Record) Undo(t Target) {
	for i := len(r.Operations) - 1; i > -1; i-- {
		op := r.Operations[i]
		if op.Text == "" {
			continue
		}
		switch op.Type {
		case OpDelete:
			t.InsertTextAt(op.Start, op.Text)
		case OpAdd:
			t.DeleteRange(op.Start, op.End)
		}
		t.Recolorize(op.Start.Line-1, op.End.Line-op.Start.Line+2)
	}
	t.RestoreCursors(r.Before)
}

// Redo replays the record's operations forward, then restores the
// cursor layout from after the action.
func (r *Record) Redo(t Target) {
	for _, op := range r.Operations {
		if op.Text == "" {
			continue
		}
		switch op.Type {
		case OpDelete:
			t.DeleteRange(op.Start, op.End)
		case OpAdd:
			t.InsertTextAt(op.Start, op.Text)
		}
		t.Recolorize(op.Start.Line-1, op.End.Line-op.Start.Line+1)
	}
	t.RestoreCursors(r.After)
}
