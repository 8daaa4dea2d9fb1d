package engine

import "errors"

// Errors returned by editor operations.
var (
	// ErrReadOnly indicates a write was attempted on a read-only editor.
	ErrReadOnly = errors.New("editor is read-only")

	// ErrNothingToUndo indicates the undo stack is empty.
	ErrNothingToUndo = errors.New("nothing to undo")

	// ErrNothingToRedo indicates the redo stack is empty.
	ErrNothingToRedo = errors.New("nothing to redo")

	// ErrUnknownLanguage indicates no built-in language has that name.
	ErrUnknownLanguage = errors.New("unknown language")
)
