package engine

import "github.com/dshills/textforge/internal/style"

// Default configuration values.
const (
	DefaultTabSize        = 4
	DefaultMaxUndoEntries = 1000
	DefaultWrapColumn     = 80
)

// Option configures an Editor during creation.
type Option func(*Editor)

// WithContent sets the initial content of the editor.
func WithContent(content string) Option {
	return func(e *Editor) {
		e.initContent = content
	}
}

// WithTabSize sets the tab size used for column arithmetic.
func WithTabSize(n int) Option {
	return func(e *Editor) {
		if n > 0 {
			e.tabSize = n
		}
	}
}

// WithLanguage selects the language definition by name. Unknown names
// leave the editor without a language; SetLanguage reports those.
func WithLanguage(name string) Option {
	return func(e *Editor) {
		e.initLanguage = name
	}
}

// WithMaxUndoEntries bounds the undo history.
func WithMaxUndoEntries(n int) Option {
	return func(e *Editor) {
		if n > 0 {
			e.maxUndoEntries = n
		}
	}
}

// WithAutoIndent makes newline insertion copy the leading whitespace
// of the current line.
func WithAutoIndent(on bool) Option {
	return func(e *Editor) {
		e.autoIndent = on
	}
}

// WithReadOnly creates a read-only editor. Write operations return
// ErrReadOnly.
func WithReadOnly() Option {
	return func(e *Editor) {
		e.readOnly = true
	}
}

// WithPalette selects the palette used to resolve glyph colors.
func WithPalette(id style.PaletteID) Option {
	return func(e *Editor) {
		e.palette = style.ByID(id)
	}
}

// WithWordWrap enables word wrap in the visual layout at the given
// column.
func WithWordWrap(column int) Option {
	return func(e *Editor) {
		if column > 0 {
			e.wrapEnabled = true
			e.wrapColumn = column
		}
	}
}
