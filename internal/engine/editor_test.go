package engine

import (
	"errors"
	"testing"

	"github.com/dshills/textforge/internal/engine/coords"
	"github.com/dshills/textforge/internal/engine/cursor"
)

func at(line, column int) coords.Coordinate {
	return coords.Coordinate{Line: line, Column: column}
}

func TestMultiCursorTyping(t *testing.T) {
	e := New(WithContent("foo bar"))
	e.SetCursorPosition(at(0, 0))
	e.Cursors().Add(cursor.At(at(0, 4)))

	if err := e.EnterCharacter('X', false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Text() != "Xfoo Xbar" {
		t.Errorf("expected \"Xfoo Xbar\", got %q", e.Text())
	}
	if got := e.Cursors().Get(0).InteractiveEnd; got != at(0, 1) {
		t.Errorf("expected cursor 0 at (0,1), got %v", got)
	}
	if got := e.Cursors().Get(1).InteractiveEnd; got != at(0, 6) {
		t.Errorf("expected cursor 1 at (0,6), got %v", got)
	}
}

func TestUndoRedoRoundTrip(t *testing.T) {
	e := New(WithContent("foo bar"))
	e.SetCursorPosition(at(0, 0))
	e.Cursors().Add(cursor.At(at(0, 4)))

	if err := e.EnterCharacter('X', false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := e.Undo(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Text() != "foo bar" {
		t.Errorf("expected original text after undo, got %q", e.Text())
	}
	if got := e.Cursors().Get(0).InteractiveEnd; got != at(0, 0) {
		t.Errorf("expected cursor 0 restored at (0,0), got %v", got)
	}
	if got := e.Cursors().Get(1).InteractiveEnd; got != at(0, 4) {
		t.Errorf("expected cursor 1 restored at (0,4), got %v", got)
	}

	if err := e.Redo(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Text() != "Xfoo Xbar" {
		t.Errorf("expected text re-applied after redo, got %q", e.Text())
	}
}

func TestNewEditAfterUndoDiscardsRedo(t *testing.T) {
	e := New()
	if err := e.EnterCharacter('a', false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := e.EnterCharacter('b', false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := e.Undo(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !e.CanRedo() {
		t.Fatal("expected redo available after undo")
	}

	if err := e.EnterCharacter('c', false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.CanRedo() {
		t.Error("expected redo discarded by new edit")
	}
	if e.Text() != "ac" {
		t.Errorf("expected \"ac\", got %q", e.Text())
	}
}

func TestBackspaceMergesLines(t *testing.T) {
	e := New(WithContent("ab\ncd"))
	e.SetCursorPosition(at(1, 0))

	if err := e.Backspace(false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Text() != "abcd" {
		t.Errorf("expected \"abcd\", got %q", e.Text())
	}
	if got := e.Cursors().Main().InteractiveEnd; got != at(0, 2) {
		t.Errorf("expected cursor at the seam (0,2), got %v", got)
	}

	if err := e.Undo(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Text() != "ab\ncd" {
		t.Errorf("expected lines split again, got %q", e.Text())
	}
	if got := e.Cursors().Main().InteractiveEnd; got != at(1, 0) {
		t.Errorf("expected cursor restored at (1,0), got %v", got)
	}
}

func TestBackspaceWordMode(t *testing.T) {
	e := New(WithContent("foo bar"))
	e.SetCursorPosition(at(0, 7))

	if err := e.Backspace(true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Text() != "foo " {
		t.Errorf("expected \"foo \", got %q", e.Text())
	}
}

func TestBackspaceAtDocumentStartIsNoop(t *testing.T) {
	e := New(WithContent("ab"))
	e.SetCursorPosition(at(0, 0))

	if err := e.Backspace(false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Text() != "ab" {
		t.Errorf("expected text unchanged, got %q", e.Text())
	}
	if e.CanUndo() {
		t.Error("expected no undo record for a no-op")
	}
}

func TestDelete(t *testing.T) {
	t.Run("removes the cell to the right", func(t *testing.T) {
		e := New(WithContent("ab"))
		e.SetCursorPosition(at(0, 0))
		if err := e.Delete(false); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.Text() != "b" {
			t.Errorf("expected \"b\", got %q", e.Text())
		}
	})

	t.Run("no-op at the document end", func(t *testing.T) {
		e := New(WithContent("ab"))
		e.SetCursorPosition(at(0, 2))
		if err := e.Delete(false); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.Text() != "ab" {
			t.Errorf("expected text unchanged, got %q", e.Text())
		}
		if e.CanUndo() {
			t.Error("expected no undo record for a no-op")
		}
	})
}

func TestDeleteAdjacentSelectionsMergesCursors(t *testing.T) {
	e := New(WithContent("abcdef"))
	e.SetSelection(at(0, 1), at(0, 3), 0)
	e.Cursors().Add(cursor.Cursor{InteractiveStart: at(0, 3), InteractiveEnd: at(0, 5)})

	if err := e.Delete(false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Text() != "af" {
		t.Errorf("expected \"af\", got %q", e.Text())
	}
	// both deletions land the cursors on the same cell
	if got := e.Cursors().Count(); got != 1 {
		t.Fatalf("expected coincident cursors merged into 1, got %d", got)
	}
	if got := e.Cursors().Main().InteractiveEnd; got != at(0, 1) {
		t.Errorf("expected the surviving cursor at (0,1), got %v", got)
	}

	if err := e.EnterCharacter('X', false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Text() != "aXf" {
		t.Errorf("expected a single insertion, got %q", e.Text())
	}
}

func TestEnterNewlineAutoIndent(t *testing.T) {
	e := New(WithContent("    foo"))
	e.SetCursorPosition(at(0, 7))

	if err := e.EnterCharacter('\n', false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Text() != "    foo\n    " {
		t.Errorf("expected leading whitespace copied, got %q", e.Text())
	}
	if got := e.Cursors().Main().InteractiveEnd; got != at(1, 4) {
		t.Errorf("expected cursor after indent (1,4), got %v", got)
	}
}

func TestEnterNewlineWithoutAutoIndent(t *testing.T) {
	e := New(WithContent("    foo"), WithAutoIndent(false))
	e.SetCursorPosition(at(0, 7))

	if err := e.EnterCharacter('\n', false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Text() != "    foo\n" {
		t.Errorf("expected bare newline, got %q", e.Text())
	}
}

func TestEnterNewlineSplitsLine(t *testing.T) {
	e := New(WithContent("headtail"))
	e.SetCursorPosition(at(0, 4))

	if err := e.EnterCharacter('\n', false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Text() != "head\ntail" {
		t.Errorf("expected split line, got %q", e.Text())
	}
	if got := e.Cursors().Main().InteractiveEnd; got != at(1, 0) {
		t.Errorf("expected cursor at (1,0), got %v", got)
	}
}

func TestInsertText(t *testing.T) {
	t.Run("multi-line payload", func(t *testing.T) {
		e := New()
		if err := e.InsertText("x\ny"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.Text() != "x\ny" {
			t.Errorf("unexpected text: %q", e.Text())
		}
		if got := e.Cursors().Main().InteractiveEnd; got != at(1, 1) {
			t.Errorf("expected cursor at (1,1), got %v", got)
		}
	})

	t.Run("replaces the selection", func(t *testing.T) {
		e := New(WithContent("hello world"))
		e.SetSelection(at(0, 6), at(0, 11), -1)
		if err := e.InsertText("go"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.Text() != "hello go" {
			t.Errorf("expected \"hello go\", got %q", e.Text())
		}
		if err := e.Undo(1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.Text() != "hello world" {
			t.Errorf("expected original text after undo, got %q", e.Text())
		}
	})
}

func TestCopy(t *testing.T) {
	t.Run("no selection copies the current line", func(t *testing.T) {
		e := New(WithContent("alpha\nbeta"))
		e.SetCursorPosition(at(1, 0))
		if got := e.Copy(); got != "beta" {
			t.Errorf("expected \"beta\", got %q", got)
		}
	})

	t.Run("selections join with newlines", func(t *testing.T) {
		e := New(WithContent("alpha\nbeta"))
		e.SetSelection(at(0, 0), at(0, 2), 0)
		e.Cursors().Add(cursor.Cursor{InteractiveStart: at(1, 0), InteractiveEnd: at(1, 2)})
		if got := e.Copy(); got != "al\nbe" {
			t.Errorf("expected \"al\\nbe\", got %q", got)
		}
	})
}

func TestCut(t *testing.T) {
	e := New(WithContent("alpha\nbeta"))
	e.SetSelection(at(0, 0), at(0, 2), -1)

	if got := e.Cut(); got != "al" {
		t.Errorf("expected \"al\", got %q", got)
	}
	if e.Text() != "pha\nbeta" {
		t.Errorf("expected selection removed, got %q", e.Text())
	}
	if err := e.Undo(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Text() != "alpha\nbeta" {
		t.Errorf("expected original text after undo, got %q", e.Text())
	}
}

func TestPaste(t *testing.T) {
	t.Run("single cursor", func(t *testing.T) {
		e := New(WithContent("ad"))
		e.SetCursorPosition(at(0, 1))
		if err := e.Paste("bc"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.Text() != "abcd" {
			t.Errorf("expected \"abcd\", got %q", e.Text())
		}
	})

	t.Run("one line per cursor", func(t *testing.T) {
		e := New(WithContent("x\ny"))
		e.SetCursorPosition(at(0, 1))
		e.Cursors().Add(cursor.At(at(1, 1)))
		if err := e.Paste("A\nB"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.Text() != "xA\nyB" {
			t.Errorf("expected \"xA\\nyB\", got %q", e.Text())
		}
	})

	t.Run("line count mismatch pastes everything everywhere", func(t *testing.T) {
		e := New(WithContent("x\ny"))
		e.SetCursorPosition(at(0, 1))
		e.Cursors().Add(cursor.At(at(1, 1)))
		if err := e.Paste("Z"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.Text() != "xZ\nyZ" {
			t.Errorf("expected \"xZ\\nyZ\", got %q", e.Text())
		}
	})
}

func TestReplaceRange(t *testing.T) {
	e := New(WithContent("hello world"))
	if err := e.ReplaceRange(0, 6, 0, 11, "go"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Text() != "hello go" {
		t.Errorf("expected \"hello go\", got %q", e.Text())
	}
	if err := e.Undo(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Text() != "hello world" {
		t.Errorf("expected original text after undo, got %q", e.Text())
	}
}

func TestWordMoves(t *testing.T) {
	e := New(WithContent("foo bar"))
	e.SetCursorPosition(at(0, 0))

	e.MoveRight(false, true)
	if got := e.Cursors().Main().InteractiveEnd; got != at(0, 3) {
		t.Errorf("expected word end (0,3), got %v", got)
	}

	e.SetCursorPosition(at(0, 3))
	e.MoveLeft(false, true)
	if got := e.Cursors().Main().InteractiveEnd; got != at(0, 0) {
		t.Errorf("expected word start (0,0), got %v", got)
	}
}

func TestMoveLeftCollapsesSelection(t *testing.T) {
	e := New(WithContent("hello"))
	e.SetSelection(at(0, 1), at(0, 4), -1)

	e.MoveLeft(false, false)
	c := e.Cursors().Main()
	if c.HasSelection() {
		t.Error("expected selection collapsed")
	}
	if c.InteractiveEnd != at(0, 1) {
		t.Errorf("expected collapse at selection start (0,1), got %v", c.InteractiveEnd)
	}
}

func TestVerticalMovesKeepDisplayColumn(t *testing.T) {
	e := New(WithContent("\tx\nabcdefgh"))
	e.SetCursorPosition(at(1, 3))

	// the raw column survives the move; sanitizing snaps it to a
	// cluster boundary only when the coordinate is used
	e.MoveUp(1, false)
	if got := e.Cursors().Main().InteractiveEnd; got != at(0, 3) {
		t.Errorf("expected column retained (0,3), got %v", got)
	}
	if got := e.Document().Sanitize(e.Cursors().Main().InteractiveEnd); got != at(0, 4) {
		t.Errorf("expected sanitized (0,4), got %v", got)
	}
}

func TestSetTextResetsHistory(t *testing.T) {
	e := New()
	if err := e.EnterCharacter('a', false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	e.SetText("fresh")
	if e.CanUndo() {
		t.Error("expected history cleared by SetText")
	}
	if e.Text() != "fresh" {
		t.Errorf("expected \"fresh\", got %q", e.Text())
	}
}

func TestReadOnlyGuards(t *testing.T) {
	e := New(WithContent("locked"), WithReadOnly())

	if err := e.EnterCharacter('x', false); !errors.Is(err, ErrReadOnly) {
		t.Errorf("EnterCharacter: expected ErrReadOnly, got %v", err)
	}
	if err := e.InsertText("x"); !errors.Is(err, ErrReadOnly) {
		t.Errorf("InsertText: expected ErrReadOnly, got %v", err)
	}
	if err := e.Backspace(false); !errors.Is(err, ErrReadOnly) {
		t.Errorf("Backspace: expected ErrReadOnly, got %v", err)
	}
	if err := e.Delete(false); !errors.Is(err, ErrReadOnly) {
		t.Errorf("Delete: expected ErrReadOnly, got %v", err)
	}
	if err := e.Paste("x"); !errors.Is(err, ErrReadOnly) {
		t.Errorf("Paste: expected ErrReadOnly, got %v", err)
	}
	if err := e.Undo(1); !errors.Is(err, ErrReadOnly) {
		t.Errorf("Undo: expected ErrReadOnly, got %v", err)
	}

	// Cut degrades to Copy
	e.SetSelection(at(0, 0), at(0, 6), -1)
	if got := e.Cut(); got != "locked" {
		t.Errorf("expected Cut to return the selection, got %q", got)
	}
	if e.Text() != "locked" {
		t.Errorf("expected text unchanged, got %q", e.Text())
	}
}

func TestUndoWithNothingToUndo(t *testing.T) {
	e := New()
	if err := e.Undo(1); !errors.Is(err, ErrNothingToUndo) {
		t.Errorf("expected ErrNothingToUndo, got %v", err)
	}
	if err := e.Redo(1); !errors.Is(err, ErrNothingToRedo) {
		t.Errorf("expected ErrNothingToRedo, got %v", err)
	}
}

func TestSetLanguage(t *testing.T) {
	e := New()
	if err := e.SetLanguage("c"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.LanguageName() != "C" {
		t.Errorf("expected language \"C\", got %q", e.LanguageName())
	}
	if err := e.SetLanguage("cobol"); !errors.Is(err, ErrUnknownLanguage) {
		t.Errorf("expected ErrUnknownLanguage, got %v", err)
	}
}
