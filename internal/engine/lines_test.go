package engine

import "testing"

func TestTabIndentsSelectedLines(t *testing.T) {
	e := New(WithContent("aa\nbb"))
	e.SetSelection(at(0, 0), at(1, 2), -1)

	// a tab over a multi-line selection indents instead of typing
	if err := e.EnterCharacter('\t', false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Text() != "\taa\n\tbb" {
		t.Errorf("expected indented lines, got %q", e.Text())
	}

	if err := e.EnterCharacter('\t', true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Text() != "aa\nbb" {
		t.Errorf("expected indentation removed, got %q", e.Text())
	}
}

func TestChangeCurrentLinesIndentation(t *testing.T) {
	t.Run("undo restores the lines", func(t *testing.T) {
		e := New(WithContent("aa\nbb"))
		e.SetSelection(at(0, 0), at(1, 2), -1)
		if err := e.ChangeCurrentLinesIndentation(true); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.Text() != "\taa\n\tbb" {
			t.Fatalf("expected indented lines, got %q", e.Text())
		}
		if err := e.Undo(1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.Text() != "aa\nbb" {
			t.Errorf("expected original text after undo, got %q", e.Text())
		}
	})

	t.Run("unindent eats leading spaces", func(t *testing.T) {
		e := New(WithContent("    bb"))
		e.SetCursorPosition(at(0, 6))
		if err := e.ChangeCurrentLinesIndentation(false); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.Text() != "bb" {
			t.Errorf("expected \"bb\", got %q", e.Text())
		}
	})

	t.Run("unindent leaves non-blank heads alone", func(t *testing.T) {
		e := New(WithContent("x   y"))
		e.SetCursorPosition(at(0, 0))
		if err := e.ChangeCurrentLinesIndentation(false); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.Text() != "x   y" {
			t.Errorf("expected text unchanged, got %q", e.Text())
		}
	})

	t.Run("empty lines are not indented", func(t *testing.T) {
		e := New(WithContent("aa\n\nbb"))
		e.SetSelection(at(0, 0), at(2, 2), -1)
		if err := e.ChangeCurrentLinesIndentation(true); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.Text() != "\taa\n\n\tbb" {
			t.Errorf("expected blank line skipped, got %q", e.Text())
		}
	})
}

func TestMoveUpCurrentLines(t *testing.T) {
	e := New(WithContent("a\nb\nc"))
	e.SetCursorPosition(at(1, 0))

	if err := e.MoveUpCurrentLines(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Text() != "b\na\nc" {
		t.Errorf("expected \"b\\na\\nc\", got %q", e.Text())
	}
	if got := e.Cursors().Main().InteractiveEnd.Line; got != 0 {
		t.Errorf("expected cursor to follow to line 0, got %d", got)
	}

	if err := e.Undo(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Text() != "a\nb\nc" {
		t.Errorf("expected original order after undo, got %q", e.Text())
	}

	// the top line has nowhere to go
	e.SetCursorPosition(at(0, 0))
	if err := e.MoveUpCurrentLines(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Text() != "a\nb\nc" {
		t.Errorf("expected no move at the top, got %q", e.Text())
	}
}

func TestMoveDownCurrentLines(t *testing.T) {
	e := New(WithContent("a\nb\nc"))
	e.SetCursorPosition(at(0, 0))

	if err := e.MoveDownCurrentLines(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Text() != "b\na\nc" {
		t.Errorf("expected \"b\\na\\nc\", got %q", e.Text())
	}
	if got := e.Cursors().Main().InteractiveEnd.Line; got != 1 {
		t.Errorf("expected cursor to follow to line 1, got %d", got)
	}

	e.SetCursorPosition(at(2, 0))
	if err := e.MoveDownCurrentLines(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Text() != "b\na\nc" {
		t.Errorf("expected no move at the bottom, got %q", e.Text())
	}
}

func TestToggleLineComment(t *testing.T) {
	t.Run("single line round trip", func(t *testing.T) {
		e := New(WithContent("int x;"), WithLanguage("c"))
		e.SetCursorPosition(at(0, 0))

		if err := e.ToggleLineComment(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.Text() != "// int x;" {
			t.Errorf("expected commented line, got %q", e.Text())
		}

		if err := e.ToggleLineComment(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.Text() != "int x;" {
			t.Errorf("expected comment removed, got %q", e.Text())
		}
	})

	t.Run("selection comments every line", func(t *testing.T) {
		e := New(WithContent("int x;\nint y;"), WithLanguage("c"))
		e.SetSelection(at(0, 0), at(1, 6), -1)

		if err := e.ToggleLineComment(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.Text() != "// int x;\n// int y;" {
			t.Errorf("expected both lines commented, got %q", e.Text())
		}

		if err := e.ToggleLineComment(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.Text() != "int x;\nint y;" {
			t.Errorf("expected both comments removed, got %q", e.Text())
		}
	})

	t.Run("no language is a no-op", func(t *testing.T) {
		e := New(WithContent("x"))
		if err := e.ToggleLineComment(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.Text() != "x" {
			t.Errorf("expected text unchanged, got %q", e.Text())
		}
		if e.CanUndo() {
			t.Error("expected no undo record")
		}
	})
}

func TestRemoveCurrentLines(t *testing.T) {
	t.Run("middle line", func(t *testing.T) {
		e := New(WithContent("a\nb\nc"))
		e.SetCursorPosition(at(1, 0))
		if err := e.RemoveCurrentLines(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.Text() != "a\nc" {
			t.Errorf("expected \"a\\nc\", got %q", e.Text())
		}
		if err := e.Undo(1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.Text() != "a\nb\nc" {
			t.Errorf("expected line restored, got %q", e.Text())
		}
	})

	t.Run("last line", func(t *testing.T) {
		e := New(WithContent("a\nb"))
		e.SetCursorPosition(at(1, 0))
		if err := e.RemoveCurrentLines(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.Text() != "a" {
			t.Errorf("expected \"a\", got %q", e.Text())
		}
	})

	t.Run("only line empties it", func(t *testing.T) {
		e := New(WithContent("abc"))
		e.SetCursorPosition(at(0, 1))
		if err := e.RemoveCurrentLines(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.Text() != "" {
			t.Errorf("expected empty document, got %q", e.Text())
		}
	})

	t.Run("one line per cursor", func(t *testing.T) {
		e := New(WithContent("a\nb\nc\nd"))
		e.SetCursorPosition(at(0, 0))
		e.Cursors().Add(Cursor{InteractiveStart: at(2, 0), InteractiveEnd: at(2, 0)})
		if err := e.RemoveCurrentLines(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.Text() != "b\nd" {
			t.Errorf("expected \"b\\nd\", got %q", e.Text())
		}
	})
}
