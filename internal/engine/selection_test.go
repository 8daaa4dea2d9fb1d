package engine

import "testing"

func TestSelectAll(t *testing.T) {
	e := New(WithContent("ab\ncd"))
	e.SelectAll()
	if got := e.SelectedText(); got != "ab\ncd" {
		t.Errorf("expected whole document, got %q", got)
	}
	if e.Cursors().Count() != 1 {
		t.Errorf("expected a single cursor, got %d", e.Cursors().Count())
	}
}

func TestSelectLine(t *testing.T) {
	e := New(WithContent("ab\ncd"))
	e.SelectLine(1)
	if got := e.SelectedText(); got != "cd" {
		t.Errorf("expected \"cd\", got %q", got)
	}
}

func TestSelectRegion(t *testing.T) {
	e := New(WithContent("ab\ncd"))
	e.SelectRegion(0, 1, 1, 1)
	if got := e.SelectedText(); got != "b\nc" {
		t.Errorf("expected \"b\\nc\", got %q", got)
	}
}

func TestSelectWordUnderCursor(t *testing.T) {
	e := New(WithContent("hello world"))
	e.SetCursorPosition(at(0, 2))
	e.SelectWordUnderCursor()
	if got := e.SelectedText(); got != "hello" {
		t.Errorf("expected \"hello\", got %q", got)
	}
}

func TestSelectNextOccurrenceOf(t *testing.T) {
	e := New(WithContent("foo bar foo"))
	e.SetCursorPosition(at(0, 0))

	if !e.SelectNextOccurrenceOf("foo", true) {
		t.Fatal("expected a match")
	}
	c := e.Cursors().Main()
	if c.SelectionStart() != at(0, 0) || c.SelectionEnd() != at(0, 3) {
		t.Errorf("expected first match (0,0)..(0,3), got %v..%v", c.SelectionStart(), c.SelectionEnd())
	}

	if !e.SelectNextOccurrenceOf("foo", true) {
		t.Fatal("expected a second match")
	}
	c = e.Cursors().Main()
	if c.SelectionStart() != at(0, 8) || c.SelectionEnd() != at(0, 11) {
		t.Errorf("expected second match (0,8)..(0,11), got %v..%v", c.SelectionStart(), c.SelectionEnd())
	}

	// the search wraps back around
	if !e.SelectNextOccurrenceOf("foo", true) {
		t.Fatal("expected the search to wrap")
	}
	c = e.Cursors().Main()
	if c.SelectionStart() != at(0, 0) {
		t.Errorf("expected wrap to (0,0), got %v", c.SelectionStart())
	}

	if e.SelectNextOccurrenceOf("zap", true) {
		t.Error("expected no match")
	}
}

func TestSelectNextOccurrenceCaseFolding(t *testing.T) {
	e := New(WithContent("Foo foo"))
	e.SetCursorPosition(at(0, 0))

	if !e.SelectNextOccurrenceOf("FOO", false) {
		t.Fatal("expected a case-folded match")
	}
	if got := e.Cursors().Main().SelectionStart(); got != at(0, 0) {
		t.Errorf("expected match at (0,0), got %v", got)
	}

	if e.SelectNextOccurrenceOf("FOO", true) && e.Cursors().Main().SelectionStart() == at(0, 0) {
		t.Error("expected case-sensitive search to skip \"Foo\"")
	}
}

func TestFindNextOccurrenceAcrossLines(t *testing.T) {
	e := New(WithContent("one\ntwo"))
	start, end, ok := e.FindNextOccurrence("e\nt", at(0, 0), true)
	if !ok {
		t.Fatal("expected a match spanning the line break")
	}
	if start != at(0, 2) || end != at(1, 1) {
		t.Errorf("expected (0,2)..(1,1), got %v..%v", start, end)
	}
}

func TestAddCursorForNextOccurrence(t *testing.T) {
	e := New(WithContent("foo bar foo"))
	e.SetCursorPosition(at(0, 0))
	if !e.SelectNextOccurrenceOf("foo", true) {
		t.Fatal("expected a match")
	}

	if !e.AddCursorForNextOccurrence(true) {
		t.Fatal("expected a cursor added")
	}
	if e.Cursors().Count() != 2 {
		t.Fatalf("expected 2 cursors, got %d", e.Cursors().Count())
	}
	if got := e.Cursors().Get(1).SelectionStart(); got != at(0, 8) {
		t.Errorf("expected second cursor at (0,8), got %v", got)
	}

	// no selection on the last-added cursor means nothing to extend
	e.ClearSelections()
	if e.AddCursorForNextOccurrence(true) {
		t.Error("expected false without a selection")
	}
}

func TestSelectAllOccurrencesOf(t *testing.T) {
	e := New(WithContent("foo bar foo\nfoo"))
	e.SetCursorPosition(at(0, 0))

	e.SelectAllOccurrencesOf("foo", true)
	if e.Cursors().Count() != 3 {
		t.Fatalf("expected 3 cursors, got %d", e.Cursors().Count())
	}
	for c := 0; c < e.Cursors().Count(); c++ {
		cur := e.Cursors().Get(c)
		if got := e.Document().TextInRange(cur.SelectionStart(), cur.SelectionEnd()); got != "foo" {
			t.Errorf("cursor %d: expected \"foo\", got %q", c, got)
		}
	}
}

func TestAddCursorAboveBelow(t *testing.T) {
	e := New(WithContent("aaa\nbbb\nccc"))
	e.SetCursorPosition(at(1, 2))

	e.AddCursorAbove()
	if e.Cursors().Count() != 2 {
		t.Fatalf("expected 2 cursors, got %d", e.Cursors().Count())
	}
	if got := e.Cursors().Get(0).InteractiveEnd; got != at(0, 2) {
		t.Errorf("expected duplicated cursor at (0,2), got %v", got)
	}

	e.AddCursorBelow()
	if e.Cursors().Count() != 3 {
		t.Fatalf("expected 3 cursors, got %d", e.Cursors().Count())
	}
}

func TestFindMatchingBracket(t *testing.T) {
	e := New(WithContent("f(a[b]c)"))

	t.Run("opener scans forward", func(t *testing.T) {
		got, ok := e.FindMatchingBracket(0, 1)
		if !ok || got != at(0, 7) {
			t.Errorf("expected (0,7), got %v ok=%v", got, ok)
		}
	})

	t.Run("closer scans backward", func(t *testing.T) {
		got, ok := e.FindMatchingBracket(0, 7)
		if !ok || got != at(0, 1) {
			t.Errorf("expected (0,1), got %v ok=%v", got, ok)
		}
	})

	t.Run("inner pair", func(t *testing.T) {
		got, ok := e.FindMatchingBracket(0, 3)
		if !ok || got != at(0, 5) {
			t.Errorf("expected (0,5), got %v ok=%v", got, ok)
		}
	})

	t.Run("nesting counts", func(t *testing.T) {
		n := New(WithContent("((x))"))
		got, ok := n.FindMatchingBracket(0, 0)
		if !ok || got != at(0, 4) {
			t.Errorf("expected (0,4), got %v ok=%v", got, ok)
		}
		got, ok = n.FindMatchingBracket(0, 1)
		if !ok || got != at(0, 3) {
			t.Errorf("expected (0,3), got %v ok=%v", got, ok)
		}
	})

	t.Run("across lines", func(t *testing.T) {
		n := New(WithContent("{\n  }"))
		got, ok := n.FindMatchingBracket(0, 0)
		if !ok || got != at(1, 2) {
			t.Errorf("expected (1,2), got %v ok=%v", got, ok)
		}
	})

	t.Run("not a bracket", func(t *testing.T) {
		if _, ok := e.FindMatchingBracket(0, 0); ok {
			t.Error("expected no match on a letter")
		}
	})

	t.Run("unbalanced", func(t *testing.T) {
		n := New(WithContent("((("))
		if _, ok := n.FindMatchingBracket(0, 0); ok {
			t.Error("expected no match")
		}
	})
}
