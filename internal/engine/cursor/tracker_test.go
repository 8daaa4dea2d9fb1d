package cursor

import (
	"testing"

	"github.com/dshills/textforge/internal/engine/document"
)

func newTracked(t *testing.T, text string) (*document.Document, *Set) {
	t.Helper()
	doc := document.New(4)
	doc.SetText(text)
	set := NewSet()
	NewTracker(doc, set)
	return doc, set
}

func TestTrackerLineInserted(t *testing.T) {
	doc, set := newTracked(t, "aaa\nbbb\nccc")
	set.SetCursor(0, At(at(2, 1)))

	doc.InsertLine(1)
	if got := set.Get(0).InteractiveEnd; got != at(3, 1) {
		t.Errorf("expected (3,1), got %v", got)
	}

	// cursor above the insertion stays put
	set.SetCursor(0, At(at(0, 2)))
	doc.InsertLine(2)
	if got := set.Get(0).InteractiveEnd; got != at(0, 2) {
		t.Errorf("expected (0,2), got %v", got)
	}
}

func TestTrackerLineRemoved(t *testing.T) {
	doc, set := newTracked(t, "aaa\nbbb\nccc")
	set.SetCursor(0, At(at(2, 1)))

	doc.RemoveLine(0, nil)
	if got := set.Get(0).InteractiveEnd; got != at(1, 1) {
		t.Errorf("expected (1,1), got %v", got)
	}

	// handled cursors are skipped
	doc.SetText("aaa\nbbb\nccc")
	set.SetCursor(0, At(at(2, 1)))
	doc.RemoveLine(0, map[int]bool{0: true})
	if got := set.Get(0).InteractiveEnd; got != at(2, 1) {
		t.Errorf("expected handled cursor untouched at (2,1), got %v", got)
	}
}

func TestTrackerLinesRemovedPreservesSelection(t *testing.T) {
	doc, set := newTracked(t, "a\nb\nc\nd\ne")
	set.SetCursor(0, sel(3, 0, 4, 1))

	doc.RemoveLines(0, 2)
	c := set.Get(0)
	if c.InteractiveStart != at(1, 0) || c.InteractiveEnd != at(2, 1) {
		t.Errorf("expected selection (1,0)..(2,1), got %v..%v", c.InteractiveStart, c.InteractiveEnd)
	}
	if !c.HasSelection() {
		t.Error("expected selection to survive")
	}
}

func TestTrackerSameLineSplice(t *testing.T) {
	t.Run("insert shifts carets right of the edit", func(t *testing.T) {
		doc, set := newTracked(t, "hello")
		set.SetCursor(0, At(at(0, 3)))

		doc.AddGlyph(0, 1, document.Glyph{Cluster: "X"})
		if got := set.Get(0).InteractiveEnd; got != at(0, 4) {
			t.Errorf("expected (0,4), got %v", got)
		}
	})

	t.Run("delete shifts carets left", func(t *testing.T) {
		doc, set := newTracked(t, "hello")
		set.SetCursor(0, At(at(0, 4)))

		doc.RemoveGlyphs(0, 0, 2)
		if got := set.Get(0).InteractiveEnd; got != at(0, 2) {
			t.Errorf("expected (0,2), got %v", got)
		}
	})

	t.Run("carets left of the edit stay", func(t *testing.T) {
		doc, set := newTracked(t, "hello")
		set.SetCursor(0, At(at(0, 1)))

		doc.AddGlyph(0, 3, document.Glyph{Cluster: "X"})
		if got := set.Get(0).InteractiveEnd; got != at(0, 1) {
			t.Errorf("expected (0,1), got %v", got)
		}
	})
}

func TestTrackerLinesMerged(t *testing.T) {
	// deleting (0,3)..(2,2) merges what remains of line 2 into line 0;
	// a caret on line 2 past the deleted head lands after the seam
	doc, set := newTracked(t, "alpha\nbeta\ngamma")
	set.SetCursor(0, At(at(2, 4)))

	doc.DeleteRange(at(0, 3), at(2, 2))
	if doc.Text() != "alpmma" {
		t.Fatalf("unexpected text: %q", doc.Text())
	}
	if got := set.Get(0).InteractiveEnd; got != at(0, 5) {
		t.Errorf("expected (0,5), got %v", got)
	}
}
