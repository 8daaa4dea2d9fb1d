package syntax

import (
	"strings"
	"testing"

	"github.com/dshills/textforge/internal/engine/document"
	"github.com/dshills/textforge/internal/style"
)

func colorized(t *testing.T, text, langName string) (*document.Document, *Colorizer) {
	t.Helper()
	doc := document.New(4)
	doc.SetText(text)
	lang := LanguageByName(langName)
	if lang == nil {
		t.Fatalf("unknown language %q", langName)
	}
	c := NewColorizer(doc, lang)
	c.Flush()
	return doc, c
}

func TestColorizeCTokens(t *testing.T) {
	doc, _ := colorized(t, "int x = 42;", "c")
	line := doc.Line(0)

	checks := []struct {
		cell int
		want style.PaletteIndex
	}{
		{0, style.Keyword},     // i
		{2, style.Keyword},     // t
		{3, style.Default},     // space
		{4, style.Identifier},  // x
		{6, style.Punctuation}, // =
		{8, style.Number},      // 4
		{9, style.Number},      // 2
		{10, style.Punctuation},
	}
	for _, c := range checks {
		if got := line[c.cell].Color; got != c.want {
			t.Errorf("cell %d: expected %v, got %v", c.cell, c.want, got)
		}
	}
}

func TestColorizeKnownIdentifier(t *testing.T) {
	doc, _ := colorized(t, "printf(s);", "c")
	if got := doc.Line(0)[0].Color; got != style.KnownIdentifier {
		t.Errorf("expected KnownIdentifier, got %v", got)
	}
}

func TestColorizeStringLiteral(t *testing.T) {
	doc, _ := colorized(t, `s = "hi";`, "c")
	line := doc.Line(0)
	for cell := 4; cell <= 7; cell++ {
		if got := line[cell].Color; got != style.String {
			t.Errorf("cell %d: expected String, got %v", cell, got)
		}
	}
}

func TestSingleLineCommentFlags(t *testing.T) {
	doc, _ := colorized(t, "x = 1; // done", "c")
	line := doc.Line(0)

	if line[0].Comment {
		t.Error("expected code before the comment unflagged")
	}
	for cell := 7; cell < len(line); cell++ {
		if !line[cell].Comment {
			t.Errorf("cell %d: expected comment flag", cell)
		}
	}
}

func TestBlockCommentSpansLines(t *testing.T) {
	doc, _ := colorized(t, "a /* x\ny */ b", "c")

	line0 := doc.Line(0)
	if line0[0].MultilineComment {
		t.Error("expected cell before the opener unflagged")
	}
	for cell := 2; cell < len(line0); cell++ {
		if !line0[cell].MultilineComment {
			t.Errorf("line 0 cell %d: expected comment flag", cell)
		}
	}

	line1 := doc.Line(1)
	for cell := 0; cell <= 3; cell++ {
		if !line1[cell].MultilineComment {
			t.Errorf("line 1 cell %d: expected comment flag", cell)
		}
	}
	for cell := 4; cell < len(line1); cell++ {
		if line1[cell].MultilineComment {
			t.Errorf("line 1 cell %d: expected flag cleared after the closer", cell)
		}
	}
}

func TestUnclosedBlockCommentReachesDocumentEnd(t *testing.T) {
	doc, _ := colorized(t, "/* open\nstill", "c")
	line1 := doc.Line(1)
	for cell := range line1 {
		if !line1[cell].MultilineComment {
			t.Errorf("cell %d: expected comment flag", cell)
		}
	}
}

func TestCommentOpenerInsideStringIgnored(t *testing.T) {
	doc, _ := colorized(t, `s = "/* no */";`, "c")
	line := doc.Line(0)
	for cell := range line {
		if line[cell].MultilineComment {
			t.Errorf("cell %d: expected no comment flag inside the string", cell)
		}
	}
}

func TestPreprocessorFlags(t *testing.T) {
	doc, _ := colorized(t, "#define MAX 10\nint x;", "c")

	line0 := doc.Line(0)
	for cell := range line0 {
		if !line0[cell].Preprocessor {
			t.Errorf("line 0 cell %d: expected preprocessor flag", cell)
		}
	}
	if doc.Line(1)[0].Preprocessor {
		t.Error("expected next line unflagged")
	}
}

func TestPreprocessorContinuation(t *testing.T) {
	doc, _ := colorized(t, "#define A \\\n1", "c")
	if !doc.Line(1)[0].Preprocessor {
		t.Error("expected continuation line to stay in the directive")
	}
}

func TestCaseInsensitiveKeywords(t *testing.T) {
	doc, _ := colorized(t, "select x", "sql")
	line := doc.Line(0)
	for cell := 0; cell < 6; cell++ {
		if got := line[cell].Color; got != style.Keyword {
			t.Errorf("cell %d: expected Keyword, got %v", cell, got)
		}
	}
	if got := line[7].Color; got != style.Identifier {
		t.Errorf("expected plain identifier, got %v", got)
	}
}

func TestUpdateBudget(t *testing.T) {
	t.Run("regex-only languages take small slices", func(t *testing.T) {
		doc := document.New(4)
		doc.SetText(strings.TrimSuffix(strings.Repeat("x = 1\n", 25), "\n"))
		c := NewColorizer(doc, LanguageByName("lua"))

		passes := 0
		for c.Update() {
			passes++
		}
		// 25 lines at 10 per pass: two passes report more work
		if passes != 2 {
			t.Errorf("expected 2 intermediate passes, got %d", passes)
		}
	})

	t.Run("fast-path languages finish in one pass", func(t *testing.T) {
		doc := document.New(4)
		doc.SetText(strings.TrimSuffix(strings.Repeat("x = 1;\n", 25), "\n"))
		c := NewColorizer(doc, LanguageByName("c"))
		if c.Update() {
			t.Error("expected all lines colorized in one pass")
		}
	})
}

func TestUpdateWithoutLanguage(t *testing.T) {
	doc := document.New(4)
	doc.SetText("plain text")
	c := NewColorizer(doc, nil)
	if c.Update() {
		t.Error("expected nothing to do without a language")
	}
	if doc.Line(0)[0].Color != style.Default {
		t.Error("expected glyphs left at the default slot")
	}
}

func TestSetLanguageSchedulesFullRecolor(t *testing.T) {
	doc := document.New(4)
	doc.SetText("int x;")
	c := NewColorizer(doc, nil)
	c.Flush()

	c.SetLanguage(LanguageByName("c"))
	c.Flush()
	if got := doc.Line(0)[0].Color; got != style.Keyword {
		t.Errorf("expected Keyword after language switch, got %v", got)
	}
}

func TestMarkDirtyRecolorsEditedLines(t *testing.T) {
	doc, c := colorized(t, "x\ny", "c")

	doc.Line(1)[0].Color = style.ErrorMarker
	c.MarkDirty(1, 1)
	c.Flush()
	if got := doc.Line(1)[0].Color; got != style.Identifier {
		t.Errorf("expected recolored Identifier, got %v", got)
	}
}
