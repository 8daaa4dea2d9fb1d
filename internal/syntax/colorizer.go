package syntax

import (
	"math"
	"sort"
	"strings"

	"github.com/dshills/textforge/internal/engine/document"
	"github.com/dshills/textforge/internal/style"
)

// Colorizer incrementally reclassifies document glyphs. Edits mark a
// line range dirty; each Update call runs one bounded pass so large
// files colorize over several ticks instead of stalling the caller.
type Colorizer struct {
	doc  *document.Document
	lang *Language

	rangeMin      int
	rangeMax      int
	checkComments bool

	semanticTokens []SemanticToken
}

// NewColorizer returns a colorizer over doc. lang may be nil; glyphs
// then keep their default classification.
func NewColorizer(doc *document.Document, lang *Language) *Colorizer {
	c := &Colorizer{doc: doc, lang: lang, rangeMin: math.MaxInt}
	if lang != nil {
		c.MarkDirty(0, -1)
	}
	return c
}

// Language returns the active language, nil when none is set.
func (c *Colorizer) Language() *Language { return c.lang }

// SetLanguage switches languages and schedules a full recolor.
func (c *Colorizer) SetLanguage(lang *Language) {
	c.lang = lang
	c.MarkDirty(0, -1)
}

// MarkDirty schedules lines [fromLine, fromLine+lineCount) for
// recoloring. A lineCount of -1 extends to the document end. The
// whole-document comment scan reruns on the next Update because an
// edit anywhere can open or close a block comment.
func (c *Colorizer) MarkDirty(fromLine, lineCount int) {
	toLine := c.doc.LineCount()
	if lineCount != -1 {
		toLine = min(c.doc.LineCount(), fromLine+lineCount)
	}
	c.rangeMin = max(0, min(c.rangeMin, fromLine))
	c.rangeMax = max(c.rangeMin, max(c.rangeMax, toLine))
	c.checkComments = true
}

// Update runs one colorization pass and reports whether dirty lines
// remain. Languages without a fast-path tokenizer get a much smaller
// slice per pass since every token goes through the regex engine.
func (c *Colorizer) Update() bool {
	if c.lang == nil {
		return false
	}

	if c.checkComments {
		c.scanComments()
		c.checkComments = false
	}

	if c.rangeMin < c.rangeMax {
		increment := 10000
		if c.lang.Tokenize == nil {
			increment = 10
		}
		to := min(c.rangeMin+increment, c.rangeMax)
		c.colorizeRange(c.rangeMin, to)
		c.rangeMin = to

		// tokenization overwrites the overlay
		if len(c.semanticTokens) > 0 {
			c.reapplySemanticTokens()
		}

		if c.rangeMax == c.rangeMin {
			c.rangeMin = math.MaxInt
			c.rangeMax = 0
		}
	}
	return c.rangeMin < c.rangeMax
}

// Flush drains every pending pass.
func (c *Colorizer) Flush() {
	for c.Update() {
	}
}

// scanComments walks the whole document tracking string, preprocessor
// and comment state across lines, writing the Comment,
// MultilineComment and Preprocessor bits on every glyph. The block
// comment sentinel starts past the last line; positions at or after it
// are inside an open comment.
func (c *Colorizer) scanComments() {
	endLine := c.doc.LineCount()
	commentStartLine := endLine
	commentStartIndex := 0
	withinString := false
	withinSingleLineComment := false
	withinPreproc := false
	firstChar := true    // no non-whitespace seen yet on this line
	concatenate := false // line ended with a backslash
	currentLine := 0
	currentIndex := 0

	for currentLine < endLine {
		line := c.doc.Line(currentLine)

		if currentIndex == 0 && !concatenate {
			withinSingleLineComment = false
			withinPreproc = false
			firstChar = true
		}
		concatenate = false

		if len(line) == 0 {
			currentIndex = 0
			currentLine++
			continue
		}

		cl := line[currentIndex].Cluster
		if cl != c.lang.PreprocChar && !isSpaceCluster(cl) {
			firstChar = false
		}
		if currentIndex == len(line)-1 && line[len(line)-1].Cluster == "\\" {
			concatenate = true
		}

		inComment := commentStartLine < currentLine ||
			(commentStartLine == currentLine && commentStartIndex <= currentIndex)

		if withinString {
			line[currentIndex].MultilineComment = inComment
			switch cl {
			case "\"":
				if currentIndex+1 < len(line) && line[currentIndex+1].Cluster == "\"" {
					currentIndex++
					line[currentIndex].MultilineComment = inComment
				} else {
					withinString = false
				}
			case "\\":
				currentIndex++
				if currentIndex < len(line) {
					line[currentIndex].MultilineComment = inComment
				}
			}
		} else {
			if firstChar && c.lang.PreprocChar != "" && cl == c.lang.PreprocChar {
				withinPreproc = true
			}

			if cl == "\"" {
				withinString = true
				line[currentIndex].MultilineComment = inComment
			} else {
				startStr := c.lang.CommentStart
				singleStr := c.lang.SingleLineComment

				if !withinSingleLineComment && startStr != "" &&
					clustersMatch(line, currentIndex, startStr) {
					commentStartLine = currentLine
					commentStartIndex = currentIndex
				} else if singleStr != "" && clustersMatch(line, currentIndex, singleStr) {
					withinSingleLineComment = true
				}

				inComment = commentStartLine < currentLine ||
					(commentStartLine == currentLine && commentStartIndex <= currentIndex)
				line[currentIndex].MultilineComment = inComment
				line[currentIndex].Comment = withinSingleLineComment

				endStr := c.lang.CommentEnd
				if endStr != "" && currentIndex+1 >= len(endStr) &&
					clustersMatch(line, currentIndex+1-len(endStr), endStr) {
					commentStartIndex = 0
					commentStartLine = endLine
				}
			}
		}

		if currentIndex < len(line) {
			line[currentIndex].Preprocessor = withinPreproc
		}
		currentIndex++
		if currentIndex >= len(line) {
			currentIndex = 0
			currentLine++
		}
	}
}

// colorizeRange retokenizes lines [fromLine, toLine), resetting every
// glyph to the default slot first. The fast path is tried per token;
// otherwise the anchored regex rules run in order and the first match
// wins. Identifier tokens are refined against the language's keyword
// and identifier tables.
func (c *Colorizer) colorizeRange(fromLine, toLine int) {
	if fromLine >= toLine {
		return
	}

	endLine := max(0, min(c.doc.LineCount(), toLine))
	for i := fromLine; i < endLine; i++ {
		line := c.doc.Line(i)
		if len(line) == 0 {
			continue
		}

		// Flatten the line once; starts maps cells to byte offsets.
		var sb strings.Builder
		starts := make([]int, len(line)+1)
		for j := range line {
			starts[j] = sb.Len()
			line[j].Color = style.Default
			sb.WriteString(line[j].Cluster)
		}
		starts[len(line)] = sb.Len()
		text := sb.String()

		for first := 0; first < len(text); {
			var tokenBegin, tokenEnd int
			var tokenColor style.PaletteIndex
			matched := false

			if c.lang.Tokenize != nil {
				tokenBegin, tokenEnd, tokenColor, matched = c.lang.Tokenize(text, first)
			}
			if !matched {
				tokenBegin, tokenEnd, tokenColor, matched = c.lang.matchPattern(text, first)
			}
			if !matched {
				first = starts[cellAt(starts, first)+1]
				continue
			}

			startCell := cellAt(starts, tokenBegin)
			endCell := cellAfter(starts, tokenEnd)

			if tokenColor == style.Identifier {
				id := c.lang.fold(text[tokenBegin:tokenEnd])
				if !line[startCell].Preprocessor {
					if c.lang.Keywords[id] {
						tokenColor = style.Keyword
					} else if _, ok := c.lang.Identifiers[id]; ok {
						tokenColor = style.KnownIdentifier
					} else if _, ok := c.lang.PreprocIdentifiers[id]; ok {
						tokenColor = style.PreprocIdentifier
					}
				} else if _, ok := c.lang.PreprocIdentifiers[id]; ok {
					tokenColor = style.PreprocIdentifier
				}
			}

			for j := startCell; j < endCell; j++ {
				line[j].Color = tokenColor
			}
			first = starts[endCell]
		}
	}
}

// cellAt returns the cell whose cluster contains byte offset b.
func cellAt(starts []int, b int) int {
	i := sort.SearchInts(starts, b)
	if i < len(starts) && starts[i] == b {
		return i
	}
	return i - 1
}

// cellAfter returns the first cell boundary at or past byte offset b.
func cellAfter(starts []int, b int) int {
	return sort.SearchInts(starts, b)
}

// clustersMatch reports whether the cells starting at index spell out
// token, one ASCII byte per cell.
func clustersMatch(line document.Line, index int, token string) bool {
	if index < 0 || index+len(token) > len(line) {
		return false
	}
	for i := 0; i < len(token); i++ {
		if line[index+i].Cluster != string(token[i]) {
			return false
		}
	}
	return true
}

// isSpaceCluster reports whether a cluster is a single ASCII
// whitespace byte.
func isSpaceCluster(cl string) bool {
	if len(cl) != 1 {
		return false
	}
	switch cl[0] {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
