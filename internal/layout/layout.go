// Package layout maps document lines onto visual rows. Word wrap
// splits long lines into several rows, hidden ranges (code folding)
// drop rows, and ghost lines inject host-owned rows (inline
// diagnostics, diff context) that are not part of the document text.
package layout

import (
	"sort"

	"github.com/google/uuid"

	"github.com/dshills/textforge/internal/engine/coords"
	"github.com/dshills/textforge/internal/engine/document"
	"github.com/dshills/textforge/internal/style"
)

// VisualLine is one rendered row. A document row covers the column
// span [StartColumn, EndColumn) of its line; a ghost row points into
// the ghost line list instead.
type VisualLine struct {
	DocumentLine int
	StartColumn  int
	EndColumn    int
	Ghost        bool
	GhostIndex   int
}

// GhostLine is a host-injected row anchored above a document line. An
// anchor equal to the line count places it after the last line. A zero
// color means "use the palette default". LineNumber is what the gutter
// shows; zero hides it.
type GhostLine struct {
	ID         uuid.UUID
	AnchorLine int
	LineNumber int
	Text       string

	TextColor       style.Color
	BackgroundColor style.Color
	MarkerColor     style.Color
	SeparatorColor  style.Color
}

// LineRange is an inclusive span of document lines.
type LineRange struct {
	StartLine int
	EndLine   int
}

// Engine computes and caches the visual line table for one document.
// The cache invalidates on any document edit, option change, or ghost
// or hidden range update. Not safe for concurrent use, same as the
// editor that owns it.
type Engine struct {
	doc *document.Document

	wrapEnabled bool
	wrapColumn  int

	ghosts    []GhostLine
	ghostRev  uint64
	hidden    []LineRange
	hiddenRev uint64

	visual     []VisualLine
	docToVis   []int
	cacheKey   cacheKey
	cacheKeyOK bool
}

type cacheKey struct {
	lineCount   int
	contentRev  uint64
	ghostRev    uint64
	hiddenRev   uint64
	wrapEnabled bool
	wrapColumn  int
	tabSize     int
}

// NewEngine returns a layout engine over doc with word wrap off.
func NewEngine(doc *document.Document) *Engine {
	return &Engine{doc: doc}
}

// SetWordWrap enables or disables wrapping at the given display
// column. A column below 1 is clamped to 1 when wrapping is on.
func (e *Engine) SetWordWrap(enabled bool, column int) {
	e.wrapEnabled = enabled
	e.wrapColumn = column
}

// WordWrap returns the current wrap setting.
func (e *Engine) WordWrap() (bool, int) { return e.wrapEnabled, e.wrapColumn }

// SetGhostLines replaces the ghost line list. Ghosts without an ID get
// one assigned so hosts can correlate rows across relayouts.
func (e *Engine) SetGhostLines(lines []GhostLine) {
	e.ghosts = make([]GhostLine, len(lines))
	copy(e.ghosts, lines)
	for i := range e.ghosts {
		if e.ghosts[i].ID == uuid.Nil {
			e.ghosts[i].ID = uuid.New()
		}
	}
	e.ghostRev++
}

// GhostLines returns the installed ghost lines.
func (e *Engine) GhostLines() []GhostLine { return e.ghosts }

// ClearGhostLines removes every ghost line.
func (e *Engine) ClearGhostLines() {
	if len(e.ghosts) > 0 {
		e.ghosts = nil
		e.ghostRev++
	}
}

// SetHiddenLineRanges replaces the hidden (folded) ranges. Ranges are
// normalized, sorted, and merged when they touch or overlap.
func (e *Engine) SetHiddenLineRanges(ranges []LineRange) {
	if len(ranges) == 0 {
		e.ClearHiddenLineRanges()
		return
	}

	normalized := make([]LineRange, len(ranges))
	copy(normalized, ranges)
	for i := range normalized {
		if normalized[i].StartLine > normalized[i].EndLine {
			normalized[i].StartLine, normalized[i].EndLine = normalized[i].EndLine, normalized[i].StartLine
		}
	}
	sort.Slice(normalized, func(i, j int) bool {
		return normalized[i].StartLine < normalized[j].StartLine
	})

	merged := normalized[:0]
	for _, r := range normalized {
		if len(merged) == 0 {
			merged = append(merged, r)
			continue
		}
		last := &merged[len(merged)-1]
		if r.StartLine <= last.EndLine+1 {
			last.EndLine = max(last.EndLine, r.EndLine)
		} else {
			merged = append(merged, r)
		}
	}

	e.hidden = merged
	e.hiddenRev++
}

// HiddenLineRanges returns the merged hidden ranges.
func (e *Engine) HiddenLineRanges() []LineRange { return e.hidden }

// ClearHiddenLineRanges unhides everything.
func (e *Engine) ClearHiddenLineRanges() {
	if len(e.hidden) > 0 {
		e.hidden = nil
		e.hiddenRev++
	}
}

// ensure rebuilds the visual line table when anything it depends on
// changed since the last build.
func (e *Engine) ensure() {
	lineCount := e.doc.LineCount()
	effectiveWrap := 0
	if e.wrapEnabled {
		effectiveWrap = max(1, e.wrapColumn)
	}
	key := cacheKey{
		lineCount:   lineCount,
		contentRev:  e.doc.Revision(),
		ghostRev:    e.ghostRev,
		hiddenRev:   e.hiddenRev,
		wrapEnabled: e.wrapEnabled,
		wrapColumn:  effectiveWrap,
		tabSize:     e.doc.TabSize(),
	}
	if e.cacheKeyOK && key == e.cacheKey {
		return
	}

	e.visual = e.visual[:0]
	e.docToVis = make([]int, lineCount)
	for i := range e.docToVis {
		e.docToVis[i] = -1
	}

	ghostBuckets := make([][]int, lineCount+1)
	for i, g := range e.ghosts {
		anchor := min(max(g.AnchorLine, 0), lineCount)
		ghostBuckets[anchor] = append(ghostBuckets[anchor], i)
	}

	appendRow := func(docLine, startColumn, endColumn int) {
		if docLine < 0 || docLine >= lineCount {
			return
		}
		if e.docToVis[docLine] < 0 {
			e.docToVis[docLine] = len(e.visual)
		}
		startColumn = max(0, startColumn)
		e.visual = append(e.visual, VisualLine{
			DocumentLine: docLine,
			StartColumn:  startColumn,
			EndColumn:    max(startColumn, endColumn),
		})
	}

	hiddenIndex := 0
	for docLine := 0; docLine < lineCount; docLine++ {
		for _, gi := range ghostBuckets[docLine] {
			e.visual = append(e.visual, VisualLine{Ghost: true, GhostIndex: gi})
		}

		for hiddenIndex < len(e.hidden) && e.hidden[hiddenIndex].EndLine < docLine {
			hiddenIndex++
		}
		if hiddenIndex < len(e.hidden) &&
			docLine >= e.hidden[hiddenIndex].StartLine &&
			docLine <= e.hidden[hiddenIndex].EndLine {
			continue
		}

		if e.wrapEnabled {
			e.appendWrapped(docLine, effectiveWrap, appendRow)
		} else {
			appendRow(docLine, 0, e.doc.MaxColumn(docLine))
		}
	}

	for _, gi := range ghostBuckets[lineCount] {
		e.visual = append(e.visual, VisualLine{Ghost: true, GhostIndex: gi})
	}

	e.cacheKey = key
	e.cacheKeyOK = true
}

// appendWrapped splits one document line into wrap segments, breaking
// after the last whitespace cell that fits and falling back to a hard
// break so no segment is ever empty.
func (e *Engine) appendWrapped(docLine, wrapColumn int, appendRow func(docLine, startColumn, endColumn int)) {
	lineMaxColumn := e.doc.MaxColumn(docLine)
	if lineMaxColumn <= wrapColumn || wrapColumn <= 0 {
		appendRow(docLine, 0, lineMaxColumn)
		return
	}

	line := e.doc.Line(docLine)
	tabSize := e.doc.TabSize()

	segmentStartIndex := 0
	segmentStartColumn := 0
	charIndex := 0
	column := 0
	lastBreakIndex := -1
	lastBreakColumn := -1

	for charIndex < len(line) {
		glyphIndex := charIndex
		glyphColumnStart := column
		charIndex, column = coords.Advance(line, charIndex, column, tabSize)

		if isBreakable(line[glyphIndex].Cluster) {
			lastBreakIndex = charIndex
			lastBreakColumn = column
		}

		if column-segmentStartColumn <= wrapColumn {
			continue
		}

		breakIndex := charIndex
		breakColumn := column
		if lastBreakIndex > segmentStartIndex && lastBreakColumn > segmentStartColumn {
			breakIndex = lastBreakIndex
			breakColumn = lastBreakColumn
		} else if glyphColumnStart > segmentStartColumn {
			breakIndex = glyphIndex
			breakColumn = glyphColumnStart
		}
		if breakIndex <= segmentStartIndex || breakColumn <= segmentStartColumn {
			breakIndex = charIndex
			breakColumn = column
		}

		appendRow(docLine, segmentStartColumn, breakColumn)

		segmentStartIndex = breakIndex
		segmentStartColumn = breakColumn
		charIndex = breakIndex
		column = breakColumn
		lastBreakIndex = -1
		lastBreakColumn = -1
	}

	if lineMaxColumn == 0 || segmentStartColumn < lineMaxColumn {
		appendRow(docLine, segmentStartColumn, lineMaxColumn)
	}
}

func isBreakable(cl string) bool {
	return cl == " " || cl == "\t"
}

// VisualLineCount returns the number of rendered rows.
func (e *Engine) VisualLineCount() int {
	e.ensure()
	return len(e.visual)
}

// VisualLines returns the full row table. The slice is owned by the
// engine and valid until the next relayout.
func (e *Engine) VisualLines() []VisualLine {
	e.ensure()
	return e.visual
}

// VisualLineForDocumentLine returns the first row showing the given
// document line. Hidden lines resolve to the nearest visible neighbor,
// preferring the one below.
func (e *Engine) VisualLineForDocumentLine(line int) int {
	e.ensure()
	lineCount := e.doc.LineCount()
	if lineCount <= 0 || line < 0 {
		return 0
	}
	if line >= lineCount {
		return max(len(e.visual), 1) - 1
	}
	if mapped := e.docToVis[line]; mapped >= 0 {
		return mapped
	}
	for l := line + 1; l < lineCount; l++ {
		if next := e.docToVis[l]; next >= 0 {
			return next
		}
	}
	for l := line - 1; l >= 0; l-- {
		if prev := e.docToVis[l]; prev >= 0 {
			return prev
		}
	}
	return 0
}

// VisualLineForCoordinates returns the row containing a coordinate,
// resolving wrap segments by column.
func (e *Engine) VisualLineForCoordinates(c coords.Coordinate) int {
	e.ensure()
	c = e.doc.Sanitize(c)
	visual := e.VisualLineForDocumentLine(c.Line)
	if !e.wrapEnabled {
		return visual
	}
	if visual < 0 || visual >= len(e.visual) {
		return visual
	}

	best := visual
	for i := visual; i < len(e.visual); i++ {
		entry := e.visual[i]
		if entry.Ghost || entry.DocumentLine != c.Line {
			break
		}
		best = i
		if c.Column < entry.EndColumn {
			return i
		}
	}
	return best
}

// DocumentLineForVisualLine returns the document line a row shows.
// Ghost rows resolve to their anchor line.
func (e *Engine) DocumentLineForVisualLine(row int) int {
	e.ensure()
	lineCount := e.doc.LineCount()
	if lineCount <= 0 {
		return 0
	}
	if len(e.visual) == 0 {
		return min(max(row, 0), lineCount-1)
	}

	row = min(max(row, 0), len(e.visual)-1)
	entry := e.visual[row]
	if !entry.Ghost {
		return min(max(entry.DocumentLine, 0), lineCount-1)
	}
	if entry.GhostIndex < 0 || entry.GhostIndex >= len(e.ghosts) {
		return 0
	}
	anchor := max(e.ghosts[entry.GhostIndex].AnchorLine, 0)
	return min(anchor, lineCount-1)
}

// VisualLineStartColumn returns the first display column of a row, 0
// for ghost rows and bad indices.
func (e *Engine) VisualLineStartColumn(row int) int {
	e.ensure()
	if row < 0 || row >= len(e.visual) {
		return 0
	}
	entry := e.visual[row]
	if entry.Ghost || entry.DocumentLine < 0 || entry.DocumentLine >= e.doc.LineCount() {
		return 0
	}
	return max(0, entry.StartColumn)
}

// VisualLineEndColumn returns the display column a row ends at,
// clamped to the line's width.
func (e *Engine) VisualLineEndColumn(row int) int {
	e.ensure()
	if row < 0 || row >= len(e.visual) {
		return 0
	}
	entry := e.visual[row]
	if entry.Ghost || entry.DocumentLine < 0 || entry.DocumentLine >= e.doc.LineCount() {
		return 0
	}
	lineMaxColumn := e.doc.MaxColumn(entry.DocumentLine)
	return min(lineMaxColumn, max(entry.StartColumn, entry.EndColumn))
}

// GhostLineForVisualLine returns the ghost line a row shows, nil for
// document rows.
func (e *Engine) GhostLineForVisualLine(row int) *GhostLine {
	e.ensure()
	if row < 0 || row >= len(e.visual) {
		return nil
	}
	entry := e.visual[row]
	if !entry.Ghost || entry.GhostIndex < 0 || entry.GhostIndex >= len(e.ghosts) {
		return nil
	}
	return &e.ghosts[entry.GhostIndex]
}

// MaxLineNumber returns the largest gutter number any row can show,
// counting ghost line numbers past the document end.
func (e *Engine) MaxLineNumber() int {
	maxLine := e.doc.LineCount()
	for _, g := range e.ghosts {
		if g.LineNumber > maxLine {
			maxLine = g.LineNumber
		}
	}
	return maxLine
}
