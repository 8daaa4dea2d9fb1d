// Package document stores text as lines of glyphs and provides the
// coordinate-aware primitives every higher layer builds on. A line is
// identified by its index; structural edits shift the identity of all
// following lines, which is why mutations notify registered observers.
package document

import (
	"errors"
	"strings"
	"sync/atomic"

	"github.com/dshills/textforge/internal/engine/coords"
)

// Errors returned by document operations.
var (
	// ErrOutOfBounds indicates a line index outside the document.
	ErrOutOfBounds = errors.New("line index out of bounds")

	// ErrInvalidRange indicates a range whose end precedes its start.
	ErrInvalidRange = errors.New("invalid range")
)

// Document is the line buffer. It always contains at least one line;
// an empty document is a single empty line.
type Document struct {
	lines   []Line
	tabSize int

	// contentRev bumps on every glyph splice and structural change.
	// structureRev bumps only when lines are added or removed.
	contentRev   atomic.Uint64
	structureRev atomic.Uint64

	observers []Observer
}

// New returns an empty document with the given tab size.
func New(tabSize int) *Document {
	if tabSize < 1 {
		tabSize = 4
	}
	return &Document{
		lines:   []Line{{}},
		tabSize: tabSize,
	}
}

// Observe registers an observer for change notifications.
func (d *Document) Observe(o Observer) {
	d.observers = append(d.observers, o)
}

// TabSize returns the tab size used for column arithmetic.
func (d *Document) TabSize() int { return d.tabSize }

// SetTabSize changes the tab size. Columns derived earlier are stale
// after this call.
func (d *Document) SetTabSize(n int) {
	if n >= 1 && n <= 64 && n != d.tabSize {
		d.tabSize = n
		d.contentRev.Add(1)
	}
}

// Revision returns the content revision, bumped on every change.
func (d *Document) Revision() uint64 { return d.contentRev.Load() }

// StructureRevision returns the revision of the line structure.
func (d *Document) StructureRevision() uint64 { return d.structureRev.Load() }

// LineCount returns the number of lines, always at least 1.
func (d *Document) LineCount() int { return len(d.lines) }

// Line returns the glyphs of line i. The slice aliases internal
// storage; callers must not grow or shrink it. The colorizer rewrites
// style fields in place through this alias.
func (d *Document) Line(i int) Line {
	if i < 0 || i >= len(d.lines) {
		return nil
	}
	return d.lines[i]
}

// LineLen returns the number of cells on line i, 0 for bad indices.
func (d *Document) LineLen(i int) int {
	if i < 0 || i >= len(d.lines) {
		return 0
	}
	return len(d.lines[i])
}

// LineText returns the source text of line i.
func (d *Document) LineText(i int) string {
	if i < 0 || i >= len(d.lines) {
		return ""
	}
	return d.lines[i].Text()
}

// Text returns the whole document joined with \n.
func (d *Document) Text() string {
	var sb strings.Builder
	for i, line := range d.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(line.Text())
	}
	return sb.String()
}

// TextLines returns every line's text.
func (d *Document) TextLines() []string {
	out := make([]string, len(d.lines))
	for i, line := range d.lines {
		out[i] = line.Text()
	}
	return out
}

// TextInRange returns the text between two coordinates, newline
// separated. The range is sanitized first.
func (d *Document) TextInRange(start, end coords.Coordinate) string {
	start = d.Sanitize(start)
	end = d.Sanitize(end)
	if !start.Before(end) {
		return ""
	}
	var sb strings.Builder
	for line := start.Line; line <= end.Line && line < len(d.lines); line++ {
		first := 0
		last := len(d.lines[line])
		if line == start.Line {
			first = d.charIndexRight(start)
		}
		if line == end.Line {
			last = d.charIndexRight(end)
		}
		for i := first; i < last; i++ {
			sb.WriteString(d.lines[line][i].Cluster)
		}
		if line < end.Line {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// SetText replaces the whole document. Tags are reset; the colorizer
// owns reclassification.
func (d *Document) SetText(text string) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	parts := strings.Split(text, "\n")
	d.lines = make([]Line, len(parts))
	for i, p := range parts {
		d.lines[i] = splitClusters(p)
	}
	if len(d.lines) == 0 {
		d.lines = []Line{{}}
	}
	d.contentRev.Add(1)
	d.structureRev.Add(1)
}

// EndCoordinate returns the coordinate just past the last cell of the
// last line.
func (d *Document) EndCoordinate() coords.Coordinate {
	last := len(d.lines) - 1
	return coords.Coordinate{Line: last, Column: d.maxColumn(last)}
}

// --- Coordinate bridging ---

// CharacterColumn returns the display column of a cell index on a
// line, or ErrOutOfBounds for a bad line index.
func (d *Document) CharacterColumn(line, index int) (int, error) {
	if line < 0 || line >= len(d.lines) {
		return 0, ErrOutOfBounds
	}
	return d.charColumn(line, index), nil
}

// CharacterIndex returns the cell index for a coordinate, or
// ErrOutOfBounds for a bad line index.
func (d *Document) CharacterIndex(c coords.Coordinate, lean coords.Lean) (int, error) {
	if c.Line < 0 || c.Line >= len(d.lines) {
		return 0, ErrOutOfBounds
	}
	return coords.IndexFromColumn(d.lines[c.Line], c.Column, d.tabSize, lean), nil
}

// LineMaxColumn returns the display width of a line, or
// ErrOutOfBounds for a bad line index.
func (d *Document) LineMaxColumn(line int) (int, error) {
	if line < 0 || line >= len(d.lines) {
		return 0, ErrOutOfBounds
	}
	return d.maxColumn(line), nil
}

// Unchecked internal variants clamp like the callers expect.

func (d *Document) charColumn(line, index int) int {
	if line < 0 || line >= len(d.lines) {
		return 0
	}
	return coords.ColumnOf(d.lines[line], index, d.tabSize)
}

func (d *Document) charIndexLeft(c coords.Coordinate) int {
	if c.Line < 0 || c.Line >= len(d.lines) {
		return -1
	}
	return coords.IndexFromColumn(d.lines[c.Line], c.Column, d.tabSize, coords.LeanLeft)
}

func (d *Document) charIndexRight(c coords.Coordinate) int {
	if c.Line < 0 || c.Line >= len(d.lines) {
		return -1
	}
	return coords.IndexFromColumn(d.lines[c.Line], c.Column, d.tabSize, coords.LeanRight)
}

func (d *Document) maxColumn(line int) int {
	if line < 0 || line >= len(d.lines) {
		return 0
	}
	return coords.MaxColumn(d.lines[line], d.tabSize)
}

func (d *Document) maxColumnLimited(line, limit int) int {
	if line < 0 || line >= len(d.lines) {
		return 0
	}
	return coords.MaxColumnLimited(d.lines[line], d.tabSize, limit)
}

// CharIndexLeft is the exported clamping variant of the left-leaning
// coordinate-to-index conversion.
func (d *Document) CharIndexLeft(c coords.Coordinate) int { return d.charIndexLeft(c) }

// CharIndexRight is the exported clamping variant of the
// right-leaning conversion.
func (d *Document) CharIndexRight(c coords.Coordinate) int { return d.charIndexRight(c) }

// CharColumn is the exported clamping variant of charColumn.
func (d *Document) CharColumn(line, index int) int { return d.charColumn(line, index) }

// MaxColumn is the exported clamping variant of maxColumn.
func (d *Document) MaxColumn(line int) int { return d.maxColumn(line) }

// Sanitize clamps a coordinate into the document and, when the column
// lands strictly inside a tab's span, snaps it to the nearer edge.
func (d *Document) Sanitize(value coords.Coordinate) coords.Coordinate {
	line := max(value.Line, 0)
	column := max(value.Column, 0)
	var out coords.Coordinate
	if line >= len(d.lines) {
		line = len(d.lines) - 1
		out = coords.Coordinate{Line: line, Column: d.maxColumn(line)}
	} else {
		out = coords.Coordinate{Line: line, Column: d.maxColumnLimited(line, column)}
	}

	charIndex := d.charIndexLeft(out)
	if charIndex > -1 && charIndex < len(d.lines[out.Line]) && d.lines[out.Line][charIndex].Cluster == "\t" {
		columnToLeft := d.charColumn(out.Line, charIndex)
		columnToRight := d.charColumn(out.Line, d.charIndexRight(out))
		if out.Column-columnToLeft <= columnToRight-out.Column {
			out.Column = columnToLeft
		} else {
			out.Column = columnToRight
		}
	}
	return out
}

// MoveIndex steps a (line, cell index) position one cell left or
// right, crossing line boundaries unless lockLine is set. It reports
// whether the position moved.
func (d *Document) MoveIndex(line, index int, left, lockLine bool) (int, int, bool) {
	if line >= len(d.lines) {
		return line, index, false
	}
	if left {
		if index == 0 {
			if lockLine || line == 0 {
				return line, index, false
			}
			line--
			index = len(d.lines[line])
		} else {
			index--
		}
	} else {
		if index == len(d.lines[line]) {
			if lockLine || line == len(d.lines)-1 {
				return line, index, false
			}
			line++
			index = 0
		} else {
			index++
		}
	}
	return line, index, true
}
