// Package coords implements the display-coordinate model shared by the
// rest of the engine. A Coordinate addresses a line and a display
// column, not a storage index; tabs occupy several columns, everything
// else occupies one. Conversion between cell indices and columns is
// the single source of truth for that mapping.
package coords

// Coordinate is a display position: a line index and a display column.
// Columns count tab expansion, so a coordinate does not map 1:1 onto
// storage indices. The zero value addresses the start of the document.
type Coordinate struct {
	Line   int
	Column int
}

// Before reports whether c orders strictly before other.
func (c Coordinate) Before(other Coordinate) bool {
	if c.Line != other.Line {
		return c.Line < other.Line
	}
	return c.Column < other.Column
}

// After reports whether c orders strictly after other.
func (c Coordinate) After(other Coordinate) bool {
	return other.Before(c)
}

// Min returns the earlier of the two coordinates.
func Min(a, b Coordinate) Coordinate {
	if b.Before(a) {
		return b
	}
	return a
}

// Max returns the later of the two coordinates.
func Max(a, b Coordinate) Coordinate {
	if a.Before(b) {
		return b
	}
	return a
}

// Lean selects which side of a tab glyph wins when a display column
// falls strictly inside the tab's span.
type Lean int

const (
	// LeanLeft resolves to the cell index of the tab itself.
	LeanLeft Lean = iota
	// LeanRight resolves to the cell index just past the tab.
	LeanRight
)

// CellSeq is a line's worth of display cells. Each cell holds one
// grapheme cluster.
type CellSeq interface {
	Len() int
	Cluster(i int) string
}

// NextTabStop returns the display column following a tab that starts
// at column.
func NextTabStop(column, tabSize int) int {
	return (column/tabSize)*tabSize + tabSize
}

// Advance steps one cell forward, returning the next cell index and
// display column. A tab jumps to the next tab stop, any other cluster
// advances one column.
func Advance(cells CellSeq, index, column, tabSize int) (int, int) {
	if cells.Cluster(index) == "\t" {
		column = NextTabStop(column, tabSize)
	} else {
		column++
	}
	return index + 1, column
}

// ColumnOf returns the display column of the given cell index.
// Indices past the end of the line resolve to the line's max column.
func ColumnOf(cells CellSeq, index, tabSize int) int {
	col := 0
	for i := 0; i < index && i < cells.Len(); {
		i, col = Advance(cells, i, col, tabSize)
	}
	return col
}

// IndexFromColumn returns the cell index for a display column. When
// the column falls inside a tab's span, lean decides which edge wins.
// Columns at or past the end of the line clamp to cells.Len().
func IndexFromColumn(cells CellSeq, column, tabSize int, lean Lean) int {
	if cells.Len() == 0 || column <= 0 {
		return 0
	}
	col := 0
	index := 0
	for index < cells.Len() && col < column {
		prev := index
		index, col = Advance(cells, index, col, tabSize)
		if col > column {
			if lean == LeanLeft {
				return prev
			}
			return index
		}
	}
	return index
}

// MaxColumn returns the display width of the line.
func MaxColumn(cells CellSeq, tabSize int) int {
	col := 0
	for i := 0; i < cells.Len(); {
		i, col = Advance(cells, i, col, tabSize)
	}
	return col
}

// MaxColumnLimited is MaxColumn with an early out: once the width
// exceeds limit, limit is returned. A limit of -1 means unlimited.
func MaxColumnLimited(cells CellSeq, tabSize, limit int) int {
	if limit == -1 {
		return MaxColumn(cells, tabSize)
	}
	col := 0
	for i := 0; i < cells.Len(); {
		i, col = Advance(cells, i, col, tabSize)
		if col > limit {
			return limit
		}
	}
	return col
}
