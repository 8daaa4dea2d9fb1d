package document

import (
	"github.com/rivo/uniseg"

	"github.com/dshills/textforge/internal/engine/coords"
)

func (d *Document) notifyLineInserted(index int) {
	for _, o := range d.observers {
		o.OnLineInserted(index)
	}
}

func (d *Document) notifyLineRemoved(index int, handled map[int]bool) {
	for _, o := range d.observers {
		o.OnLineRemoved(index, handled)
	}
}

func (d *Document) notifyLinesRemoved(first, last int) {
	for _, o := range d.observers {
		o.OnLinesRemoved(first, last)
	}
}

func (d *Document) notifyLinesMerged(start, end coords.Coordinate) {
	for _, o := range d.observers {
		o.OnLinesMerged(start, end)
	}
}

func (d *Document) notifyLineChanged(before bool, line, column, count int, deleted bool) {
	for _, o := range d.observers {
		o.OnLineChanged(before, line, column, count, deleted)
	}
}

// AddGlyph splices one glyph into a line at a cell index.
func (d *Document) AddGlyph(line, index int, g Glyph) {
	column := d.charColumn(line, index)
	d.notifyLineChanged(true, line, column, 1, false)
	l := d.lines[line]
	l = append(l, Glyph{})
	copy(l[index+1:], l[index:])
	l[index] = g
	d.lines[line] = l
	d.notifyLineChanged(false, line, column, 1, false)
	d.contentRev.Add(1)
}

// AddGlyphs splices a run of glyphs into a line at a cell index.
func (d *Document) AddGlyphs(line, index int, glyphs []Glyph) {
	if len(glyphs) == 0 {
		return
	}
	column := d.charColumn(line, index)
	d.notifyLineChanged(true, line, column, len(glyphs), false)
	l := d.lines[line]
	out := make(Line, 0, len(l)+len(glyphs))
	out = append(out, l[:index]...)
	out = append(out, glyphs...)
	out = append(out, l[index:]...)
	d.lines[line] = out
	d.notifyLineChanged(false, line, column, len(glyphs), false)
	d.contentRev.Add(1)
}

// RemoveGlyphs erases cells [first, last) from a line. A last of -1
// erases through the end of the line.
func (d *Document) RemoveGlyphs(line, first, last int) {
	l := d.lines[line]
	if last == -1 {
		last = len(l)
	}
	column := d.charColumn(line, first)
	d.notifyLineChanged(true, line, column, last-first, true)
	d.lines[line] = append(l[:first], l[last:]...)
	d.notifyLineChanged(false, line, column, last-first, true)
	d.contentRev.Add(1)
}

// InsertLine inserts an empty line at index and notifies observers so
// tracked positions at or below shift down.
func (d *Document) InsertLine(index int) {
	d.lines = append(d.lines, nil)
	copy(d.lines[index+1:], d.lines[index:])
	d.lines[index] = Line{}
	d.contentRev.Add(1)
	d.structureRev.Add(1)
	d.notifyLineInserted(index)
}

// RemoveLine removes the line at index. handled lists cursor indices
// the caller already repositioned; observers leave those alone.
// The document never drops its last line.
func (d *Document) RemoveLine(index int, handled map[int]bool) {
	if len(d.lines) <= 1 {
		return
	}
	d.lines = append(d.lines[:index], d.lines[index+1:]...)
	d.contentRev.Add(1)
	d.structureRev.Add(1)
	d.notifyLineRemoved(index, handled)
}

// RemoveLines removes lines [first, last).
func (d *Document) RemoveLines(first, last int) {
	if last <= first {
		return
	}
	if last-first >= len(d.lines) {
		last = first + len(d.lines) - 1
	}
	d.lines = append(d.lines[:first], d.lines[last:]...)
	d.contentRev.Add(1)
	d.structureRev.Add(1)
	d.notifyLinesRemoved(first, last)
}

// SwapLines exchanges two lines in place. Callers adjust tracked
// positions themselves; no notifications fire.
func (d *Document) SwapLines(a, b int) {
	d.lines[a], d.lines[b] = d.lines[b], d.lines[a]
	d.contentRev.Add(1)
}

// InsertTextAt splices text at a coordinate. Lone carriage returns are
// dropped; \n and \r\n split the line, moving the tail to the new
// line. It returns the coordinate just past the insertion and the
// number of line breaks inserted.
func (d *Document) InsertTextAt(where coords.Coordinate, text string) (coords.Coordinate, int) {
	cindex := d.charIndexRight(where)
	totalLines := 0
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		cl := gr.Str()
		switch cl {
		case "\r":
			// skip
		case "\n", "\r\n":
			if cindex < len(d.lines[where.Line]) {
				tail := append(Line(nil), d.lines[where.Line][cindex:]...)
				d.InsertLine(where.Line + 1)
				d.AddGlyphs(where.Line+1, 0, tail)
				d.RemoveGlyphs(where.Line, cindex, -1)
			} else {
				d.InsertLine(where.Line + 1)
			}
			where.Line++
			where.Column = 0
			cindex = 0
			totalLines++
		default:
			d.AddGlyph(where.Line, cindex, Glyph{Cluster: cl})
			cindex++
			where.Column = d.charColumn(where.Line, cindex)
		}
	}
	return where, totalLines
}

// DeleteRange erases [start, end). A multi-line delete trims the first
// line's tail and the last line's head, appends the last line's
// remainder to the first line, lets trackers re-home positions from
// the absorbed line, then drops the interior lines.
func (d *Document) DeleteRange(start, end coords.Coordinate) {
	if start == end {
		return
	}

	first := d.charIndexLeft(start)
	last := d.charIndexRight(end)

	if start.Line == end.Line {
		if end.Column >= d.maxColumn(start.Line) {
			d.RemoveGlyphs(start.Line, first, -1)
		} else {
			d.RemoveGlyphs(start.Line, first, last)
		}
		return
	}

	d.RemoveGlyphs(start.Line, first, -1)
	d.RemoveGlyphs(end.Line, 0, last)
	if start.Line < end.Line {
		remainder := append(Line(nil), d.lines[end.Line]...)
		d.AddGlyphs(start.Line, len(d.lines[start.Line]), remainder)
		d.notifyLinesMerged(start, end)
		d.RemoveLines(start.Line+1, end.Line+1)
	}
}
