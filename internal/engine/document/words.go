package document

import "github.com/dshills/textforge/internal/engine/coords"

// FindWordStart returns the coordinate at the start of the motion
// unit containing from. Runs of word clusters and runs of whitespace
// each form one unit; any other cluster only groups with identical
// neighbors.
func (d *Document) FindWordStart(from coords.Coordinate) coords.Coordinate {
	if from.Line >= len(d.lines) {
		return from
	}

	lineIndex := from.Line
	line := d.lines[lineIndex]
	charIndex := d.charIndexLeft(from)

	if charIndex > len(line) || len(line) == 0 {
		return from
	}
	if charIndex == len(line) {
		charIndex--
	}

	initial := line[charIndex].Cluster
	for {
		l, i, moved := d.MoveIndex(lineIndex, charIndex, true, true)
		if !moved {
			break
		}
		lineIndex, charIndex = l, i
		if !coords.SameWordClass(initial, line[charIndex].Cluster) {
			// one step back to the right
			lineIndex, charIndex, _ = d.MoveIndex(lineIndex, charIndex, false, true)
			break
		}
	}
	return coords.Coordinate{Line: from.Line, Column: d.charColumn(from.Line, charIndex)}
}

// FindWordEnd returns the coordinate just past the motion unit
// containing from.
func (d *Document) FindWordEnd(from coords.Coordinate) coords.Coordinate {
	if from.Line >= len(d.lines) {
		return from
	}

	lineIndex := from.Line
	line := d.lines[lineIndex]
	charIndex := d.charIndexLeft(from)

	if charIndex >= len(line) {
		return from
	}

	initial := line[charIndex].Cluster
	for {
		l, i, moved := d.MoveIndex(lineIndex, charIndex, false, true)
		if !moved {
			break
		}
		lineIndex, charIndex = l, i
		if charIndex == len(line) {
			break
		}
		if !coords.SameWordClass(initial, line[charIndex].Cluster) {
			break
		}
	}
	return coords.Coordinate{Line: lineIndex, Column: d.charColumn(from.Line, charIndex)}
}
