package document

import "github.com/dshills/textforge/internal/engine/coords"

// Observer receives structural and in-line change notifications.
// The cursor tracker uses them to keep positions valid across edits;
// caches use them to invalidate.
//
// OnLineChanged fires twice per splice: once with before=true while
// the line still has its old content, and once with before=false after
// the splice. Implementations capture affected positions in the first
// call and reposition them in the second, because column arithmetic
// needs the line content of the matching phase.
type Observer interface {
	// OnLineInserted fires after an empty line was inserted at index.
	OnLineInserted(index int)

	// OnLineRemoved fires after the line at index was removed.
	// handled lists cursor indices the caller already repositioned.
	OnLineRemoved(index int, handled map[int]bool)

	// OnLinesRemoved fires after lines [first, last) were removed.
	OnLinesRemoved(first, last int)

	// OnLinesMerged fires while deleting the multi-line range
	// [start, end): the trailing line's remainder has just been
	// appended to start.Line, and the interior lines are still
	// present. Trackers re-home positions that lived on end.Line.
	OnLinesMerged(start, end coords.Coordinate)

	// OnLineChanged fires before and after a single-line splice at
	// (line, column) covering count cells. deleted distinguishes
	// erase from insert.
	OnLineChanged(before bool, line, column, count int, deleted bool)
}
