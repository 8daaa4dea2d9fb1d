package document

import (
	"strings"

	"github.com/rivo/uniseg"

	"github.com/dshills/textforge/internal/style"
)

// Glyph is one display cell: a grapheme cluster plus the classification
// the colorizer assigned to it. Freshly inserted glyphs carry no tags;
// the colorizer reclassifies the affected lines afterwards.
type Glyph struct {
	Cluster string
	Color   style.PaletteIndex

	// Classification bits written by the comment scanner.
	Comment          bool
	MultilineComment bool
	Preprocessor     bool

	// Style bits written by the semantic token overlay.
	Italic        bool
	Bold          bool
	Underline     bool
	Strikethrough bool
}

// NewGlyph returns a glyph for one cluster with a palette index.
func NewGlyph(cluster string, color style.PaletteIndex) Glyph {
	return Glyph{Cluster: cluster, Color: color}
}

// Line is one document line as a sequence of glyphs.
type Line []Glyph

// Len returns the number of cells on the line.
func (l Line) Len() int { return len(l) }

// Cluster returns the grapheme cluster of cell i.
func (l Line) Cluster(i int) string { return l[i].Cluster }

// Text reassembles the line's source text.
func (l Line) Text() string {
	var sb strings.Builder
	for _, g := range l {
		sb.WriteString(g.Cluster)
	}
	return sb.String()
}

// splitClusters segments source text into one glyph per grapheme
// cluster, all with the default palette index. The text must not
// contain line breaks.
func splitClusters(text string) Line {
	line := make(Line, 0, len(text))
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		line = append(line, Glyph{Cluster: gr.Str()})
	}
	return line
}
