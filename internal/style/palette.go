// Package style defines palette indices assigned by the tokenizer and
// the color palettes used to resolve them.
package style

import (
	"github.com/lucasb-eyer/go-colorful"
)

// PaletteIndex identifies the color slot a glyph was classified into.
type PaletteIndex uint8

// Palette slots. The first block is assigned by tokenization, the rest
// are editor chrome colors a frontend may want.
const (
	Default PaletteIndex = iota
	Keyword
	Number
	String
	CharLiteral
	Punctuation
	Preprocessor
	Identifier
	KnownIdentifier
	PreprocIdentifier
	Comment
	MultiLineComment
	Background
	Cursor
	Selection
	ErrorMarker
	ControlCharacter
	Breakpoint
	LineNumber
	CurrentLineFill
	CurrentLineFillInactive
	CurrentLineEdge
	NumIndices
)

// Color is a packed 0xRRGGBBAA value.
type Color uint32

// Palette maps every palette index to a concrete color.
type Palette [NumIndices]Color

// rgb converts the color to a colorful.Color, dropping alpha.
func (c Color) rgb() colorful.Color {
	return colorful.Color{
		R: float64(c>>24&0xff) / 255,
		G: float64(c>>16&0xff) / 255,
		B: float64(c>>8&0xff) / 255,
	}
}

func (c Color) alpha() uint32 { return uint32(c) & 0xff }

func packRGB(c colorful.Color, alpha uint32) Color {
	r, g, b := c.Clamped().RGB255()
	return Color(uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | alpha&0xff)
}

// Blend mixes two colors halfway, channel by channel. Used for glyphs
// carrying the preprocessor tag on top of a token color.
func Blend(a, b Color) Color {
	mixed := a.rgb().BlendRgb(b.rgb(), 0.5)
	return packRGB(mixed, (a.alpha()+b.alpha())/2)
}
