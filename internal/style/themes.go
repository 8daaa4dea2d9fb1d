package style

// PaletteID selects one of the built-in palettes.
type PaletteID int

const (
	PaletteDark PaletteID = iota
	PaletteLight
	PaletteMariana
	PaletteRetroBlue
)

// ByID returns the built-in palette for the given id, defaulting to dark.
func ByID(id PaletteID) Palette {
	switch id {
	case PaletteLight:
		return Light()
	case PaletteMariana:
		return Mariana()
	case PaletteRetroBlue:
		return RetroBlue()
	default:
		return Dark()
	}
}

// IDByName resolves a palette name, case matching is exact and names
// are lowercase. It reports whether the name is known.
func IDByName(name string) (PaletteID, bool) {
	switch name {
	case "dark":
		return PaletteDark, true
	case "light":
		return PaletteLight, true
	case "mariana":
		return PaletteMariana, true
	case "retroblue":
		return PaletteRetroBlue, true
	}
	return PaletteDark, false
}

// Dark is the default palette.
func Dark() Palette {
	return Palette{
		0xe8eaefff, // Default
		0xe8a76aff, // Keyword
		0xe5b455ff, // Number
		0x6fcf8eff, // String
		0x6fcf8eff, // CharLiteral
		0xa8adb8ff, // Punctuation
		0xb794f6ff, // Preprocessor
		0xe8eaefff, // Identifier
		0x5ac8bdff, // KnownIdentifier
		0xe5b455ff, // PreprocIdentifier
		0x6b7280ff, // Comment
		0x6b7280ff, // MultiLineComment
		0x0d0e10ff, // Background
		0xe8eaefff, // Cursor
		0x5ac8bd40, // Selection
		0xe86b7380, // ErrorMarker
		0x8b919e25, // ControlCharacter
		0xe86b7340, // Breakpoint
		0x5d636fff, // LineNumber
		0xe8eaef08, // CurrentLineFill
		0xe8eaef04, // CurrentLineFillInactive
		0x5ac8bd18, // CurrentLineEdge
	}
}

// Mariana is an oceanic palette in the Sublime Text tradition.
func Mariana() Palette {
	return Palette{
		0xf8f8f2ff, // Default
		0xc792eaff, // Keyword
		0xf78c6cff, // Number
		0xaddb67ff, // String
		0xaddb67ff, // CharLiteral
		0x89ddffff, // Punctuation
		0x82aaffff, // Preprocessor
		0xf8f8f2ff, // Identifier
		0x80cbc4ff, // KnownIdentifier
		0xffcb6bff, // PreprocIdentifier
		0x637777ff, // Comment
		0x637777ff, // MultiLineComment
		0x263238ff, // Background
		0xf8f8f2ff, // Cursor
		0x54657060, // Selection
		0xff5370a0, // ErrorMarker
		0x54657040, // ControlCharacter
		0xff537050, // Breakpoint
		0x546570c0, // LineNumber
		0x54657020, // CurrentLineFill
		0x54657010, // CurrentLineFillInactive
		0x80cbc420, // CurrentLineEdge
	}
}

// Light is a white-background palette.
func Light() Palette {
	return Palette{
		0x404040ff, // Default
		0x060cffff, // Keyword
		0x008000ff, // Number
		0xa02020ff, // String
		0x704030ff, // CharLiteral
		0x000000ff, // Punctuation
		0x606040ff, // Preprocessor
		0x404040ff, // Identifier
		0x106060ff, // KnownIdentifier
		0xa040c0ff, // PreprocIdentifier
		0x205020ff, // Comment
		0x205040ff, // MultiLineComment
		0xffffffff, // Background
		0x000000ff, // Cursor
		0x00006040, // Selection
		0xff1000a0, // ErrorMarker
		0x90909090, // ControlCharacter
		0x0080f080, // Breakpoint
		0x005050ff, // LineNumber
		0x00000040, // CurrentLineFill
		0x80808040, // CurrentLineFillInactive
		0x00000040, // CurrentLineEdge
	}
}

// RetroBlue is a DOS-era blue palette.
func RetroBlue() Palette {
	return Palette{
		0xffff00ff, // Default
		0x00ffffff, // Keyword
		0x00ff00ff, // Number
		0x008080ff, // String
		0x008080ff, // CharLiteral
		0xffffffff, // Punctuation
		0x008000ff, // Preprocessor
		0xffff00ff, // Identifier
		0xffffffff, // KnownIdentifier
		0xff00ffff, // PreprocIdentifier
		0x808080ff, // Comment
		0x404040ff, // MultiLineComment
		0x000080ff, // Background
		0xff8000ff, // Cursor
		0x00ffff80, // Selection
		0xff0000a0, // ErrorMarker
		0x40404080, // ControlCharacter
		0x0080ff80, // Breakpoint
		0x008080ff, // LineNumber
		0x00000040, // CurrentLineFill
		0x80808040, // CurrentLineFillInactive
		0x00000040, // CurrentLineEdge
	}
}
