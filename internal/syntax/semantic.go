package syntax

import (
	"errors"
	"slices"

	"github.com/tidwall/gjson"

	"github.com/dshills/textforge/internal/style"
)

// SemanticToken is one host-provided token classification, typically
// relayed from a language server. Positions are cell-based.
type SemanticToken struct {
	Line      int
	StartChar int
	Length    int
	Type      string
	Modifiers []string
}

// tokenStyle is the resolved styling for one semantic token.
type tokenStyle struct {
	color         style.PaletteIndex
	italic        bool
	bold          bool
	underline     bool
	strikethrough bool
}

// styleForToken maps a semantic token type and its modifiers onto a
// palette slot and style flags. Unknown types resolve to the default
// slot and are skipped by the overlay.
func styleForToken(typ string, modifiers []string) tokenStyle {
	var ts tokenStyle

	deprecated := slices.Contains(modifiers, "deprecated")
	static := slices.Contains(modifiers, "static")

	if deprecated {
		ts.strikethrough = true
		ts.color = style.ErrorMarker
	}
	if static {
		ts.underline = true
	}
	if slices.Contains(modifiers, "abstract") || slices.Contains(modifiers, "virtual") {
		ts.italic = true
	}
	if slices.Contains(modifiers, "definition") {
		ts.bold = true
	}
	if deprecated {
		return ts
	}

	switch typ {
	case "namespace", "type", "class", "enum", "interface", "struct",
		"typeParameter", "concept":
		ts.color = style.KnownIdentifier
	case "parameter":
		ts.color = style.Identifier
		ts.italic = true
	case "variable", "property", "event", "label":
		ts.color = style.Identifier
	case "enumMember":
		ts.color = style.Number
	case "function", "method":
		if slices.Contains(modifiers, "defaultLibrary") {
			ts.color = style.KnownIdentifier
		} else {
			ts.color = style.Identifier
		}
	case "macro":
		ts.color = style.PreprocIdentifier
	case "keyword", "modifier":
		ts.color = style.Keyword
	case "comment":
		ts.color = style.Comment
	case "string", "regexp":
		ts.color = style.String
	case "number":
		ts.color = style.Number
	case "operator":
		ts.color = style.Punctuation
	}
	return ts
}

// SetSemanticTokens installs the overlay and applies it immediately.
// The tokens are kept so every later colorization pass reapplies them.
func (c *Colorizer) SetSemanticTokens(tokens []SemanticToken) {
	c.semanticTokens = tokens
	c.reapplySemanticTokens()
}

// ClearSemanticTokens drops the overlay. Already-styled glyphs keep
// their look until the next recolor.
func (c *Colorizer) ClearSemanticTokens() {
	c.semanticTokens = nil
}

// SemanticTokens returns the installed overlay.
func (c *Colorizer) SemanticTokens() []SemanticToken {
	return c.semanticTokens
}

func (c *Colorizer) reapplySemanticTokens() {
	for _, token := range c.semanticTokens {
		if token.Line < 0 || token.Line >= c.doc.LineCount() {
			continue
		}
		line := c.doc.Line(token.Line)

		startIdx := token.StartChar
		endIdx := startIdx + token.Length
		if startIdx >= len(line) {
			continue
		}
		endIdx = min(endIdx, len(line))

		ts := styleForToken(token.Type, token.Modifiers)
		if ts.color == style.Default {
			continue
		}

		for i := startIdx; i < endIdx; i++ {
			line[i].Color = ts.color
			line[i].Comment = ts.color == style.Comment
			line[i].Preprocessor = ts.color == style.PreprocIdentifier
			line[i].Italic = ts.italic
			line[i].Bold = ts.bold
			line[i].Underline = ts.underline
			line[i].Strikethrough = ts.strikethrough
		}
	}
}

// ErrInvalidTokenPayload reports a semantic token payload that is not
// valid JSON.
var ErrInvalidTokenPayload = errors.New("syntax: invalid semantic token payload")

// ParseSemanticTokens decodes a JSON array of semantic tokens of the
// form {"line":0,"startChar":4,"length":3,"type":"function",
// "modifiers":["definition"]}.
func ParseSemanticTokens(data string) ([]SemanticToken, error) {
	if !gjson.Valid(data) {
		return nil, ErrInvalidTokenPayload
	}
	parsed := gjson.Parse(data)
	if !parsed.IsArray() {
		return nil, ErrInvalidTokenPayload
	}

	var tokens []SemanticToken
	parsed.ForEach(func(_, v gjson.Result) bool {
		t := SemanticToken{
			Line:      int(v.Get("line").Int()),
			StartChar: int(v.Get("startChar").Int()),
			Length:    int(v.Get("length").Int()),
			Type:      v.Get("type").String(),
		}
		for _, m := range v.Get("modifiers").Array() {
			t.Modifiers = append(t.Modifiers, m.String())
		}
		tokens = append(tokens, t)
		return true
	})
	return tokens, nil
}
