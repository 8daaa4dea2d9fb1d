// Package syntax classifies document glyphs. A Language describes how
// to tokenize one language; the Colorizer applies it incrementally so
// typing never waits on a whole-document pass.
package syntax

import (
	"log/slog"

	"github.com/dlclark/regexp2"
	"golang.org/x/text/cases"

	"github.com/dshills/textforge/internal/style"
)

// TokenizeFunc is a language's fast-path tokenizer. It inspects text
// starting at byte offset first and, on success, returns the token's
// byte range and color.
type TokenizeFunc func(text string, first int) (start, end int, color style.PaletteIndex, ok bool)

// Pattern is one anchored regex rule. Rules are tried in order; the
// first match wins.
type Pattern struct {
	re    *regexp2.Regexp
	color style.PaletteIndex
}

// Language describes tokenization for one language.
type Language struct {
	Name string

	// Keywords, Identifiers and PreprocIdentifiers refine tokens the
	// tokenizer classified as plain identifiers. Identifier values
	// hold short declarations shown by hosts; only the keys matter
	// for classification.
	Keywords           map[string]bool
	Identifiers        map[string]string
	PreprocIdentifiers map[string]string

	CommentStart      string
	CommentEnd        string
	SingleLineComment string
	PreprocChar       string
	CaseSensitive     bool

	// Tokenize is the optional fast path, tried before the patterns.
	Tokenize TokenizeFunc

	patterns []Pattern
	folder   cases.Caser
}

// NewLanguage returns an empty case-sensitive language definition.
func NewLanguage(name string) *Language {
	return &Language{
		Name:               name,
		Keywords:           make(map[string]bool),
		Identifiers:        make(map[string]string),
		PreprocIdentifiers: make(map[string]string),
		CaseSensitive:      true,
		folder:             cases.Fold(),
	}
}

// AddKeywords registers keyword identifiers.
func (l *Language) AddKeywords(words ...string) *Language {
	for _, w := range words {
		l.Keywords[l.fold(w)] = true
	}
	return l
}

// AddIdentifiers registers known identifiers (builtins, stdlib names).
func (l *Language) AddIdentifiers(words ...string) *Language {
	for _, w := range words {
		l.Identifiers[l.fold(w)] = "built-in"
	}
	return l
}

// AddPreprocIdentifiers registers preprocessor identifiers.
func (l *Language) AddPreprocIdentifiers(words ...string) *Language {
	for _, w := range words {
		l.PreprocIdentifiers[l.fold(w)] = "preprocessor directive"
	}
	return l
}

// AddPattern compiles and appends an anchored regex rule. The pattern
// is wrapped in \G(?:...) so matching never skips ahead of the scan
// position; the standard library regexp package has no equivalent
// anchor. A malformed pattern is skipped with a warning rather than
// failing the whole definition.
func (l *Language) AddPattern(expr string, color style.PaletteIndex) *Language {
	re, err := regexp2.Compile(`\G(?:`+expr+`)`, regexp2.None)
	if err != nil {
		slog.Warn("skipping malformed token pattern", "language", l.Name, "pattern", expr, "error", err)
		return l
	}
	l.patterns = append(l.patterns, Pattern{re: re, color: color})
	return l
}

// fold normalizes an identifier for table lookup. Case-insensitive
// languages fold via Unicode case folding.
func (l *Language) fold(id string) string {
	if l.CaseSensitive {
		return id
	}
	return l.folder.String(id)
}

// matchPattern tries every rule at byte offset first and returns the
// first winning token range.
func (l *Language) matchPattern(text string, first int) (int, int, style.PaletteIndex, bool) {
	for _, p := range l.patterns {
		m, err := p.re.FindStringMatchStartingAt(text, first)
		if err != nil || m == nil {
			continue
		}
		if m.Index != first || m.Length == 0 {
			continue
		}
		return m.Index, m.Index + m.Length, p.color, true
	}
	return 0, 0, style.Default, false
}
