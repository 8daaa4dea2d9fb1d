package syntax

import "github.com/dshills/textforge/internal/style"

// tokenizeCStyle is the fast-path tokenizer shared by the C-family
// languages. It avoids the regex engine for the common token shapes.
func tokenizeCStyle(text string, first int) (int, int, style.PaletteIndex, bool) {
	p := first
	for p < len(text) && isBlank(text[p]) {
		p++
	}
	if p == len(text) {
		return first, p, style.Default, true
	}
	if end, ok := cStyleString(text, p); ok {
		return p, end, style.String, true
	}
	if end, ok := cStyleCharLiteral(text, p); ok {
		return p, end, style.CharLiteral, true
	}
	if end, ok := cStyleIdentifier(text, p); ok {
		return p, end, style.Identifier, true
	}
	if end, ok := cStyleNumber(text, p); ok {
		return p, end, style.Number, true
	}
	if end, ok := cStylePunctuation(text, p); ok {
		return p, end, style.Punctuation, true
	}
	return 0, 0, style.Default, false
}

func isBlank(b byte) bool { return b == ' ' || b == '\t' }

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isHexDigit(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentPart(b byte) bool { return isIdentStart(b) || isDigit(b) }

// cStyleString matches a double-quoted string with backslash escapes.
// An unterminated string is not a token; the comment scanner owns
// strings that continue past the line.
func cStyleString(text string, p int) (int, bool) {
	if text[p] != '"' {
		return 0, false
	}
	p++
	for p < len(text) {
		switch text[p] {
		case '"':
			return p + 1, true
		case '\\':
			if p+1 < len(text) {
				p++
			}
		}
		p++
	}
	return 0, false
}

func cStyleCharLiteral(text string, p int) (int, bool) {
	if text[p] != '\'' {
		return 0, false
	}
	p++
	if p < len(text) && text[p] == '\\' {
		p++
	}
	if p >= len(text) {
		return 0, false
	}
	p++ // the character itself
	if p < len(text) && text[p] == '\'' {
		return p + 1, true
	}
	return 0, false
}

func cStyleIdentifier(text string, p int) (int, bool) {
	if !isIdentStart(text[p]) {
		return 0, false
	}
	for p < len(text) && isIdentPart(text[p]) {
		p++
	}
	return p, true
}

// cStyleNumber matches decimal, hex, octal and binary integer literals
// plus floating point forms with exponents and the usual suffixes.
func cStyleNumber(text string, p int) (int, bool) {
	start := p
	startedWithDigit := isDigit(text[p])
	startedWithDot := text[p] == '.' && p+1 < len(text) && isDigit(text[p+1])
	if !startedWithDigit && !startedWithDot {
		return 0, false
	}

	if startedWithDigit && text[p] == '0' && p+1 < len(text) &&
		(text[p+1] == 'x' || text[p+1] == 'X') {
		p += 2
		n := p
		for p < len(text) && (isHexDigit(text[p]) || text[p] == '\'') {
			p++
		}
		if p == n {
			return 0, false
		}
		return consumeIntSuffix(text, p), true
	}
	if startedWithDigit && text[p] == '0' && p+1 < len(text) &&
		(text[p+1] == 'b' || text[p+1] == 'B') {
		p += 2
		n := p
		for p < len(text) && (text[p] == '0' || text[p] == '1' || text[p] == '\'') {
			p++
		}
		if p == n {
			return 0, false
		}
		return consumeIntSuffix(text, p), true
	}

	for p < len(text) && (isDigit(text[p]) || text[p] == '\'') {
		p++
	}
	isFloat := false
	if p < len(text) && text[p] == '.' {
		if p == start && !startedWithDot {
			return 0, false
		}
		isFloat = true
		p++
		for p < len(text) && isDigit(text[p]) {
			p++
		}
	}
	if p < len(text) && (text[p] == 'e' || text[p] == 'E') {
		q := p + 1
		if q < len(text) && (text[q] == '+' || text[q] == '-') {
			q++
		}
		if q < len(text) && isDigit(text[q]) {
			isFloat = true
			p = q
			for p < len(text) && isDigit(text[p]) {
				p++
			}
		}
	}
	if isFloat {
		if p < len(text) && (text[p] == 'f' || text[p] == 'F' || text[p] == 'l' || text[p] == 'L') {
			p++
		}
		return p, true
	}
	return consumeIntSuffix(text, p), true
}

func consumeIntSuffix(text string, p int) int {
	for p < len(text) {
		switch text[p] {
		case 'u', 'U', 'l', 'L':
			p++
		default:
			return p
		}
	}
	return p
}

func cStylePunctuation(text string, p int) (int, bool) {
	switch text[p] {
	case '[', ']', '{', '}', '(', ')',
		'!', '%', '^', '&', '*', '-', '+', '=', '~', '|',
		'<', '>', '?', ':', '/', ';', ',', '.':
		return p + 1, true
	}
	return 0, false
}
