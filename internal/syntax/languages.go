package syntax

import (
	"strings"
	"sync"

	"github.com/dshills/textforge/internal/style"
)

// Built-in token patterns shared by the regex-driven languages.
const (
	patternString      = `L?"(\\.|[^"])*"`
	patternSingleQuote = `'[^']*'`
	patternCharLit     = `'\\?[^']'`
	patternHexNumber   = `0[xX][0-9a-fA-F]+[uU]?[lL]?[lL]?`
	patternFloat       = `[+-]?([0-9]+([.][0-9]*)?|[.][0-9]+)([eE][+-]?[0-9]+)?[fF]?`
	patternInt         = `[+-]?[0-9]+[Uu]?[lL]?[lL]?`
	patternIdentifier  = `[a-zA-Z_][a-zA-Z0-9_]*`
	patternPunct       = `[\[\]\{\}\(\)!%^&*\-+=~|<>?:/;,.]`
)

// LanguageByName resolves a language definition by its common name,
// case-insensitively. It returns nil for unknown names.
func LanguageByName(name string) *Language {
	return registry()[strings.ToLower(name)]
}

// LanguageNames lists the names of the built-in definitions.
func LanguageNames() []string {
	names := make([]string, 0, len(registry()))
	seen := make(map[*Language]bool)
	for _, lang := range registry() {
		if !seen[lang] {
			seen[lang] = true
			names = append(names, lang.Name)
		}
	}
	return names
}

var registry = sync.OnceValue(func() map[string]*Language {
	c := languageC()
	cpp := languageCPP()
	return map[string]*Language{
		"c":      c,
		"c++":    cpp,
		"cpp":    cpp,
		"lua":    languageLua(),
		"python": languagePython(),
		"json":   languageJSON(),
		"sql":    languageSQL(),
	}
})

func languageC() *Language {
	l := NewLanguage("C")
	l.CommentStart = "/*"
	l.CommentEnd = "*/"
	l.SingleLineComment = "//"
	l.PreprocChar = "#"
	l.Tokenize = tokenizeCStyle
	l.AddKeywords(
		"auto", "break", "case", "char", "const", "continue", "default",
		"do", "double", "else", "enum", "extern", "float", "for", "goto",
		"if", "inline", "int", "long", "register", "restrict", "return",
		"short", "signed", "sizeof", "static", "struct", "switch",
		"typedef", "union", "unsigned", "void", "volatile", "while",
		"_Alignas", "_Alignof", "_Atomic", "_Bool", "_Complex",
		"_Generic", "_Imaginary", "_Noreturn", "_Static_assert",
		"_Thread_local",
	)
	l.AddIdentifiers(
		"abort", "abs", "acos", "asin", "atan", "atexit", "atof", "atoi",
		"atol", "ceil", "clock", "cosh", "ctime", "div", "exit", "fabs",
		"floor", "fmod", "getchar", "getenv", "isalnum", "isalpha",
		"isdigit", "isgraph", "ispunct", "isspace", "isupper", "log",
		"log10", "malloc", "calloc", "realloc", "free", "memcmp",
		"memcpy", "memmove", "memset", "modf", "pow", "printf",
		"sprintf", "snprintf", "putchar", "puts", "rand", "remove",
		"rename", "sinh", "sqrt", "srand", "strcat", "strcmp", "strcpy",
		"strerror", "strlen", "strncmp", "strtol", "time", "tolower",
		"toupper",
	)
	l.AddPreprocIdentifiers(
		"define", "include", "if", "ifdef", "ifndef", "elif", "else",
		"endif", "error", "pragma", "undef", "line",
	)
	return l
}

func languageCPP() *Language {
	l := languageC()
	l.Name = "C++"
	l.AddKeywords(
		"alignas", "alignof", "and", "and_eq", "asm", "atomic_cancel",
		"atomic_commit", "atomic_noexcept", "bitand", "bitor", "bool",
		"catch", "char16_t", "char32_t", "char8_t", "class", "compl",
		"concept", "constexpr", "consteval", "constinit", "const_cast",
		"co_await", "co_return", "co_yield", "decltype", "delete",
		"dynamic_cast", "explicit", "export", "false", "friend",
		"mutable", "namespace", "new", "noexcept", "not", "not_eq",
		"nullptr", "operator", "or", "or_eq", "private", "protected",
		"public", "reinterpret_cast", "requires", "static_assert",
		"static_cast", "template", "this", "thread_local", "throw",
		"true", "try", "typeid", "typename", "using", "virtual",
		"wchar_t", "xor", "xor_eq",
	)
	l.AddIdentifiers(
		"std", "string", "string_view", "vector", "map", "unordered_map",
		"set", "unordered_set", "array", "deque", "list", "pair",
		"tuple", "optional", "variant", "unique_ptr", "shared_ptr",
		"weak_ptr", "make_unique", "make_shared", "move", "forward",
		"swap", "min", "max", "size_t", "int8_t", "int16_t", "int32_t",
		"int64_t", "uint8_t", "uint16_t", "uint32_t", "uint64_t",
	)
	return l
}

func languageLua() *Language {
	l := NewLanguage("Lua")
	l.CommentStart = "--[["
	l.CommentEnd = "]]"
	l.SingleLineComment = "--"
	l.AddKeywords(
		"and", "break", "do", "else", "elseif", "end", "false", "for",
		"function", "goto", "if", "in", "local", "nil", "not", "or",
		"repeat", "return", "then", "true", "until", "while",
	)
	l.AddIdentifiers(
		"assert", "collectgarbage", "dofile", "error", "getmetatable",
		"ipairs", "load", "loadfile", "loadstring", "next", "pairs",
		"pcall", "print", "rawequal", "rawget", "rawlen", "rawset",
		"require", "select", "setmetatable", "tonumber", "tostring",
		"type", "unpack", "xpcall", "_G", "_VERSION", "coroutine",
		"debug", "io", "math", "os", "string", "table", "utf8",
	)
	l.AddPattern(patternString, style.String)
	l.AddPattern(patternSingleQuote, style.String)
	l.AddPattern(patternHexNumber, style.Number)
	l.AddPattern(patternFloat, style.Number)
	l.AddPattern(patternInt, style.Number)
	l.AddPattern(patternIdentifier, style.Identifier)
	l.AddPattern(patternPunct, style.Punctuation)
	return l
}

func languagePython() *Language {
	l := NewLanguage("Python")
	l.CommentStart = `'''`
	l.CommentEnd = `'''`
	l.SingleLineComment = "#"
	l.AddKeywords(
		"False", "None", "True", "and", "as", "assert", "async", "await",
		"break", "class", "continue", "def", "del", "elif", "else",
		"except", "finally", "for", "from", "global", "if", "import",
		"in", "is", "lambda", "match", "nonlocal", "not", "or", "pass",
		"raise", "return", "try", "while", "with", "yield",
	)
	l.AddIdentifiers(
		"abs", "all", "any", "ascii", "bin", "bool", "bytearray",
		"bytes", "callable", "chr", "classmethod", "compile", "complex",
		"delattr", "dict", "dir", "divmod", "enumerate", "eval", "exec",
		"filter", "float", "format", "frozenset", "getattr", "globals",
		"hasattr", "hash", "help", "hex", "id", "input", "int",
		"isinstance", "issubclass", "iter", "len", "list", "locals",
		"map", "max", "memoryview", "min", "next", "object", "oct",
		"open", "ord", "pow", "print", "property", "range", "repr",
		"reversed", "round", "set", "setattr", "slice", "sorted",
		"staticmethod", "str", "sum", "super", "tuple", "type", "vars",
		"zip",
	)
	l.AddPattern(patternString, style.String)
	l.AddPattern(patternSingleQuote, style.String)
	l.AddPattern(patternHexNumber, style.Number)
	l.AddPattern(patternFloat, style.Number)
	l.AddPattern(patternInt, style.Number)
	l.AddPattern(patternIdentifier, style.Identifier)
	l.AddPattern(patternPunct, style.Punctuation)
	return l
}

func languageJSON() *Language {
	l := NewLanguage("JSON")
	l.AddKeywords("true", "false", "null")
	l.AddPattern(patternString, style.String)
	l.AddPattern(patternHexNumber, style.Number)
	l.AddPattern(patternFloat, style.Number)
	l.AddPattern(patternInt, style.Number)
	l.AddPattern(patternIdentifier, style.Identifier)
	l.AddPattern(patternPunct, style.Punctuation)
	return l
}

func languageSQL() *Language {
	l := NewLanguage("SQL")
	l.CommentStart = "/*"
	l.CommentEnd = "*/"
	l.SingleLineComment = "--"
	l.CaseSensitive = false
	l.AddKeywords(
		"ADD", "ALL", "ALTER", "AND", "AS", "ASC", "BETWEEN", "BY",
		"CASE", "CHECK", "COLUMN", "CONSTRAINT", "CREATE", "CROSS",
		"DATABASE", "DEFAULT", "DELETE", "DESC", "DISTINCT", "DROP",
		"ELSE", "END", "EXEC", "EXISTS", "FOREIGN", "FROM", "FULL",
		"GROUP", "HAVING", "IN", "INDEX", "INNER", "INSERT", "INTO",
		"IS", "JOIN", "KEY", "LEFT", "LIKE", "LIMIT", "NOT", "NULL",
		"OFFSET", "ON", "OR", "ORDER", "OUTER", "PRIMARY", "PROCEDURE",
		"RIGHT", "SELECT", "SET", "TABLE", "THEN", "TOP", "TRUNCATE",
		"UNION", "UNIQUE", "UPDATE", "VALUES", "VIEW", "WHEN", "WHERE",
	)
	l.AddIdentifiers(
		"ABS", "AVG", "CAST", "COALESCE", "CONCAT", "COUNT",
		"CURRENT_DATE", "CURRENT_TIMESTAMP", "LENGTH", "LOWER", "MAX",
		"MIN", "NOW", "NULLIF", "ROUND", "SUBSTRING", "SUM", "TRIM",
		"UPPER",
	)
	l.AddPattern(patternSingleQuote, style.String)
	l.AddPattern(patternFloat, style.Number)
	l.AddPattern(patternInt, style.Number)
	l.AddPattern(patternIdentifier, style.Identifier)
	l.AddPattern(patternPunct, style.Punctuation)
	return l
}
