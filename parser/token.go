package parser

type Position struct {
	Offset int
	Line   int
	Column int
}

type Span struct {
	Start Position
	End   Position
}

type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenWord
	TokenString
	TokenChar
)

var tokenKindNames = map[TokenKind]string{
	TokenEOF:    "EOF",
	TokenWord:   "Word",
	TokenString: "String",
	TokenChar:   "Char",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Token is a single lexical unit of CSS-family input. Word and string
// tokens carry their text in Text and have Char set to zero; ordinary
// single-character tokens carry the character in Char.
type Token struct {
	Kind TokenKind
	Char rune
	Text string
	Span Span
}

// isWordChar reports whether ch belongs to a word token. The table admits
// identifiers, numbers with units, hex colors, and the $/@ prefixes used by
// sass and less variables. Code points at or above 160 are accepted so
// non-ASCII identifiers lex as words.
func isWordChar(ch rune) bool {
	switch {
	case ch >= 'a' && ch <= 'z':
		return true
	case ch >= 'A' && ch <= 'Z':
		return true
	case ch >= '0' && ch <= '9':
		return true
	case ch >= 160:
		return true
	}
	switch ch {
	case '-', '.', '%', '#', '$', '@':
		return true
	}
	return false
}

// isSpace reports whether ch is a separator. All control characters up to
// and including the space character separate tokens and are never reported.
func isSpace(ch rune) bool {
	return ch <= ' '
}
