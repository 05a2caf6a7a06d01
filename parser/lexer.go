package parser

import (
	"bufio"
	"io"
	"strings"
)

// Lexer converts a character stream into word, string, and single-character
// tokens, discarding whitespace. It reads its input exactly once and is not
// restartable; create a new Lexer per stream.
type Lexer struct {
	rd   *bufio.Reader
	pos  Position
	prev Position
}

func NewLexer(r io.Reader) *Lexer {
	return &Lexer{
		rd:  bufio.NewReader(r),
		pos: Position{Line: 1, Column: 1},
	}
}

func (l *Lexer) read() (rune, error) {
	ch, _, err := l.rd.ReadRune()
	if err != nil {
		return 0, err
	}
	l.prev = l.pos
	l.pos.Offset++
	if ch == '\n' {
		l.pos.Line++
		l.pos.Column = 1
	} else {
		l.pos.Column++
	}
	return ch, nil
}

// unread pushes back the rune returned by the last read call.
func (l *Lexer) unread() {
	_ = l.rd.UnreadRune()
	l.pos = l.prev
}

// NextToken returns the next token of the stream. End of input is reported
// as a TokenEOF token, not as an error; any other failure of the underlying
// reader is returned unmodified.
func (l *Lexer) NextToken() (Token, error) {
	for {
		ch, err := l.read()
		if err == io.EOF {
			return Token{Kind: TokenEOF, Span: Span{Start: l.pos, End: l.pos}}, nil
		}
		if err != nil {
			return Token{}, err
		}
		if isSpace(ch) {
			continue
		}

		start := l.prev
		switch {
		case isWordChar(ch):
			return l.scanWord(ch, start)
		case ch == '"' || ch == '\'':
			return l.scanString(ch, start)
		default:
			return Token{
				Kind: TokenChar,
				Char: ch,
				Span: Span{Start: start, End: l.pos},
			}, nil
		}
	}
}

func (l *Lexer) scanWord(first rune, start Position) (Token, error) {
	var sb strings.Builder
	sb.WriteRune(first)
	for {
		ch, err := l.read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Token{}, err
		}
		if !isWordChar(ch) {
			l.unread()
			break
		}
		sb.WriteRune(ch)
	}
	return Token{
		Kind: TokenWord,
		Text: sb.String(),
		Span: Span{Start: start, End: l.pos},
	}, nil
}

// scanString reads a quoted string. The quotes are consumed and the content
// kept verbatim, with no escape processing. An unterminated string ends at
// the end of the line or the end of the stream.
func (l *Lexer) scanString(quote rune, start Position) (Token, error) {
	var sb strings.Builder
	for {
		ch, err := l.read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Token{}, err
		}
		if ch == quote {
			break
		}
		if ch == '\n' {
			l.unread()
			break
		}
		sb.WriteRune(ch)
	}
	return Token{
		Kind: TokenString,
		Text: sb.String(),
		Span: Span{Start: start, End: l.pos},
	}, nil
}
