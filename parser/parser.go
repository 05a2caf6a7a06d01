package parser

import (
	"errors"
	"io"
)

// initialStatementCap is the starting size of the statement buffer. The
// buffer grows as needed and never drops or reorders buffered tokens.
const initialStatementCap = 256

// Parser reads CSS-family source from a stream and classifies it into
// lines, one statement at a time. It tolerates missing semicolons,
// unmatched braces, and trailing garbage; comments are skipped. A Parser is
// not safe for concurrent use and consumes its input exactly once.
type Parser struct {
	lexer *Lexer

	// parent is the opening line of the innermost block still open.
	parent *Line

	// pendingClosure defers the pop for a block closed by an unterminated
	// property: the next NextLine call returns a synthesized closure
	// without consuming any input.
	pendingClosure bool

	// end of the most recently returned statement, used to position
	// synthesized closures.
	lastEnd Position
}

// New returns a parser over r. It fails only on a nil reader.
func New(r io.Reader) (*Parser, error) {
	if r == nil {
		return nil, errors.New("parser: nil reader")
	}
	return &Parser{lexer: NewLexer(r)}, nil
}

// NextLine returns the next line of CSS. It returns io.EOF once the stream
// is exhausted; any other error comes from the underlying reader.
func (p *Parser) NextLine() (*Line, error) {
	// Forgotten ';' before a '}': emit the closure for the block itself.
	if p.pendingClosure {
		p.pendingClosure = false
		line := &Line{
			parent: p.parent,
			kind:   BlockClosure,
			span:   Span{Start: p.lastEnd, End: p.lastEnd},
		}
		if p.parent != nil {
			p.parent = p.parent.parent
		}
		return line, nil
	}

	toks := make([]Token, 0, initialStatementCap)
	inComment := false
	var lastCommentChar rune

	for {
		tok, err := p.lexer.NextToken()
		if err != nil {
			return nil, err
		}
		if tok.Kind == TokenEOF {
			break
		}

		if inComment {
			if tok.Char == '/' && lastCommentChar == '*' {
				inComment = false
				lastCommentChar = 0 // adjacent comments must not merge
			} else {
				lastCommentChar = tok.Char
			}
			continue
		}

		toks = append(toks, tok)

		if tok.Kind != TokenChar {
			continue
		}
		switch tok.Char {
		case ';':
			return p.emit(newLine(p.parent, toks)), nil
		case '{':
			line := p.emit(newLine(p.parent, toks))
			p.parent = line
			return line, nil
		case '}':
			line := p.emit(newLine(p.parent, toks))
			if line.kind == Property {
				p.pendingClosure = true
			} else if p.parent != nil {
				p.parent = p.parent.parent
			}
			return line, nil
		case '*':
			if n := len(toks); n >= 2 && toks[n-2].Char == '/' {
				// The '/' was not part of the statement; retract it
				// along with the '*'.
				inComment = true
				toks = toks[:n-2]
			}
		}
	}

	if len(toks) > 0 {
		// Unexpected code at the end of the stream.
		return p.emit(newLine(p.parent, toks)), nil
	}
	return nil, io.EOF
}

func (p *Parser) emit(line *Line) *Line {
	p.lastEnd = line.span.End
	return line
}
