package parser

import "strings"

type LineKind int

const (
	// Unknown marks a line whose kind could not be determined, which only
	// happens for undelimited text at the end of the stream.
	Unknown LineKind = iota
	// BlockOpening is the code before a '{'.
	BlockOpening
	// BlockClosure is a bare '}' closing a block.
	BlockClosure
	// Property is a declaration terminated by ';', optionally carrying a
	// value after ':'.
	Property
)

var lineKindNames = map[LineKind]string{
	Unknown:      "UNKNOWN",
	BlockOpening: "BLOCK_OPENING",
	BlockClosure: "BLOCK_CLOSURE",
	Property:     "PROPERTY",
}

func (k LineKind) String() string {
	if name, ok := lineKindNames[k]; ok {
		return name
	}
	return "UNKNOWN"
}

// Line is one classified line of CSS: a block opening, a property
// declaration, or a block closure. Lines are immutable once produced.
type Line struct {
	parent      *Line
	kind        LineKind
	declaration string
	value       string
	hasValue    bool
	span        Span
}

// newLine classifies a buffered statement by its terminating delimiter.
// toks must be non-empty and end on the delimiter that ended the statement,
// except for undelimited leftovers at the end of the stream.
func newLine(parent *Line, toks []Token) *Line {
	n := len(toks)
	l := &Line{
		parent: parent,
		span:   Span{Start: toks[0].Span.Start, End: toks[n-1].Span.End},
	}

	switch toks[n-1].Char {
	case '{':
		l.kind = BlockOpening
		l.declaration = join(toks[:n-1])
	case '}':
		if join(toks[:n-1]) == "" {
			l.kind = BlockClosure
			return l
		}
		// Unterminated property before the '}': the missing ';' is
		// tolerated and the line reclassified.
		l.kind = Property
		l.setProperty(toks[:n-1])
	case ';':
		l.kind = Property
		l.setProperty(toks[:n-1])
	default:
		// Unexpected code at the end of the stream.
		l.kind = Unknown
		l.declaration = join(toks)
	}
	return l
}

// setProperty splits the statement body on the first ':' into declaration
// and value. Without a ':' the whole body becomes the declaration and the
// value is absent, which pure CSS does not allow but sass and less do.
func (l *Line) setProperty(toks []Token) {
	for i, t := range toks {
		if t.Char == ':' {
			l.declaration = join(toks[:i])
			l.value = join(toks[i+1:])
			l.hasValue = true
			return
		}
	}
	l.declaration = join(toks)
}

// join reconstructs source text from a token run. A single space is
// inserted before every token after the first, except before the
// punctuation characters that conventionally stick to the preceding token
// and directly after an opening parenthesis or a comma. This reproduces
// ordinary CSS spacing ("margin: 0 auto", "rgba(0,0,0,.5)") without a
// grammar.
func join(toks []Token) string {
	var sb strings.Builder
	var prev rune
	for i, t := range toks {
		if i > 0 && !noSpaceBefore(t.Char) && !noSpaceAfter(prev) {
			sb.WriteByte(' ')
		}
		if t.Char != 0 {
			sb.WriteRune(t.Char)
		} else {
			sb.WriteString(t.Text)
		}
		prev = t.Char
	}
	return sb.String()
}

func noSpaceBefore(ch rune) bool {
	switch ch {
	case '(', ')', ',', ';', ':', '{', '}':
		return true
	}
	return false
}

func noSpaceAfter(ch rune) bool {
	return ch == '(' || ch == ','
}

func (l *Line) Kind() LineKind { return l.kind }

// Parent returns the line opening the innermost block that was still open
// when this line was produced, or nil at the top level. A block closure's
// parent is the opening line of the block it closes.
func (l *Line) Parent() *Line { return l.parent }

// Declaration returns the formatted code before the '{' or ':'. It is empty
// for a genuine block closure; when the ':' is missing it holds the code
// before the ';'; for Unknown lines it holds the whole statement.
func (l *Line) Declaration() string { return l.declaration }

// Value returns the formatted code after the ':' of a property. ok is false
// when the line is not a property or no ':' was found in the statement.
func (l *Line) Value() (value string, ok bool) {
	return l.value, l.hasValue
}

// Span covers the statement's tokens in the input stream. Synthesized block
// closures have a zero-width span at the end of the statement that closed
// the block.
func (l *Line) Span() Span { return l.span }

// Depth returns the number of indentation units for this line: one per
// enclosing block. A closure is one level shallower than its sibling
// properties, since the closing brace aligns with the opening line.
func (l *Line) Depth() int {
	p := l
	if l.kind == BlockClosure {
		p = p.parent
	}
	if p == nil {
		return 0
	}
	n := 0
	for p = p.parent; p != nil; p = p.parent {
		n++
	}
	return n
}

// Code renders the line as CSS source without indentation.
func (l *Line) Code() string {
	var sb strings.Builder
	switch l.kind {
	case Property:
		sb.WriteString(l.declaration)
		if l.hasValue {
			sb.WriteString(": ")
			sb.WriteString(l.value)
		}
		sb.WriteByte(';')
	case BlockOpening:
		sb.WriteString(l.declaration)
		sb.WriteString(" {")
	case BlockClosure:
		sb.WriteString(l.declaration)
		sb.WriteByte('}')
	default:
		sb.WriteString(l.declaration)
	}
	return sb.String()
}

// Text renders the line as CSS source, indented with one tab per Depth unit.
func (l *Line) Text() string {
	return strings.Repeat("\t", l.Depth()) + l.Code()
}

func (l *Line) String() string {
	return l.Text() + " /* " + l.kind.String() + " */"
}
