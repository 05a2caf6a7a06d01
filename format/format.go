package format

import (
	"bytes"
	"encoding"
	"io"

	"github.com/dhamidi/cssline/parser"
)

// Encoder renders a sequence of classified lines to some output format.
type Encoder interface {
	encoding.TextMarshaler
	Encode(lines []*parser.Line) error
}

// ReadAll drives a parser over r until the stream is exhausted and returns
// every produced line.
func ReadAll(r io.Reader) ([]*parser.Line, error) {
	p, err := parser.New(r)
	if err != nil {
		return nil, err
	}
	var lines []*parser.Line
	for {
		line, err := p.NextLine()
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
}

// Format reparses source and renders it as an indented stylesheet, one
// line per statement. indent is the unit used per nesting level; pass "\t"
// for conventional output.
func Format(source []byte, indent string) ([]byte, error) {
	lines, err := ReadAll(bytes.NewReader(source))
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	enc := NewCSSEncoder(&buf)
	enc.Indent = indent
	if err := enc.Encode(lines); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
