package format

import (
	"io"
	"strings"

	"github.com/dhamidi/cssline/parser"
)

// CSSEncoder writes lines back out as an indented stylesheet.
type CSSEncoder struct {
	w     io.Writer
	lines []*parser.Line

	// Indent is the unit written once per nesting level.
	Indent string
}

func NewCSSEncoder(w io.Writer) *CSSEncoder {
	return &CSSEncoder{w: w, Indent: "\t"}
}

func (e *CSSEncoder) Encode(lines []*parser.Line) error {
	e.lines = lines
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *CSSEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	for _, line := range e.lines {
		for i := 0; i < line.Depth(); i++ {
			sb.WriteString(e.Indent)
		}
		sb.WriteString(line.Code())
		sb.WriteByte('\n')
	}
	return []byte(sb.String()), nil
}
