package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/cssline/parser"
)

// LineEncoder writes one tab-separated record per line: kind, depth,
// declaration, value. Absent values are written as "-". The output is meant
// for grepping and diffing, not for reparsing.
type LineEncoder struct {
	w     io.Writer
	lines []*parser.Line
}

func NewLineEncoder(w io.Writer) *LineEncoder {
	return &LineEncoder{w: w}
}

func (e *LineEncoder) Encode(lines []*parser.Line) error {
	e.lines = lines
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *LineEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	for _, line := range e.lines {
		value := "-"
		if v, ok := line.Value(); ok {
			value = v
		}
		fmt.Fprintf(&sb, "%s\t%d\t%s\t%s\n",
			line.Kind(),
			line.Depth(),
			line.Declaration(),
			value,
		)
	}
	return []byte(sb.String()), nil
}
