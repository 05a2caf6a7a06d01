package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/cssline/parser"
)

// JSONEncoder writes lines as a JSON array, one object per line.
type JSONEncoder struct {
	w     io.Writer
	lines []*parser.Line
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(lines []*parser.Line) error {
	e.lines = lines
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

type jsonLine struct {
	Kind        string  `json:"kind"`
	Depth       int     `json:"depth"`
	Declaration string  `json:"declaration"`
	Value       *string `json:"value,omitempty"`
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	data := make([]jsonLine, len(e.lines))
	for i, line := range e.lines {
		data[i] = jsonLine{
			Kind:        line.Kind().String(),
			Depth:       line.Depth(),
			Declaration: line.Declaration(),
		}
		if value, ok := line.Value(); ok {
			data[i].Value = &value
		}
	}
	return json.MarshalIndent(data, "", "  ")
}
