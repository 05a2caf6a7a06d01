package stylesheet

import (
	"testing"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

func testLSPServer() *LSPServer {
	return &LSPServer{store: NewStore(), version: "test"}
}

func formattingParams(uri string, options protocol.FormattingOptions) *protocol.DocumentFormattingParams {
	params := &protocol.DocumentFormattingParams{Options: options}
	params.TextDocument.URI = uri
	return params
}

func TestTextDocumentFormatting(t *testing.T) {
	tests := []struct {
		name    string
		content string
		options protocol.FormattingOptions
		want    string
	}{
		{
			"spaces from options",
			"X{a:b}",
			protocol.FormattingOptions{"insertSpaces": true, "tabSize": float64(2)},
			"X {\n  a: b;\n}\n",
		},
		{
			"tabs by default",
			"X{a:b}",
			protocol.FormattingOptions{},
			"X {\n\ta: b;\n}\n",
		},
		{
			"tabs when tab size missing",
			"X{a:b}",
			protocol.FormattingOptions{"insertSpaces": true},
			"X {\n\ta: b;\n}\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ls := testLSPServer()
			ls.store.Update("/test.css", []byte(tt.content))

			edits, err := ls.textDocumentFormatting(nil, formattingParams("file:///test.css", tt.options))
			if err != nil {
				t.Fatalf("textDocumentFormatting() error = %v", err)
			}
			if len(edits) != 1 {
				t.Fatalf("len(edits) = %d, want 1", len(edits))
			}
			if edits[0].NewText != tt.want {
				t.Errorf("NewText = %q, want %q", edits[0].NewText, tt.want)
			}
		})
	}
}

func TestTextDocumentFormattingAlreadyFormatted(t *testing.T) {
	ls := testLSPServer()
	ls.store.Update("/test.css", []byte("X {\n\ta: b;\n}\n"))

	edits, err := ls.textDocumentFormatting(nil, formattingParams("file:///test.css", protocol.FormattingOptions{}))
	if err != nil {
		t.Fatalf("textDocumentFormatting() error = %v", err)
	}
	if edits != nil {
		t.Errorf("edits = %v, want nil for already formatted document", edits)
	}
}

func TestTextDocumentFormattingUnknownDocument(t *testing.T) {
	ls := testLSPServer()

	edits, err := ls.textDocumentFormatting(nil, formattingParams("file:///missing.css", protocol.FormattingOptions{}))
	if err != nil {
		t.Fatalf("textDocumentFormatting() error = %v", err)
	}
	if edits != nil {
		t.Errorf("edits = %v, want nil for unknown document", edits)
	}
}
