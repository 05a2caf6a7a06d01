package parser

import (
	"strings"
	"testing"
)

func word(text string) Token   { return Token{Kind: TokenWord, Text: text} }
func char(ch rune) Token       { return Token{Kind: TokenChar, Char: ch} }
func quoted(text string) Token { return Token{Kind: TokenString, Text: text} }

func TestJoinSpacing(t *testing.T) {
	tests := []struct {
		name string
		toks []Token
		want string
	}{
		{
			"words separated by spaces",
			[]Token{word("margin"), word("0"), word("auto")},
			"margin 0 auto",
		},
		{
			"no spaces around parens and commas",
			[]Token{word("rgba"), char('('), word("0"), char(','), word("0"), char(','), word("0"), char(','), word(".5"), char(')')},
			"rgba(0,0,0,.5)",
		},
		{
			"no space before colon",
			[]Token{word("a"), char(':'), word("b")},
			"a: b",
		},
		{
			"no space after open paren",
			[]Token{word("url"), char('('), quoted("x.png"), char(')')},
			"url(x.png)",
		},
		{
			"no space after comma",
			[]Token{word("a"), char(','), word("b")},
			"a,b",
		},
		{
			"combinator gets spaces",
			[]Token{word("a"), char('>'), word("b")},
			"a > b",
		},
		{
			"empty range",
			nil,
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := join(tt.toks); got != tt.want {
				t.Errorf("join() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		toks     []Token
		kind     LineKind
		decl     string
		value    string
		hasValue bool
	}{
		{
			"block opening",
			[]Token{word("div"), char('{')},
			BlockOpening, "div", "", false,
		},
		{
			"property with value",
			[]Token{word("a"), char(':'), word("b"), char(';')},
			Property, "a", "b", true,
		},
		{
			"property without value",
			[]Token{word("a"), char(';')},
			Property, "a", "", false,
		},
		{
			"genuine closure",
			[]Token{char('}')},
			BlockClosure, "", "", false,
		},
		{
			"unterminated property before closure",
			[]Token{word("a"), char(':'), word("b"), char('}')},
			Property, "a", "b", true,
		},
		{
			"unterminated valueless property before closure",
			[]Token{word("a"), char('}')},
			Property, "a", "", false,
		},
		{
			"leftover text at end of stream",
			[]Token{word("color"), char(':'), word("red")},
			Unknown, "color: red", "", false,
		},
		{
			"multi-word value",
			[]Token{word("margin"), char(':'), word("0"), word("auto"), char(';')},
			Property, "margin", "0 auto", true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := newLine(nil, tt.toks)
			if line.Kind() != tt.kind {
				t.Errorf("Kind() = %v, want %v", line.Kind(), tt.kind)
			}
			if line.Declaration() != tt.decl {
				t.Errorf("Declaration() = %q, want %q", line.Declaration(), tt.decl)
			}
			value, ok := line.Value()
			if ok != tt.hasValue {
				t.Errorf("Value() ok = %v, want %v", ok, tt.hasValue)
			}
			if value != tt.value {
				t.Errorf("Value() = %q, want %q", value, tt.value)
			}
		})
	}
}

func TestLineText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			"single block",
			"X { a: b; }",
			[]string{"X {", "\ta: b;", "}"},
		},
		{
			"nested blocks indent",
			"A{B{C{d:e;}}}",
			[]string{"A {", "\tB {", "\t\tC {", "\t\t\td: e;", "\t\t}", "\t}", "}"},
		},
		{
			"valueless property",
			"X { a; }",
			[]string{"X {", "\ta;", "}"},
		},
		{
			"unknown rendered verbatim",
			"trailing garbage",
			[]string{"trailing garbage"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := parseAll(t, tt.input)
			if len(lines) != len(tt.want) {
				t.Fatalf("got %d lines, want %d", len(lines), len(tt.want))
			}
			for i, line := range lines {
				if line.Text() != tt.want[i] {
					t.Errorf("line %d: Text() = %q, want %q", i, line.Text(), tt.want[i])
				}
			}
		})
	}
}

func TestLineString(t *testing.T) {
	lines := parseAll(t, "X { a: b; }")
	want := []string{
		"X { /* BLOCK_OPENING */",
		"\ta: b; /* PROPERTY */",
		"} /* BLOCK_CLOSURE */",
	}
	for i, line := range lines {
		if line.String() != want[i] {
			t.Errorf("line %d: String() = %q, want %q", i, line.String(), want[i])
		}
	}
}

func TestLineDepth(t *testing.T) {
	lines := parseAll(t, "A{B{C{d:e;}}}")

	depths := []int{0, 1, 2, 3, 2, 1, 0}
	for i, line := range lines {
		if line.Depth() != depths[i] {
			t.Errorf("line %d (%s): Depth() = %d, want %d", i, line.Kind(), line.Depth(), depths[i])
		}
	}

	// The property's parent chain walks all three open blocks.
	prop := lines[3]
	if prop.Kind() != Property {
		t.Fatalf("lines[3].Kind() = %v, want %v", prop.Kind(), Property)
	}
	n := 0
	for p := prop.Parent(); p != nil; p = p.Parent() {
		n++
	}
	if n != 3 {
		t.Errorf("parent chain length = %d, want 3", n)
	}
}

func parseAll(t *testing.T, input string) []*Line {
	t.Helper()
	p, err := New(strings.NewReader(input))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	var lines []*Line
	for {
		line, err := p.NextLine()
		if err != nil {
			return lines
		}
		lines = append(lines, line)
	}
}
