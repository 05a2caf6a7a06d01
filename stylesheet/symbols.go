package stylesheet

import (
	"github.com/dhamidi/cssline/parser"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

type symbolNode struct {
	symbol   protocol.DocumentSymbol
	children []*symbolNode
}

// documentSymbols maps the block structure of a document to a nested symbol
// tree: one symbol per block, named by the opening declaration. Blocks left
// unclosed at the end of the document extend to the last parsed line.
func documentSymbols(doc *Document) []protocol.DocumentSymbol {
	var roots []*symbolNode
	var stack []*symbolNode

	attach := func(node *symbolNode) {
		if len(stack) > 0 {
			top := stack[len(stack)-1]
			top.children = append(top.children, node)
		} else {
			roots = append(roots, node)
		}
	}

	for _, line := range doc.Lines {
		switch line.Kind() {
		case parser.BlockOpening:
			name := line.Declaration()
			if name == "" {
				name = "{}"
			}
			span := protoRange(line.Span())
			stack = append(stack, &symbolNode{
				symbol: protocol.DocumentSymbol{
					Name:           name,
					Kind:           protocol.SymbolKindClass,
					Range:          span,
					SelectionRange: span,
				},
			})
		case parser.BlockClosure:
			if len(stack) == 0 {
				continue
			}
			node := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			node.symbol.Range.End = protoPosition(line.Span().End)
			attach(node)
		}
	}

	// Unclosed blocks extend to the end of the document.
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n := len(doc.Lines); n > 0 {
			node.symbol.Range.End = protoPosition(doc.Lines[n-1].Span().End)
		}
		attach(node)
	}

	return buildSymbols(roots)
}

func buildSymbols(nodes []*symbolNode) []protocol.DocumentSymbol {
	symbols := make([]protocol.DocumentSymbol, len(nodes))
	for i, node := range nodes {
		symbol := node.symbol
		symbol.Children = buildSymbols(node.children)
		symbols[i] = symbol
	}
	return symbols
}

// foldingRanges reports one folding range per block whose closure sits on a
// later line than its opening. Unclosed blocks are not folded.
func foldingRanges(doc *Document) []protocol.FoldingRange {
	var ranges []protocol.FoldingRange
	var stack []*parser.Line

	for _, line := range doc.Lines {
		switch line.Kind() {
		case parser.BlockOpening:
			stack = append(stack, line)
		case parser.BlockClosure:
			if len(stack) == 0 {
				continue
			}
			open := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			startLine := open.Span().Start.Line
			endLine := line.Span().End.Line
			if endLine > startLine {
				ranges = append(ranges, protocol.FoldingRange{
					StartLine: protocol.UInteger(startLine - 1),
					EndLine:   protocol.UInteger(endLine - 1),
				})
			}
		}
	}
	return ranges
}

func protoRange(span parser.Span) protocol.Range {
	return protocol.Range{
		Start: protoPosition(span.Start),
		End:   protoPosition(span.End),
	}
}

func protoPosition(pos parser.Position) protocol.Position {
	line, col := pos.Line-1, pos.Column-1
	if line < 0 {
		line = 0
	}
	if col < 0 {
		col = 0
	}
	return protocol.Position{
		Line:      protocol.UInteger(line),
		Character: protocol.UInteger(col),
	}
}
