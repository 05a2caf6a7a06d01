// Package parser provides a streaming, lenient lexical classifier for
// CSS-family syntax, including the sass and less supersets.
//
// The parser does not interpret selectors or property values. It splits the
// input into statements at ';', '{', and '}' and classifies each statement
// as a block opening, a property, or a block closure, tracking the chain of
// open blocks so every line knows its enclosing block. Comments are
// skipped. Malformed input never fails the parse: a property before '}'
// with a forgotten ';' is accepted (the block closure is synthesized on the
// following call), an unmatched '}' closes nothing, and undelimited text at
// the end of the stream comes back as a line of kind Unknown.
//
// Typical use drives NextLine until io.EOF:
//
//	p, err := parser.New(r)
//	if err != nil {
//		return err
//	}
//	for {
//		line, err := p.NextLine()
//		if err == io.EOF {
//			break
//		}
//		if err != nil {
//			return err
//		}
//		fmt.Println(line.Text())
//	}
//
// A Parser is single-pass and not safe for concurrent use. Create one per
// stream.
package parser
