// Package goldmark extracts plain text from markdown using the goldmark
// CommonMark parser.
package goldmark

import (
	"strings"

	"github.com/fwojciec/doctldr"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Ensure Extractor implements doctldr.Extractor at compile time.
var _ doctldr.Extractor = (*Extractor)(nil)

// Extractor flattens markdown into unstyled text. Only literal text
// runs and code are kept; soft and hard line breaks become newlines;
// headings, emphasis markers, links, images and block structure are
// discarded.
type Extractor struct {
	md goldmark.Markdown
}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{md: goldmark.New()}
}

// Extract parses markdown and concatenates its text content.
func (e *Extractor) Extract(input string) (string, error) {
	src := []byte(input)
	doc := e.md.Parser().Parse(text.NewReader(src))

	var b strings.Builder
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n := n.(type) {
		case *ast.Text:
			b.Write(n.Segment.Value(src))
			if n.SoftLineBreak() || n.HardLineBreak() {
				b.WriteByte('\n')
			}
		case *ast.String:
			b.Write(n.Value)
		case *ast.CodeBlock:
			writeLines(&b, n.Lines(), src)
		case *ast.FencedCodeBlock:
			writeLines(&b, n.Lines(), src)
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return "", err
	}

	return b.String(), nil
}

// writeLines appends the raw source lines of a code block.
func writeLines(b *strings.Builder, lines *text.Segments, src []byte) {
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(src))
	}
}
