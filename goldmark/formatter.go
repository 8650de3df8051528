// Package goldmark reduces markdown method summaries to plain text for the
// search index. The site never renders markup into the index; summaries are
// normalized to their visible text instead.
package goldmark

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/awalczuk/docsite"
)

// Ensure Formatter implements docsite.SummaryFormatter at compile time.
var _ docsite.SummaryFormatter = (*Formatter)(nil)

// Formatter flattens markdown using the goldmark AST.
type Formatter struct {
	md goldmark.Markdown
}

// NewFormatter creates a new Formatter.
func NewFormatter() *Formatter {
	return &Formatter{md: goldmark.New()}
}

// Flatten parses summary as markdown and returns its text content with
// whitespace collapsed. Inline markup, links, and code spans reduce to
// their visible text; code block content is kept as-is.
func (f *Formatter) Flatten(summary string) string {
	src := []byte(summary)
	doc := f.md.Parser().Parse(text.NewReader(src))

	var buf bytes.Buffer
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			if n.Type() == ast.TypeBlock {
				buf.WriteByte(' ')
			}
			return ast.WalkContinue, nil
		}
		switch t := n.(type) {
		case *ast.Text:
			buf.Write(t.Segment.Value(src))
			if t.SoftLineBreak() || t.HardLineBreak() {
				buf.WriteByte(' ')
			}
		case *ast.AutoLink:
			buf.Write(t.URL(src))
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			// Code block content is stored in line segments, not Text nodes.
			lines := n.Lines()
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				buf.Write(seg.Value(src))
				buf.WriteByte(' ')
			}
		}
		return ast.WalkContinue, nil
	})

	return strings.Join(strings.Fields(buf.String()), " ")
}
