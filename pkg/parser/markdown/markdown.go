package markdown

import (
	"context"
	"io"
	"strings"

	"github.com/adrianliechti/wingman-extract/pkg/parser"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	gtext "github.com/yuin/goldmark/text"
)

var _ parser.Provider = &Parser{}

var SupportedMimeTypes = []string{
	"text/markdown",
	"text/x-markdown",
}

// Parser renders Markdown to plain text: markup is dropped, block elements
// are separated by blank lines and code blocks are kept verbatim. The first
// level one heading is reported as title.
type Parser struct {
	md goldmark.Markdown
}

func New() *Parser {
	return &Parser{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		),
	}
}

func (p *Parser) Parse(ctx context.Context, r io.Reader, metadata *parser.Metadata, w io.Writer) error {
	source, err := io.ReadAll(r)

	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	doc := p.md.Parser().Parse(gtext.NewReader(source))

	var b strings.Builder

	err = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering {
			switch node := n.(type) {
			case *ast.Heading:
				if node.Level == 1 && metadata.Get(parser.Title) == "" {
					metadata.Set(parser.Title, strings.TrimSpace(plainText(node, source)))
				}

			case *ast.Text:
				b.Write(node.Segment.Value(source))

				if node.SoftLineBreak() || node.HardLineBreak() {
					b.WriteString("\n")
				}

			case *ast.String:
				b.Write(node.Value)

			case *ast.AutoLink:
				b.Write(node.Label(source))

			case *ast.FencedCodeBlock, *ast.CodeBlock:
				writeLines(&b, n, source)
				b.WriteString("\n")

				return ast.WalkSkipChildren, nil
			}

			return ast.WalkContinue, nil
		}

		if n.Type() == ast.TypeBlock && n.Kind() != ast.KindDocument && n.Kind() != ast.KindList && n.Kind() != ast.KindListItem {
			if n.NextSibling() != nil || n.Parent() == nil || n.Parent().Kind() == ast.KindDocument {
				b.WriteString("\n\n")
			} else {
				b.WriteString("\n")
			}
		}

		return ast.WalkContinue, nil
	})

	if err != nil {
		return err
	}

	_, err = io.WriteString(w, strings.TrimSpace(b.String()))
	return err
}

func plainText(n ast.Node, source []byte) string {
	var b strings.Builder

	ast.Walk(n, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Text:
			b.Write(node.Segment.Value(source))

		case *ast.String:
			b.Write(node.Value)
		}

		return ast.WalkContinue, nil
	})

	return b.String()
}

func writeLines(b *strings.Builder, n ast.Node, source []byte) {
	lines := n.Lines()

	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		b.Write(line.Value(source))
	}
}
