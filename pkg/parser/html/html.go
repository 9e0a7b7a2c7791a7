package html

import (
	"context"
	"io"
	"strings"

	"github.com/adrianliechti/wingman-extract/pkg/parser"
	"github.com/adrianliechti/wingman-extract/pkg/text"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/net/html/charset"
)

var _ parser.Provider = &Parser{}

var SupportedMimeTypes = []string{
	"text/html",
	"application/xhtml+xml",
}

// Parser extracts the visible body text of an HTML document. The title and
// named meta tags are reported as metadata. Whitespace is normalized with
// text.Normalize since HTML whitespace carries no meaning.
type Parser struct {
}

func New() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(ctx context.Context, r io.Reader, metadata *parser.Metadata, w io.Writer) error {
	reader, err := charset.NewReader(r, metadata.Get(parser.ContentType))

	if err != nil {
		return err
	}

	doc, err := html.Parse(reader)

	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	collectMetadata(doc, metadata)

	root := findFirst(doc, atom.Body)

	if root == nil {
		root = doc
	}

	var b strings.Builder
	collectText(&b, root)

	_, err = io.WriteString(w, text.Normalize(b.String()))
	return err
}

func collectMetadata(doc *html.Node, metadata *parser.Metadata) {
	head := findFirst(doc, atom.Head)

	if head == nil {
		return
	}

	if title := findFirst(head, atom.Title); title != nil {
		var b strings.Builder
		collectText(&b, title)

		metadata.Set(parser.Title, strings.TrimSpace(b.String()))
	}

	for _, n := range findAll(head, atom.Meta) {

		name := attr(n, "name")

		if name == "" {
			name = attr(n, "property")
		}

		if name == "" {
			name = attr(n, "http-equiv")
		}

		value := strings.TrimSpace(attr(n, "content"))

		switch strings.ToLower(name) {
		case "":
			continue

		case "author":
			metadata.Set(parser.Creator, value)

		case "description":
			metadata.Set(parser.Description, value)

		case "keywords":
			metadata.Add(parser.Keywords, value)

		default:
			metadata.Set(name, value)
		}
	}

	// pages may repeat the keywords tag; report them as one list
	if keywords := metadata.Values(parser.Keywords); len(keywords) > 1 {
		metadata.Set(parser.Keywords, strings.Join(keywords, ", "))
	}

	if lang := attr(findFirst(doc, atom.Html), "lang"); lang != "" {
		metadata.Set(parser.Language, lang)
	}
}

func collectText(b *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
		return

	case html.ElementNode:
		switch n.DataAtom {
		case atom.Script, atom.Style, atom.Noscript, atom.Template, atom.Head:
			return

		case atom.Br:
			b.WriteString("\n")
			return
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(b, c)
	}

	if n.Type == html.ElementNode && isBlock(n.DataAtom) {
		b.WriteString("\n\n")
	}
}

func isBlock(a atom.Atom) bool {
	switch a {
	case atom.P, atom.Div, atom.Section, atom.Article, atom.Main, atom.Header, atom.Footer, atom.Nav, atom.Aside,
		atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6,
		atom.Ul, atom.Ol, atom.Li, atom.Dl, atom.Dt, atom.Dd,
		atom.Table, atom.Tr, atom.Pre, atom.Blockquote, atom.Hr, atom.Figure, atom.Figcaption:
		return true
	}

	return false
}

func findFirst(n *html.Node, a atom.Atom) *html.Node {
	if n == nil {
		return nil
	}

	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if result := findFirst(c, a); result != nil {
			return result
		}
	}

	return nil
}

func findAll(n *html.Node, a atom.Atom) []*html.Node {
	var result []*html.Node

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == a {
			result = append(result, c)
		}

		result = append(result, findAll(c, a)...)
	}

	return result
}

func attr(n *html.Node, key string) string {
	if n == nil {
		return ""
	}

	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			return a.Val
		}
	}

	return ""
}
