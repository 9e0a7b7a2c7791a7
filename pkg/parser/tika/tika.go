package tika

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/adrianliechti/wingman-extract/pkg/parser"
	"github.com/adrianliechti/wingman-extract/pkg/text"

	"github.com/google/go-tika/tika"
)

var _ parser.Provider = &Parser{}

const (
	contentKey = "X-TIKA:content"
)

// Parser delegates to a Tika server. Metadata comes from the container
// document, body text from the container and every embedded part in order.
// Body text is passed through text.Normalize.
type Parser struct {
	client *http.Client

	url  string
	tika *tika.Client
}

func New(url string, options ...Option) (*Parser, error) {
	if url == "" {
		return nil, errors.New("invalid url")
	}

	p := &Parser{
		client: http.DefaultClient,

		url: url,
	}

	for _, option := range options {
		option(p)
	}

	p.tika = tika.NewClient(p.client, p.url)

	return p, nil
}

func (p *Parser) Parse(ctx context.Context, r io.Reader, metadata *parser.Metadata, w io.Writer) error {
	parts, err := p.tika.MetaRecursive(ctx, r)

	if err != nil {
		return err
	}

	if len(parts) == 0 {
		return errors.New("empty tika response")
	}

	for name, values := range parts[0] {
		if strings.HasPrefix(name, "X-TIKA:") || strings.HasPrefix(name, "X-TIKA-") {
			continue
		}

		metadata.Set(name, values...)
	}

	var sections []string

	for _, part := range parts {
		for _, content := range part[contentKey] {
			if content = text.Normalize(content); content != "" {
				sections = append(sections, content)
			}
		}
	}

	_, err = io.WriteString(w, strings.Join(sections, "\n\n"))
	return err
}
