package pdf

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/adrianliechti/wingman-extract/pkg/parser"

	"github.com/ledongthuc/pdf"
)

var _ parser.Provider = &Parser{}

var SupportedMimeTypes = []string{
	"application/pdf",
}

// info maps entries of the document information dictionary to metadata names.
var info = map[string]string{
	"Title":        parser.Title,
	"Author":       parser.Creator,
	"Subject":      parser.Subject,
	"Keywords":     parser.Keywords,
	"Creator":      parser.CreatorTool,
	"Producer":     parser.Producer,
	"CreationDate": parser.Created,
	"ModDate":      parser.Modified,
}

// Parser extracts page text in page order, one line break between pages.
type Parser struct {
}

func New() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(ctx context.Context, r io.Reader, metadata *parser.Metadata, w io.Writer) (err error) {
	data, err := io.ReadAll(r)

	if err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("invalid pdf: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))

	if err != nil {
		return err
	}

	pages := reader.NumPage()

	metadata.Set(parser.Pages, strconv.Itoa(pages))

	dict := reader.Trailer().Key("Info")

	if !dict.IsNull() {
		for key, name := range info {
			if value := strings.TrimSpace(dict.Key(key).Text()); value != "" {
				metadata.Set(name, value)
			}
		}
	}

	var buf bytes.Buffer

	for i := 1; i <= pages; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		page := reader.Page(i)

		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)

		if err != nil {
			return fmt.Errorf("page %d: %w", i, err)
		}

		buf.WriteString(text)

		if i < pages {
			buf.WriteString("\n")
		}
	}

	_, err = w.Write(buf.Bytes())
	return err
}
