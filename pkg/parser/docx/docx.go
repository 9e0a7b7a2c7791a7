package docx

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"io"
	"strings"

	"github.com/adrianliechti/wingman-extract/pkg/parser"

	"github.com/nguyenthenguyen/docx"
)

var _ parser.Provider = &Parser{}

var SupportedMimeTypes = []string{
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// Parser unpacks the main document part and writes one line per paragraph.
type Parser struct {
}

func New() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(ctx context.Context, r io.Reader, metadata *parser.Metadata, w io.Writer) error {
	data, err := io.ReadAll(r)

	if err != nil {
		return err
	}

	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))

	if err != nil {
		return err
	}

	defer doc.Close()

	if err := ctx.Err(); err != nil {
		return err
	}

	text, err := documentText(doc.Editable().GetContent())

	if err != nil {
		return err
	}

	_, err = io.WriteString(w, text)
	return err
}

// documentText walks WordprocessingML: w:t runs hold text, w:p ends a
// paragraph, w:tab and w:br map to tab and line break.
func documentText(content string) (string, error) {
	decoder := xml.NewDecoder(strings.NewReader(content))

	var b strings.Builder
	var inText bool

	for {
		token, err := decoder.Token()

		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return "", err
		}

		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true

			case "tab":
				b.WriteString("\t")

			case "br", "cr":
				b.WriteString("\n")
			}

		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false

			case "p":
				b.WriteString("\n")
			}

		case xml.CharData:
			if inText {
				b.Write(t)
			}
		}
	}

	return strings.TrimRight(b.String(), "\n"), nil
}
