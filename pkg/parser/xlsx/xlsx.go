package xlsx

import (
	"context"
	"io"
	"strings"

	"github.com/adrianliechti/wingman-extract/pkg/parser"

	"github.com/xuri/excelize/v2"
)

var _ parser.Provider = &Parser{}

var SupportedMimeTypes = []string{
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	"application/vnd.ms-excel.sheet.macroenabled.12",
}

// Parser writes every sheet as its name followed by tab separated rows.
type Parser struct {
}

func New() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(ctx context.Context, r io.Reader, metadata *parser.Metadata, w io.Writer) error {
	f, err := excelize.OpenReader(r)

	if err != nil {
		return err
	}

	defer f.Close()

	if props, err := f.GetDocProps(); err == nil {
		metadata.Set(parser.Title, props.Title)
		metadata.Set(parser.Creator, props.Creator)
		metadata.Set(parser.Subject, props.Subject)
		metadata.Set(parser.Description, props.Description)
		metadata.Set(parser.Keywords, props.Keywords)
		metadata.Set(parser.LastAuthor, props.LastModifiedBy)
		metadata.Set(parser.Language, props.Language)
		metadata.Set(parser.Created, props.Created)
		metadata.Set(parser.Modified, props.Modified)
	}

	if props, err := f.GetAppProps(); err == nil {
		metadata.Set(parser.Application, props.Application)
		metadata.Set(parser.Company, props.Company)
	}

	var b strings.Builder

	for i, sheet := range f.GetSheetList() {
		if err := ctx.Err(); err != nil {
			return err
		}

		rows, err := f.GetRows(sheet)

		if err != nil {
			return err
		}

		if i > 0 {
			b.WriteString("\n")
		}

		b.WriteString(sheet)
		b.WriteString("\n")

		for _, row := range rows {
			b.WriteString(strings.Join(row, "\t"))
			b.WriteString("\n")
		}
	}

	_, err = io.WriteString(w, b.String())
	return err
}
