package xls

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/adrianliechti/wingman-extract/pkg/parser"

	"github.com/shakinm/xlsReader/xls"
	"github.com/shakinm/xlsReader/xls/structure"
)

var _ parser.Provider = &Parser{}

var SupportedMimeTypes = []string{
	"application/vnd.ms-excel",
}

// Parser reads legacy BIFF workbooks in the same layout as the xlsx parser.
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
			err = fmt.Errorf("invalid xls: %v", r)
		}
	}()

	wb, err := xls.OpenReader(bytes.NewReader(data))

	if err != nil {
		return err
	}

	var b strings.Builder

	for i := 0; i < wb.GetNumberSheets(); i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		sheet, err := wb.GetSheet(i)

		if err != nil {
			return err
		}

		if sheet == nil {
			continue
		}

		if i > 0 {
			b.WriteString("\n")
		}

		b.WriteString(sheet.GetName())
		b.WriteString("\n")

		for _, row := range sheet.GetRows() {
			b.WriteString(strings.Join(rowValues(row.GetCols()), "\t"))
			b.WriteString("\n")
		}
	}

	_, err = io.WriteString(w, b.String())
	return err
}

func rowValues(cols []structure.CellData) []string {
	values := make([]string, 0, len(cols))

	for _, col := range cols {
		val := col.GetString()

		if val == "" {
			if num := col.GetFloat64(); num != 0 {
				val = strconv.FormatFloat(num, 'f', -1, 64)
			} else if in := col.GetInt64(); in != 0 {
				val = strconv.FormatInt(in, 10)
			}
		}

		values = append(values, val)
	}

	for len(values) > 0 && values[len(values)-1] == "" {
		values = values[:len(values)-1]
	}

	return values
}
