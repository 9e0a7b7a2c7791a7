package xlsx_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/adrianliechti/wingman-extract/pkg/parser"
	"github.com/adrianliechti/wingman-extract/pkg/parser/xlsx"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestParse(t *testing.T) {
	f := excelize.NewFile()

	require.NoError(t, f.SetCellValue("Sheet1", "A1", "Item"))
	require.NoError(t, f.SetCellValue("Sheet1", "B1", "Amount"))
	require.NoError(t, f.SetCellValue("Sheet1", "A2", "Coffee"))
	require.NoError(t, f.SetCellValue("Sheet1", "B2", 42))

	_, err := f.NewSheet("Notes")
	require.NoError(t, err)
	require.NoError(t, f.SetCellValue("Notes", "A1", "approved"))

	require.NoError(t, f.SetDocProps(&excelize.DocProperties{
		Title:   "Budget",
		Creator: "Jane Doe",
	}))

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	metadata := parser.NewMetadata()

	var out bytes.Buffer

	err = xlsx.New().Parse(context.Background(), bytes.NewReader(buf.Bytes()), metadata, &out)
	require.NoError(t, err)

	require.Equal(t, "Sheet1\nItem\tAmount\nCoffee\t42\n\nNotes\napproved\n", out.String())
	require.Equal(t, "Budget", metadata.Get(parser.Title))
	require.Equal(t, "Jane Doe", metadata.Get(parser.Creator))
}

func TestParseInvalid(t *testing.T) {
	var out bytes.Buffer

	err := xlsx.New().Parse(context.Background(), bytes.NewReader([]byte("not a workbook")), parser.NewMetadata(), &out)
	require.Error(t, err)
}
