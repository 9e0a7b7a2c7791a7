package xls

import (
	"testing"

	"github.com/shakinm/xlsReader/xls/structure"

	"github.com/stretchr/testify/require"
)

type cell struct {
	s string
	f float64
	i int64
}

func (c cell) GetString() string   { return c.s }
func (c cell) GetFloat64() float64 { return c.f }
func (c cell) GetInt64() int64     { return c.i }
func (c cell) GetXFIndex() int     { return 0 }
func (c cell) GetType() string     { return "cell" }

func TestRowValues(t *testing.T) {
	row := []structure.CellData{
		cell{s: "name"},
		cell{f: 2.5},
		cell{i: 7},
		cell{},
		cell{s: "last"},
		cell{},
		cell{},
	}

	require.Equal(t, []string{"name", "2.5", "7", "", "last"}, rowValues(row))
	require.Empty(t, rowValues([]structure.CellData{cell{}, cell{}}))
}
