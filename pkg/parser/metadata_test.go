package parser_test

import (
	"testing"

	"github.com/adrianliechti/wingman-extract/pkg/parser"

	"github.com/stretchr/testify/require"
)

func TestMetadata(t *testing.T) {
	m := parser.NewMetadata()

	m.Set(parser.Title, "Draft")
	m.Add(parser.Creator, "Alice")
	m.Add(parser.Creator, "Bob")
	m.Add(parser.Keywords, "")
	m.Set(parser.Title, "Final")

	require.Equal(t, []string{parser.Title, parser.Creator}, m.Names())
	require.Equal(t, "Final", m.Get(parser.Title))
	require.Equal(t, "Alice", m.Get(parser.Creator))
	require.Equal(t, []string{"Alice", "Bob"}, m.Values(parser.Creator))
	require.Equal(t, "", m.Get(parser.Keywords))
}

func TestMetadataRemove(t *testing.T) {
	m := parser.NewMetadata()

	m.Set("a", "1")
	m.Set("b", "2")
	m.Set("a")

	require.Equal(t, []string{"b"}, m.Names())
	require.Equal(t, 1, m.Len())

	m.Set("c", "", "")
	require.Equal(t, 1, m.Len())
}
