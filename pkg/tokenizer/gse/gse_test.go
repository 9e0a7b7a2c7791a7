package gse_test

import (
	"context"
	"strings"
	"testing"

	"github.com/adrianliechti/wingman-extract/pkg/tokenizer/gse"

	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tok, err := gse.New()
	require.NoError(t, err)

	input := "此次更新，对tree-split中潜伏了n久的偏移量错误进行了修正。"

	tokens, err := tok.Tokenize(context.Background(), input)
	require.NoError(t, err)

	require.Greater(t, len(tokens), 5)
	require.Equal(t, input, strings.Join(tokens, ""))
}

func TestTokenizeDropsWhitespace(t *testing.T) {
	tok, err := gse.New()
	require.NoError(t, err)

	tokens, err := tok.Tokenize(context.Background(), "  ")
	require.NoError(t, err)
	require.Empty(t, tokens)
}
