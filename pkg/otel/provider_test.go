package otel_test

import (
	"context"
	"errors"
	"testing"

	"github.com/adrianliechti/wingman-extract/pkg/extractor"
	"github.com/adrianliechti/wingman-extract/pkg/otel"

	"github.com/stretchr/testify/require"
)

type staticExtractor struct {
	result extractor.Result
	err    error
}

func (e staticExtractor) Extract(ctx context.Context, location string) (extractor.Result, error) {
	return e.result, e.err
}

type staticTokenizer []string

func (t staticTokenizer) Tokenize(ctx context.Context, text string) ([]string, error) {
	return t, nil
}

func TestExtractorPassesThrough(t *testing.T) {
	want := extractor.Result{extractor.Contents: "hello"}

	result, err := otel.NewExtractor("test", staticExtractor{result: want}).Extract(context.Background(), "a.txt")
	require.NoError(t, err)
	require.Equal(t, want, result)

	_, err = otel.NewExtractor("test", staticExtractor{err: extractor.ErrParse}).Extract(context.Background(), "a.txt")
	require.True(t, errors.Is(err, extractor.ErrParse))
}

func TestTokenizerPassesThrough(t *testing.T) {
	tokens, err := otel.NewTokenizer("static", "default", staticTokenizer{"a", "b"}).Tokenize(context.Background(), "ab")
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, tokens)
}
