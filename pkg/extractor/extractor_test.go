package extractor_test

import (
	"testing"

	"github.com/adrianliechti/wingman-extract/pkg/extractor"

	"github.com/stretchr/testify/require"
)

func TestResult(t *testing.T) {
	r := extractor.Result{
		extractor.Contents: "body",
		"dc:title":         "Title",
	}

	require.Equal(t, "body", r.Text())
	require.Equal(t, map[string]string{"dc:title": "Title"}, r.Metadata())
	require.Contains(t, r, extractor.Contents)
}
