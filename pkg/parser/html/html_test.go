package html_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/adrianliechti/wingman-extract/pkg/parser"
	"github.com/adrianliechti/wingman-extract/pkg/parser/html"

	"github.com/stretchr/testify/require"
)

const page = `<!DOCTYPE html>
<html lang="en">
<head>
  <title> Quarterly   Report </title>
  <meta name="author" content="Jane Doe">
  <meta name="description" content="Numbers for Q1">
  <meta name="generator" content="">
  <style>body { color: red }</style>
</head>
<body>
  <h1>Summary</h1>
  <p>Revenue   grew.<br>Costs fell.</p>
  <script>console.log("hidden")</script>
  <ul><li>One</li><li>Two</li></ul>
</body>
</html>`

func TestParse(t *testing.T) {
	metadata := parser.NewMetadata()
	metadata.Set(parser.ContentType, "text/html")

	var out bytes.Buffer

	err := html.New().Parse(context.Background(), strings.NewReader(page), metadata, &out)
	require.NoError(t, err)

	require.Equal(t, "Summary\n\nRevenue grew.\nCosts fell.\n\nOne\n\nTwo", out.String())

	require.Equal(t, "Quarterly   Report", metadata.Get(parser.Title))
	require.Equal(t, "Jane Doe", metadata.Get(parser.Creator))
	require.Equal(t, "Numbers for Q1", metadata.Get(parser.Description))
	require.Equal(t, "en", metadata.Get(parser.Language))
	require.Empty(t, metadata.Values("generator"))
}

func TestParseLatin1(t *testing.T) {
	metadata := parser.NewMetadata()
	metadata.Set(parser.ContentType, "text/html; charset=iso-8859-1")

	var out bytes.Buffer

	err := html.New().Parse(context.Background(), bytes.NewReader([]byte("<p>Gr\xfcezi</p>")), metadata, &out)
	require.NoError(t, err)

	require.Equal(t, "Grüezi", out.String())
}

func TestParseRepeatedKeywords(t *testing.T) {
	doc := `<html><head>
<meta name="keywords" content="finance, report">
<meta name="keywords" content="">
<meta name="Keywords" content="q1">
</head><body><p>x</p></body></html>`

	metadata := parser.NewMetadata()

	var out bytes.Buffer

	err := html.New().Parse(context.Background(), strings.NewReader(doc), metadata, &out)
	require.NoError(t, err)

	require.Equal(t, []string{"finance, report, q1"}, metadata.Values(parser.Keywords))
}
