package tika_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/adrianliechti/wingman-extract/pkg/parser"
	"github.com/adrianliechti/wingman-extract/pkg/parser/tika"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestParse(t *testing.T) {
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()

	server, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		Started: true,

		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "apache/tika:3.1.0.0",
			ExposedPorts: []string{"9998/tcp"},
			WaitingFor:   wait.ForHTTP("/version").WithPort("9998/tcp"),
		},
	})

	require.NoError(t, err)
	testcontainers.CleanupContainer(t, server)

	url, err := server.Endpoint(ctx, "http")
	require.NoError(t, err)

	p, err := tika.New(url)
	require.NoError(t, err)

	metadata := parser.NewMetadata()

	var out bytes.Buffer

	err = p.Parse(ctx, strings.NewReader("<html><head><title>Tika</title></head><body><p>hello   world</p></body></html>"), metadata, &out)
	require.NoError(t, err)

	require.Contains(t, out.String(), "hello world")
	require.Equal(t, "Tika", metadata.Get(parser.Title))
	require.NotEmpty(t, metadata.Get(parser.ContentType))
}

func TestNewInvalid(t *testing.T) {
	_, err := tika.New("")
	require.Error(t, err)
}
