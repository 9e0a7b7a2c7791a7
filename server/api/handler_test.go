package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrianliechti/wingman-extract/config"
	"github.com/adrianliechti/wingman-extract/pkg/extractor"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()

	cfg, err := config.Default()
	require.NoError(t, err)

	h, err := New(cfg)
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Route("/v1", h.Attach)

	s := httptest.NewServer(r)
	t.Cleanup(s.Close)

	return s
}

func decodeResult(t *testing.T, resp *http.Response) map[string]string {
	t.Helper()

	var result map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))

	return result
}

func TestExtractUpload(t *testing.T) {
	s := newServer(t)

	var body bytes.Buffer

	mw := multipart.NewWriter(&body)

	fw, err := mw.CreateFormFile("file", "notes.txt")
	require.NoError(t, err)

	fw.Write([]byte("hello world"))
	require.NoError(t, mw.Close())

	resp, err := http.Post(s.URL+"/v1/extract", mw.FormDataContentType(), &body)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	result := decodeResult(t, resp)
	require.Equal(t, "hello world", result[extractor.Contents])
	require.Equal(t, "notes.txt", result["resourceName"])
}

func TestExtractRawBody(t *testing.T) {
	s := newServer(t)

	req, err := http.NewRequest(http.MethodPost, s.URL+"/v1/extract", strings.NewReader("# Heading\n\nSome text.\n"))
	require.NoError(t, err)

	req.Header.Set("Content-Type", "application/octet-stream")
	req.Header.Set("Content-Disposition", `attachment; filename="readme.md"`)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	result := decodeResult(t, resp)
	require.Equal(t, "Heading", result["dc:title"])
	require.Contains(t, result[extractor.Contents], "Some text.")
}

func TestExtractURL(t *testing.T) {
	origin := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("remote text"))
	}))
	defer origin.Close()

	s := newServer(t)

	resp, err := http.PostForm(s.URL+"/v1/extract", url.Values{"url": {origin.URL + "/doc.txt"}})
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	result := decodeResult(t, resp)
	require.Equal(t, "remote text", result[extractor.Contents])
}

func TestExtractErrors(t *testing.T) {
	origin := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer origin.Close()

	local := filepath.Join(t.TempDir(), "secret.txt")
	require.NoError(t, os.WriteFile(local, []byte("secret"), 0o644))

	s := newServer(t)

	tests := []struct {
		name   string
		values url.Values
		status int
	}{
		{"local path", url.Values{"url": {local}}, http.StatusBadRequest},
		{"file url", url.Values{"url": {"file://" + local}}, http.StatusBadRequest},
		{"not a url", url.Values{"url": {"not a url"}}, http.StatusBadRequest},
		{"missing input", url.Values{"other": {"x"}}, http.StatusBadRequest},
		{"not found", url.Values{"url": {origin.URL + "/missing.txt"}}, http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.PostForm(s.URL+"/v1/extract", tt.values)
			require.NoError(t, err)
			defer resp.Body.Close()

			require.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

func TestExtractUnsupported(t *testing.T) {
	s := newServer(t)

	req, err := http.NewRequest(http.MethodPost, s.URL+"/v1/extract", bytes.NewReader([]byte{0x01, 0x02, 0x00, 0x00, 0x7f, 0x00, 0x03, 0x04}))
	require.NoError(t, err)

	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusUnsupportedMediaType, resp.StatusCode)
}

func TestTokenizeMissingModel(t *testing.T) {
	s := newServer(t)

	resp, err := http.PostForm(s.URL+"/v1/tokenize", url.Values{"text": {"hello"}, "model": {"missing"}})
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestErrorStatus(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{extractor.ErrInvalidLocation, http.StatusBadRequest},
		{extractor.ErrStreamOpen, http.StatusBadGateway},
		{extractor.ErrDetection, http.StatusUnsupportedMediaType},
		{extractor.ErrUnsupported, http.StatusUnsupportedMediaType},
		{extractor.ErrParse, http.StatusUnprocessableEntity},
		{extractor.ErrEncoding, http.StatusUnprocessableEntity},
		{os.ErrClosed, http.StatusInternalServerError},
		{fmt.Errorf("%w: %w", extractor.ErrDetection, &url.Error{Op: "Put", URL: "http://tika:9998/detect/stream", Err: errors.New("connection refused")}), http.StatusBadGateway},
	}

	for _, tt := range tests {
		require.Equal(t, tt.status, errorStatus(tt.err), tt.err.Error())
	}
}

type spaceTokenizer struct{}

func (spaceTokenizer) Tokenize(ctx context.Context, text string) ([]string, error) {
	return strings.Fields(text), nil
}

func TestTokenize(t *testing.T) {
	cfg, err := config.Default()
	require.NoError(t, err)

	cfg.RegisterTokenizer("space", spaceTokenizer{})

	h, err := New(cfg)
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Route("/v1", h.Attach)

	s := httptest.NewServer(r)
	defer s.Close()

	resp, err := http.PostForm(s.URL+"/v1/tokenize", url.Values{"text": {"split these words"}, "model": {"space"}})
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var tokens []string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&tokens))
	require.Equal(t, []string{"split", "these", "words"}, tokens)
}
