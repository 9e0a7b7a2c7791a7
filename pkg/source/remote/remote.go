package remote

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"

	"github.com/adrianliechti/wingman-extract/pkg/source"
)

var _ source.Source = &Source{}

type Source struct {
	client *http.Client

	url string
}

type Option func(*Source)

func WithClient(client *http.Client) Option {
	return func(s *Source) {
		s.client = client
	}
}

func New(url string, options ...Option) *Source {
	s := &Source{
		client: http.DefaultClient,

		url: url,
	}

	for _, option := range options {
		option(s)
	}

	return s
}

func (s *Source) Name() string {
	u, err := url.Parse(s.url)

	if err != nil {
		return ""
	}

	if name := path.Base(u.Path); name != "." && name != "/" {
		return name
	}

	return u.Host
}

func (s *Source) Open(ctx context.Context) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)

	if err != nil {
		return nil, fmt.Errorf("%w: %w", source.ErrStreamOpen, err)
	}

	resp, err := s.client.Do(req)

	if err != nil {
		return nil, fmt.Errorf("%w: %w", source.ErrStreamOpen, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		return nil, fmt.Errorf("%w: %w", source.ErrStreamOpen, convertError(resp))
	}

	return resp.Body, nil
}

func convertError(resp *http.Response) error {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	if len(data) == 0 {
		return errors.New(http.StatusText(resp.StatusCode))
	}

	return fmt.Errorf("%s: %s", http.StatusText(resp.StatusCode), data)
}
