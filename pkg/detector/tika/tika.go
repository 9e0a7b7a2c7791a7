package tika

import (
	"bytes"
	"context"
	"errors"
	"net/http"

	"github.com/adrianliechti/wingman-extract/pkg/detector"

	"github.com/google/go-tika/tika"
)

var _ detector.Provider = &Detector{}

// Detector asks a Tika server to classify the stream header.
type Detector struct {
	client *http.Client

	url  string
	tika *tika.Client
}

type Option func(*Detector)

func WithClient(client *http.Client) Option {
	return func(d *Detector) {
		d.client = client
	}
}

func New(url string, options ...Option) (*Detector, error) {
	if url == "" {
		return nil, errors.New("invalid url")
	}

	d := &Detector{
		client: http.DefaultClient,

		url: url,
	}

	for _, option := range options {
		option(d)
	}

	d.tika = tika.NewClient(d.client, d.url)

	return d, nil
}

func (d *Detector) Detect(ctx context.Context, input detector.Input) (string, error) {
	if len(input.Header) == 0 {
		return "", detector.ErrUndetected
	}

	result, err := d.tika.Detect(ctx, bytes.NewReader(input.Header))

	if err != nil {
		return "", err
	}

	contentType := detector.Normalize(result)

	if contentType == "" || contentType == detector.OctetStream {
		return "", detector.ErrUndetected
	}

	return contentType, nil
}
