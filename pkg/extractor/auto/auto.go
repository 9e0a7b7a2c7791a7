package auto

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"unicode/utf8"

	"github.com/adrianliechti/wingman-extract/pkg/detector"
	"github.com/adrianliechti/wingman-extract/pkg/extractor"
	"github.com/adrianliechti/wingman-extract/pkg/parser"
	"github.com/adrianliechti/wingman-extract/pkg/source"
	"github.com/adrianliechti/wingman-extract/pkg/source/resolver"
)

var _ extractor.Provider = &Extractor{}

// Extractor resolves a location, detects its content type, hands the stream
// to the matching parser and returns metadata plus body text. It holds no
// per-call state and is safe for concurrent use.
type Extractor struct {
	resolver source.Resolver

	detector detector.Provider
	parsers  *parser.Registry

	sniff  int
	logger *slog.Logger
}

func New(detector detector.Provider, parsers *parser.Registry, options ...Option) (*Extractor, error) {
	if detector == nil {
		return nil, errors.New("missing detector")
	}

	if parsers == nil {
		return nil, errors.New("missing parsers")
	}

	e := &Extractor{
		detector: detector,
		parsers:  parsers,

		sniff: DefaultSniffSize,
	}

	for _, option := range options {
		option(e)
	}

	if e.resolver == nil {
		e.resolver = resolver.New()
	}

	if e.logger == nil {
		e.logger = slog.Default()
	}

	return e, nil
}

func (e *Extractor) Extract(ctx context.Context, location string) (extractor.Result, error) {
	src, err := e.resolver.Resolve(location)

	if err != nil {
		return nil, wrap(extractor.ErrInvalidLocation, err)
	}

	stream, err := src.Open(ctx)

	if err != nil {
		return nil, wrap(extractor.ErrStreamOpen, err)
	}

	defer stream.Close()

	reader := bufio.NewReaderSize(stream, e.sniff)

	header, err := reader.Peek(e.sniff)

	if err != nil && !errors.Is(err, io.EOF) {
		return nil, wrap(extractor.ErrStreamOpen, err)
	}

	contentType, err := e.detector.Detect(ctx, detector.Input{
		Name:   src.Name(),
		Header: header,
	})

	if err != nil {
		return nil, wrap(extractor.ErrDetection, err)
	}

	contentType = detector.Normalize(contentType)

	p, err := e.parsers.Lookup(contentType)

	if err != nil {
		return nil, err
	}

	metadata := parser.NewMetadata()
	metadata.Set(parser.ResourceName, src.Name())
	metadata.Set(parser.ContentType, contentType)

	var body bytes.Buffer

	if err := p.Parse(ctx, reader, metadata, &body); err != nil {
		return nil, wrap(extractor.ErrParse, err)
	}

	if !utf8.Valid(body.Bytes()) {
		return nil, fmt.Errorf("%w: %s", extractor.ErrEncoding, location)
	}

	result := make(extractor.Result, metadata.Len()+1)

	for _, name := range metadata.Names() {
		if value := metadata.Get(name); value != "" {
			result[name] = value
		}
	}

	result[extractor.Contents] = body.String()

	e.logger.DebugContext(ctx, "document extracted", "location", location, "type", contentType, "size", body.Len(), "fields", len(result)-1)

	return result, nil
}

func wrap(kind, err error) error {
	if errors.Is(err, kind) {
		return err
	}

	return fmt.Errorf("%w: %w", kind, err)
}
