package auto

import (
	"log/slog"

	"github.com/adrianliechti/wingman-extract/pkg/source"
)

const (
	DefaultSniffSize = 3072
)

type Option func(*Extractor)

func WithResolver(resolver source.Resolver) Option {
	return func(e *Extractor) {
		e.resolver = resolver
	}
}

// WithSniffSize sets how many leading bytes the detector gets to see.
func WithSniffSize(size int) Option {
	return func(e *Extractor) {
		if size > 0 {
			e.sniff = size
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(e *Extractor) {
		e.logger = logger
	}
}
