package extractor

import (
	"context"
	"errors"
	"maps"

	"github.com/adrianliechti/wingman-extract/pkg/parser"
	"github.com/adrianliechti/wingman-extract/pkg/source"
)

type Provider interface {
	Extract(ctx context.Context, location string) (Result, error)
}

// Contents is the result key holding the plain-text body.
const Contents = "Contents"

var (
	ErrInvalidLocation = source.ErrInvalidLocation
	ErrStreamOpen      = source.ErrStreamOpen
	ErrUnsupported     = parser.ErrUnsupported

	ErrDetection = errors.New("cannot detect content type")
	ErrParse     = errors.New("cannot parse document")
	ErrEncoding  = errors.New("text is not valid utf-8")
)

// Result maps metadata names to values. The body text is stored under Contents.
type Result map[string]string

func (r Result) Text() string {
	return r[Contents]
}

// Metadata returns a copy of the result without the body text.
func (r Result) Metadata() map[string]string {
	m := maps.Clone(map[string]string(r))
	delete(m, Contents)

	return m
}
