package source

import (
	"context"
	"errors"
	"io"
)

type Source interface {
	// Name is the resource name of the location, usually the base name of its path.
	Name() string

	Open(ctx context.Context) (io.ReadCloser, error)
}

type Resolver interface {
	Resolve(location string) (Source, error)
}

var (
	ErrInvalidLocation = errors.New("invalid location")
	ErrStreamOpen      = errors.New("cannot open stream")
)
