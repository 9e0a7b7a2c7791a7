package file

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/adrianliechti/wingman-extract/pkg/source"
)

var _ source.Source = &Source{}

type Source struct {
	path string
}

func New(path string) *Source {
	return &Source{
		path: path,
	}
}

func (s *Source) Name() string {
	return filepath.Base(s.path)
}

func (s *Source) Open(ctx context.Context) (io.ReadCloser, error) {
	f, err := os.Open(s.path)

	if err != nil {
		return nil, fmt.Errorf("%w: %w", source.ErrStreamOpen, err)
	}

	return f, nil
}
