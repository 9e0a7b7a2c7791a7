package object

import (
	"context"
	"fmt"
	"io"
	"path"

	"github.com/adrianliechti/wingman-extract/pkg/source"

	"github.com/viant/afs"
	"github.com/viant/afs/url"
)

var _ source.Source = &Source{}

// Source reads from any storage scheme registered with afs (file, mem, s3, gs).
type Source struct {
	fs afs.Service

	url string
}

func New(fs afs.Service, url string) *Source {
	if fs == nil {
		fs = afs.New()
	}

	return &Source{
		fs: fs,

		url: url,
	}
}

func (s *Source) Name() string {
	name := path.Base(url.Path(s.url))

	if name == "." || name == "/" {
		return ""
	}

	return name
}

func (s *Source) Open(ctx context.Context) (io.ReadCloser, error) {
	ok, err := s.fs.Exists(ctx, s.url)

	if err != nil {
		return nil, fmt.Errorf("%w: %w", source.ErrStreamOpen, err)
	}

	if !ok {
		return nil, fmt.Errorf("%w: %s not found", source.ErrStreamOpen, s.url)
	}

	reader, err := s.fs.OpenURL(ctx, s.url)

	if err != nil {
		return nil, fmt.Errorf("%w: %w", source.ErrStreamOpen, err)
	}

	return reader, nil
}
