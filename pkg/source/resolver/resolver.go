package resolver

import (
	"fmt"
	"net/http"
	"net/url"
	"os"
	"slices"
	"strings"

	"github.com/adrianliechti/wingman-extract/pkg/source"
	"github.com/adrianliechti/wingman-extract/pkg/source/file"
	"github.com/adrianliechti/wingman-extract/pkg/source/object"
	"github.com/adrianliechti/wingman-extract/pkg/source/remote"

	"github.com/viant/afs"
)

var _ source.Resolver = &Resolver{}

// DefaultSchemes are the storage schemes handed to afs. s3 and gs only work
// once the matching afsc storage package is linked into the binary.
var DefaultSchemes = []string{
	"file",
	"mem",
	"s3",
	"gs",
}

// Resolver binds a location to an existing local file first and only then
// tries to interpret it as a URL.
type Resolver struct {
	client *http.Client

	fs      afs.Service
	schemes []string
}

type Option func(*Resolver)

func WithClient(client *http.Client) Option {
	return func(r *Resolver) {
		r.client = client
	}
}

func WithStorage(fs afs.Service) Option {
	return func(r *Resolver) {
		r.fs = fs
	}
}

func WithSchemes(schemes ...string) Option {
	return func(r *Resolver) {
		r.schemes = schemes
	}
}

func New(options ...Option) *Resolver {
	r := &Resolver{
		client: http.DefaultClient,

		schemes: DefaultSchemes,
	}

	for _, option := range options {
		option(r)
	}

	if r.fs == nil {
		r.fs = afs.New()
	}

	return r
}

func (r *Resolver) Resolve(location string) (source.Source, error) {
	if location == "" {
		return nil, fmt.Errorf("%w: empty location", source.ErrInvalidLocation)
	}

	if info, err := os.Stat(location); err == nil && info.Mode().IsRegular() {
		return file.New(location), nil
	}

	u, err := url.Parse(location)

	if err != nil {
		return nil, fmt.Errorf("%w: %w", source.ErrInvalidLocation, err)
	}

	scheme := strings.ToLower(u.Scheme)

	switch {
	case scheme == "http" || scheme == "https":
		if u.Host == "" {
			return nil, fmt.Errorf("%w: missing host in %q", source.ErrInvalidLocation, location)
		}

		return remote.New(u.String(), remote.WithClient(r.client)), nil

	case scheme != "" && slices.Contains(r.schemes, scheme):
		if u.Host == "" && u.Path == "" {
			return nil, fmt.Errorf("%w: missing path in %q", source.ErrInvalidLocation, location)
		}

		return object.New(r.fs, location), nil
	}

	return nil, fmt.Errorf("%w: %q is neither a file nor a supported url", source.ErrInvalidLocation, location)
}
