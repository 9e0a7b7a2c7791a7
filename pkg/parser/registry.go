package parser

import (
	"fmt"
	"slices"
	"strings"

	"github.com/adrianliechti/wingman-extract/pkg/detector"
)

const (
	Any = "*/*"
)

// Registry maps content types to parsers. Register everything before the
// registry is shared; lookups are read-only and safe for concurrent use.
type Registry struct {
	types   []string
	parsers map[string]Provider
}

func NewRegistry() *Registry {
	return &Registry{
		parsers: make(map[string]Provider),
	}
}

// Register binds p to the given content types. Types may be exact
// ("application/pdf"), a family ("text/*") or Any. The first registration
// of a type wins.
func (r *Registry) Register(p Provider, types ...string) {
	for _, t := range types {
		t = strings.ToLower(strings.TrimSpace(t))

		if t == "" {
			continue
		}

		if _, ok := r.parsers[t]; ok {
			continue
		}

		r.types = append(r.types, t)
		r.parsers[t] = p
	}
}

func (r *Registry) Lookup(contentType string) (Provider, error) {
	contentType = detector.Normalize(contentType)

	if contentType != "" {
		if p, ok := r.parsers[contentType]; ok {
			return p, nil
		}

		if family, _, ok := strings.Cut(contentType, "/"); ok {
			if p, ok := r.parsers[family+"/*"]; ok {
				return p, nil
			}
		}
	}

	if p, ok := r.parsers[Any]; ok {
		return p, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrUnsupported, contentType)
}

func (r *Registry) Types() []string {
	return slices.Clone(r.types)
}
