package multi

import (
	"context"
	"errors"
	"strings"

	"github.com/adrianliechti/wingman-extract/pkg/detector"
)

var _ detector.Provider = &Detector{}

// Detector runs detectors in priority order. The first specific answer wins;
// a generic container answer (plain text, zip, ole) is kept as fallback while
// later detectors get a chance to name a compatible, more specific type.
// When nothing matches, detector failures are joined to ErrUndetected.
type Detector struct {
	providers []detector.Provider
}

func New(provider ...detector.Provider) *Detector {
	return &Detector{
		providers: provider,
	}
}

func (d *Detector) Detect(ctx context.Context, input detector.Input) (string, error) {
	var fallback string
	var errs []error

	for _, p := range d.providers {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		result, err := p.Detect(ctx, input)

		if err != nil {
			if !errors.Is(err, detector.ErrUndetected) {
				errs = append(errs, err)
			}

			continue
		}

		if result == "" {
			continue
		}

		result = detector.Normalize(result)

		if fallback != "" {
			if refines(fallback, result) {
				return result, nil
			}

			continue
		}

		if _, ok := generic[result]; !ok {
			return result, nil
		}

		fallback = result
	}

	if fallback != "" {
		return fallback, nil
	}

	return "", errors.Join(append([]error{detector.ErrUndetected}, errs...)...)
}

var generic = map[string][]string{
	"text/plain": {
		"text/",
		"application/json",
		"application/xml",
		"application/yaml",
	},

	"application/zip": {
		"application/vnd.openxmlformats-officedocument.",
		"application/vnd.oasis.opendocument.",
		"application/epub+zip",
	},

	"application/x-ole-storage": {
		"application/msword",
		"application/vnd.ms-",
	},

	"application/xml": {
		"text/xml",
		"application/xhtml+xml",
	},
}

func refines(fallback, candidate string) bool {
	if candidate == fallback {
		return false
	}

	for _, prefix := range generic[fallback] {
		if strings.HasPrefix(candidate, prefix) {
			return true
		}
	}

	return false
}
