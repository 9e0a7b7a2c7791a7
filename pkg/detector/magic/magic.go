package magic

import (
	"context"

	"github.com/adrianliechti/wingman-extract/pkg/detector"

	"github.com/gabriel-vasile/mimetype"
)

var _ detector.Provider = &Detector{}

// Detector classifies the stream header by its magic bytes.
type Detector struct {
}

func New() *Detector {
	return &Detector{}
}

func (d *Detector) Detect(ctx context.Context, input detector.Input) (string, error) {
	m := mimetype.Detect(input.Header)

	contentType := detector.Normalize(m.String())

	if contentType == "" || contentType == detector.OctetStream {
		return "", detector.ErrUndetected
	}

	return contentType, nil
}
