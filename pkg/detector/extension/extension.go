package extension

import (
	"context"
	"mime"
	"path"
	"strings"

	"github.com/adrianliechti/wingman-extract/pkg/detector"
)

var _ detector.Provider = &Detector{}

// Detector classifies by the extension of the resource name and ignores the header.
type Detector struct {
}

func New() *Detector {
	return &Detector{}
}

func (d *Detector) Detect(ctx context.Context, input detector.Input) (string, error) {
	ext := strings.ToLower(path.Ext(input.Name))

	if ext == "" {
		return "", detector.ErrUndetected
	}

	if contentType, ok := Types[ext]; ok {
		return contentType, nil
	}

	if contentType := detector.Normalize(mime.TypeByExtension(ext)); contentType != "" {
		return contentType, nil
	}

	return "", detector.ErrUndetected
}
