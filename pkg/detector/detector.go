package detector

import (
	"context"
	"errors"
	"mime"
	"strings"
)

type Provider interface {
	Detect(ctx context.Context, input Input) (string, error)
}

var (
	ErrUndetected = errors.New("content type not detected")
)

const (
	OctetStream = "application/octet-stream"
)

type Input struct {
	// Name is the resource name, used for extension based detection.
	Name string

	// Header holds the first bytes of the stream.
	Header []byte
}

// Normalize strips parameters and lowercases a media type.
func Normalize(contentType string) string {
	contentType = strings.TrimSpace(contentType)

	if contentType == "" {
		return ""
	}

	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
		return mediaType
	}

	if i := strings.IndexByte(contentType, ';'); i >= 0 {
		contentType = contentType[:i]
	}

	return strings.ToLower(strings.TrimSpace(contentType))
}
