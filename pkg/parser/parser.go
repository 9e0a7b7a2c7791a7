package parser

import (
	"context"
	"errors"
	"io"
)

// Provider consumes a document stream, reporting metadata into the sink and
// writing the plain-text body to w in reading order.
type Provider interface {
	Parse(ctx context.Context, r io.Reader, metadata *Metadata, w io.Writer) error
}

var (
	ErrUnsupported = errors.New("unsupported type")
)

// Well known metadata names, spelled the way Tika reports them.
const (
	ContentType     = "Content-Type"
	ContentEncoding = "Content-Encoding"
	ResourceName    = "resourceName"

	Title       = "dc:title"
	Creator     = "dc:creator"
	Subject     = "dc:subject"
	Description = "dc:description"
	Language    = "dc:language"
	Keywords    = "meta:keyword"
	LastAuthor  = "meta:last-author"
	Created     = "dcterms:created"
	Modified    = "dcterms:modified"
	Application = "extended-properties:Application"
	Company     = "extended-properties:Company"
	Pages       = "xmpTPg:NPages"
	Producer    = "pdf:producer"
	CreatorTool = "xmp:CreatorTool"
)
