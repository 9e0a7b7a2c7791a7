package text

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"unicode"

	"github.com/adrianliechti/wingman-extract/pkg/parser"

	xunicode "golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var _ parser.Provider = &Parser{}

var (
	ErrBinary = errors.New("binary content")
)

// Parser copies plain text through. UTF-16 input with a byte order mark is
// transcoded to UTF-8; everything else is passed on byte for byte, so invalid
// UTF-8 surfaces as an encoding error in the caller.
type Parser struct {
}

func New() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(ctx context.Context, r io.Reader, metadata *parser.Metadata, w io.Writer) error {
	br := bufio.NewReader(r)

	bom, _ := br.Peek(3)

	var reader io.Reader = br

	switch {
	case bytes.HasPrefix(bom, []byte{0xEF, 0xBB, 0xBF}):
		br.Discard(3)
		metadata.Set(parser.ContentEncoding, "UTF-8")

	case bytes.HasPrefix(bom, []byte{0xFF, 0xFE}):
		reader = transform.NewReader(br, xunicode.UTF16(xunicode.LittleEndian, xunicode.ExpectBOM).NewDecoder())
		metadata.Set(parser.ContentEncoding, "UTF-16LE")

	case bytes.HasPrefix(bom, []byte{0xFE, 0xFF}):
		reader = transform.NewReader(br, xunicode.UTF16(xunicode.BigEndian, xunicode.ExpectBOM).NewDecoder())
		metadata.Set(parser.ContentEncoding, "UTF-16BE")

	default:
		head, _ := br.Peek(512)

		if !detectText(head) {
			return ErrBinary
		}

		metadata.Set(parser.ContentEncoding, "UTF-8")
	}

	_, err := io.Copy(w, &contextReader{ctx: ctx, reader: reader})
	return err
}

func detectText(data []byte) bool {
	var printableCount int

	for _, b := range data {
		if b == 0 {
			return false
		}

		if unicode.IsPrint(rune(b)) || b == '\n' || b == '\r' || b == '\t' || b >= 0x80 {
			printableCount++
		}
	}

	return printableCount >= (len(data) * 90 / 100)
}

type contextReader struct {
	ctx    context.Context
	reader io.Reader
}

func (r *contextReader) Read(p []byte) (int, error) {
	if err := r.ctx.Err(); err != nil {
		return 0, err
	}

	return r.reader.Read(p)
}
