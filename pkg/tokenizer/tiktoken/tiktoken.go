package tiktoken

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/adrianliechti/wingman-extract/pkg/tokenizer"

	"github.com/pkoukk/tiktoken-go"
)

var _ tokenizer.Provider = &Tokenizer{}

const (
	DefaultEncoding = "cl100k_base"
)

// Tokenizer splits text into BPE tokens and returns the text piece of each token.
type Tokenizer struct {
	encoding *tiktoken.Tiktoken
}

// New returns a tokenizer for a model name ("gpt-4o") or an encoding name
// ("cl100k_base"). An empty model selects DefaultEncoding; an unknown one
// is an error.
func New(model string) (*Tokenizer, error) {
	if model == "" {
		model = DefaultEncoding
	}

	encoding, err := tiktoken.EncodingForModel(model)

	if err != nil {
		encoding, err = tiktoken.GetEncoding(model)
	}

	if err != nil {
		return nil, fmt.Errorf("unknown model or encoding %q: %w", model, err)
	}

	return &Tokenizer{
		encoding: encoding,
	}, nil
}

// Tokenize returns the text piece of each token. Tokens that carry only part
// of a multi-byte character are merged with their neighbours until the piece
// is valid UTF-8, so the pieces always join back to the input.
func (t *Tokenizer) Tokenize(ctx context.Context, text string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ids := t.encoding.Encode(text, nil, nil)

	result := make([]string, 0, len(ids))

	var pending string

	for _, id := range ids {
		pending += t.encoding.Decode([]int{id})

		if utf8.ValidString(pending) {
			result = append(result, pending)
			pending = ""
		}
	}

	if pending != "" {
		result = append(result, strings.ToValidUTF8(pending, "\uFFFD"))
	}

	return result, nil
}
