package gse

import (
	"context"
	"strings"

	"github.com/adrianliechti/wingman-extract/pkg/tokenizer"

	"github.com/go-ego/gse"
)

var _ tokenizer.Provider = &Tokenizer{}

// Tokenizer segments Chinese (and mixed) text into words using the gse
// dictionary segmenter. Whitespace-only pieces are dropped; order is kept.
type Tokenizer struct {
	seg gse.Segmenter

	dicts []string
	hmm   bool
}

type Option func(*Tokenizer)

// WithDictionary loads the given dictionary files instead of the embedded default.
func WithDictionary(files ...string) Option {
	return func(t *Tokenizer) {
		t.dicts = files
	}
}

// WithHMM enables hidden markov model recognition of out-of-vocabulary words.
func WithHMM(enabled bool) Option {
	return func(t *Tokenizer) {
		t.hmm = enabled
	}
}

func New(options ...Option) (*Tokenizer, error) {
	t := &Tokenizer{
		hmm: true,
	}

	for _, option := range options {
		option(t)
	}

	seg, err := gse.New(t.dicts...)

	if err != nil {
		return nil, err
	}

	t.seg = seg

	return t, nil
}

func (t *Tokenizer) Tokenize(ctx context.Context, text string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var result []string

	for _, token := range t.seg.Cut(text, t.hmm) {
		if strings.TrimSpace(token) == "" {
			continue
		}

		result = append(result, token)
	}

	return result, nil
}
