package tokenizer

import (
	"context"
)

type Provider interface {
	Tokenize(ctx context.Context, text string) ([]string, error)
}
