package limiter

import (
	"context"

	"github.com/adrianliechti/wingman-extract/pkg/tokenizer"

	"golang.org/x/time/rate"
)

type Tokenizer interface {
	Limiter
	tokenizer.Provider
}

type limitedTokenizer struct {
	limiter  *rate.Limiter
	provider tokenizer.Provider
}

func NewTokenizer(l *rate.Limiter, p tokenizer.Provider) Tokenizer {
	return &limitedTokenizer{
		limiter:  l,
		provider: p,
	}
}

func (p *limitedTokenizer) limiterSetup() {
}

func (p *limitedTokenizer) Tokenize(ctx context.Context, text string) ([]string, error) {
	if p.limiter != nil {
		if err := p.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	return p.provider.Tokenize(ctx, text)
}
