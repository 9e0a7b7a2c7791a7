package otel

import (
	"context"

	"github.com/adrianliechti/wingman-extract/pkg/tokenizer"

	"go.opentelemetry.io/otel"
)

type Tokenizer interface {
	Observable
	tokenizer.Provider
}

type observableTokenizer struct {
	model    string
	provider string

	tokenizer tokenizer.Provider
}

func NewTokenizer(provider, model string, p tokenizer.Provider) Tokenizer {
	return &observableTokenizer{
		tokenizer: p,

		model:    model,
		provider: provider,
	}
}

func (p *observableTokenizer) otelSetup() {
}

func (p *observableTokenizer) Tokenize(ctx context.Context, text string) ([]string, error) {
	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "tokenize "+p.model)
	defer span.End()

	span.SetAttributes(String("tokenizer.provider", p.provider))

	result, err := p.tokenizer.Tokenize(ctx, text)

	if err != nil {
		recordError(span, err)
	} else {
		span.SetAttributes(Int("tokenizer.tokens", len(result)))
	}

	return result, err
}
