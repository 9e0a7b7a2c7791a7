package otel

import (
	"context"

	"github.com/adrianliechti/wingman-extract/pkg/extractor"
	"github.com/adrianliechti/wingman-extract/pkg/parser"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

type Extractor interface {
	Observable
	extractor.Provider
}

type observableExtractor struct {
	name string

	requests metric.Int64Counter

	extractor extractor.Provider
}

func NewExtractor(name string, p extractor.Provider) Extractor {
	requests, _ := otel.Meter(instrumentationName).Int64Counter("extractor.requests",
		metric.WithDescription("Number of extraction calls by outcome"),
	)

	return &observableExtractor{
		extractor: p,

		name:     name,
		requests: requests,
	}
}

func (p *observableExtractor) otelSetup() {
}

func (p *observableExtractor) Extract(ctx context.Context, location string) (extractor.Result, error) {
	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "extract "+p.name)
	defer span.End()

	span.SetAttributes(String("document.location", location))

	result, err := p.extractor.Extract(ctx, location)

	outcome := "success"

	if err != nil {
		outcome = "error"
		recordError(span, err)
	} else {
		span.SetAttributes(
			String("document.content_type", result[parser.ContentType]),
			Int("document.size", len(result.Text())),
		)
	}

	if p.requests != nil {
		p.requests.Add(ctx, 1, metric.WithAttributes(
			String("extractor.name", p.name),
			String("outcome", outcome),
		))
	}

	return result, err
}
