package config

import (
	"log/slog"

	"github.com/adrianliechti/wingman-extract/pkg/extractor"
	"github.com/adrianliechti/wingman-extract/pkg/extractor/auto"
	"github.com/adrianliechti/wingman-extract/pkg/limiter"
	"github.com/adrianliechti/wingman-extract/pkg/otel"
	"github.com/adrianliechti/wingman-extract/pkg/source/resolver"
)

func (cfg *Config) Extractor() extractor.Provider {
	return cfg.extractor
}

func (cfg *Config) registerExtractor(f *configFile) error {
	detector, err := cfg.createDetector(f)

	if err != nil {
		return err
	}

	parsers, err := cfg.createParsers(f)

	if err != nil {
		return err
	}

	options := []auto.Option{
		auto.WithResolver(resolver.New(resolver.WithClient(cfg.client))),
	}

	if f.Sniff != nil {
		options = append(options, auto.WithSniffSize(*f.Sniff))
	}

	e, err := auto.New(detector, parsers, options...)

	if err != nil {
		return err
	}

	slog.Debug("extractor configured", "types", parsers.Types())

	var p extractor.Provider = e

	p = limiter.NewExtractor(createLimiter(f.Limit), p)
	p = otel.NewExtractor("auto", p)

	cfg.extractor = p

	return nil
}
