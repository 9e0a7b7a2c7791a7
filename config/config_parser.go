package config

import (
	"errors"
	"slices"
	"strings"

	"github.com/adrianliechti/wingman-extract/pkg/parser"
	"github.com/adrianliechti/wingman-extract/pkg/parser/docx"
	"github.com/adrianliechti/wingman-extract/pkg/parser/html"
	"github.com/adrianliechti/wingman-extract/pkg/parser/markdown"
	"github.com/adrianliechti/wingman-extract/pkg/parser/pdf"
	"github.com/adrianliechti/wingman-extract/pkg/parser/text"
	"github.com/adrianliechti/wingman-extract/pkg/parser/tika"
	"github.com/adrianliechti/wingman-extract/pkg/parser/xls"
	"github.com/adrianliechti/wingman-extract/pkg/parser/xlsx"
)

type parserConfig struct {
	Type string `yaml:"type"`

	URL string `yaml:"url"`

	Types []string `yaml:"types"`
}

var defaultParsers = []string{
	"text",
	"html",
	"markdown",
	"pdf",
	"xlsx",
	"xls",
	"docx",
}

func (cfg *Config) createParsers(f *configFile) (*parser.Registry, error) {
	registry := parser.NewRegistry()

	if len(f.Parsers.Content) == 0 {
		for _, t := range defaultParsers {
			p, types, err := cfg.newParser(parserConfig{Type: t})

			if err != nil {
				return nil, err
			}

			registry.Register(p, types...)
		}

		return registry, nil
	}

	var configs map[string]parserConfig

	if err := f.Parsers.Decode(&configs); err != nil {
		return nil, err
	}

	for _, node := range f.Parsers.Content {
		config, ok := configs[node.Value]

		if !ok {
			continue
		}

		p, types, err := cfg.newParser(config)

		if err != nil {
			return nil, err
		}

		if len(config.Types) > 0 {
			types = config.Types
		}

		registry.Register(p, types...)
	}

	return registry, nil
}

func (cfg *Config) newParser(c parserConfig) (parser.Provider, []string, error) {
	switch strings.ToLower(c.Type) {
	case "text":
		return text.New(), text.SupportedMimeTypes, nil

	case "html":
		return html.New(), html.SupportedMimeTypes, nil

	case "markdown":
		return markdown.New(), markdown.SupportedMimeTypes, nil

	case "pdf":
		return pdf.New(), pdf.SupportedMimeTypes, nil

	case "xlsx":
		return xlsx.New(), xlsx.SupportedMimeTypes, nil

	case "xls":
		return xls.New(), xls.SupportedMimeTypes, nil

	case "docx":
		return docx.New(), docx.SupportedMimeTypes, nil

	case "tika":
		p, err := tika.New(c.URL, tika.WithClient(cfg.client))

		if err != nil {
			return nil, nil, err
		}

		// Tika handles everything it knows, so it also serves as catch-all.
		return p, append(slices.Clone(tika.SupportedMimeTypes), parser.Any), nil

	default:
		return nil, nil, errors.New("invalid parser type: " + c.Type)
	}
}
