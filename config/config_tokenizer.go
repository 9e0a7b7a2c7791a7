package config

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/adrianliechti/wingman-extract/pkg/limiter"
	"github.com/adrianliechti/wingman-extract/pkg/otel"
	"github.com/adrianliechti/wingman-extract/pkg/tokenizer"
	"github.com/adrianliechti/wingman-extract/pkg/tokenizer/gse"
	"github.com/adrianliechti/wingman-extract/pkg/tokenizer/tiktoken"
)

func (cfg *Config) RegisterTokenizer(id string, p tokenizer.Provider) {
	if cfg.tokenizer == nil {
		cfg.tokenizer = make(map[string]tokenizer.Provider)
	}

	if _, ok := cfg.tokenizer[""]; !ok {
		cfg.tokenizer[""] = p
	}

	cfg.tokenizer[id] = p
}

func (cfg *Config) Tokenizer(id string) (tokenizer.Provider, error) {
	if cfg.tokenizer != nil {
		if t, ok := cfg.tokenizer[id]; ok {
			return t, nil
		}
	}

	return nil, errors.New("tokenizer not found: " + id)
}

type tokenizerConfig struct {
	Type string `yaml:"type"`

	Model string `yaml:"model"`

	Dictionaries []string `yaml:"dictionaries"`
	HMM          *bool    `yaml:"hmm"`

	Limit *int `yaml:"limit"`
}

func (cfg *Config) registerTokenizers(f *configFile) error {
	if len(f.Tokenizers.Content) == 0 {
		cfg.registerTokenizer("gse", tokenizerConfig{Type: "gse"})
		cfg.registerTokenizer("cl100k_base", tokenizerConfig{Type: "tiktoken", Model: "cl100k_base"})

		return nil
	}

	var configs map[string]tokenizerConfig

	if err := f.Tokenizers.Decode(&configs); err != nil {
		return err
	}

	for _, node := range f.Tokenizers.Content {
		config, ok := configs[node.Value]

		if !ok {
			continue
		}

		switch strings.ToLower(config.Type) {
		case "gse", "tiktoken":
		default:
			return errors.New("invalid tokenizer type: " + config.Type)
		}

		cfg.registerTokenizer(node.Value, config)
	}

	return nil
}

func (cfg *Config) registerTokenizer(id string, c tokenizerConfig) {
	model := c.Model

	if model == "" {
		model = id
	}

	var p tokenizer.Provider = &lazyTokenizer{
		create: sync.OnceValues(func() (tokenizer.Provider, error) {
			return createTokenizer(c)
		}),
	}

	p = limiter.NewTokenizer(createLimiter(c.Limit), p)
	p = otel.NewTokenizer(strings.ToLower(c.Type), model, p)

	cfg.RegisterTokenizer(id, p)
}

func createTokenizer(c tokenizerConfig) (tokenizer.Provider, error) {
	switch strings.ToLower(c.Type) {
	case "gse":
		var options []gse.Option

		if len(c.Dictionaries) > 0 {
			options = append(options, gse.WithDictionary(c.Dictionaries...))
		}

		if c.HMM != nil {
			options = append(options, gse.WithHMM(*c.HMM))
		}

		return gse.New(options...)

	case "tiktoken":
		return tiktoken.New(c.Model)

	default:
		return nil, errors.New("invalid tokenizer type: " + c.Type)
	}
}

// lazyTokenizer defers loading dictionaries and encodings until first use.
type lazyTokenizer struct {
	create func() (tokenizer.Provider, error)
}

func (t *lazyTokenizer) Tokenize(ctx context.Context, text string) ([]string, error) {
	p, err := t.create()

	if err != nil {
		return nil, err
	}

	return p.Tokenize(ctx, text)
}
