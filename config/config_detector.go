package config

import (
	"errors"
	"strings"

	"github.com/adrianliechti/wingman-extract/pkg/detector"
	"github.com/adrianliechti/wingman-extract/pkg/detector/extension"
	"github.com/adrianliechti/wingman-extract/pkg/detector/magic"
	"github.com/adrianliechti/wingman-extract/pkg/detector/multi"
	"github.com/adrianliechti/wingman-extract/pkg/detector/tika"
)

type detectorConfig struct {
	Type string `yaml:"type"`

	URL string `yaml:"url"`
}

func (cfg *Config) createDetector(f *configFile) (detector.Provider, error) {
	if len(f.Detectors.Content) == 0 {
		return multi.New(magic.New(), extension.New()), nil
	}

	var configs map[string]detectorConfig

	if err := f.Detectors.Decode(&configs); err != nil {
		return nil, err
	}

	var detectors []detector.Provider

	for _, node := range f.Detectors.Content {
		config, ok := configs[node.Value]

		if !ok {
			continue
		}

		d, err := cfg.newDetector(config)

		if err != nil {
			return nil, err
		}

		detectors = append(detectors, d)
	}

	return multi.New(detectors...), nil
}

func (cfg *Config) newDetector(c detectorConfig) (detector.Provider, error) {
	switch strings.ToLower(c.Type) {
	case "magic":
		return magic.New(), nil

	case "extension":
		return extension.New(), nil

	case "tika":
		return tika.New(c.URL, tika.WithClient(cfg.client))

	default:
		return nil, errors.New("invalid detector type: " + c.Type)
	}
}
