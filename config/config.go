package config

import (
	"bytes"
	"net/http"
	"os"
	"time"

	"github.com/adrianliechti/wingman-extract/pkg/extractor"
	"github.com/adrianliechti/wingman-extract/pkg/tokenizer"

	"golang.org/x/time/rate"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Address string

	client *http.Client

	extractor extractor.Provider
	tokenizer map[string]tokenizer.Provider
}

// Parse reads a YAML configuration file. Environment variables in the file
// are expanded before decoding; unknown fields are rejected.
func Parse(path string) (*Config, error) {
	file, err := parseFile(path)

	if err != nil {
		return nil, err
	}

	return load(file)
}

// Default builds the native detector and parser stack without a file.
func Default() (*Config, error) {
	return load(&configFile{})
}

func load(file *configFile) (*Config, error) {
	c := &Config{
		Address: ":8080",
	}

	if file.Address != "" {
		c.Address = file.Address
	}

	client, err := file.Client.httpClient(file.Timeout)

	if err != nil {
		return nil, err
	}

	c.client = client

	if err := c.registerExtractor(file); err != nil {
		return nil, err
	}

	if err := c.registerTokenizers(file); err != nil {
		return nil, err
	}

	return c, nil
}

type configFile struct {
	Address string `yaml:"address"`

	Sniff   *int           `yaml:"sniff"`
	Limit   *int           `yaml:"limit"`
	Timeout *time.Duration `yaml:"timeout"`

	Client *clientConfig `yaml:"client"`

	Detectors  yaml.Node `yaml:"detectors"`
	Parsers    yaml.Node `yaml:"parsers"`
	Tokenizers yaml.Node `yaml:"tokenizers"`
}

func parseFile(path string) (*configFile, error) {
	data, err := os.ReadFile(path)

	if err != nil {
		return nil, err
	}

	data = []byte(os.ExpandEnv(string(data)))

	var config configFile

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func createLimiter(limit *int) *rate.Limiter {
	if limit == nil || *limit <= 0 {
		return nil
	}

	return rate.NewLimiter(rate.Limit(*limit), *limit)
}
