package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/adrianliechti/wingman-extract/config"
	"github.com/adrianliechti/wingman-extract/pkg/otel"

	_ "github.com/viant/afsc/gs"
	_ "github.com/viant/afsc/s3"
)

func main() {
	configFlag := flag.String("config", "", "config file")
	tokenizeFlag := flag.Bool("tokenize", false, "print tokens of the extracted text")
	modelFlag := flag.String("model", "", "tokenizer id")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] location...\n", os.Args[0])
		flag.PrintDefaults()
	}

	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	shutdown, err := otel.Setup(ctx, "wingman-extract", "cli")

	// exit flushes telemetry before leaving, including on failure
	exit := func(code int) {
		stop()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if shutdown != nil {
			shutdown(ctx)
		}

		os.Exit(code)
	}

	fail := func(err error) {
		fmt.Fprintln(os.Stderr, "error:", err)
		exit(1)
	}

	if err != nil {
		fail(err)
	}

	if err := run(ctx, *configFlag, *tokenizeFlag, *modelFlag, flag.Args()); err != nil {
		fail(err)
	}

	exit(0)
}

func run(ctx context.Context, configPath string, tokenize bool, model string, locations []string) error {
	cfg, err := loadConfig(configPath)

	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	for _, location := range locations {
		result, err := cfg.Extractor().Extract(ctx, location)

		if err != nil {
			return fmt.Errorf("%s: %w", location, err)
		}

		if !tokenize {
			enc.Encode(result)
			continue
		}

		t, err := cfg.Tokenizer(model)

		if err != nil {
			return err
		}

		tokens, err := t.Tokenize(ctx, result.Text())

		if err != nil {
			return fmt.Errorf("%s: %w", location, err)
		}

		enc.Encode(tokens)
	}

	return nil
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default()
	}

	return config.Parse(path)
}
