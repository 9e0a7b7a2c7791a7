package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/adrianliechti/wingman-extract/config"
	"github.com/adrianliechti/wingman-extract/pkg/otel"
	"github.com/adrianliechti/wingman-extract/server"

	_ "github.com/viant/afsc/gs"
	_ "github.com/viant/afsc/s3"
)

var version = "dev"

func main() {
	configFlag := flag.String("config", "", "config file")
	addrFlag := flag.String("addr", "", "listen address")

	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdown, err := otel.Setup(ctx, "wingman-extract", version)

	if err != nil {
		panic(err)
	}

	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		shutdown(ctx)
	}()

	cfg, err := loadConfig(*configFlag)

	if err != nil {
		panic(err)
	}

	if *addrFlag != "" {
		cfg.Address = *addrFlag
	}

	s, err := server.New(cfg)

	if err != nil {
		panic(err)
	}

	if err := s.ListenAndServe(ctx); err != nil {
		slog.Error("server failed", "error", err)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default()
	}

	return config.Parse(path)
}
