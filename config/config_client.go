package config

import (
	"crypto/tls"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type clientConfig struct {
	Proxy string `yaml:"proxy"`

	Insecure bool `yaml:"insecure"`
}

// httpClient is shared by the remote source and the Tika backends.
func (cfg *clientConfig) httpClient(timeout *time.Duration) (*http.Client, error) {
	tr := http.DefaultTransport.(*http.Transport).Clone()

	if cfg != nil && cfg.Proxy != "" {
		proxyURL, err := url.Parse(cfg.Proxy)

		if err != nil {
			return nil, err
		}

		tr.Proxy = http.ProxyURL(proxyURL)
	}

	if cfg != nil && cfg.Insecure {
		tr.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: true,
		}
	}

	client := &http.Client{
		Transport: otelhttp.NewTransport(tr),
	}

	if timeout != nil {
		client.Timeout = *timeout
	}

	return client, nil
}
