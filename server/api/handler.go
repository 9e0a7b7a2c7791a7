package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/adrianliechti/wingman-extract/config"
	"github.com/adrianliechti/wingman-extract/pkg/extractor"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	*config.Config
}

func New(cfg *config.Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("missing config")
	}

	h := &Handler{
		Config: cfg,
	}

	return h, nil
}

func (h *Handler) Attach(r chi.Router) {
	r.Post("/extract", h.handleExtract)
	r.Post("/tokenize", h.handleTokenize)
}

func writeJson(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	enc.Encode(v)
}

func writeError(w http.ResponseWriter, code int, err error) {
	w.WriteHeader(code)

	text := http.StatusText(code)

	if err != nil {
		text = err.Error()
	}

	w.Write([]byte(text))
}

func errorStatus(err error) int {
	var urlErr *url.Error

	switch {
	case errors.Is(err, extractor.ErrInvalidLocation):
		return http.StatusBadRequest

	case errors.Is(err, extractor.ErrStreamOpen):
		return http.StatusBadGateway

	// a detector or parser backend that cannot be reached
	case errors.As(err, &urlErr):
		return http.StatusBadGateway

	case errors.Is(err, extractor.ErrDetection), errors.Is(err, extractor.ErrUnsupported):
		return http.StatusUnsupportedMediaType

	case errors.Is(err, extractor.ErrParse), errors.Is(err, extractor.ErrEncoding):
		return http.StatusUnprocessableEntity
	}

	return http.StatusInternalServerError
}
