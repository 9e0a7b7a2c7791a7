package api

import (
	"fmt"
	"net/http"
	"net/url"
	"os"
	"slices"
	"strings"

	"github.com/adrianliechti/wingman-extract/pkg/extractor"
	"github.com/adrianliechti/wingman-extract/pkg/parser"
)

// remote schemes accepted over HTTP; local paths never are.
var remoteSchemes = []string{
	"http",
	"https",
	"s3",
	"gs",
}

func (h *Handler) handleExtract(w http.ResponseWriter, r *http.Request) {
	p := h.Extractor()

	if location := valueURL(r); location != "" {
		if err := validateURL(location); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}

		result, err := p.Extract(r.Context(), location)

		if err != nil {
			writeError(w, errorStatus(err), err)
			return
		}

		writeJson(w, result)
		return
	}

	file, err := h.stageFile(r)

	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	defer os.Remove(file.Path)

	result, err := p.Extract(r.Context(), file.Path)

	if err != nil {
		writeError(w, errorStatus(err), err)
		return
	}

	if file.Name != "" {
		result[parser.ResourceName] = file.Name
	}

	writeJson(w, result)
}

func validateURL(location string) error {
	u, err := url.Parse(location)

	if err != nil {
		return fmt.Errorf("%w: %w", extractor.ErrInvalidLocation, err)
	}

	if u.Host == "" || !slices.Contains(remoteSchemes, strings.ToLower(u.Scheme)) {
		return fmt.Errorf("%w: %s", extractor.ErrInvalidLocation, location)
	}

	return nil
}
