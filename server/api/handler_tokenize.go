package api

import (
	"net/http"
)

func (h *Handler) handleTokenize(w http.ResponseWriter, r *http.Request) {
	p, err := h.Tokenizer(valueModel(r))

	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	text, err := readText(r)

	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	tokens, err := p.Tokenize(r.Context(), text)

	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	if tokens == nil {
		tokens = []string{}
	}

	writeJson(w, tokens)
}
