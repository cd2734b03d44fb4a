package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"pharmacy/m/internal/store"
)

var validate = validator.New()

var errKeyMismatch = errors.New("route key does not match body key")

// Helpers

// decodeBody decodes a JSON body into dest and checks its validate tags.
func decodeBody(r *http.Request, dest interface{}) error {
	if err := decodeJSON(r, dest); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	if err := validate.Struct(dest); err != nil {
		return err
	}
	return nil
}

func decodeJSON(r *http.Request, dest interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dest)
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	_ = encoder.Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

func respondCreated(w http.ResponseWriter, location string, payload interface{}) {
	w.Header().Set("Location", location)
	respondJSON(w, http.StatusCreated, payload)
}

func respondNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// fail maps store errors onto HTTP: missing rows are 404, everything else is
// logged and surfaced as 500 with message.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error, message string) {
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}
	h.logger.Error(message, "method", r.Method, "path", r.URL.Path, "error", err)
	respondError(w, http.StatusInternalServerError, message)
}

// pathParam returns the decoded value of a chi URL parameter. chi routes on
// r.URL.RawPath when it is set, so only then is the value still escaped.
func pathParam(r *http.Request, name string) string {
	v := chi.URLParam(r, name)
	if r.URL.RawPath == "" {
		return v
	}
	if unescaped, err := url.PathUnescape(v); err == nil {
		return unescaped
	}
	return v
}

func int64Param(r *http.Request, name string) (int64, error) {
	v, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return v, nil
}

func path(segments ...string) string {
	p := "/api"
	for _, s := range segments {
		p += "/" + url.PathEscape(s)
	}
	return p
}

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}
