package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"net/url"

	"github.com/MKhiriev/go-api-gate/internal/logger"
	"github.com/MKhiriev/go-api-gate/internal/utils"
)

// maxBodyBytes caps request bodies accepted by the parsing middleware.
const maxBodyBytes = 1 << 20

// withParsedBody decodes request bodies ahead of the handlers.
//
// "application/json" bodies are unmarshalled into a generic value;
// "application/x-www-form-urlencoded" bodies are parsed with the extended
// nested-key syntax (see parseExtendedForm). The decoded value is stored in
// the request context under [utils.ParsedBodyCtxKey] and the raw body is
// restored so handlers may still read it.
//
// A malformed body terminates the request early with the JSON error
// envelope (status 500, kind UnhandledError); the process is never brought
// down by bad input.
func (h *Handler) withParsedBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType := r.Header.Get("Content-Type")
		if r.Body == nil || contentType == "" {
			next.ServeHTTP(w, r)
			return
		}

		mediaType, _, err := mime.ParseMediaType(contentType)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}
		if mediaType != "application/json" && mediaType != "application/x-www-form-urlencoded" {
			next.ServeHTTP(w, r)
			return
		}

		body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
		if err != nil {
			h.respondError(w, r, err)
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))

		if len(bytes.TrimSpace(body)) == 0 {
			next.ServeHTTP(w, r)
			return
		}

		var parsed any
		switch mediaType {
		case "application/json":
			if err := json.Unmarshal(body, &parsed); err != nil {
				logger.FromRequest(r).Err(err).Msg("malformed JSON body")
				h.respondError(w, r, err)
				return
			}
		case "application/x-www-form-urlencoded":
			values, err := url.ParseQuery(string(body))
			if err != nil {
				logger.FromRequest(r).Err(err).Msg("malformed url-encoded body")
				h.respondError(w, r, err)
				return
			}
			parsed = parseExtendedForm(values)
		}

		ctx := context.WithValue(r.Context(), utils.ParsedBodyCtxKey, parsed)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
