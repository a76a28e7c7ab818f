// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-api-gate/internal/logger"
	"github.com/MKhiriev/go-api-gate/internal/utils"
	"github.com/MKhiriev/go-api-gate/models"
)

// handlerFunc is the shape of route handlers in this package: instead of
// writing their own failure responses, handlers return an error that the
// terminal error responder turns into the uniform JSON envelope. This is the
// cross-cutting contract every route participates in.
type handlerFunc func(w http.ResponseWriter, r *http.Request) error

// wrap adapts a handlerFunc to http.HandlerFunc, funnelling every returned
// error through respondError.
func (h *Handler) wrap(fn handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			h.respondError(w, r, err)
		}
	}
}

// respondError is the terminal error normaliser. It classifies err, writes
// the JSON envelope with the resolved status code, and — unless the
// respond-only policy is configured — forwards the error to the registered
// process-level hook so an outer supervisor also observes it.
//
// Classification is by explicit tag: a *Error carries its own kind and
// status; everything else (parse failures, runtime errors) is collapsed to
// KindUnhandled with status 500.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	kind := KindUnhandled
	status := http.StatusInternalServerError
	message := err.Error()

	var appErr *Error
	if errors.As(err, &appErr) {
		kind = appErr.Kind
		if appErr.Status != 0 {
			status = appErr.Status
		}
		message = appErr.Message
	}

	envelope := models.NewErrorResponse(kind, r.URL.Path, status, message)
	if _, writeErr := utils.WriteJSON(w, envelope, status); writeErr != nil {
		log.Err(writeErr).Msg("error writing error envelope")
	}

	if !h.app.RespondOnlyErrors && h.errorHook != nil {
		h.errorHook(err)
	}
}
