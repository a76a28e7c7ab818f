// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ErrorResponse is the uniform JSON envelope returned to clients whenever a
// request fails at any stage of the pipeline. The outer "response" field is
// always the literal "Error"; details live in the nested Error object.
type ErrorResponse struct {
	Response string      `json:"response"`
	Error    ErrorDetail `json:"error"`
}

// ErrorDetail describes one failed request. No stack traces or internal
// state beyond Message are ever exposed.
type ErrorDetail struct {
	// Type is the error classification label. Errors the application did
	// not construct itself (parse failures, runtime errors) are collapsed
	// to "UnhandledError".
	Type string `json:"type"`

	// Path is the request URL path at the time of failure.
	Path string `json:"path"`

	// StatusCode duplicates the HTTP status code written with the envelope.
	StatusCode int `json:"statusCode"`

	// Message is the error's human-readable description.
	Message string `json:"message"`
}

// NewErrorResponse assembles the envelope for one failed request.
func NewErrorResponse(errType, path string, statusCode int, message string) ErrorResponse {
	return ErrorResponse{
		Response: "Error",
		Error: ErrorDetail{
			Type:       errType,
			Path:       path,
			StatusCode: statusCode,
			Message:    message,
		},
	}
}
