// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the API.
// Cross-cutting concerns such as cross-origin policy, security headers,
// body parsing, access logging, request tracing, and bearer authentication
// are all handled in this package before requests reach a handler, and every
// handler error is normalised into a single JSON error envelope.
package http
