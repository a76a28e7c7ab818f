package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init wires the middleware chain and routes.
//
// The chain is nested so that tracing, CORS, security headers, and access
// logging cover every response, including error envelopes produced by the
// body parsers. Authentication applies only to the routes inside the group.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withCORS)
	router.Use(h.withSecurityHeaders)
	router.Use(h.withLogging)
	router.Use(h.withParsedBody)

	// routes behind bearer authentication
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/", h.wrap(h.root))
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

// CheckHTTPMethod returns an [http.HandlerFunc] registered as the router's
// MethodNotAllowed handler via [chi.Mux.MethodNotAllowed].
//
// Chi's default is to respond with 405 whenever a request path matches a
// registered route but the method does not. This override responds with 404
// instead, hiding the existence of the route from callers that use an
// unsupported method. If the method IS registered for the matched route, the
// request is forwarded to the router's normal pipeline.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		requestedURL := r.URL.Path
		requestedHTTPMethod := r.Method

		var foundRoute chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == requestedURL {
				foundRoute = route
				break
			}
		}

		if _, ok := foundRoute.Handlers[requestedHTTPMethod]; !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}
