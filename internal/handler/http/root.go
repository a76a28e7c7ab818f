package http

import (
	"net/http"

	"github.com/MKhiriev/go-api-gate/internal/logger"
)

// rootResponseBody is the placeholder payload of the bootstrap's single
// endpoint, kept verbatim from the project this server was scaffolded from.
const rootResponseBody = "Express + TypeScript Server"

// root handles POST /. The request body, if present, has already been
// decoded by the parsing middleware but is deliberately not consumed here.
func (h *Handler) root(w http.ResponseWriter, r *http.Request) error {
	log := logger.FromRequest(r)
	log.Debug().Msg("root endpoint hit")

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte(rootResponseBody)); err != nil {
		return err
	}

	return nil
}
