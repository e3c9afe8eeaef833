package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// HealthMessage is the body served by the standalone health server.
const HealthMessage = "promo-budget backend is running"

// NewHealthRouter returns the minimal alternate server: a static message on
// "/" and nothing else.
func NewHealthRouter() http.Handler {
	r := chi.NewRouter()
	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(HealthMessage))
	})
	return r
}
