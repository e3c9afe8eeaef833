package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"promo-budget/internal/core/domain"
)

// maxBodyBytes caps the size of a decoded request body.
const maxBodyBytes = 1 << 20

type errorBody struct {
	Error string `json:"error"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; the status line is already out
		h.logger.Error("encode response error",
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.Any("error", err))
	}
}

// writeError maps err to a status code. Validation errors are the only
// client errors the use cases produce; anything else is logged and hidden
// behind a generic 500.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	if errors.Is(err, domain.ErrIncompleteData) || errors.Is(err, domain.ErrNegativeAmount) {
		h.writeJSON(w, r, http.StatusBadRequest, errorBody{Error: err.Error()})
		return
	}
	h.logger.Error(msg,
		slog.String("request_id", middleware.GetReqID(r.Context())),
		slog.Any("error", err))
	h.writeJSON(w, r, http.StatusInternalServerError, errorBody{Error: "internal error"})
}

// decodeBody decodes the request body into v and answers 400 on failure.
func (h *Handler) decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.writeJSON(w, r, http.StatusRequestEntityTooLarge, errorBody{Error: "request body too large"})
			return false
		}
		h.writeJSON(w, r, http.StatusBadRequest, errorBody{Error: "invalid JSON"})
		return false
	}
	return true
}
