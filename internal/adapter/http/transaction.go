package httpadapter

import (
	"log/slog"
	"net/http"

	"promo-budget/internal/core/domain"
)

// handleRecordTransaction records a sale and returns the applied campaign
// discounts. Missing fields produce HTTP 400; storage failures HTTP 500.
func (h *Handler) handleRecordTransaction(w http.ResponseWriter, r *http.Request) {
	var in domain.NewTransaction
	if !h.decodeBody(w, r, &in) {
		return
	}
	h.logger.Info("transaction received",
		slog.String("order_id", in.OrderID),
		slog.String("region", in.Region),
		slog.Any("products", in.Products))

	res, err := h.transactions.RecordTransaction(r.Context(), in)
	if err != nil {
		h.writeError(w, r, "record transaction error", err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, res)
}

func (h *Handler) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	txs, err := h.transactions.ListTransactions(r.Context())
	if err != nil {
		h.writeError(w, r, "list transactions error", err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, txs)
}
