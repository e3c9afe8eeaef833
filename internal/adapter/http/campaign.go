package httpadapter

import (
	"net/http"

	"promo-budget/internal/core/domain"
)

// handleListCampaigns returns every campaign as a JSON array.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.campaigns.ListCampaigns(r.Context())
	if err != nil {
		h.writeError(w, r, "list campaigns error", err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, campaigns)
}

// handleCreateCampaign decodes a domain.NewCampaign and answers 201 with
// the stored campaign. Missing fields produce HTTP 400.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var in domain.NewCampaign
	if !h.decodeBody(w, r, &in) {
		return
	}
	c, err := h.campaigns.CreateCampaign(r.Context(), in)
	if err != nil {
		h.writeError(w, r, "create campaign error", err)
		return
	}
	h.writeJSON(w, r, http.StatusCreated, c)
}
