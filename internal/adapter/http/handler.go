package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"promo-budget/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP exposing the campaign and transaction use cases as a JSON API.
type Handler struct {
	campaigns    port.CampaignUseCase
	transactions port.TransactionUseCase
	logger       *slog.Logger
	router       chi.Router
}

// Options tunes the router. The zero value allows every CORS origin and
// serves no /metrics endpoint.
type Options struct {
	AllowedOrigins []string
	// Gatherer, when set, is exposed on GET /metrics.
	Gatherer prometheus.Gatherer
}

// NewHandler creates a handler with all routes configured.
func NewHandler(campaigns port.CampaignUseCase, transactions port.TransactionUseCase, logger *slog.Logger, opts Options) *Handler {
	h := &Handler{campaigns: campaigns, transactions: transactions, logger: logger}

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", h.handleHealth)
	if opts.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{}))
	}
	r.Route("/api", func(r chi.Router) {
		r.Get("/campaigns", h.handleListCampaigns)
		r.Post("/campaigns", h.handleCreateCampaign)
		r.Get("/transactions", h.handleListTransactions)
		r.Post("/transactions", h.handleRecordTransaction)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
