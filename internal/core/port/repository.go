package port

import (
	"context"

	"promo-budget/internal/core/domain"
)

// CampaignRepository defines persistence for campaigns. It is an outbound
// port in hexagonal architecture. Implementations are not required to be
// safe for concurrent read-modify-write cycles spanning several calls.
type CampaignRepository interface {
	// ListCampaigns returns every stored campaign in insertion order. An
	// empty store yields an empty slice.
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)
	// CreateCampaign appends a campaign to the store.
	CreateCampaign(ctx context.Context, c domain.Campaign) error
	// SaveCampaigns rewrites the stored remaining budgets from campaigns.
	SaveCampaigns(ctx context.Context, campaigns []domain.Campaign) error
}

// TransactionRepository defines persistence for the append-only
// transaction log.
type TransactionRepository interface {
	// AppendTransaction adds a transaction to the end of the log.
	AppendTransaction(ctx context.Context, tx domain.Transaction) error
	// ListTransactions returns the whole log, oldest first.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
}
