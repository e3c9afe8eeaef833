package port

import (
	"context"

	"promo-budget/internal/core/domain"
)

// CampaignUseCase defines the campaign operations exposed to inbound
// adapters. Mock implementations can be generated from this interface for
// testing.
type CampaignUseCase interface {
	// ListCampaigns returns the full campaign collection.
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)

	// CreateCampaign validates the input, assigns a fresh id, sets the
	// remaining budget to the initial budget and stores the campaign.
	// domain.ErrIncompleteData is returned for missing fields.
	CreateCampaign(ctx context.Context, in domain.NewCampaign) (*domain.Campaign, error)
}

// TransactionUseCase defines the transaction operations exposed to inbound
// adapters.
type TransactionUseCase interface {
	// RecordTransaction applies campaign discounts for every product of
	// the order and appends the transaction to the log. Recording the same
	// order twice deducts twice.
	RecordTransaction(ctx context.Context, in domain.NewTransaction) (*TransactionResult, error)

	// ListTransactions returns the transaction log.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
}

// TransactionResult is the DTO returned to the HTTP layer after a
// transaction has been recorded.
type TransactionResult struct {
	Success          bool                     `json:"success"`
	AppliedCampaigns []domain.AppliedCampaign `json:"appliedCampaigns"`
}
