package usecase

import (
	"context"
	"fmt"
	"time"

	"promo-budget/internal/core/domain"
	"promo-budget/internal/core/port"
)

// TransactionUseCase records sales transactions against campaign budgets.
//
// RecordTransaction reads all campaigns, deducts in memory and writes them
// back with no lock spanning the cycle. Two concurrent calls may therefore
// lose one of the budget updates.
type TransactionUseCase struct {
	campaigns    port.CampaignRepository
	transactions port.TransactionRepository
	metrics      *Metrics
	now          func() time.Time
}

// NewTransactionUseCase creates a new usecase. metrics may be nil.
func NewTransactionUseCase(campaigns port.CampaignRepository, transactions port.TransactionRepository, metrics *Metrics) *TransactionUseCase {
	return &TransactionUseCase{
		campaigns:    campaigns,
		transactions: transactions,
		metrics:      metrics,
		now:          time.Now,
	}
}

// RecordTransaction applies discounts for each product of the order,
// persists the updated campaigns and appends the transaction to the log.
func (u *TransactionUseCase) RecordTransaction(ctx context.Context, in domain.NewTransaction) (*port.TransactionResult, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	campaigns, err := u.campaigns.ListCampaigns(ctx)
	if err != nil {
		return nil, fmt.Errorf("load campaigns: %w", err)
	}

	applied, deductions := domain.ApplyDiscounts(campaigns, in.Region, in.Products)

	if err = u.campaigns.SaveCampaigns(ctx, campaigns); err != nil {
		return nil, fmt.Errorf("save campaigns: %w", err)
	}
	tx := domain.Transaction{
		OrderID:          in.OrderID,
		Timestamp:        u.now().UTC(),
		Region:           in.Region,
		Products:         in.Products,
		AppliedCampaigns: applied,
	}
	if err = u.transactions.AppendTransaction(ctx, tx); err != nil {
		return nil, fmt.Errorf("append transaction: %w", err)
	}
	u.metrics.observe(deductions)

	return &port.TransactionResult{Success: true, AppliedCampaigns: applied}, nil
}

// ListTransactions returns the transaction log.
func (u *TransactionUseCase) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	txs, err := u.transactions.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	if txs == nil {
		txs = []domain.Transaction{}
	}
	return txs, nil
}
