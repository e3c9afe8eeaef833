package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"promo-budget/internal/core/domain"
	"promo-budget/internal/core/port/mocks"
)

func regionCampaign(id string, remaining int64) domain.Campaign {
	return domain.Campaign{
		ID:              id,
		Name:            "campaign " + id,
		Products:        []string{"p1"},
		InitialBudget:   decimal.NewFromInt(10),
		RemainingBudget: decimal.NewFromInt(remaining),
		Discounts:       map[string]decimal.Decimal{"region": decimal.NewFromInt(5)},
	}
}

// TestRecordTransactionDeducts checks the region discount is deducted,
// saved and logged with the server timestamp.
func TestRecordTransactionDeducts(t *testing.T) {
	campaigns := mocks.NewMockCampaignRepository(t)
	txs := mocks.NewMockTransactionRepository(t)

	campaigns.EXPECT().
		ListCampaigns(mock.Anything).
		Return([]domain.Campaign{regionCampaign("c1", 10)}, nil)

	var saved []domain.Campaign
	campaigns.EXPECT().
		SaveCampaigns(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, list []domain.Campaign) { saved = list }).
		Return(nil)

	var logged domain.Transaction
	txs.EXPECT().
		AppendTransaction(mock.Anything, mock.AnythingOfType("domain.Transaction")).
		Run(func(ctx context.Context, tx domain.Transaction) { logged = tx }).
		Return(nil)

	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	svc := NewTransactionUseCase(campaigns, txs, nil)
	svc.now = func() time.Time { return fixed }

	res, err := svc.RecordTransaction(context.Background(), domain.NewTransaction{
		OrderID:  "o1",
		Region:   "region",
		Products: []string{"p1"},
	})
	if err != nil {
		t.Fatalf("RecordTransaction error: %v", err)
	}

	require.True(t, res.Success)
	require.Len(t, res.AppliedCampaigns, 1)
	assert.Equal(t, "c1", res.AppliedCampaigns[0].CampaignID)
	assert.True(t, res.AppliedCampaigns[0].Discount.Equal(decimal.NewFromInt(5)))

	require.Len(t, saved, 1)
	assert.True(t, saved[0].RemainingBudget.Equal(decimal.NewFromInt(5)))

	assert.Equal(t, "o1", logged.OrderID)
	assert.Equal(t, fixed, logged.Timestamp)
	assert.Equal(t, res.AppliedCampaigns, logged.AppliedCampaigns)
}

// TestRecordTransactionValidation ensures nothing is read or written when
// the input is incomplete.
func TestRecordTransactionValidation(t *testing.T) {
	campaigns := mocks.NewMockCampaignRepository(t)
	txs := mocks.NewMockTransactionRepository(t)
	svc := NewTransactionUseCase(campaigns, txs, nil)

	_, err := svc.RecordTransaction(context.Background(), domain.NewTransaction{Region: "r", Products: []string{"p1"}})
	if !errors.Is(err, domain.ErrIncompleteData) {
		t.Fatalf("expected ErrIncompleteData, got %v", err)
	}
}

// TestRecordTransactionSaveFailure stops before the log is appended.
func TestRecordTransactionSaveFailure(t *testing.T) {
	campaigns := mocks.NewMockCampaignRepository(t)
	txs := mocks.NewMockTransactionRepository(t)

	boom := errors.New("disk full")
	campaigns.EXPECT().ListCampaigns(mock.Anything).Return(nil, nil)
	campaigns.EXPECT().SaveCampaigns(mock.Anything, mock.Anything).Return(boom)

	svc := NewTransactionUseCase(campaigns, txs, nil)
	_, err := svc.RecordTransaction(context.Background(), domain.NewTransaction{OrderID: "o", Region: "r", Products: []string{}})

	require.ErrorIs(t, err, boom)
	txs.AssertNotCalled(t, "AppendTransaction", mock.Anything, mock.Anything)
}

// TestRecordTransactionMetrics checks outcome counters per product.
func TestRecordTransactionMetrics(t *testing.T) {
	campaigns := mocks.NewMockCampaignRepository(t)
	txs := mocks.NewMockTransactionRepository(t)

	exhausted := regionCampaign("c2", 0)
	exhausted.Products = []string{"p2"}
	campaigns.EXPECT().
		ListCampaigns(mock.Anything).
		Return([]domain.Campaign{regionCampaign("c1", 7), exhausted}, nil)
	campaigns.EXPECT().SaveCampaigns(mock.Anything, mock.Anything).Return(nil)
	txs.EXPECT().AppendTransaction(mock.Anything, mock.Anything).Return(nil)

	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)
	svc := NewTransactionUseCase(campaigns, txs, metrics)

	// 7 -> 2 on the first p1, the second p1 is skipped, c2 is empty and p9
	// has no campaign
	res, err := svc.RecordTransaction(context.Background(), domain.NewTransaction{
		OrderID:  "o1",
		Region:   "region",
		Products: []string{"p1", "p1", "p2", "p9"},
	})
	require.NoError(t, err)
	assert.Len(t, res.AppliedCampaigns, 1)

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.transactions))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.deductions.WithLabelValues("applied")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.deductions.WithLabelValues("insufficient_budget")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.deductions.WithLabelValues("no_campaign")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.deductions.WithLabelValues("exhausted")))
}

func TestListTransactionsEmpty(t *testing.T) {
	campaigns := mocks.NewMockCampaignRepository(t)
	txs := mocks.NewMockTransactionRepository(t)
	txs.EXPECT().ListTransactions(mock.Anything).Return(nil, nil)

	svc := NewTransactionUseCase(campaigns, txs, nil)
	list, err := svc.ListTransactions(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}
