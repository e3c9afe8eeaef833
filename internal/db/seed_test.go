package db

import (
	"context"
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promo-budget/internal/adapter/jsonfile"
	"promo-budget/internal/adapter/usecase"
)

func TestSeedJSONStore(t *testing.T) {
	dir := t.TempDir()
	campaignRepo := jsonfile.NewCampaignRepository(filepath.Join(dir, "campaigns.json"))
	txRepo := jsonfile.NewTransactionRepository(filepath.Join(dir, "transactions.json"))
	campaigns := usecase.NewCampaignUseCase(campaignRepo)
	txs := usecase.NewTransactionUseCase(campaignRepo, txRepo, nil)
	ctx := context.Background()

	res, err := Seed(ctx, campaigns, txs, 3, 20, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Equal(t, SeedResult{Campaigns: 3, Transactions: 20}, res)

	list, err := campaigns.ListCampaigns(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	for _, c := range list {
		assert.Len(t, c.Products, 5)
		assert.True(t, c.RemainingBudget.LessThanOrEqual(c.InitialBudget))
		assert.False(t, c.RemainingBudget.IsNegative())
	}

	logged, err := txs.ListTransactions(ctx)
	require.NoError(t, err)
	assert.Len(t, logged, 20)
}

func TestSeedWithoutCampaigns(t *testing.T) {
	dir := t.TempDir()
	campaignRepo := jsonfile.NewCampaignRepository(filepath.Join(dir, "campaigns.json"))
	txRepo := jsonfile.NewTransactionRepository(filepath.Join(dir, "transactions.json"))

	res, err := Seed(context.Background(),
		usecase.NewCampaignUseCase(campaignRepo),
		usecase.NewTransactionUseCase(campaignRepo, txRepo, nil),
		0, 10, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Zero(t, res.Transactions)
}
