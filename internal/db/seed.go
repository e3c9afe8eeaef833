package db

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"promo-budget/internal/core/domain"
	"promo-budget/internal/core/port"
)

var seedRegions = []string{"north", "south", "east", "west"}

// SeedResult summarises what Seed inserted.
type SeedResult struct {
	Campaigns    int
	Transactions int
}

// Seed inserts demo campaigns and transactions through the use cases, so
// it works against any configured storage backend. Campaign i covers the
// products "sku-i-1" .. "sku-i-5".
func Seed(ctx context.Context, campaigns port.CampaignUseCase, txs port.TransactionUseCase, numCampaigns, numTransactions int, r *rand.Rand) (SeedResult, error) {
	var res SeedResult
	var products []string
	for i := 1; i <= numCampaigns; i++ {
		in := domain.NewCampaign{
			Name:          fmt.Sprintf("Campaign %d", i),
			InitialBudget: decimal.NewFromInt(int64(500 + r.Intn(500))),
			Discounts: map[string]decimal.Decimal{
				domain.GlobalRegion: decimal.NewFromInt(int64(1 + r.Intn(5))),
			},
		}
		for j := 1; j <= 5; j++ {
			in.Products = append(in.Products, fmt.Sprintf("sku-%d-%d", i, j))
		}
		// some regions get a better deal than the global one
		for _, region := range seedRegions {
			if r.Intn(2) == 0 {
				in.Discounts[region] = decimal.NewFromInt(int64(5 + r.Intn(10)))
			}
		}
		if _, err := campaigns.CreateCampaign(ctx, in); err != nil {
			return res, err
		}
		products = append(products, in.Products...)
		res.Campaigns++
	}
	if len(products) == 0 {
		return res, nil
	}

	for i := 0; i < numTransactions; i++ {
		in := domain.NewTransaction{
			OrderID: uuid.NewString(),
			Region:  seedRegions[r.Intn(len(seedRegions))],
		}
		for n := 1 + r.Intn(3); n > 0; n-- {
			in.Products = append(in.Products, products[r.Intn(len(products))])
		}
		if _, err := txs.RecordTransaction(ctx, in); err != nil {
			return res, err
		}
		res.Transactions++
	}
	return res, nil
}
