package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"promo-budget/internal/adapter/usecase"
	"promo-budget/internal/db"
)

func seedCommand() *cobra.Command {
	var (
		numCampaigns    int
		numTransactions int
		randSeed        int64
	)
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "insert demo campaigns and transactions into the configured storage",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			store, err := openStorage(cmd.Context(), cfg, logger)
			if err != nil {
				return fmt.Errorf("open storage: %w", err)
			}
			defer store.close()

			if randSeed == 0 {
				randSeed = time.Now().UnixNano()
			}
			res, err := db.Seed(cmd.Context(),
				usecase.NewCampaignUseCase(store.campaigns),
				usecase.NewTransactionUseCase(store.campaigns, store.transactions, nil),
				numCampaigns, numTransactions, rand.New(rand.NewSource(randSeed)))
			if err != nil {
				return fmt.Errorf("seed: %w", err)
			}
			logger.Info("seed complete",
				slog.Int("campaigns", res.Campaigns),
				slog.Int("transactions", res.Transactions))
			return nil
		},
	}
	cmd.Flags().IntVar(&numCampaigns, "campaigns", 5, "number of campaigns to create")
	cmd.Flags().IntVar(&numTransactions, "transactions", 50, "number of transactions to record")
	cmd.Flags().Int64Var(&randSeed, "rand-seed", 0, "random seed, 0 uses the current time")
	return cmd
}
