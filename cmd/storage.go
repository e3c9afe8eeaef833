package main

import (
	"context"
	"log/slog"
	"os"

	"promo-budget/internal/adapter/jsonfile"
	"promo-budget/internal/adapter/postgres"
	"promo-budget/internal/config"
	"promo-budget/internal/config/configs"
	"promo-budget/internal/core/port"
	"promo-budget/internal/db"
)

type storage struct {
	campaigns    port.CampaignRepository
	transactions port.TransactionRepository
	close        func()
}

// openStorage builds the repositories for the configured driver. For
// postgres it optionally applies migrations first.
func openStorage(ctx context.Context, cfg config.Config, logger *slog.Logger) (*storage, error) {
	driver, err := cfg.Storage.NormalizedDriver()
	if err != nil {
		return nil, err
	}

	if driver == configs.DriverJSON {
		logger.Info("using json storage",
			slog.String("campaigns", cfg.Storage.CampaignsFile),
			slog.String("transactions", cfg.Storage.TransactionsFile))
		return &storage{
			campaigns:    jsonfile.NewCampaignRepository(cfg.Storage.CampaignsFile),
			transactions: jsonfile.NewTransactionRepository(cfg.Storage.TransactionsFile),
			close:        func() {},
		}, nil
	}

	if cfg.Psql.RunMigrations {
		if _, err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
		} else {
			logger.Info("migrations applied successfully")
		}
	}

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return nil, err
	}
	logger.Info("using postgres storage")
	return &storage{
		campaigns:    postgres.NewCampaignRepository(pool),
		transactions: postgres.NewTransactionRepository(pool),
		close:        pool.Close,
	}, nil
}

func loadConfig() (config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, nil, err
	}
	logger := cfg.Log.New(os.Stdout).With(slog.String("env", cfg.Env))
	return cfg, logger, nil
}
