package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"promo-budget/db/migrations"
	"promo-budget/internal/db"
)

func migrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "apply PostgreSQL schema migrations",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			from, err := db.Migrate(cfg.Psql.Addr.String())
			if err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			logger.Info("migrations applied",
				slog.Uint64("from", uint64(from)),
				slog.Int("to", migrations.Version))
			return nil
		},
	}
}
