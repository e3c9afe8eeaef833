package main

import (
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	httpadapter "promo-budget/internal/adapter/http"
)

// healthCommand starts the minimal alternate server that only answers "/"
// with a static message. It touches no storage.
func healthCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "start a static health-check server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			return listenAndServe(ctx, logger, &http.Server{
				Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
				Handler:           httpadapter.NewHealthRouter(),
				ReadHeaderTimeout: 10 * time.Second,
			})
		},
	}
}
