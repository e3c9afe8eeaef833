package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// main is the entry point of the promo-budget service. Without a
// sub-command it runs the API server.
func main() {
	root := &cobra.Command{
		Use:           "promo-budget",
		Short:         "Promotional campaign budget service",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServe,
	}
	root.AddCommand(
		serveCommand(),
		healthCommand(),
		migrateCommand(),
		seedCommand(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "[ERROR]", err)
		os.Exit(1)
	}
}
