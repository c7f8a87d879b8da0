package main

import (
	"os"

	"github.com/spf13/cobra"

	"hostdesk/internal/interfaces/cli/migrate"
	"hostdesk/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "hostdesk",
		Short: "Hostdesk - hosting customer administration",
		Long:  `Hostdesk manages hosting customers, their domains and yearly subscriptions, and sends SMS renewal reminders.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
