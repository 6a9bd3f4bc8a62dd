package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfg    *Config
	client *Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "gearhub",
		Short: "CLI tool for the GEAR HUB portal API",
		Long: `gearhub is a CLI tool for interacting with the GEAR HUB portal JSON API.

It covers the whole API surface: session management, profile and XP
operations, notes, timetable, chat, grades and the admin directory.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			client = NewClient(cfg.ServerURL)
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: GEARHUB_SERVER)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")

	// Add subcommands
	rootCmd.AddCommand(newSessionCmd())
	rootCmd.AddCommand(newProfileCmd())
	rootCmd.AddCommand(newXPCmd())
	rootCmd.AddCommand(newNotificationsCmd())
	rootCmd.AddCommand(newNotesCmd())
	rootCmd.AddCommand(newTimetableCmd())
	rootCmd.AddCommand(newChatCmd())
	rootCmd.AddCommand(newGradesCmd())
	rootCmd.AddCommand(newAdminCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
