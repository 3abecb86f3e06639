package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"notedock/internal/adapters/filesystem"
	"notedock/internal/adapters/restart"
	"notedock/internal/config"
)

var (
	siteRoot  string
	reload    bool
	repo      *filesystem.Repository
	restarter *restart.Signal
)

var rootCmd = &cobra.Command{
	Use:   "notedock-cli",
	Short: "CLI for managing a documentation site's content tree",
	Long: `notedock-cli edits the content tree of a VitePress documentation site.

It adds and removes categories, nodes and documents while keeping the
sidebar and nav JSON in step with docs/, saves documents with versioned
backups, and refreshes the landing page's recently modified list.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		logger := config.NewLogger(config.LogLevel())
		opts := []filesystem.Option{filesystem.WithLogger(logger)}
		if reload {
			restarter = restart.NewSignal(siteRoot, config.RestartStop(), config.RestartStart(), restart.WithLogger(logger))
			opts = append(opts, filesystem.WithReloader(restarter))
		}
		repo = filesystem.NewRepository(siteRoot, opts...)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		// backups and restarts run after the command returns
		if repo != nil {
			repo.Wait()
		}
		if restarter != nil {
			restarter.Wait()
		}
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ErrorMsg.Render(err.Error()))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&siteRoot, "root", "r", config.Root(), "path to the site root")
	rootCmd.PersistentFlags().BoolVar(&reload, "reload", false, "restart the dev server after structural changes")
}

// GetRepo returns the initialized repository
func GetRepo() *filesystem.Repository {
	return repo
}
