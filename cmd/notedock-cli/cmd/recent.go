package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"notedock/internal/application/commands"
)

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "List recently modified documents",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewRecentCommand(GetRepo()).Execute(context.Background())
		if err != nil {
			return err
		}

		for _, f := range result.Files {
			fmt.Printf("%-16s %s %s\n", MutedText.Render(f.Label), f.Title, MutedText.Render(f.Path))
		}
		return nil
	},
}

var refreshLandingCmd = &cobra.Command{
	Use:   "refresh-landing",
	Short: "Rewrite the landing page's recently modified list",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewRefreshLandingCommand(GetRepo()).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(Success.Render(result.Message))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(recentCmd)
	rootCmd.AddCommand(refreshLandingCmd)
}
