package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"notedock/internal/application/commands"
)

var saveFrom string

var saveCmd = &cobra.Command{
	Use:   "save <file-path>",
	Short: "Save markdown content to a document",
	Long: `Save markdown content to a document under /docs/.

Content is read from --file, or from stdin when --file is omitted or "-".
An existing document is backed up first (the 10 newest backups are kept).
A new document must already have a sidebar node.

Examples:
  notedock-cli save /docs/guide/intro.md --file intro.md
  echo "# Intro" | notedock-cli save /docs/guide/intro.md`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := readContent(saveFrom)
		if err != nil {
			return err
		}

		ctx := context.Background()
		result, err := commands.NewSaveDocumentCommand(GetRepo(), args[0], content).Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(Success.Render(result.Message), MutedText.Render(result.Timestamp))

		refreshLanding(ctx)
		return nil
	},
}

func readContent(from string) (string, error) {
	var (
		data []byte
		err  error
	)
	if from == "" || from == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(from)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read content: %w", err)
	}
	return string(data), nil
}

// refreshLanding updates the landing page after a save. A failure is
// reported but does not fail the save.
func refreshLanding(ctx context.Context) {
	if _, err := commands.NewRefreshLandingCommand(GetRepo()).Execute(ctx); err != nil {
		fmt.Fprintln(os.Stderr, MutedText.Render("landing page not refreshed: "+err.Error()))
	}
}

func init() {
	saveCmd.Flags().StringVarP(&saveFrom, "file", "f", "", "read content from this file")
	rootCmd.AddCommand(saveCmd)
}
