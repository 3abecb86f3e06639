package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"notedock/internal/adapters/editor"
	"notedock/internal/adapters/opener"
	"notedock/internal/adapters/preview"
	"notedock/internal/application/commands"
	"notedock/internal/ports"
)

var openCmd = &cobra.Command{
	Use:   "open <file-path>",
	Short: "Open a document with the system's default application",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		o := opener.NewOpener(GetRepo().Root())
		result, err := commands.NewOpenDocumentCommand(GetRepo(), o, args[0]).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(Success.Render(result.Message), MutedText.Render(result.FilePath))
		return nil
	},
}

var previewCmd = &cobra.Command{
	Use:   "preview <file-path>",
	Short: "Render a document to HTML on stdout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := commands.NewPreviewCommand(GetRepo(), preview.NewRenderer(), args[0])
		result, err := c.Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Print(result.HTML)
		return nil
	},
}

var editCmd = &cobra.Command{
	Use:   "edit <file-path>",
	Short: "Edit a document in $EDITOR and save it with a backup",
	Long: `Open a copy of the document in $EDITOR (then $VISUAL, nvim, vim, vi, nano).
When the editor exits with changes the document is saved like "save",
so the previous version is backed up.

Example:
  notedock-cli edit /docs/guide/intro.md`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filePath := args[0]
		original, err := GetRepo().ReadDocument(filePath)
		if err != nil {
			return err
		}

		tmp, err := os.CreateTemp("", "notedock-*.md")
		if err != nil {
			return fmt.Errorf("failed to create scratch file: %w", err)
		}
		defer os.Remove(tmp.Name())
		if _, err := tmp.Write(original); err != nil {
			tmp.Close()
			return fmt.Errorf("failed to write scratch file: %w", err)
		}
		if err := tmp.Close(); err != nil {
			return fmt.Errorf("failed to write scratch file: %w", err)
		}

		var ed ports.EditorOpener = editor.NewOpener()
		if err := ed.OpenFile(tmp.Name()); err != nil {
			return fmt.Errorf("editor failed: %w", err)
		}

		edited, err := os.ReadFile(tmp.Name())
		if err != nil {
			return fmt.Errorf("failed to read scratch file: %w", err)
		}
		if string(edited) == string(original) {
			fmt.Println(MutedText.Render("No changes"))
			return nil
		}

		ctx := context.Background()
		result, err := commands.NewSaveDocumentCommand(GetRepo(), filePath, string(edited)).Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(Success.Render(result.Message), MutedText.Render(result.Timestamp))
		refreshLanding(ctx)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(editCmd)
}
