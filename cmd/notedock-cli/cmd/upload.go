package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"notedock/internal/application/commands"
)

var uploadCmd = &cobra.Command{
	Use:   "upload <document-path> <image>",
	Short: "Copy an image into a document's assets directory",
	Long: `Copy an image (png, jpg, jpeg, gif, svg, webp) next to a document
under assets/ with a generated name, and print the relative URL to
use in the document's markdown.

Example:
  notedock-cli upload /docs/guide/intro.md ~/Pictures/diagram.png`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[1])
		if err != nil {
			return fmt.Errorf("failed to open image: %w", err)
		}
		defer f.Close()

		c := commands.NewUploadImageCommand(GetRepo(), args[0], filepath.Base(args[1]), f)
		result, err := c.Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(Success.Render(result.Message))
		fmt.Printf("![](%s)\n", result.URL)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(uploadCmd)
}
