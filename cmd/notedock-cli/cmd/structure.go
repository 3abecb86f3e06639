package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"notedock/internal/application"
	"notedock/internal/application/commands"
)

var addCategoryCmd = &cobra.Command{
	Use:   "add-category <name>",
	Short: "Add a top-level category",
	Long: `Add a top-level category: a nav entry placed before the last one,
a sidebar section /docs/<name>/ and a default docs/<name>/index.md.

Example:
  notedock-cli add-category guide`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewAddCategoryCommand(GetRepo(), args[0]).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(Success.Render(result.Message), MutedText.Render(result.Link))
		return nil
	},
}

var addNodeCmd = &cobra.Command{
	Use:   "add-node <parent-path> <name>",
	Short: "Add an empty category node",
	Long: `Add an empty category node under an existing sidebar node.
The parent path lists node names separated by "/".

Example:
  notedock-cli add-node guide Advanced`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		parent := application.SplitSegments(args[0])
		result, err := commands.NewAddNodeCommand(GetRepo(), args[1], parent).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(Success.Render(result.Message), MutedText.Render(commands.FormatSegments(result.Path)))
		return nil
	},
}

var addDocumentCmd = &cobra.Command{
	Use:   "add-doc <parent-path> <name>",
	Short: "Add a document node and its markdown file",
	Long: `Add a document under an existing sidebar node and create
docs/<parent-path>/<name>.md with a default heading.

Example:
  notedock-cli add-doc guide/Advanced tips`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		parent := application.SplitSegments(args[0])
		result, err := commands.NewAddDocumentCommand(GetRepo(), args[1], parent).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(Success.Render(result.Message), MutedText.Render(result.Link))
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <path>",
	Short: "Delete a sidebar node and its content",
	Long: `Delete a sidebar node, its directory under docs/ and, for a document,
its markdown file. A single segment deletes a whole category together
with its nav entry.

Examples:
  notedock-cli delete guide/Advanced/tips
  notedock-cli delete guide`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := application.SplitSegments(args[0])
		result, err := commands.NewDeleteCommand(GetRepo(), path).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(Success.Render(result.Message))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCategoryCmd)
	rootCmd.AddCommand(addNodeCmd)
	rootCmd.AddCommand(addDocumentCmd)
	rootCmd.AddCommand(deleteCmd)
}
