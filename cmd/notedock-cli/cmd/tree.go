package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"notedock/internal/application/commands"
	"notedock/internal/domain"
)

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Display the nav bar and sidebar tree",
	Long: `Display the navigation bar entries followed by every sidebar section.

Categories end with "/"; documents show their link.

Example:
  notedock-cli tree`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewTreeCommand(GetRepo()).Execute(context.Background())
		if err != nil {
			return err
		}

		fmt.Println(SectionTitle.Render("nav"))
		for _, e := range result.Nav.Entries {
			fmt.Printf("  %s %s\n", NavEntry.Render(e.Text), MutedText.Render(e.Link))
		}
		for _, sec := range result.Sidebar.Sections {
			fmt.Println(SectionTitle.Render(sec.Key))
			printTree(sec.Nodes, 1)
		}
		return nil
	},
}

func printTree(nodes []*domain.Node, depth int) {
	indent := TreeBranch.Render(strings.Repeat("│ ", depth-1) + "├ ")
	for _, n := range nodes {
		if n == nil {
			continue
		}
		label := NodeDocument.Render(n.Text)
		if n.Kind() == domain.KindCategory {
			label = NodeCategory.Render(n.Text + "/")
		}
		if n.Link != "" {
			label += " " + MutedText.Render(n.Link)
		}
		fmt.Println(indent + label)
		printTree(n.Items, depth+1)
	}
}

func init() {
	rootCmd.AddCommand(treeCmd)
}
