package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"notedock/internal/application/commands"
	"notedock/internal/domain"
	"notedock/internal/ports"
)

// RegisterReadTools adds all read-only content tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, repo ports.ContentRepository, renderer ports.Renderer) {
	s.AddTool(treeTool(), treeHandler(repo))
	s.AddTool(recentTool(), recentHandler(repo))
	s.AddTool(readDocumentTool(), readDocumentHandler(repo))
	s.AddTool(previewTool(), previewHandler(repo, renderer))
}

// --- tree ---

func treeTool() mcp.Tool {
	return mcp.NewTool("tree",
		mcp.WithDescription("Display the navigation bar and the sidebar tree of the documentation site."),
	)
}

func treeHandler(repo ports.ContentRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewTreeCommand(repo).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(RenderTree(result.Nav, result.Sidebar)), nil
	}
}

// RenderTree formats the nav entries and sidebar sections as indented text
func RenderTree(nav *domain.Nav, sidebar *domain.Sidebar) string {
	var sb strings.Builder
	sb.WriteString("nav:\n")
	for _, e := range nav.Entries {
		fmt.Fprintf(&sb, "  %s -> %s\n", e.Text, e.Link)
	}
	for _, sec := range sidebar.Sections {
		fmt.Fprintf(&sb, "%s\n", sec.Key)
		renderNodes(&sb, sec.Nodes, "  ")
	}
	return sb.String()
}

func renderNodes(sb *strings.Builder, nodes []*domain.Node, prefix string) {
	for _, n := range nodes {
		if n == nil {
			continue
		}
		switch {
		case n.Link != "":
			fmt.Fprintf(sb, "%s%s (%s)\n", prefix, n.Text, n.Link)
		default:
			fmt.Fprintf(sb, "%s%s/\n", prefix, n.Text)
		}
		renderNodes(sb, n.Items, prefix+"  ")
	}
}

// --- recent ---

func recentTool() mcp.Tool {
	return mcp.NewTool("recent",
		mcp.WithDescription("List the most recently modified documents with relative modification times."),
	)
}

func recentHandler(repo ports.ContentRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewRecentCommand(repo).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if len(result.Files) == 0 {
			return mcp.NewToolResultText("No documents."), nil
		}

		var sb strings.Builder
		for _, f := range result.Files {
			fmt.Fprintf(&sb, "%s  %s  %s\n", f.Path, f.Title, f.Label)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- read_document ---

func readDocumentTool() mcp.Tool {
	return mcp.NewTool("read_document",
		mcp.WithDescription("Read the markdown source of a document."),
		mcp.WithString("file_path",
			mcp.Description("Document path under /docs/ ending in .md (e.g. /docs/guide/intro.md)"),
			mcp.Required(),
		),
	)
}

func readDocumentHandler(repo ports.ContentRepository) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		filePath := req.GetString("file_path", "")
		if filePath == "" {
			return toolError(fmt.Errorf("file_path is required"))
		}

		content, err := repo.ReadDocument(filePath)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(string(content)), nil
	}
}

// --- preview ---

func previewTool() mcp.Tool {
	return mcp.NewTool("preview",
		mcp.WithDescription("Render a document to HTML."),
		mcp.WithString("file_path",
			mcp.Description("Document path under /docs/ ending in .md"),
			mcp.Required(),
		),
	)
}

func previewHandler(repo ports.ContentRepository, renderer ports.Renderer) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewPreviewCommand(repo, renderer, req.GetString("file_path", ""))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.HTML), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

// segments parses a "/"-separated sidebar path argument
func segments(req mcp.CallToolRequest, name string) []string {
	return domain.SplitSegments(req.GetString(name, ""))
}
