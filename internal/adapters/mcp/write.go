package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"notedock/internal/application/commands"
	"notedock/internal/ports"
)

// RegisterWriteTools adds all content mutation tools to the MCP server.
func RegisterWriteTools(s *server.MCPServer, repo ports.ContentRepository) {
	s.AddTool(saveDocumentTool(), saveDocumentHandler(repo))
	s.AddTool(addCategoryTool(), addCategoryHandler(repo))
	s.AddTool(addNodeTool(), addNodeHandler(repo))
	s.AddTool(addDocumentTool(), addDocumentHandler(repo))
	s.AddTool(deleteNodeTool(), deleteNodeHandler(repo))
	s.AddTool(refreshLandingTool(), refreshLandingHandler(repo))
}

// --- save_document ---

func saveDocumentTool() mcp.Tool {
	return mcp.NewTool("save_document",
		mcp.WithDescription("Save markdown content to a document. Existing documents are backed up first; a new document must already have a sidebar node."),
		mcp.WithString("file_path",
			mcp.Description("Document path under /docs/ ending in .md (e.g. /docs/guide/intro.md)"),
			mcp.Required(),
		),
		mcp.WithString("content",
			mcp.Description("Full markdown content of the document"),
			mcp.Required(),
		),
	)
}

func saveDocumentHandler(repo ports.ContentRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewSaveDocumentCommand(repo, req.GetString("file_path", ""), req.GetString("content", ""))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		text := result.Message + " at " + result.Timestamp
		if _, err := commands.NewRefreshLandingCommand(repo).Execute(ctx); err != nil {
			text += " (landing page not refreshed: " + err.Error() + ")"
		}
		return mcp.NewToolResultText(text), nil
	}
}

// --- add_category ---

func addCategoryTool() mcp.Tool {
	return mcp.NewTool("add_category",
		mcp.WithDescription("Add a top-level category: a nav entry, a sidebar section, and a default index page."),
		mcp.WithString("name",
			mcp.Description("Category name"),
			mcp.Required(),
		),
	)
}

func addCategoryHandler(repo ports.ContentRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewAddCategoryCommand(repo, req.GetString("name", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message + ": " + result.Link), nil
	}
}

// --- add_node ---

func addNodeTool() mcp.Tool {
	return mcp.NewTool("add_node",
		mcp.WithDescription("Add an empty category node under an existing sidebar node."),
		mcp.WithString("name",
			mcp.Description("Name of the new node"),
			mcp.Required(),
		),
		mcp.WithString("parent",
			mcp.Description("Sidebar path of the parent, segments separated by / (e.g. guide/Advanced)"),
			mcp.Required(),
		),
	)
}

func addNodeHandler(repo ports.ContentRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewAddNodeCommand(repo, req.GetString("name", ""), segments(req, "parent"))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message + ": " + commands.FormatSegments(result.Path)), nil
	}
}

// --- add_document ---

func addDocumentTool() mcp.Tool {
	return mcp.NewTool("add_document",
		mcp.WithDescription("Add a document node under an existing sidebar node and create its markdown file."),
		mcp.WithString("name",
			mcp.Description("Document name without extension"),
			mcp.Required(),
		),
		mcp.WithString("parent",
			mcp.Description("Sidebar path of the parent, segments separated by /"),
			mcp.Required(),
		),
	)
}

func addDocumentHandler(repo ports.ContentRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewAddDocumentCommand(repo, req.GetString("name", ""), segments(req, "parent"))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message + ": " + result.Link), nil
	}
}

// --- delete_node ---

func deleteNodeTool() mcp.Tool {
	return mcp.NewTool("delete_node",
		mcp.WithDescription("Delete a sidebar node with its content directory. A single segment deletes a whole top-level category."),
		mcp.WithString("path",
			mcp.Description("Sidebar path of the node, segments separated by /"),
			mcp.Required(),
		),
	)
}

func deleteNodeHandler(repo ports.ContentRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewDeleteCommand(repo, segments(req, "path")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- refresh_landing ---

func refreshLandingTool() mcp.Tool {
	return mcp.NewTool("refresh_landing",
		mcp.WithDescription("Rewrite the landing page feature list with the most recently modified documents."),
	)
}

func refreshLandingHandler(repo ports.ContentRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewRefreshLandingCommand(repo).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}
