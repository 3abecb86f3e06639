package commands

import (
	"context"
	"fmt"

	"notedock/internal/domain"
	"notedock/internal/ports"
)

// TreeResult contains the navigation bar and the sidebar tree
type TreeResult struct {
	Nav     *domain.Nav
	Sidebar *domain.Sidebar
}

// TreeCommand loads the navigation structures for display
type TreeCommand struct {
	repo ports.ContentRepository
}

// NewTreeCommand creates a new TreeCommand
func NewTreeCommand(repo ports.ContentRepository) *TreeCommand {
	return &TreeCommand{repo: repo}
}

// Execute runs the tree command
func (c *TreeCommand) Execute(ctx context.Context) (*TreeResult, error) {
	nav, err := c.repo.Nav()
	if err != nil {
		return nil, fmt.Errorf("failed to load nav: %w", err)
	}
	sidebar, err := c.repo.Sidebar()
	if err != nil {
		return nil, fmt.Errorf("failed to load sidebar: %w", err)
	}
	return &TreeResult{Nav: nav, Sidebar: sidebar}, nil
}
