package commands

import (
	"context"
	"fmt"

	"notedock/internal/domain"
	"notedock/internal/ports"
)

// RecentResult contains the recently modified documents
type RecentResult struct {
	Files   []domain.RecentFile
	Message string
}

// RecentCommand lists the most recently modified documents
type RecentCommand struct {
	repo ports.ContentRepository
}

// NewRecentCommand creates a new RecentCommand
func NewRecentCommand(repo ports.ContentRepository) *RecentCommand {
	return &RecentCommand{repo: repo}
}

// Execute runs the recent command
func (c *RecentCommand) Execute(ctx context.Context) (*RecentResult, error) {
	files, err := c.repo.RecentlyModified()
	if err != nil {
		return nil, fmt.Errorf("failed to list recent documents: %w", err)
	}

	return &RecentResult{
		Files:   files,
		Message: fmt.Sprintf("%d recently modified documents", len(files)),
	}, nil
}

// RefreshLandingResult contains the result of rewriting the landing page
type RefreshLandingResult struct {
	Features int
	Message  string
}

// RefreshLandingCommand rewrites the landing page's recent documents list
type RefreshLandingCommand struct {
	repo ports.ContentRepository
}

// NewRefreshLandingCommand creates a new RefreshLandingCommand
func NewRefreshLandingCommand(repo ports.ContentRepository) *RefreshLandingCommand {
	return &RefreshLandingCommand{repo: repo}
}

// Execute runs the refresh landing command
func (c *RefreshLandingCommand) Execute(ctx context.Context) (*RefreshLandingResult, error) {
	n, err := c.repo.RefreshLanding()
	if err != nil {
		return nil, fmt.Errorf("failed to refresh landing page: %w", err)
	}

	return &RefreshLandingResult{
		Features: n,
		Message:  fmt.Sprintf("Landing page lists %d documents", n),
	}, nil
}
