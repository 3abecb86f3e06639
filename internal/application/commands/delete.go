package commands

import (
	"context"
	"fmt"

	"notedock/internal/application"
	"notedock/internal/ports"
)

// DeleteResult contains the result of a delete operation
type DeleteResult struct {
	Path    []string
	Message string
}

// DeleteCommand removes a sidebar node and its backing content
type DeleteCommand struct {
	repo ports.ContentRepository
	Path []string
}

// NewDeleteCommand creates a new DeleteCommand
func NewDeleteCommand(repo ports.ContentRepository, path []string) *DeleteCommand {
	return &DeleteCommand{
		repo: repo,
		Path: path,
	}
}

// Validate checks if the delete operation is valid
func (c *DeleteCommand) Validate() error {
	return application.ValidateSegments("paths", c.Path)
}

// Execute runs the delete command
func (c *DeleteCommand) Execute(ctx context.Context) (*DeleteResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := c.repo.DeleteNode(c.Path); err != nil {
		return nil, fmt.Errorf("failed to delete %s: %w", FormatSegments(c.Path), err)
	}

	return &DeleteResult{
		Path:    c.Path,
		Message: "Node deleted successfully",
	}, nil
}
