package commands

import (
	"context"
	"fmt"

	"notedock/internal/application"
	"notedock/internal/ports"
)

// OpenDocumentResult contains the result of opening a document
type OpenDocumentResult struct {
	FilePath string
	Message  string
}

// OpenDocumentCommand opens a document with an external handler
type OpenDocumentCommand struct {
	repo     ports.ContentRepository
	opener   ports.FileOpener
	FilePath string
}

// NewOpenDocumentCommand creates a new OpenDocumentCommand
func NewOpenDocumentCommand(repo ports.ContentRepository, opener ports.FileOpener, filePath string) *OpenDocumentCommand {
	return &OpenDocumentCommand{
		repo:     repo,
		opener:   opener,
		FilePath: filePath,
	}
}

// Validate checks if the open operation is valid
func (c *OpenDocumentCommand) Validate() error {
	if err := application.ValidateRequired("filePath", c.FilePath); err != nil {
		return err
	}
	return application.ValidateDocumentPath(c.FilePath)
}

// Execute runs the open command
func (c *OpenDocumentCommand) Execute(ctx context.Context) (*OpenDocumentResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	abs, err := c.repo.ResolveDocument(c.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", c.FilePath, err)
	}

	if err := c.opener.OpenFile(abs); err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", abs, err)
	}

	return &OpenDocumentResult{
		FilePath: abs,
		Message:  "File opened successfully",
	}, nil
}
