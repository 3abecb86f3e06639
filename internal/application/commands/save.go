package commands

import (
	"context"
	"fmt"

	"notedock/internal/application"
	"notedock/internal/domain"
	"notedock/internal/ports"
)

// SaveDocumentResult contains the result of saving a document
type SaveDocumentResult struct {
	FilePath  string
	Timestamp string
	Created   bool
	Message   string
}

// SaveDocumentCommand writes a document, backing up the prior version
type SaveDocumentCommand struct {
	repo     ports.ContentRepository
	FilePath string
	Content  string
}

// NewSaveDocumentCommand creates a new SaveDocumentCommand
func NewSaveDocumentCommand(repo ports.ContentRepository, filePath, content string) *SaveDocumentCommand {
	return &SaveDocumentCommand{
		repo:     repo,
		FilePath: filePath,
		Content:  content,
	}
}

// Validate checks if the save operation is valid
func (c *SaveDocumentCommand) Validate() error {
	if err := application.ValidateRequired("filePath", c.FilePath); err != nil {
		return err
	}
	return application.ValidateDocumentPath(c.FilePath)
}

// Execute runs the save command
func (c *SaveDocumentCommand) Execute(ctx context.Context) (*SaveDocumentResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	res, err := c.repo.SaveDocument(c.FilePath, c.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to save %s: %w", c.FilePath, err)
	}

	msg := "File saved successfully"
	if res.Created {
		msg = fmt.Sprintf("Created %s", domain.DocumentLink(c.FilePath))
	}

	return &SaveDocumentResult{
		FilePath:  res.FilePath,
		Timestamp: res.Timestamp,
		Created:   res.Created,
		Message:   msg,
	}, nil
}
