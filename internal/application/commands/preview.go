package commands

import (
	"context"
	"fmt"

	"notedock/internal/application"
	"notedock/internal/ports"
)

// PreviewResult contains a rendered document
type PreviewResult struct {
	FilePath string
	HTML     string
}

// PreviewCommand renders a document to HTML
type PreviewCommand struct {
	repo     ports.ContentRepository
	renderer ports.Renderer
	FilePath string
}

// NewPreviewCommand creates a new PreviewCommand
func NewPreviewCommand(repo ports.ContentRepository, renderer ports.Renderer, filePath string) *PreviewCommand {
	return &PreviewCommand{
		repo:     repo,
		renderer: renderer,
		FilePath: filePath,
	}
}

// Validate checks if the preview operation is valid
func (c *PreviewCommand) Validate() error {
	if err := application.ValidateRequired("filePath", c.FilePath); err != nil {
		return err
	}
	return application.ValidateDocumentPath(c.FilePath)
}

// Execute runs the preview command
func (c *PreviewCommand) Execute(ctx context.Context) (*PreviewResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	src, err := c.repo.ReadDocument(c.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", c.FilePath, err)
	}

	html, err := c.renderer.Render(src)
	if err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", c.FilePath, err)
	}

	return &PreviewResult{
		FilePath: c.FilePath,
		HTML:     string(html),
	}, nil
}
