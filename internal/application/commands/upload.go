package commands

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"notedock/internal/application"
	"notedock/internal/domain"
	"notedock/internal/ports"
)

// UploadImageResult contains the result of storing an image
type UploadImageResult struct {
	URL     string
	Message string
}

// UploadImageCommand stores an image in the assets folder next to a document
type UploadImageCommand struct {
	repo     ports.ContentRepository
	MDPath   string
	FileName string
	Data     io.Reader
}

// NewUploadImageCommand creates a new UploadImageCommand
func NewUploadImageCommand(repo ports.ContentRepository, mdPath, fileName string, data io.Reader) *UploadImageCommand {
	return &UploadImageCommand{
		repo:     repo,
		MDPath:   mdPath,
		FileName: fileName,
		Data:     data,
	}
}

// Validate checks if the upload operation is valid
func (c *UploadImageCommand) Validate() error {
	if err := application.ValidateRequired("mdPath", c.MDPath); err != nil {
		return err
	}
	if err := application.ValidateRequired("fileName", c.FileName); err != nil {
		return err
	}
	if c.Data == nil {
		return &application.ValidationError{Field: "file", Message: "file is required"}
	}
	if err := application.ValidateDocumentPath(c.MDPath); err != nil {
		return err
	}
	if !domain.IsImageExt(filepath.Ext(c.FileName)) {
		return &domain.PathError{Path: c.FileName, Err: domain.ErrUnsupportedImage}
	}
	return nil
}

// Execute runs the upload command
func (c *UploadImageCommand) Execute(ctx context.Context) (*UploadImageResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	url, err := c.repo.UploadImage(c.MDPath, c.FileName, c.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to upload %s: %w", c.FileName, err)
	}

	return &UploadImageResult{
		URL:     url,
		Message: "Image uploaded successfully",
	}, nil
}
