package commands

import (
	"context"
	"fmt"

	"notedock/internal/application"
	"notedock/internal/domain"
	"notedock/internal/ports"
)

// AddCategoryResult contains the result of adding a top-level category
type AddCategoryResult struct {
	Name    string
	Link    string
	Message string
}

// AddCategoryCommand adds a nav entry and a matching sidebar section
type AddCategoryCommand struct {
	repo ports.ContentRepository
	Name string
}

// NewAddCategoryCommand creates a new AddCategoryCommand
func NewAddCategoryCommand(repo ports.ContentRepository, name string) *AddCategoryCommand {
	return &AddCategoryCommand{
		repo: repo,
		Name: name,
	}
}

// Validate checks if the add category operation is valid
func (c *AddCategoryCommand) Validate() error {
	if err := application.ValidateRequired("nodeName", c.Name); err != nil {
		return err
	}
	return domain.ValidateName(c.Name)
}

// Execute runs the add category command
func (c *AddCategoryCommand) Execute(ctx context.Context) (*AddCategoryResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := c.repo.AddCategory(c.Name); err != nil {
		return nil, fmt.Errorf("failed to add category %s: %w", c.Name, err)
	}

	return &AddCategoryResult{
		Name:    c.Name,
		Link:    domain.SectionKey(c.Name),
		Message: "Navigation added successfully",
	}, nil
}
