package commands

import (
	"context"
	"fmt"
	"strings"

	"notedock/internal/application"
	"notedock/internal/domain"
	"notedock/internal/ports"
)

// AddNodeResult contains the result of adding a category node
type AddNodeResult struct {
	Path    []string
	Message string
}

// AddNodeCommand adds an empty category under an existing node
type AddNodeCommand struct {
	repo   ports.ContentRepository
	Name   string
	Parent []string
}

// NewAddNodeCommand creates a new AddNodeCommand
func NewAddNodeCommand(repo ports.ContentRepository, name string, parent []string) *AddNodeCommand {
	return &AddNodeCommand{
		repo:   repo,
		Name:   name,
		Parent: parent,
	}
}

// Validate checks if the add node operation is valid
func (c *AddNodeCommand) Validate() error {
	return validateChild("nodeName", c.Name, c.Parent)
}

// Execute runs the add node command
func (c *AddNodeCommand) Execute(ctx context.Context) (*AddNodeResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := c.repo.AddNode(c.Name, c.Parent); err != nil {
		return nil, fmt.Errorf("failed to add node %s: %w", c.Name, err)
	}

	return &AddNodeResult{
		Path:    childPath(c.Parent, c.Name),
		Message: "Node added successfully",
	}, nil
}

// AddDocumentResult contains the result of adding a document node
type AddDocumentResult struct {
	Path    []string
	Link    string
	Message string
}

// AddDocumentCommand adds a leaf document under an existing node and
// creates its backing file
type AddDocumentCommand struct {
	repo   ports.ContentRepository
	Name   string
	Parent []string
}

// NewAddDocumentCommand creates a new AddDocumentCommand
func NewAddDocumentCommand(repo ports.ContentRepository, name string, parent []string) *AddDocumentCommand {
	return &AddDocumentCommand{
		repo:   repo,
		Name:   name,
		Parent: parent,
	}
}

// Validate checks if the add document operation is valid
func (c *AddDocumentCommand) Validate() error {
	return validateChild("mdName", c.Name, c.Parent)
}

// Execute runs the add document command
func (c *AddDocumentCommand) Execute(ctx context.Context) (*AddDocumentResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	link, err := c.repo.AddDocument(c.Name, c.Parent)
	if err != nil {
		return nil, fmt.Errorf("failed to add document %s: %w", c.Name, err)
	}

	return &AddDocumentResult{
		Path:    childPath(c.Parent, c.Name),
		Link:    link,
		Message: "Markdown file added successfully",
	}, nil
}

func validateChild(field, name string, parent []string) error {
	if err := application.ValidateRequired(field, name); err != nil {
		return err
	}
	if err := domain.ValidateName(name); err != nil {
		return err
	}
	return application.ValidateSegments("paths", parent)
}

func childPath(parent []string, name string) []string {
	p := make([]string, 0, len(parent)+1)
	p = append(p, parent...)
	return append(p, name)
}

// FormatSegments renders a sidebar path for messages ("guide/Advanced")
func FormatSegments(segments []string) string {
	return strings.Join(segments, "/")
}
