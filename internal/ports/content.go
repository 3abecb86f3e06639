package ports

import (
	"io"

	"notedock/internal/domain"
)

// ContentRepository defines the mutation and query surface of the content tree
type ContentRepository interface {
	// Document operations
	SaveDocument(filePath, content string) (*domain.SaveResult, error)
	ReadDocument(filePath string) ([]byte, error)
	ResolveDocument(filePath string) (string, error)
	UploadImage(mdPath, fileName string, data io.Reader) (string, error)

	// Structural operations
	AddCategory(name string) error
	AddNode(name string, parent []string) error
	AddDocument(name string, parent []string) (string, error)
	DeleteNode(segments []string) error

	// Queries
	Sidebar() (*domain.Sidebar, error)
	Nav() (*domain.Nav, error)
	RecentlyModified() ([]domain.RecentFile, error)

	// Landing page
	RefreshLanding() (int, error)
}
