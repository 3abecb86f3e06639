package filesystem

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"notedock/internal/domain"
)

// SaveDocument writes content to a document. An existing document has its
// prior version backed up in the background; a new document must already
// have a sidebar node, which receives the document's link.
func (r *Repository) SaveDocument(filePath, content string) (*domain.SaveResult, error) {
	if err := domain.ValidatePath(filePath, domain.PathDocument); err != nil {
		return nil, err
	}

	abs := r.resolve(filePath)
	ts := domain.FormatTimestamp(r.now())

	old, err := os.ReadFile(abs)
	switch {
	case err == nil:
		if err := atomicWriteFile(abs, []byte(content), 0644); err != nil {
			return nil, fmt.Errorf("failed to write document: %w", err)
		}
		r.logger.Info("document saved", "path", abs)
		r.backups.Schedule(abs, old, ts)
		r.touch(abs)
		return &domain.SaveResult{FilePath: abs, Timestamp: ts}, nil

	case errors.Is(err, os.ErrNotExist):
		if err := r.createLinkedDocument(filePath, abs, content); err != nil {
			return nil, err
		}
		r.logger.Info("document created", "path", abs)
		r.touch(abs)
		r.reloader.Trigger()
		return &domain.SaveResult{FilePath: abs, Timestamp: ts, Created: true}, nil

	default:
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
}

// createLinkedDocument sets the sidebar link for a new document and writes it
func (r *Repository) createLinkedDocument(filePath, abs, content string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	sidebar, err := r.loadSidebar()
	if err != nil {
		return err
	}

	node, err := sidebar.Find(domain.DocumentSegments(filePath))
	if err != nil {
		return fmt.Errorf("no sidebar node for %s: %w", filePath, err)
	}
	node.Link = domain.DocumentLink(filePath)

	if err := r.saveSidebar(sidebar); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(abs), 0755); err != nil {
		return fmt.Errorf("failed to create document directory: %w", err)
	}
	if content == "" {
		content = domain.DefaultDocument(domain.DocumentName(filePath))
	}
	if err := atomicWriteFile(abs, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	return nil
}
