package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"notedock/internal/domain"
)

// AddCategory adds a nav entry ahead of the reserved last entry and a
// sidebar section holding the category's index document, then creates the
// category directory with a default index page.
func (r *Repository) AddCategory(name string) error {
	if err := domain.ValidateName(name); err != nil {
		return err
	}
	key := domain.SectionKey(name)

	r.mu.Lock()
	defer r.mu.Unlock()

	nav, err := r.loadNav()
	if err != nil {
		return err
	}
	sidebar, err := r.loadSidebar()
	if err != nil {
		return err
	}

	if nav.Contains(name, key) {
		return fmt.Errorf("%w: nav entry %s", domain.ErrAlreadyExists, name)
	}

	section := &domain.Node{Text: name, Link: key + "index", Items: []*domain.Node{}}
	if err := sidebar.AddSection(key, []*domain.Node{section}); err != nil {
		return err
	}
	nav.InsertBeforeLast(&domain.NavEntry{Text: name, Link: key})

	if err := r.saveNav(nav); err != nil {
		return err
	}
	if err := r.saveSidebar(sidebar); err != nil {
		return err
	}

	dir := r.segmentsDir([]string{name})
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create category directory: %w", err)
	}
	index := filepath.Join(dir, "index"+domain.DocumentExt)
	if err := atomicWriteFile(index, []byte(domain.DefaultDocument(name)), 0644); err != nil {
		return fmt.Errorf("failed to write category index: %w", err)
	}
	r.touch(index)

	r.logger.Info("category added", "name", name, "link", key)
	r.reloader.Trigger()
	return nil
}

// AddNode appends an empty category under the node at parent
func (r *Repository) AddNode(name string, parent []string) error {
	if err := validateChild(name, parent); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	sidebar, err := r.loadSidebar()
	if err != nil {
		return err
	}
	parentNode, err := findParent(sidebar, parent, name)
	if err != nil {
		return err
	}

	domain.InsertChild(parentNode, domain.NewCategory(name))
	if err := r.saveSidebar(sidebar); err != nil {
		return err
	}

	r.logger.Info("node added", "path", domain.SegmentsPath(parent)+"/"+name)
	r.reloader.Trigger()
	return nil
}

// AddDocument appends a document node under parent and writes its default
// body. It returns the new node's link.
func (r *Repository) AddDocument(name string, parent []string) (string, error) {
	if err := validateChild(name, parent); err != nil {
		return "", err
	}

	segments := append(append([]string{}, parent...), name)
	link := domain.SegmentsPath(segments)
	dir := r.segmentsDir(parent)
	abs := filepath.Join(dir, name+domain.DocumentExt)

	r.mu.Lock()
	defer r.mu.Unlock()

	sidebar, err := r.loadSidebar()
	if err != nil {
		return "", err
	}
	parentNode, err := findParent(sidebar, parent, name)
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(abs); err == nil {
		return "", fmt.Errorf("%w: file %s", domain.ErrAlreadyExists, link+domain.DocumentExt)
	}

	domain.InsertChild(parentNode, domain.NewDocument(name, link))
	if err := r.saveSidebar(sidebar); err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create document directory: %w", err)
	}
	if err := atomicWriteFile(abs, []byte(domain.DefaultDocument(name)), 0644); err != nil {
		return "", fmt.Errorf("failed to write document: %w", err)
	}
	r.touch(abs)

	r.logger.Info("document added", "path", link)
	r.reloader.Trigger()
	return link, nil
}

// DeleteNode removes the node at segments together with its content
// directory and, for linked nodes, its same-named document. Absent files
// are not an error.
func (r *Repository) DeleteNode(segments []string) error {
	if err := domain.ValidateSegments(segments); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	sidebar, err := r.loadSidebar()
	if err != nil {
		return err
	}
	target, err := sidebar.Find(segments)
	if err != nil {
		return err
	}

	dir := r.segmentsDir(segments)
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("failed to delete %s: %w", dir, err)
	}
	r.forget(dir)

	if len(segments) == 1 {
		name := segments[0]
		nav, err := r.loadNav()
		if err != nil {
			return err
		}
		nav.Remove(name)
		if !sidebar.RemoveSection(domain.SectionKey(name)) {
			sidebar.RemoveTopLevel(name)
		}
		if err := r.saveNav(nav); err != nil {
			return err
		}
	} else {
		if target.Link != "" {
			doc := dir + domain.DocumentExt
			if err := os.Remove(doc); err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("failed to delete %s: %w", doc, err)
			}
			r.forget(doc)
		}
		parentNode, err := sidebar.Find(segments[:len(segments)-1])
		if err != nil {
			return err
		}
		domain.RemoveChild(parentNode, segments[len(segments)-1])
	}

	if err := r.saveSidebar(sidebar); err != nil {
		return err
	}

	r.logger.Info("node deleted", "path", domain.SegmentsPath(segments))
	r.reloader.Trigger()
	return nil
}

func validateChild(name string, parent []string) error {
	if err := domain.ValidateName(name); err != nil {
		return err
	}
	return domain.ValidateSegments(parent)
}

// findParent locates parent and rejects a sibling that already uses name
func findParent(sidebar *domain.Sidebar, parent []string, name string) (*domain.Node, error) {
	node, err := sidebar.Find(parent)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrParentNotFound, strings.Join(parent, "/"))
	}
	if node.Child(name) != nil {
		return nil, fmt.Errorf("%w: %s/%s", domain.ErrAlreadyExists, strings.Join(parent, "/"), name)
	}
	return node, nil
}
