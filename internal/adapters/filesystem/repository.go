package filesystem

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"notedock/internal/domain"
	"notedock/internal/ports"
)

// Site layout relative to the root
const (
	SidebarFile = ".vitepress/theme/data/sidebar-data.json"
	NavFile     = ".vitepress/theme/data/nav-data.json"
	LandingFile = "index.md"
)

// Repository implements ports.ContentRepository on a documentation site
// checked out on the local filesystem
type Repository struct {
	root string

	// mu serializes every read-modify-write of the sidebar and nav documents
	mu sync.Mutex
	// landingMu serializes landing page rewrites
	landingMu sync.Mutex

	backups  *BackupStore
	reloader ports.Reloader
	index    ports.DocumentIndex
	now      func() time.Time
	logger   *slog.Logger
}

var _ ports.ContentRepository = (*Repository)(nil)

// Option configures a Repository
type Option func(*Repository)

// WithReloader sets the collaborator notified after structural changes
func WithReloader(r ports.Reloader) Option {
	return func(repo *Repository) { repo.reloader = r }
}

// WithIndex makes recent-file queries use a document index instead of a walk
func WithIndex(idx ports.DocumentIndex) Option {
	return func(repo *Repository) { repo.index = idx }
}

// WithClock overrides the time source used for save timestamps
func WithClock(now func() time.Time) Option {
	return func(repo *Repository) { repo.now = now }
}

// WithLogger sets the logger
func WithLogger(l *slog.Logger) Option {
	return func(repo *Repository) { repo.logger = l }
}

// NewRepository creates a new filesystem repository rooted at the site directory
func NewRepository(root string, opts ...Option) *Repository {
	// Expand ~ to home directory
	if strings.HasPrefix(root, "~") {
		home, _ := os.UserHomeDir()
		root = filepath.Join(home, root[1:])
	}

	repo := &Repository{
		root:     root,
		reloader: nopReloader{},
		now:      time.Now,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(repo)
	}
	repo.logger = repo.logger.With("component", "content")
	repo.backups = NewBackupStore(repo.logger)
	return repo
}

// Root returns the site root directory
func (r *Repository) Root() string {
	return r.root
}

// ContentDir returns the absolute directory holding the documents
func (r *Repository) ContentDir() string {
	return filepath.Join(r.root, domain.ContentDir)
}

// Wait blocks until pending backup writes have finished
func (r *Repository) Wait() {
	r.backups.Wait()
}

type nopReloader struct{}

func (nopReloader) Trigger() {}

// resolve maps a validated content path ("/docs/a/b.md") to disk
func (r *Repository) resolve(p string) string {
	return filepath.Join(r.root, filepath.FromSlash(strings.TrimPrefix(p, "/")))
}

// segmentsDir maps sidebar segments to their content directory
func (r *Repository) segmentsDir(segments []string) string {
	parts := append([]string{r.ContentDir()}, segments...)
	return filepath.Join(parts...)
}

// ResolveDocument validates a document path and returns its location on disk
func (r *Repository) ResolveDocument(filePath string) (string, error) {
	if err := domain.ValidatePath(filePath, domain.PathDocument); err != nil {
		return "", err
	}
	return r.resolve(filePath), nil
}

// ReadDocument returns the raw bytes of a document
func (r *Repository) ReadDocument(filePath string) ([]byte, error) {
	abs, err := r.ResolveDocument(filePath)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(abs)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, filePath)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	return data, nil
}

// Sidebar loads the sidebar document
func (r *Repository) Sidebar() (*domain.Sidebar, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loadSidebar()
}

// Nav loads the nav document
func (r *Repository) Nav() (*domain.Nav, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loadNav()
}

func (r *Repository) loadSidebar() (*domain.Sidebar, error) {
	data, err := os.ReadFile(filepath.Join(r.root, SidebarFile))
	if err != nil {
		return nil, fmt.Errorf("failed to read sidebar: %w", err)
	}
	return domain.ParseSidebar(data)
}

func (r *Repository) saveSidebar(s *domain.Sidebar) error {
	data, err := s.Encode()
	if err != nil {
		return fmt.Errorf("failed to encode sidebar: %w", err)
	}
	if err := atomicWriteFile(filepath.Join(r.root, SidebarFile), data, 0644); err != nil {
		return fmt.Errorf("failed to write sidebar: %w", err)
	}
	return nil
}

func (r *Repository) loadNav() (*domain.Nav, error) {
	data, err := os.ReadFile(filepath.Join(r.root, NavFile))
	if err != nil {
		return nil, fmt.Errorf("failed to read nav: %w", err)
	}
	return domain.ParseNav(data)
}

func (r *Repository) saveNav(n *domain.Nav) error {
	data, err := n.Encode()
	if err != nil {
		return fmt.Errorf("failed to encode nav: %w", err)
	}
	if err := atomicWriteFile(filepath.Join(r.root, NavFile), data, 0644); err != nil {
		return fmt.Errorf("failed to write nav: %w", err)
	}
	return nil
}

// touch records a local document write in the index, if one is configured
func (r *Repository) touch(abs string) {
	if r.index == nil {
		return
	}
	info, err := os.Stat(abs)
	if err != nil {
		return
	}
	rel, err := filepath.Rel(r.root, abs)
	if err != nil {
		return
	}
	if err := r.index.Touch(domain.DocumentStat{RelPath: filepath.ToSlash(rel), Mtime: info.ModTime()}); err != nil {
		r.logger.Warn("index update failed", "path", rel, "error", err)
	}
}

// forget drops a removed subtree from the index, if one is configured
func (r *Repository) forget(abs string) {
	if r.index == nil {
		return
	}
	rel, err := filepath.Rel(r.root, abs)
	if err != nil {
		return
	}
	if err := r.index.Forget(filepath.ToSlash(rel)); err != nil {
		r.logger.Warn("index update failed", "path", rel, "error", err)
	}
}

// atomicWriteFile writes data to a temp file in the target directory and
// renames it into place
func atomicWriteFile(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		return err
	}
	return os.Rename(tmpPath, path)
}
