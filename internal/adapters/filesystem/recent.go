package filesystem

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"notedock/internal/domain"
)

// RecentlyModified lists the most recently modified documents, newest first
func (r *Repository) RecentlyModified() ([]domain.RecentFile, error) {
	stats, err := r.documentStats()
	if err != nil {
		return nil, err
	}
	return domain.BuildRecent(stats, r.now(), domain.RecentLimit), nil
}

func (r *Repository) documentStats() ([]domain.DocumentStat, error) {
	if r.index != nil {
		// other processes edit docs/ too, so reconcile with disk first
		stats, err := r.indexedStats()
		if err == nil {
			return stats, nil
		}
		r.logger.Warn("index query failed, walking content tree", "error", err)
	}
	return WalkDocuments(r.root)
}

func (r *Repository) indexedStats() ([]domain.DocumentStat, error) {
	if _, err := r.index.SyncIncremental(); err != nil {
		return nil, err
	}
	return r.index.Recent(domain.RecentLimit)
}

// WalkDocuments stats every document under root/docs, skipping backup folders
func WalkDocuments(root string) ([]domain.DocumentStat, error) {
	var stats []domain.DocumentStat
	err := filepath.WalkDir(filepath.Join(root, domain.ContentDir), func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == domain.BackupDir {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(d.Name(), domain.DocumentExt) {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		stats = append(stats, domain.DocumentStat{RelPath: filepath.ToSlash(rel), Mtime: info.ModTime()})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk content: %w", err)
	}
	return stats, nil
}

// RefreshLanding rewrites the landing page features with the recently
// modified documents and returns how many were listed
func (r *Repository) RefreshLanding() (int, error) {
	files, err := r.RecentlyModified()
	if err != nil {
		return 0, err
	}

	r.landingMu.Lock()
	defer r.landingMu.Unlock()

	path := filepath.Join(r.root, LandingFile)
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read landing page: %w", err)
	}

	updated, err := domain.ReplaceFeatures(string(content), domain.FeaturesFromRecent(files))
	if err != nil {
		return 0, fmt.Errorf("failed to update landing page: %w", err)
	}
	if updated == string(content) {
		return len(files), nil
	}

	if err := atomicWriteFile(path, []byte(updated), 0644); err != nil {
		return 0, fmt.Errorf("failed to write landing page: %w", err)
	}
	r.logger.Debug("landing page refreshed", "features", len(files))
	return len(files), nil
}
