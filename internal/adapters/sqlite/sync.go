package sqlite

import (
	"time"

	"notedock/internal/adapters/filesystem"
	"notedock/internal/domain"
)

// SyncFull rebuilds the index from a walk of the content tree
func (idx *Index) SyncFull() (*domain.SyncStats, error) {
	start := time.Now()
	stats := &domain.SyncStats{}

	docs, err := filesystem.WalkDocuments(idx.root)
	if err != nil {
		return nil, err
	}
	stats.FilesScanned = len(docs)

	tx, err := idx.begin()
	if err != nil {
		return nil, err
	}
	defer tx.rollback()

	if err := tx.clear(); err != nil {
		return nil, err
	}
	for _, doc := range docs {
		if err := tx.upsert(doc); err != nil {
			return nil, err
		}
		stats.DocumentsAdded++
	}
	if err := tx.commit(); err != nil {
		return nil, err
	}

	if err := idx.updateMeta(start); err != nil {
		return stats, err
	}

	stats.Duration = time.Since(start)
	return stats, nil
}

// SyncIncremental updates only documents whose mtime changed and drops
// documents that no longer exist
func (idx *Index) SyncIncremental() (*domain.SyncStats, error) {
	start := time.Now()
	stats := &domain.SyncStats{}

	existing := make(map[string]int64)
	rows, err := idx.db.Query(`SELECT path, mtime FROM documents`)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var path string
		var mtime int64
		if err := rows.Scan(&path, &mtime); err != nil {
			rows.Close()
			return nil, err
		}
		existing[path] = mtime
	}
	rows.Close()

	docs, err := filesystem.WalkDocuments(idx.root)
	if err != nil {
		return nil, err
	}
	stats.FilesScanned = len(docs)

	tx, err := idx.begin()
	if err != nil {
		return nil, err
	}
	defer tx.rollback()

	seen := make(map[string]bool, len(docs))
	for _, doc := range docs {
		seen[doc.RelPath] = true
		old, ok := existing[doc.RelPath]
		if ok && old == doc.Mtime.UnixNano() {
			continue
		}
		if err := tx.upsert(doc); err != nil {
			return nil, err
		}
		if ok {
			stats.DocumentsUpdated++
		} else {
			stats.DocumentsAdded++
		}
	}

	for path := range existing {
		if !seen[path] {
			if err := tx.delete(path); err != nil {
				return nil, err
			}
			stats.DocumentsDeleted++
		}
	}

	if err := tx.commit(); err != nil {
		return nil, err
	}
	if err := idx.updateMeta(start); err != nil {
		return stats, err
	}

	stats.Duration = time.Since(start)
	return stats, nil
}
