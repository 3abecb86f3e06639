package ports

import "notedock/internal/domain"

// DocumentIndex persists document modification times. Readers sync it
// incrementally before querying, since docs/ may change outside the process.
type DocumentIndex interface {
	// Lifecycle
	Open(root string) error
	Close() error

	// Sync operations
	NeedsFullRebuild() bool
	SyncIncremental() (*domain.SyncStats, error)
	SyncFull() (*domain.SyncStats, error)

	// Point updates after a local write
	Touch(stat domain.DocumentStat) error
	Forget(relPrefix string) error

	// Queries
	Recent(limit int) ([]domain.DocumentStat, error)
}
