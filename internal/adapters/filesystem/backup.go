package filesystem

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"notedock/internal/domain"
)

const maxTimestampBumps = 1000

// BackupStore keeps prior versions of documents in a backups folder next
// to each document and prunes them to domain.MaxBackups
type BackupStore struct {
	keep int
	// mu makes each write-then-prune step atomic, so after all scheduled
	// backups finish exactly the newest keep remain
	mu     sync.Mutex
	wg     sync.WaitGroup
	logger *slog.Logger
}

// NewBackupStore creates a BackupStore
func NewBackupStore(logger *slog.Logger) *BackupStore {
	return &BackupStore{keep: domain.MaxBackups, logger: logger}
}

// Schedule writes the backup in the background. Failures are logged and
// never reach the caller.
func (b *BackupStore) Schedule(docPath string, content []byte, timestamp string) {
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		if _, err := b.Backup(docPath, content, timestamp); err != nil {
			b.logger.Warn("backup failed", "path", docPath, "error", err)
		}
	}()
}

// Backup writes content as the timestamped backup of docPath and prunes
// older backups. It returns the backup path.
func (b *BackupStore) Backup(docPath string, content []byte, timestamp string) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	dir := filepath.Join(filepath.Dir(docPath), domain.BackupDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	// two saves within one millisecond share a timestamp; keep both versions
	target := filepath.Join(dir, domain.BackupName(filepath.Base(docPath), timestamp))
	for i := 0; i < maxTimestampBumps; i++ {
		if _, err := os.Lstat(target); os.IsNotExist(err) {
			break
		}
		timestamp = domain.NextTimestamp(timestamp)
		target = filepath.Join(dir, domain.BackupName(filepath.Base(docPath), timestamp))
	}
	if err := atomicWriteFile(target, content, 0644); err != nil {
		return "", fmt.Errorf("failed to write backup: %w", err)
	}
	b.logger.Info("backup written", "path", target)

	if err := b.prune(docPath); err != nil {
		b.logger.Warn("backup prune failed", "path", docPath, "error", err)
	}
	return target, nil
}

// prune deletes every backup of docPath beyond the newest keep. Callers
// hold b.mu.
func (b *BackupStore) prune(docPath string) error {
	dir := filepath.Join(filepath.Dir(docPath), domain.BackupDir)
	names, err := listNames(dir)
	if err != nil {
		return err
	}

	for _, name := range domain.ExpiredBackups(filepath.Base(docPath), names, b.keep) {
		if err := os.Remove(filepath.Join(dir, name)); err != nil && !os.IsNotExist(err) {
			b.logger.Warn("failed to delete old backup", "file", name, "error", err)
		}
	}
	return nil
}

// List returns the backups of docPath, newest first
func (b *BackupStore) List(docPath string) ([]string, error) {
	names, err := listNames(filepath.Join(filepath.Dir(docPath), domain.BackupDir))
	if err != nil {
		return nil, err
	}
	return domain.SortBackups(filepath.Base(docPath), names), nil
}

// Wait blocks until scheduled backups have finished
func (b *BackupStore) Wait() {
	b.wg.Wait()
}

func listNames(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read backups: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}
