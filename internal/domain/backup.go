package domain

import (
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const (
	// BackupDir is the per-directory folder holding prior document versions
	BackupDir = "backups"
	// MaxBackups is how many prior versions survive per document
	MaxBackups = 10
	// TimestampLayout is fixed-width and most-significant-first, so
	// lexicographic order of backup names is chronological order
	TimestampLayout = "20060102-150405.000"
)

// FormatTimestamp renders t in the backup timestamp layout
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// NextTimestamp returns the timestamp one millisecond after ts. An
// unparsable ts is returned unchanged.
func NextTimestamp(ts string) string {
	t, err := time.ParseInLocation(TimestampLayout, ts, time.Local)
	if err != nil {
		return ts
	}
	return FormatTimestamp(t.Add(time.Millisecond))
}

// BackupName builds "<base>_<timestamp><ext>" for a document file name
func BackupName(docName, timestamp string) string {
	ext := filepath.Ext(docName)
	base := strings.TrimSuffix(docName, ext)
	return base + "_" + timestamp + ext
}

// BackupTimestamp extracts the timestamp from a backup of docName.
// It reports false when name is not a backup of that document.
func BackupTimestamp(docName, name string) (string, bool) {
	ext := filepath.Ext(docName)
	prefix := strings.TrimSuffix(docName, ext) + "_"
	if !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, ext) {
		return "", false
	}
	ts := strings.TrimSuffix(strings.TrimPrefix(name, prefix), ext)
	if len(ts) != len(TimestampLayout) {
		return "", false
	}
	if _, err := time.ParseInLocation(TimestampLayout, ts, time.Local); err != nil {
		return "", false
	}
	return ts, true
}

// SortBackups returns the backups of docName among names, newest first
func SortBackups(docName string, names []string) []string {
	var backups []string
	for _, name := range names {
		if _, ok := BackupTimestamp(docName, name); ok {
			backups = append(backups, name)
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(backups)))
	return backups
}

// ExpiredBackups returns the backups of docName beyond the keep newest
func ExpiredBackups(docName string, names []string, keep int) []string {
	backups := SortBackups(docName, names)
	if len(backups) <= keep {
		return nil
	}
	return backups[keep:]
}
