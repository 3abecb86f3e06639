package domain

import "time"

// SyncStats holds statistics from a document index sync
type SyncStats struct {
	DocumentsAdded   int
	DocumentsUpdated int
	DocumentsDeleted int
	FilesScanned     int
	Duration         time.Duration
}
