package domain

import (
	"slices"
	"strings"
)

// ImageExtensions lists the upload types accepted next to a document
var ImageExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".svg", ".webp"}

// AssetsDir is the folder next to a document that holds its images
const AssetsDir = "assets"

// IsImageExt reports whether ext (with dot, any case) is an accepted image type
func IsImageExt(ext string) bool {
	return slices.Contains(ImageExtensions, strings.ToLower(ext))
}

// DefaultDocument is the body written for a freshly created document
func DefaultDocument(name string) string {
	return "# " + name + "\n"
}

// SaveResult describes a completed document save
type SaveResult struct {
	FilePath  string // absolute path on disk
	Timestamp string // TimestampLayout; matches the backup written for this save
	Created   bool   // true when the document did not exist before
}
