package domain

import (
	"path/filepath"
	"strings"
)

const (
	// ContentPrefix is the URL-style root every content path must live under
	ContentPrefix = "/docs/"
	// DocumentExt is the only extension a saved document may carry
	DocumentExt = ".md"
	// ContentDir is the on-disk directory backing ContentPrefix
	ContentDir = "docs"
)

// PathKind selects which rules ValidatePath applies
type PathKind int

const (
	PathDocument PathKind = iota
	PathDirectory
)

// ValidatePath checks that p stays inside the content root.
// Documents must also carry DocumentExt.
func ValidatePath(p string, kind PathKind) error {
	if !strings.HasPrefix(p, ContentPrefix) {
		return &PathError{Path: p, Err: ErrInvalidPath}
	}

	if kind == PathDocument && !strings.HasSuffix(p, DocumentExt) {
		return &PathError{Path: p, Err: ErrInvalidExtension}
	}

	if strings.Contains(p, "//") || strings.Contains(p, `\`) {
		return &PathError{Path: p, Err: ErrPathTraversal}
	}
	for _, seg := range strings.Split(p, "/") {
		if seg == ".." || seg == "." {
			return &PathError{Path: p, Err: ErrPathTraversal}
		}
	}

	return nil
}

// ValidateName checks a single node, category, or document name
func ValidateName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" || trimmed == "." || trimmed == ".." {
		return &PathError{Path: name, Err: ErrInvalidName}
	}
	if strings.ContainsAny(name, `/\`) {
		return &PathError{Path: name, Err: ErrInvalidName}
	}
	return nil
}

// ValidateSegments checks every segment of a sidebar path
func ValidateSegments(segments []string) error {
	if len(segments) == 0 {
		return &PathError{Path: "", Err: ErrInvalidName}
	}
	for _, seg := range segments {
		if err := ValidateName(seg); err != nil {
			return err
		}
	}
	return nil
}

// DocumentSegments converts "/docs/guide/intro.md" into ["guide", "intro"]
func DocumentSegments(p string) []string {
	trimmed := strings.TrimSuffix(strings.TrimPrefix(p, ContentPrefix), DocumentExt)
	return strings.Split(trimmed, "/")
}

// DocumentLink is the sidebar link for a document path ("/docs/guide/intro")
func DocumentLink(p string) string {
	return strings.TrimSuffix(p, DocumentExt)
}

// SegmentsPath joins sidebar segments into a content path without extension
func SegmentsPath(segments []string) string {
	return ContentPrefix + strings.Join(segments, "/")
}

// SectionKey is the sidebar and nav key for a top-level category
func SectionKey(name string) string {
	return ContentPrefix + name + "/"
}

// DocumentName returns the base name of a document path without its extension
func DocumentName(p string) string {
	return strings.TrimSuffix(filepath.Base(filepath.FromSlash(p)), filepath.Ext(p))
}

// SplitSegments turns "guide/Advanced" into ["guide", "Advanced"].
// Leading and trailing slashes are ignored; an empty string yields nil.
func SplitSegments(p string) []string {
	trimmed := strings.Trim(p, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}
