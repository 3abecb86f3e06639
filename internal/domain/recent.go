package domain

import (
	"fmt"
	"math"
	"path"
	"sort"
	"strings"
	"time"
)

// RecentLimit is how many documents the recently modified summary lists
const RecentLimit = 15

// DocumentStat is a document's site-relative slash path and modification time
type DocumentStat struct {
	RelPath string // e.g. "docs/guide/intro.md"
	Mtime   time.Time
}

// RecentFile is a derived summary entry for the landing page
type RecentFile struct {
	Path  string // "/docs/guide/intro"
	Title string // "guide > intro"
	Mtime time.Time
	Label string // "3 minutes ago"
}

// BuildRecent sorts stats newest first and converts the top limit entries
func BuildRecent(stats []DocumentStat, now time.Time, limit int) []RecentFile {
	sorted := make([]DocumentStat, len(stats))
	copy(sorted, stats)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Mtime.After(sorted[j].Mtime)
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}

	files := make([]RecentFile, 0, len(sorted))
	for _, st := range sorted {
		files = append(files, NewRecentFile(st, now))
	}
	return files
}

// NewRecentFile derives link, title, and label from a document stat
func NewRecentFile(st DocumentStat, now time.Time) RecentFile {
	rel := strings.TrimSuffix(st.RelPath, DocumentExt)
	title := strings.TrimPrefix(rel, ContentDir+"/")
	return RecentFile{
		Path:  "/" + path.Clean(rel),
		Title: strings.ReplaceAll(title, "/", " > "),
		Mtime: st.Mtime,
		Label: RelativeTime(st.Mtime, now),
	}
}

// RelativeTime renders how long ago t was, falling back to an absolute
// timestamp beyond a week
func RelativeTime(t, now time.Time) string {
	diff := now.Sub(t)
	mins := int(math.Round(diff.Minutes()))
	hours := int(math.Round(diff.Hours()))
	days := int(math.Round(diff.Hours() / 24))

	switch {
	case mins < 5:
		return "just now"
	case mins < 60:
		return fmt.Sprintf("%d minutes ago", mins)
	case hours < 8:
		return fmt.Sprintf("%d hours ago", hours)
	case hours < 24:
		return "today"
	case days < 2:
		return "yesterday"
	case days < 3:
		return "day before yesterday"
	case days < 7:
		return fmt.Sprintf("%d days ago", days)
	default:
		return t.Format("2006-01-02 15:04:05")
	}
}
