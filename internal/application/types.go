package application

import "notedock/internal/domain"

// Re-export domain types for use by adapters
type (
	Node           = domain.Node
	Sidebar        = domain.Sidebar
	Nav            = domain.Nav
	NavEntry       = domain.NavEntry
	RecentFile     = domain.RecentFile
	SaveResult     = domain.SaveResult
	LandingFeature = domain.LandingFeature
)

// SplitSegments turns "guide/Advanced" into ["guide", "Advanced"].
// Leading and trailing slashes are ignored.
func SplitSegments(p string) []string {
	return domain.SplitSegments(p)
}
