package dashboard

import "strings"

// Crisis classes derived from a region's crisis level.
const (
	CrisisLow      = "low"
	CrisisModerate = "moderate"
	CrisisHigh     = "high"
)

// Region is one province in the regional overview.
type Region struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Sentiment   string `json:"sentiment"`
	CrisisLevel int    `json:"crisis_level"`
	CrisisClass string `json:"crisis_class"`
	Change      string `json:"change"`
}

// Arrow renders the change direction.
func (r Region) Arrow() string {
	switch r.Change {
	case "up":
		return "↑"
	case "down":
		return "↓"
	case "stable":
		return "→"
	}
	return ""
}

// CrisisClass buckets a crisis level: up to 1 is low, up to 3 moderate,
// anything above high.
func CrisisClass(level int) string {
	switch {
	case level <= 1:
		return CrisisLow
	case level <= 3:
		return CrisisModerate
	default:
		return CrisisHigh
	}
}

var baseRegions = []Region{
	{ID: "lusaka", Name: "Lusaka", Sentiment: "medium", CrisisLevel: 3, Change: "up"},
	{ID: "copperbelt", Name: "Copperbelt", Sentiment: "low", CrisisLevel: 4, Change: "up"},
	{ID: "eastern", Name: "Eastern Province", Sentiment: "medium", CrisisLevel: 2, Change: "stable"},
	{ID: "southern", Name: "Southern Province", Sentiment: "low", CrisisLevel: 5, Change: "up"},
	{ID: "northern", Name: "Northern Province", Sentiment: "high", CrisisLevel: 1, Change: "down"},
	{ID: "western", Name: "Western Province", Sentiment: "medium", CrisisLevel: 3, Change: "stable"},
	{ID: "central", Name: "Central Province", Sentiment: "high", CrisisLevel: 2, Change: "down"},
}

// RegionalMap returns the provincial overview. It does not vary with the
// time range.
func RegionalMap() []Region {
	out := make([]Region, len(baseRegions))
	for i, r := range baseRegions {
		r.CrisisClass = CrisisClass(r.CrisisLevel)
		out[i] = r
	}
	return out
}

// SelectRegion returns the selection after clicking a region: clicking the
// selected region clears it, any other region becomes selected.
func SelectRegion(current, clicked string) string {
	if clicked == current {
		return ""
	}
	return clicked
}

// FindRegion looks a region up by ID or name, case-insensitively.
func FindRegion(key string) (Region, bool) {
	for _, r := range RegionalMap() {
		if equalFold(r.ID, key) || equalFold(r.Name, key) {
			return r, true
		}
	}
	return Region{}, false
}

func equalFold(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
