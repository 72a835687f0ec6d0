package extract

import (
	"strings"

	"github.com/wingkam/jobradar/internal/patterns"
	"github.com/wingkam/jobradar/internal/types"
)

// LocationType classifies the work arrangement. Remote terms win over hybrid
// terms; On-site is the closed-world default, not an unknown.
func LocationType(reg *patterns.Registry, text string) types.LocationType {
	lower := strings.ToLower(text)
	for _, term := range reg.RemoteTerms {
		if strings.Contains(lower, strings.ToLower(term)) {
			return types.LocationRemote
		}
	}
	for _, term := range reg.HybridTerms {
		if strings.Contains(lower, strings.ToLower(term)) {
			return types.LocationHybrid
		}
	}
	return types.LocationOnSite
}

// District returns the first district from the registry's closed vocabulary
// found in the text, canonical names first and then aliases (MTR stations,
// abbreviations, Chinese names). Empty string when nothing matches.
func District(reg *patterns.Registry, text string) string {
	if text == "" {
		return ""
	}
	lower := strings.ToLower(text)
	for _, d := range reg.Districts {
		if strings.Contains(lower, strings.ToLower(d)) {
			return d
		}
	}
	for _, a := range reg.DistrictAliases {
		if strings.Contains(lower, strings.ToLower(a.Alias)) {
			return a.District
		}
	}
	return ""
}
