// Package extract implements the per-dimension field extractors. Every
// extractor is a total function: it scans the description text against the
// pattern registry and returns a neutral value when nothing matches, never an
// error.
package extract

import (
	"strings"

	"github.com/wingkam/jobradar/internal/patterns"
)

// TechStack returns the canonical keywords mentioned in the text, scanned
// case-insensitively as substrings. Output preserves keyword-list order and
// is deduplicated.
func TechStack(reg *patterns.Registry, text string) []string {
	if text == "" {
		return nil
	}
	lower := strings.ToLower(text)

	var found []string
	seen := make(map[string]bool)
	for _, kw := range reg.TechKeywords {
		if seen[kw] {
			continue
		}
		if strings.Contains(lower, strings.ToLower(kw)) {
			found = append(found, kw)
			seen[kw] = true
		}
	}
	return found
}
