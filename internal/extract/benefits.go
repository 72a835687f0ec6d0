package extract

import "github.com/wingkam/jobradar/internal/patterns"

// Benefits tests each benefit pattern independently and returns all matching
// tags in the fixed pattern order.
func Benefits(reg *patterns.Registry, text string) []string {
	if text == "" {
		return nil
	}
	var tags []string
	for _, p := range reg.BenefitPatterns {
		if p.Re.MatchString(text) {
			tags = append(tags, p.Label)
		}
	}
	return tags
}
