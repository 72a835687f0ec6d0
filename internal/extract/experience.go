package extract

import (
	"strconv"

	"github.com/wingkam/jobradar/internal/patterns"
)

// YearsOfExperience tries the ordered experience patterns and returns the
// integer captured by the first one that matches. Later patterns are never
// consulted once an earlier one hits. Returns nil when no pattern matches.
func YearsOfExperience(reg *patterns.Registry, text string) *int {
	if text == "" {
		return nil
	}
	for _, re := range reg.ExperiencePatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		years, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		return &years
	}
	return nil
}
