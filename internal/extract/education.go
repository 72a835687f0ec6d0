package extract

import "github.com/wingkam/jobradar/internal/patterns"

// Education tests each education pattern independently and returns all
// matching labels. Output order follows the fixed pattern order, not the
// order of appearance in the text; degree levels and fields of study can
// co-occur.
func Education(reg *patterns.Registry, text string) []string {
	if text == "" {
		return nil
	}
	var labels []string
	for _, p := range reg.EducationPatterns {
		if p.Re.MatchString(text) {
			labels = append(labels, p.Label)
		}
	}
	return labels
}
