package extract

import "github.com/wingkam/jobradar/internal/patterns"

// Languages tests each language pattern independently and returns all
// matching labels in the fixed dimension order. Labels are not mutually
// exclusive; a bilingual posting commonly yields several.
func Languages(reg *patterns.Registry, text string) []string {
	if text == "" {
		return nil
	}
	var labels []string
	for _, p := range reg.LanguagePatterns {
		if p.Re.MatchString(text) {
			labels = append(labels, p.Label)
		}
	}
	return labels
}
