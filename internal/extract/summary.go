package extract

import (
	"regexp"
	"strings"

	"github.com/wingkam/jobradar/internal/patterns"
)

var sentenceSplitRe = regexp.MustCompile(`[.!?]+`)

// summaryFallbackLen is how much of the raw description the fallback summary keeps.
const summaryFallbackLen = 200

// Summary builds a deterministic extractive summary: the description is split
// into sentences, sentences mentioning a responsibility verb are kept, and
// the first three are joined with ". ". When no sentence qualifies the
// fallback is the first 200 characters of the description plus an ellipsis.
func Summary(reg *patterns.Registry, text string) string {
	if text == "" {
		return ""
	}

	var kept []string
	for _, raw := range sentenceSplitRe.Split(text, -1) {
		sentence := strings.TrimSpace(raw)
		if sentence == "" {
			continue
		}
		if containsVerb(reg.SummaryVerbs, sentence) {
			kept = append(kept, sentence)
			if len(kept) == 3 {
				break
			}
		}
	}
	if len(kept) > 0 {
		return strings.Join(kept, ". ")
	}

	runes := []rune(text)
	if len(runes) > summaryFallbackLen {
		runes = runes[:summaryFallbackLen]
	}
	return string(runes) + "..."
}

func containsVerb(verbs []string, sentence string) bool {
	lower := strings.ToLower(sentence)
	for _, v := range verbs {
		if strings.Contains(lower, v) {
			return true
		}
	}
	return false
}
