// Package ingestion prepares raw scraped job tuples for annotation and
// builds canonical Job entities from them.
package ingestion

import (
	"regexp"
	"strings"

	"golang.org/x/text/width"
)

var (
	spaceRe      = regexp.MustCompile(`[ \t]+`)
	blankLinesRe = regexp.MustCompile(`\n\n\n+`)
)

// CleanDescription normalizes a scraped description before extraction.
// Full-width punctuation from bilingual postings is folded to its narrow
// form so a single pattern set covers both scripts ("：" becomes ":").
// Total over its input; an empty or malformed description yields "".
func CleanDescription(content string) string {
	if content == "" {
		return ""
	}

	content = width.Fold.String(content)

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(spaceRe.ReplaceAllString(line, " "))
	}
	content = strings.Join(lines, "\n")

	content = blankLinesRe.ReplaceAllString(content, "\n\n")
	return strings.TrimSpace(content)
}
