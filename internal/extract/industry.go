package extract

import (
	"strings"

	"github.com/wingkam/jobradar/internal/patterns"
	"github.com/wingkam/jobradar/internal/types"
)

// Industry returns the label of the first category whose vocabulary appears
// in the text. Category order in the registry is the precedence order, so a
// posting matching both banking and technology vocabulary resolves to
// whichever category is listed earlier. "Other" when nothing matches.
func Industry(reg *patterns.Registry, text string) string {
	if text == "" || len(reg.Industries) == 0 {
		return types.IndustryOther
	}
	lower := strings.ToLower(text)
	for _, cat := range reg.Industries {
		for _, kw := range cat.Keywords {
			if strings.Contains(lower, strings.ToLower(kw)) {
				return cat.Label
			}
		}
	}
	return types.IndustryOther
}
