package extract

import (
	"math"
	"strconv"
	"strings"

	"github.com/wingkam/jobradar/internal/patterns"
	"github.com/wingkam/jobradar/internal/types"
)

// Salary tries the ordered salary patterns and returns the range parsed from
// the first successful match. Thousands separators are stripped before
// parsing; "k" shorthand patterns carry a 1000 multiplier. Currency comes
// from the matching pattern, falling back to the registry default. Returns
// nil when no pattern yields a parseable range.
func Salary(reg *patterns.Registry, text string) *types.Salary {
	if text == "" {
		return nil
	}
	for _, p := range reg.SalaryPatterns {
		m := p.Re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		min, ok := parseAmount(m[1], p.Multiplier)
		if !ok {
			continue
		}
		max, ok := parseAmount(m[2], p.Multiplier)
		if !ok {
			continue
		}
		currency := p.Currency
		if currency == "" {
			currency = reg.DefaultCurrency
		}
		return &types.Salary{Min: min, Max: max, Currency: currency}
	}
	return nil
}

// parseAmount parses a captured number after stripping comma separators.
// The "k" shorthand may carry a decimal part ("12.5k"), so the value is
// parsed as a float and scaled.
func parseAmount(s string, multiplier int) (int, bool) {
	s = strings.ReplaceAll(s, ",", "")
	if multiplier <= 1 {
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, false
		}
		return n, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return int(math.Round(f * float64(multiplier))), true
}
