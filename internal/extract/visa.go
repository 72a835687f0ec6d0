package extract

import (
	"github.com/wingkam/jobradar/internal/patterns"
	"github.com/wingkam/jobradar/internal/types"
)

// VisaSponsorship resolves the tri-state sponsorship flag. Negative patterns
// are evaluated first and win outright; a posting saying both "no visa
// sponsorship" and "we sponsor" resolves to no.
func VisaSponsorship(reg *patterns.Registry, text string) types.VisaSponsorship {
	if text == "" {
		return types.VisaUnknown
	}
	for _, re := range reg.VisaNegative {
		if re.MatchString(text) {
			return types.VisaNo
		}
	}
	for _, re := range reg.VisaPositive {
		if re.MatchString(text) {
			return types.VisaYes
		}
	}
	return types.VisaUnknown
}

// SecurityClearance reports whether any clearance pattern matches.
func SecurityClearance(reg *patterns.Registry, text string) bool {
	for _, re := range reg.ClearancePatterns {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

// WorkPermit detects the three Hong Kong work-eligibility flags
// independently. All default to false; a nil return never happens.
func WorkPermit(reg *patterns.Registry, text string) *types.WorkPermit {
	wp := &types.WorkPermit{}
	if text == "" {
		return wp
	}
	for _, re := range reg.PermanentResidentPatterns {
		if re.MatchString(text) {
			wp.PermanentResidentRequired = true
			break
		}
	}
	for _, re := range reg.SponsorshipPatterns {
		if re.MatchString(text) {
			wp.VisaSponsorshipAvailable = true
			break
		}
	}
	for _, re := range reg.WorkVisaPatterns {
		if re.MatchString(text) {
			wp.WorkVisaAccepted = true
			break
		}
	}
	return wp
}
