// Package types defines the shared data model for jobs, annotations, and search filters.
package types

// VisaSponsorship is a tri-state flag. Negative patterns in the description
// take absolute precedence over positive ones, so "no" can never be upgraded
// to "yes" by a later match.
type VisaSponsorship string

const (
	VisaYes     VisaSponsorship = "yes"
	VisaNo      VisaSponsorship = "no"
	VisaUnknown VisaSponsorship = "unknown"
)

// LocationType is the work-arrangement classification. On-site is the
// closed-world default when nothing in the text suggests otherwise.
type LocationType string

const (
	LocationRemote LocationType = "remote"
	LocationHybrid LocationType = "hybrid"
	LocationOnSite LocationType = "onsite"
)

// WorkPermit is the Hong Kong work-eligibility breakdown. Each field is
// detected independently and defaults to false.
type WorkPermit struct {
	PermanentResidentRequired bool `json:"permanent_resident_required"`
	VisaSponsorshipAvailable  bool `json:"visa_sponsorship_available"`
	WorkVisaAccepted          bool `json:"work_visa_accepted"`
}

// WorkPermit filter categories accepted by FilterSpec.WorkPermit.
const (
	WorkPermitPRRequired  = "permanent_resident"
	WorkPermitSponsorship = "visa_sponsorship"
	WorkPermitWorkVisa    = "work_visa"
)

// Salary is a parsed salary range in the smallest stated unit.
// Currency is implied by the pattern that matched (regional patterns imply HKD).
type Salary struct {
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	Currency string `json:"currency,omitempty"`
}

// Annotation is the structured record derived from a job description.
// It is immutable once computed for a given description version; every field
// holds a neutral/unknown value rather than failing when nothing matches.
type Annotation struct {
	TechStack         []string        `json:"tech_stack,omitempty"`
	YearsOfExperience *int            `json:"years_of_experience,omitempty"`
	VisaSponsorship   VisaSponsorship `json:"visa_sponsorship"`
	WorkPermit        *WorkPermit     `json:"work_permit,omitempty"`
	SecurityClearance bool            `json:"security_clearance"`
	Education         []string        `json:"education,omitempty"`
	Salary            *Salary         `json:"salary,omitempty"`
	LocationType      LocationType    `json:"location_type"`
	District          string          `json:"district,omitempty"`
	Languages         []string        `json:"languages,omitempty"`
	Industry          string          `json:"industry,omitempty"`
	Benefits          []string        `json:"benefits,omitempty"`
	Summary           string          `json:"summary,omitempty"`
}

// Education labels in fixed dimension order. Degree levels and fields of
// study can co-occur on the same posting.
const (
	EducationBachelor        = "Bachelor's"
	EducationMaster          = "Master's"
	EducationPhD             = "PhD"
	EducationComputerScience = "Computer Science"
	EducationEngineering     = "Engineering"
	EducationMathematics     = "Mathematics"
)

// Language labels in fixed dimension order.
const (
	LanguageEnglish   = "English"
	LanguageCantonese = "Cantonese"
	LanguageMandarin  = "Mandarin"
	LanguageChinese   = "Chinese"
	LanguageJapanese  = "Japanese"
)

// IndustryOther is the fallback when no industry category matches.
const IndustryOther = "Other"
