package types

// FilterSpec is the structured, request-scoped representation of a search.
// Absent fields mean "no constraint". All populated dimensions combine with
// AND; set-typed dimensions match on ANY overlap with the job's values.
type FilterSpec struct {
	Search    string   `json:"search,omitempty"`
	TechStack []string `json:"tech_stack,omitempty"`
	Languages []string `json:"languages,omitempty"`
	Benefits  []string `json:"benefits,omitempty"`
	Education []string `json:"education,omitempty"`

	MinExperience *int `json:"min_experience,omitempty" validate:"omitempty,gte=0"`
	MaxExperience *int `json:"max_experience,omitempty" validate:"omitempty,gte=0"`
	MinSalary     *int `json:"min_salary,omitempty" validate:"omitempty,gte=0"`
	MaxSalary     *int `json:"max_salary,omitempty" validate:"omitempty,gte=0"`

	District   string `json:"district,omitempty"`
	Industry   string `json:"industry,omitempty"`
	WorkPermit string `json:"work_permit,omitempty" validate:"omitempty,oneof=permanent_resident visa_sponsorship work_visa"`

	// nil means no filtering on the flag.
	VisaSponsorship   *bool `json:"visa_sponsorship,omitempty"`
	SecurityClearance *bool `json:"security_clearance,omitempty"`

	IncludeExpired bool `json:"include_expired,omitempty"`

	Page  int `json:"page" validate:"gte=1"`
	Limit int `json:"limit" validate:"gte=1,lte=100"`
}

// DefaultPageSize is applied when a request leaves Limit unset.
const DefaultPageSize = 20

// Normalize fills pagination defaults so a zero-valued spec is usable.
func (f *FilterSpec) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = DefaultPageSize
	}
}

// Offset converts 1-based pagination into a row offset.
func (f *FilterSpec) Offset() int {
	return (f.Page - 1) * f.Limit
}
