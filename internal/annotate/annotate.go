// Package annotate composes the per-dimension extractors into a full
// Annotation and defines the merge rules between market profiles and between
// re-ingested versions of the same job.
package annotate

import (
	"github.com/wingkam/jobradar/internal/extract"
	"github.com/wingkam/jobradar/internal/patterns"
	"github.com/wingkam/jobradar/internal/types"
)

// Profile binds a pattern registry to the set of dimensions it populates.
// The regional profile adds the Hong Kong-only dimensions (work permit,
// district, languages, industry, benefits) on top of the generic ones.
type Profile struct {
	Name     string
	reg      *patterns.Registry
	regional bool
}

// GenericProfile returns the market-neutral profile.
func GenericProfile() *Profile {
	return &Profile{Name: "generic", reg: patterns.Generic()}
}

// HongKongProfile returns the Hong Kong market profile.
func HongKongProfile() *Profile {
	return &Profile{Name: "hongkong", reg: patterns.HongKong(), regional: true}
}

// Annotate runs every extractor the profile covers against the description.
// Total over its input: a nil-equivalent or empty description yields an
// Annotation of neutral values, never an error.
func (p *Profile) Annotate(description string) types.Annotation {
	a := types.Annotation{
		TechStack:         extract.TechStack(p.reg, description),
		YearsOfExperience: extract.YearsOfExperience(p.reg, description),
		VisaSponsorship:   extract.VisaSponsorship(p.reg, description),
		SecurityClearance: extract.SecurityClearance(p.reg, description),
		Education:         extract.Education(p.reg, description),
		Salary:            extract.Salary(p.reg, description),
		LocationType:      extract.LocationType(p.reg, description),
		Summary:           extract.Summary(p.reg, description),
	}
	if p.regional {
		a.WorkPermit = extract.WorkPermit(p.reg, description)
		a.District = extract.District(p.reg, description)
		a.Languages = extract.Languages(p.reg, description)
		a.Industry = extract.Industry(p.reg, description)
		a.Benefits = extract.Benefits(p.reg, description)
	}
	return a
}

// Compose runs the generic and regional profiles against the same
// description and merges them, regional values winning on conflict.
func Compose(description string, regional *Profile) types.Annotation {
	generic := GenericProfile().Annotate(description)
	overlay := regional.Annotate(description)
	return Merge(generic, overlay)
}

// Merge combines a generic and a regional annotation. The precedence
// direction is fixed: regional overrides generic for every field it
// populates; generic fills the gaps the regional profile leaves unset.
func Merge(generic, regional types.Annotation) types.Annotation {
	out := generic

	if len(regional.TechStack) > 0 {
		out.TechStack = regional.TechStack
	}
	if regional.YearsOfExperience != nil {
		out.YearsOfExperience = regional.YearsOfExperience
	}
	if regional.VisaSponsorship != types.VisaUnknown && regional.VisaSponsorship != "" {
		out.VisaSponsorship = regional.VisaSponsorship
	}
	if regional.WorkPermit != nil {
		out.WorkPermit = regional.WorkPermit
	}
	if regional.SecurityClearance {
		out.SecurityClearance = true
	}
	if len(regional.Education) > 0 {
		out.Education = regional.Education
	}
	if regional.Salary != nil {
		out.Salary = regional.Salary
	}
	if regional.LocationType != "" {
		out.LocationType = regional.LocationType
	}
	if regional.District != "" {
		out.District = regional.District
	}
	if len(regional.Languages) > 0 {
		out.Languages = regional.Languages
	}
	if regional.Industry != "" {
		out.Industry = regional.Industry
	}
	if len(regional.Benefits) > 0 {
		out.Benefits = regional.Benefits
	}
	if regional.Summary != "" {
		out.Summary = regional.Summary
	}
	if out.VisaSponsorship == "" {
		out.VisaSponsorship = types.VisaUnknown
	}
	return out
}

// Richer merges a freshly extracted annotation over a stored one when the
// same job is re-ingested. Per field, a known value beats unknown and a
// known value is never overwritten by unknown; when both are known the new
// extraction wins (the description may have changed).
func Richer(stored, fresh types.Annotation) types.Annotation {
	out := stored

	if len(fresh.TechStack) > 0 {
		out.TechStack = fresh.TechStack
	}
	if fresh.YearsOfExperience != nil {
		out.YearsOfExperience = fresh.YearsOfExperience
	}
	if fresh.VisaSponsorship != types.VisaUnknown && fresh.VisaSponsorship != "" {
		out.VisaSponsorship = fresh.VisaSponsorship
	}
	if fresh.WorkPermit != nil {
		out.WorkPermit = fresh.WorkPermit
	}
	if fresh.SecurityClearance {
		out.SecurityClearance = true
	}
	if len(fresh.Education) > 0 {
		out.Education = fresh.Education
	}
	if fresh.Salary != nil {
		out.Salary = fresh.Salary
	}
	if fresh.LocationType != "" && fresh.LocationType != types.LocationOnSite {
		out.LocationType = fresh.LocationType
	} else if out.LocationType == "" {
		out.LocationType = types.LocationOnSite
	}
	if fresh.District != "" {
		out.District = fresh.District
	}
	if len(fresh.Languages) > 0 {
		out.Languages = fresh.Languages
	}
	if fresh.Industry != "" && fresh.Industry != types.IndustryOther {
		out.Industry = fresh.Industry
	} else if out.Industry == "" {
		out.Industry = fresh.Industry
	}
	if len(fresh.Benefits) > 0 {
		out.Benefits = fresh.Benefits
	}
	if fresh.Summary != "" {
		out.Summary = fresh.Summary
	}
	if out.VisaSponsorship == "" {
		out.VisaSponsorship = types.VisaUnknown
	}
	return out
}
