// Package filter evaluates a FilterSpec against Job entities. The same
// semantics are mirrored by the SQL translation in internal/db; this
// in-memory form is the reference implementation the store is tested
// against.
package filter

import (
	"strings"

	"github.com/wingkam/jobradar/internal/types"
)

// Matches reports whether the job satisfies every populated dimension of the
// spec. Dimensions combine with AND; set-typed dimensions match on ANY
// overlap. An absent filter value is no constraint, never "match unknown
// only".
func Matches(job types.Job, spec types.FilterSpec) bool {
	if job.Expired && !spec.IncludeExpired {
		return false
	}

	if spec.Search != "" && !matchesSearch(job, spec.Search) {
		return false
	}
	if len(spec.TechStack) > 0 && !anyOverlap(job.Annotation.TechStack, spec.TechStack) {
		return false
	}
	if len(spec.Languages) > 0 && !anyOverlap(job.Annotation.Languages, spec.Languages) {
		return false
	}
	if len(spec.Benefits) > 0 && !anyOverlap(job.Annotation.Benefits, spec.Benefits) {
		return false
	}
	if len(spec.Education) > 0 && !anyOverlap(job.Annotation.Education, spec.Education) {
		return false
	}

	// An experience filter never matches a job with unknown experience.
	if spec.MinExperience != nil || spec.MaxExperience != nil {
		years := job.Annotation.YearsOfExperience
		if years == nil {
			return false
		}
		if spec.MinExperience != nil && *years < *spec.MinExperience {
			return false
		}
		if spec.MaxExperience != nil && *years > *spec.MaxExperience {
			return false
		}
	}

	// Salary-min compares against the job's stated maximum: any job whose
	// range reaches the requested floor qualifies.
	if spec.MinSalary != nil || spec.MaxSalary != nil {
		salary := job.Annotation.Salary
		if salary == nil {
			return false
		}
		if spec.MinSalary != nil && salary.Max < *spec.MinSalary {
			return false
		}
		if spec.MaxSalary != nil && salary.Min > *spec.MaxSalary {
			return false
		}
	}

	if spec.District != "" && job.Annotation.District != spec.District {
		return false
	}
	if spec.Industry != "" && job.Annotation.Industry != spec.Industry {
		return false
	}
	if spec.WorkPermit != "" && !matchesWorkPermit(job.Annotation.WorkPermit, spec.WorkPermit) {
		return false
	}

	if spec.VisaSponsorship != nil {
		want := types.VisaNo
		if *spec.VisaSponsorship {
			want = types.VisaYes
		}
		if job.Annotation.VisaSponsorship != want {
			return false
		}
	}
	if spec.SecurityClearance != nil && job.Annotation.SecurityClearance != *spec.SecurityClearance {
		return false
	}

	return true
}

// Apply filters the collection and paginates the result, returning the page
// items and the total match count.
func Apply(jobs []types.Job, spec types.FilterSpec) ([]types.Job, int) {
	spec.Normalize()

	var matched []types.Job
	for _, job := range jobs {
		if Matches(job, spec) {
			matched = append(matched, job)
		}
	}

	total := len(matched)
	start := spec.Offset()
	if start >= total {
		return nil, total
	}
	end := start + spec.Limit
	if end > total {
		end = total
	}
	return matched[start:end], total
}

func matchesSearch(job types.Job, search string) bool {
	needle := strings.ToLower(search)
	for _, haystack := range []string{job.Title, job.Company, job.Description, job.Annotation.Summary} {
		if strings.Contains(strings.ToLower(haystack), needle) {
			return true
		}
	}
	return false
}

// anyOverlap compares elements exactly. Annotation values are canonical
// registry labels, and the SQL translation's jsonb ?| operator is exact
// element equality, so any case folding here would diverge from the store.
func anyOverlap(have, want []string) bool {
	if len(have) == 0 {
		return false
	}
	set := make(map[string]bool, len(have))
	for _, v := range have {
		set[v] = true
	}
	for _, v := range want {
		if set[v] {
			return true
		}
	}
	return false
}

// matchesWorkPermit treats an unrecognized category as no constraint, the
// same as the SQL translation. Request validation rejects unknown categories
// before they reach either engine.
func matchesWorkPermit(wp *types.WorkPermit, category string) bool {
	switch category {
	case types.WorkPermitPRRequired:
		return wp != nil && wp.PermanentResidentRequired
	case types.WorkPermitSponsorship:
		return wp != nil && wp.VisaSponsorshipAvailable
	case types.WorkPermitWorkVisa:
		return wp != nil && wp.WorkVisaAccepted
	default:
		return true
	}
}
