package db

import (
	"fmt"
	"strings"

	"github.com/wingkam/jobradar/internal/types"
)

// buildJobFilter translates a FilterSpec into a WHERE clause over the jobs
// table. The translation mirrors the in-memory semantics in internal/filter:
// dimensions AND together, set-typed dimensions use ANY overlap (jsonb ?|),
// unknown annotation values never satisfy a populated filter.
func buildJobFilter(spec types.FilterSpec) (string, []any) {
	var conditions []string
	var args []any

	next := func(arg any) int {
		args = append(args, arg)
		return len(args)
	}

	if !spec.IncludeExpired {
		conditions = append(conditions, "NOT expired")
	}

	if spec.Search != "" {
		n := next("%" + spec.Search + "%")
		conditions = append(conditions, fmt.Sprintf(
			"(title ILIKE $%d OR company ILIKE $%d OR description ILIKE $%d OR annotation->>'summary' ILIKE $%d)",
			n, n, n, n))
	}

	if len(spec.TechStack) > 0 {
		n := next(spec.TechStack)
		conditions = append(conditions, fmt.Sprintf("annotation->'tech_stack' ?| $%d", n))
	}
	if len(spec.Languages) > 0 {
		n := next(spec.Languages)
		conditions = append(conditions, fmt.Sprintf("annotation->'languages' ?| $%d", n))
	}
	if len(spec.Benefits) > 0 {
		n := next(spec.Benefits)
		conditions = append(conditions, fmt.Sprintf("annotation->'benefits' ?| $%d", n))
	}
	if len(spec.Education) > 0 {
		n := next(spec.Education)
		conditions = append(conditions, fmt.Sprintf("annotation->'education' ?| $%d", n))
	}

	if spec.MinExperience != nil {
		n := next(*spec.MinExperience)
		conditions = append(conditions, fmt.Sprintf(
			"(annotation->>'years_of_experience')::int >= $%d", n))
	}
	if spec.MaxExperience != nil {
		n := next(*spec.MaxExperience)
		conditions = append(conditions, fmt.Sprintf(
			"(annotation->>'years_of_experience')::int <= $%d", n))
	}

	// Salary-min compares against the job's stated maximum (the job
	// qualifies when its range reaches the requested floor).
	if spec.MinSalary != nil {
		n := next(*spec.MinSalary)
		conditions = append(conditions, fmt.Sprintf(
			"(annotation->'salary'->>'max')::int >= $%d", n))
	}
	if spec.MaxSalary != nil {
		n := next(*spec.MaxSalary)
		conditions = append(conditions, fmt.Sprintf(
			"(annotation->'salary'->>'min')::int <= $%d", n))
	}

	if spec.District != "" {
		n := next(spec.District)
		conditions = append(conditions, fmt.Sprintf("annotation->>'district' = $%d", n))
	}
	if spec.Industry != "" {
		n := next(spec.Industry)
		conditions = append(conditions, fmt.Sprintf("annotation->>'industry' = $%d", n))
	}

	if spec.WorkPermit != "" {
		if field, ok := workPermitField(spec.WorkPermit); ok {
			conditions = append(conditions, fmt.Sprintf(
				"(annotation->'work_permit'->>'%s')::bool = TRUE", field))
		}
	}

	if spec.VisaSponsorship != nil {
		want := string(types.VisaNo)
		if *spec.VisaSponsorship {
			want = string(types.VisaYes)
		}
		n := next(want)
		conditions = append(conditions, fmt.Sprintf("annotation->>'visa_sponsorship' = $%d", n))
	}
	if spec.SecurityClearance != nil {
		n := next(*spec.SecurityClearance)
		conditions = append(conditions, fmt.Sprintf(
			"(annotation->>'security_clearance')::bool = $%d", n))
	}

	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

func workPermitField(category string) (string, bool) {
	switch category {
	case types.WorkPermitPRRequired:
		return "permanent_resident_required", true
	case types.WorkPermitSponsorship:
		return "visa_sponsorship_available", true
	case types.WorkPermitWorkVisa:
		return "work_visa_accepted", true
	default:
		return "", false
	}
}
