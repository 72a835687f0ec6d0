// Package stats computes market overview statistics and trending-skill
// growth from time-windowed job collections. All functions are pure; the
// caller (store or API layer) selects the windows.
package stats

import (
	"sort"

	"github.com/wingkam/jobradar/internal/types"
)

// TrendingLimit caps the trending result length.
const TrendingLimit = 20

// Overview summarizes a windowed job set.
type Overview struct {
	TotalJobs     int     `json:"total_jobs"`
	Companies     int     `json:"companies"`
	AvgSalaryMin  float64 `json:"avg_salary_min"`
	AvgSalaryMax  float64 `json:"avg_salary_max"`
	VisaSponsored int     `json:"visa_sponsored"`
	PRRequired    int     `json:"pr_required"`
}

// TrendingSkill is one row of the trending result.
type TrendingSkill struct {
	Technology    string  `json:"technology"`
	CurrentCount  int     `json:"current_count"`
	PreviousCount int     `json:"previous_count"`
	GrowthPercent float64 `json:"growth_percent"`
}

// ComputeOverview aggregates counts and salary averages over the given jobs.
func ComputeOverview(jobs []types.Job) Overview {
	var o Overview
	o.TotalJobs = len(jobs)

	companies := make(map[string]bool)
	var salaryCount, salaryMinSum, salaryMaxSum int
	for _, job := range jobs {
		if job.Company != "" {
			companies[job.Company] = true
		}
		if s := job.Annotation.Salary; s != nil {
			salaryCount++
			salaryMinSum += s.Min
			salaryMaxSum += s.Max
		}
		if job.Annotation.VisaSponsorship == types.VisaYes ||
			(job.Annotation.WorkPermit != nil && job.Annotation.WorkPermit.VisaSponsorshipAvailable) {
			o.VisaSponsored++
		}
		if job.Annotation.WorkPermit != nil && job.Annotation.WorkPermit.PermanentResidentRequired {
			o.PRRequired++
		}
	}
	o.Companies = len(companies)
	if salaryCount > 0 {
		o.AvgSalaryMin = float64(salaryMinSum) / float64(salaryCount)
		o.AvgSalaryMax = float64(salaryMaxSum) / float64(salaryCount)
	}
	return o
}

// Trending computes per-technology growth between two adjacent windows.
// A technology absent from the previous window but present now grows 100%
// ("fully new"), never infinity. Technologies with no current-window
// mentions are excluded even when they had previous-window presence.
// Results sort by growth descending, then current count descending, and are
// capped at TrendingLimit.
func Trending(current, previous []types.Job) []TrendingSkill {
	currentCounts := countTech(current)
	previousCounts := countTech(previous)

	skills := make([]TrendingSkill, 0, len(currentCounts))
	for tech, cur := range currentCounts {
		prev := previousCounts[tech]
		var growth float64
		if prev == 0 {
			growth = 100
		} else {
			growth = float64(cur-prev) / float64(prev) * 100
		}
		skills = append(skills, TrendingSkill{
			Technology:    tech,
			CurrentCount:  cur,
			PreviousCount: prev,
			GrowthPercent: growth,
		})
	}

	sort.Slice(skills, func(i, j int) bool {
		if skills[i].GrowthPercent != skills[j].GrowthPercent {
			return skills[i].GrowthPercent > skills[j].GrowthPercent
		}
		if skills[i].CurrentCount != skills[j].CurrentCount {
			return skills[i].CurrentCount > skills[j].CurrentCount
		}
		return skills[i].Technology < skills[j].Technology
	})

	if len(skills) > TrendingLimit {
		skills = skills[:TrendingLimit]
	}
	return skills
}

func countTech(jobs []types.Job) map[string]int {
	counts := make(map[string]int)
	for _, job := range jobs {
		for _, tech := range job.Annotation.TechStack {
			counts[tech]++
		}
	}
	return counts
}
