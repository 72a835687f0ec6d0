package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wingkam/jobradar/internal/types"
)

func jobWithTech(company string, tech ...string) types.Job {
	return types.Job{
		Company:    company,
		Annotation: types.Annotation{TechStack: tech},
	}
}

func repeatJobs(n int, tech ...string) []types.Job {
	jobs := make([]types.Job, 0, n)
	for i := 0; i < n; i++ {
		jobs = append(jobs, jobWithTech("Acme", tech...))
	}
	return jobs
}

func TestComputeOverview(t *testing.T) {
	jobs := []types.Job{
		{
			Company: "Acme Bank",
			Annotation: types.Annotation{
				Salary:          &types.Salary{Min: 20000, Max: 40000},
				VisaSponsorship: types.VisaYes,
			},
		},
		{
			Company: "Acme Bank",
			Annotation: types.Annotation{
				Salary:     &types.Salary{Min: 30000, Max: 60000},
				WorkPermit: &types.WorkPermit{PermanentResidentRequired: true},
			},
		},
		{
			Company:    "Beta Ltd",
			Annotation: types.Annotation{},
		},
	}

	o := ComputeOverview(jobs)

	assert.Equal(t, 3, o.TotalJobs)
	assert.Equal(t, 2, o.Companies)
	assert.InDelta(t, 25000, o.AvgSalaryMin, 0.001)
	assert.InDelta(t, 50000, o.AvgSalaryMax, 0.001)
	assert.Equal(t, 1, o.VisaSponsored)
	assert.Equal(t, 1, o.PRRequired)
}

func TestComputeOverview_Empty(t *testing.T) {
	o := ComputeOverview(nil)

	assert.Zero(t, o.TotalJobs)
	assert.Zero(t, o.AvgSalaryMin)
	assert.Zero(t, o.AvgSalaryMax)
}

func TestTrending_ZeroPreviousIsFullyNew(t *testing.T) {
	current := repeatJobs(45, "Rust")

	got := Trending(current, nil)

	require.Len(t, got, 1)
	assert.Equal(t, "Rust", got[0].Technology)
	assert.Equal(t, 45, got[0].CurrentCount)
	assert.Equal(t, 0, got[0].PreviousCount)
	assert.Equal(t, 100.0, got[0].GrowthPercent)
}

func TestTrending_ZeroCurrentExcluded(t *testing.T) {
	previous := repeatJobs(10, "COBOL")
	current := repeatJobs(3, "Rust")

	got := Trending(current, previous)

	require.Len(t, got, 1)
	assert.Equal(t, "Rust", got[0].Technology)
}

func TestTrending_GrowthAndOrdering(t *testing.T) {
	current := append(repeatJobs(6, "Go"), repeatJobs(4, "Java")...)
	previous := append(repeatJobs(3, "Go"), repeatJobs(4, "Java")...)

	got := Trending(current, previous)

	require.Len(t, got, 2)
	// Go: (6-3)/3 = +100%, Java: 0%.
	assert.Equal(t, "Go", got[0].Technology)
	assert.Equal(t, 100.0, got[0].GrowthPercent)
	assert.Equal(t, "Java", got[1].Technology)
	assert.Equal(t, 0.0, got[1].GrowthPercent)
}

func TestTrending_NegativeGrowth(t *testing.T) {
	current := repeatJobs(5, "PHP")
	previous := repeatJobs(10, "PHP")

	got := Trending(current, previous)

	require.Len(t, got, 1)
	assert.Equal(t, -50.0, got[0].GrowthPercent)
}

func TestTrending_TieBrokenByCurrentCount(t *testing.T) {
	// Both fully new (growth 100); the larger current count leads.
	current := append(repeatJobs(2, "Rust"), repeatJobs(9, "Kotlin")...)

	got := Trending(current, nil)

	require.Len(t, got, 2)
	assert.Equal(t, "Kotlin", got[0].Technology)
	assert.Equal(t, "Rust", got[1].Technology)
}

func TestTrending_CappedAtLimit(t *testing.T) {
	var current []types.Job
	techs := []string{
		"JavaScript", "TypeScript", "Python", "Java", "Golang", "C#", "C++",
		"Ruby", "PHP", "Swift", "Kotlin", "Rust", "Scala", "React", "Angular",
		"Vue", "Django", "Flask", "Spring", "Rails", "Kafka", "Redis",
	}
	for _, tech := range techs {
		current = append(current, jobWithTech("Acme", tech))
	}

	got := Trending(current, nil)

	assert.Len(t, got, TrendingLimit)
}
