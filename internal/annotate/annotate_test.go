package annotate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wingkam/jobradar/internal/types"
)

func TestAnnotate_EndToEnd(t *testing.T) {
	description := "5+ years of experience building services. Bachelor's degree required. " +
		"Visa sponsorship available. Remote work possible. $120k - $160k."

	a := GenericProfile().Annotate(description)

	require.NotNil(t, a.YearsOfExperience)
	assert.Equal(t, 5, *a.YearsOfExperience)
	assert.Equal(t, []string{"Bachelor's"}, a.Education)
	assert.Equal(t, types.VisaYes, a.VisaSponsorship)
	assert.Equal(t, types.LocationRemote, a.LocationType)
	require.NotNil(t, a.Salary)
	assert.Equal(t, 120000, a.Salary.Min)
	assert.Equal(t, 160000, a.Salary.Max)
}

func TestAnnotate_EmptyDescriptionIsNeutral(t *testing.T) {
	a := HongKongProfile().Annotate("")

	assert.Nil(t, a.TechStack)
	assert.Nil(t, a.YearsOfExperience)
	assert.Equal(t, types.VisaUnknown, a.VisaSponsorship)
	assert.False(t, a.SecurityClearance)
	assert.Nil(t, a.Salary)
	assert.Equal(t, types.LocationOnSite, a.LocationType)
	require.NotNil(t, a.WorkPermit)
	assert.False(t, a.WorkPermit.PermanentResidentRequired)
	assert.Equal(t, types.IndustryOther, a.Industry)
	assert.Empty(t, a.District)
}

func TestAnnotate_Idempotent(t *testing.T) {
	description := "Develop trading systems in Central. 3 years experience. HK$30,000 - HK$50,000."
	p := HongKongProfile()

	first := p.Annotate(description)
	second := p.Annotate(description)

	assert.Equal(t, first, second)
}

func TestCompose_RegionalOverridesGenericSalary(t *testing.T) {
	// The generic $-pattern and the regional HK$-pattern both match spans
	// here; the regional profile's parse must win.
	description := "Salary HK$25,000 - HK$35,000. Develop internal tools."

	a := Compose(description, HongKongProfile())

	require.NotNil(t, a.Salary)
	assert.Equal(t, 25000, a.Salary.Min)
	assert.Equal(t, 35000, a.Salary.Max)
	assert.Equal(t, "HKD", a.Salary.Currency)
}

func TestCompose_GenericFillsRegionalGaps(t *testing.T) {
	description := "Minimum 4 years. TS/SCI clearance needed. Maintain deployment pipelines."

	a := Compose(description, HongKongProfile())

	require.NotNil(t, a.YearsOfExperience)
	assert.Equal(t, 4, *a.YearsOfExperience)
	assert.True(t, a.SecurityClearance)
}

func TestMerge_RegionalPrecedence(t *testing.T) {
	three, five := 3, 5
	generic := types.Annotation{
		YearsOfExperience: &three,
		Salary:            &types.Salary{Min: 100, Max: 200},
		VisaSponsorship:   types.VisaYes,
		LocationType:      types.LocationOnSite,
	}
	regional := types.Annotation{
		YearsOfExperience: &five,
		Salary:            &types.Salary{Min: 20000, Max: 40000, Currency: "HKD"},
		VisaSponsorship:   types.VisaUnknown,
		LocationType:      types.LocationHybrid,
	}

	out := Merge(generic, regional)

	assert.Equal(t, 5, *out.YearsOfExperience)
	assert.Equal(t, "HKD", out.Salary.Currency)
	// Unknown regional value does not clobber a known generic one.
	assert.Equal(t, types.VisaYes, out.VisaSponsorship)
	assert.Equal(t, types.LocationHybrid, out.LocationType)
}

func TestRicher_KnownNeverDowngraded(t *testing.T) {
	seven := 7
	stored := types.Annotation{
		YearsOfExperience: &seven,
		VisaSponsorship:   types.VisaNo,
		Salary:            &types.Salary{Min: 30000, Max: 50000, Currency: "HKD"},
		District:          "Central",
		Industry:          "Banking & Finance",
		LocationType:      types.LocationHybrid,
	}
	fresh := types.Annotation{
		VisaSponsorship: types.VisaUnknown,
		LocationType:    types.LocationOnSite,
		Industry:        types.IndustryOther,
	}

	out := Richer(stored, fresh)

	assert.Equal(t, 7, *out.YearsOfExperience)
	assert.Equal(t, types.VisaNo, out.VisaSponsorship)
	assert.Equal(t, "Central", out.District)
	assert.Equal(t, "Banking & Finance", out.Industry)
	assert.Equal(t, types.LocationHybrid, out.LocationType)
	require.NotNil(t, out.Salary)
	assert.Equal(t, 30000, out.Salary.Min)
}

func TestRicher_FreshKnownWins(t *testing.T) {
	two, six := 2, 6
	stored := types.Annotation{YearsOfExperience: &two, VisaSponsorship: types.VisaUnknown}
	fresh := types.Annotation{YearsOfExperience: &six, VisaSponsorship: types.VisaYes}

	out := Richer(stored, fresh)

	assert.Equal(t, 6, *out.YearsOfExperience)
	assert.Equal(t, types.VisaYes, out.VisaSponsorship)
}
