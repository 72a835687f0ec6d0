package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wingkam/jobradar/internal/patterns"
	"github.com/wingkam/jobradar/internal/types"
)

func TestVisaSponsorship_Positive(t *testing.T) {
	got := VisaSponsorship(patterns.Generic(), "Visa sponsorship available for the right candidate.")
	assert.Equal(t, types.VisaYes, got)
}

func TestVisaSponsorship_Negative(t *testing.T) {
	got := VisaSponsorship(patterns.Generic(), "Please note: no visa sponsorship for this role.")
	assert.Equal(t, types.VisaNo, got)
}

func TestVisaSponsorship_NegativeBeatsPositive(t *testing.T) {
	// Both signals present; the negative one is absolute.
	text := "We sponsor events worldwide, but no visa sponsorship is offered."

	got := VisaSponsorship(patterns.Generic(), text)

	assert.Equal(t, types.VisaNo, got)
}

func TestVisaSponsorship_Unknown(t *testing.T) {
	assert.Equal(t, types.VisaUnknown, VisaSponsorship(patterns.Generic(), "Great benefits and a friendly team."))
	assert.Equal(t, types.VisaUnknown, VisaSponsorship(patterns.Generic(), ""))
}

func TestSecurityClearance(t *testing.T) {
	assert.True(t, SecurityClearance(patterns.Generic(), "Active security clearance required."))
	assert.True(t, SecurityClearance(patterns.Generic(), "Must hold TS/SCI."))
	assert.False(t, SecurityClearance(patterns.Generic(), "No special requirements."))
	assert.False(t, SecurityClearance(patterns.Generic(), ""))
}

func TestWorkPermit_IndependentFlags(t *testing.T) {
	reg := patterns.HongKong()

	wp := WorkPermit(reg, "Applicants must be a Hong Kong permanent resident. Visa sponsorship considered for senior hires.")
	assert.True(t, wp.PermanentResidentRequired)
	assert.True(t, wp.VisaSponsorshipAvailable)
	assert.False(t, wp.WorkVisaAccepted)

	wp = WorkPermit(reg, "Candidates holding a valid working visa or IANG are welcome.")
	assert.False(t, wp.PermanentResidentRequired)
	assert.True(t, wp.WorkVisaAccepted)
}

func TestWorkPermit_EmptyTextDefaultsFalse(t *testing.T) {
	wp := WorkPermit(patterns.HongKong(), "")
	assert.NotNil(t, wp)
	assert.False(t, wp.PermanentResidentRequired)
	assert.False(t, wp.VisaSponsorshipAvailable)
	assert.False(t, wp.WorkVisaAccepted)
}
