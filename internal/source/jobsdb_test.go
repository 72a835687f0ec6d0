package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listingHTML = `
<html><body>
<article data-job-id="123">
  <a data-automation="jobTitle" href="/hk/job/123">Backend Developer</a>
  <span data-automation="jobCompany">Acme Bank</span>
  <span data-automation="jobLocation">Central</span>
  <time datetime="2026-08-20T00:00:00Z">5 days ago</time>
</article>
<article data-job-id="456">
  <a data-automation="jobTitle" href="/hk/job/456">Data Engineer</a>
  <span data-automation="jobCompany">Beta Ltd</span>
</article>
<article>
  <a data-automation="jobTitle" href="/hk/job/no-id">Skipped, no id</a>
</article>
</body></html>`

func TestParseJobsDBListing(t *testing.T) {
	jobs, err := parseJobsDBListing(listingHTML)

	require.NoError(t, err)
	require.Len(t, jobs, 2)

	assert.Equal(t, "123", jobs[0].SourceID)
	assert.Equal(t, "JobsDB", jobs[0].Source)
	assert.Equal(t, "Backend Developer", jobs[0].Title)
	assert.Equal(t, "Acme Bank", jobs[0].Company)
	assert.Equal(t, "Central", jobs[0].RawLocation)
	assert.Equal(t, "/hk/job/123", jobs[0].SourceURL)
	require.NotNil(t, jobs[0].PostedDate)
	assert.Equal(t, 2026, jobs[0].PostedDate.Year())

	assert.Equal(t, "456", jobs[1].SourceID)
	assert.Nil(t, jobs[1].PostedDate)
}

func TestParseJobsDBListing_Empty(t *testing.T) {
	jobs, err := parseJobsDBListing("<html><body>no cards</body></html>")

	require.NoError(t, err)
	assert.Empty(t, jobs)
}
