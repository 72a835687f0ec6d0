package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wingkam/jobradar/internal/ingestion"
	"github.com/wingkam/jobradar/internal/types"
)

type fakeIngester struct {
	result ingestion.Result
	swept  []string
}

func (f *fakeIngester) Run(_ context.Context, keywords []string, pages int) (ingestion.Result, error) {
	return f.result, nil
}

func (f *fakeIngester) Sweep(_ context.Context, live []string) (int, error) {
	f.swept = live
	return 0, nil
}

func TestHandleListJobs(t *testing.T) {
	store := newFakeStore()
	job := types.Job{
		ID:        uuid.New(),
		SourceID:  "j-1",
		Source:    types.SourceJobsDB,
		Title:     "Backend Engineer",
		Company:   "Acme",
		CreatedAt: time.Now(),
	}
	store.jobs[job.ID] = job
	s := newTestServer(store)

	req := httptest.NewRequest(http.MethodGet, "/jobs?tech_stack=Golang,Python&page=1", nil)
	w := httptest.NewRecorder()

	s.handleListJobs(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp ListJobsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Count)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, types.DefaultPageSize, resp.Limit)
	require.Len(t, resp.Jobs, 1)
	assert.Equal(t, "Backend Engineer", resp.Jobs[0].Title)
}

func TestHandleListJobs_StripsDescription(t *testing.T) {
	store := newFakeStore()
	job := types.Job{
		ID:          uuid.New(),
		Title:       "Backend Engineer",
		Company:     "Acme",
		Description: "Full posting text with responsibilities and requirements.",
	}
	store.jobs[job.ID] = job
	s := newTestServer(store)

	req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
	w := httptest.NewRecorder()

	s.handleListJobs(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "responsibilities")
}

func TestHandleGetJob_IncludesDescription(t *testing.T) {
	store := newFakeStore()
	job := types.Job{
		ID:          uuid.New(),
		Title:       "Backend Engineer",
		Company:     "Acme",
		Description: "Full posting text with responsibilities and requirements.",
	}
	store.jobs[job.ID] = job
	s := newTestServer(store)

	req := httptest.NewRequest(http.MethodGet, "/jobs/"+job.ID.String(), nil)
	req.SetPathValue("id", job.ID.String())
	w := httptest.NewRecorder()

	s.handleGetJob(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var got types.Job
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, job.Description, got.Description)
}

func TestHandleListJobs_EmptyCorpus(t *testing.T) {
	s := newTestServer(newFakeStore())

	req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
	w := httptest.NewRecorder()

	s.handleListJobs(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	// Empty result must serialize as [], not null.
	assert.Contains(t, w.Body.String(), `"jobs":[]`)
}

func TestHandleListJobs_BadParam(t *testing.T) {
	s := newTestServer(newFakeStore())

	req := httptest.NewRequest(http.MethodGet, "/jobs?min_salary=lots", nil)
	w := httptest.NewRecorder()

	s.handleListJobs(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "min_salary")
}

func TestHandleListJobs_BadWorkPermit(t *testing.T) {
	s := newTestServer(newFakeStore())

	req := httptest.NewRequest(http.MethodGet, "/jobs?work_permit=golden_visa", nil)
	w := httptest.NewRecorder()

	s.handleListJobs(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleGetJob_InvalidID(t *testing.T) {
	s := newTestServer(newFakeStore())

	req := httptest.NewRequest(http.MethodGet, "/jobs/not-a-uuid", nil)
	req.SetPathValue("id", "not-a-uuid")
	w := httptest.NewRecorder()

	s.handleGetJob(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp["error"], "Invalid job ID")
}

func TestHandleGetJob_NotFound(t *testing.T) {
	s := newTestServer(newFakeStore())

	id := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/jobs/"+id.String(), nil)
	req.SetPathValue("id", id.String())
	w := httptest.NewRecorder()

	s.handleGetJob(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleGetJob_Found(t *testing.T) {
	store := newFakeStore()
	job := types.Job{ID: uuid.New(), Title: "Data Engineer", Company: "Beta"}
	store.jobs[job.ID] = job
	s := newTestServer(store)

	req := httptest.NewRequest(http.MethodGet, "/jobs/"+job.ID.String(), nil)
	req.SetPathValue("id", job.ID.String())
	w := httptest.NewRecorder()

	s.handleGetJob(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var got types.Job
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, job.ID, got.ID)
	assert.Equal(t, "Data Engineer", got.Title)
}

func TestHandleIngest(t *testing.T) {
	ing := &fakeIngester{result: ingestion.Result{
		Fetched: 10, Created: 4, Updated: 6,
		LiveIDs: []string{"a", "b"},
	}}
	s := newTestServer(newFakeStore())
	s.ingesters = []Ingester{ing}
	s.keywords = []string{"golang"}
	s.pages = 1

	body := `{"keywords": ["backend"], "pages": 2}`
	req := httptest.NewRequest(http.MethodPost, "/ingest", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	s.handleIngest(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp IngestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 10, resp.Fetched)
	assert.Equal(t, 4, resp.Created)
	assert.Equal(t, 6, resp.Updated)
	assert.Equal(t, []string{"a", "b"}, ing.swept)
}

func TestHandleIngest_NoSources(t *testing.T) {
	s := newTestServer(newFakeStore())

	req := httptest.NewRequest(http.MethodPost, "/ingest", nil)
	w := httptest.NewRecorder()

	s.handleIngest(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestHandleIngest_InvalidJSON(t *testing.T) {
	s := newTestServer(newFakeStore())
	s.ingesters = []Ingester{&fakeIngester{}}

	req := httptest.NewRequest(http.MethodPost, "/ingest", bytes.NewBufferString("{bad"))
	w := httptest.NewRecorder()

	s.handleIngest(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleOverview(t *testing.T) {
	store := newFakeStore()
	job := types.Job{
		ID:        uuid.New(),
		Title:     "Engineer",
		Company:   "Acme",
		CreatedAt: time.Now().Add(-24 * time.Hour),
		Annotation: types.Annotation{
			VisaSponsorship: types.VisaYes,
			LocationType:    types.LocationOnSite,
		},
	}
	store.jobs[job.ID] = job
	s := newTestServer(store)

	req := httptest.NewRequest(http.MethodGet, "/stats/overview?window_days=30", nil)
	w := httptest.NewRecorder()

	s.handleOverview(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total_jobs":1`)
}

func TestHandleTrending(t *testing.T) {
	s := newTestServer(newFakeStore())

	req := httptest.NewRequest(http.MethodGet, "/stats/trending", nil)
	w := httptest.NewRecorder()

	s.handleTrending(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":0`)
}

func TestParseFilterSpec(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet,
		"/jobs?search=engineer&tech_stack=Golang,%20Python&min_experience=3&min_salary=30000"+
			"&district=Central&visa_sponsorship=true&include_expired=true&page=2&limit=50", nil)

	spec, err := parseFilterSpec(req)
	require.NoError(t, err)

	assert.Equal(t, "engineer", spec.Search)
	assert.Equal(t, []string{"Golang", "Python"}, spec.TechStack)
	require.NotNil(t, spec.MinExperience)
	assert.Equal(t, 3, *spec.MinExperience)
	require.NotNil(t, spec.MinSalary)
	assert.Equal(t, 30000, *spec.MinSalary)
	assert.Equal(t, "Central", spec.District)
	require.NotNil(t, spec.VisaSponsorship)
	assert.True(t, *spec.VisaSponsorship)
	assert.True(t, spec.IncludeExpired)
	assert.Equal(t, 2, spec.Page)
	assert.Equal(t, 50, spec.Limit)
}

func TestParseFilterSpec_Defaults(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/jobs", nil)

	spec, err := parseFilterSpec(req)
	require.NoError(t, err)

	assert.Equal(t, 1, spec.Page)
	assert.Equal(t, types.DefaultPageSize, spec.Limit)
	assert.Nil(t, spec.TechStack)
	assert.Nil(t, spec.VisaSponsorship)
	assert.False(t, spec.IncludeExpired)
}

// TestParseQueryInt tests the parseQueryInt helper function
func TestParseQueryInt(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		key          string
		defaultValue int
		maxValue     int
		want         int
	}{
		{"missing uses default", "", "limit", 20, 100, 20},
		{"valid value", "limit=42", "limit", 20, 100, 42},
		{"capped at max", "limit=500", "limit", 20, 100, 100},
		{"non-numeric uses default", "limit=abc", "limit", 20, 100, 20},
		{"negative uses default", "limit=-5", "limit", 20, 100, 20},
		{"no cap when max is zero", "page=9999", "page", 1, 0, 9999},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/jobs?"+tt.query, nil)
			got := parseQueryInt(req, tt.key, tt.defaultValue, tt.maxValue)
			assert.Equal(t, tt.want, got)
		})
	}
}
