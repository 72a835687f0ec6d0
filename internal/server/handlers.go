package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/wingkam/jobradar/internal/types"
)

// ListJobsResponse represents the response for listing jobs
type ListJobsResponse struct {
	Jobs  []types.Job `json:"jobs"`
	Count int         `json:"count"`
	Page  int         `json:"page"`
	Limit int         `json:"limit"`
}

// IngestRequest represents a manual ingest trigger
type IngestRequest struct {
	Keywords []string `json:"keywords,omitempty"`
	Pages    int      `json:"pages,omitempty"`
}

// IngestResponse represents the combined counters of an ingest run
type IngestResponse struct {
	Fetched int `json:"fetched"`
	Created int `json:"created"`
	Updated int `json:"updated"`
	Skipped int `json:"skipped"`
}

// handleListJobs lists annotated jobs with filters and pagination
func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	spec, err := parseFilterSpec(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.validate.Struct(spec); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid filter: "+err.Error())
		return
	}

	jobs, total, err := s.store.ListJobs(r.Context(), spec)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if jobs == nil {
		jobs = []types.Job{}
	}
	// The full description only ships on the detail endpoint.
	for i := range jobs {
		jobs[i].Description = ""
	}

	s.jsonResponse(w, http.StatusOK, ListJobsResponse{
		Jobs:  jobs,
		Count: total,
		Page:  spec.Page,
		Limit: spec.Limit,
	})
}

// handleGetJob retrieves a job by its ID
func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")
	jobID, err := uuid.Parse(idStr)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job ID")
		return
	}

	job, err := s.store.GetJobByID(r.Context(), jobID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if job == nil {
		s.errorResponse(w, http.StatusNotFound, "Job not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, job)
}

// handleIngest triggers a crawl of every configured board. The run is
// synchronous so the response carries real counters.
func (s *Server) handleIngest(w http.ResponseWriter, r *http.Request) {
	var req IngestRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
			return
		}
	}

	keywords := req.Keywords
	if len(keywords) == 0 {
		keywords = s.keywords
	}
	pages := req.Pages
	if pages < 1 {
		pages = s.pages
	}

	if len(s.ingesters) == 0 {
		s.errorResponse(w, http.StatusServiceUnavailable, "No sources configured")
		return
	}

	var resp IngestResponse
	for _, ing := range s.ingesters {
		result, err := ing.Run(r.Context(), keywords, pages)
		if err != nil {
			s.errorResponse(w, http.StatusBadGateway, "Ingest failed: "+err.Error())
			return
		}
		if result.Fetched > 0 {
			if _, err := ing.Sweep(r.Context(), result.LiveIDs); err != nil {
				s.log.Error("staleness sweep failed", zap.Error(err))
			}
		}
		resp.Fetched += result.Fetched
		resp.Created += result.Created
		resp.Updated += result.Updated
		resp.Skipped += result.Skipped
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleOverview returns corpus-wide aggregates for the requested window
func (s *Server) handleOverview(w http.ResponseWriter, r *http.Request) {
	windowDays := parseQueryInt(r, "window_days", 30, 365)

	overview, err := s.stats.Overview(r.Context(), windowDays)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Stats error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, overview)
}

// handleTrending returns skills ranked by posting growth
func (s *Server) handleTrending(w http.ResponseWriter, r *http.Request) {
	currentDays := parseQueryInt(r, "current_days", 7, 90)
	previousDays := parseQueryInt(r, "previous_days", 7, 90)

	skills, err := s.stats.TrendingSkills(r.Context(), currentDays, previousDays)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Stats error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"skills": skills,
		"count":  len(skills),
	})
}

// parseFilterSpec builds a FilterSpec from query parameters. List-valued
// dimensions use comma separation, e.g. tech_stack=Golang,Python.
func parseFilterSpec(r *http.Request) (types.FilterSpec, error) {
	q := r.URL.Query()

	spec := types.FilterSpec{
		Search:    strings.TrimSpace(q.Get("search")),
		TechStack: splitList(q.Get("tech_stack")),
		Languages: splitList(q.Get("languages")),
		Benefits:  splitList(q.Get("benefits")),
		Education: splitList(q.Get("education")),
		District:  strings.TrimSpace(q.Get("district")),
		Industry:  strings.TrimSpace(q.Get("industry")),
	}

	var err error
	if spec.MinExperience, err = parseQueryIntPtr(r, "min_experience"); err != nil {
		return spec, err
	}
	if spec.MaxExperience, err = parseQueryIntPtr(r, "max_experience"); err != nil {
		return spec, err
	}
	if spec.MinSalary, err = parseQueryIntPtr(r, "min_salary"); err != nil {
		return spec, err
	}
	if spec.MaxSalary, err = parseQueryIntPtr(r, "max_salary"); err != nil {
		return spec, err
	}

	spec.WorkPermit = q.Get("work_permit")

	if spec.VisaSponsorship, err = parseQueryBoolPtr(r, "visa_sponsorship"); err != nil {
		return spec, err
	}
	if spec.SecurityClearance, err = parseQueryBoolPtr(r, "security_clearance"); err != nil {
		return spec, err
	}
	spec.IncludeExpired = q.Get("include_expired") == "true"

	spec.Page = parseQueryInt(r, "page", 1, 0)
	spec.Limit = parseQueryInt(r, "limit", types.DefaultPageSize, 100)
	spec.Normalize()

	return spec, nil
}

// parseQueryInt parses an integer query parameter with default and max values
func parseQueryInt(r *http.Request, key string, defaultValue, maxValue int) int {
	value := r.URL.Query().Get(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return defaultValue
	}
	if maxValue > 0 && n > maxValue {
		return maxValue
	}
	return n
}

func parseQueryIntPtr(r *http.Request, key string) (*int, error) {
	value := r.URL.Query().Get(key)
	if value == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return nil, &QueryError{Param: key, Value: value}
	}
	return &n, nil
}

func parseQueryBoolPtr(r *http.Request, key string) (*bool, error) {
	value := r.URL.Query().Get(key)
	if value == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return nil, &QueryError{Param: key, Value: value}
	}
	return &b, nil
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
