package types

import (
	"time"

	"github.com/google/uuid"
)

// SourceJobsDB identifies the JobsDB board. Further boards register their
// own identifier alongside their Source implementation.
const SourceJobsDB = "JobsDB"

// RawJob is the tuple handed over by a scraping source. Any field may be
// missing or malformed; annotation runs on Description treated as "" when
// absent.
type RawJob struct {
	SourceID    string     `json:"source_id"`
	Source      string     `json:"source"`
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	RawLocation string     `json:"raw_location,omitempty"`
	Description string     `json:"description,omitempty"`
	PostedDate  *time.Time `json:"posted_date,omitempty"`
	SourceURL   string     `json:"source_url,omitempty"`
}

// Job is the canonical stored entity. (SourceID, Source) is a natural key:
// re-ingesting the same key refreshes UpdatedAt (and possibly Annotation)
// instead of creating a second row.
type Job struct {
	ID          uuid.UUID  `json:"id"`
	SourceID    string     `json:"source_id"`
	Source      string     `json:"source"`
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	RawLocation string     `json:"raw_location,omitempty"`
	Description string     `json:"description,omitempty"` // stripped from list responses
	PostedDate  *time.Time `json:"posted_date,omitempty"`
	SourceURL   string     `json:"source_url,omitempty"`
	Annotation  Annotation `json:"annotation"`
	Expired     bool       `json:"expired"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NaturalKey returns the cross-ingestion identity of the job.
func (j *Job) NaturalKey() string {
	return j.SourceID + "|" + j.Source
}
