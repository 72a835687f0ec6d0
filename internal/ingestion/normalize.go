package ingestion

import (
	"strings"

	"github.com/wingkam/jobradar/internal/annotate"
	"github.com/wingkam/jobradar/internal/types"
)

// Normalizer turns raw scrape tuples into canonical Job entities using a
// market profile for annotation.
type Normalizer struct {
	profile *annotate.Profile
}

// NewNormalizer builds a Normalizer for the given market profile.
func NewNormalizer(profile *annotate.Profile) *Normalizer {
	return &Normalizer{profile: profile}
}

// Normalize builds a Job from a raw tuple. Missing title or company is a
// data-quality warning, not a failure; the job is still produced. The
// description is cleaned and annotated through the generic profile merged
// with the normalizer's market profile.
func (n *Normalizer) Normalize(raw types.RawJob) (types.Job, []string) {
	var warnings []string

	title := strings.TrimSpace(raw.Title)
	if title == "" {
		warnings = append(warnings, "missing title")
	}
	company := strings.TrimSpace(raw.Company)
	if company == "" {
		warnings = append(warnings, "missing company")
	}
	if strings.TrimSpace(raw.SourceID) == "" {
		warnings = append(warnings, "missing source id")
	}

	description := CleanDescription(raw.Description)
	annotation := annotate.Compose(description, n.profile)

	job := types.Job{
		SourceID:    strings.TrimSpace(raw.SourceID),
		Source:      strings.TrimSpace(raw.Source),
		Title:       title,
		Company:     company,
		RawLocation: strings.TrimSpace(raw.RawLocation),
		Description: description,
		PostedDate:  raw.PostedDate,
		SourceURL:   strings.TrimSpace(raw.SourceURL),
		Annotation:  annotation,
	}
	return job, warnings
}

// MergeForUpdate reconciles a freshly normalized job with the stored row for
// the same natural key. Scalar fields take the fresh value when present;
// the annotation is merged with the richer-wins policy so a known field is
// never downgraded to unknown.
func MergeForUpdate(stored, fresh types.Job) types.Job {
	out := stored

	if fresh.Title != "" {
		out.Title = fresh.Title
	}
	if fresh.Company != "" {
		out.Company = fresh.Company
	}
	if fresh.RawLocation != "" {
		out.RawLocation = fresh.RawLocation
	}
	if fresh.Description != "" {
		out.Description = fresh.Description
	}
	if fresh.PostedDate != nil {
		out.PostedDate = fresh.PostedDate
	}
	if fresh.SourceURL != "" {
		out.SourceURL = fresh.SourceURL
	}
	out.Annotation = annotate.Richer(stored.Annotation, fresh.Annotation)
	// A job seen again at the source is live regardless of a prior sweep.
	out.Expired = false
	return out
}
