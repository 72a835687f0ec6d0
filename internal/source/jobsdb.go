package source

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/wingkam/jobradar/internal/types"
)

// JobsDB scrapes the JobsDB Hong Kong listing and detail pages.
type JobsDB struct {
	fetcher *Fetcher
	baseURL string
}

// NewJobsDB builds a JobsDB source. baseURL defaults to the public site when
// empty, and is overridable for tests and mirrors.
func NewJobsDB(fetcher *Fetcher, baseURL string) *JobsDB {
	if baseURL == "" {
		baseURL = "https://hk.jobsdb.com"
	}
	return &JobsDB{fetcher: fetcher, baseURL: strings.TrimRight(baseURL, "/")}
}

// Name identifies the board in Job.Source.
func (s *JobsDB) Name() string {
	return types.SourceJobsDB
}

// Search fetches one listing page for the keyword and parses its job cards
// into raw tuples. Descriptions are not on the listing page; FetchDetail
// fills them in.
func (s *JobsDB) Search(ctx context.Context, keyword string, page int) ([]types.RawJob, error) {
	listURL := fmt.Sprintf("%s/hk/search-jobs/%s/%d", s.baseURL, url.PathEscape(keyword), page)
	html, err := s.fetcher.HTML(ctx, listURL)
	if err != nil {
		return nil, err
	}

	jobs, err := parseJobsDBListing(html)
	if err != nil {
		return nil, &FetchError{URL: listURL, Message: "failed to parse listing", Cause: err}
	}
	for i := range jobs {
		if jobs[i].SourceURL != "" && !strings.HasPrefix(jobs[i].SourceURL, "http") {
			jobs[i].SourceURL = s.baseURL + jobs[i].SourceURL
		}
	}
	return jobs, nil
}

// FetchDetail loads the posting page and fills in the description. A job
// without a detail URL is left untouched rather than failing the batch.
func (s *JobsDB) FetchDetail(ctx context.Context, job *types.RawJob) error {
	if job.SourceURL == "" {
		return nil
	}
	html, err := s.fetcher.HTML(ctx, job.SourceURL)
	if err != nil {
		return err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return &FetchError{URL: job.SourceURL, Message: "failed to parse detail page", Cause: err}
	}

	description := strings.TrimSpace(doc.Find("div[data-automation='jobAdDetails']").Text())
	if description == "" {
		description = strings.TrimSpace(doc.Find("div.job-description").Text())
	}
	job.Description = description
	return nil
}

// parseJobsDBListing extracts the job cards from a listing page.
func parseJobsDBListing(html string) ([]types.RawJob, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	var jobs []types.RawJob
	doc.Find("article[data-job-id]").Each(func(_ int, card *goquery.Selection) {
		id, _ := card.Attr("data-job-id")
		if id == "" {
			return
		}

		job := types.RawJob{
			SourceID:    id,
			Source:      types.SourceJobsDB,
			Title:       strings.TrimSpace(card.Find("[data-automation='jobTitle']").Text()),
			Company:     strings.TrimSpace(card.Find("[data-automation='jobCompany']").Text()),
			RawLocation: strings.TrimSpace(card.Find("[data-automation='jobLocation']").Text()),
		}
		if href, ok := card.Find("a[data-automation='jobTitle']").Attr("href"); ok {
			job.SourceURL = href
		} else if href, ok := card.Find("a").Attr("href"); ok {
			job.SourceURL = href
		}
		if dateStr, ok := card.Find("time").Attr("datetime"); ok {
			if posted, err := time.Parse(time.RFC3339, dateStr); err == nil {
				job.PostedDate = &posted
			}
		}
		jobs = append(jobs, job)
	})
	return jobs, nil
}
