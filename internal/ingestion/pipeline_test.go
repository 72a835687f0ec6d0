package ingestion

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/wingkam/jobradar/internal/annotate"
	"github.com/wingkam/jobradar/internal/types"
)

type fakeSource struct {
	listings   []types.RawJob
	failDetail map[string]bool
}

func (f *fakeSource) Name() string { return types.SourceJobsDB }

func (f *fakeSource) Search(ctx context.Context, keyword string, page int) ([]types.RawJob, error) {
	if page > 1 {
		return nil, nil
	}
	return f.listings, nil
}

func (f *fakeSource) FetchDetail(ctx context.Context, raw *types.RawJob) error {
	if f.failDetail[raw.SourceID] {
		return errors.New("timeout")
	}
	raw.Description = "5+ years of experience with Golang and Kubernetes."
	return nil
}

type fakeStore struct {
	mu       sync.Mutex
	existing map[string]bool
	upserts  []types.Job
	swept    []string
}

func (f *fakeStore) UpsertJob(ctx context.Context, job types.Job) (types.Job, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.upserts = append(f.upserts, job)
	created := !f.existing[job.NaturalKey()]
	return job, created, nil
}

func (f *fakeStore) MarkExpiredExcept(ctx context.Context, source string, live []string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.swept = live
	return 2, nil
}

func TestPipelineRun(t *testing.T) {
	src := &fakeSource{
		listings: []types.RawJob{
			{SourceID: "j-1", Source: types.SourceJobsDB, Title: "Backend Engineer", Company: "Acme"},
			{SourceID: "j-2", Source: types.SourceJobsDB, Title: "SRE", Company: "Beta"},
			{SourceID: "j-1", Source: types.SourceJobsDB, Title: "Backend Engineer", Company: "Acme"},
		},
		failDetail: map[string]bool{"j-2": true},
	}
	store := &fakeStore{existing: map[string]bool{"j-1|JobsDB": true}}
	p := NewPipeline(src, NewNormalizer(annotate.HongKongProfile()), store, zap.NewNop())

	result, err := p.Run(context.Background(), []string{"golang"}, 2)
	require.NoError(t, err)

	// Duplicate listing deduplicated; detail failure does not drop the job.
	assert.Equal(t, 2, result.Fetched)
	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 1, result.Updated)
	assert.Equal(t, 0, result.Skipped)
	assert.ElementsMatch(t, []string{"j-1", "j-2"}, result.LiveIDs)
	require.Len(t, store.upserts, 2)

	for _, job := range store.upserts {
		if job.SourceID == "j-1" {
			assert.Contains(t, job.Annotation.TechStack, "Golang")
			require.NotNil(t, job.Annotation.YearsOfExperience)
			assert.Equal(t, 5, *job.Annotation.YearsOfExperience)
		}
	}
}

func TestPipelineSweep(t *testing.T) {
	store := &fakeStore{}
	p := NewPipeline(&fakeSource{}, NewNormalizer(annotate.HongKongProfile()), store, nil)

	swept, err := p.Sweep(context.Background(), []string{"j-1", "j-2"})
	require.NoError(t, err)
	assert.Equal(t, 2, swept)
	assert.Equal(t, []string{"j-1", "j-2"}, store.swept)
}
