package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/wingkam/jobradar/internal/ingestion"
	"github.com/wingkam/jobradar/internal/types"
)

const jobColumns = `id, source_id, source, title, company, raw_location,
        description, posted_date, source_url, annotation, expired,
        created_at, updated_at`

// UpsertJob inserts the job or refreshes the existing row sharing its
// natural key (source_id, source). Updates merge the annotation with the
// richer-wins policy; concurrent ingestion of the same key serializes on the
// row lock. Returns the stored job and whether a new row was created.
func (db *DB) UpsertJob(ctx context.Context, job types.Job) (types.Job, bool, error) {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return types.Job{}, false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	existing, err := scanJob(tx.QueryRow(ctx,
		`SELECT `+jobColumns+` FROM jobs
		 WHERE source_id = $1 AND source = $2
		 FOR UPDATE`,
		job.SourceID, job.Source,
	))

	var stored types.Job
	created := false
	switch {
	case err == nil:
		merged := ingestion.MergeForUpdate(existing, job)
		annotationJSON, mErr := json.Marshal(merged.Annotation)
		if mErr != nil {
			return types.Job{}, false, fmt.Errorf("failed to marshal annotation: %w", mErr)
		}
		stored, err = scanJob(tx.QueryRow(ctx,
			`UPDATE jobs SET
			     title = $1, company = $2, raw_location = $3, description = $4,
			     posted_date = $5, source_url = $6, annotation = $7,
			     expired = FALSE, updated_at = NOW()
			 WHERE id = $8
			 RETURNING `+jobColumns,
			merged.Title, merged.Company, merged.RawLocation, merged.Description,
			merged.PostedDate, merged.SourceURL, annotationJSON, existing.ID,
		))
		if err != nil {
			return types.Job{}, false, fmt.Errorf("failed to update job: %w", err)
		}

	case errors.Is(err, pgx.ErrNoRows):
		created = true
		annotationJSON, mErr := json.Marshal(job.Annotation)
		if mErr != nil {
			return types.Job{}, false, fmt.Errorf("failed to marshal annotation: %w", mErr)
		}
		stored, err = scanJob(tx.QueryRow(ctx,
			`INSERT INTO jobs (id, source_id, source, title, company, raw_location,
			                   description, posted_date, source_url, annotation)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			 ON CONFLICT (source_id, source) DO UPDATE SET
			     title = $4, company = $5, raw_location = $6, description = $7,
			     posted_date = $8, source_url = $9, annotation = $10,
			     expired = FALSE, updated_at = NOW()
			 RETURNING `+jobColumns,
			uuid.New(), job.SourceID, job.Source, job.Title, job.Company,
			job.RawLocation, job.Description, job.PostedDate, job.SourceURL,
			annotationJSON,
		))
		if err != nil {
			return types.Job{}, false, fmt.Errorf("failed to insert job: %w", err)
		}

	default:
		return types.Job{}, false, fmt.Errorf("failed to load job for upsert: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return types.Job{}, false, fmt.Errorf("failed to commit upsert: %w", err)
	}
	return stored, created, nil
}

// GetJobByID retrieves a job by primary key. Returns nil when absent.
func (db *DB) GetJobByID(ctx context.Context, id uuid.UUID) (*types.Job, error) {
	job, err := scanJob(db.pool.QueryRow(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return &job, nil
}

// GetJobByNaturalKey retrieves a job by (source_id, source). Returns nil
// when absent.
func (db *DB) GetJobByNaturalKey(ctx context.Context, sourceID, source string) (*types.Job, error) {
	job, err := scanJob(db.pool.QueryRow(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE source_id = $1 AND source = $2`,
		sourceID, source))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return &job, nil
}

// ListJobs translates the FilterSpec into a store query and returns the
// requested page plus the total match count.
func (db *DB) ListJobs(ctx context.Context, spec types.FilterSpec) ([]types.Job, int, error) {
	spec.Normalize()
	where, args := buildJobFilter(spec)

	var total int
	if err := db.pool.QueryRow(ctx, "SELECT COUNT(*) FROM jobs "+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count jobs: %w", err)
	}

	query := fmt.Sprintf(
		`SELECT `+jobColumns+` FROM jobs %s
		 ORDER BY created_at DESC
		 LIMIT $%d OFFSET $%d`,
		where, len(args)+1, len(args)+2,
	)
	args = append(args, spec.Limit, spec.Offset())

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	var jobs []types.Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, 0, err
		}
		jobs = append(jobs, job)
	}
	return jobs, total, nil
}

// ListJobsCreatedBetween returns non-expired jobs created in [from, to),
// used by the aggregation layer for windowed statistics.
func (db *DB) ListJobsCreatedBetween(ctx context.Context, from, to time.Time) ([]types.Job, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+jobColumns+` FROM jobs
		 WHERE created_at >= $1 AND created_at < $2 AND NOT expired
		 ORDER BY created_at DESC`,
		from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs by window: %w", err)
	}
	defer rows.Close()

	var jobs []types.Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

// MarkExpiredExcept flags every non-expired job of the source whose
// source_id is not in the live set. Returns the number of jobs swept.
func (db *DB) MarkExpiredExcept(ctx context.Context, source string, liveSourceIDs []string) (int, error) {
	tag, err := db.pool.Exec(ctx,
		`UPDATE jobs SET expired = TRUE, updated_at = NOW()
		 WHERE source = $1 AND NOT expired AND NOT (source_id = ANY($2))`,
		source, liveSourceIDs,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to mark expired jobs: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

// PurgeExpired physically deletes expired jobs untouched for longer than the
// grace period. Retention only; live rows are never deleted.
func (db *DB) PurgeExpired(ctx context.Context, grace time.Duration) (int, error) {
	tag, err := db.pool.Exec(ctx,
		`DELETE FROM jobs WHERE expired AND updated_at < $1`,
		time.Now().Add(-grace),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to purge expired jobs: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

// scanJob reads one job row, decoding the annotation JSONB column.
func scanJob(row pgx.Row) (types.Job, error) {
	var job types.Job
	var annotationJSON []byte

	err := row.Scan(&job.ID, &job.SourceID, &job.Source, &job.Title, &job.Company,
		&job.RawLocation, &job.Description, &job.PostedDate, &job.SourceURL,
		&annotationJSON, &job.Expired, &job.CreatedAt, &job.UpdatedAt)
	if err != nil {
		return types.Job{}, err
	}
	if annotationJSON != nil {
		if err := json.Unmarshal(annotationJSON, &job.Annotation); err != nil {
			return types.Job{}, fmt.Errorf("failed to decode annotation: %w", err)
		}
	}
	return job, nil
}
