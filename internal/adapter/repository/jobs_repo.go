package repository

import (
	"context"
	"encoding/json"
	"errors"

	"resume-builder/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

// ErrNotFound is returned by Get for an unknown id, and always when the
// repository has no database.
var ErrNotFound = errors.New("export job not found")

type JobsRepo struct {
	pool *pgxpool.Pool
}

// NewJobsRepo returns a repo backed by pool. A nil pool disables persistence:
// Save becomes a no-op and Get reports ErrNotFound.
func NewJobsRepo(pool *pgxpool.Pool) *JobsRepo {
	return &JobsRepo{pool: pool}
}

func (r *JobsRepo) Enabled() bool { return r != nil && r.pool != nil }

func (r *JobsRepo) Save(ctx context.Context, j *domain.ExportJob) error {
	if !r.Enabled() {
		return nil
	}

	metaB, err := json.Marshal(j.Metadata)
	if err != nil {
		return err
	}

	_, err = r.pool.Exec(ctx, `INSERT INTO export_jobs (id, format, candidate_name, target_job, status, metadata, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		ON CONFLICT (id) DO UPDATE SET status = EXCLUDED.status, metadata = EXCLUDED.metadata, updated_at = EXCLUDED.updated_at`,
		j.ID, j.Format, j.CandidateName, j.TargetJob, j.Status, metaB, j.CreatedAt, j.UpdatedAt)
	return err
}

func (r *JobsRepo) Get(ctx context.Context, id uuid.UUID) (*domain.ExportJob, error) {
	if !r.Enabled() {
		return nil, ErrNotFound
	}

	var j domain.ExportJob
	var metaB []byte
	err := r.pool.QueryRow(ctx, `SELECT id, format, candidate_name, target_job, status, metadata, created_at, updated_at
		FROM export_jobs WHERE id = $1`, id).
		Scan(&j.ID, &j.Format, &j.CandidateName, &j.TargetJob, &j.Status, &metaB, &j.CreatedAt, &j.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	j.Metadata = map[string]interface{}{}
	if len(metaB) > 0 {
		if err := json.Unmarshal(metaB, &j.Metadata); err != nil {
			return nil, err
		}
	}
	return &j, nil
}
