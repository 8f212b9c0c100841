package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/ats/pkg/job"
)

// JobRepository хранит вакансии.
type JobRepository struct {
	pool *pgxpool.Pool
}

func NewJobRepository(pool *pgxpool.Pool) *JobRepository {
	return &JobRepository{pool: pool}
}

func (r *JobRepository) Create(ctx context.Context, j job.Job) (int64, error) {
	if j.CreatedAt.IsZero() {
		j.CreatedAt = time.Now().UTC()
	}
	var id int64
	err := r.pool.QueryRow(ctx, `
INSERT INTO jobs (title_job, description, perfil_ideal, posted_date, created_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING id
`, strings.TrimSpace(j.Title), j.Description, j.IdealProfile, j.PostedDate, j.CreatedAt).Scan(&id)
	return id, err
}

func (r *JobRepository) GetByID(ctx context.Context, id int64) (job.Job, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, title_job, description, perfil_ideal, posted_date, created_at FROM jobs WHERE id = $1
`, id)
	j, err := scanJob(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return job.Job{}, job.ErrNotFound
	}
	return j, err
}

func (r *JobRepository) List(ctx context.Context, limit, offset int) ([]job.Job, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	rows, err := r.pool.Query(ctx, `
SELECT id, title_job, description, perfil_ideal, posted_date, created_at
FROM jobs
ORDER BY created_at DESC, id DESC
LIMIT $1 OFFSET $2
`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	res := []job.Job{}
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, j)
	}
	return res, rows.Err()
}

func (r *JobRepository) Update(ctx context.Context, id int64, p job.Patch) error {
	cmd, err := r.pool.Exec(ctx, `
UPDATE jobs SET
	title_job = COALESCE($2, title_job),
	description = COALESCE($3, description),
	perfil_ideal = COALESCE($4, perfil_ideal),
	posted_date = CASE WHEN $5::boolean THEN NULL ELSE COALESCE($6, posted_date) END
WHERE id = $1
`, id, p.Title, p.Description, p.IdealProfile, p.ClearPosted, p.PostedDate)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return job.ErrNotFound
	}
	return nil
}

func (r *JobRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return job.ErrNotFound
	}
	return nil
}

func scanJob(row pgx.Row) (job.Job, error) {
	var j job.Job
	var posted *time.Time
	if err := row.Scan(&j.ID, &j.Title, &j.Description, &j.IdealProfile, &posted, &j.CreatedAt); err != nil {
		return job.Job{}, err
	}
	if posted != nil {
		t := posted.UTC()
		j.PostedDate = &t
	}
	j.CreatedAt = j.CreatedAt.UTC()
	return j, nil
}

var _ job.Repository = (*JobRepository)(nil)
