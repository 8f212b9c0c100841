package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/ats/pkg/application"
	"github.com/artem13815/ats/pkg/pipeline"
)

// ApplicationRepository хранит заявки и их этапы.
type ApplicationRepository struct {
	pool *pgxpool.Pool
}

func NewApplicationRepository(pool *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{pool: pool}
}

const selectApplications = `
SELECT a.id, a.user_id, u.name, u.email, j.id, j.title_job, j.description,
	a.status, a.created_at, a.similarity_percent,
	COALESCE(
		json_agg(json_build_object('name', s.name, 'status', s.status, 'date', s.date, 'feedback', s.feedback)
			ORDER BY s.sort_order, s.name)
			FILTER (WHERE s.name IS NOT NULL),
		'[]'
	) AS timeline
FROM applications a
JOIN jobs j ON j.id = a.job_id
LEFT JOIN users u ON u.id = a.user_id
LEFT JOIN application_stages s ON s.application_id = a.id
`

func (r *ApplicationRepository) ListAll(ctx context.Context) ([]pipeline.Application, error) {
	return r.list(ctx, selectApplications+`GROUP BY a.id, u.id, j.id ORDER BY a.created_at DESC, a.id DESC`)
}

func (r *ApplicationRepository) ListByUser(ctx context.Context, userID int64) ([]pipeline.Application, error) {
	return r.list(ctx, selectApplications+`WHERE a.user_id = $1 GROUP BY a.id, u.id, j.id ORDER BY a.created_at DESC, a.id DESC`, userID)
}

func (r *ApplicationRepository) Get(ctx context.Context, id int64) (pipeline.Application, error) {
	apps, err := r.list(ctx, selectApplications+`WHERE a.id = $1 GROUP BY a.id, u.id, j.id`, id)
	if err != nil {
		return pipeline.Application{}, err
	}
	if len(apps) == 0 {
		return pipeline.Application{}, application.ErrNotFound
	}
	return apps[0], nil
}

func (r *ApplicationRepository) list(ctx context.Context, query string, args ...any) ([]pipeline.Application, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	res := []pipeline.Application{}
	for rows.Next() {
		var (
			a        pipeline.Application
			userID   int64
			name     *string
			email    *string
			jobRef   pipeline.JobRef
			created  time.Time
			timeline []byte
		)
		if err := rows.Scan(&a.ID, &userID, &name, &email, &jobRef.ID, &jobRef.Title, &jobRef.Description,
			&a.Status, &created, &a.SimilarityPercent, &timeline); err != nil {
			return nil, err
		}
		created = created.UTC()
		a.CreatedAt = &created
		a.User = &pipeline.User{ID: &userID, Name: name, Email: email}
		a.Job = &jobRef
		if err := json.Unmarshal(timeline, &a.Timeline); err != nil {
			return nil, err
		}
		res = append(res, a)
	}
	return res, rows.Err()
}

func (r *ApplicationRepository) FindByUserAndJob(ctx context.Context, userID, jobID int64) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx, `SELECT id FROM applications WHERE user_id = $1 AND job_id = $2`, userID, jobID).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, application.ErrNotFound
	}
	return id, err
}

func (r *ApplicationRepository) Create(ctx context.Context, na application.NewApplication) (int64, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var id int64
	err = tx.QueryRow(ctx, `
INSERT INTO applications (user_id, job_id, status, similarity_percent, created_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING id
`, na.UserID, na.JobID, na.Status, na.SimilarityPercent, time.Now().UTC()).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return 0, application.ErrDuplicate
		}
		return 0, err
	}
	if err := upsertStages(ctx, tx, id, na.Timeline); err != nil {
		return 0, err
	}
	return id, tx.Commit(ctx)
}

func (r *ApplicationRepository) ApplyStages(ctx context.Context, id int64, entries []pipeline.TimelineEntry, status *string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var one int
	if err := tx.QueryRow(ctx, `SELECT 1 FROM applications WHERE id = $1 FOR UPDATE`, id).Scan(&one); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return application.ErrNotFound
		}
		return err
	}
	if err := upsertStages(ctx, tx, id, entries); err != nil {
		return err
	}
	if status != nil {
		if _, err := tx.Exec(ctx, `UPDATE applications SET status = $2 WHERE id = $1`, id, *status); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func upsertStages(ctx context.Context, tx pgx.Tx, id int64, entries []pipeline.TimelineEntry) error {
	for _, e := range entries {
		_, err := tx.Exec(ctx, `
INSERT INTO application_stages (application_id, name, status, date, feedback, sort_order)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (application_id, name) DO UPDATE SET
	status = EXCLUDED.status,
	date = COALESCE(EXCLUDED.date, application_stages.date),
	feedback = COALESCE(EXCLUDED.feedback, application_stages.feedback)
`, id, string(e.Stage), string(e.Status), e.Date, e.Feedback, e.Stage.Order())
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *ApplicationRepository) SetStatus(ctx context.Context, id int64, status string) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE applications SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return application.ErrNotFound
	}
	return nil
}

func (r *ApplicationRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM applications WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return application.ErrNotFound
	}
	return nil
}

func (r *ApplicationRepository) Totals(ctx context.Context) (users, jobs, applications int, err error) {
	err = r.pool.QueryRow(ctx, `
SELECT (SELECT COUNT(*) FROM users), (SELECT COUNT(*) FROM jobs), (SELECT COUNT(*) FROM applications)
`).Scan(&users, &jobs, &applications)
	return
}

func (r *ApplicationRepository) CountByStatus(ctx context.Context) (map[string]int, error) {
	rows, err := r.pool.Query(ctx, `SELECT status, COUNT(*) FROM applications GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := map[string]int{}
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		out[status] = n
	}
	return out, rows.Err()
}

func (r *ApplicationRepository) CountPerJob(ctx context.Context) ([]application.JobCount, error) {
	rows, err := r.pool.Query(ctx, `
SELECT j.id, j.title_job, COUNT(a.id)
FROM jobs j
LEFT JOIN applications a ON a.job_id = j.id
GROUP BY j.id
ORDER BY j.id
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []application.JobCount{}
	for rows.Next() {
		var jc application.JobCount
		if err := rows.Scan(&jc.JobID, &jc.Title, &jc.Applications); err != nil {
			return nil, err
		}
		out = append(out, jc)
	}
	return out, rows.Err()
}

func (r *ApplicationRepository) ResultCounts(ctx context.Context) (application.ResultCounts, error) {
	var rc application.ResultCounts
	err := r.pool.QueryRow(ctx, `
SELECT COUNT(*),
	COUNT(*) FILTER (WHERE res.status IN ('accepted', 'completed')),
	COUNT(*) FILTER (WHERE res.status = 'rejected'),
	COUNT(*) FILTER (WHERE pre.status = 'rejected')
FROM applications a
LEFT JOIN application_stages res ON res.application_id = a.id AND res.name = 'result'
LEFT JOIN application_stages pre ON pre.application_id = a.id AND pre.name = 'preselection'
`).Scan(&rc.Total, &rc.Accepted, &rc.RejectedTotal, &rc.RejectedPreselection)
	return rc, err
}

var _ application.Repository = (*ApplicationRepository)(nil)
