package postgres

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/ats/pkg/application"
)

// CandidateRepository implements application.CandidateRepository backed by PostgreSQL (pgx).
type CandidateRepository struct {
	pool *pgxpool.Pool
}

func NewCandidateRepository(pool *pgxpool.Pool) *CandidateRepository {
	return &CandidateRepository{pool: pool}
}

// Upsert keeps the stored name or email when the new value is empty.
func (r *CandidateRepository) Upsert(ctx context.Context, c application.Candidate) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO users (id, name, email)
		VALUES ($1, NULLIF($2, ''), NULLIF($3, ''))
		ON CONFLICT (id) DO UPDATE SET
			name = COALESCE(EXCLUDED.name, users.name),
			email = COALESCE(EXCLUDED.email, users.email)
	`, c.ID, strings.TrimSpace(c.Name), strings.ToLower(strings.TrimSpace(c.Email)))
	return err
}

var _ application.CandidateRepository = (*CandidateRepository)(nil)
