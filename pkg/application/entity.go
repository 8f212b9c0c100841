package application

import (
	"context"
	"errors"
	"time"

	"github.com/artem13815/ats/pkg/pipeline"
)

var (
	ErrNotFound  = errors.New("application not found")
	ErrForbidden = errors.New("application belongs to another user")
	// ErrDuplicate is returned by Repository.Create when the user already applied to the job.
	ErrDuplicate = errors.New("application already exists")
)

// ErrValidation простая ошибка валидации.
type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }

// AutoRejectionFeedback is written when preselection rejects a candidate without explicit feedback.
const AutoRejectionFeedback = "Tu currículum no cumple con los requisitos técnicos de la vacante."

// StageChange описывает запрос администратора на изменение этапа.
type StageChange struct {
	Name     string     `json:"name"`
	Status   string     `json:"status"`
	Date     *time.Time `json:"date,omitempty"`
	Feedback *string    `json:"feedback,omitempty"`
}

// NewApplication содержит данные для создания заявки вместе с таймлайном.
type NewApplication struct {
	UserID            int64
	JobID             int64
	Status            string
	SimilarityPercent *float64
	Timeline          []pipeline.TimelineEntry
}

// Summary собирает агрегированные метрики для панели администратора.
type Summary struct {
	Totals struct {
		Users        int `json:"users"`
		Jobs         int `json:"jobs"`
		Applications int `json:"applications"`
	} `json:"totals"`
	ByStatus        map[string]int  `json:"applications_by_status"`
	PerJob          []JobCount      `json:"applications_per_job"`
	ResultBreakdown ResultBreakdown `json:"result_breakdown"`
}

type JobCount struct {
	JobID        int64  `json:"job_id"`
	Title        string `json:"title_job"`
	Applications int    `json:"applications"`
}

type ResultBreakdown struct {
	Accepted             int `json:"accepted"`
	RejectedProcess      int `json:"rejected_process"`
	RejectedPreselection int `json:"rejected_preselection"`
	Pending              int `json:"pending"`
}

// ResultCounts are the raw counters the breakdown is computed from.
type ResultCounts struct {
	Total                int
	Accepted             int
	RejectedTotal        int
	RejectedPreselection int
}

// Repository — порт хранения заявок.
type Repository interface {
	ListAll(ctx context.Context) ([]pipeline.Application, error)
	ListByUser(ctx context.Context, userID int64) ([]pipeline.Application, error)
	Get(ctx context.Context, id int64) (pipeline.Application, error)
	FindByUserAndJob(ctx context.Context, userID, jobID int64) (int64, error)
	Create(ctx context.Context, a NewApplication) (int64, error)
	// ApplyStages upserts entries and optionally the raw status in one transaction.
	// Nil Date or Feedback keep the stored value.
	ApplyStages(ctx context.Context, id int64, entries []pipeline.TimelineEntry, status *string) error
	SetStatus(ctx context.Context, id int64, status string) error
	Delete(ctx context.Context, id int64) error
	Totals(ctx context.Context) (users, jobs, applications int, err error)
	CountByStatus(ctx context.Context) (map[string]int, error)
	CountPerJob(ctx context.Context) ([]JobCount, error)
	ResultCounts(ctx context.Context) (ResultCounts, error)
}

// Candidate хранит профиль кандидата из токена. Используется для отображения имени и почты.
type Candidate struct {
	ID    int64
	Name  string
	Email string
}

// CandidateRepository сохраняет профиль кандидата.
type CandidateRepository interface {
	Upsert(ctx context.Context, c Candidate) error
}
