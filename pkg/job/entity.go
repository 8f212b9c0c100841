package job

import (
	"context"
	"errors"
	"time"
)

// Job описывает вакансию. IdealProfile используется внешним сервисом сравнения резюме.
type Job struct {
	ID           int64      `json:"id"`
	Title        string     `json:"title_job"`
	Description  string     `json:"description"`
	IdealProfile *string    `json:"perfil_ideal"`
	PostedDate   *time.Time `json:"posted_date"`
	CreatedAt    time.Time  `json:"created_at"`
}

// Patch описывает частичное обновление, nil означает "не менять".
type Patch struct {
	Title        *string
	Description  *string
	IdealProfile *string
	PostedDate   *time.Time
	ClearPosted  bool
}

var ErrNotFound = errors.New("job not found")

// Repository — порт для работы с вакансиями.
type Repository interface {
	Create(ctx context.Context, j Job) (int64, error)
	GetByID(ctx context.Context, id int64) (Job, error)
	List(ctx context.Context, limit, offset int) ([]Job, error)
	Update(ctx context.Context, id int64, p Patch) error
	Delete(ctx context.Context, id int64) error
}
