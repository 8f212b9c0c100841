package job

import (
	"context"
	"strings"
)

// UseCase инкапсулирует сценарии работы с вакансиями.
type UseCase interface {
	Create(ctx context.Context, j Job) (Job, error)
	GetByID(ctx context.Context, id int64) (Job, error)
	List(ctx context.Context, limit, offset int) ([]Job, error)
	Update(ctx context.Context, id int64, p Patch) error
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) UseCase { return &service{repo: repo} }

func (s *service) Create(ctx context.Context, j Job) (Job, error) {
	j.Title = strings.TrimSpace(j.Title)
	j.Description = strings.TrimSpace(j.Description)
	if j.Title == "" || j.Description == "" {
		return Job{}, ErrValidation("title_job and description are required")
	}
	id, err := s.repo.Create(ctx, j)
	if err != nil {
		return Job{}, err
	}
	j.ID = id
	return j, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (Job, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, limit, offset int) ([]Job, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *service) Update(ctx context.Context, id int64, p Patch) error {
	if p.Title != nil {
		t := strings.TrimSpace(*p.Title)
		if t == "" {
			return ErrValidation("title_job cannot be empty")
		}
		p.Title = &t
	}
	return s.repo.Update(ctx, id, p)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// ErrValidation простая ошибка валидации.
type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }
