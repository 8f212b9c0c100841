package job

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRepo struct {
	created []Job
	patches map[int64]Patch
}

func (s *stubRepo) Create(ctx context.Context, j Job) (int64, error) {
	s.created = append(s.created, j)
	return int64(len(s.created)), nil
}

func (s *stubRepo) GetByID(ctx context.Context, id int64) (Job, error) {
	if id <= 0 || int(id) > len(s.created) {
		return Job{}, ErrNotFound
	}
	j := s.created[id-1]
	j.ID = id
	return j, nil
}

func (s *stubRepo) List(ctx context.Context, limit, offset int) ([]Job, error) {
	return s.created, nil
}

func (s *stubRepo) Update(ctx context.Context, id int64, p Patch) error {
	if s.patches == nil {
		s.patches = map[int64]Patch{}
	}
	s.patches[id] = p
	return nil
}

func (s *stubRepo) Delete(ctx context.Context, id int64) error { return nil }

func TestCreateTrimsAndValidates(t *testing.T) {
	repo := &stubRepo{}
	uc := NewService(repo)

	j, err := uc.Create(context.Background(), Job{Title: "  Backend Go  ", Description: " APIs "})
	require.NoError(t, err)
	assert.Equal(t, int64(1), j.ID)
	assert.Equal(t, "Backend Go", repo.created[0].Title)
	assert.Equal(t, "APIs", repo.created[0].Description)

	_, err = uc.Create(context.Background(), Job{Title: "  ", Description: "x"})
	var verr ErrValidation
	assert.ErrorAs(t, err, &verr)
	assert.Len(t, repo.created, 1)
}

func TestUpdateRejectsBlankTitle(t *testing.T) {
	repo := &stubRepo{}
	uc := NewService(repo)

	blank := "   "
	err := uc.Update(context.Background(), 1, Patch{Title: &blank})
	var verr ErrValidation
	assert.ErrorAs(t, err, &verr)

	title := " Data Engineer "
	require.NoError(t, uc.Update(context.Background(), 1, Patch{Title: &title}))
	assert.Equal(t, "Data Engineer", *repo.patches[1].Title)
}

func TestGetByIDNotFound(t *testing.T) {
	uc := NewService(&stubRepo{})
	_, err := uc.GetByID(context.Background(), 5)
	assert.ErrorIs(t, err, ErrNotFound)
}
