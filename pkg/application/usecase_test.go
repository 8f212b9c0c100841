package application

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/ats/pkg/job"
	"github.com/artem13815/ats/pkg/pipeline"
	"github.com/artem13815/ats/pkg/preselection"
)

type memRepo struct {
	mu     sync.Mutex
	nextID int64
	apps   map[int64]*pipeline.Application
	jobOf  map[int64]int64

	// beforeCreate runs under the lock, simulating a request that inserted first.
	beforeCreate func(r *memRepo)
}

func newMemRepo() *memRepo {
	return &memRepo{apps: map[int64]*pipeline.Application{}, jobOf: map[int64]int64{}}
}

func (r *memRepo) sorted() []pipeline.Application {
	out := make([]pipeline.Application, 0, len(r.apps))
	for _, a := range r.apps {
		cp := *a
		cp.Timeline = append([]pipeline.TimelineEntry(nil), a.Timeline...)
		out = append(out, cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *memRepo) ListAll(ctx context.Context) ([]pipeline.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sorted(), nil
}

func (r *memRepo) ListByUser(ctx context.Context, userID int64) ([]pipeline.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []pipeline.Application
	for _, a := range r.sorted() {
		if a.User != nil && a.User.ID != nil && *a.User.ID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *memRepo) Get(ctx context.Context, id int64) (pipeline.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.apps[id]
	if !ok {
		return pipeline.Application{}, ErrNotFound
	}
	cp := *a
	cp.Timeline = append([]pipeline.TimelineEntry(nil), a.Timeline...)
	return cp, nil
}

func (r *memRepo) FindByUserAndJob(ctx context.Context, userID, jobID int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.find(userID, jobID)
}

func (r *memRepo) find(userID, jobID int64) (int64, error) {
	for id, a := range r.apps {
		if *a.User.ID == userID && r.jobOf[id] == jobID {
			return id, nil
		}
	}
	return 0, ErrNotFound
}

func (r *memRepo) Create(ctx context.Context, na NewApplication) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.beforeCreate != nil {
		r.beforeCreate(r)
	}
	if _, err := r.find(na.UserID, na.JobID); err == nil {
		return 0, ErrDuplicate
	}
	r.nextID++
	uid := na.UserID
	r.apps[r.nextID] = &pipeline.Application{
		ID:                r.nextID,
		User:              &pipeline.User{ID: &uid},
		Job:               &pipeline.JobRef{ID: na.JobID},
		Status:            na.Status,
		SimilarityPercent: na.SimilarityPercent,
		Timeline:          append([]pipeline.TimelineEntry(nil), na.Timeline...),
	}
	r.jobOf[r.nextID] = na.JobID
	return r.nextID, nil
}

func (r *memRepo) ApplyStages(ctx context.Context, id int64, entries []pipeline.TimelineEntry, status *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.apps[id]
	if !ok {
		return ErrNotFound
	}
	for _, e := range entries {
		found := false
		for i := range a.Timeline {
			if a.Timeline[i].Stage != e.Stage {
				continue
			}
			found = true
			a.Timeline[i].Status = e.Status
			if e.Date != nil {
				a.Timeline[i].Date = e.Date
			}
			if e.Feedback != nil {
				a.Timeline[i].Feedback = e.Feedback
			}
			break
		}
		if !found {
			a.Timeline = append(a.Timeline, e)
		}
	}
	if status != nil {
		a.Status = *status
	}
	return nil
}

func (r *memRepo) SetStatus(ctx context.Context, id int64, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.apps[id]
	if !ok {
		return ErrNotFound
	}
	a.Status = status
	return nil
}

func (r *memRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.apps[id]; !ok {
		return ErrNotFound
	}
	delete(r.apps, id)
	return nil
}

func (r *memRepo) Totals(ctx context.Context) (int, int, int, error) {
	return 2, 1, len(r.apps), nil
}

func (r *memRepo) CountByStatus(ctx context.Context) (map[string]int, error) {
	out := map[string]int{}
	for _, a := range r.apps {
		out[a.Status]++
	}
	return out, nil
}

func (r *memRepo) CountPerJob(ctx context.Context) ([]JobCount, error) {
	return []JobCount{{JobID: 1, Title: "Frontend Dev", Applications: len(r.apps)}}, nil
}

func (r *memRepo) ResultCounts(ctx context.Context) (ResultCounts, error) {
	var rc ResultCounts
	for _, a := range r.apps {
		rc.Total++
		switch pipeline.DeriveStageStatus(*a, pipeline.StageResult) {
		case pipeline.StatusAccepted, pipeline.StatusCompleted:
			rc.Accepted++
		case pipeline.StatusRejected:
			rc.RejectedTotal++
		}
		if pipeline.DeriveStageStatus(*a, pipeline.StagePreselection) == pipeline.StatusRejected {
			rc.RejectedPreselection++
		}
	}
	return rc, nil
}

type memJobs struct{ ids map[int64]bool }

func (m memJobs) Create(ctx context.Context, j job.Job) (int64, error) { return 0, nil }
func (m memJobs) GetByID(ctx context.Context, id int64) (job.Job, error) {
	if !m.ids[id] {
		return job.Job{}, job.ErrNotFound
	}
	return job.Job{ID: id, Title: "Frontend Dev"}, nil
}
func (m memJobs) List(ctx context.Context, limit, offset int) ([]job.Job, error) { return nil, nil }
func (m memJobs) Update(ctx context.Context, id int64, p job.Patch) error        { return nil }
func (m memJobs) Delete(ctx context.Context, id int64) error                     { return nil }

var fixedNow = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func newTestService(repo *memRepo) *service {
	svc := NewService(repo, memJobs{ids: map[int64]bool{1: true}}, 80).(*service)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func f64(v float64) *float64 { return &v }
func str(s string) *string   { return &s }

func TestApplyBuildsTimeline(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	id, created, err := svc.Apply(ctx, 10, 1, nil)
	require.NoError(t, err)
	require.True(t, created)

	a, err := repo.Get(ctx, id)
	require.NoError(t, err)
	require.Len(t, a.Timeline, 5)
	for i, st := range pipeline.Stages {
		assert.Equal(t, st, a.Timeline[i].Stage)
	}
	assert.Equal(t, pipeline.StatusCompleted, a.Timeline[0].Status)
	assert.Equal(t, pipeline.StatusPending, a.Timeline[1].Status)
	assert.Equal(t, "in_progress", a.Status)
	assert.Equal(t, pipeline.GeneralInProcess, pipeline.DeriveGeneralStatus(a))

	again, created, err := svc.Apply(ctx, 10, 1, nil)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, id, again)
}

func TestApplyAutoRejectsLowSimilarity(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	low, _, err := svc.Apply(ctx, 10, 1, f64(42.5))
	require.NoError(t, err)
	a, _ := repo.Get(ctx, low)
	assert.Equal(t, pipeline.StatusRejected, pipeline.DeriveStageStatus(a, pipeline.StagePreselection))
	assert.Equal(t, pipeline.StatusRejected, pipeline.DeriveStageStatus(a, pipeline.StageResult))
	assert.Equal(t, "rejected", a.Status)
	assert.Equal(t, pipeline.GeneralDiscarded, pipeline.DeriveGeneralStatus(a))

	high, _, err := svc.Apply(ctx, 11, 1, f64(91))
	require.NoError(t, err)
	b, _ := repo.Get(ctx, high)
	assert.Equal(t, pipeline.StatusCompleted, pipeline.DeriveStageStatus(b, pipeline.StagePreselection))
	assert.Equal(t, pipeline.StatusPending, pipeline.DeriveStageStatus(b, pipeline.StageResult))
}

func TestApplyConcurrentDuplicate(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(repo)
	repo.beforeCreate = func(r *memRepo) {
		r.beforeCreate = nil
		r.nextID++
		uid := int64(10)
		r.apps[r.nextID] = &pipeline.Application{ID: r.nextID, User: &pipeline.User{ID: &uid}, Status: "in_progress"}
		r.jobOf[r.nextID] = 1
	}

	id, created, err := svc.Apply(context.Background(), 10, 1, nil)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, int64(1), id)
	all, _ := repo.ListAll(context.Background())
	assert.Len(t, all, 1)
}

func TestApplyUnknownJob(t *testing.T) {
	svc := newTestService(newMemRepo())
	_, _, err := svc.Apply(context.Background(), 10, 99, nil)
	assert.ErrorIs(t, err, job.ErrNotFound)

	_, _, err = svc.Apply(context.Background(), 10, 0, nil)
	var verr ErrValidation
	assert.ErrorAs(t, err, &verr)
}

func TestUpdateStage(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(repo)
	ctx := context.Background()
	id, _, err := svc.Apply(ctx, 10, 1, nil)
	require.NoError(t, err)

	require.NoError(t, svc.UpdateStage(ctx, id, StageChange{Name: "interview", Status: "scheduled"}))
	a, _ := repo.Get(ctx, id)
	e, _ := pipeline.Entry(a, pipeline.StageInterview)
	assert.Equal(t, pipeline.StatusScheduled, e.Status)
	assert.Nil(t, e.Date, "non terminal status is not dated")

	require.NoError(t, svc.UpdateStage(ctx, id, StageChange{Name: "result", Status: "accepted", Feedback: str("welcome")}))
	a, _ = repo.Get(ctx, id)
	e, _ = pipeline.Entry(a, pipeline.StageResult)
	require.NotNil(t, e.Date)
	assert.Equal(t, fixedNow, *e.Date)
	assert.Equal(t, "welcome", *e.Feedback)
	assert.Equal(t, "accepted", a.Status)
	assert.Equal(t, pipeline.GeneralFinished, pipeline.DeriveGeneralStatus(a))
}

func TestUpdateStagePreselectionRejectCascades(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(repo)
	ctx := context.Background()
	id, _, _ := svc.Apply(ctx, 10, 1, nil)

	require.NoError(t, svc.UpdateStage(ctx, id, StageChange{Name: "preselection", Status: "rejected"}))
	a, _ := repo.Get(ctx, id)
	res, _ := pipeline.Entry(a, pipeline.StageResult)
	assert.Equal(t, pipeline.StatusRejected, res.Status)
	require.NotNil(t, res.Feedback)
	assert.Equal(t, AutoRejectionFeedback, *res.Feedback)
	assert.Equal(t, "rejected", a.Status)
}

func TestUpdateStageValidation(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(repo)
	ctx := context.Background()
	id, _, _ := svc.Apply(ctx, 10, 1, nil)

	var verr ErrValidation
	assert.ErrorAs(t, svc.UpdateStage(ctx, id, StageChange{Name: "onboarding", Status: "pending"}), &verr)
	assert.ErrorAs(t, svc.UpdateStage(ctx, id, StageChange{Name: "test", Status: "done"}), &verr)
	assert.ErrorIs(t, svc.UpdateStage(ctx, 999, StageChange{Name: "test", Status: "pending"}), ErrNotFound)
}

func TestDeleteOwn(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(repo)
	ctx := context.Background()
	id, _, _ := svc.Apply(ctx, 10, 1, nil)

	assert.ErrorIs(t, svc.DeleteOwn(ctx, 11, id), ErrForbidden)
	require.NoError(t, svc.DeleteOwn(ctx, 10, id))
	assert.ErrorIs(t, svc.DeleteOwn(ctx, 10, id), ErrNotFound)
}

func TestSummary(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(repo)
	ctx := context.Background()
	a, _, _ := svc.Apply(ctx, 10, 1, nil)
	_, _, _ = svc.Apply(ctx, 11, 1, f64(10))
	_, _, _ = svc.Apply(ctx, 12, 1, nil)
	require.NoError(t, svc.UpdateStage(ctx, a, StageChange{Name: "result", Status: "accepted"}))

	sum, err := svc.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, sum.Totals.Applications)
	assert.Equal(t, 1, sum.ByStatus["accepted"])
	assert.Equal(t, 1, sum.ByStatus["rejected"])
	assert.Equal(t, 0, sum.ByStatus["scheduled"])
	assert.Equal(t, ResultBreakdown{Accepted: 1, RejectedPreselection: 1, RejectedProcess: 0, Pending: 1}, sum.ResultBreakdown)
}

func TestLocalAPIDrivesEngine(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(repo)
	ctx := context.Background()
	for uid := int64(1); uid <= 3; uid++ {
		_, _, err := svc.Apply(ctx, uid, 1, nil)
		require.NoError(t, err)
	}

	s := preselection.NewSession(NewLocalAPI(svc), nil)
	require.NoError(t, s.Store.Load(ctx))
	s.Selection.Toggle(2)
	require.NoError(t, s.Coordinator().DiscardSelected(ctx))

	a, _ := repo.Get(ctx, 2)
	assert.Equal(t, pipeline.GeneralDiscarded, pipeline.DeriveGeneralStatus(a))
	assert.Equal(t, "rejected", a.Status)

	c := preselection.DefaultCriteria()
	c.GeneralStatus = string(pipeline.GeneralDiscarded)
	require.NoError(t, s.SetCriteria(c))
	v := s.View()
	require.Len(t, v.Items, 1)
	assert.Equal(t, int64(2), v.Items[0].ID)
}
