package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/artem13815/ats/pkg/job"
	"github.com/artem13815/ats/pkg/pipeline"
)

// UseCase — сценарии работы с заявками для администратора и кандидата.
type UseCase interface {
	ListAdmin(ctx context.Context) ([]pipeline.Application, error)
	ListForUser(ctx context.Context, userID int64) ([]pipeline.Application, error)
	// Apply returns the new id, or the existing one with created=false for a repeated application.
	Apply(ctx context.Context, userID, jobID int64, similarity *float64) (id int64, created bool, err error)
	UpdateStage(ctx context.Context, id int64, ch StageChange) error
	UpdateStatus(ctx context.Context, id int64, status string) error
	DeleteOwn(ctx context.Context, userID, id int64) error
	Summary(ctx context.Context) (Summary, error)
}

type service struct {
	repo              Repository
	jobs              job.Repository
	autoRejectPercent float64
	now               func() time.Time
}

func NewService(repo Repository, jobs job.Repository, autoRejectPercent float64) UseCase {
	return &service{
		repo:              repo,
		jobs:              jobs,
		autoRejectPercent: autoRejectPercent,
		now:               func() time.Time { return time.Now().UTC() },
	}
}

func (s *service) ListAdmin(ctx context.Context) ([]pipeline.Application, error) {
	return s.repo.ListAll(ctx)
}

func (s *service) ListForUser(ctx context.Context, userID int64) ([]pipeline.Application, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *service) Apply(ctx context.Context, userID, jobID int64, similarity *float64) (int64, bool, error) {
	if jobID <= 0 {
		return 0, false, ErrValidation("job_id is required")
	}
	if _, err := s.jobs.GetByID(ctx, jobID); err != nil {
		return 0, false, err
	}
	if id, err := s.repo.FindByUserAndJob(ctx, userID, jobID); err == nil {
		return id, false, nil
	} else if !errors.Is(err, ErrNotFound) {
		return 0, false, err
	}

	now := s.now()
	na := NewApplication{
		UserID:            userID,
		JobID:             jobID,
		Status:            string(pipeline.StatusInProgress),
		SimilarityPercent: similarity,
	}
	pre := pipeline.TimelineEntry{Stage: pipeline.StagePreselection, Status: pipeline.StatusPending}
	result := pipeline.TimelineEntry{Stage: pipeline.StageResult, Status: pipeline.StatusPending}
	if similarity != nil {
		pre.Date = &now
		pre.Status = pipeline.StatusCompleted
		if *similarity < s.autoRejectPercent {
			fb := AutoRejectionFeedback
			pre.Status = pipeline.StatusRejected
			pre.Feedback = &fb
			result = pipeline.TimelineEntry{Stage: pipeline.StageResult, Status: pipeline.StatusRejected, Date: &now, Feedback: &fb}
			na.Status = string(pipeline.StatusRejected)
		}
	}
	na.Timeline = []pipeline.TimelineEntry{
		{Stage: pipeline.StageApplication, Status: pipeline.StatusCompleted, Date: &now},
		pre,
		{Stage: pipeline.StageInterview, Status: pipeline.StatusPending},
		{Stage: pipeline.StageTest, Status: pipeline.StatusPending},
		result,
	}
	id, err := s.repo.Create(ctx, na)
	if errors.Is(err, ErrDuplicate) {
		// параллельный запрос успел создать заявку
		id, err = s.repo.FindByUserAndJob(ctx, userID, jobID)
		if err != nil {
			return 0, false, err
		}
		return id, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return id, true, nil
}

// UpdateStage upserts one stage. Terminal statuses get a date when none is known,
// a final result is copied into the raw status, and a rejected preselection also
// rejects the result.
func (s *service) UpdateStage(ctx context.Context, id int64, ch StageChange) error {
	stage, err := pipeline.ParseStage(strings.TrimSpace(ch.Name))
	if err != nil {
		return ErrValidation(err.Error())
	}
	status, err := pipeline.ParseStageStatus(strings.TrimSpace(ch.Status))
	if err != nil {
		return ErrValidation(err.Error())
	}
	app, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}

	now := s.now()
	entry := pipeline.TimelineEntry{Stage: stage, Status: status, Date: ch.Date, Feedback: ch.Feedback}
	existing, _ := pipeline.Entry(app, stage)
	if entry.Date == nil && status.Terminal() && existing.Date == nil {
		entry.Date = &now
	}
	entries := []pipeline.TimelineEntry{entry}

	var raw *string
	if stage == pipeline.StageResult && (status == pipeline.StatusAccepted || status == pipeline.StatusRejected) {
		v := string(status)
		raw = &v
	}
	if stage == pipeline.StagePreselection && status == pipeline.StatusRejected {
		res, _ := pipeline.Entry(app, pipeline.StageResult)
		cascade := pipeline.TimelineEntry{Stage: pipeline.StageResult, Status: pipeline.StatusRejected}
		if res.Date == nil {
			d := now
			if entry.Date != nil {
				d = *entry.Date
			} else if existing.Date != nil {
				d = *existing.Date
			}
			cascade.Date = &d
		}
		if res.Feedback == nil || *res.Feedback == "" {
			fb := AutoRejectionFeedback
			if ch.Feedback != nil && *ch.Feedback != "" {
				fb = *ch.Feedback
			}
			cascade.Feedback = &fb
		}
		entries = append(entries, cascade)
		v := string(pipeline.StatusRejected)
		raw = &v
	}
	return s.repo.ApplyStages(ctx, id, entries, raw)
}

func (s *service) UpdateStatus(ctx context.Context, id int64, status string) error {
	status = strings.TrimSpace(status)
	if status == "" {
		return ErrValidation("status is required")
	}
	return s.repo.SetStatus(ctx, id, status)
}

func (s *service) DeleteOwn(ctx context.Context, userID, id int64) error {
	app, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if app.User == nil || app.User.ID == nil || *app.User.ID != userID {
		return ErrForbidden
	}
	return s.repo.Delete(ctx, id)
}

var summaryStatuses = []string{"pending", "in_progress", "scheduled", "completed", "rejected", "accepted"}

func (s *service) Summary(ctx context.Context) (Summary, error) {
	var out Summary
	users, jobs, apps, err := s.repo.Totals(ctx)
	if err != nil {
		return Summary{}, err
	}
	out.Totals.Users, out.Totals.Jobs, out.Totals.Applications = users, jobs, apps

	counts, err := s.repo.CountByStatus(ctx)
	if err != nil {
		return Summary{}, err
	}
	out.ByStatus = make(map[string]int, len(summaryStatuses))
	for _, st := range summaryStatuses {
		out.ByStatus[st] = counts[st]
	}

	if out.PerJob, err = s.repo.CountPerJob(ctx); err != nil {
		return Summary{}, err
	}
	rc, err := s.repo.ResultCounts(ctx)
	if err != nil {
		return Summary{}, err
	}
	out.ResultBreakdown = breakdown(rc)
	return out, nil
}

func breakdown(rc ResultCounts) ResultBreakdown {
	return ResultBreakdown{
		Accepted:             rc.Accepted,
		RejectedPreselection: rc.RejectedPreselection,
		RejectedProcess:      max(0, rc.RejectedTotal-rc.RejectedPreselection),
		Pending:              max(0, rc.Total-rc.Accepted-rc.RejectedTotal),
	}
}
