package preselection

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/artem13815/ats/pkg/pipeline"
)

// Coordinator применяет изменения этапов к выбранным заявкам.
// Requests go out one at a time in ascending id order. A failure stops the loop,
// nothing that already succeeded is rolled back.
type Coordinator struct {
	api   API
	store *Store
	sel   *Selection
	log   *zap.Logger
}

func NewCoordinator(api API, store *Store, sel *Selection, log *zap.Logger) *Coordinator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Coordinator{api: api, store: store, sel: sel, log: log}
}

// ApplyBulkStageChange sets stage to status on every selected application.
func (c *Coordinator) ApplyBulkStageChange(ctx context.Context, stage pipeline.Stage, status pipeline.StageStatus) error {
	if !stage.Valid() || !status.Valid() {
		return fmt.Errorf("%w: %s=%s", ErrInvalidCriteria, stage, status)
	}
	return c.bulk(ctx, "stage_change", func(id int64) []StageUpdate {
		return []StageUpdate{{Stage: stage, Status: status}}
	})
}

// DiscardSelected rejects preselection and then result for each selected application
// before moving to the next one.
func (c *Coordinator) DiscardSelected(ctx context.Context) error {
	return c.bulk(ctx, "discard", func(id int64) []StageUpdate {
		return []StageUpdate{
			{Stage: pipeline.StagePreselection, Status: pipeline.StatusRejected},
			{Stage: pipeline.StageResult, Status: pipeline.StatusRejected},
		}
	})
}

func (c *Coordinator) bulk(ctx context.Context, kind string, updates func(id int64) []StageUpdate) error {
	ids := c.sel.IDs()
	if len(ids) == 0 {
		return nil
	}
	log := c.log.With(zap.String("op", uuid.NewString()), zap.String("kind", kind), zap.Int("selected", len(ids)))
	log.Info("bulk action started")

	var runErr error
	done := 0
loop:
	for _, id := range ids {
		for _, upd := range updates(id) {
			if err := c.api.UpdateStage(ctx, id, upd); err != nil {
				runErr = fmt.Errorf("application %d %s=%s: %w", id, upd.Stage, upd.Status, err)
				break loop
			}
		}
		done++
	}

	// Reload and clear happen even after a partial failure.
	c.reload(ctx, log)
	c.sel.Clear()

	if runErr != nil {
		log.Error("bulk action failed", zap.Int("done", done), zap.Error(runErr))
		return fmt.Errorf("%w: %v", ErrBulkActionFailed, runErr)
	}
	log.Info("bulk action finished", zap.Int("done", done))
	return nil
}

// reload refreshes the snapshot after writes that already went through.
// A failed load stays on the store as the dismissible banner, the writes are not reported as failed.
func (c *Coordinator) reload(ctx context.Context, log *zap.Logger) {
	if err := c.store.Load(ctx); err != nil {
		log.Warn("reload after update failed", zap.Error(err))
	}
}

// SaveObservation updates the feedback of one stage, re-sending its current status.
func (c *Coordinator) SaveObservation(ctx context.Context, app pipeline.Application, stage pipeline.Stage, text string) error {
	if !stage.Valid() {
		return fmt.Errorf("%w: stage %q", ErrInvalidCriteria, stage)
	}
	upd := StageUpdate{
		Stage:    stage,
		Status:   pipeline.DeriveStageStatus(app, stage),
		Feedback: &text,
	}
	if err := c.api.UpdateStage(ctx, app.ID, upd); err != nil {
		c.log.Warn("save observation failed", zap.Int64("application", app.ID), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrUpdateFailed, err)
	}
	c.reload(ctx, c.log.With(zap.Int64("application", app.ID)))
	return nil
}

// SaveStages writes the edited statuses of one application in pipeline order.
// The first failure aborts without reloading.
func (c *Coordinator) SaveStages(ctx context.Context, app pipeline.Application, statuses map[pipeline.Stage]pipeline.StageStatus) error {
	for stage, status := range statuses {
		if !stage.Valid() || !status.Valid() {
			return fmt.Errorf("%w: %s=%s", ErrInvalidCriteria, stage, status)
		}
	}
	for _, stage := range pipeline.Stages {
		status, ok := statuses[stage]
		if !ok {
			continue
		}
		if err := c.api.UpdateStage(ctx, app.ID, StageUpdate{Stage: stage, Status: status}); err != nil {
			c.log.Warn("save stages failed", zap.Int64("application", app.ID), zap.String("stage", string(stage)), zap.Error(err))
			return fmt.Errorf("%w: %v", ErrUpdateFailed, err)
		}
	}
	c.reload(ctx, c.log.With(zap.Int64("application", app.ID)))
	return nil
}
