package application

import (
	"context"

	"github.com/artem13815/ats/pkg/pipeline"
	"github.com/artem13815/ats/pkg/preselection"
)

// LocalAPI lets the preselection engine run in-process on top of the use case.
type LocalAPI struct {
	uc UseCase
}

func NewLocalAPI(uc UseCase) *LocalAPI { return &LocalAPI{uc: uc} }

func (l *LocalAPI) ListApplications(ctx context.Context) ([]pipeline.Application, error) {
	return l.uc.ListAdmin(ctx)
}

func (l *LocalAPI) UpdateStage(ctx context.Context, id int64, upd preselection.StageUpdate) error {
	return l.uc.UpdateStage(ctx, id, StageChange{
		Name:     string(upd.Stage),
		Status:   string(upd.Status),
		Date:     upd.Date,
		Feedback: upd.Feedback,
	})
}

var _ preselection.API = (*LocalAPI)(nil)
