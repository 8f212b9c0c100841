package preselection

import (
	"context"
	"errors"
	"time"

	"github.com/artem13815/ats/pkg/pipeline"
)

// API — порт к серверу заявок. Реализуется HTTP-клиентом (adminapi)
// или напрямую сервисом заявок (application.LocalAPI).
type API interface {
	ListApplications(ctx context.Context) ([]pipeline.Application, error)
	UpdateStage(ctx context.Context, applicationID int64, upd StageUpdate) error
}

// StageUpdate это тело запроса на изменение этапа.
type StageUpdate struct {
	Stage    pipeline.Stage       `json:"name"`
	Status   pipeline.StageStatus `json:"status"`
	Date     *time.Time           `json:"date,omitempty"`
	Feedback *string              `json:"feedback,omitempty"`
}

var (
	ErrLoadFailed       = errors.New("no se pudieron cargar las aplicaciones")
	ErrUpdateFailed     = errors.New("no se pudieron guardar los cambios")
	ErrBulkActionFailed = errors.New("no se pudo aplicar el cambio masivo")
	ErrInvalidPageSize  = errors.New("invalid page size")
	ErrInvalidCriteria  = errors.New("invalid filter criteria")
)
