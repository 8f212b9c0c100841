package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/artem13815/ats/api/http/presenter"
	"github.com/artem13815/ats/pkg/pipeline"
	"github.com/artem13815/ats/pkg/preselection"
)

// PreselectionHandler — экран предварительного отбора поверх движка preselection.
// Each request builds a session from a fresh snapshot; filters, page and selection travel with the request.
type PreselectionHandler struct {
	api preselection.API
	log *zap.Logger
}

func NewPreselectionHandler(api preselection.API, log *zap.Logger) *PreselectionHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &PreselectionHandler{api: api, log: log}
}

func (h *PreselectionHandler) session(ctx context.Context) (*preselection.Session, error) {
	s := preselection.NewSession(h.api, h.log)
	if err := s.Store.Load(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// criteriaFromQuery reads general, job, stage.<name> and order.
func criteriaFromQuery(c *fiber.Ctx) preselection.Criteria {
	cr := preselection.DefaultCriteria()
	if v := strings.TrimSpace(c.Query("general")); v != "" {
		cr.GeneralStatus = v
	}
	if v := strings.TrimSpace(c.Query("job")); v != "" {
		cr.JobTitle = v
	}
	for _, st := range pipeline.Stages {
		if v := strings.TrimSpace(c.Query("stage." + string(st))); v != "" {
			cr.StageStatuses[st] = v
		}
	}
	if v := strings.TrimSpace(c.Query("order")); v != "" {
		cr.SimilarityOrder = preselection.SimilarityOrder(v)
	}
	return cr
}

func parseIDList(v string) ([]int64, error) {
	var out []int64
	for _, part := range strings.Split(v, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("невалидный id %q", part)
		}
		out = append(out, id)
	}
	return out, nil
}

// selectIDs replaces the session selection with the given ids.
func selectIDs(s *preselection.Session, ids []int64) {
	s.Selection.Clear()
	for _, id := range ids {
		if !s.Selection.Has(id) {
			s.Selection.Toggle(id)
		}
	}
}

// @Summary Экран предварительного отбора
// @Description Поиск, фильтры, сортировка по совпадению и пагинация по текущему снимку заявок.
// @Tags    Предотбор
// @Produce json
// @Param   q        query string false "Поиск по имени, email или вакансии"
// @Param   general  query string false "Общий статус (En Proceso, Finalizado, Descartado, Todos)"
// @Param   job      query string false "Название вакансии"
// @Param   order    query string false "Сортировка по совпадению: none, best, worst"
// @Param   page     query int    false "Страница (с 1)"
// @Param   pageSize query int    false "Размер страницы: 10, 25, 50"
// @Param   selected query string false "Выбранные id через запятую"
// @Security BearerAuth
// @Success 200 {object} preselection.View
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 502 {object} presenter.ErrorResponse
// @Router  /admin/preselection [get]
func (h *PreselectionHandler) View(c *fiber.Ctx) error {
	s, err := h.session(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}
	s.SetQuery(c.Query("q"))
	if err := s.SetCriteria(criteriaFromQuery(c)); err != nil {
		return h.fail(c, err)
	}
	if v := c.Query("pageSize"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return h.fail(c, preselection.ErrInvalidPageSize)
		}
		if err := s.SetPageSize(n); err != nil {
			return h.fail(c, err)
		}
	}
	if v := c.Query("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return presenter.Error(c, http.StatusBadRequest, "невалидный номер страницы")
		}
		s.GoTo(n)
	}
	selected, err := parseIDList(c.Query("selected"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	selectIDs(s, selected)
	return presenter.JSON(c, http.StatusOK, s.View())
}

type bulkRequest struct {
	IDs    []int64 `json:"ids"`
	Stage  string  `json:"stage"`
	Status string  `json:"status"`
}

// @Summary Массовое изменение этапа
// @Tags    Предотбор
// @Accept  json
// @Produce json
// @Param   input body bulkRequest true "Выбранные заявки, этап и статус"
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 429 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /admin/preselection/bulk/stage [post]
func (h *PreselectionHandler) BulkStage(c *fiber.Ctx) error {
	var req bulkRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный JSON")
	}
	stage, err := pipeline.ParseStage(req.Stage)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	status, err := pipeline.ParseStageStatus(req.Status)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	return h.bulk(c, req.IDs, func(ctx context.Context, coord *preselection.Coordinator) error {
		return coord.ApplyBulkStageChange(ctx, stage, status)
	})
}

// @Summary Массовый отказ
// @Description Для каждой заявки отклоняет предотбор и результат.
// @Tags    Предотбор
// @Accept  json
// @Produce json
// @Param   input body bulkRequest true "Выбранные заявки (stage и status игнорируются)"
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 429 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /admin/preselection/bulk/discard [post]
func (h *PreselectionHandler) BulkDiscard(c *fiber.Ctx) error {
	var req bulkRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный JSON")
	}
	return h.bulk(c, req.IDs, func(ctx context.Context, coord *preselection.Coordinator) error {
		return coord.DiscardSelected(ctx)
	})
}

func (h *PreselectionHandler) bulk(c *fiber.Ctx, ids []int64, run func(context.Context, *preselection.Coordinator) error) error {
	if len(ids) == 0 {
		return presenter.Error(c, http.StatusBadRequest, "не выбрано ни одной заявки")
	}
	s, err := h.session(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}
	selectIDs(s, ids)
	if stale := s.StaleSelection(); len(stale) > 0 {
		return presenter.Error(c, http.StatusNotFound, fmt.Sprintf("заявки не найдены: %v", stale))
	}
	count := s.Selection.Len()
	if err := run(c.UserContext(), s.Coordinator()); err != nil {
		return h.fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"updated": count})
}

type observationRequest struct {
	Stage    string `json:"stage"`
	Feedback string `json:"feedback"`
}

// @Summary Сохранить наблюдение по этапу
// @Tags    Предотбор
// @Accept  json
// @Param   id path int true "ID заявки"
// @Param   input body observationRequest true "Этап и текст"
// @Security BearerAuth
// @Success 204 {object} nil
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /admin/applications/{id}/observation [post]
func (h *PreselectionHandler) Observation(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badID(c)
	}
	var req observationRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный JSON")
	}
	stage, err := pipeline.ParseStage(req.Stage)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	s, err := h.session(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}
	app, ok := s.Store.Get(id)
	if !ok {
		return presenter.Error(c, http.StatusNotFound, "заявка не найдена")
	}
	if err := s.Coordinator().SaveObservation(c.UserContext(), app, stage, req.Feedback); err != nil {
		return h.fail(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

type stagesRequest struct {
	Stages map[string]string `json:"stages"`
}

// @Summary Сохранить статусы этапов заявки
// @Description Статусы записываются в порядке этапов; первая ошибка прерывает сохранение.
// @Tags    Предотбор
// @Accept  json
// @Param   id path int true "ID заявки"
// @Param   input body stagesRequest true "Этап -> статус"
// @Security BearerAuth
// @Success 204 {object} nil
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /admin/applications/{id}/stages [put]
func (h *PreselectionHandler) SaveStages(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badID(c)
	}
	var req stagesRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный JSON")
	}
	statuses := make(map[pipeline.Stage]pipeline.StageStatus, len(req.Stages))
	for name, value := range req.Stages {
		stage, err := pipeline.ParseStage(name)
		if err != nil {
			return presenter.Error(c, http.StatusBadRequest, err.Error())
		}
		status, err := pipeline.ParseStageStatus(value)
		if err != nil {
			return presenter.Error(c, http.StatusBadRequest, err.Error())
		}
		statuses[stage] = status
	}
	s, err := h.session(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}
	app, ok := s.Store.Get(id)
	if !ok {
		return presenter.Error(c, http.StatusNotFound, "заявка не найдена")
	}
	if err := s.Coordinator().SaveStages(c.UserContext(), app, statuses); err != nil {
		return h.fail(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

func (h *PreselectionHandler) fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, preselection.ErrInvalidCriteria), errors.Is(err, preselection.ErrInvalidPageSize):
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, preselection.ErrLoadFailed):
		h.log.Error("preselection snapshot failed", zap.Error(err))
		return presenter.Error(c, http.StatusBadGateway, preselection.ErrLoadFailed.Error())
	case errors.Is(err, preselection.ErrBulkActionFailed), errors.Is(err, preselection.ErrUpdateFailed):
		h.log.Error("preselection update failed", zap.String("path", c.Path()), zap.Error(err))
		return presenter.Error(c, http.StatusInternalServerError, err.Error())
	}
	h.log.Error("preselection request failed", zap.String("path", c.Path()), zap.Error(err))
	return presenter.Error(c, http.StatusInternalServerError, "внутренняя ошибка")
}
