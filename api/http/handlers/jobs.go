package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/artem13815/ats/api/http/presenter"
	"github.com/artem13815/ats/pkg/job"
)

type JobHandler struct {
	uc  job.UseCase
	log *zap.Logger
}

func NewJobHandler(uc job.UseCase, log *zap.Logger) *JobHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &JobHandler{uc: uc, log: log}
}

type jobRequest struct {
	Title        *string    `json:"title_job"`
	Description  *string    `json:"description"`
	IdealProfile *string    `json:"perfil_ideal"`
	PostedDate   *time.Time `json:"posted_date"`
	ClearPosted  bool       `json:"clear_posted_date"`
}

// @Summary Создать вакансию
// @Tags        Вакансии
// @Accept      json
// @Produce     json
// @Param       input body jobRequest true "Данные вакансии"
// @Security    BearerAuth
// @Success     201 {object} job.Job
// @Failure     400 {object} presenter.ErrorResponse
// @Router      /admin/jobs [post]
func (h *JobHandler) Create(c *fiber.Ctx) error {
	var req jobRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный JSON")
	}
	j := job.Job{IdealProfile: req.IdealProfile, PostedDate: req.PostedDate}
	if req.Title != nil {
		j.Title = *req.Title
	}
	if req.Description != nil {
		j.Description = *req.Description
	}
	created, err := h.uc.Create(c.UserContext(), j)
	if err != nil {
		return h.fail(c, err)
	}
	return presenter.JSON(c, http.StatusCreated, created)
}

// @Summary Список вакансий
// @Tags    Вакансии
// @Produce json
// @Param   limit  query int false "Лимит (1..200)"
// @Param   offset query int false "Смещение"
// @Security BearerAuth
// @Success 200 {array} job.Job
// @Router  /jobs [get]
func (h *JobHandler) List(c *fiber.Ctx) error {
	limit, offset := parseLimitOffset(c, 50)
	jobs, err := h.uc.List(c.UserContext(), limit, offset)
	if err != nil {
		return h.fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, jobs)
}

// @Summary Обновить вакансию
// @Tags    Вакансии
// @Accept  json
// @Param   id path int true "ID вакансии"
// @Param   input body jobRequest true "Изменяемые поля"
// @Security BearerAuth
// @Success 204 {object} nil
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /admin/jobs/{id} [patch]
func (h *JobHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badID(c)
	}
	var req jobRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный JSON")
	}
	patch := job.Patch{
		Title:        req.Title,
		Description:  req.Description,
		IdealProfile: req.IdealProfile,
		PostedDate:   req.PostedDate,
		ClearPosted:  req.ClearPosted,
	}
	if err := h.uc.Update(c.UserContext(), id, patch); err != nil {
		return h.fail(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// @Summary Удалить вакансию
// @Tags    Вакансии
// @Param   id path int true "ID вакансии"
// @Security BearerAuth
// @Success 204 {object} nil
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /admin/jobs/{id} [delete]
func (h *JobHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badID(c)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return h.fail(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

func (h *JobHandler) fail(c *fiber.Ctx, err error) error {
	var verr job.ErrValidation
	switch {
	case errors.As(err, &verr):
		return presenter.Error(c, http.StatusBadRequest, verr.Error())
	case errors.Is(err, job.ErrNotFound):
		return presenter.Error(c, http.StatusNotFound, "вакансия не найдена")
	}
	h.log.Error("job request failed", zap.String("path", c.Path()), zap.Error(err))
	return presenter.Error(c, http.StatusInternalServerError, "внутренняя ошибка")
}
