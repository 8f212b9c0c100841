package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/artem13815/ats/api/http/presenter"
	"github.com/artem13815/ats/pkg/application"
	"github.com/artem13815/ats/pkg/job"
	"github.com/artem13815/ats/pkg/security/jwt"
)

// ApplicationHandler обслуживает заявки: трекер кандидата и ручное управление этапами.
type ApplicationHandler struct {
	uc         application.UseCase
	candidates application.CandidateRepository
	log        *zap.Logger
}

func NewApplicationHandler(uc application.UseCase, candidates application.CandidateRepository, log *zap.Logger) *ApplicationHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &ApplicationHandler{uc: uc, candidates: candidates, log: log}
}

// @Summary Все заявки (админ)
// @Tags    Заявки
// @Produce json
// @Security BearerAuth
// @Success 200 {array} pipeline.Application
// @Router  /admin/applications [get]
func (h *ApplicationHandler) ListAdmin(c *fiber.Ctx) error {
	apps, err := h.uc.ListAdmin(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, apps)
}

// @Summary Изменить этап заявки
// @Description Создаёт или обновляет этап. Терминальные статусы получают дату, отказ на предотборе закрывает результат.
// @Tags    Заявки
// @Accept  json
// @Param   id path int true "ID заявки"
// @Param   input body application.StageChange true "Этап"
// @Security BearerAuth
// @Success 204 {object} nil
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /admin/applications/{id}/stage [patch]
func (h *ApplicationHandler) UpdateStage(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badID(c)
	}
	var req application.StageChange
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный JSON")
	}
	if err := h.uc.UpdateStage(c.UserContext(), id, req); err != nil {
		return h.fail(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

type statusRequest struct {
	Status string `json:"status"`
}

// @Summary Изменить "сырой" статус заявки
// @Tags    Заявки
// @Accept  json
// @Param   id path int true "ID заявки"
// @Param   input body statusRequest true "Статус"
// @Security BearerAuth
// @Success 204 {object} nil
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /admin/applications/{id} [patch]
func (h *ApplicationHandler) UpdateStatus(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badID(c)
	}
	var req statusRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный JSON")
	}
	if err := h.uc.UpdateStatus(c.UserContext(), id, req.Status); err != nil {
		return h.fail(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// @Summary Мои заявки
// @Tags    Заявки
// @Produce json
// @Security BearerAuth
// @Success 200 {array} pipeline.Application
// @Router  /applications [get]
func (h *ApplicationHandler) Mine(c *fiber.Ctx) error {
	uid, ok := jwt.UserID(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "не удалось определить пользователя")
	}
	apps, err := h.uc.ListForUser(c.UserContext(), uid)
	if err != nil {
		return h.fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, apps)
}

type applyRequest struct {
	JobID             int64    `json:"job_id"`
	SimilarityPercent *float64 `json:"similarity_percent"`
}

// @Summary Откликнуться на вакансию
// @Description Повторный отклик на ту же вакансию возвращает существующую заявку со статусом 200.
// @Tags    Заявки
// @Accept  json
// @Produce json
// @Param   input body applyRequest true "Вакансия"
// @Security BearerAuth
// @Success 201 {object} map[string]any
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /applications [post]
func (h *ApplicationHandler) Apply(c *fiber.Ctx) error {
	uid, ok := jwt.UserID(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "не удалось определить пользователя")
	}
	var req applyRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный JSON")
	}
	if req.SimilarityPercent != nil && (*req.SimilarityPercent < 0 || *req.SimilarityPercent > 100) {
		return presenter.Error(c, http.StatusBadRequest, "similarity_percent должен быть в диапазоне 0..100")
	}
	if claims := jwt.ClaimsFrom(c); claims != nil && h.candidates != nil &&
		(strings.TrimSpace(claims.Name) != "" || strings.TrimSpace(claims.Email) != "") {
		if err := h.candidates.Upsert(c.UserContext(), application.Candidate{ID: uid, Name: claims.Name, Email: claims.Email}); err != nil {
			h.log.Warn("candidate profile upsert failed", zap.Int64("user", uid), zap.Error(err))
		}
	}
	id, created, err := h.uc.Apply(c.UserContext(), uid, req.JobID, req.SimilarityPercent)
	if err != nil {
		return h.fail(c, err)
	}
	status := http.StatusCreated
	if !created {
		status = http.StatusOK
	}
	return presenter.JSON(c, status, fiber.Map{"id": id, "created": created})
}

// @Summary Отозвать свою заявку
// @Tags    Заявки
// @Param   id path int true "ID заявки"
// @Security BearerAuth
// @Success 204 {object} nil
// @Failure 403 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /applications/{id} [delete]
func (h *ApplicationHandler) Withdraw(c *fiber.Ctx) error {
	uid, ok := jwt.UserID(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "не удалось определить пользователя")
	}
	id, ok := parseID(c, "id")
	if !ok {
		return badID(c)
	}
	if err := h.uc.DeleteOwn(c.UserContext(), uid, id); err != nil {
		return h.fail(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// @Summary Сводные метрики
// @Tags    Метрики
// @Produce json
// @Security BearerAuth
// @Success 200 {object} application.Summary
// @Router  /admin/metrics/summary [get]
func (h *ApplicationHandler) Summary(c *fiber.Ctx) error {
	sum, err := h.uc.Summary(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, sum)
}

func (h *ApplicationHandler) fail(c *fiber.Ctx, err error) error {
	var verr application.ErrValidation
	switch {
	case errors.As(err, &verr):
		return presenter.Error(c, http.StatusBadRequest, verr.Error())
	case errors.Is(err, application.ErrNotFound):
		return presenter.Error(c, http.StatusNotFound, "заявка не найдена")
	case errors.Is(err, job.ErrNotFound):
		return presenter.Error(c, http.StatusNotFound, "вакансия не найдена")
	case errors.Is(err, application.ErrForbidden):
		return presenter.Error(c, http.StatusForbidden, "заявка принадлежит другому пользователю")
	}
	h.log.Error("application request failed", zap.String("path", c.Path()), zap.Error(err))
	return presenter.Error(c, http.StatusInternalServerError, "внутренняя ошибка")
}
