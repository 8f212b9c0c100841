package adminapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/artem13815/ats/pkg/pipeline"
	"github.com/artem13815/ats/pkg/preselection"
)

type server struct {
	mu      sync.Mutex
	apps    []pipeline.Application
	updates []preselection.StageUpdate
	failID  int64
}

func (s *server) app() *fiber.App {
	app := fiber.New()
	admin := app.Group("/api/admin", func(c *fiber.Ctx) error {
		if c.Get("Authorization") != "Bearer admin-token" {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": "invalid or expired token"})
		}
		return c.Next()
	})
	admin.Get("/applications", func(c *fiber.Ctx) error {
		s.mu.Lock()
		defer s.mu.Unlock()
		return c.JSON(s.apps)
	})
	admin.Patch("/applications/:id/stage", func(c *fiber.Ctx) error {
		id, _ := strconv.ParseInt(c.Params("id"), 10, 64)
		if id == s.failID {
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"message": "boom"})
		}
		var upd preselection.StageUpdate
		if err := c.BodyParser(&upd); err != nil {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"message": "невалидный JSON"})
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		s.updates = append(s.updates, upd)
		for i := range s.apps {
			if s.apps[i].ID != id {
				continue
			}
			for j := range s.apps[i].Timeline {
				if s.apps[i].Timeline[j].Stage == upd.Stage {
					s.apps[i].Timeline[j].Status = upd.Status
				}
			}
			return c.SendStatus(http.StatusNoContent)
		}
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"message": "заявка не найдена"})
	})
	return app
}

func start(t *testing.T, s *server, token string) *Client {
	t.Helper()
	ts := httptest.NewServer(adaptor.FiberApp(s.app()))
	t.Cleanup(ts.Close)
	return New(ts.URL+"/", token, WithHTTPClient(ts.Client()))
}

func pending(id int64, name string) pipeline.Application {
	return pipeline.Application{
		ID:   id,
		User: &pipeline.User{Name: &name},
		Job:  &pipeline.JobRef{ID: 1, Title: "QA"},
		Timeline: []pipeline.TimelineEntry{
			{Stage: pipeline.StagePreselection, Status: pipeline.StatusPending},
			{Stage: pipeline.StageResult, Status: pipeline.StatusPending},
		},
	}
}

func TestClientDrivesSession(t *testing.T) {
	s := &server{apps: []pipeline.Application{pending(1, "Ana"), pending(2, "Luis")}}
	c := start(t, s, "admin-token")
	ctx := context.Background()

	apps, err := c.ListApplications(ctx)
	require.NoError(t, err)
	require.Len(t, apps, 2)
	assert.Equal(t, "Luis", apps[1].UserName())

	sess := preselection.NewSession(c, zaptest.NewLogger(t))
	require.NoError(t, sess.Store.Load(ctx))
	sess.Selection.Toggle(2)
	require.NoError(t, sess.Coordinator().DiscardSelected(ctx))

	require.Len(t, s.updates, 2)
	assert.Equal(t, preselection.StageUpdate{Stage: pipeline.StagePreselection, Status: pipeline.StatusRejected}, s.updates[0])
	assert.Equal(t, pipeline.StageResult, s.updates[1].Stage)

	got, ok := sess.Store.Get(2)
	require.True(t, ok)
	assert.Equal(t, pipeline.GeneralDiscarded, pipeline.DeriveGeneralStatus(got))
	assert.Zero(t, sess.Selection.Len())
}

func TestClientErrors(t *testing.T) {
	s := &server{apps: []pipeline.Application{pending(1, "Ana")}, failID: 1}
	ctx := context.Background()

	_, err := start(t, s, "wrong").ListApplications(ctx)
	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusUnauthorized, se.Code)
	assert.Equal(t, "invalid or expired token", se.Message)

	c := start(t, s, "admin-token")
	err = c.UpdateStage(ctx, 1, preselection.StageUpdate{Stage: pipeline.StageResult, Status: pipeline.StatusAccepted})
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusInternalServerError, se.Code)

	err = c.UpdateStage(ctx, 9, preselection.StageUpdate{Stage: pipeline.StageResult, Status: pipeline.StatusAccepted})
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusNotFound, se.Code)
}

func TestClientEmptyList(t *testing.T) {
	c := start(t, &server{}, "admin-token")
	apps, err := c.ListApplications(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, apps)
	assert.Empty(t, apps)
}
