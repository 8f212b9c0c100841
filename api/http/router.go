package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/artem13815/ats/api/http/handlers"
	"github.com/artem13815/ats/pkg/ratelimit"
	"github.com/artem13815/ats/pkg/security/jwt"
)

// Deps собирает зависимости для регистрации маршрутов.
type Deps struct {
	Health       *handlers.HealthHandler
	Applications *handlers.ApplicationHandler
	Preselection *handlers.PreselectionHandler
	Jobs         *handlers.JobHandler

	Auth fiber.Handler
	// Limiter may be nil; bulk actions are then not limited.
	Limiter       ratelimit.Limiter
	BulkRateLimit int
	Log           *zap.Logger
}

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, d Deps) {
	log := d.Log
	if log == nil {
		log = zap.NewNop()
	}
	app.Use(RequestLogger(log))

	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", d.Health.Health)
	v1.Get("/ready", d.Health.Ready)

	admin := api.Group("/admin", d.Auth, jwt.RequireAdmin())
	admin.Get("/applications", d.Applications.ListAdmin)
	admin.Patch("/applications/:id/stage", d.Applications.UpdateStage)
	admin.Patch("/applications/:id", d.Applications.UpdateStatus)
	admin.Post("/applications/:id/observation", d.Preselection.Observation)
	admin.Put("/applications/:id/stages", d.Preselection.SaveStages)

	admin.Get("/preselection", d.Preselection.View)
	bulk := admin.Group("/preselection/bulk", ratelimit.Middleware(d.Limiter, "bulk", d.BulkRateLimit, time.Minute, adminKey, log))
	bulk.Post("/stage", d.Preselection.BulkStage)
	bulk.Post("/discard", d.Preselection.BulkDiscard)

	admin.Get("/jobs", d.Jobs.List)
	admin.Post("/jobs", d.Jobs.Create)
	admin.Patch("/jobs/:id", d.Jobs.Update)
	admin.Delete("/jobs/:id", d.Jobs.Delete)
	admin.Get("/metrics/summary", d.Applications.Summary)

	// Candidate tracker
	api.Get("/applications", d.Auth, d.Applications.Mine)
	api.Post("/applications", d.Auth, d.Applications.Apply)
	api.Delete("/applications/:id", d.Auth, d.Applications.Withdraw)
	api.Get("/jobs", d.Auth, d.Jobs.List)
}

func adminKey(c *fiber.Ctx) string {
	id, ok := jwt.UserID(c)
	if !ok {
		return ""
	}
	return strconv.FormatInt(id, 10)
}

// RequestLogger tags each request with X-Request-ID and logs it once finished.
func RequestLogger(log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(fiber.HeaderXRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(fiber.HeaderXRequestID, rid)
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		}
		log.Info("http request",
			zap.String("request_id", rid),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
		)
		return err
	}
}
