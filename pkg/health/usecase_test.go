package health

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type staticChecker struct {
	name string
	err  error
}

func (c staticChecker) Name() string                    { return c.name }
func (c staticChecker) Check(ctx context.Context) error { return c.err }

func TestReady(t *testing.T) {
	down := errors.New("connection refused")
	svc := NewService(staticChecker{name: "postgres"}, nil, staticChecker{name: "redis", err: down})

	err := svc.Ready(context.Background())
	assert.ErrorIs(t, err, down)
	assert.Contains(t, err.Error(), "redis")

	assert.Equal(t, map[string]string{"postgres": "ok", "redis": "connection refused"}, svc.Report(context.Background()))
	assert.NoError(t, NewService(staticChecker{name: "postgres"}).Ready(context.Background()))
}
