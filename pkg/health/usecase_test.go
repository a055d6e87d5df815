package health

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChecker struct {
	name string
	err  error
}

func (s stubChecker) Name() string                  { return s.name }
func (s stubChecker) Check(_ context.Context) error { return s.err }

func TestReady(t *testing.T) {
	ctx := context.Background()

	svc := NewService(stubChecker{name: "postgres"}, stubChecker{name: "redis"})
	assert.NoError(t, svc.Ready(ctx))

	down := errors.New("dial tcp: connection refused")
	svc = NewService(stubChecker{name: "postgres"}, stubChecker{name: "redis", err: down})
	assert.ErrorIs(t, svc.Ready(ctx), down)
}

func TestReport(t *testing.T) {
	svc := NewService(
		stubChecker{name: "postgres"},
		stubChecker{name: "redis", err: errors.New("dial tcp: connection refused")},
	)

	report := svc.Report(context.Background())
	require.Len(t, report, 2)
	assert.Equal(t, "ok", report["postgres"])
	assert.Equal(t, "dial tcp: connection refused", report["redis"])
}

func TestReady_NoCheckers(t *testing.T) {
	svc := NewService()
	assert.NoError(t, svc.Ready(context.Background()))
	assert.Empty(t, svc.Report(context.Background()))
}
