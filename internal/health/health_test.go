package health

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

func quiet() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestCheckFollowsProbe(t *testing.T) {
	var probeErr error
	s := New(func(context.Context) error { return probeErr }, time.Second, quiet())

	st, err := s.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, st, "not serving before the first probe")

	s.Check(context.Background())
	st, err = s.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, st)

	probeErr = errors.New("catalog api down")
	s.Check(context.Background())
	st, err = s.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, st)
}

func TestRunStopsOnCancel(t *testing.T) {
	calls := make(chan struct{}, 16)
	s := New(func(context.Context) error {
		calls <- struct{}{}
		return nil
	}, 10*time.Millisecond, quiet())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	<-calls
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}

	st, err := s.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, st)
}
