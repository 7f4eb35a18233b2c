package worker

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	mockRepo "authd/internal/mocks/repository"
	mockService "authd/internal/mocks/service"
)

func newTestSweeper(t *testing.T) (*sweeper, *mockRepo.MockSessionRepository, *mockService.MockCallSuppressor) {
	t.Helper()

	sessionRepo := mockRepo.NewMockSessionRepository(t)
	suppressor := mockService.NewMockCallSuppressor(t)

	return &sweeper{
		sessionRepo: sessionRepo,
		suppressor:  suppressor,
		interval:    5 * time.Millisecond,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		stop:        make(chan struct{}),
	}, sessionRepo, suppressor
}

func TestSweeper_PurgesOnTick(t *testing.T) {
	w, sessionRepo, suppressor := newTestSweeper(t)

	swept := make(chan struct{})
	sessionRepo.EXPECT().DeleteExpiredOrRevoked(mock.Anything).Return(int64(3), nil)
	suppressor.EXPECT().
		Sweep(mock.Anything).
		RunAndReturn(func(context.Context) int {
			select {
			case swept <- struct{}{}:
			default:
			}

			return 2
		})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Serve(ctx) }()

	select {
	case <-swept:
	case <-time.After(time.Second):
		t.Fatal("sweep never ran")
	}

	cancel()
	assert.NoError(t, <-done)
}

func TestSweeper_RepositoryErrorSkipsCooldownSweep(t *testing.T) {
	w, sessionRepo, suppressor := newTestSweeper(t)

	swept := make(chan struct{})
	sessionRepo.EXPECT().
		DeleteExpiredOrRevoked(mock.Anything).
		RunAndReturn(func(context.Context) (int64, error) {
			select {
			case swept <- struct{}{}:
			default:
			}

			return 0, errors.New("connection reset")
		})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Serve(ctx) }()

	select {
	case <-swept:
	case <-time.After(time.Second):
		t.Fatal("sweep never ran")
	}

	cancel()
	assert.NoError(t, <-done)
	suppressor.AssertNotCalled(t, "Sweep", mock.Anything)
}

func TestSweeper_StopChannelEndsLoop(t *testing.T) {
	w, _, _ := newTestSweeper(t)
	w.interval = time.Hour

	done := make(chan error, 1)
	go func() { done <- w.Serve(context.Background()) }()

	close(w.stop)

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop")
	}
}
