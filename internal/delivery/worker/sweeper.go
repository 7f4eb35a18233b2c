// Package worker contains background maintenance loops.
package worker

import (
	"context"
	"log/slog"
	"time"

	"authd/config"
	"authd/internal/delivery"
	"authd/internal/domain/repository"
	"authd/internal/domain/service"

	"go.uber.org/fx"
)

// sweeper periodically purges dead session rows and expired cooldown entries.
// Expiry is enforced at read time everywhere; the sweep only reclaims space.
type sweeper struct {
	sessionRepo repository.SessionRepository
	suppressor  service.CallSuppressor
	interval    time.Duration
	logger      *slog.Logger
	stop        chan struct{}
}

// SweeperParams holds dependencies for the sweeper, injected by Fx.
type SweeperParams struct {
	fx.In
	fx.Lifecycle

	SessionRepo repository.SessionRepository
	Suppressor  service.CallSuppressor
	Config      *config.Config
	Logger      *slog.Logger
}

// NewSweeper creates the session maintenance worker.
func NewSweeper(params SweeperParams) delivery.Delivery {
	worker := &sweeper{
		sessionRepo: params.SessionRepo,
		suppressor:  params.Suppressor,
		interval:    params.Config.Sweep.Interval,
		logger:      params.Logger,
		stop:        make(chan struct{}),
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			close(worker.stop)

			return nil
		},
	})

	return worker
}

// Serve runs the sweep loop until shutdown.
func (w *sweeper) Serve(ctx context.Context) error {
	w.logger.Info("Starting session sweeper", slog.Duration("interval", w.interval))

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-w.stop:
			return nil
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *sweeper) sweep(ctx context.Context) {
	purged, err := w.sessionRepo.DeleteExpiredOrRevoked(ctx)
	if err != nil {
		w.logger.Error("Session sweep failed", slog.Any("error", err))

		return
	}

	dropped := w.suppressor.Sweep(ctx)

	if purged > 0 || dropped > 0 {
		w.logger.Info("Sweep completed",
			slog.Int64("sessionsPurged", purged),
			slog.Int("cooldownsDropped", dropped))
	}
}
