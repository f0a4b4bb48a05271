package scheduler

import (
	"context"
	"time"

	"github.com/ivmolchanov/walletsvc/internal/logger"
)

// Refresher refreshes exchange rate snapshots for all supported currencies.
type Refresher interface {
	RefreshAllRates(ctx context.Context) error
}

// Scheduler periodically invokes the rate refresh job.
type Scheduler struct {
	refresher Refresher
	interval  time.Duration
}

// New creates a Scheduler that triggers the refresher every interval.
func New(refresher Refresher, interval time.Duration) *Scheduler {
	return &Scheduler{
		refresher: refresher,
		interval:  interval,
	}
}

// Start runs one refresh immediately, so rates exist before the first tick,
// then refreshes on every tick until the context is cancelled.
func (s *Scheduler) Start(ctx context.Context) {
	logger.Log.Infow("starting rate refresh scheduler", "interval", s.interval)

	if err := s.refresher.RefreshAllRates(ctx); err != nil {
		logger.Log.Errorw("rate refresh failed", "error", err)
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Log.Info("stopping rate refresh scheduler")
			return
		case <-ticker.C:
			if err := s.refresher.RefreshAllRates(ctx); err != nil {
				logger.Log.Errorw("rate refresh failed", "error", err)
			}
		}
	}
}
