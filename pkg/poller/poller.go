// Package poller owns the refresh lifecycle: a cancellable repeating task
// that fetches snapshots and swaps them wholesale into a holder. There is
// exactly one mutator; readers always see a complete snapshot or none.
package poller

import (
	"context"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"barnsight.xyz/pigsty-monitor-service/pkg/backend"
	"barnsight.xyz/pigsty-monitor-service/pkg/common"
	"barnsight.xyz/pigsty-monitor-service/pkg/models"
)

// Holder keeps the latest applied snapshot behind an atomic pointer.
type Holder struct {
	current atomic.Pointer[models.Snapshot]
}

// Latest returns the most recent snapshot, nil before the first refresh.
func (h *Holder) Latest() *models.Snapshot {
	return h.current.Load()
}

// Replace swaps in a new snapshot wholesale.
func (h *Holder) Replace(snap *models.Snapshot) {
	h.current.Store(snap)
}

type Poller struct {
	Source   backend.IFeed
	Interval time.Duration
	Holder   *Holder

	// OnFailure fires on every failed refresh; the wiring treats repeated
	// failures as a force-reauthentication signal.
	OnFailure func(err error)
}

// Run fetches once immediately and then on every tick until ctx is cancelled.
// A fetch that completes after cancellation is discarded, never applied: a
// stale refresh landing after logout would violate the session boundary.
func (p *Poller) Run(ctx context.Context) error {
	logger := common.GetLoggerWith(
		common.LoggerNamePoller,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryRefresh),
	)

	ticker := time.NewTicker(p.Interval)
	defer ticker.Stop()

	logger.Info("Polling started", zap.Duration("interval", p.Interval))

	p.refresh(ctx, logger)
	for {
		select {
		case <-ctx.Done():
			logger.Info("Polling stopped")
			return ctx.Err()
		case <-ticker.C:
			p.refresh(ctx, logger)
		}
	}
}

func (p *Poller) refresh(ctx context.Context, logger *zap.Logger) {
	snap, err := p.Source.FetchSnapshot(ctx)

	if ctx.Err() != nil {
		logger.Info("Discarding in-flight refresh after cancellation")
		return
	}

	if err != nil {
		logger.Warn("Refresh failed, snapshot not applied", zap.Error(err))
		if p.OnFailure != nil {
			p.OnFailure(err)
		}
		return
	}

	p.Holder.Replace(snap)
	logger.Info("Snapshot applied",
		zap.Int("pigsties", len(snap.Pigsties)),
		zap.Int("devices", len(snap.Devices)),
		zap.Int("readings", len(snap.Readings)),
		zap.Int("alerts", len(snap.Alerts)))
}
