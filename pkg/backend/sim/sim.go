// Package sim is a local, sqlite-backed stand-in for the real pigsty backend.
// It replaces the throwaway in-memory mock (module-level arrays mutated by a
// timer) with an explicit store behind the backend.Source interface: seeded
// entities, a generator that appends random-walk readings, alert creation at
// reading time, and the CRUD preconditions the real backend enforces.
package sim

import (
	"context"
	"math/rand"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"

	"barnsight.xyz/pigsty-monitor-service/pkg/backend"
	"barnsight.xyz/pigsty-monitor-service/pkg/common"
	"barnsight.xyz/pigsty-monitor-service/pkg/db"
	"barnsight.xyz/pigsty-monitor-service/pkg/models"
)

// historyLimit bounds the retained reading history per facility.
const historyLimit = 300

type Sim struct {
	Db   db.DB
	Tick time.Duration

	mu  sync.Mutex
	rnd *rand.Rand
}

var _ backend.Source = (*Sim)(nil)

func New(dbInstance *db.DB, tick time.Duration) *Sim {
	return &Sim{
		Db:   *dbInstance,
		Tick: tick,
		rnd:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func refOf(pigstyID int64) models.Ref {
	return models.Ref(strconv.FormatInt(pigstyID, 10))
}

// Run appends one reading per facility every tick until ctx is cancelled.
func (s *Sim) Run(ctx context.Context) error {
	logger := common.GetLoggerWith(
		common.LoggerNameSimBackend,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryGenerator),
	)

	ticker := time.NewTicker(s.Tick)
	defer ticker.Stop()

	logger.Info("Reading generator started", zap.Duration("tick", s.Tick))

	for {
		select {
		case <-ctx.Done():
			logger.Info("Reading generator stopped")
			return ctx.Err()
		case now := <-ticker.C:
			if err := s.Step(ctx, now); err != nil {
				logger.Error("Generator step failed", zap.Error(err))
			}
		}
	}
}
