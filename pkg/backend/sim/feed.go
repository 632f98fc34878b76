package sim

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"barnsight.xyz/pigsty-monitor-service/pkg/common"
	"barnsight.xyz/pigsty-monitor-service/pkg/models"
	"barnsight.xyz/pigsty-monitor-service/pkg/registry"
	"barnsight.xyz/pigsty-monitor-service/pkg/threshold"
)

// FetchSnapshot assembles one consistent snapshot of everything the dashboard
// polls for. Devices and readings carry their facility reference in string
// form; the association layer normalizes it together with whatever shapes the
// real backend sends.
func (s *Sim) FetchSnapshot(ctx context.Context) (*models.Snapshot, error) {
	conn := s.Db.Conn.WithContext(ctx)
	snap := &models.Snapshot{FetchedAt: time.Now()}

	if err := conn.Order("id").Find(&snap.Users).Error; err != nil {
		return nil, fmt.Errorf("fetch users: %w", err)
	}
	if err := conn.Order("id").Find(&snap.Pigsties).Error; err != nil {
		return nil, fmt.Errorf("fetch pigsties: %w", err)
	}
	if err := conn.Order("id").Find(&snap.Devices).Error; err != nil {
		return nil, fmt.Errorf("fetch devices: %w", err)
	}
	for i := range snap.Devices {
		snap.Devices[i].PigstyRef = refOf(snap.Devices[i].PigstyID)
	}
	if err := conn.Order("timestamp desc").Find(&snap.Alerts).Error; err != nil {
		return nil, fmt.Errorf("fetch alerts: %w", err)
	}

	logger := common.GetLoggerWith(
		common.LoggerNameSimBackend,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryFeed),
	)

	for _, p := range snap.Pigsties {
		var history []models.Reading
		err := conn.
			Where("pigsty_id = ?", p.ID).
			Order("timestamp desc").
			Limit(historyLimit).
			Find(&history).Error
		if err != nil {
			return nil, fmt.Errorf("fetch readings for pigsty %d: %w", p.ID, err)
		}
		for i := range history {
			history[i].PigstyRef = refOf(history[i].PigstyID)
		}
		snap.Readings = append(snap.Readings, history...)
	}

	logger.Debug("Snapshot assembled",
		zap.Int("pigsties", len(snap.Pigsties)),
		zap.Int("readings", len(snap.Readings)),
		zap.Int("alerts", len(snap.Alerts)))
	return snap, nil
}

// Step generates one reading per facility: a random walk from the previous
// value for every metric with an active device, nil for the rest. Threshold
// crossings store an alert with its severity fixed at creation time.
func (s *Sim) Step(ctx context.Context, now time.Time) error {
	conn := s.Db.Conn.WithContext(ctx)

	var pigsties []models.Pigsty
	if err := conn.Find(&pigsties).Error; err != nil {
		return err
	}

	for _, p := range pigsties {
		var devices []models.Device
		if err := conn.Where("pigsty_id = ? AND active = ?", p.ID, true).Find(&devices).Error; err != nil {
			return err
		}

		var last models.Reading
		hasLast := conn.Where("pigsty_id = ?", p.ID).Order("timestamp desc").First(&last).Error == nil

		reading := models.Reading{PigstyID: p.ID, Timestamp: now}
		for _, d := range devices {
			var base *float64
			if hasLast {
				base = registry.Value(d.Kind, &last)
			}
			s.setValue(&reading, d.Kind, base)
		}

		if err := conn.Create(&reading).Error; err != nil {
			return err
		}
		if err := s.pruneHistory(ctx, p.ID); err != nil {
			return err
		}
		if err := s.checkAndStoreAlerts(ctx, &p, &reading); err != nil {
			return err
		}
	}
	return nil
}

type walk struct {
	center float64
	spread float64
	drift  float64
}

var walks = map[models.MetricKind]walk{
	models.MetricTemperature: {center: 22, spread: 0.5, drift: 0.5},
	models.MetricHumidity:    {center: 65, spread: 2, drift: 0.5},
	models.MetricAmmonia:     {center: 10, spread: 1, drift: 0.45},
	models.MetricLight:       {center: 120, spread: 40, drift: 0.5},
}

func (s *Sim) setValue(r *models.Reading, kind models.MetricKind, base *float64) {
	w, ok := walks[kind]
	if !ok {
		return
	}

	from := w.center
	if base != nil {
		from = *base
	}

	s.mu.Lock()
	v := from + (s.rnd.Float64()-w.drift)*w.spread
	s.mu.Unlock()
	if v < 0 {
		v = 0
	}

	switch kind {
	case models.MetricTemperature:
		r.Temperature = &v
	case models.MetricHumidity:
		r.Humidity = &v
	case models.MetricAmmonia:
		r.Ammonia = &v
	case models.MetricLight:
		r.Light = &v
	}
}

func (s *Sim) pruneHistory(ctx context.Context, pigstyID int64) error {
	return s.Db.Conn.WithContext(ctx).Exec(
		`DELETE FROM readings WHERE pigsty_id = ? AND id NOT IN (
			SELECT id FROM readings WHERE pigsty_id = ? ORDER BY timestamp DESC LIMIT ?
		)`, pigstyID, pigstyID, historyLimit,
	).Error
}

func (s *Sim) checkAndStoreAlerts(ctx context.Context, p *models.Pigsty, reading *models.Reading) error {
	logger := common.GetLoggerWith(
		common.LoggerNameSimBackend,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryAlert),
	)

	for _, kind := range registry.Kinds() {
		value := registry.Value(kind, reading)
		if value == nil {
			// no active sensor, nothing to classify
			continue
		}

		band := threshold.EffectiveBand(kind, p.Thresholds[kind])
		severity := threshold.Classify(*value, band)
		if severity == models.SeverityNormal {
			continue
		}

		alert := models.Alert{
			Timestamp:  reading.Timestamp,
			PigstyRef:  refOf(p.ID),
			PigstyName: p.Name,
			Metric:     kind,
			Value:      *value,
			Severity:   severity,
			Message:    alertMessage(kind, *value, band),
		}

		logger.Info("Alert found", zap.Reflect("alert", alert))

		if err := s.Db.Conn.WithContext(ctx).Create(&alert).Error; err != nil {
			return err
		}

		logger.Info("Alert saved", zap.Reflect("alert", alert))
	}
	return nil
}

func alertMessage(kind models.MetricKind, value float64, band models.ThresholdBand) string {
	name := registry.DisplayName(kind)
	unit := registry.Unit(kind)

	switch {
	case band.DangerHigh != nil && value > *band.DangerHigh:
		return fmt.Sprintf("%s %.2f%s exceeded danger threshold %.2f", name, value, unit, *band.DangerHigh)
	case band.DangerLow != nil && value < *band.DangerLow:
		return fmt.Sprintf("%s %.2f%s below danger threshold %.2f", name, value, unit, *band.DangerLow)
	case band.WarnHigh != nil && value > *band.WarnHigh:
		return fmt.Sprintf("%s %.2f%s exceeded warning threshold %.2f", name, value, unit, *band.WarnHigh)
	case band.WarnLow != nil && value < *band.WarnLow:
		return fmt.Sprintf("%s %.2f%s below warning threshold %.2f", name, value, unit, *band.WarnLow)
	default:
		return fmt.Sprintf("%s %.2f%s outside configured bounds", name, value, unit)
	}
}
