package sim

import (
	"context"
	"time"

	"go.uber.org/zap"

	"barnsight.xyz/pigsty-monitor-service/pkg/common"
	"barnsight.xyz/pigsty-monitor-service/pkg/models"
	"barnsight.xyz/pigsty-monitor-service/pkg/registry"
)

const seedHistory = 60

// Seed populates an empty store with the demo farm: two users, four pigsties
// (one unassigned, one with a tightened temperature override), a full device
// set per pigsty and a short reading history. A non-empty store is left alone.
func (s *Sim) Seed(ctx context.Context) error {
	conn := s.Db.Conn.WithContext(ctx)
	logger := common.GetLoggerWith(
		common.LoggerNameSimBackend,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryAdmin),
	)

	var count int64
	if err := conn.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		logger.Info("Store already seeded, skipping")
		return nil
	}

	users := []models.User{
		{Name: "Admin User", Username: "admin", Password: "admin123", Role: models.RoleAdmin},
		{Name: "Jane Doe", Username: "jane", Password: "jane123", Role: models.RoleTechnician},
	}
	if err := conn.Create(&users).Error; err != nil {
		return err
	}
	techID := users[1].ID

	pigsties := []models.Pigsty{
		{Name: "Farrowing #1", Location: "Barn A", Capacity: 10, TechnicianID: &techID},
		{Name: "Nursery #3", Location: "Barn A", Capacity: 50, TechnicianID: &techID},
		{Name: "Finishing A", Location: "Barn B", Capacity: 100},
		{
			Name: "Finishing B", Location: "Barn B", Capacity: 100, TechnicianID: &techID,
			Thresholds: map[models.MetricKind]models.ThresholdBand{
				models.MetricTemperature: {
					WarnHigh:   models.Float(25),
					DangerHigh: models.Float(27),
				},
			},
		},
	}
	if err := conn.Create(&pigsties).Error; err != nil {
		return err
	}

	var devices []models.Device
	for _, p := range pigsties {
		for _, kind := range registry.Kinds() {
			devices = append(devices, models.Device{
				PigstyID: p.ID,
				Kind:     kind,
				Active:   true,
			})
		}
	}
	if err := conn.Create(&devices).Error; err != nil {
		return err
	}

	now := time.Now()
	for _, p := range pigsties {
		var readings []models.Reading
		for i := seedHistory; i > 0; i-- {
			r := models.Reading{
				PigstyID:  p.ID,
				Timestamp: now.Add(-time.Duration(i) * s.Tick),
			}
			for kind, w := range walks {
				s.mu.Lock()
				v := w.center + (s.rnd.Float64()-0.5)*w.spread
				s.mu.Unlock()
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
			readings = append(readings, r)
		}
		if err := conn.Create(&readings).Error; err != nil {
			return err
		}
	}

	logger.Info("Store seeded",
		zap.Int("users", len(users)),
		zap.Int("pigsties", len(pigsties)),
		zap.Int("devices", len(devices)))
	return nil
}
