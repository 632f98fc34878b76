package sim

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"testing"
	"time"

	"go.uber.org/zap/zapcore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"barnsight.xyz/pigsty-monitor-service/pkg/backend"
	"barnsight.xyz/pigsty-monitor-service/pkg/common"
	"barnsight.xyz/pigsty-monitor-service/pkg/db"
	"barnsight.xyz/pigsty-monitor-service/pkg/models"
	_ "barnsight.xyz/pigsty-monitor-service/pkg/testing"
)

func getTestSim() *Sim {
	return New(db.GetInstance(db.UseMemorySqliteDialector()), time.Second)
}

func ParseLogs(r io.Reader) []map[string]any {
	scanner := bufio.NewScanner(r)
	var logs []map[string]any

	for scanner.Scan() {
		line := scanner.Text()
		var j map[string]any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}

func TestSeedAndFetchSnapshot(t *testing.T) {
	common.SetTestLoggerNop()

	s := getTestSim()
	ctx := context.Background()

	require.NoError(t, s.Seed(ctx))

	// seeding a non-empty store is a no-op
	require.NoError(t, s.Seed(ctx))

	snap, err := s.FetchSnapshot(ctx)
	require.NoError(t, err)

	assert.Len(t, snap.Users, 2)
	assert.Len(t, snap.Pigsties, 4)
	assert.Len(t, snap.Devices, 16)
	assert.Len(t, snap.Readings, 4*seedHistory)
	assert.False(t, snap.FetchedAt.IsZero())

	// readings carry the facility reference in string form
	for _, r := range snap.Readings {
		assert.NotEmpty(t, r.PigstyRef)
	}

	var finishingB *models.Pigsty
	for i := range snap.Pigsties {
		if snap.Pigsties[i].Name == "Finishing B" {
			finishingB = &snap.Pigsties[i]
		}
	}
	require.NotNil(t, finishingB)
	override := finishingB.Thresholds[models.MetricTemperature]
	assert.Equal(t, 25.0, *override.WarnHigh)
	assert.Equal(t, 27.0, *override.DangerHigh)
}

func TestAuthenticate(t *testing.T) {
	common.SetTestLoggerNop()

	s := getTestSim()
	ctx := context.Background()
	require.NoError(t, s.Seed(ctx))

	user, err := s.Authenticate(ctx, "admin", "admin123")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role)

	_, err = s.Authenticate(ctx, "admin", "wrong")
	assert.ErrorIs(t, err, backend.ErrInvalidCredentials)

	_, err = s.Authenticate(ctx, "nobody", "admin123")
	assert.ErrorIs(t, err, backend.ErrInvalidCredentials)
}

func TestCreateAndDeleteUser(t *testing.T) {
	common.SetTestLoggerNop()

	s := getTestSim()
	ctx := context.Background()

	user, err := s.CreateUser(ctx, models.User{
		Name:     "Temp Tech",
		Username: uuid.NewString(),
		Password: "secret",
		Role:     models.RoleAdmin, // must be ignored
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleTechnician, user.Role)

	_, err = s.CreateUser(ctx, models.User{Username: uuid.NewString()})
	assert.Error(t, err)

	// assign the user to a pigsty: delete must now be refused
	pigsty, err := s.CreatePigsty(ctx, models.Pigsty{
		Name: uuid.NewString(), Capacity: 10, TechnicianID: &user.ID,
	})
	require.NoError(t, err)

	err = s.DeleteUser(ctx, user.ID)
	assert.ErrorIs(t, err, backend.ErrUserAssigned)

	// unassign, then delete succeeds
	pigsty.TechnicianID = nil
	_, err = s.UpdatePigsty(ctx, pigsty.ID, *pigsty)
	require.NoError(t, err)

	assert.NoError(t, s.DeleteUser(ctx, user.ID))
	assert.ErrorIs(t, s.DeleteUser(ctx, user.ID), backend.ErrNotFound)
}

func TestPigstyCRUD(t *testing.T) {
	common.SetTestLoggerNop()

	s := getTestSim()
	ctx := context.Background()

	_, err := s.CreatePigsty(ctx, models.Pigsty{Capacity: 10})
	assert.Error(t, err)
	_, err = s.CreatePigsty(ctx, models.Pigsty{Name: "x", Capacity: 0})
	assert.Error(t, err)

	pigsty, err := s.CreatePigsty(ctx, models.Pigsty{Name: uuid.NewString(), Capacity: 20})
	require.NoError(t, err)

	pigsty.Location = "Barn C"
	updated, err := s.UpdatePigsty(ctx, pigsty.ID, *pigsty)
	require.NoError(t, err)
	assert.Equal(t, "Barn C", updated.Location)

	_, err = s.UpdatePigsty(ctx, 999999, *pigsty)
	assert.ErrorIs(t, err, backend.ErrNotFound)

	thresholds := map[models.MetricKind]models.ThresholdBand{
		models.MetricAmmonia: {WarnHigh: models.Float(12)},
	}
	updated, err = s.UpdatePigstyThresholds(ctx, pigsty.ID, thresholds)
	require.NoError(t, err)
	assert.Equal(t, 12.0, *updated.Thresholds[models.MetricAmmonia].WarnHigh)
}

func TestDeletePigstyCascades(t *testing.T) {
	common.SetTestLoggerNop()

	s := getTestSim()
	ctx := context.Background()

	pigsty, err := s.CreatePigsty(ctx, models.Pigsty{Name: uuid.NewString(), Capacity: 20})
	require.NoError(t, err)

	device, err := s.CreateDevice(ctx, models.Device{PigstyID: pigsty.ID, Kind: models.MetricTemperature})
	require.NoError(t, err)

	reading := models.Reading{PigstyID: pigsty.ID, Timestamp: time.Now(), Temperature: models.Float(22)}
	require.NoError(t, s.Db.Conn.Create(&reading).Error)

	alert := models.Alert{PigstyRef: refOf(pigsty.ID), Metric: models.MetricTemperature, Severity: models.SeverityWarning}
	require.NoError(t, s.Db.Conn.Create(&alert).Error)

	require.NoError(t, s.DeletePigsty(ctx, pigsty.ID))

	var count int64
	s.Db.Conn.Model(&models.Device{}).Where("id = ?", device.ID).Count(&count)
	assert.Zero(t, count)
	s.Db.Conn.Model(&models.Reading{}).Where("pigsty_id = ?", pigsty.ID).Count(&count)
	assert.Zero(t, count)
	s.Db.Conn.Model(&models.Alert{}).Where("pigsty_ref = ?", refOf(pigsty.ID)).Count(&count)
	assert.Zero(t, count)

	assert.ErrorIs(t, s.DeletePigsty(ctx, pigsty.ID), backend.ErrNotFound)
}

func TestDeviceCRUD(t *testing.T) {
	common.SetTestLoggerNop()

	s := getTestSim()
	ctx := context.Background()

	_, err := s.CreateDevice(ctx, models.Device{PigstyID: 999999, Kind: models.MetricLight})
	assert.ErrorIs(t, err, backend.ErrNotFound)

	pigsty, err := s.CreatePigsty(ctx, models.Pigsty{Name: uuid.NewString(), Capacity: 20})
	require.NoError(t, err)

	device, err := s.CreateDevice(ctx, models.Device{PigstyID: pigsty.ID, Kind: models.MetricLight})
	require.NoError(t, err)
	assert.True(t, device.Active)

	_, err = s.CreateDevice(ctx, models.Device{PigstyID: pigsty.ID, Kind: models.MetricLight})
	assert.ErrorIs(t, err, backend.ErrDuplicateDevice)

	toggled, err := s.ToggleDevice(ctx, device.ID)
	require.NoError(t, err)
	assert.False(t, toggled.Active)

	toggled, err = s.ToggleDevice(ctx, device.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Active)

	_, err = s.ToggleDevice(ctx, 999999)
	assert.ErrorIs(t, err, backend.ErrNotFound)

	assert.NoError(t, s.DeleteDevice(ctx, device.ID))
	assert.ErrorIs(t, s.DeleteDevice(ctx, device.ID), backend.ErrNotFound)
}

func TestStepGeneratesReadingsAndAlerts(t *testing.T) {
	common.SetTestLoggerNop()

	s := getTestSim()
	ctx := context.Background()

	// any temperature above -1000 classifies as danger
	pigsty, err := s.CreatePigsty(ctx, models.Pigsty{
		Name:     uuid.NewString(),
		Capacity: 20,
		Thresholds: map[models.MetricKind]models.ThresholdBand{
			models.MetricTemperature: {DangerHigh: models.Float(-1000)},
		},
	})
	require.NoError(t, err)

	_, err = s.CreateDevice(ctx, models.Device{PigstyID: pigsty.ID, Kind: models.MetricTemperature})
	require.NoError(t, err)

	require.NoError(t, s.Step(ctx, time.Now()))

	var readings []models.Reading
	require.NoError(t, s.Db.Conn.Where("pigsty_id = ?", pigsty.ID).Find(&readings).Error)
	require.Len(t, readings, 1)
	assert.NotNil(t, readings[0].Temperature)
	// no humidity device, no humidity value
	assert.Nil(t, readings[0].Humidity)

	var alerts []models.Alert
	require.NoError(t, s.Db.Conn.Where("pigsty_ref = ?", refOf(pigsty.ID)).Find(&alerts).Error)
	require.Len(t, alerts, 1)
	assert.Equal(t, models.SeverityDanger, alerts[0].Severity)
	assert.Equal(t, models.MetricTemperature, alerts[0].Metric)
	assert.False(t, alerts[0].Acknowledged)
	assert.Contains(t, alerts[0].Message, "danger threshold")

	require.NoError(t, s.AcknowledgeAlert(ctx, alerts[0].ID))
	var acked models.Alert
	require.NoError(t, s.Db.Conn.First(&acked, alerts[0].ID).Error)
	assert.True(t, acked.Acknowledged)

	assert.ErrorIs(t, s.AcknowledgeAlert(ctx, 999999), backend.ErrNotFound)
}

func TestStepLogsAlerts(t *testing.T) {
	common.SetTestLoggerNop()

	s := getTestSim()
	ctx := context.Background()

	pigsty, err := s.CreatePigsty(ctx, models.Pigsty{
		Name:     uuid.NewString(),
		Capacity: 20,
		Thresholds: map[models.MetricKind]models.ThresholdBand{
			models.MetricLight: {DangerHigh: models.Float(-1000)},
		},
	})
	require.NoError(t, err)

	_, err = s.CreateDevice(ctx, models.Device{PigstyID: pigsty.ID, Kind: models.MetricLight})
	require.NoError(t, err)

	var buf bytes.Buffer
	common.SetTestCaptureLogger(&buf, zapcore.InfoLevel)
	require.NoError(t, s.Step(ctx, time.Now()))
	common.SetTestLoggerNop()

	logs := ParseLogs(&buf)
	var found, saved bool
	for _, entry := range logs {
		if entry["category"] != common.LoggerCategoryAlert {
			continue
		}
		switch entry["msg"] {
		case "Alert found":
			found = true
		case "Alert saved":
			saved = true
		}
	}
	assert.True(t, found)
	assert.True(t, saved)
}

func TestStepPrunesHistory(t *testing.T) {
	common.SetTestLoggerNop()

	s := getTestSim()
	ctx := context.Background()

	pigsty, err := s.CreatePigsty(ctx, models.Pigsty{Name: uuid.NewString(), Capacity: 20})
	require.NoError(t, err)

	base := time.Now().Add(-time.Hour)
	var readings []models.Reading
	for i := range historyLimit + 10 {
		readings = append(readings, models.Reading{
			PigstyID:    pigsty.ID,
			Timestamp:   base.Add(time.Duration(i) * time.Second),
			Temperature: models.Float(22),
		})
	}
	require.NoError(t, s.Db.Conn.Create(&readings).Error)

	require.NoError(t, s.Step(ctx, time.Now()))

	var count int64
	s.Db.Conn.Model(&models.Reading{}).Where("pigsty_id = ?", pigsty.ID).Count(&count)
	assert.Equal(t, int64(historyLimit), count)
}

func TestAlertMessage(t *testing.T) {
	band := models.ThresholdBand{
		WarnLow:    models.Float(20),
		WarnHigh:   models.Float(26),
		DangerLow:  models.Float(18),
		DangerHigh: models.Float(28),
	}

	assert.Equal(t, "Temperature 29.30°C exceeded danger threshold 28.00",
		alertMessage(models.MetricTemperature, 29.3, band))
	assert.Equal(t, "Temperature 17.00°C below danger threshold 18.00",
		alertMessage(models.MetricTemperature, 17, band))
	assert.Equal(t, "Temperature 26.50°C exceeded warning threshold 26.00",
		alertMessage(models.MetricTemperature, 26.5, band))
	assert.Equal(t, "Temperature 19.00°C below warning threshold 20.00",
		alertMessage(models.MetricTemperature, 19, band))
}
