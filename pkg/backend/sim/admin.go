package sim

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"barnsight.xyz/pigsty-monitor-service/pkg/backend"
	"barnsight.xyz/pigsty-monitor-service/pkg/common"
	"barnsight.xyz/pigsty-monitor-service/pkg/models"
)

func (s *Sim) adminLogger() *zap.Logger {
	return common.GetLoggerWith(
		common.LoggerNameSimBackend,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryAdmin),
	)
}

func (s *Sim) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	var user models.User
	err := s.Db.Conn.WithContext(ctx).First(&user, "username = ?", username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, backend.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if subtle.ConstantTimeCompare([]byte(user.Password), []byte(password)) != 1 {
		return nil, backend.ErrInvalidCredentials
	}
	return &user, nil
}

func (s *Sim) CreateUser(ctx context.Context, input models.User) (*models.User, error) {
	if input.Name == "" || input.Username == "" || input.Password == "" {
		return nil, fmt.Errorf("name, username and password are required")
	}

	user := models.User{
		Name:     input.Name,
		Username: input.Username,
		Password: input.Password,
		Role:     models.RoleTechnician,
	}
	if err := s.Db.Conn.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, err
	}

	s.adminLogger().Info("User created", zap.Int64("id", user.ID), zap.String("username", user.Username))
	return &user, nil
}

// DeleteUser refuses to delete a user who is still some pigsty's technician.
// The referential check runs before anything is touched; a rejected delete
// leaves no partial state.
func (s *Sim) DeleteUser(ctx context.Context, id int64) error {
	conn := s.Db.Conn.WithContext(ctx)

	var assigned int64
	if err := conn.Model(&models.Pigsty{}).Where("technician_id = ?", id).Count(&assigned).Error; err != nil {
		return err
	}
	if assigned > 0 {
		return fmt.Errorf("%w: %d pigsties reference user %d", backend.ErrUserAssigned, assigned, id)
	}

	res := conn.Delete(&models.User{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return backend.ErrNotFound
	}

	s.adminLogger().Info("User deleted", zap.Int64("id", id))
	return nil
}

func (s *Sim) CreatePigsty(ctx context.Context, input models.Pigsty) (*models.Pigsty, error) {
	if input.Name == "" || input.Capacity <= 0 {
		return nil, fmt.Errorf("pigsty needs a name and a positive capacity")
	}

	pigsty := models.Pigsty{
		Name:         input.Name,
		Location:     input.Location,
		Capacity:     input.Capacity,
		TechnicianID: input.TechnicianID,
		Thresholds:   input.Thresholds,
	}
	if err := s.Db.Conn.WithContext(ctx).Create(&pigsty).Error; err != nil {
		return nil, err
	}

	s.adminLogger().Info("Pigsty created", zap.Int64("id", pigsty.ID), zap.String("name", pigsty.Name))
	return &pigsty, nil
}

func (s *Sim) UpdatePigsty(ctx context.Context, id int64, input models.Pigsty) (*models.Pigsty, error) {
	conn := s.Db.Conn.WithContext(ctx)

	var pigsty models.Pigsty
	if err := conn.First(&pigsty, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, backend.ErrNotFound
		}
		return nil, err
	}

	pigsty.Name = input.Name
	pigsty.Location = input.Location
	pigsty.Capacity = input.Capacity
	pigsty.TechnicianID = input.TechnicianID
	if err := conn.Save(&pigsty).Error; err != nil {
		return nil, err
	}

	s.adminLogger().Info("Pigsty updated", zap.Int64("id", pigsty.ID))
	return &pigsty, nil
}

func (s *Sim) UpdatePigstyThresholds(ctx context.Context, id int64, thresholds map[models.MetricKind]models.ThresholdBand) (*models.Pigsty, error) {
	conn := s.Db.Conn.WithContext(ctx)

	var pigsty models.Pigsty
	if err := conn.First(&pigsty, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, backend.ErrNotFound
		}
		return nil, err
	}

	pigsty.Thresholds = thresholds
	if err := conn.Save(&pigsty).Error; err != nil {
		return nil, err
	}

	s.adminLogger().Info("Pigsty thresholds updated", zap.Int64("id", pigsty.ID), zap.Reflect("thresholds", thresholds))
	return &pigsty, nil
}

// DeletePigsty cascades: the facility's devices, readings and alerts go with
// it, in one transaction.
func (s *Sim) DeletePigsty(ctx context.Context, id int64) error {
	err := s.Db.Conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.Pigsty{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return backend.ErrNotFound
		}
		if err := tx.Where("pigsty_id = ?", id).Delete(&models.Device{}).Error; err != nil {
			return err
		}
		if err := tx.Where("pigsty_id = ?", id).Delete(&models.Reading{}).Error; err != nil {
			return err
		}
		return tx.Where("pigsty_ref = ?", refOf(id)).Delete(&models.Alert{}).Error
	})
	if err != nil {
		return err
	}

	s.adminLogger().Info("Pigsty deleted with cascade", zap.Int64("id", id))
	return nil
}

func (s *Sim) CreateDevice(ctx context.Context, input models.Device) (*models.Device, error) {
	conn := s.Db.Conn.WithContext(ctx)

	var pigsty models.Pigsty
	if err := conn.First(&pigsty, input.PigstyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: pigsty %d", backend.ErrNotFound, input.PigstyID)
		}
		return nil, err
	}

	var existing int64
	err := conn.Model(&models.Device{}).
		Where("pigsty_id = ? AND kind = ?", input.PigstyID, input.Kind).
		Count(&existing).Error
	if err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, fmt.Errorf("%w: pigsty %d already senses %s", backend.ErrDuplicateDevice, input.PigstyID, input.Kind)
	}

	device := models.Device{
		PigstyID:     input.PigstyID,
		Kind:         input.Kind,
		Active:       true,
		ModelNumber:  input.ModelNumber,
		SerialNumber: input.SerialNumber,
	}
	if err := conn.Create(&device).Error; err != nil {
		return nil, err
	}
	device.PigstyRef = refOf(device.PigstyID)

	s.adminLogger().Info("Device created",
		zap.Int64("id", device.ID),
		zap.Int64("pigsty_id", device.PigstyID),
		zap.String("kind", string(device.Kind)))
	return &device, nil
}

// ToggleDevice flips the active flag; reading history is untouched.
func (s *Sim) ToggleDevice(ctx context.Context, id int64) (*models.Device, error) {
	conn := s.Db.Conn.WithContext(ctx)

	var device models.Device
	if err := conn.First(&device, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, backend.ErrNotFound
		}
		return nil, err
	}

	device.Active = !device.Active
	if err := conn.Save(&device).Error; err != nil {
		return nil, err
	}
	device.PigstyRef = refOf(device.PigstyID)

	s.adminLogger().Info("Device toggled", zap.Int64("id", device.ID), zap.Bool("active", device.Active))
	return &device, nil
}

func (s *Sim) DeleteDevice(ctx context.Context, id int64) error {
	res := s.Db.Conn.WithContext(ctx).Delete(&models.Device{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return backend.ErrNotFound
	}

	s.adminLogger().Info("Device deleted", zap.Int64("id", id))
	return nil
}

func (s *Sim) AcknowledgeAlert(ctx context.Context, id int64) error {
	res := s.Db.Conn.WithContext(ctx).
		Model(&models.Alert{}).
		Where("id = ?", id).
		Update("acknowledged", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return backend.ErrNotFound
	}
	return nil
}
