package repository

import (
	"nutrialarm/internal/models"

	"gorm.io/gorm"
)

type DeviceRepository interface {
	Upsert(dev *models.UserDevice) error
	FindEnabledByUserID(userID string) ([]models.UserDevice, error)
}

type deviceRepository struct {
	db *gorm.DB
}

func NewDeviceRepository(db *gorm.DB) DeviceRepository {
	return &deviceRepository{db}
}

func (r *deviceRepository) Upsert(dev *models.UserDevice) error {
	var existing models.UserDevice
	err := r.db.
		Where("user_id = ? AND token_hash = ?", dev.UserID, dev.TokenHash).
		First(&existing).Error
	if err == nil {
		existing.EndpointARN = dev.EndpointARN
		existing.Platform = dev.Platform
		existing.Enabled = true
		*dev = existing
		return r.db.Save(&existing).Error
	}
	return r.db.Create(dev).Error
}

func (r *deviceRepository) FindEnabledByUserID(userID string) ([]models.UserDevice, error) {
	var devices []models.UserDevice
	err := r.db.Where("user_id = ? AND enabled = ?", userID, true).Find(&devices).Error
	return devices, err
}
