package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/models"
)

type SettingsRepository interface {
	// Get возвращает сохраненные настройки или настройки по умолчанию
	Get(db *gorm.DB) (*models.SystemSettings, error)
	Save(db *gorm.DB, settings *models.SystemSettings) error
}

type SettingsRepositoryImpl struct{}

func NewSettingsRepository() SettingsRepository {
	return &SettingsRepositoryImpl{}
}

func (r *SettingsRepositoryImpl) Get(db *gorm.DB) (*models.SystemSettings, error) {
	var settings models.SystemSettings
	err := db.First(&settings, "id = ?", models.SettingsID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		defaults := models.DefaultSettings()
		return &defaults, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// Save всегда пишет в строку с id 1
func (r *SettingsRepositoryImpl) Save(db *gorm.DB, settings *models.SystemSettings) error {
	settings.ID = models.SettingsID
	return db.Save(settings).Error
}
