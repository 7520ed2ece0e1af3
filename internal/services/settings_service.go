package services

import (
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/logger"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/models"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/repositories"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/services/dto"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/pkg/apperrors"
)

type SettingsService interface {
	Get(db *gorm.DB) (*models.SystemSettings, error)
	Save(db *gorm.DB, adminID string, req *dto.SettingsRequest) (*models.SystemSettings, error)
	GetPublic(db *gorm.DB) (*dto.PublicSettings, error)
}

type SettingsServiceImpl struct {
	settingsRepo repositories.SettingsRepository
}

func NewSettingsService(settingsRepo repositories.SettingsRepository) SettingsService {
	return &SettingsServiceImpl{settingsRepo: settingsRepo}
}

// Get - пустые шаблоны писем заменяются значениями по умолчанию
func (s *SettingsServiceImpl) Get(db *gorm.DB) (*models.SystemSettings, error) {
	settings, err := s.settingsRepo.Get(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	settings.EmailTemplates = datatypes.NewJSONType(settings.EmailTemplates.Data().WithDefaults())
	return settings, nil
}

// Save заменяет настройки целиком и увеличивает version
func (s *SettingsServiceImpl) Save(db *gorm.DB, adminID string, req *dto.SettingsRequest) (*models.SystemSettings, error) {
	var saved *models.SystemSettings
	err := db.Transaction(func(tx *gorm.DB) error {
		current, err := s.settingsRepo.Get(tx)
		if err != nil {
			return err
		}

		next := &models.SystemSettings{
			ID:                 models.SettingsID,
			Version:            current.Version + 1,
			SiteName:           strings.TrimSpace(req.SiteName),
			SupportEmail:       strings.TrimSpace(req.SupportEmail),
			TermsOfService:     req.TermsOfService,
			PrivacyPolicy:      req.PrivacyPolicy,
			RequireJobApproval: req.RequireJobApproval,
			SocialLinks:        datatypes.NewJSONType(req.SocialLinks),
			EmailTemplates:     datatypes.NewJSONType(req.EmailTemplates.WithDefaults()),
			UpdatedBy:          &adminID,
		}
		if err := s.settingsRepo.Save(tx, next); err != nil {
			return err
		}
		saved = next
		return nil
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(contextOf(db), "system settings saved", "version", saved.Version, "admin_id", adminID)
	return saved, nil
}

func (s *SettingsServiceImpl) GetPublic(db *gorm.DB) (*dto.PublicSettings, error) {
	settings, err := s.settingsRepo.Get(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.PublicSettings{
		SiteName:       settings.SiteName,
		SupportEmail:   settings.SupportEmail,
		TermsOfService: settings.TermsOfService,
		PrivacyPolicy:  settings.PrivacyPolicy,
		SocialLinks:    settings.SocialLinks.Data(),
	}, nil
}
