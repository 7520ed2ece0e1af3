package services

import (
	"strings"

	"gorm.io/gorm"

	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/models"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/repositories"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/services/dto"
)

type EmployerProfileService interface {
	GetMyCompany(db *gorm.DB, userID string) (*models.EmployerProfile, error)
	UpdateCompany(db *gorm.DB, userID string, req *dto.UpdateEmployerProfileRequest) (*models.EmployerProfile, error)
}

type EmployerProfileServiceImpl struct {
	profileRepo repositories.ProfileRepository
}

func NewEmployerProfileService(profileRepo repositories.ProfileRepository) EmployerProfileService {
	return &EmployerProfileServiceImpl{profileRepo: profileRepo}
}

func (s *EmployerProfileServiceImpl) GetMyCompany(db *gorm.DB, userID string) (*models.EmployerProfile, error) {
	profile, err := s.profileRepo.FindEmployerByUserID(db, userID)
	if err != nil {
		return nil, mapError(err)
	}
	return profile, nil
}

func (s *EmployerProfileServiceImpl) UpdateCompany(db *gorm.DB, userID string, req *dto.UpdateEmployerProfileRequest) (*models.EmployerProfile, error) {
	profile, err := s.profileRepo.FindEmployerByUserID(db, userID)
	if err != nil {
		return nil, mapError(err)
	}

	set := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}
	set(&profile.CompanyName, req.CompanyName)
	set(&profile.Industry, req.Industry)
	set(&profile.Website, req.Website)
	set(&profile.Phone, req.Phone)
	set(&profile.City, req.City)
	set(&profile.Country, req.Country)
	set(&profile.Description, req.Description)
	set(&profile.LogoURL, req.LogoURL)

	if err := s.profileRepo.SaveEmployerProfile(db, profile); err != nil {
		return nil, mapError(err)
	}
	return profile, nil
}
