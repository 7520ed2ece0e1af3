package services

import (
	"strings"

	"gorm.io/gorm"

	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/models"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/repositories"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/services/dto"
)

// FavoritesService - избранные таланты и шортлисты работодателя.
// talentID здесь - ID профиля таланта.
type FavoritesService interface {
	ToggleSaved(db *gorm.DB, employerID, talentID string) (*dto.SavedToggleResponse, error)
	ListSaved(db *gorm.DB, employerID string) ([]models.SavedTalent, error)

	CreateShortlist(db *gorm.DB, employerID string, req *dto.ShortlistRequest) (*models.Shortlist, error)
	UpdateShortlist(db *gorm.DB, employerID, shortlistID string, req *dto.ShortlistRequest) (*models.Shortlist, error)
	DeleteShortlist(db *gorm.DB, employerID, shortlistID string) error
	GetShortlist(db *gorm.DB, employerID, shortlistID string) (*models.Shortlist, error)
	ListShortlists(db *gorm.DB, employerID string) ([]models.Shortlist, error)
	AddToShortlist(db *gorm.DB, employerID, shortlistID string, req *dto.ShortlistItemRequest) (*models.Shortlist, error)
	RemoveFromShortlist(db *gorm.DB, employerID, shortlistID, talentID string) (*models.Shortlist, error)
}

type FavoritesServiceImpl struct {
	favoritesRepo repositories.FavoritesRepository
	profileRepo   repositories.ProfileRepository
}

func NewFavoritesService(favoritesRepo repositories.FavoritesRepository, profileRepo repositories.ProfileRepository) FavoritesService {
	return &FavoritesServiceImpl{favoritesRepo: favoritesRepo, profileRepo: profileRepo}
}

// ToggleSaved - повторный вызов возвращает исходное состояние
func (s *FavoritesServiceImpl) ToggleSaved(db *gorm.DB, employerID, talentID string) (*dto.SavedToggleResponse, error) {
	resp := &dto.SavedToggleResponse{TalentID: talentID}
	err := db.Transaction(func(tx *gorm.DB) error {
		if _, err := s.profileRepo.FindTalentByID(tx, talentID); err != nil {
			return err
		}

		saved, err := s.favoritesRepo.IsSaved(tx, employerID, talentID)
		if err != nil {
			return err
		}
		if saved {
			resp.Saved = false
			return s.favoritesRepo.Unsave(tx, employerID, talentID)
		}
		resp.Saved = true
		return s.favoritesRepo.Save(tx, &models.SavedTalent{EmployerID: employerID, TalentID: talentID})
	})
	if err != nil {
		return nil, mapError(err)
	}
	return resp, nil
}

func (s *FavoritesServiceImpl) ListSaved(db *gorm.DB, employerID string) ([]models.SavedTalent, error) {
	saved, err := s.favoritesRepo.ListSaved(db, employerID)
	return saved, mapError(err)
}

// === Shortlists ===

func (s *FavoritesServiceImpl) CreateShortlist(db *gorm.DB, employerID string, req *dto.ShortlistRequest) (*models.Shortlist, error) {
	list := &models.Shortlist{
		EmployerID:  employerID,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Items:       []models.ShortlistItem{},
	}
	if err := s.favoritesRepo.CreateShortlist(db, list); err != nil {
		return nil, mapError(err)
	}
	return list, nil
}

func (s *FavoritesServiceImpl) UpdateShortlist(db *gorm.DB, employerID, shortlistID string, req *dto.ShortlistRequest) (*models.Shortlist, error) {
	list, err := s.favoritesRepo.FindShortlist(db, employerID, shortlistID)
	if err != nil {
		return nil, mapError(err)
	}
	list.Name = strings.TrimSpace(req.Name)
	list.Description = req.Description
	if err := s.favoritesRepo.SaveShortlist(db, list); err != nil {
		return nil, mapError(err)
	}
	return list, nil
}

func (s *FavoritesServiceImpl) DeleteShortlist(db *gorm.DB, employerID, shortlistID string) error {
	return mapError(db.Transaction(func(tx *gorm.DB) error {
		return s.favoritesRepo.DeleteShortlist(tx, employerID, shortlistID)
	}))
}

func (s *FavoritesServiceImpl) GetShortlist(db *gorm.DB, employerID, shortlistID string) (*models.Shortlist, error) {
	list, err := s.favoritesRepo.FindShortlist(db, employerID, shortlistID)
	if err != nil {
		return nil, mapError(err)
	}
	return list, nil
}

func (s *FavoritesServiceImpl) ListShortlists(db *gorm.DB, employerID string) ([]models.Shortlist, error) {
	lists, err := s.favoritesRepo.ListShortlists(db, employerID)
	return lists, mapError(err)
}

// AddToShortlist - талант попадает в шортлист не больше одного раза
func (s *FavoritesServiceImpl) AddToShortlist(db *gorm.DB, employerID, shortlistID string, req *dto.ShortlistItemRequest) (*models.Shortlist, error) {
	err := db.Transaction(func(tx *gorm.DB) error {
		if _, err := s.favoritesRepo.FindShortlist(tx, employerID, shortlistID); err != nil {
			return err
		}
		if _, err := s.profileRepo.FindTalentByID(tx, req.TalentID); err != nil {
			return err
		}
		return s.favoritesRepo.AddItem(tx, &models.ShortlistItem{
			ShortlistID: shortlistID,
			TalentID:    req.TalentID,
			Note:        req.Note,
		})
	})
	if err != nil {
		return nil, mapError(err)
	}
	return s.GetShortlist(db, employerID, shortlistID)
}

func (s *FavoritesServiceImpl) RemoveFromShortlist(db *gorm.DB, employerID, shortlistID, talentID string) (*models.Shortlist, error) {
	err := db.Transaction(func(tx *gorm.DB) error {
		if _, err := s.favoritesRepo.FindShortlist(tx, employerID, shortlistID); err != nil {
			return err
		}
		return s.favoritesRepo.RemoveItem(tx, shortlistID, talentID)
	})
	if err != nil {
		return nil, mapError(err)
	}
	return s.GetShortlist(db, employerID, shortlistID)
}
