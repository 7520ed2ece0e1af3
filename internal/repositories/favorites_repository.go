package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/models"
)

var (
	ErrShortlistNotFound  = errors.New("shortlist not found")
	ErrAlreadyInShortlist = errors.New("talent already in shortlist")
)

// FavoritesRepository - сохраненные таланты и шортлисты работодателя
type FavoritesRepository interface {
	IsSaved(db *gorm.DB, employerID, talentID string) (bool, error)
	Save(db *gorm.DB, saved *models.SavedTalent) error
	Unsave(db *gorm.DB, employerID, talentID string) error
	ListSaved(db *gorm.DB, employerID string) ([]models.SavedTalent, error)

	CreateShortlist(db *gorm.DB, list *models.Shortlist) error
	FindShortlist(db *gorm.DB, employerID, id string) (*models.Shortlist, error)
	SaveShortlist(db *gorm.DB, list *models.Shortlist) error
	DeleteShortlist(db *gorm.DB, employerID, id string) error
	ListShortlists(db *gorm.DB, employerID string) ([]models.Shortlist, error)
	AddItem(db *gorm.DB, item *models.ShortlistItem) error
	RemoveItem(db *gorm.DB, shortlistID, talentID string) error

	DeleteAllForEmployer(db *gorm.DB, employerID string) error
}

type FavoritesRepositoryImpl struct{}

func NewFavoritesRepository() FavoritesRepository {
	return &FavoritesRepositoryImpl{}
}

func (r *FavoritesRepositoryImpl) IsSaved(db *gorm.DB, employerID, talentID string) (bool, error) {
	var count int64
	err := db.Model(&models.SavedTalent{}).
		Where("employer_id = ? AND talent_id = ?", employerID, talentID).
		Count(&count).Error
	return count > 0, err
}

func (r *FavoritesRepositoryImpl) Save(db *gorm.DB, saved *models.SavedTalent) error {
	return db.Create(saved).Error
}

func (r *FavoritesRepositoryImpl) Unsave(db *gorm.DB, employerID, talentID string) error {
	return db.Where("employer_id = ? AND talent_id = ?", employerID, talentID).
		Delete(&models.SavedTalent{}).Error
}

func (r *FavoritesRepositoryImpl) ListSaved(db *gorm.DB, employerID string) ([]models.SavedTalent, error) {
	var saved []models.SavedTalent
	err := db.Preload("Talent").Where("employer_id = ?", employerID).
		Order("created_at DESC").Find(&saved).Error
	return saved, err
}

// === Shortlists ===

func (r *FavoritesRepositoryImpl) CreateShortlist(db *gorm.DB, list *models.Shortlist) error {
	return db.Create(list).Error
}

func (r *FavoritesRepositoryImpl) FindShortlist(db *gorm.DB, employerID, id string) (*models.Shortlist, error) {
	var list models.Shortlist
	err := db.Preload("Items.Talent").
		First(&list, "id = ? AND employer_id = ?", id, employerID).Error
	if err != nil {
		return nil, mapNotFound(err, ErrShortlistNotFound)
	}
	return &list, nil
}

func (r *FavoritesRepositoryImpl) SaveShortlist(db *gorm.DB, list *models.Shortlist) error {
	return db.Omit("Items").Save(list).Error
}

func (r *FavoritesRepositoryImpl) DeleteShortlist(db *gorm.DB, employerID, id string) error {
	if err := db.Where("shortlist_id = ?", id).Delete(&models.ShortlistItem{}).Error; err != nil {
		return err
	}
	result := db.Delete(&models.Shortlist{}, "id = ? AND employer_id = ?", id, employerID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrShortlistNotFound
	}
	return nil
}

func (r *FavoritesRepositoryImpl) ListShortlists(db *gorm.DB, employerID string) ([]models.Shortlist, error) {
	var lists []models.Shortlist
	err := db.Preload("Items.Talent").Where("employer_id = ?", employerID).
		Order("created_at DESC").Find(&lists).Error
	return lists, err
}

func (r *FavoritesRepositoryImpl) AddItem(db *gorm.DB, item *models.ShortlistItem) error {
	if err := db.Create(item).Error; err != nil {
		if IsDuplicateKey(err) {
			return ErrAlreadyInShortlist
		}
		return err
	}
	return nil
}

func (r *FavoritesRepositoryImpl) RemoveItem(db *gorm.DB, shortlistID, talentID string) error {
	return db.Where("shortlist_id = ? AND talent_id = ?", shortlistID, talentID).
		Delete(&models.ShortlistItem{}).Error
}

func (r *FavoritesRepositoryImpl) DeleteAllForEmployer(db *gorm.DB, employerID string) error {
	sub := db.Model(&models.Shortlist{}).Select("id").Where("employer_id = ?", employerID)
	if err := db.Where("shortlist_id IN (?)", sub).Delete(&models.ShortlistItem{}).Error; err != nil {
		return err
	}
	if err := db.Where("employer_id = ?", employerID).Delete(&models.Shortlist{}).Error; err != nil {
		return err
	}
	return db.Where("employer_id = ?", employerID).Delete(&models.SavedTalent{}).Error
}
