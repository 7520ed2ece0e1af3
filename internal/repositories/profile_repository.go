package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/models"
)

var (
	ErrProfileNotFound       = errors.New("profile not found")
	ErrPortfolioItemNotFound = errors.New("portfolio item not found")
	ErrCreditNotFound        = errors.New("experience credit not found")
)

type ProfileRepository interface {
	// Talent profile
	CreateTalentProfile(db *gorm.DB, profile *models.TalentProfile) error
	FindTalentByUserID(db *gorm.DB, userID string) (*models.TalentProfile, error)
	FindTalentByID(db *gorm.DB, id string) (*models.TalentProfile, error)
	SaveTalentProfile(db *gorm.DB, profile *models.TalentProfile) error
	UpdateCompletion(db *gorm.DB, profileID string, completion int) error
	ToggleTalentVerified(db *gorm.DB, userID string) error
	SearchPublicTalents(db *gorm.DB, filter TalentFilter) ([]models.TalentProfile, int64, error)

	// Portfolio
	CreatePortfolioItem(db *gorm.DB, item *models.PortfolioItem) error
	FindPortfolioItem(db *gorm.DB, profileID, itemID string) (*models.PortfolioItem, error)
	DeletePortfolioItem(db *gorm.DB, profileID, itemID string) error
	CountPortfolioItems(db *gorm.DB, profileID string) (int64, error)

	// Experience credits
	CreateCredit(db *gorm.DB, credit *models.ExperienceCredit) error
	FindCredit(db *gorm.DB, profileID, creditID string) (*models.ExperienceCredit, error)
	SaveCredit(db *gorm.DB, credit *models.ExperienceCredit) error
	DeleteCredit(db *gorm.DB, profileID, creditID string) error

	// Employer profile
	CreateEmployerProfile(db *gorm.DB, profile *models.EmployerProfile) error
	FindEmployerByUserID(db *gorm.DB, userID string) (*models.EmployerProfile, error)
	SaveEmployerProfile(db *gorm.DB, profile *models.EmployerProfile) error
	SetEmployerVerified(db *gorm.DB, userID string, verified bool) error
	ToggleEmployerVerified(db *gorm.DB, userID string) error

	DeleteAllForUser(db *gorm.DB, userID string) error
}

// TalentFilter - фильтры публичного каталога талантов
type TalentFilter struct {
	Gender   string
	City     string
	Skill    string
	Category string
	MinAge   *int
	MaxAge   *int
	Search   string
	Pagination
}

type ProfileRepositoryImpl struct{}

func NewProfileRepository() ProfileRepository {
	return &ProfileRepositoryImpl{}
}

// === Talent profile ===

func (r *ProfileRepositoryImpl) CreateTalentProfile(db *gorm.DB, profile *models.TalentProfile) error {
	return db.Create(profile).Error
}

func (r *ProfileRepositoryImpl) FindTalentByUserID(db *gorm.DB, userID string) (*models.TalentProfile, error) {
	var profile models.TalentProfile
	err := db.Preload("PortfolioItems", func(db *gorm.DB) *gorm.DB {
		return db.Order("order_index ASC, created_at ASC")
	}).Preload("Credits", func(db *gorm.DB) *gorm.DB {
		return db.Order("year DESC, created_at DESC")
	}).First(&profile, "user_id = ?", userID).Error
	if err != nil {
		return nil, mapNotFound(err, ErrProfileNotFound)
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) FindTalentByID(db *gorm.DB, id string) (*models.TalentProfile, error) {
	var profile models.TalentProfile
	err := db.Preload("User").Preload("PortfolioItems").Preload("Credits").
		First(&profile, "id = ?", id).Error
	if err != nil {
		return nil, mapNotFound(err, ErrProfileNotFound)
	}
	return &profile, nil
}

// SaveTalentProfile сохраняет поля профиля; связи и значок верификации пишутся отдельно
func (r *ProfileRepositoryImpl) SaveTalentProfile(db *gorm.DB, profile *models.TalentProfile) error {
	return db.Omit("User", "PortfolioItems", "Credits", "IsVerified").Save(profile).Error
}

func (r *ProfileRepositoryImpl) UpdateCompletion(db *gorm.DB, profileID string, completion int) error {
	return db.Model(&models.TalentProfile{}).Where("id = ?", profileID).
		UpdateColumn("completion", completion).Error
}

func (r *ProfileRepositoryImpl) ToggleTalentVerified(db *gorm.DB, userID string) error {
	result := db.Model(&models.TalentProfile{}).Where("user_id = ?", userID).
		UpdateColumn("is_verified", gorm.Expr("NOT is_verified"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

// SearchPublicTalents - только публичные профили незаблокированных пользователей
func (r *ProfileRepositoryImpl) SearchPublicTalents(db *gorm.DB, filter TalentFilter) ([]models.TalentProfile, int64, error) {
	query := db.Model(&models.TalentProfile{}).
		Joins("JOIN users ON users.id = talent_profiles.user_id").
		Where("talent_profiles.is_public = ? AND users.is_suspended = ?", true, false).
		Scopes(
			searchScope(filter.Search, "talent_profiles.first_name", "talent_profiles.last_name", "talent_profiles.stage_name"),
			jsonArrayContains("talent_profiles.skills", filter.Skill),
			jsonArrayContains("talent_profiles.categories", filter.Category),
		)

	if filter.Gender != "" {
		query = query.Where("talent_profiles.gender = ?", filter.Gender)
	}
	if filter.City != "" {
		query = query.Where("talent_profiles.city "+likeOp(db)+" ?", filter.City)
	}

	// Возраст считается от даты рождения: старше minAge => родился не позже now-minAge
	now := time.Now()
	if filter.MinAge != nil {
		query = query.Where("talent_profiles.date_of_birth <= ?", now.AddDate(-*filter.MinAge, 0, 0))
	}
	if filter.MaxAge != nil {
		query = query.Where("talent_profiles.date_of_birth > ?", now.AddDate(-*filter.MaxAge-1, 0, 0))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var profiles []models.TalentProfile
	err := query.Preload("PortfolioItems").
		Order("talent_profiles.is_verified DESC, talent_profiles.completion DESC, talent_profiles.created_at DESC").
		Scopes(paginate(filter.Pagination)).
		Find(&profiles).Error
	return profiles, total, err
}

// === Portfolio ===

func (r *ProfileRepositoryImpl) CreatePortfolioItem(db *gorm.DB, item *models.PortfolioItem) error {
	return db.Create(item).Error
}

func (r *ProfileRepositoryImpl) FindPortfolioItem(db *gorm.DB, profileID, itemID string) (*models.PortfolioItem, error) {
	var item models.PortfolioItem
	err := db.First(&item, "id = ? AND talent_profile_id = ?", itemID, profileID).Error
	if err != nil {
		return nil, mapNotFound(err, ErrPortfolioItemNotFound)
	}
	return &item, nil
}

func (r *ProfileRepositoryImpl) DeletePortfolioItem(db *gorm.DB, profileID, itemID string) error {
	result := db.Delete(&models.PortfolioItem{}, "id = ? AND talent_profile_id = ?", itemID, profileID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPortfolioItemNotFound
	}
	return nil
}

func (r *ProfileRepositoryImpl) CountPortfolioItems(db *gorm.DB, profileID string) (int64, error) {
	var count int64
	err := db.Model(&models.PortfolioItem{}).Where("talent_profile_id = ?", profileID).Count(&count).Error
	return count, err
}

// === Experience credits ===

func (r *ProfileRepositoryImpl) CreateCredit(db *gorm.DB, credit *models.ExperienceCredit) error {
	return db.Create(credit).Error
}

func (r *ProfileRepositoryImpl) FindCredit(db *gorm.DB, profileID, creditID string) (*models.ExperienceCredit, error) {
	var credit models.ExperienceCredit
	err := db.First(&credit, "id = ? AND talent_profile_id = ?", creditID, profileID).Error
	if err != nil {
		return nil, mapNotFound(err, ErrCreditNotFound)
	}
	return &credit, nil
}

func (r *ProfileRepositoryImpl) SaveCredit(db *gorm.DB, credit *models.ExperienceCredit) error {
	return db.Save(credit).Error
}

func (r *ProfileRepositoryImpl) DeleteCredit(db *gorm.DB, profileID, creditID string) error {
	result := db.Delete(&models.ExperienceCredit{}, "id = ? AND talent_profile_id = ?", creditID, profileID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCreditNotFound
	}
	return nil
}

// === Employer profile ===

func (r *ProfileRepositoryImpl) CreateEmployerProfile(db *gorm.DB, profile *models.EmployerProfile) error {
	return db.Create(profile).Error
}

func (r *ProfileRepositoryImpl) FindEmployerByUserID(db *gorm.DB, userID string) (*models.EmployerProfile, error) {
	var profile models.EmployerProfile
	if err := db.First(&profile, "user_id = ?", userID).Error; err != nil {
		return nil, mapNotFound(err, ErrProfileNotFound)
	}
	return &profile, nil
}

// SaveEmployerProfile не пишет is_verified: его меняют только верификация и админ
func (r *ProfileRepositoryImpl) SaveEmployerProfile(db *gorm.DB, profile *models.EmployerProfile) error {
	return db.Omit("User", "IsVerified").Save(profile).Error
}

func (r *ProfileRepositoryImpl) SetEmployerVerified(db *gorm.DB, userID string, verified bool) error {
	result := db.Model(&models.EmployerProfile{}).Where("user_id = ?", userID).
		UpdateColumn("is_verified", verified)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (r *ProfileRepositoryImpl) ToggleEmployerVerified(db *gorm.DB, userID string) error {
	result := db.Model(&models.EmployerProfile{}).Where("user_id = ?", userID).
		UpdateColumn("is_verified", gorm.Expr("NOT is_verified"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

// DeleteAllForUser удаляет профиль таланта вместе с портфолио и кредитами, и профиль работодателя
func (r *ProfileRepositoryImpl) DeleteAllForUser(db *gorm.DB, userID string) error {
	sub := db.Model(&models.TalentProfile{}).Select("id").Where("user_id = ?", userID)

	if err := db.Where("talent_profile_id IN (?)", sub).Delete(&models.PortfolioItem{}).Error; err != nil {
		return err
	}
	if err := db.Where("talent_profile_id IN (?)", sub).Delete(&models.ExperienceCredit{}).Error; err != nil {
		return err
	}
	if err := db.Where("talent_id IN (?)", sub).Delete(&models.SavedTalent{}).Error; err != nil {
		return err
	}
	if err := db.Where("talent_id IN (?)", sub).Delete(&models.ShortlistItem{}).Error; err != nil {
		return err
	}
	if err := db.Where("user_id = ?", userID).Delete(&models.TalentProfile{}).Error; err != nil {
		return err
	}
	return db.Where("user_id = ?", userID).Delete(&models.EmployerProfile{}).Error
}
