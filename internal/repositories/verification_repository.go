package repositories

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/models"
)

var ErrVerificationNotFound = errors.New("verification request not found")

type VerificationRepository interface {
	FindByUserID(db *gorm.DB, userID string) (*models.VerificationRequest, error)
	FindByID(db *gorm.DB, id string) (*models.VerificationRequest, error)
	Upsert(db *gorm.DB, req *models.VerificationRequest) error
	Resolve(db *gorm.DB, id string, updates map[string]interface{}) error
	List(db *gorm.DB, status models.VerificationStatus, p Pagination) ([]models.VerificationRequest, int64, error)
	CountByStatus(db *gorm.DB, status models.VerificationStatus) (int64, error)
	DeleteByUser(db *gorm.DB, userID string) error
}

type VerificationRepositoryImpl struct{}

func NewVerificationRepository() VerificationRepository {
	return &VerificationRepositoryImpl{}
}

func (r *VerificationRepositoryImpl) FindByUserID(db *gorm.DB, userID string) (*models.VerificationRequest, error) {
	var req models.VerificationRequest
	if err := db.First(&req, "user_id = ?", userID).Error; err != nil {
		return nil, mapNotFound(err, ErrVerificationNotFound)
	}
	return &req, nil
}

func (r *VerificationRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.VerificationRequest, error) {
	var req models.VerificationRequest
	if err := db.Preload("User.EmployerProfile").First(&req, "id = ?", id).Error; err != nil {
		return nil, mapNotFound(err, ErrVerificationNotFound)
	}
	return &req, nil
}

// Upsert - у пользователя одна текущая заявка: повторная подача перезаписывает её поля
func (r *VerificationRepositoryImpl) Upsert(db *gorm.DB, req *models.VerificationRequest) error {
	err := db.Omit("User").Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"business_name", "registration_number", "document_urls", "notes",
			"status", "rejection_reason", "submitted_at", "reviewed_at", "reviewed_by", "updated_at",
		}),
	}).Create(req).Error
	if err != nil {
		return err
	}
	// При конфликте в строке остается старый id
	var stored models.VerificationRequest
	if err := db.First(&stored, "user_id = ?", req.UserID).Error; err != nil {
		return err
	}
	*req = stored
	return nil
}

// Resolve меняет заявку только пока она PENDING
func (r *VerificationRepositoryImpl) Resolve(db *gorm.DB, id string, updates map[string]interface{}) error {
	result := db.Model(&models.VerificationRequest{}).
		Where("id = ? AND status = ?", id, models.VerificationStatusPending).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		if _, err := r.FindByID(db, id); err != nil {
			return err
		}
		return ErrAlreadyResolved
	}
	return nil
}

func (r *VerificationRepositoryImpl) List(db *gorm.DB, status models.VerificationStatus, p Pagination) ([]models.VerificationRequest, int64, error) {
	query := db.Model(&models.VerificationRequest{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reqs []models.VerificationRequest
	err := query.Preload("User.EmployerProfile").
		Order("submitted_at DESC").
		Scopes(paginate(p)).
		Find(&reqs).Error
	return reqs, total, err
}

func (r *VerificationRepositoryImpl) CountByStatus(db *gorm.DB, status models.VerificationStatus) (int64, error) {
	var count int64
	err := db.Model(&models.VerificationRequest{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

func (r *VerificationRepositoryImpl) DeleteByUser(db *gorm.DB, userID string) error {
	return db.Where("user_id = ?", userID).Delete(&models.VerificationRequest{}).Error
}
