package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/models"
)

var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrAlreadyApplied      = errors.New("application already exists")
)

type ApplicationRepository interface {
	Create(db *gorm.DB, app *models.Application) error
	FindByID(db *gorm.DB, id string) (*models.Application, error)
	Exists(db *gorm.DB, jobID, talentID string) (bool, error)
	UpdateStatus(db *gorm.DB, id string, status models.ApplicationStatus) error
	UpdateNotes(db *gorm.DB, id, notes string) error

	// Bulk operations
	FindOwnedIDs(db *gorm.DB, ids []string, employerID string) ([]string, error)
	BulkUpdateStatus(db *gorm.DB, ids []string, status models.ApplicationStatus) (int64, error)

	ListByJob(db *gorm.DB, jobID string, status models.ApplicationStatus) ([]models.Application, error)
	ListByTalent(db *gorm.DB, talentID string) ([]models.Application, error)
	AppliedJobIDs(db *gorm.DB, talentID string, jobIDs []string) (map[string]bool, error)
	DeleteByTalent(db *gorm.DB, talentID string) error
}

type ApplicationRepositoryImpl struct{}

func NewApplicationRepository() ApplicationRepository {
	return &ApplicationRepositoryImpl{}
}

// Create опирается на уникальный индекс (job_id, talent_id): гонка двух откликов
// заканчивается ErrAlreadyApplied для второго.
func (r *ApplicationRepositoryImpl) Create(db *gorm.DB, app *models.Application) error {
	if err := db.Create(app).Error; err != nil {
		if IsDuplicateKey(err) {
			return ErrAlreadyApplied
		}
		return err
	}
	return nil
}

func (r *ApplicationRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Application, error) {
	var app models.Application
	if err := db.Preload("Job").Preload("Talent").First(&app, "id = ?", id).Error; err != nil {
		return nil, mapNotFound(err, ErrApplicationNotFound)
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) Exists(db *gorm.DB, jobID, talentID string) (bool, error) {
	var count int64
	err := db.Model(&models.Application{}).
		Where("job_id = ? AND talent_id = ?", jobID, talentID).
		Count(&count).Error
	return count > 0, err
}

func (r *ApplicationRepositoryImpl) UpdateStatus(db *gorm.DB, id string, status models.ApplicationStatus) error {
	result := db.Model(&models.Application{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

func (r *ApplicationRepositoryImpl) UpdateNotes(db *gorm.DB, id, notes string) error {
	result := db.Model(&models.Application{}).Where("id = ?", id).Update("notes", notes)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

// FindOwnedIDs возвращает те ID из ids, которые относятся к вакансиям работодателя
func (r *ApplicationRepositoryImpl) FindOwnedIDs(db *gorm.DB, ids []string, employerID string) ([]string, error) {
	var owned []string
	err := db.Model(&models.Application{}).
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Where("applications.id IN ? AND jobs.employer_id = ?", ids, employerID).
		Pluck("applications.id", &owned).Error
	return owned, err
}

// BulkUpdateStatus - один UPDATE по множеству ID; строки вне множества не меняются
func (r *ApplicationRepositoryImpl) BulkUpdateStatus(db *gorm.DB, ids []string, status models.ApplicationStatus) (int64, error) {
	result := db.Model(&models.Application{}).Where("id IN ?", ids).Update("status", status)
	return result.RowsAffected, result.Error
}

func (r *ApplicationRepositoryImpl) ListByJob(db *gorm.DB, jobID string, status models.ApplicationStatus) ([]models.Application, error) {
	query := db.Preload("Talent.TalentProfile").Where("job_id = ?", jobID)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var apps []models.Application
	err := query.Order("created_at DESC").Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepositoryImpl) ListByTalent(db *gorm.DB, talentID string) ([]models.Application, error) {
	var apps []models.Application
	err := db.Preload("Job.Employer.EmployerProfile").
		Where("talent_id = ?", talentID).
		Order("created_at DESC").
		Find(&apps).Error
	return apps, err
}

// AppliedJobIDs - на какие из jobIDs талант уже откликнулся
func (r *ApplicationRepositoryImpl) AppliedJobIDs(db *gorm.DB, talentID string, jobIDs []string) (map[string]bool, error) {
	applied := make(map[string]bool)
	if len(jobIDs) == 0 {
		return applied, nil
	}
	var ids []string
	err := db.Model(&models.Application{}).
		Where("talent_id = ? AND job_id IN ?", talentID, jobIDs).
		Pluck("job_id", &ids).Error
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		applied[id] = true
	}
	return applied, nil
}

func (r *ApplicationRepositoryImpl) DeleteByTalent(db *gorm.DB, talentID string) error {
	return db.Where("talent_id = ?", talentID).Delete(&models.Application{}).Error
}
