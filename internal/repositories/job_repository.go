package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/models"
)

var ErrJobNotFound = errors.New("job not found")

type JobRepository interface {
	Create(db *gorm.DB, job *models.Job) error
	FindByID(db *gorm.DB, id string) (*models.Job, error)
	Save(db *gorm.DB, job *models.Job) error
	Delete(db *gorm.DB, id string) error
	UpdateStatus(db *gorm.DB, id string, status models.JobStatus) error
	ToggleFeatured(db *gorm.DB, id string) error
	IncrementViews(db *gorm.DB, id string) error

	ListPublished(db *gorm.DB, filter JobFilter) ([]models.Job, int64, error)
	ListByEmployer(db *gorm.DB, employerID string, status models.JobStatus) ([]models.Job, error)
	ListAll(db *gorm.DB, filter JobFilter) ([]models.Job, int64, error)
	CountByStatus(db *gorm.DB) (map[models.JobStatus]int64, error)
	DeleteByEmployer(db *gorm.DB, employerID string) error
}

type JobFilter struct {
	Search   string
	Category string
	Location string
	JobType  string
	Status   models.JobStatus
	Featured *bool
	Pagination
}

type JobRepositoryImpl struct{}

func NewJobRepository() JobRepository {
	return &JobRepositoryImpl{}
}

func (r *JobRepositoryImpl) Create(db *gorm.DB, job *models.Job) error {
	return db.Create(job).Error
}

func (r *JobRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Job, error) {
	var job models.Job
	if err := db.Preload("Employer.EmployerProfile").First(&job, "id = ?", id).Error; err != nil {
		return nil, mapNotFound(err, ErrJobNotFound)
	}
	return &job, nil
}

func (r *JobRepositoryImpl) Save(db *gorm.DB, job *models.Job) error {
	return db.Omit("Employer", "Applications").Save(job).Error
}

// Delete удаляет вакансию вместе с откликами; вызывающий оборачивает в транзакцию
func (r *JobRepositoryImpl) Delete(db *gorm.DB, id string) error {
	if err := db.Where("job_id = ?", id).Delete(&models.Application{}).Error; err != nil {
		return err
	}
	result := db.Delete(&models.Job{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) UpdateStatus(db *gorm.DB, id string, status models.JobStatus) error {
	updates := map[string]interface{}{"status": status}
	if status == models.JobStatusPublished {
		updates["published_at"] = gorm.Expr("COALESCE(published_at, ?)", time.Now())
	}
	result := db.Model(&models.Job{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

// ToggleFeatured меняет только is_featured, статус модерации не трогает
func (r *JobRepositoryImpl) ToggleFeatured(db *gorm.DB, id string) error {
	result := db.Model(&models.Job{}).Where("id = ?", id).
		UpdateColumn("is_featured", gorm.Expr("NOT is_featured"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) IncrementViews(db *gorm.DB, id string) error {
	return db.Model(&models.Job{}).Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}

func (r *JobRepositoryImpl) applyFilter(db *gorm.DB, filter JobFilter) *gorm.DB {
	query := db.Model(&models.Job{}).Scopes(searchScope(filter.Search, "title", "description"))
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Location != "" {
		query = query.Where("location "+likeOp(db)+" ?", "%"+filter.Location+"%")
	}
	if filter.JobType != "" {
		query = query.Where("job_type = ?", filter.JobType)
	}
	if filter.Featured != nil {
		query = query.Where("is_featured = ?", *filter.Featured)
	}
	return query
}

// ListPublished - публичный список: только PUBLISHED, сначала избранные
func (r *JobRepositoryImpl) ListPublished(db *gorm.DB, filter JobFilter) ([]models.Job, int64, error) {
	query := r.applyFilter(db, filter).Where("status = ?", models.JobStatusPublished)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var jobs []models.Job
	err := query.Preload("Employer.EmployerProfile").
		Order("is_featured DESC, published_at DESC, created_at DESC").
		Scopes(paginate(filter.Pagination)).
		Find(&jobs).Error
	return jobs, total, err
}

func (r *JobRepositoryImpl) ListByEmployer(db *gorm.DB, employerID string, status models.JobStatus) ([]models.Job, error) {
	query := db.Where("employer_id = ?", employerID)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var jobs []models.Job
	err := query.Order("created_at DESC").Find(&jobs).Error
	return jobs, err
}

// ListAll - для модерации: любые статусы
func (r *JobRepositoryImpl) ListAll(db *gorm.DB, filter JobFilter) ([]models.Job, int64, error) {
	query := r.applyFilter(db, filter)
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var jobs []models.Job
	err := query.Preload("Employer.EmployerProfile").
		Order("created_at DESC").
		Scopes(paginate(filter.Pagination)).
		Find(&jobs).Error
	return jobs, total, err
}

func (r *JobRepositoryImpl) CountByStatus(db *gorm.DB) (map[models.JobStatus]int64, error) {
	var rows []struct {
		Status models.JobStatus
		Count  int64
	}
	err := db.Model(&models.Job{}).Select("status, COUNT(*) AS count").Group("status").Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[models.JobStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

// DeleteByEmployer удаляет все вакансии работодателя и отклики на них
func (r *JobRepositoryImpl) DeleteByEmployer(db *gorm.DB, employerID string) error {
	sub := db.Model(&models.Job{}).Select("id").Where("employer_id = ?", employerID)
	if err := db.Where("job_id IN (?)", sub).Delete(&models.Application{}).Error; err != nil {
		return err
	}
	return db.Where("employer_id = ?", employerID).Delete(&models.Job{}).Error
}
