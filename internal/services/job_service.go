package services

import (
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/logger"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/models"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/repositories"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/services/dto"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/pkg/apperrors"
)

// JobService - жизненный цикл вакансии: черновик, публикация, модерация, закрытие
type JobService interface {
	CreateJob(db *gorm.DB, employerID string, req *dto.JobRequest) (*models.Job, error)
	UpdateJob(db *gorm.DB, employerID, jobID string, req *dto.JobRequest) (*models.Job, error)
	SetStatus(db *gorm.DB, employerID, jobID string, status models.JobStatus) (*models.Job, error)
	DeleteJob(db *gorm.DB, actorID string, actorRole models.UserRole, jobID string) error
	DuplicateJob(db *gorm.DB, employerID, jobID string) (*models.Job, error)

	// Admin
	ToggleFeatured(db *gorm.DB, jobID string) (*models.Job, error)
	ModerateJob(db *gorm.DB, jobID string, status models.JobStatus) (*models.Job, error)
	ListAllJobs(db *gorm.DB, query *dto.JobListQuery, page, pageSize int) (*dto.ListResponse[models.Job], error)

	// Listings
	ListPublicJobs(db *gorm.DB, query *dto.JobListQuery, page, pageSize int) (*dto.ListResponse[models.Job], error)
	GetJob(db *gorm.DB, jobID, viewerID string, viewerRole models.UserRole) (*dto.JobDetailResponse, error)
	ListMyJobs(db *gorm.DB, employerID string, status models.JobStatus) ([]models.Job, error)
}

type JobServiceImpl struct {
	jobRepo         repositories.JobRepository
	applicationRepo repositories.ApplicationRepository
	settingsRepo    repositories.SettingsRepository
}

func NewJobService(
	jobRepo repositories.JobRepository,
	applicationRepo repositories.ApplicationRepository,
	settingsRepo repositories.SettingsRepository,
) JobService {
	return &JobServiceImpl{
		jobRepo:         jobRepo,
		applicationRepo: applicationRepo,
		settingsRepo:    settingsRepo,
	}
}

// CreateJob - DRAFT по умолчанию, PUBLISHED при publish=true.
// При включенной модерации публикация превращается в PENDING.
func (s *JobServiceImpl) CreateJob(db *gorm.DB, employerID string, req *dto.JobRequest) (*models.Job, error) {
	if err := validateJobRequest(req); err != nil {
		return nil, err
	}

	job := &models.Job{EmployerID: employerID, Status: models.JobStatusDraft}
	applyJobRequest(job, req)

	err := db.Transaction(func(tx *gorm.DB) error {
		if req.Publish {
			status, err := s.publishStatus(tx)
			if err != nil {
				return err
			}
			job.Status = status
		}
		if job.Status == models.JobStatusPublished {
			now := time.Now()
			job.PublishedAt = &now
		}
		return s.jobRepo.Create(tx, job)
	})
	if err != nil {
		return nil, mapError(err)
	}

	logger.CtxInfo(contextOf(db), "job created", "job_id", job.ID, "status", job.Status)
	return s.findJob(db, job.ID)
}

// UpdateJob - шаг пошагового редактирования; статус здесь не меняется
func (s *JobServiceImpl) UpdateJob(db *gorm.DB, employerID, jobID string, req *dto.JobRequest) (*models.Job, error) {
	if err := validateJobRequest(req); err != nil {
		return nil, err
	}

	job, err := s.ownedJob(db, employerID, jobID)
	if err != nil {
		return nil, err
	}

	applyJobRequest(job, req)
	if err := s.jobRepo.Save(db, job); err != nil {
		return nil, mapError(err)
	}
	return s.findJob(db, job.ID)
}

// SetStatus - владелец может выбрать только DRAFT, PUBLISHED или CLOSED
func (s *JobServiceImpl) SetStatus(db *gorm.DB, employerID, jobID string, status models.JobStatus) (*models.Job, error) {
	if !status.IsOwnerSettable() {
		return nil, apperrors.ErrOwnerStatusNotAllowed
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if _, err := s.ownedJob(tx, employerID, jobID); err != nil {
			return err
		}
		target := status
		if status == models.JobStatusPublished {
			var err error
			if target, err = s.publishStatus(tx); err != nil {
				return err
			}
		}
		return s.jobRepo.UpdateStatus(tx, jobID, target)
	})
	if err != nil {
		return nil, mapError(err)
	}
	return s.findJob(db, jobID)
}

// DeleteJob - владелец или админ; отклики удаляются в той же транзакции
func (s *JobServiceImpl) DeleteJob(db *gorm.DB, actorID string, actorRole models.UserRole, jobID string) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		job, err := s.jobRepo.FindByID(tx, jobID)
		if err != nil {
			return err
		}
		if actorRole != models.UserRoleAdmin && job.EmployerID != actorID {
			return apperrors.ErrInsufficientPermissions
		}
		return s.jobRepo.Delete(tx, jobID)
	})
	if err != nil {
		return mapError(err)
	}

	logger.CtxInfo(contextOf(db), "job deleted", "job_id", jobID, "actor_id", actorID)
	return nil
}

// DuplicateJob копирует все поля, кроме служебных: копия всегда DRAFT и не избранная
func (s *JobServiceImpl) DuplicateJob(db *gorm.DB, employerID, jobID string) (*models.Job, error) {
	src, err := s.ownedJob(db, employerID, jobID)
	if err != nil {
		return nil, err
	}

	dup := *src
	dup.BaseModel = models.BaseModel{}
	dup.Status = models.JobStatusDraft
	dup.IsFeatured = false
	dup.Views = 0
	dup.PublishedAt = nil
	dup.Employer = nil
	dup.Applications = nil
	dup.Skills = append([]string(nil), src.Skills...)

	if err := s.jobRepo.Create(db, &dup); err != nil {
		return nil, mapError(err)
	}
	return s.findJob(db, dup.ID)
}

// === Admin ===

// ToggleFeatured меняет только is_featured; статус модерации остается прежним
func (s *JobServiceImpl) ToggleFeatured(db *gorm.DB, jobID string) (*models.Job, error) {
	if err := s.jobRepo.ToggleFeatured(db, jobID); err != nil {
		return nil, mapError(err)
	}
	return s.findJob(db, jobID)
}

// ModerateJob - результат модерации только PUBLISHED или REJECTED, из любого статуса
func (s *JobServiceImpl) ModerateJob(db *gorm.DB, jobID string, status models.JobStatus) (*models.Job, error) {
	if !status.IsModerationResult() {
		return nil, apperrors.ErrInvalidModerationStatus
	}
	if err := s.jobRepo.UpdateStatus(db, jobID, status); err != nil {
		return nil, mapError(err)
	}
	logger.CtxInfo(contextOf(db), "job moderated", "job_id", jobID, "status", status)
	return s.findJob(db, jobID)
}

func (s *JobServiceImpl) ListAllJobs(db *gorm.DB, query *dto.JobListQuery, page, pageSize int) (*dto.ListResponse[models.Job], error) {
	jobs, total, err := s.jobRepo.ListAll(db, jobFilter(query, page, pageSize))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewListResponse(jobs, total, page, pageSize), nil
}

// === Listings ===

// ListPublicJobs - только PUBLISHED, черновики сюда не попадают никогда
func (s *JobServiceImpl) ListPublicJobs(db *gorm.DB, query *dto.JobListQuery, page, pageSize int) (*dto.ListResponse[models.Job], error) {
	filter := jobFilter(query, page, pageSize)
	filter.Status = ""

	jobs, total, err := s.jobRepo.ListPublished(db, filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewListResponse(jobs, total, page, pageSize), nil
}

// GetJob - неопубликованную вакансию видят только владелец и админ
func (s *JobServiceImpl) GetJob(db *gorm.DB, jobID, viewerID string, viewerRole models.UserRole) (*dto.JobDetailResponse, error) {
	job, err := s.findJob(db, jobID)
	if err != nil {
		return nil, err
	}

	isOwner := viewerID != "" && job.EmployerID == viewerID
	if job.Status != models.JobStatusPublished && !isOwner && viewerRole != models.UserRoleAdmin {
		return nil, apperrors.ErrJobNotFound
	}

	resp := &dto.JobDetailResponse{Job: job, IsOwner: isOwner}

	if !isOwner && job.Status == models.JobStatusPublished {
		if err := s.jobRepo.IncrementViews(db, job.ID); err != nil {
			logger.CtxWithError(contextOf(db), "failed to increment job views", err, "job_id", job.ID)
		}
	}

	if viewerRole == models.UserRoleTalent && viewerID != "" {
		applied, err := s.applicationRepo.Exists(db, job.ID, viewerID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		resp.HasApplied = applied
	}
	return resp, nil
}

func (s *JobServiceImpl) ListMyJobs(db *gorm.DB, employerID string, status models.JobStatus) ([]models.Job, error) {
	jobs, err := s.jobRepo.ListByEmployer(db, employerID, status)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return jobs, nil
}

// === Helpers ===

func (s *JobServiceImpl) findJob(db *gorm.DB, jobID string) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		return nil, mapError(err)
	}
	return job, nil
}

func (s *JobServiceImpl) ownedJob(db *gorm.DB, employerID, jobID string) (*models.Job, error) {
	job, err := s.findJob(db, jobID)
	if err != nil {
		return nil, err
	}
	if job.EmployerID != employerID {
		return nil, apperrors.ErrInsufficientPermissions
	}
	return job, nil
}

// publishStatus - PUBLISHED или PENDING, если в настройках включена модерация
func (s *JobServiceImpl) publishStatus(db *gorm.DB) (models.JobStatus, error) {
	settings, err := s.settingsRepo.Get(db)
	if err != nil {
		return "", err
	}
	if settings.RequireJobApproval {
		return models.JobStatusPending, nil
	}
	return models.JobStatusPublished, nil
}

func validateJobRequest(req *dto.JobRequest) error {
	if req.MinAge != nil && req.MaxAge != nil && *req.MinAge > *req.MaxAge {
		return apperrors.ErrInvalidAgeRange
	}
	if req.BudgetMin.Valid && req.BudgetMax.Valid && req.BudgetMin.Decimal.GreaterThan(req.BudgetMax.Decimal) {
		return apperrors.ValidationError(map[string]string{"budget_max": "Must be greater than or equal to budget_min"})
	}
	return nil
}

func applyJobRequest(job *models.Job, req *dto.JobRequest) {
	job.Title = strings.TrimSpace(req.Title)
	job.Description = req.Description
	job.Category = strings.TrimSpace(req.Category)
	job.JobType = strings.TrimSpace(req.JobType)
	job.Location = strings.TrimSpace(req.Location)
	job.IsRemote = req.IsRemote
	job.BudgetMin = req.BudgetMin
	job.BudgetMax = req.BudgetMax
	job.Currency = strings.ToUpper(req.Currency)
	if job.Currency == "" {
		job.Currency = models.DefaultCurrency
	}
	job.MinAge = req.MinAge
	job.MaxAge = req.MaxAge
	job.Gender = strings.ToLower(req.Gender)
	job.Skills = cleanList(req.Skills)
	job.Requirements = req.Requirements
	job.Deadline = req.Deadline
}

func jobFilter(query *dto.JobListQuery, page, pageSize int) repositories.JobFilter {
	return repositories.JobFilter{
		Search:     query.Search,
		Category:   query.Category,
		Location:   query.Location,
		JobType:    query.JobType,
		Status:     query.Status,
		Featured:   query.Featured,
		Pagination: repositories.Pagination{Page: page, PageSize: pageSize},
	}
}
