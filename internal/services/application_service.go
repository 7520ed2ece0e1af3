package services

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/email"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/logger"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/models"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/repositories"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/services/dto"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/pkg/apperrors"
)

// ApplicationService - отклики талантов и работа работодателя с ними
type ApplicationService interface {
	Apply(db *gorm.DB, talentID, jobID string, req *dto.ApplyRequest) (*models.Application, error)
	UpdateStatus(db *gorm.DB, employerID, applicationID string, status models.ApplicationStatus) (*models.Application, error)
	BulkUpdateStatus(db *gorm.DB, employerID string, ids []string, status models.ApplicationStatus) (*dto.BulkUpdateResponse, error)
	SaveNote(db *gorm.DB, employerID, applicationID, notes string) (*models.Application, error)

	ListForJob(db *gorm.DB, actorID string, actorRole models.UserRole, jobID string, status models.ApplicationStatus) ([]models.Application, error)
	ListMine(db *gorm.DB, talentID string) ([]models.Application, error)
}

type ApplicationServiceImpl struct {
	applicationRepo repositories.ApplicationRepository
	jobRepo         repositories.JobRepository
	notifier        *Notifier
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	notifier *Notifier,
) ApplicationService {
	return &ApplicationServiceImpl{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
		notifier:        notifier,
	}
}

// Apply - откликнуться можно только на PUBLISHED вакансию и только один раз
func (s *ApplicationServiceImpl) Apply(db *gorm.DB, talentID, jobID string, req *dto.ApplyRequest) (*models.Application, error) {
	var app *models.Application
	err := db.Transaction(func(tx *gorm.DB) error {
		job, err := s.jobRepo.FindByID(tx, jobID)
		if err != nil {
			return err
		}
		if job.Status != models.JobStatusPublished {
			return apperrors.ErrJobNotOpen
		}

		exists, err := s.applicationRepo.Exists(tx, jobID, talentID)
		if err != nil {
			return err
		}
		if exists {
			return repositories.ErrAlreadyApplied
		}

		app = &models.Application{
			JobID:       jobID,
			TalentID:    talentID,
			Status:      models.ApplicationStatusSubmitted,
			CoverLetter: req.CoverLetter,
			Attachments: cleanList(req.Attachments),
		}
		return s.applicationRepo.Create(tx, app)
	})
	if err != nil {
		return nil, mapError(err)
	}

	logger.CtxInfo(contextOf(db), "application submitted", "application_id", app.ID, "job_id", jobID)
	return app, nil
}

// UpdateStatus - любой из шести статусов из любого; HIRED не трогает других кандидатов
func (s *ApplicationServiceImpl) UpdateStatus(db *gorm.DB, employerID, applicationID string, status models.ApplicationStatus) (*models.Application, error) {
	if !status.IsValid() {
		return nil, apperrors.ValidationError(map[string]string{"status": "Invalid value '" + string(status) + "'"})
	}

	app, err := s.ownedApplication(db, employerID, applicationID)
	if err != nil {
		return nil, err
	}
	if err := s.applicationRepo.UpdateStatus(db, app.ID, status); err != nil {
		return nil, mapError(err)
	}

	updated, err := s.ownedApplication(db, employerID, applicationID)
	if err != nil {
		return nil, err
	}

	if app.Status != status {
		s.notifier.Notify(db, updated.Talent, applicationStatusTemplate, email.TemplateData{
			"JobTitle": updated.Job.Title,
			"Status":   string(status),
		})
	}
	return updated, nil
}

// BulkUpdateStatus - один UPDATE в транзакции. Если хоть один ID чужой или не существует,
// ничего не меняется, а в деталях ошибки перечислены проблемные ID.
func (s *ApplicationServiceImpl) BulkUpdateStatus(db *gorm.DB, employerID string, ids []string, status models.ApplicationStatus) (*dto.BulkUpdateResponse, error) {
	if !status.IsValid() {
		return nil, apperrors.ValidationError(map[string]string{"status": "Invalid value '" + string(status) + "'"})
	}
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return nil, apperrors.ValidationError(map[string]string{"ids": "This field is required"})
	}

	var updated int64
	err := db.Transaction(func(tx *gorm.DB) error {
		owned, err := s.applicationRepo.FindOwnedIDs(tx, ids, employerID)
		if err != nil {
			return err
		}
		if missing := difference(ids, owned); len(missing) > 0 {
			return apperrors.ErrApplicationsNotOwned.WithDetails(map[string]string{"ids": strings.Join(missing, ", ")})
		}

		updated, err = s.applicationRepo.BulkUpdateStatus(tx, ids, status)
		return err
	})
	if err != nil {
		return nil, mapError(err)
	}

	logger.CtxInfo(contextOf(db), "applications bulk updated", "count", updated, "status", status)
	return &dto.BulkUpdateResponse{Updated: updated, Status: status}, nil
}

// SaveNote - заметка не зависит от статуса и не видна таланту
func (s *ApplicationServiceImpl) SaveNote(db *gorm.DB, employerID, applicationID, notes string) (*models.Application, error) {
	if _, err := s.ownedApplication(db, employerID, applicationID); err != nil {
		return nil, err
	}
	if err := s.applicationRepo.UpdateNotes(db, applicationID, notes); err != nil {
		return nil, mapError(err)
	}
	return s.ownedApplication(db, employerID, applicationID)
}

func (s *ApplicationServiceImpl) ListForJob(db *gorm.DB, actorID string, actorRole models.UserRole, jobID string, status models.ApplicationStatus) ([]models.Application, error) {
	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		return nil, mapError(err)
	}
	if actorRole != models.UserRoleAdmin && job.EmployerID != actorID {
		return nil, apperrors.ErrInsufficientPermissions
	}

	apps, err := s.applicationRepo.ListByJob(db, jobID, status)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	for i := range apps {
		stripPrivateUser(apps[i].Talent)
	}
	return apps, nil
}

// ListMine - отклики таланта; заметки работодателя вырезаются
func (s *ApplicationServiceImpl) ListMine(db *gorm.DB, talentID string) ([]models.Application, error) {
	apps, err := s.applicationRepo.ListByTalent(db, talentID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	for i := range apps {
		apps[i].Notes = ""
		if apps[i].Job != nil {
			stripPrivateUser(apps[i].Job.Employer)
		}
	}
	return apps, nil
}

func (s *ApplicationServiceImpl) ownedApplication(db *gorm.DB, employerID, applicationID string) (*models.Application, error) {
	app, err := s.applicationRepo.FindByID(db, applicationID)
	if err != nil {
		return nil, mapError(err)
	}
	if app.Job == nil || app.Job.EmployerID != employerID {
		return nil, apperrors.ErrInsufficientPermissions
	}
	return app, nil
}

// stripPrivateUser убирает кошелек из вложенного пользователя
func stripPrivateUser(u *models.User) {
	if u == nil {
		return
	}
	u.Balance = decimal.Zero
	u.LastLoginAt = nil
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// difference - элементы all, которых нет в subset
func difference(all, subset []string) []string {
	in := make(map[string]bool, len(subset))
	for _, id := range subset {
		in[id] = true
	}
	var out []string
	for _, id := range all {
		if !in[id] {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}
