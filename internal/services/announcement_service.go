package services

import (
	"strings"

	"gorm.io/gorm"

	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/email"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/logger"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/models"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/repositories"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/services/dto"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/pkg/apperrors"
)

const userAnnouncementsLimit = 20

type AnnouncementService interface {
	Create(db *gorm.DB, adminID string, req *dto.CreateAnnouncementRequest) (*models.Announcement, error)
	ListAll(db *gorm.DB, page, pageSize int) (*dto.ListResponse[models.Announcement], error)
	ListForRole(db *gorm.DB, role models.UserRole) ([]models.Announcement, error)
}

type AnnouncementServiceImpl struct {
	supportRepo repositories.SupportRepository
	userRepo    repositories.UserRepository
	notifier    *Notifier
}

func NewAnnouncementService(
	supportRepo repositories.SupportRepository,
	userRepo repositories.UserRepository,
	notifier *Notifier,
) AnnouncementService {
	return &AnnouncementServiceImpl{
		supportRepo: supportRepo,
		userRepo:    userRepo,
		notifier:    notifier,
	}
}

// Create сохраняет объявление до рассылки. Ошибки отправки только считаются,
// запись объявления остается в любом случае.
func (s *AnnouncementServiceImpl) Create(db *gorm.DB, adminID string, req *dto.CreateAnnouncementRequest) (*models.Announcement, error) {
	if !req.Audience.IsValid() {
		return nil, apperrors.NewBadRequestError("Invalid audience")
	}

	a := &models.Announcement{
		Title:     strings.TrimSpace(req.Title),
		Message:   strings.TrimSpace(req.Message),
		Audience:  req.Audience,
		SendEmail: req.SendEmail,
		CreatedBy: adminID,
	}
	if err := s.supportRepo.CreateAnnouncement(db, a); err != nil {
		return nil, apperrors.InternalError(err)
	}
	ctx := contextOf(db)
	logger.CtxInfo(ctx, "announcement created", "announcement_id", a.ID, "audience", a.Audience)

	if !a.SendEmail {
		return a, nil
	}

	recipients, err := s.userRepo.FindActiveByRoles(db, audienceRoles(a.Audience))
	if err != nil {
		logger.CtxWithError(ctx, "failed to load announcement recipients", err, "announcement_id", a.ID)
		return a, nil
	}

	sent, failed, err := s.notifier.SendAll(db, recipients, announcementTemplate, email.TemplateData{
		"Title":   a.Title,
		"Message": a.Message,
	})
	if err != nil {
		logger.CtxWithError(ctx, "announcement fan-out aborted", err, "announcement_id", a.ID)
		failed = len(recipients)
	}

	a.EmailsSent, a.EmailsFailed = sent, failed
	if err := s.supportRepo.UpdateDeliveryCounts(db, a.ID, sent, failed); err != nil {
		logger.CtxWithError(ctx, "failed to store delivery counts", err, "announcement_id", a.ID)
	}
	logger.CtxInfo(ctx, "announcement delivered", "announcement_id", a.ID, "sent", sent, "failed", failed)
	return a, nil
}

func (s *AnnouncementServiceImpl) ListAll(db *gorm.DB, page, pageSize int) (*dto.ListResponse[models.Announcement], error) {
	items, total, err := s.supportRepo.ListAnnouncements(db, repositories.Pagination{Page: page, PageSize: pageSize})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewListResponse(items, total, page, pageSize), nil
}

// ListForRole - объявления для ALL и для аудитории роли
func (s *AnnouncementServiceImpl) ListForRole(db *gorm.DB, role models.UserRole) ([]models.Announcement, error) {
	items, err := s.supportRepo.ListAnnouncementsFor(db, roleAudience(role), userAnnouncementsLimit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return orEmpty(items), nil
}

// audienceRoles - nil означает всех пользователей
func audienceRoles(a models.Audience) []models.UserRole {
	switch a {
	case models.AudienceTalent:
		return []models.UserRole{models.UserRoleTalent}
	case models.AudienceEmployer:
		return []models.UserRole{models.UserRoleEmployer}
	}
	return nil
}

func roleAudience(role models.UserRole) models.Audience {
	switch role {
	case models.UserRoleTalent:
		return models.AudienceTalent
	case models.UserRoleEmployer:
		return models.AudienceEmployer
	}
	return models.AudienceAll
}
