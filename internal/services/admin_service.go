package services

import (
	"gorm.io/gorm"

	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/logger"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/models"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/repositories"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/services/dto"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/pkg/apperrors"
)

// AdminService - управление пользователями и обзор платформы
type AdminService interface {
	ListUsers(db *gorm.DB, query *dto.UserListQuery, page, pageSize int) (*dto.ListResponse[models.User], error)
	ToggleSuspend(db *gorm.DB, adminID, userID string) (*models.User, error)
	ToggleVerify(db *gorm.DB, adminID, userID string) (*models.User, error)
	GetPlatformStats(db *gorm.DB) (*dto.PlatformStats, error)
}

type AdminServiceImpl struct {
	userRepo         repositories.UserRepository
	profileRepo      repositories.ProfileRepository
	jobRepo          repositories.JobRepository
	financeRepo      repositories.FinanceRepository
	verificationRepo repositories.VerificationRepository
	supportRepo      repositories.SupportRepository
}

func NewAdminService(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	jobRepo repositories.JobRepository,
	financeRepo repositories.FinanceRepository,
	verificationRepo repositories.VerificationRepository,
	supportRepo repositories.SupportRepository,
) AdminService {
	return &AdminServiceImpl{
		userRepo:         userRepo,
		profileRepo:      profileRepo,
		jobRepo:          jobRepo,
		financeRepo:      financeRepo,
		verificationRepo: verificationRepo,
		supportRepo:      supportRepo,
	}
}

func (s *AdminServiceImpl) ListUsers(db *gorm.DB, query *dto.UserListQuery, page, pageSize int) (*dto.ListResponse[models.User], error) {
	users, total, err := s.userRepo.List(db, repositories.UserFilter{
		Role:        query.Role,
		IsSuspended: query.Suspended,
		Search:      query.Search,
		Pagination:  repositories.Pagination{Page: page, PageSize: pageSize},
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewListResponse(users, total, page, pageSize), nil
}

// ToggleSuspend - два вызова подряд возвращают исходное состояние
func (s *AdminServiceImpl) ToggleSuspend(db *gorm.DB, adminID, userID string) (*models.User, error) {
	if adminID == userID {
		return nil, apperrors.ErrCannotModifySelf
	}
	if err := s.userRepo.ToggleSuspended(db, userID); err != nil {
		return nil, mapError(err)
	}

	user, err := s.userRepo.FindWithProfiles(db, userID)
	if err != nil {
		return nil, mapError(err)
	}
	logger.CtxInfo(contextOf(db), "user suspension toggled",
		"user_id", userID, "suspended", user.IsSuspended, "admin_id", adminID)
	return user, nil
}

// ToggleVerify переключает значок на профиле по роли пользователя
func (s *AdminServiceImpl) ToggleVerify(db *gorm.DB, adminID, userID string) (*models.User, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		return nil, mapError(err)
	}

	switch user.Role {
	case models.UserRoleTalent:
		err = s.profileRepo.ToggleTalentVerified(db, userID)
	case models.UserRoleEmployer:
		err = s.profileRepo.ToggleEmployerVerified(db, userID)
	default:
		return nil, apperrors.ErrInvalidOperation("users", "Only talent and employer accounts can be verified")
	}
	if err != nil {
		return nil, mapError(err)
	}

	user, err = s.userRepo.FindWithProfiles(db, userID)
	if err != nil {
		return nil, mapError(err)
	}
	logger.CtxInfo(contextOf(db), "user verification toggled", "user_id", userID, "admin_id", adminID)
	return user, nil
}

func (s *AdminServiceImpl) GetPlatformStats(db *gorm.DB) (*dto.PlatformStats, error) {
	byRole, err := s.userRepo.CountByRole(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	byStatus, err := s.jobRepo.CountByStatus(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	openTickets, err := s.supportRepo.CountOpenTickets(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	pendingPayouts, _, err := s.financeRepo.PendingPayouts(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	pendingVerifications, err := s.verificationRepo.CountByStatus(db, models.VerificationStatusPending)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	var total int64
	for _, n := range byRole {
		total += n
	}
	return &dto.PlatformStats{
		UsersByRole:          byRole,
		TotalUsers:           total,
		JobsByStatus:         byStatus,
		OpenTickets:          openTickets,
		PendingPayouts:       pendingPayouts,
		PendingVerifications: pendingVerifications,
	}, nil
}
