package services

import (
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/auth"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/logger"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/models"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/repositories"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/services/dto"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/utils"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/pkg/apperrors"
)

type AuthService interface {
	Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error)
	Me(db *gorm.DB, userID string) (*models.User, error)
	DeleteAccount(db *gorm.DB, userID string) error
}

type AuthServiceImpl struct {
	userRepo         repositories.UserRepository
	profileRepo      repositories.ProfileRepository
	jobRepo          repositories.JobRepository
	applicationRepo  repositories.ApplicationRepository
	favoritesRepo    repositories.FavoritesRepository
	financeRepo      repositories.FinanceRepository
	verificationRepo repositories.VerificationRepository
	supportRepo      repositories.SupportRepository
	notifier         *Notifier
	tokenTTL         time.Duration
}

func NewAuthService(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	jobRepo repositories.JobRepository,
	applicationRepo repositories.ApplicationRepository,
	favoritesRepo repositories.FavoritesRepository,
	financeRepo repositories.FinanceRepository,
	verificationRepo repositories.VerificationRepository,
	supportRepo repositories.SupportRepository,
	notifier *Notifier,
	tokenTTL time.Duration,
) AuthService {
	return &AuthServiceImpl{
		userRepo:         userRepo,
		profileRepo:      profileRepo,
		jobRepo:          jobRepo,
		applicationRepo:  applicationRepo,
		favoritesRepo:    favoritesRepo,
		financeRepo:      financeRepo,
		verificationRepo: verificationRepo,
		supportRepo:      supportRepo,
		notifier:         notifier,
		tokenTTL:         tokenTTL,
	}
}

// Register - пользователь и пустой профиль его роли создаются в одной транзакции
func (s *AuthServiceImpl) Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if req.Role == models.UserRoleAdmin || !req.Role.IsValid() {
		return nil, apperrors.ErrInvalidUserRole
	}
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ValidationError(map[string]string{"password": err.Error()})
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        utils.NormalizeEmail(req.Email),
		Name:         strings.TrimSpace(req.Name),
		PasswordHash: hash,
		Role:         req.Role,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.userRepo.Create(tx, user); err != nil {
			return err
		}

		switch user.Role {
		case models.UserRoleTalent:
			first, last, _ := strings.Cut(user.Name, " ")
			profile := &models.TalentProfile{UserID: user.ID, FirstName: first, LastName: strings.TrimSpace(last)}
			profile.Completion = CalculateCompletion(profile, 0)
			return s.profileRepo.CreateTalentProfile(tx, profile)
		case models.UserRoleEmployer:
			company := strings.TrimSpace(req.CompanyName)
			if company == "" {
				company = user.Name
			}
			return s.profileRepo.CreateEmployerProfile(tx, &models.EmployerProfile{UserID: user.ID, CompanyName: company})
		}
		return nil
	})
	if err != nil {
		return nil, mapError(err)
	}

	logger.CtxInfo(contextOf(db), "user registered", "user_id", user.ID, "role", user.Role)
	s.notifier.Notify(db, user, welcomeTemplate, nil)

	return s.issueToken(user)
}

// Login - пароль проверяется раньше блокировки, чтобы не раскрывать статус чужого аккаунта
func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(db, utils.NormalizeEmail(req.Email))
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if user.IsSuspended {
		logger.CtxWarn(contextOf(db), "suspended user tried to log in", "user_id", user.ID)
		return nil, apperrors.ErrUserSuspended
	}

	if err := s.userRepo.UpdateLastLogin(db, user.ID); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.issueToken(user)
}

func (s *AuthServiceImpl) Me(db *gorm.DB, userID string) (*models.User, error) {
	user, err := s.userRepo.FindWithProfiles(db, userID)
	if err != nil {
		return nil, mapError(err)
	}
	return user, nil
}

// DeleteAccount удаляет пользователя и всё, чем он владеет.
// Журнал транзакций и заявки на вывод остаются для финансовой отчетности.
func (s *AuthServiceImpl) DeleteAccount(db *gorm.DB, userID string) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		if _, err := s.userRepo.FindByID(tx, userID); err != nil {
			return err
		}

		payouts, err := s.financeRepo.ListUserPayouts(tx, userID)
		if err != nil {
			return err
		}
		for _, p := range payouts {
			if p.Status == models.PayoutStatusPending {
				return apperrors.ErrInvalidOperation("user", "Resolve pending payouts before deleting the account")
			}
		}

		if err := s.applicationRepo.DeleteByTalent(tx, userID); err != nil {
			return err
		}
		if err := s.jobRepo.DeleteByEmployer(tx, userID); err != nil {
			return err
		}
		if err := s.favoritesRepo.DeleteAllForEmployer(tx, userID); err != nil {
			return err
		}
		if err := s.verificationRepo.DeleteByUser(tx, userID); err != nil {
			return err
		}
		if err := s.supportRepo.DeleteTicketsByUser(tx, userID); err != nil {
			return err
		}
		if err := s.profileRepo.DeleteAllForUser(tx, userID); err != nil {
			return err
		}
		return s.userRepo.Delete(tx, userID)
	})
	if err != nil {
		return mapError(err)
	}

	logger.CtxInfo(contextOf(db), "account deleted", "user_id", userID)
	return nil
}

func (s *AuthServiceImpl) issueToken(user *models.User) (*dto.AuthResponse, error) {
	token, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.AuthResponse{
		Token:     token,
		ExpiresAt: time.Now().Add(s.tokenTTL),
		User:      user,
	}, nil
}

