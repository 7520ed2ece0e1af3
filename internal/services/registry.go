package services

import (
	"time"

	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/email"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/repositories"
)

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	AuthService            AuthService
	ProfileService         ProfileService
	EmployerProfileService EmployerProfileService
	JobService             JobService
	ApplicationService     ApplicationService
	FavoritesService       FavoritesService
	WalletService          WalletService
	VerificationService    VerificationService
	AdminService           AdminService
	SupportService         SupportService
	AnnouncementService    AnnouncementService
	SettingsService        SettingsService
	ContentService         ContentService
}

// NewServiceContainer собирает репозитории и сервисы; provider может быть nil,
// тогда письма не отправляются.
func NewServiceContainer(provider email.Provider, tokenTTL time.Duration) *ServiceContainer {
	userRepo := repositories.NewUserRepository()
	profileRepo := repositories.NewProfileRepository()
	jobRepo := repositories.NewJobRepository()
	applicationRepo := repositories.NewApplicationRepository()
	favoritesRepo := repositories.NewFavoritesRepository()
	financeRepo := repositories.NewFinanceRepository()
	verificationRepo := repositories.NewVerificationRepository()
	supportRepo := repositories.NewSupportRepository()
	settingsRepo := repositories.NewSettingsRepository()
	contentRepo := repositories.NewContentRepository()

	notifier := NewNotifier(provider, settingsRepo)

	return &ServiceContainer{
		AuthService: NewAuthService(userRepo, profileRepo, jobRepo, applicationRepo,
			favoritesRepo, financeRepo, verificationRepo, supportRepo, notifier, tokenTTL),
		ProfileService:         NewProfileService(profileRepo),
		EmployerProfileService: NewEmployerProfileService(profileRepo),
		JobService:             NewJobService(jobRepo, applicationRepo, settingsRepo),
		ApplicationService:     NewApplicationService(applicationRepo, jobRepo, notifier),
		FavoritesService:       NewFavoritesService(favoritesRepo, profileRepo),
		WalletService:          NewWalletService(userRepo, financeRepo, notifier),
		VerificationService:    NewVerificationService(verificationRepo, profileRepo, notifier),
		AdminService:           NewAdminService(userRepo, profileRepo, jobRepo, financeRepo, verificationRepo, supportRepo),
		SupportService:         NewSupportService(supportRepo),
		AnnouncementService:    NewAnnouncementService(supportRepo, userRepo, notifier),
		SettingsService:        NewSettingsService(settingsRepo),
		ContentService:         NewContentService(contentRepo),
	}
}
