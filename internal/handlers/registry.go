package handlers

import (
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/services"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/validator"
)

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	AuthHandler            *AuthHandler
	ProfileHandler         *ProfileHandler
	EmployerProfileHandler *EmployerProfileHandler
	JobHandler             *JobHandler
	ApplicationHandler     *ApplicationHandler
	FavoritesHandler       *FavoritesHandler
	WalletHandler          *WalletHandler
	VerificationHandler    *VerificationHandler
	AdminHandler           *AdminHandler
	SupportHandler         *SupportHandler
	SettingsHandler        *SettingsHandler
	ContentHandler         *ContentHandler
}

// NewAppHandlers собирает хэндлеры поверх контейнера сервисов
func NewAppHandlers(svc *services.ServiceContainer, v *validator.Validator, loginPage string) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		AuthHandler:            NewAuthHandler(base, svc.AuthService, loginPage),
		ProfileHandler:         NewProfileHandler(base, svc.ProfileService),
		EmployerProfileHandler: NewEmployerProfileHandler(base, svc.EmployerProfileService),
		JobHandler:             NewJobHandler(base, svc.JobService),
		ApplicationHandler:     NewApplicationHandler(base, svc.ApplicationService),
		FavoritesHandler:       NewFavoritesHandler(base, svc.FavoritesService),
		WalletHandler:          NewWalletHandler(base, svc.WalletService),
		VerificationHandler:    NewVerificationHandler(base, svc.VerificationService),
		AdminHandler:           NewAdminHandler(base, svc.AdminService),
		SupportHandler:         NewSupportHandler(base, svc.SupportService, svc.AnnouncementService),
		SettingsHandler:        NewSettingsHandler(base, svc.SettingsService),
		ContentHandler:         NewContentHandler(base, svc.ContentService),
	}
}
