package dto

import "github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/models"

// SettingsRequest заменяет настройки целиком
type SettingsRequest struct {
	SiteName           string                `json:"site_name" validate:"required,max=100"`
	SupportEmail       string                `json:"support_email" validate:"omitempty,email"`
	TermsOfService     string                `json:"terms_of_service"`
	PrivacyPolicy      string                `json:"privacy_policy"`
	RequireJobApproval bool                  `json:"require_job_approval"`
	SocialLinks        models.SocialLinks    `json:"social_links"`
	EmailTemplates     models.EmailTemplates `json:"email_templates"`
}

// PublicSettings - то, что видно без авторизации
type PublicSettings struct {
	SiteName       string             `json:"site_name"`
	SupportEmail   string             `json:"support_email"`
	TermsOfService string             `json:"terms_of_service"`
	PrivacyPolicy  string             `json:"privacy_policy"`
	SocialLinks    models.SocialLinks `json:"social_links"`
}
