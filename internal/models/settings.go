package models

import (
	"time"

	"gorm.io/datatypes"
)

// SettingsID - у таблицы настроек ровно одна строка
const SettingsID uint = 1

type SystemSettings struct {
	ID                 uint                               `gorm:"primaryKey" json:"-"`
	Version            int                                `gorm:"not null" json:"version"`
	SiteName           string                             `json:"site_name"`
	SupportEmail       string                             `json:"support_email"`
	TermsOfService     string                             `gorm:"type:text" json:"terms_of_service"`
	PrivacyPolicy      string                             `gorm:"type:text" json:"privacy_policy"`
	RequireJobApproval bool                               `gorm:"not null" json:"require_job_approval"`
	SocialLinks        datatypes.JSONType[SocialLinks]    `json:"social_links"`
	EmailTemplates     datatypes.JSONType[EmailTemplates] `json:"email_templates"`
	UpdatedAt          time.Time                          `json:"updated_at"`
	UpdatedBy          *string                            `gorm:"type:uuid" json:"updated_by,omitempty"`
}

type SocialLinks struct {
	Facebook  string `json:"facebook"`
	Instagram string `json:"instagram"`
	Twitter   string `json:"twitter"`
	LinkedIn  string `json:"linkedin"`
	YouTube   string `json:"youtube"`
	TikTok    string `json:"tiktok"`
}

// EmailTemplate - тема и тело письма; тело рендерится text/template
type EmailTemplate struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// EmailTemplates - фиксированный набор ключей, неизвестные ключи не принимаются
type EmailTemplates struct {
	Welcome              EmailTemplate `json:"welcome"`
	ApplicationStatus    EmailTemplate `json:"application_status"`
	PayoutApproved       EmailTemplate `json:"payout_approved"`
	PayoutRejected       EmailTemplate `json:"payout_rejected"`
	VerificationApproved EmailTemplate `json:"verification_approved"`
	VerificationRejected EmailTemplate `json:"verification_rejected"`
	Announcement         EmailTemplate `json:"announcement"`
}

// DefaultEmailTemplates - тексты, которые используются, пока админ их не переопределил
func DefaultEmailTemplates() EmailTemplates {
	return EmailTemplates{
		Welcome: EmailTemplate{
			Subject: "Welcome to {{.SiteName}}",
			Body:    "Hi {{.Name}},\n\nYour account has been created. Complete your profile to get started.",
		},
		ApplicationStatus: EmailTemplate{
			Subject: "Your application for {{.JobTitle}}",
			Body:    "Hi {{.Name}},\n\nYour application status is now {{.Status}}.",
		},
		PayoutApproved: EmailTemplate{
			Subject: "Payout approved",
			Body:    "Hi {{.Name}},\n\nYour payout of {{.Amount}} has been approved.",
		},
		PayoutRejected: EmailTemplate{
			Subject: "Payout rejected",
			Body:    "Hi {{.Name}},\n\nYour payout of {{.Amount}} was rejected: {{.Reason}}. The amount has been returned to your wallet.",
		},
		VerificationApproved: EmailTemplate{
			Subject: "Your account is verified",
			Body:    "Hi {{.Name}},\n\nYour business verification has been approved.",
		},
		VerificationRejected: EmailTemplate{
			Subject: "Verification update",
			Body:    "Hi {{.Name}},\n\nYour verification request was rejected: {{.Reason}}.",
		},
		Announcement: EmailTemplate{
			Subject: "{{.Title}}",
			Body:    "Hi {{.Name}},\n\n{{.Message}}",
		},
	}
}

// WithDefaults заполняет пустые шаблоны значениями по умолчанию
func (t EmailTemplates) WithDefaults() EmailTemplates {
	d := DefaultEmailTemplates()
	fill := func(dst *EmailTemplate, def EmailTemplate) {
		if dst.Subject == "" {
			dst.Subject = def.Subject
		}
		if dst.Body == "" {
			dst.Body = def.Body
		}
	}
	fill(&t.Welcome, d.Welcome)
	fill(&t.ApplicationStatus, d.ApplicationStatus)
	fill(&t.PayoutApproved, d.PayoutApproved)
	fill(&t.PayoutRejected, d.PayoutRejected)
	fill(&t.VerificationApproved, d.VerificationApproved)
	fill(&t.VerificationRejected, d.VerificationRejected)
	fill(&t.Announcement, d.Announcement)
	return t
}

// DefaultSettings - настройки до первого сохранения
func DefaultSettings() SystemSettings {
	return SystemSettings{
		ID:             SettingsID,
		SiteName:       "Ambassadors Talent Agency",
		SocialLinks:    datatypes.NewJSONType(SocialLinks{}),
		EmailTemplates: datatypes.NewJSONType(DefaultEmailTemplates()),
	}
}
