package dto

import "github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/models"

type SubmitVerificationRequest struct {
	BusinessName       string   `json:"business_name" validate:"required,max=200"`
	RegistrationNumber string   `json:"registration_number" validate:"max=100"`
	DocumentURLs       []string `json:"document_urls" validate:"required,min=1,max=10,dive,url"`
	Notes              string   `json:"notes" validate:"max=2000"`
}

// VerificationStatusResponse - состояние для страницы верификации работодателя
type VerificationStatusResponse struct {
	State           models.VerificationState    `json:"state"`
	RejectionReason string                      `json:"rejection_reason,omitempty"`
	Request         *models.VerificationRequest `json:"request,omitempty"`
}

type VerificationListQuery struct {
	Status models.VerificationStatus `form:"status" validate:"omitempty,is-verification-status"`
}
