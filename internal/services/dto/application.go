package dto

import "github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/models"

type ApplyRequest struct {
	CoverLetter string   `json:"cover_letter" validate:"max=5000"`
	Attachments []string `json:"attachments" validate:"omitempty,max=10,dive,url"`
}

type ApplicationStatusRequest struct {
	Status models.ApplicationStatus `json:"status" validate:"required,is-application-status"`
}

// BulkApplicationStatusRequest - одно изменение статуса для множества откликов
type BulkApplicationStatusRequest struct {
	IDs    []string                 `json:"ids" validate:"required,min=1,max=500,dive,required"`
	Status models.ApplicationStatus `json:"status" validate:"required,is-application-status"`
}

type BulkUpdateResponse struct {
	Updated int64                    `json:"updated"`
	Status  models.ApplicationStatus `json:"status"`
}

type ApplicationNoteRequest struct {
	Notes string `json:"notes" validate:"max=5000"`
}

type ApplicationListQuery struct {
	Status models.ApplicationStatus `form:"status" validate:"omitempty,is-application-status"`
}
