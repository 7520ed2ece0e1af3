package models

import (
	"time"

	"gorm.io/datatypes"
)

// VerificationRequest - одна текущая заявка на пользователя; повторная подача перезаписывает её.
type VerificationRequest struct {
	BaseModel
	UserID             string                      `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	BusinessName       string                      `json:"business_name"`
	RegistrationNumber string                      `json:"registration_number"`
	DocumentURLs       datatypes.JSONSlice[string] `json:"document_urls"`
	Notes              string                      `gorm:"type:text" json:"notes"`
	Status             VerificationStatus          `gorm:"type:varchar(20);not null;index" json:"status"`
	RejectionReason    string                      `json:"rejection_reason,omitempty"`
	SubmittedAt        time.Time                   `json:"submitted_at"`
	ReviewedAt         *time.Time                  `json:"reviewed_at,omitempty"`
	ReviewedBy         *string                     `gorm:"type:uuid" json:"reviewed_by,omitempty"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// VerificationState - то, что видит работодатель на странице верификации
type VerificationState string

const (
	VerificationStateVerified VerificationState = "VERIFIED"
	VerificationStatePending  VerificationState = "PENDING"
	VerificationStateRejected VerificationState = "REJECTED"
	VerificationStateNew      VerificationState = "NEW"
)
