package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction - строка журнала. Строки только добавляются, никогда не обновляются.
type Transaction struct {
	BaseModel
	UserID          string            `gorm:"type:uuid;not null;index" json:"user_id"`
	Type            TransactionType   `gorm:"type:varchar(20);not null;index" json:"type"`
	Status          TransactionStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	Amount          decimal.Decimal   `gorm:"type:numeric(14,2);not null" json:"amount"`
	Currency        string            `gorm:"type:varchar(3);not null" json:"currency"`
	Reference       string            `gorm:"uniqueIndex;not null" json:"reference"`
	Description     string            `json:"description"`
	PayoutRequestID *string           `gorm:"type:uuid;index" json:"payout_request_id,omitempty"`
	RecordedBy      *string           `gorm:"type:uuid" json:"recorded_by,omitempty"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

type PayoutRequest struct {
	BaseModel
	UserID            string          `gorm:"type:uuid;not null;index" json:"user_id"`
	Amount            decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"amount"`
	Currency          string          `gorm:"type:varchar(3);not null" json:"currency"`
	BankName          string          `gorm:"not null" json:"bank_name"`
	AccountNumber     string          `gorm:"not null" json:"account_number"`
	AccountName       string          `gorm:"not null" json:"account_name"`
	Status            PayoutStatus    `gorm:"type:varchar(20);not null;index" json:"status"`
	RejectionReason   string          `json:"rejection_reason,omitempty"`
	TransferReference string          `json:"transfer_reference,omitempty"`
	ProcessedAt       *time.Time      `json:"processed_at,omitempty"`
	ProcessedBy       *string         `gorm:"type:uuid" json:"processed_by,omitempty"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// DefaultCurrency - все суммы платформы в наирах
const DefaultCurrency = "NGN"
