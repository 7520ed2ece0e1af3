package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Job - вакансия работодателя. EmployerID - ID пользователя-владельца.
type Job struct {
	BaseModel
	EmployerID   string                      `gorm:"type:uuid;not null;index" json:"employer_id"`
	Title        string                      `gorm:"not null" json:"title"`
	Description  string                      `gorm:"type:text" json:"description"`
	Category     string                      `gorm:"index" json:"category"`
	JobType      string                      `gorm:"type:varchar(30)" json:"job_type"`
	Location     string                      `gorm:"index" json:"location"`
	IsRemote     bool                        `gorm:"not null" json:"is_remote"`
	BudgetMin    decimal.NullDecimal         `gorm:"type:numeric(14,2)" json:"budget_min"`
	BudgetMax    decimal.NullDecimal         `gorm:"type:numeric(14,2)" json:"budget_max"`
	Currency     string                      `gorm:"type:varchar(3);not null" json:"currency"`
	MinAge       *int                        `json:"min_age,omitempty"`
	MaxAge       *int                        `json:"max_age,omitempty"`
	Gender       string                      `gorm:"type:varchar(20)" json:"gender"`
	Skills       datatypes.JSONSlice[string] `json:"skills"`
	Requirements string                      `gorm:"type:text" json:"requirements"`
	Deadline     *time.Time                  `json:"deadline,omitempty"`
	Status       JobStatus                   `gorm:"type:varchar(20);not null;index" json:"status"`
	IsFeatured   bool                        `gorm:"not null;index" json:"is_featured"`
	Views        int                         `gorm:"not null" json:"views"`
	PublishedAt  *time.Time                  `json:"published_at,omitempty"`

	Employer     *User         `gorm:"foreignKey:EmployerID" json:"employer,omitempty"`
	Applications []Application `gorm:"foreignKey:JobID" json:"applications,omitempty"`
}

// Application - отклик таланта. Пара (JobID, TalentID) уникальна на уровне схемы.
type Application struct {
	BaseModel
	JobID       string                      `gorm:"type:uuid;not null;uniqueIndex:idx_application_job_talent" json:"job_id"`
	TalentID    string                      `gorm:"type:uuid;not null;uniqueIndex:idx_application_job_talent;index" json:"talent_id"`
	Status      ApplicationStatus           `gorm:"type:varchar(20);not null;index" json:"status"`
	CoverLetter string                      `gorm:"type:text" json:"cover_letter"`
	Attachments datatypes.JSONSlice[string] `json:"attachments"`
	// Notes - приватные заметки работодателя, таланту не отдаются
	Notes string `gorm:"type:text" json:"notes,omitempty"`

	Job    *Job  `gorm:"foreignKey:JobID" json:"job,omitempty"`
	Talent *User `gorm:"foreignKey:TalentID" json:"talent,omitempty"`
}
