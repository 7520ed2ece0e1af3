package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/models"
)

// JobRequest - создание и пошаговое редактирование вакансии.
// Publish=true при создании сразу публикует (или отправляет на модерацию).
type JobRequest struct {
	Title        string              `json:"title" validate:"required,max=200"`
	Description  string              `json:"description" validate:"max=10000"`
	Category     string              `json:"category" validate:"max=100"`
	JobType      string              `json:"job_type" validate:"max=30"`
	Location     string              `json:"location" validate:"max=200"`
	IsRemote     bool                `json:"is_remote"`
	BudgetMin    decimal.NullDecimal `json:"budget_min"`
	BudgetMax    decimal.NullDecimal `json:"budget_max"`
	Currency     string              `json:"currency" validate:"omitempty,len=3"`
	MinAge       *int                `json:"min_age" validate:"omitempty,min=0,max=120"`
	MaxAge       *int                `json:"max_age" validate:"omitempty,min=0,max=120"`
	Gender       string              `json:"gender" validate:"omitempty,is-gender"`
	Skills       []string            `json:"skills" validate:"omitempty,max=50,dive,required,max=50"`
	Requirements string              `json:"requirements" validate:"max=10000"`
	Deadline     *time.Time          `json:"deadline"`
	Publish      bool                `json:"publish"`
}

type JobStatusRequest struct {
	Status models.JobStatus `json:"status" validate:"required,is-job-status"`
}

// JobListQuery - публичный каталог и админский список
type JobListQuery struct {
	Search   string           `form:"search"`
	Category string           `form:"category"`
	Location string           `form:"location"`
	JobType  string           `form:"job_type"`
	Status   models.JobStatus `form:"status" validate:"omitempty,is-job-status"`
	Featured *bool            `form:"featured"`
}

// JobDetailResponse - вакансия глазами конкретного пользователя
type JobDetailResponse struct {
	*models.Job
	HasApplied bool `json:"has_applied"`
	IsOwner    bool `json:"is_owner"`
}
