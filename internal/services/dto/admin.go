package dto

import (
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/models"
)

type UserListQuery struct {
	Role      models.UserRole `form:"role" validate:"omitempty,is-user-role"`
	Suspended *bool           `form:"suspended"`
	Search    string          `form:"search"`
}

// PlatformStats - обзор платформы на главной странице админки
type PlatformStats struct {
	UsersByRole          map[models.UserRole]int64  `json:"users_by_role"`
	TotalUsers           int64                      `json:"total_users"`
	JobsByStatus         map[models.JobStatus]int64 `json:"jobs_by_status"`
	OpenTickets          int64                      `json:"open_tickets"`
	PendingPayouts       int64                      `json:"pending_payouts"`
	PendingVerifications int64                      `json:"pending_verifications"`
}
