package auth

import "github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/models"

// Разрешения, которые проверяет middleware.RequirePermission
const (
	PermProfileWrite       = "profile:write"
	PermJobsApply          = "jobs:apply"
	PermPayoutsRequest     = "payouts:request"
	PermJobsWrite          = "jobs:write"
	PermApplicationsReview = "applications:review"
	PermTalentsSave        = "talents:save"
	PermVerificationSubmit = "verification:submit"
	PermTicketsWrite       = "tickets:write"
	PermAdmin              = "system:admin"
)

// Permissions - разрешения по ролям; ADMIN получает всё через PermAdmin
var Permissions = map[models.UserRole][]string{
	models.UserRoleAdmin: {
		PermAdmin,
		PermTicketsWrite,
	},
	models.UserRoleTalent: {
		PermProfileWrite,
		PermJobsApply,
		PermPayoutsRequest,
		PermTicketsWrite,
	},
	models.UserRoleEmployer: {
		PermJobsWrite,
		PermApplicationsReview,
		PermTalentsSave,
		PermVerificationSubmit,
		PermTicketsWrite,
	},
	models.UserRoleUser: {
		PermTicketsWrite,
	},
}

// HasPermission проверяет, есть ли у роли указанное разрешение
func HasPermission(role models.UserRole, permission string) bool {
	for _, p := range Permissions[role] {
		if p == permission || p == PermAdmin {
			return true
		}
	}
	return false
}

// IsAdmin проверяет, является ли владелец токена администратором
func IsAdmin(claims *Claims) bool {
	return claims != nil && models.UserRole(claims.Role) == models.UserRoleAdmin
}
