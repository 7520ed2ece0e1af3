package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	BaseModel
	Email        string          `gorm:"uniqueIndex;not null" json:"email"`
	Name         string          `gorm:"not null" json:"name"`
	PasswordHash string          `gorm:"not null" json:"-"`
	Role         UserRole        `gorm:"type:varchar(20);not null;index" json:"role"`
	IsSuspended  bool            `gorm:"not null" json:"is_suspended"`
	Balance      decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"balance"`
	LastLoginAt  *time.Time      `json:"last_login_at,omitempty"`

	// Relations
	TalentProfile   *TalentProfile   `gorm:"foreignKey:UserID" json:"talent_profile,omitempty"`
	EmployerProfile *EmployerProfile `gorm:"foreignKey:UserID" json:"employer_profile,omitempty"`
}

// HasProfileRole - для этих ролей при регистрации создается профиль
func (u *User) HasProfileRole() bool {
	return u.Role == UserRoleTalent || u.Role == UserRoleEmployer
}
