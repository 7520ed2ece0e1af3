package dto

import (
	"time"

	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/models"
)

// RegisterRequest - регистрация; ADMIN через API не создается
type RegisterRequest struct {
	Email    string          `json:"email" form:"email" validate:"required,email"`
	Password string          `json:"password" form:"password" validate:"required,min=8"`
	Name     string          `json:"name" form:"name" validate:"required"`
	Role     models.UserRole `json:"role" form:"role" validate:"required,oneof=TALENT EMPLOYER USER"`

	// Для работодателя сразу заполняется профиль компании
	CompanyName string `json:"company_name,omitempty" form:"company_name"`
}

// LoginRequest принимает и JSON, и обычную HTML-форму
type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

type AuthResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      *models.User `json:"user"`
}
