package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/models"
)

// UpdateTalentProfileRequest - частичное обновление: nil значит "не менять"
type UpdateTalentProfileRequest struct {
	// Личные данные
	FirstName   *string    `json:"first_name" validate:"omitempty,max=100"`
	LastName    *string    `json:"last_name" validate:"omitempty,max=100"`
	StageName   *string    `json:"stage_name" validate:"omitempty,max=100"`
	DateOfBirth *time.Time `json:"date_of_birth"`
	Gender      *string    `json:"gender" validate:"omitempty,is-gender"`
	Phone       *string    `json:"phone" validate:"omitempty,max=30"`
	City        *string    `json:"city" validate:"omitempty,max=100"`
	Country     *string    `json:"country" validate:"omitempty,max=100"`
	Bio         *string    `json:"bio" validate:"omitempty,max=5000"`
	AvatarURL   *string    `json:"avatar_url" validate:"omitempty,url"`

	// Физические параметры
	HeightCm  *int    `json:"height_cm" validate:"omitempty,min=50,max=280"`
	WeightKg  *int    `json:"weight_kg" validate:"omitempty,min=20,max=400"`
	EyeColor  *string `json:"eye_color"`
	HairColor *string `json:"hair_color"`
	Ethnicity *string `json:"ethnicity"`
	BodyType  *string `json:"body_type"`

	// Профессиональные данные
	Skills            []string             `json:"skills" validate:"omitempty,max=50,dive,required,max=50"`
	Languages         []string             `json:"languages" validate:"omitempty,max=20,dive,required,max=50"`
	Categories        []string             `json:"categories" validate:"omitempty,max=20,dive,required,max=50"`
	YearsOfExperience *int                 `json:"years_of_experience" validate:"omitempty,min=0,max=80"`
	HourlyRate        *decimal.NullDecimal `json:"hourly_rate"`

	IsPublic *bool `json:"is_public"`
}

type PortfolioItemRequest struct {
	Kind        models.PortfolioKind `json:"kind" validate:"required,is-portfolio-kind"`
	Title       string               `json:"title" validate:"max=200"`
	Description string               `json:"description" validate:"max=2000"`
	URL         string               `json:"url" validate:"required,url"`
	OrderIndex  int                  `json:"order_index" validate:"min=0"`
}

type CreditRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Role        string `json:"role" validate:"max=200"`
	Company     string `json:"company" validate:"max=200"`
	Year        *int   `json:"year" validate:"omitempty,min=1900,max=2100"`
	Description string `json:"description" validate:"max=2000"`
}

// TalentSearchQuery - фильтры публичного каталога
type TalentSearchQuery struct {
	Search   string `form:"search"`
	Gender   string `form:"gender" validate:"omitempty,is-gender"`
	City     string `form:"city"`
	Skill    string `form:"skill"`
	Category string `form:"category"`
	MinAge   *int   `form:"min_age" validate:"omitempty,min=0,max=120"`
	MaxAge   *int   `form:"max_age" validate:"omitempty,min=0,max=120"`
}

// TalentCard - карточка в каталоге, без контактов
type TalentCard struct {
	ID          string   `json:"id"`
	DisplayName string   `json:"display_name"`
	AvatarURL   string   `json:"avatar_url"`
	City        string   `json:"city"`
	Gender      string   `json:"gender"`
	Age         *int     `json:"age,omitempty"`
	Skills      []string `json:"skills"`
	Categories  []string `json:"categories"`
	IsVerified  bool     `json:"is_verified"`
	Completion  int      `json:"completion"`
	CoverURL    string   `json:"cover_url,omitempty"`
}

type UpdateEmployerProfileRequest struct {
	CompanyName *string `json:"company_name" validate:"omitempty,min=1,max=200"`
	Industry    *string `json:"industry" validate:"omitempty,max=100"`
	Website     *string `json:"website" validate:"omitempty,url"`
	Phone       *string `json:"phone" validate:"omitempty,max=30"`
	City        *string `json:"city" validate:"omitempty,max=100"`
	Country     *string `json:"country" validate:"omitempty,max=100"`
	Description *string `json:"description" validate:"omitempty,max=5000"`
	LogoURL     *string `json:"logo_url" validate:"omitempty,url"`
}
