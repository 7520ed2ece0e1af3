package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type TalentProfile struct {
	BaseModel
	UserID string `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`

	// Личные данные
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	StageName   string     `json:"stage_name"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	Gender      string     `gorm:"type:varchar(20)" json:"gender"`
	Phone       string     `json:"phone"`
	City        string     `gorm:"index" json:"city"`
	Country     string     `json:"country"`
	Bio         string     `gorm:"type:text" json:"bio"`
	AvatarURL   string     `json:"avatar_url"`

	// Физические параметры
	HeightCm  *int   `json:"height_cm,omitempty"`
	WeightKg  *int   `json:"weight_kg,omitempty"`
	EyeColor  string `json:"eye_color"`
	HairColor string `json:"hair_color"`
	Ethnicity string `json:"ethnicity"`
	BodyType  string `json:"body_type"`

	// Профессиональные данные
	Skills            datatypes.JSONSlice[string] `json:"skills"`
	Languages         datatypes.JSONSlice[string] `json:"languages"`
	Categories        datatypes.JSONSlice[string] `json:"categories"`
	YearsOfExperience int                         `json:"years_of_experience"`
	HourlyRate        decimal.NullDecimal         `gorm:"type:numeric(14,2)" json:"hourly_rate"`

	IsPublic   bool `gorm:"not null;index" json:"is_public"`
	IsVerified bool `gorm:"not null" json:"is_verified"`
	Completion int  `gorm:"not null" json:"completion"`

	// Relations
	User           *User              `gorm:"foreignKey:UserID" json:"user,omitempty"`
	PortfolioItems []PortfolioItem    `gorm:"foreignKey:TalentProfileID" json:"portfolio_items,omitempty"`
	Credits        []ExperienceCredit `gorm:"foreignKey:TalentProfileID" json:"credits,omitempty"`
}

// Age - полных лет на момент now; nil, если дата рождения не указана
func (p *TalentProfile) Age(now time.Time) *int {
	if p.DateOfBirth == nil {
		return nil
	}
	dob := *p.DateOfBirth
	age := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		age--
	}
	return &age
}

type PortfolioItem struct {
	BaseModel
	TalentProfileID string        `gorm:"type:uuid;not null;index" json:"talent_profile_id"`
	Kind            PortfolioKind `gorm:"type:varchar(20);not null" json:"kind"`
	Title           string        `json:"title"`
	Description     string        `gorm:"type:text" json:"description"`
	URL             string        `gorm:"not null" json:"url"`
	OrderIndex      int           `json:"order_index"`
}

// ExperienceCredit - строка резюме: проект, роль, год
type ExperienceCredit struct {
	BaseModel
	TalentProfileID string `gorm:"type:uuid;not null;index" json:"talent_profile_id"`
	Title           string `gorm:"not null" json:"title"`
	Role            string `json:"role"`
	Company         string `json:"company"`
	Year            *int   `json:"year,omitempty"`
	Description     string `gorm:"type:text" json:"description"`
}
