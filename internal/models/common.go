package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel - общий первичный ключ и метки времени.
// ID генерируется приложением, схема одинаково работает в postgres и sqlite.
type BaseModel struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// All - список моделей для AutoMigrate (родители раньше детей)
func All() []interface{} {
	return []interface{}{
		&User{},
		&TalentProfile{},
		&PortfolioItem{},
		&ExperienceCredit{},
		&EmployerProfile{},
		&SavedTalent{},
		&Shortlist{},
		&ShortlistItem{},
		&Job{},
		&Application{},
		&PayoutRequest{},
		&Transaction{},
		&VerificationRequest{},
		&SupportTicket{},
		&Announcement{},
		&SystemSettings{},
		&BlogCategory{},
		&BlogPost{},
		&SuccessStory{},
		&Event{},
	}
}
