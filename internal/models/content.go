package models

import (
	"time"

	"gorm.io/datatypes"
)

type BlogCategory struct {
	BaseModel
	Name        string `gorm:"not null" json:"name"`
	Slug        string `gorm:"uniqueIndex;not null" json:"slug"`
	Description string `json:"description"`
}

type BlogPost struct {
	BaseModel
	Title         string                      `gorm:"not null" json:"title"`
	Slug          string                      `gorm:"uniqueIndex;not null" json:"slug"`
	Excerpt       string                      `json:"excerpt"`
	Content       string                      `gorm:"type:text" json:"content"`
	CoverImageURL string                      `json:"cover_image_url"`
	CategoryID    *string                     `gorm:"type:uuid;index" json:"category_id,omitempty"`
	Tags          datatypes.JSONSlice[string] `json:"tags"`
	AuthorID      string                      `gorm:"type:uuid;not null" json:"author_id"`
	IsPublished   bool                        `gorm:"not null;index" json:"is_published"`
	IsFeatured    bool                        `gorm:"not null" json:"is_featured"`
	PublishedAt   *time.Time                  `json:"published_at,omitempty"`

	Category *BlogCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

type SuccessStory struct {
	BaseModel
	Title       string     `gorm:"not null" json:"title"`
	Slug        string     `gorm:"uniqueIndex;not null" json:"slug"`
	TalentName  string     `json:"talent_name"`
	Summary     string     `json:"summary"`
	Content     string     `gorm:"type:text" json:"content"`
	ImageURL    string     `json:"image_url"`
	IsPublished bool       `gorm:"not null;index" json:"is_published"`
	IsFeatured  bool       `gorm:"not null" json:"is_featured"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
}

type Event struct {
	BaseModel
	Title           string     `gorm:"not null" json:"title"`
	Slug            string     `gorm:"uniqueIndex;not null" json:"slug"`
	Description     string     `gorm:"type:text" json:"description"`
	Location        string     `json:"location"`
	StartsAt        time.Time  `gorm:"not null;index" json:"starts_at"`
	EndsAt          *time.Time `json:"ends_at,omitempty"`
	ImageURL        string     `json:"image_url"`
	RegistrationURL string     `json:"registration_url"`
	IsPublished     bool       `gorm:"not null;index" json:"is_published"`
	IsFeatured      bool       `gorm:"not null" json:"is_featured"`
	PublishedAt     *time.Time `json:"published_at,omitempty"`
}
