package dto

import "time"

// Пустой slug выводится из заголовка

type CategoryRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Slug        string `json:"slug" validate:"omitempty,is-slug,max=120"`
	Description string `json:"description" validate:"max=1000"`
}

type BlogPostRequest struct {
	Title         string   `json:"title" validate:"required,max=200"`
	Slug          string   `json:"slug" validate:"omitempty,is-slug,max=220"`
	Excerpt       string   `json:"excerpt" validate:"max=500"`
	Content       string   `json:"content"`
	CoverImageURL string   `json:"cover_image_url" validate:"omitempty,url"`
	CategoryID    *string  `json:"category_id"`
	Tags          []string `json:"tags" validate:"omitempty,max=20,dive,required,max=50"`
	IsPublished   bool     `json:"is_published"`
	IsFeatured    bool     `json:"is_featured"`
}

type SuccessStoryRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Slug        string `json:"slug" validate:"omitempty,is-slug,max=220"`
	TalentName  string `json:"talent_name" validate:"max=200"`
	Summary     string `json:"summary" validate:"max=1000"`
	Content     string `json:"content"`
	ImageURL    string `json:"image_url" validate:"omitempty,url"`
	IsPublished bool   `json:"is_published"`
	IsFeatured  bool   `json:"is_featured"`
}

type EventRequest struct {
	Title           string     `json:"title" validate:"required,max=200"`
	Slug            string     `json:"slug" validate:"omitempty,is-slug,max=220"`
	Description     string     `json:"description"`
	Location        string     `json:"location" validate:"max=200"`
	StartsAt        time.Time  `json:"starts_at" validate:"required"`
	EndsAt          *time.Time `json:"ends_at"`
	ImageURL        string     `json:"image_url" validate:"omitempty,url"`
	RegistrationURL string     `json:"registration_url" validate:"omitempty,url"`
	IsPublished     bool       `json:"is_published"`
	IsFeatured      bool       `json:"is_featured"`
}

type ContentListQuery struct {
	Search     string `form:"search"`
	CategoryID string `form:"category_id"`
}
