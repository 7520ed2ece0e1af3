package models

type EmployerProfile struct {
	BaseModel
	UserID      string `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	CompanyName string `json:"company_name"`
	Industry    string `json:"industry"`
	Website     string `json:"website"`
	Phone       string `json:"phone"`
	City        string `json:"city"`
	Country     string `json:"country"`
	Description string `gorm:"type:text" json:"description"`
	LogoURL     string `json:"logo_url"`
	IsVerified  bool   `gorm:"not null" json:"is_verified"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// SavedTalent - "избранное" работодателя
type SavedTalent struct {
	BaseModel
	EmployerID string `gorm:"type:uuid;not null;uniqueIndex:idx_saved_employer_talent" json:"employer_id"`
	TalentID   string `gorm:"type:uuid;not null;uniqueIndex:idx_saved_employer_talent" json:"talent_id"`

	Talent *TalentProfile `gorm:"foreignKey:TalentID" json:"talent,omitempty"`
}

// Shortlist - именованная подборка талантов, например под конкретный кастинг
type Shortlist struct {
	BaseModel
	EmployerID  string `gorm:"type:uuid;not null;index" json:"employer_id"`
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`

	Items []ShortlistItem `gorm:"foreignKey:ShortlistID" json:"items"`
}

type ShortlistItem struct {
	BaseModel
	ShortlistID string `gorm:"type:uuid;not null;uniqueIndex:idx_shortlist_talent" json:"shortlist_id"`
	TalentID    string `gorm:"type:uuid;not null;uniqueIndex:idx_shortlist_talent" json:"talent_id"`
	Note        string `json:"note"`

	Talent *TalentProfile `gorm:"foreignKey:TalentID" json:"talent,omitempty"`
}
