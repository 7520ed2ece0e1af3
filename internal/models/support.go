package models

import "time"

type SupportTicket struct {
	BaseModel
	UserID     string         `gorm:"type:uuid;not null;index" json:"user_id"`
	Subject    string         `gorm:"not null" json:"subject"`
	Message    string         `gorm:"type:text;not null" json:"message"`
	Category   string         `json:"category"`
	Status     TicketStatus   `gorm:"type:varchar(20);not null;index" json:"status"`
	Priority   TicketPriority `gorm:"type:varchar(20);not null;index" json:"priority"`
	AdminReply string         `gorm:"type:text" json:"admin_reply,omitempty"`
	ResolvedAt *time.Time     `json:"resolved_at,omitempty"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// Announcement - запись только добавляется; рассылка писем не откатывает её.
type Announcement struct {
	BaseModel
	Title        string   `gorm:"not null" json:"title"`
	Message      string   `gorm:"type:text;not null" json:"message"`
	Audience     Audience `gorm:"type:varchar(20);not null;index" json:"audience"`
	SendEmail    bool     `gorm:"not null" json:"send_email"`
	EmailsSent   int      `gorm:"not null" json:"emails_sent"`
	EmailsFailed int      `gorm:"not null" json:"emails_failed"`
	CreatedBy    string   `gorm:"type:uuid;not null" json:"created_by"`
}
