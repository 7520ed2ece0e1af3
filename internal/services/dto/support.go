package dto

import "github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/models"

type CreateTicketRequest struct {
	Subject  string                `json:"subject" validate:"required,max=200"`
	Message  string                `json:"message" validate:"required,max=10000"`
	Category string                `json:"category" validate:"max=50"`
	Priority models.TicketPriority `json:"priority" validate:"omitempty,is-ticket-priority"`
}

// UpdateTicketRequest - админ может выставить любой статус в любом порядке
type UpdateTicketRequest struct {
	Status     models.TicketStatus    `json:"status" validate:"required,is-ticket-status"`
	Priority   *models.TicketPriority `json:"priority" validate:"omitempty,is-ticket-priority"`
	AdminReply *string                `json:"admin_reply" validate:"omitempty,max=10000"`
}

type TicketListQuery struct {
	Status   models.TicketStatus   `form:"status" validate:"omitempty,is-ticket-status"`
	Priority models.TicketPriority `form:"priority" validate:"omitempty,is-ticket-priority"`
}

type CreateAnnouncementRequest struct {
	Title     string          `json:"title" validate:"required,max=200"`
	Message   string          `json:"message" validate:"required,max=20000"`
	Audience  models.Audience `json:"audience" validate:"required,is-audience"`
	SendEmail bool            `json:"send_email"`
}
