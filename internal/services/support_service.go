package services

import (
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/logger"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/models"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/repositories"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/services/dto"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/pkg/apperrors"
)

type SupportService interface {
	CreateTicket(db *gorm.DB, userID string, req *dto.CreateTicketRequest) (*models.SupportTicket, error)
	ListMyTickets(db *gorm.DB, userID string) ([]models.SupportTicket, error)

	// Admin
	ListTickets(db *gorm.DB, query *dto.TicketListQuery, page, pageSize int) (*dto.ListResponse[models.SupportTicket], error)
	UpdateTicket(db *gorm.DB, adminID, ticketID string, req *dto.UpdateTicketRequest) (*models.SupportTicket, error)
}

type SupportServiceImpl struct {
	supportRepo repositories.SupportRepository
}

func NewSupportService(supportRepo repositories.SupportRepository) SupportService {
	return &SupportServiceImpl{supportRepo: supportRepo}
}

func (s *SupportServiceImpl) CreateTicket(db *gorm.DB, userID string, req *dto.CreateTicketRequest) (*models.SupportTicket, error) {
	priority := req.Priority
	if priority == "" {
		priority = models.TicketPriorityMedium
	}

	ticket := &models.SupportTicket{
		UserID:   userID,
		Subject:  strings.TrimSpace(req.Subject),
		Message:  strings.TrimSpace(req.Message),
		Category: strings.TrimSpace(req.Category),
		Status:   models.TicketStatusOpen,
		Priority: priority,
	}
	if err := s.supportRepo.CreateTicket(db, ticket); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(contextOf(db), "support ticket created", "ticket_id", ticket.ID, "priority", priority)
	return ticket, nil
}

func (s *SupportServiceImpl) ListMyTickets(db *gorm.DB, userID string) ([]models.SupportTicket, error) {
	tickets, err := s.supportRepo.ListUserTickets(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return orEmpty(tickets), nil
}

func (s *SupportServiceImpl) ListTickets(db *gorm.DB, query *dto.TicketListQuery, page, pageSize int) (*dto.ListResponse[models.SupportTicket], error) {
	tickets, total, err := s.supportRepo.ListTickets(db, repositories.TicketFilter{
		Status:     query.Status,
		Priority:   query.Priority,
		Pagination: repositories.Pagination{Page: page, PageSize: pageSize},
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	for i := range tickets {
		stripPrivateUser(tickets[i].User)
	}
	return dto.NewListResponse(tickets, total, page, pageSize), nil
}

// UpdateTicket - переходы между статусами не ограничены; resolved_at следует за статусом
func (s *SupportServiceImpl) UpdateTicket(db *gorm.DB, adminID, ticketID string, req *dto.UpdateTicketRequest) (*models.SupportTicket, error) {
	if !req.Status.IsValid() {
		return nil, apperrors.ErrInvalidStatus("support", "Invalid ticket status")
	}

	updates := map[string]interface{}{"status": req.Status, "resolved_at": nil}
	if req.Status.IsFinal() {
		updates["resolved_at"] = time.Now()
	}
	if req.Priority != nil {
		updates["priority"] = *req.Priority
	}
	if req.AdminReply != nil {
		updates["admin_reply"] = strings.TrimSpace(*req.AdminReply)
	}

	if err := s.supportRepo.UpdateTicket(db, ticketID, updates); err != nil {
		return nil, mapError(err)
	}
	ticket, err := s.supportRepo.FindTicketByID(db, ticketID)
	if err != nil {
		return nil, mapError(err)
	}

	logger.CtxInfo(contextOf(db), "support ticket updated",
		"ticket_id", ticketID, "status", req.Status, "admin_id", adminID)
	stripPrivateUser(ticket.User)
	return ticket, nil
}
