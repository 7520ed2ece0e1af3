package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/auth"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/middleware"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/services"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/services/dto"
)

// SupportHandler - тикеты поддержки и объявления
type SupportHandler struct {
	*BaseHandler
	supportService      services.SupportService
	announcementService services.AnnouncementService
}

func NewSupportHandler(
	base *BaseHandler,
	supportService services.SupportService,
	announcementService services.AnnouncementService,
) *SupportHandler {
	return &SupportHandler{
		BaseHandler:         base,
		supportService:      supportService,
		announcementService: announcementService,
	}
}

func (h *SupportHandler) RegisterRoutes(r *gin.RouterGroup) {
	user := r.Group("")
	user.Use(middleware.AuthMiddleware(), middleware.RequirePermission(auth.PermTicketsWrite))
	{
		user.POST("/support/tickets", h.CreateTicket)
		user.GET("/support/tickets", h.ListMyTickets)
		user.GET("/announcements", h.ListAnnouncements)
	}

	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequirePermission(auth.PermAdmin))
	{
		admin.GET("/tickets", h.ListTickets)
		admin.PUT("/tickets/:id", h.UpdateTicket)

		admin.GET("/announcements", h.ListAllAnnouncements)
		admin.POST("/announcements", h.CreateAnnouncement)
	}
}

// --- Tickets ---

func (h *SupportHandler) CreateTicket(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateTicketRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	ticket, err := h.supportService.CreateTicket(h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Success(c, http.StatusCreated, "Ticket created", ticket)
}

func (h *SupportHandler) ListMyTickets(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	tickets, err := h.supportService.ListMyTickets(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, tickets)
}

func (h *SupportHandler) ListTickets(c *gin.Context) {
	var query dto.TicketListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}
	page, pageSize := ParsePagination(c)

	result, err := h.supportService.ListTickets(h.GetDB(c), &query, page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *SupportHandler) UpdateTicket(c *gin.Context) {
	adminID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateTicketRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	ticket, err := h.supportService.UpdateTicket(h.GetDB(c), adminID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Success(c, http.StatusOK, "Ticket updated", ticket)
}

// --- Announcements ---

// ListAnnouncements - объявления для роли текущего пользователя
func (h *SupportHandler) ListAnnouncements(c *gin.Context) {
	announcements, err := h.announcementService.ListForRole(h.GetDB(c), middleware.GetRole(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, announcements)
}

func (h *SupportHandler) ListAllAnnouncements(c *gin.Context) {
	page, pageSize := ParsePagination(c)

	result, err := h.announcementService.ListAll(h.GetDB(c), page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *SupportHandler) CreateAnnouncement(c *gin.Context) {
	adminID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateAnnouncementRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	announcement, err := h.announcementService.Create(h.GetDB(c), adminID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Success(c, http.StatusCreated, "Announcement published", announcement)
}
