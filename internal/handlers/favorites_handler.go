package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/auth"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/middleware"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/services"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/services/dto"
)

// FavoritesHandler - сохраненные таланты и шортлисты работодателя
type FavoritesHandler struct {
	*BaseHandler
	favoritesService services.FavoritesService
}

func NewFavoritesHandler(base *BaseHandler, favoritesService services.FavoritesService) *FavoritesHandler {
	return &FavoritesHandler{
		BaseHandler:      base,
		favoritesService: favoritesService,
	}
}

func (h *FavoritesHandler) RegisterRoutes(r *gin.RouterGroup) {
	employer := r.Group("/employer")
	employer.Use(middleware.AuthMiddleware(), middleware.RequirePermission(auth.PermTalentsSave))
	{
		employer.GET("/saved-talents", h.ListSaved)
		employer.POST("/saved-talents/:talentId/toggle", h.ToggleSaved)

		employer.GET("/shortlists", h.ListShortlists)
		employer.POST("/shortlists", h.CreateShortlist)
		employer.GET("/shortlists/:id", h.GetShortlist)
		employer.PUT("/shortlists/:id", h.UpdateShortlist)
		employer.DELETE("/shortlists/:id", h.DeleteShortlist)
		employer.POST("/shortlists/:id/items", h.AddToShortlist)
		employer.DELETE("/shortlists/:id/items/:talentId", h.RemoveFromShortlist)
	}
}

func (h *FavoritesHandler) ToggleSaved(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	result, err := h.favoritesService.ToggleSaved(h.GetDB(c), userID, c.Param("talentId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	message := "Talent removed from saved"
	if result.Saved {
		message = "Talent saved"
	}
	h.Success(c, http.StatusOK, message, result)
}

func (h *FavoritesHandler) ListSaved(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	saved, err := h.favoritesService.ListSaved(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, saved)
}

// --- Shortlists ---

func (h *FavoritesHandler) ListShortlists(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	lists, err := h.favoritesService.ListShortlists(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, lists)
}

func (h *FavoritesHandler) GetShortlist(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	list, err := h.favoritesService.GetShortlist(h.GetDB(c), userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

func (h *FavoritesHandler) CreateShortlist(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ShortlistRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	list, err := h.favoritesService.CreateShortlist(h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Success(c, http.StatusCreated, "Shortlist created", list)
}

func (h *FavoritesHandler) UpdateShortlist(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ShortlistRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	list, err := h.favoritesService.UpdateShortlist(h.GetDB(c), userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Success(c, http.StatusOK, "Shortlist updated", list)
}

func (h *FavoritesHandler) DeleteShortlist(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.favoritesService.DeleteShortlist(h.GetDB(c), userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Success(c, http.StatusOK, "Shortlist deleted", nil)
}

func (h *FavoritesHandler) AddToShortlist(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ShortlistItemRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	list, err := h.favoritesService.AddToShortlist(h.GetDB(c), userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Success(c, http.StatusOK, "Talent added to shortlist", list)
}

func (h *FavoritesHandler) RemoveFromShortlist(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	list, err := h.favoritesService.RemoveFromShortlist(h.GetDB(c), userID, c.Param("id"), c.Param("talentId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Success(c, http.StatusOK, "Talent removed from shortlist", list)
}
