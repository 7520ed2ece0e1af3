package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/auth"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/middleware"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/services"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/services/dto"
)

type ProfileHandler struct {
	*BaseHandler
	profileService services.ProfileService
}

func NewProfileHandler(base *BaseHandler, profileService services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler:    base,
		profileService: profileService,
	}
}

func (h *ProfileHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Публичный каталог талантов
	public := r.Group("/talents")
	{
		public.GET("", h.SearchTalents)
		public.GET("/:id", h.GetPublicProfile)
	}

	me := r.Group("/profile/me")
	me.Use(middleware.AuthMiddleware(), middleware.RequirePermission(auth.PermProfileWrite))
	{
		me.GET("", h.GetMyProfile)
		me.PUT("", h.UpdateProfile)
		me.POST("/portfolio", h.AddPortfolioItem)
		me.DELETE("/portfolio/:itemId", h.RemovePortfolioItem)
		me.POST("/credits", h.AddCredit)
		me.PUT("/credits/:creditId", h.UpdateCredit)
		me.DELETE("/credits/:creditId", h.RemoveCredit)
	}
}

func (h *ProfileHandler) GetMyProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	profile, err := h.profileService.GetMyProfile(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateTalentProfileRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	profile, err := h.profileService.UpdateProfile(h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Success(c, http.StatusOK, "Profile updated", profile)
}

// --- Portfolio ---

func (h *ProfileHandler) AddPortfolioItem(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.PortfolioItemRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	item, err := h.profileService.AddPortfolioItem(h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Success(c, http.StatusCreated, "Portfolio item added", item)
}

func (h *ProfileHandler) RemovePortfolioItem(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.profileService.RemovePortfolioItem(h.GetDB(c), userID, c.Param("itemId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Success(c, http.StatusOK, "Portfolio item removed", nil)
}

// --- Experience credits ---

func (h *ProfileHandler) AddCredit(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreditRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	credit, err := h.profileService.AddCredit(h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Success(c, http.StatusCreated, "Credit added", credit)
}

func (h *ProfileHandler) UpdateCredit(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreditRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	credit, err := h.profileService.UpdateCredit(h.GetDB(c), userID, c.Param("creditId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Success(c, http.StatusOK, "Credit updated", credit)
}

func (h *ProfileHandler) RemoveCredit(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.profileService.RemoveCredit(h.GetDB(c), userID, c.Param("creditId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Success(c, http.StatusOK, "Credit removed", nil)
}

// --- Public directory ---

func (h *ProfileHandler) SearchTalents(c *gin.Context) {
	var query dto.TalentSearchQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}
	page, pageSize := ParsePagination(c)

	result, err := h.profileService.SearchTalents(h.GetDB(c), &query, page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *ProfileHandler) GetPublicProfile(c *gin.Context) {
	profile, err := h.profileService.GetPublicProfile(h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}
