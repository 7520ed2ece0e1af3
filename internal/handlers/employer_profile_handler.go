package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/middleware"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/models"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/services"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/services/dto"
)

type EmployerProfileHandler struct {
	*BaseHandler
	service services.EmployerProfileService
}

func NewEmployerProfileHandler(base *BaseHandler, service services.EmployerProfileService) *EmployerProfileHandler {
	return &EmployerProfileHandler{
		BaseHandler: base,
		service:     service,
	}
}

func (h *EmployerProfileHandler) RegisterRoutes(r *gin.RouterGroup) {
	company := r.Group("/company/me")
	company.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleEmployer))
	{
		company.GET("", h.GetMyCompany)
		company.PUT("", h.UpdateCompany)
	}
}

func (h *EmployerProfileHandler) GetMyCompany(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	profile, err := h.service.GetMyCompany(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *EmployerProfileHandler) UpdateCompany(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateEmployerProfileRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	profile, err := h.service.UpdateCompany(h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Success(c, http.StatusOK, "Company profile updated", profile)
}
