package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/auth"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/middleware"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/services"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/services/dto"
)

// AdminHandler - модерация пользователей и сводка платформы
type AdminHandler struct {
	*BaseHandler
	adminService services.AdminService
}

func NewAdminHandler(base *BaseHandler, adminService services.AdminService) *AdminHandler {
	return &AdminHandler{
		BaseHandler:  base,
		adminService: adminService,
	}
}

func (h *AdminHandler) RegisterRoutes(r *gin.RouterGroup) {
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequirePermission(auth.PermAdmin))
	{
		admin.GET("/stats", h.GetPlatformStats)
		admin.GET("/users", h.ListUsers)
		admin.POST("/users/:id/toggle-suspend", h.ToggleSuspend)
		admin.POST("/users/:id/toggle-verify", h.ToggleVerify)
	}
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	var query dto.UserListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}
	page, pageSize := ParsePagination(c)

	result, err := h.adminService.ListUsers(h.GetDB(c), &query, page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *AdminHandler) ToggleSuspend(c *gin.Context) {
	adminID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	user, err := h.adminService.ToggleSuspend(h.GetDB(c), adminID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	message := "User unsuspended"
	if user.IsSuspended {
		message = "User suspended"
	}
	h.Success(c, http.StatusOK, message, user)
}

func (h *AdminHandler) ToggleVerify(c *gin.Context) {
	adminID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	user, err := h.adminService.ToggleVerify(h.GetDB(c), adminID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Success(c, http.StatusOK, "Verification badge toggled", user)
}

func (h *AdminHandler) GetPlatformStats(c *gin.Context) {
	stats, err := h.adminService.GetPlatformStats(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
