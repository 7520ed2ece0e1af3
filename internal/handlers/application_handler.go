package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/auth"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/middleware"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/services"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/services/dto"
)

type ApplicationHandler struct {
	*BaseHandler
	applicationService services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, applicationService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:        base,
		applicationService: applicationService,
	}
}

func (h *ApplicationHandler) RegisterRoutes(r *gin.RouterGroup) {
	talent := r.Group("")
	talent.Use(middleware.AuthMiddleware(), middleware.RequirePermission(auth.PermJobsApply))
	{
		talent.POST("/jobs/:id/apply", h.Apply)
		talent.GET("/applications/mine", h.ListMine)
	}

	employer := r.Group("/employer")
	employer.Use(middleware.AuthMiddleware(), middleware.RequirePermission(auth.PermApplicationsReview))
	{
		employer.GET("/jobs/:id/applications", h.ListForJob)
		employer.PUT("/applications/:id/status", h.UpdateStatus)
		employer.PUT("/applications/:id/notes", h.SaveNote)
		employer.POST("/applications/bulk-status", h.BulkUpdateStatus)
	}

	admin := r.Group("/admin/jobs")
	admin.Use(middleware.AuthMiddleware(), middleware.RequirePermission(auth.PermAdmin))
	{
		admin.GET("/:id/applications", h.ListForJob)
	}
}

func (h *ApplicationHandler) Apply(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ApplyRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	application, err := h.applicationService.Apply(h.GetDB(c), userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Success(c, http.StatusCreated, "Application submitted", application)
}

func (h *ApplicationHandler) ListMine(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	applications, err := h.applicationService.ListMine(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, applications)
}

// ListForJob - отклики на вакансию; работодатель видит только свои вакансии
func (h *ApplicationHandler) ListForJob(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var query dto.ApplicationListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	applications, err := h.applicationService.ListForJob(h.GetDB(c), userID, middleware.GetRole(c), c.Param("id"), query.Status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, applications)
}

func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ApplicationStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	application, err := h.applicationService.UpdateStatus(h.GetDB(c), userID, c.Param("id"), req.Status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Success(c, http.StatusOK, "Application status updated", application)
}

func (h *ApplicationHandler) BulkUpdateStatus(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.BulkApplicationStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	result, err := h.applicationService.BulkUpdateStatus(h.GetDB(c), userID, req.IDs, req.Status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Success(c, http.StatusOK, "Applications updated", result)
}

func (h *ApplicationHandler) SaveNote(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ApplicationNoteRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	application, err := h.applicationService.SaveNote(h.GetDB(c), userID, c.Param("id"), req.Notes)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Success(c, http.StatusOK, "Notes saved", application)
}
