package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/auth"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/middleware"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/models"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/services"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/services/dto"
)

type JobHandler struct {
	*BaseHandler
	jobService services.JobService
}

func NewJobHandler(base *BaseHandler, jobService services.JobService) *JobHandler {
	return &JobHandler{
		BaseHandler: base,
		jobService:  jobService,
	}
}

func (h *JobHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Публичный каталог; владелец и админ видят и неопубликованные вакансии
	public := r.Group("/jobs")
	public.Use(middleware.OptionalAuthMiddleware())
	{
		public.GET("", h.ListPublicJobs)
		public.GET("/:id", h.GetJob)
	}

	employer := r.Group("/employer/jobs")
	employer.Use(middleware.AuthMiddleware(), middleware.RequirePermission(auth.PermJobsWrite))
	{
		employer.GET("", h.ListMyJobs)
		employer.POST("", h.CreateJob)
		employer.PUT("/:id", h.UpdateJob)
		employer.DELETE("/:id", h.DeleteJob)
		employer.POST("/:id/publish", h.PublishJob)
		employer.POST("/:id/close", h.CloseJob)
		employer.PUT("/:id/status", h.SetStatus)
		employer.POST("/:id/duplicate", h.DuplicateJob)
	}

	admin := r.Group("/admin/jobs")
	admin.Use(middleware.AuthMiddleware(), middleware.RequirePermission(auth.PermAdmin))
	{
		admin.GET("", h.ListAllJobs)
		admin.PUT("/:id/moderate", h.ModerateJob)
		admin.POST("/:id/toggle-feature", h.ToggleFeatured)
		admin.DELETE("/:id", h.DeleteJob)
	}
}

// --- Public ---

func (h *JobHandler) ListPublicJobs(c *gin.Context) {
	var query dto.JobListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}
	page, pageSize := ParsePagination(c)

	result, err := h.jobService.ListPublicJobs(h.GetDB(c), &query, page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *JobHandler) GetJob(c *gin.Context) {
	job, err := h.jobService.GetJob(h.GetDB(c), c.Param("id"), middleware.GetUserID(c), middleware.GetRole(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

// --- Employer ---

func (h *JobHandler) ListMyJobs(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var query dto.JobListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	jobs, err := h.jobService.ListMyJobs(h.GetDB(c), userID, query.Status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, jobs)
}

func (h *JobHandler) CreateJob(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.JobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	job, err := h.jobService.CreateJob(h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Success(c, http.StatusCreated, "Job created", job)
}

func (h *JobHandler) UpdateJob(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.JobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	job, err := h.jobService.UpdateJob(h.GetDB(c), userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Success(c, http.StatusOK, "Job updated", job)
}

// DeleteJob - владелец удаляет свою вакансию, админ любую
func (h *JobHandler) DeleteJob(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.jobService.DeleteJob(h.GetDB(c), userID, middleware.GetRole(c), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Success(c, http.StatusOK, "Job deleted", nil)
}

func (h *JobHandler) PublishJob(c *gin.Context) {
	h.setStatus(c, models.JobStatusPublished, "Job published")
}

func (h *JobHandler) CloseJob(c *gin.Context) {
	h.setStatus(c, models.JobStatusClosed, "Job closed")
}

func (h *JobHandler) SetStatus(c *gin.Context) {
	var req dto.JobStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}
	h.setStatus(c, req.Status, "Job status updated")
}

func (h *JobHandler) setStatus(c *gin.Context, status models.JobStatus, message string) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	job, err := h.jobService.SetStatus(h.GetDB(c), userID, c.Param("id"), status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Success(c, http.StatusOK, message, job)
}

func (h *JobHandler) DuplicateJob(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	job, err := h.jobService.DuplicateJob(h.GetDB(c), userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Success(c, http.StatusCreated, "Job duplicated", job)
}

// --- Admin ---

func (h *JobHandler) ListAllJobs(c *gin.Context) {
	var query dto.JobListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}
	page, pageSize := ParsePagination(c)

	result, err := h.jobService.ListAllJobs(h.GetDB(c), &query, page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ModerateJob - решение модерации: PUBLISHED или REJECTED
func (h *JobHandler) ModerateJob(c *gin.Context) {
	var req dto.JobStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	job, err := h.jobService.ModerateJob(h.GetDB(c), c.Param("id"), req.Status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Success(c, http.StatusOK, "Job "+strings.ToLower(string(job.Status)), job)
}

func (h *JobHandler) ToggleFeatured(c *gin.Context) {
	job, err := h.jobService.ToggleFeatured(h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	message := "Job unfeatured"
	if job.IsFeatured {
		message = "Job featured"
	}
	h.Success(c, http.StatusOK, message, job)
}
