package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/auth"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/middleware"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/services"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/services/dto"
)

// ContentHandler - блог, категории, истории успеха и события
type ContentHandler struct {
	*BaseHandler
	contentService services.ContentService
}

func NewContentHandler(base *BaseHandler, contentService services.ContentService) *ContentHandler {
	return &ContentHandler{
		BaseHandler:    base,
		contentService: contentService,
	}
}

func (h *ContentHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Публично видны только опубликованные материалы
	public := r.Group("")
	{
		public.GET("/blog/categories", h.ListCategories)
		public.GET("/blog/posts", h.ListPublishedPosts)
		public.GET("/blog/posts/:slug", h.GetPublishedPost)
		public.GET("/stories", h.ListPublishedStories)
		public.GET("/stories/:slug", h.GetPublishedStory)
		public.GET("/events", h.ListPublishedEvents)
		public.GET("/events/:slug", h.GetPublishedEvent)
	}

	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequirePermission(auth.PermAdmin))
	{
		admin.GET("/blog/categories", h.ListCategories)
		admin.POST("/blog/categories", h.CreateCategory)
		admin.PUT("/blog/categories/:id", h.UpdateCategory)
		admin.DELETE("/blog/categories/:id", h.DeleteCategory)

		admin.GET("/blog/posts", h.ListPosts)
		admin.POST("/blog/posts", h.CreatePost)
		admin.GET("/blog/posts/:id", h.GetPost)
		admin.PUT("/blog/posts/:id", h.UpdatePost)
		admin.DELETE("/blog/posts/:id", h.DeletePost)

		admin.GET("/stories", h.ListStories)
		admin.POST("/stories", h.CreateStory)
		admin.GET("/stories/:id", h.GetStory)
		admin.PUT("/stories/:id", h.UpdateStory)
		admin.DELETE("/stories/:id", h.DeleteStory)

		admin.GET("/events", h.ListEvents)
		admin.POST("/events", h.CreateEvent)
		admin.GET("/events/:id", h.GetEvent)
		admin.PUT("/events/:id", h.UpdateEvent)
		admin.DELETE("/events/:id", h.DeleteEvent)
	}
}

// ============================================================================
// Categories
// ============================================================================

func (h *ContentHandler) ListCategories(c *gin.Context) {
	categories, err := h.contentService.ListCategories(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *ContentHandler) CreateCategory(c *gin.Context) {
	var req dto.CategoryRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	category, err := h.contentService.CreateCategory(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Success(c, http.StatusCreated, "Category created", category)
}

func (h *ContentHandler) UpdateCategory(c *gin.Context) {
	var req dto.CategoryRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	category, err := h.contentService.UpdateCategory(h.GetDB(c), c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Success(c, http.StatusOK, "Category updated", category)
}

// DeleteCategory - посты категории остаются без категории
func (h *ContentHandler) DeleteCategory(c *gin.Context) {
	if err := h.contentService.DeleteCategory(h.GetDB(c), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Success(c, http.StatusOK, "Category deleted", nil)
}

// ============================================================================
// Blog posts
// ============================================================================

func (h *ContentHandler) ListPublishedPosts(c *gin.Context) {
	h.listPosts(c, true)
}

func (h *ContentHandler) ListPosts(c *gin.Context) {
	h.listPosts(c, false)
}

func (h *ContentHandler) listPosts(c *gin.Context, publishedOnly bool) {
	var query dto.ContentListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}
	page, pageSize := ParsePagination(c)

	result, err := h.contentService.ListPosts(h.GetDB(c), &query, publishedOnly, page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *ContentHandler) GetPublishedPost(c *gin.Context) {
	post, err := h.contentService.GetPublishedPost(h.GetDB(c), c.Param("slug"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *ContentHandler) GetPost(c *gin.Context) {
	post, err := h.contentService.GetPost(h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *ContentHandler) CreatePost(c *gin.Context) {
	authorID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.BlogPostRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	post, err := h.contentService.CreatePost(h.GetDB(c), authorID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Success(c, http.StatusCreated, "Post created", post)
}

func (h *ContentHandler) UpdatePost(c *gin.Context) {
	var req dto.BlogPostRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	post, err := h.contentService.UpdatePost(h.GetDB(c), c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Success(c, http.StatusOK, "Post updated", post)
}

func (h *ContentHandler) DeletePost(c *gin.Context) {
	if err := h.contentService.DeletePost(h.GetDB(c), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Success(c, http.StatusOK, "Post deleted", nil)
}

// ============================================================================
// Success stories
// ============================================================================

func (h *ContentHandler) ListPublishedStories(c *gin.Context) {
	h.listStories(c, true)
}

func (h *ContentHandler) ListStories(c *gin.Context) {
	h.listStories(c, false)
}

func (h *ContentHandler) listStories(c *gin.Context, publishedOnly bool) {
	var query dto.ContentListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}
	page, pageSize := ParsePagination(c)

	result, err := h.contentService.ListStories(h.GetDB(c), &query, publishedOnly, page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *ContentHandler) GetPublishedStory(c *gin.Context) {
	story, err := h.contentService.GetPublishedStory(h.GetDB(c), c.Param("slug"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, story)
}

func (h *ContentHandler) GetStory(c *gin.Context) {
	story, err := h.contentService.GetStory(h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, story)
}

func (h *ContentHandler) CreateStory(c *gin.Context) {
	var req dto.SuccessStoryRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	story, err := h.contentService.CreateStory(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Success(c, http.StatusCreated, "Story created", story)
}

func (h *ContentHandler) UpdateStory(c *gin.Context) {
	var req dto.SuccessStoryRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	story, err := h.contentService.UpdateStory(h.GetDB(c), c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Success(c, http.StatusOK, "Story updated", story)
}

func (h *ContentHandler) DeleteStory(c *gin.Context) {
	if err := h.contentService.DeleteStory(h.GetDB(c), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Success(c, http.StatusOK, "Story deleted", nil)
}

// ============================================================================
// Events
// ============================================================================

func (h *ContentHandler) ListPublishedEvents(c *gin.Context) {
	h.listEvents(c, true)
}

func (h *ContentHandler) ListEvents(c *gin.Context) {
	h.listEvents(c, false)
}

func (h *ContentHandler) listEvents(c *gin.Context, publishedOnly bool) {
	var query dto.ContentListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}
	page, pageSize := ParsePagination(c)

	result, err := h.contentService.ListEvents(h.GetDB(c), &query, publishedOnly, page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *ContentHandler) GetPublishedEvent(c *gin.Context) {
	event, err := h.contentService.GetPublishedEvent(h.GetDB(c), c.Param("slug"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

func (h *ContentHandler) GetEvent(c *gin.Context) {
	event, err := h.contentService.GetEvent(h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

func (h *ContentHandler) CreateEvent(c *gin.Context) {
	var req dto.EventRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	event, err := h.contentService.CreateEvent(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Success(c, http.StatusCreated, "Event created", event)
}

func (h *ContentHandler) UpdateEvent(c *gin.Context) {
	var req dto.EventRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	event, err := h.contentService.UpdateEvent(h.GetDB(c), c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Success(c, http.StatusOK, "Event updated", event)
}

func (h *ContentHandler) DeleteEvent(c *gin.Context) {
	if err := h.contentService.DeleteEvent(h.GetDB(c), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Success(c, http.StatusOK, "Event deleted", nil)
}
