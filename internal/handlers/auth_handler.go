package handlers

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/logger"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/middleware"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/services"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/services/dto"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/pkg/apperrors"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
	loginPage   string
}

// loginPage - куда отправлять форму входа заблокированного пользователя
func NewAuthHandler(base *BaseHandler, authService services.AuthService, loginPage string) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
		loginPage:   loginPage,
	}
}

// RegisterRoutes регистрирует маршруты /auth
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
	}

	me := rg.Group("/auth/me")
	me.Use(middleware.AuthMiddleware())
	{
		me.GET("", h.Me)
		me.DELETE("", h.DeleteAccount)
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	response, err := h.authService.Register(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Success(c, http.StatusCreated, "Registration successful", response)
}

// Login принимает JSON и HTML-форму. Заблокированный пользователь с формы
// уходит редиректом 303 на страницу входа с ?error=Suspended.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	response, err := h.authService.Login(h.GetDB(c), &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserSuspended) && isFormPost(c) {
			logger.CtxInfo(c.Request.Context(), "suspended login redirected", "email", req.Email)
			c.Redirect(http.StatusSeeOther, h.loginPage+"?error="+url.QueryEscape(apperrors.SuspendedMessage))
			return
		}
		h.HandleServiceError(c, err)
		return
	}

	h.Success(c, http.StatusOK, "Login successful", response)
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	user, err := h.authService.Me(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) DeleteAccount(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.authService.DeleteAccount(h.GetDB(c), userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Success(c, http.StatusOK, "Account deleted", nil)
}

func isFormPost(c *gin.Context) bool {
	switch c.ContentType() {
	case gin.MIMEPOSTForm, gin.MIMEMultipartPOSTForm:
		return true
	}
	return false
}
