package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/auth"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/logger"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/models"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/repositories"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/pkg/apperrors"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/pkg/contextkeys"
)

var userRepo = repositories.NewUserRepository()

// AuthMiddleware - проверка JWT и состояния аккаунта.
// Роль берется из базы, а не из токена: админ мог поменять её после выдачи.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := bearerClaims(c)
		if !ok {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authorization header missing or invalid"))
			return
		}

		user, err := userRepo.FindByID(requestDB(c), claims.UserID)
		if err != nil {
			if errors.Is(err, repositories.ErrUserNotFound) {
				apperrors.HandleError(c, apperrors.ErrInvalidToken)
				return
			}
			apperrors.HandleError(c, apperrors.InternalError(err))
			return
		}

		if user.IsSuspended {
			logger.CtxWarn(c.Request.Context(), "suspended user request rejected", "user_id", user.ID, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.ErrUserSuspended)
			return
		}

		setUser(c, user.ID, user.Role)
		c.Next()
	}
}

// OptionalAuthMiddleware - для публичных маршрутов, где ответ зависит от зрителя.
// Без токена или с невалидным токеном запрос идет как анонимный.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := bearerClaims(c); ok {
			user, err := userRepo.FindByID(requestDB(c), claims.UserID)
			if err == nil && !user.IsSuspended {
				setUser(c, user.ID, user.Role)
			}
		}
		c.Next()
	}
}

// RequireRoles - доступ только для перечисленных ролей
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	allowed := make(map[models.UserRole]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(c *gin.Context) {
		if !allowed[GetRole(c)] {
			apperrors.HandleError(c, apperrors.ErrInsufficientPermissions)
			return
		}
		c.Next()
	}
}

// RequirePermission - доступ по таблице разрешений ролей
func RequirePermission(permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !auth.HasPermission(GetRole(c), permission) {
			apperrors.HandleError(c, apperrors.ErrInsufficientPermissions)
			return
		}
		c.Next()
	}
}

// GetUserID извлекает ID пользователя из контекста
func GetUserID(c *gin.Context) string {
	return c.GetString(contextkeys.UserIDKey)
}

func GetRole(c *gin.Context) models.UserRole {
	role, _ := c.Get(contextkeys.RoleKey)
	r, _ := role.(models.UserRole)
	return r
}

func bearerClaims(c *gin.Context) (*auth.Claims, bool) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return nil, false
	}
	claims, err := auth.ParseToken(strings.TrimSpace(strings.TrimPrefix(header, "Bearer ")))
	if err != nil {
		logger.CtxDebug(c.Request.Context(), "token rejected", "error", err.Error())
		return nil, false
	}
	return claims, true
}

func setUser(c *gin.Context, userID string, role models.UserRole) {
	c.Set(contextkeys.UserIDKey, userID)
	c.Set(contextkeys.RoleKey, role)

	// user_id попадает во все логи запроса, в том числе из сервисов
	ctx := logger.WithUserID(c.Request.Context(), userID)
	c.Request = c.Request.WithContext(ctx)
	c.Set(string(contextkeys.DBContextKey), requestDB(c).WithContext(ctx))
}

func requestDB(c *gin.Context) *gorm.DB {
	val, _ := c.Get(string(contextkeys.DBContextKey))
	db, ok := val.(*gorm.DB)
	if !ok {
		panic("db middleware is not configured")
	}
	return db
}
