package apperrors

import (
	"log/slog"
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
)

// ErrorCodeHeader - заголовок, в котором клиент получает машинный код ошибки
const ErrorCodeHeader = "X-Error-Code"

// HandleError пишет ответ {"error": "..."} со статусом из AppError.
// Всё, что не AppError, логируется и уходит клиенту как InternalMessage.
func HandleError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	status := appErr.HTTPCode
	if status == 0 {
		status = http.StatusInternalServerError
	}

	message := appErr.Message
	if status >= http.StatusInternalServerError {
		slog.ErrorContext(c.Request.Context(), "server error",
			"error", err.Error(),
			"path", c.Request.URL.Path,
		)
		message = InternalMessage
	} else if fields, ok := appErr.Details.(map[string]string); ok && len(fields) > 0 {
		message = message + ": " + formatFields(fields)
	}

	c.Header(ErrorCodeHeader, string(appErr.Code))
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}

// formatFields - стабильный порядок, чтобы сообщение не менялось между запросами
func formatFields(fields map[string]string) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+fields[k])
	}
	return strings.Join(parts, "; ")
}
