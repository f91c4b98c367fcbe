package appErrors

import (
	"jobboard_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse - стандартный ответ об ошибке
type ErrorResponse struct {
	Error *AppError `json:"error"`
}

// HandleError отправляет ошибку клиенту в стандартном формате.
// Неизвестные ошибки оборачиваются в InternalError, чтобы не
// протекали детали персистентного слоя.
func HandleError(c *gin.Context, err error) {
	var appErr *AppError
	if !As(err, &appErr) {
		appErr = InternalError(err)
	}

	if appErr.HTTPCode >= 500 {
		logger.CtxWithError(c.Request.Context(), "Server error", appErr, "path", c.Request.URL.Path)
	}

	c.AbortWithStatusJSON(appErr.HTTPCode, ErrorResponse{Error: appErr})
}
