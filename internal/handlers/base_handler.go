package handlers

import (
	"strconv"

	"jobboard_backend/internal/appErrors"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/validator"

	"github.com/gin-gonic/gin"
)

type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) *BaseHandler {
	return &BaseHandler{
		validator: v,
	}
}

// BindAndValidateJSON привязывает тело запроса и прогоняет его через
// валидатор. При ошибке сама отвечает клиенту и возвращает false.
func (h *BaseHandler) BindAndValidateJSON(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBindJSON(obj); err != nil {
		logger.CtxWithError(ctx, "Failed to bind JSON body", err, "path", c.Request.URL.Path)
		appErrors.HandleError(c, appErrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return false
	}

	return h.runValidation(c, obj)
}

// BindAndValidateQuery - то же для query-параметров
func (h *BaseHandler) BindAndValidateQuery(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBindQuery(obj); err != nil {
		logger.CtxWithError(ctx, "Failed to bind query params", err, "path", c.Request.URL.Path)
		appErrors.HandleError(c, appErrors.NewBadRequestError("Invalid query parameters: "+err.Error()))
		return false
	}

	return h.runValidation(c, obj)
}

// BindAndValidateForm - то же для form-данных (логин)
func (h *BaseHandler) BindAndValidateForm(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBind(obj); err != nil {
		logger.CtxWithError(ctx, "Failed to bind form body", err, "path", c.Request.URL.Path)
		appErrors.HandleError(c, appErrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return false
	}

	return h.runValidation(c, obj)
}

func (h *BaseHandler) runValidation(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := h.validator.Validate(obj); err != nil {
		if vErr, ok := err.(*validator.ValidationError); ok {
			logger.CtxWarn(ctx, "Validation failed", "errors", vErr.Errors, "path", c.Request.URL.Path)
			appErrors.HandleError(c, appErrors.ValidationError(vErr.Errors))
		} else {
			logger.CtxWithError(ctx, "Internal validator error", err, "path", c.Request.URL.Path)
			appErrors.HandleError(c, appErrors.InternalError(err))
		}
		return false
	}
	return true
}

// HandleServiceError транслирует ошибку сервиса в HTTP-ответ
func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	var appErr *appErrors.AppError
	if appErrors.As(err, &appErr) {
		logger.CtxWarn(ctx, "Service error",
			"error", appErr.Message,
			"path", c.Request.URL.Path,
		)
		appErrors.HandleError(c, appErr)
	} else {
		logger.CtxWithError(ctx, "Internal server error", err, "path", c.Request.URL.Path)
		appErrors.HandleError(c, appErrors.InternalError(err))
	}
}

// ParseIDParam извлекает числовой идентификатор из path-параметра
func (h *BaseHandler) ParseIDParam(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		appErrors.HandleError(c, appErrors.NewBadRequestError("Invalid "+name+" parameter"))
		return 0, false
	}
	return id, true
}
