package handlers

import (
	"net/http"

	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
	}
}

// RegisterRoutes регистрирует маршруты аутентификации
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/login", h.Login)
	rg.GET("/verify-email", h.VerifyEmail)
	rg.POST("/resend-verification-email", h.ResendVerification)
}

// Login godoc
// @Summary Аутентификация пользователя
// @Description Выполняет вход по email (в поле username) и паролю. Проверяет, что email подтверждён. В случае успеха возвращает JWT-токен.
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Email пользователя"
// @Param password formData string true "Пароль"
// @Success 200 {object} dto.TokenResponse
// @Failure 401 {object} appErrors.ErrorResponse "Неверные учетные данные или email не подтвержден"
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidateForm(c, &req) {
		return
	}

	response, err := h.authService.Login(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// VerifyEmail godoc
// @Summary Подтвердить email по токену
// @Description Активирует учётную запись по временному токену из письма. После подтверждения пользователь может входить в систему.
// @Tags auth
// @Produce json
// @Param token query string true "Токен подтверждения"
// @Success 200 {object} map[string]string
// @Failure 400 {object} appErrors.ErrorResponse "Токен недействителен или истёк"
// @Router /verify-email [get]
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	var req dto.VerifyEmailRequest
	if !h.BindAndValidateQuery(c, &req) {
		return
	}

	if err := h.authService.VerifyEmail(req.Token); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Email verified successfully"})
}

// ResendVerification godoc
// @Summary Повторно отправить письмо подтверждения
// @Description Отправляет повторное письмо подтверждения email. Доступно только для неподтверждённых учётных записей.
// @Tags auth
// @Produce json
// @Param email query string true "Email пользователя"
// @Success 200 {object} map[string]string
// @Failure 400 {object} appErrors.ErrorResponse "Email уже подтверждён"
// @Failure 404 {object} appErrors.ErrorResponse "Пользователь не найден"
// @Router /resend-verification-email [post]
func (h *AuthHandler) ResendVerification(c *gin.Context) {
	var req dto.ResendVerificationRequest
	if !h.BindAndValidateQuery(c, &req) {
		return
	}

	if err := h.authService.ResendVerification(req.Email); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Verification email sent"})
}
