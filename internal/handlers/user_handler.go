package handlers

import (
	"fmt"
	"net/http"

	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	*BaseHandler
	authService services.AuthService
	userService *services.UserService
}

func NewUserHandler(base *BaseHandler, authService services.AuthService, userService *services.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		authService: authService,
		userService: userService,
	}
}

// RegisterRoutes регистрирует маршруты пользователей
func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	{
		users.POST("", h.Create)
		users.GET("", h.List)
		users.GET("/:id", h.Get)
		users.PUT("/:id", h.Update)
		users.DELETE("/:id", h.Delete)
	}
}

// Create godoc
// @Summary Создать нового пользователя
// @Description Регистрирует нового пользователя. Email и имя должны быть уникальны. После регистрации отправляется письмо подтверждения.
// @Tags users
// @Accept json
// @Produce json
// @Param user body dto.CreateUserRequest true "Данные пользователя"
// @Success 200 {object} models.User
// @Failure 409 {object} appErrors.ErrorResponse "Email или имя уже заняты"
// @Router /users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	user, err := h.authService.Register(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// List godoc
// @Summary Получить список всех пользователей
// @Description Возвращает всех пользователей, отсортированных по дате регистрации (от новых к старым)
// @Tags users
// @Produce json
// @Success 200 {array} models.User
// @Router /users [get]
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.List()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// Get godoc
// @Summary Получить пользователя по ID
// @Tags users
// @Produce json
// @Param id path int true "ID пользователя"
// @Success 200 {object} models.User
// @Failure 404 {object} appErrors.ErrorResponse "Пользователь не найден"
// @Router /users/{id} [get]
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	user, err := h.userService.GetByID(id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// Update godoc
// @Summary Обновить данные пользователя
// @Description Полностью перезаписывает изменяемые поля. Email и имя проверяются на уникальность среди остальных пользователей.
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "ID пользователя"
// @Param user body dto.CreateUserRequest true "Новые данные"
// @Success 200 {object} models.User
// @Failure 404 {object} appErrors.ErrorResponse "Пользователь не найден"
// @Failure 409 {object} appErrors.ErrorResponse "Email или имя уже заняты"
// @Router /users/{id} [put]
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.CreateUserRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	user, err := h.userService.Update(id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// Delete godoc
// @Summary Удалить пользователя
// @Description Удаляет пользователя по ID. Пользователь с активными вакансиями не удаляется.
// @Tags users
// @Produce json
// @Param id path int true "ID пользователя"
// @Success 200 {object} map[string]string
// @Failure 404 {object} appErrors.ErrorResponse "Пользователь не найден"
// @Failure 409 {object} appErrors.ErrorResponse "У пользователя есть активные вакансии"
// @Router /users/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.userService.Delete(id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("User with ID %d has been deleted", id)})
}
