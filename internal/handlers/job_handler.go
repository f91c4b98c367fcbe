package handlers

import (
	"fmt"
	"net/http"

	"jobboard_backend/internal/appErrors"
	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	*BaseHandler
	jobService *services.JobService
}

func NewJobHandler(base *BaseHandler, jobService *services.JobService) *JobHandler {
	return &JobHandler{
		BaseHandler: base,
		jobService:  jobService,
	}
}

// RegisterRoutes регистрирует маршруты вакансий.
// Создание вакансии требует аутентификации, остальные операции открыты.
func (h *JobHandler) RegisterRoutes(rg *gin.RouterGroup, authRequired gin.HandlerFunc) {
	jobs := rg.Group("/jobs")
	{
		jobs.POST("", authRequired, h.Create)
		jobs.GET("", h.List)
		jobs.GET("/:id", h.Get)
		jobs.PUT("/:id", h.Update)
		jobs.DELETE("/:id", h.Delete)
	}
}

// Create godoc
// @Summary Создать вакансию
// @Description Создаёт новую вакансию. Обычный пользователь может создавать вакансии только от своего имени, компания - от имени любого пользователя.
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param job body dto.CreateJobRequest true "Данные вакансии"
// @Success 200 {object} models.Job
// @Failure 400 {object} appErrors.ErrorResponse "Владелец не найден или некорректная зарплатная вилка"
// @Failure 403 {object} appErrors.ErrorResponse "Недостаточно прав"
// @Router /jobs [post]
func (h *JobHandler) Create(c *gin.Context) {
	var req dto.CreateJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		appErrors.HandleError(c, appErrors.NewUnauthorizedError("Could not validate credentials"))
		return
	}
	userID, err := claims.UserID()
	if err != nil {
		appErrors.HandleError(c, appErrors.NewUnauthorizedError("Could not validate credentials"))
		return
	}

	if req.UserID != userID && !claims.IsCompany {
		appErrors.HandleError(c, appErrors.ErrForbidden)
		return
	}

	job, err := h.jobService.Create(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

// List godoc
// @Summary Получить список всех вакансий
// @Tags jobs
// @Produce json
// @Success 200 {array} models.Job
// @Router /jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	jobs, err := h.jobService.List()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, jobs)
}

// Get godoc
// @Summary Получить вакансию по ID
// @Tags jobs
// @Produce json
// @Param id path int true "ID вакансии"
// @Success 200 {object} models.Job
// @Failure 404 {object} appErrors.ErrorResponse "Вакансия не найдена"
// @Router /jobs/{id} [get]
func (h *JobHandler) Get(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	job, err := h.jobService.GetByID(id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

// Update godoc
// @Summary Обновить вакансию
// @Description Полностью перезаписывает поля вакансии. Владелец и зарплатная вилка проверяются заново.
// @Tags jobs
// @Accept json
// @Produce json
// @Param id path int true "ID вакансии"
// @Param job body dto.CreateJobRequest true "Новые данные"
// @Success 200 {object} models.Job
// @Failure 400 {object} appErrors.ErrorResponse "Владелец не найден или некорректная зарплатная вилка"
// @Failure 404 {object} appErrors.ErrorResponse "Вакансия не найдена"
// @Router /jobs/{id} [put]
func (h *JobHandler) Update(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.CreateJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	job, err := h.jobService.Update(id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

// Delete godoc
// @Summary Удалить вакансию
// @Tags jobs
// @Produce json
// @Param id path int true "ID вакансии"
// @Success 200 {object} map[string]string
// @Failure 404 {object} appErrors.ErrorResponse "Вакансия не найдена"
// @Router /jobs/{id} [delete]
func (h *JobHandler) Delete(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.jobService.Delete(id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Job with ID %d has been deleted", id)})
}
