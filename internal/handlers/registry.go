package handlers

import (
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/validator"
)

// AppHandlers собирает все HTTP-обработчики приложения
type AppHandlers struct {
	User *UserHandler
	Job  *JobHandler
	Auth *AuthHandler
}

func NewAppHandlers(sc *services.ServiceContainer) *AppHandlers {
	base := NewBaseHandler(validator.New())

	return &AppHandlers{
		User: NewUserHandler(base, sc.AuthService, sc.UserService),
		Job:  NewJobHandler(base, sc.JobService),
		Auth: NewAuthHandler(base, sc.AuthService),
	}
}
