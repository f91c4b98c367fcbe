package services

import "jobboard_backend/internal/email"

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	UserService  *UserService
	JobService   *JobService
	AuthService  AuthService
	EmailService email.Provider
}
