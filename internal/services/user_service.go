package services

import (
	"jobboard_backend/internal/appErrors"
	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
)

type UserService struct {
	userRepo repositories.UserRepository
	jobRepo  repositories.JobRepository
}

func NewUserService(userRepo repositories.UserRepository, jobRepo repositories.JobRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
		jobRepo:  jobRepo,
	}
}

// Create - создание нового пользователя. Email и имя должны быть
// уникальны, пароль хешируется, аккаунт создается неподтвержденным.
func (s *UserService) Create(req *dto.CreateUserRequest) (*models.User, error) {
	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	user := &models.User{
		Email:          req.Email,
		Name:           req.Name,
		HashedPassword: hashedPassword,
		IsCompany:      req.IsCompany,
		IsVerified:     false,
	}

	if err := s.userRepo.Create(user); err != nil {
		if appErrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, appErrors.ErrUserAlreadyExists
		}
		return nil, appErrors.InternalError(err)
	}

	return user, nil
}

func (s *UserService) GetByID(id int) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if appErrors.Is(err, repositories.ErrUserNotFound) {
			return nil, appErrors.ErrUserNotFound
		}
		return nil, appErrors.InternalError(err)
	}
	return user, nil
}

func (s *UserService) GetByEmail(email string) (*models.User, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if appErrors.Is(err, repositories.ErrUserNotFound) {
			return nil, appErrors.ErrUserNotFound
		}
		return nil, appErrors.InternalError(err)
	}
	return user, nil
}

// List возвращает всех пользователей, новые первыми
func (s *UserService) List() ([]models.User, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	return users, nil
}

// Update - полная перезапись изменяемых полей пользователя.
// Пароль всегда перехешируется, флаг подтверждения не сбрасывается.
func (s *UserService) Update(id int, req *dto.CreateUserRequest) (*models.User, error) {
	if _, err := s.GetByID(id); err != nil {
		return nil, err
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	user := &models.User{
		ID:             id,
		Email:          req.Email,
		Name:           req.Name,
		HashedPassword: hashedPassword,
		IsCompany:      req.IsCompany,
	}

	if err := s.userRepo.Update(user); err != nil {
		switch {
		case appErrors.Is(err, repositories.ErrUserAlreadyExists):
			return nil, appErrors.ErrUserConflict
		case appErrors.Is(err, repositories.ErrUserNotFound):
			return nil, appErrors.ErrUserNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	return s.GetByID(id)
}

// Delete - удаление пользователя. Пользователь с активными
// вакансиями не удаляется.
func (s *UserService) Delete(id int) error {
	// Быстрая проверка ради дружелюбной ошибки; авторитетная
	// повторяется в транзакции удаления
	activeJobs, err := s.jobRepo.CountActiveByUserID(id)
	if err != nil {
		return appErrors.InternalError(err)
	}
	if activeJobs > 0 {
		return appErrors.ErrUserHasActiveJobs
	}

	if err := s.userRepo.Delete(id); err != nil {
		switch {
		case appErrors.Is(err, repositories.ErrUserNotFound):
			return appErrors.ErrUserNotFound
		case appErrors.Is(err, repositories.ErrUserHasActiveJobs):
			return appErrors.ErrUserHasActiveJobs
		}
		return appErrors.InternalError(err)
	}
	return nil
}

// MarkVerified выставляет флаг подтверждения email. Идемпотентна.
func (s *UserService) MarkVerified(email string) error {
	if err := s.userRepo.MarkVerified(email); err != nil {
		if appErrors.Is(err, repositories.ErrUserNotFound) {
			return appErrors.ErrUserNotFound
		}
		return appErrors.InternalError(err)
	}
	return nil
}
