package services

import (
	"jobboard_backend/internal/appErrors"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
)

type JobService struct {
	jobRepo  repositories.JobRepository
	userRepo repositories.UserRepository
}

func NewJobService(jobRepo repositories.JobRepository, userRepo repositories.UserRepository) *JobService {
	return &JobService{
		jobRepo:  jobRepo,
		userRepo: userRepo,
	}
}

// validateJob выполняет обе проверки до любой записи:
// сначала существование владельца, потом диапазон зарплаты
func (s *JobService) validateJob(req *dto.CreateJobRequest) error {
	if _, err := s.userRepo.FindByID(req.UserID); err != nil {
		if appErrors.Is(err, repositories.ErrUserNotFound) {
			return appErrors.ErrJobUserNotFound
		}
		return appErrors.InternalError(err)
	}

	if req.SalaryFrom > req.SalaryTo {
		return appErrors.ErrInvalidSalaryRange
	}

	return nil
}

// Create - создание вакансии. is_active по умолчанию true,
// если поле не передано.
func (s *JobService) Create(req *dto.CreateJobRequest) (*models.Job, error) {
	if err := s.validateJob(req); err != nil {
		return nil, err
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	job := &models.Job{
		UserID:      req.UserID,
		Title:       req.Title,
		Description: req.Description,
		SalaryFrom:  req.SalaryFrom,
		SalaryTo:    req.SalaryTo,
		Experience:  req.Experience,
		IsActive:    isActive,
	}

	if err := s.jobRepo.Create(job); err != nil {
		if appErrors.Is(err, repositories.ErrJobOwnerGone) {
			return nil, appErrors.ErrJobUserNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	return job, nil
}

func (s *JobService) GetByID(id int) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(id)
	if err != nil {
		if appErrors.Is(err, repositories.ErrJobNotFound) {
			return nil, appErrors.ErrJobNotFound
		}
		return nil, appErrors.InternalError(err)
	}
	return job, nil
}

// List возвращает все вакансии, новые первыми. Пустой список - не ошибка.
func (s *JobService) List() ([]models.Job, error) {
	jobs, err := s.jobRepo.FindAll()
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	return jobs, nil
}

// Update - полная перезапись вакансии. Владелец и диапазон зарплаты
// перепроверяются: user_id тоже может измениться.
func (s *JobService) Update(id int, req *dto.CreateJobRequest) (*models.Job, error) {
	if _, err := s.GetByID(id); err != nil {
		return nil, err
	}

	if err := s.validateJob(req); err != nil {
		return nil, err
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	job := &models.Job{
		ID:          id,
		UserID:      req.UserID,
		Title:       req.Title,
		Description: req.Description,
		SalaryFrom:  req.SalaryFrom,
		SalaryTo:    req.SalaryTo,
		Experience:  req.Experience,
		IsActive:    isActive,
	}

	if err := s.jobRepo.Update(job); err != nil {
		switch {
		case appErrors.Is(err, repositories.ErrJobNotFound):
			return nil, appErrors.ErrJobNotFound
		case appErrors.Is(err, repositories.ErrJobOwnerGone):
			return nil, appErrors.ErrJobUserNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	return s.GetByID(id)
}

// Delete удаляет вакансию безусловно
func (s *JobService) Delete(id int) error {
	if err := s.jobRepo.Delete(id); err != nil {
		if appErrors.Is(err, repositories.ErrJobNotFound) {
			return appErrors.ErrJobNotFound
		}
		return appErrors.InternalError(err)
	}
	return nil
}
