package repositories

import (
	"errors"
	"time"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrJobNotFound  = errors.New("job not found")
	ErrJobOwnerGone = errors.New("job owner does not exist")
)

type JobRepository interface {
	Create(job *models.Job) error
	FindByID(id int) (*models.Job, error)
	FindAll() ([]models.Job, error)
	Update(job *models.Job) error
	Delete(id int) error
	CountActiveByUserID(userID int) (int64, error)
}

type JobRepositoryImpl struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &JobRepositoryImpl{db: db}
}

// Create сохраняет новую вакансию. Ссылочную целостность окончательно
// гарантирует внешний ключ в базе, ошибка которого транслируется
// в ErrJobOwnerGone.
func (r *JobRepositoryImpl) Create(job *models.Job) error {
	if err := r.db.Create(job).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return ErrJobOwnerGone
		}
		return err
	}
	return nil
}

func (r *JobRepositoryImpl) FindByID(id int) (*models.Job, error) {
	var job models.Job
	err := r.db.First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

// FindAll возвращает все вакансии, новые первыми.
// Пустой список - не ошибка.
func (r *JobRepositoryImpl) FindAll() ([]models.Job, error) {
	jobs := []models.Job{}
	err := r.db.Order("created_at DESC").Find(&jobs).Error
	return jobs, err
}

// Update полностью перезаписывает изменяемые поля вакансии
func (r *JobRepositoryImpl) Update(job *models.Job) error {
	result := r.db.Model(&models.Job{}).Where("id = ?", job.ID).Updates(map[string]interface{}{
		"user_id":     job.UserID,
		"title":       job.Title,
		"description": job.Description,
		"salary_from": job.SalaryFrom,
		"salary_to":   job.SalaryTo,
		"experience":  job.Experience,
		"is_active":   job.IsActive,
		"updated_at":  time.Now().UTC(),
	})
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrForeignKeyViolated) {
			return ErrJobOwnerGone
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

// Delete удаляет вакансию безусловно - обратных зависимостей у нее нет
func (r *JobRepositoryImpl) Delete(id int) error {
	result := r.db.Where("id = ?", id).Delete(&models.Job{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

// CountActiveByUserID считает активные вакансии пользователя.
// Используется как быстрая проверка перед удалением владельца.
func (r *JobRepositoryImpl) CountActiveByUserID(userID int) (int64, error) {
	var count int64
	err := r.db.Model(&models.Job{}).
		Where("user_id = ? AND is_active = ?", userID, true).
		Count(&count).Error
	return count, err
}
