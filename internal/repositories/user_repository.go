package repositories

import (
	"errors"
	"time"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrUserHasActiveJobs = errors.New("user has active jobs")
)

type UserRepository interface {
	Create(user *models.User) error
	FindByID(id int) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	FindAll() ([]models.User, error)
	Update(user *models.User) error
	MarkVerified(email string) error
	Delete(id int) error
}

type UserRepositoryImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &UserRepositoryImpl{db: db}
}

// Create сохраняет нового пользователя. Предварительная проверка
// уникальности дает дружелюбную ошибку, уникальные индексы в базе -
// окончательная защита от гонки двух одновременных регистраций.
func (r *UserRepositoryImpl) Create(user *models.User) error {
	var count int64
	err := r.db.Model(&models.User{}).
		Where("email = ? OR name = ?", user.Email, user.Name).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrUserAlreadyExists
	}

	if err := r.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrUserAlreadyExists
		}
		return err
	}
	return nil
}

func (r *UserRepositoryImpl) FindByID(id int) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindAll возвращает всех пользователей, новые первыми
func (r *UserRepositoryImpl) FindAll() ([]models.User, error) {
	users := []models.User{}
	err := r.db.Order("created_at DESC").Find(&users).Error
	return users, err
}

// Update полностью перезаписывает изменяемые поля пользователя.
// Флаг is_verified обновлением не сбрасывается.
func (r *UserRepositoryImpl) Update(user *models.User) error {
	var count int64
	err := r.db.Model(&models.User{}).
		Where("id <> ? AND (email = ? OR name = ?)", user.ID, user.Email, user.Name).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrUserAlreadyExists
	}

	result := r.db.Model(&models.User{}).Where("id = ?", user.ID).Updates(map[string]interface{}{
		"email":           user.Email,
		"name":            user.Name,
		"hashed_password": user.HashedPassword,
		"is_company":      user.IsCompany,
		"updated_at":      time.Now().UTC(),
	})
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return ErrUserAlreadyExists
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// MarkVerified выставляет флаг подтверждения email. Идемпотентна:
// повторное подтверждение ничего не ломает.
func (r *UserRepositoryImpl) MarkVerified(email string) error {
	result := r.db.Model(&models.User{}).Where("email = ?", email).Updates(map[string]interface{}{
		"is_verified": true,
		"updated_at":  time.Now().UTC(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// Delete удаляет пользователя вместе с его неактивными вакансиями.
// Проверка активных вакансий, зачистка неактивных и само удаление
// выполняются в одной транзакции, чтобы параллельная активация
// вакансии не проскочила между проверкой и удалением.
func (r *UserRepositoryImpl) Delete(id int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var activeJobs int64
		err := tx.Model(&models.Job{}).
			Where("user_id = ? AND is_active = ?", id, true).
			Count(&activeJobs).Error
		if err != nil {
			return err
		}
		if activeJobs > 0 {
			return ErrUserHasActiveJobs
		}

		// Оставшиеся вакансии неактивны. Внешний ключ не даст
		// удалить пользователя, пока они существуют.
		if err := tx.Where("user_id = ?", id).Delete(&models.Job{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&models.User{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrUserNotFound
		}
		return nil
	})
}
