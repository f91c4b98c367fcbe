package repositories_test

import (
	"os"
	"sync"
	"testing"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Тесты репозиториев ходят в настоящий Postgres: семантика INSERT,
// внешних ключей и трансляции ошибок видна только на живой базе.
// Каждый тест работает в транзакции и откатывается.

var (
	dbOnce sync.Once
	testDB *gorm.DB
	dbErr  error
)

func beginTx(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL is not set, skipping database tests")
	}

	dbOnce.Do(func() {
		testDB, dbErr = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
		if dbErr != nil {
			return
		}
		dbErr = testDB.AutoMigrate(&models.User{}, &models.Job{})
	})
	require.NoError(t, dbErr)

	tx := testDB.Begin()
	require.NoError(t, tx.Error)
	t.Cleanup(func() { tx.Rollback() })
	return tx
}

func seedUser(t *testing.T, tx *gorm.DB, email, name string) *models.User {
	t.Helper()

	user := &models.User{
		Email:          email,
		Name:           name,
		HashedPassword: "not-a-real-hash",
	}
	require.NoError(t, repositories.NewUserRepository(tx).Create(user))
	return user
}

// TestJobCreate_ExplicitInactivePersisted - явный is_active=false
// доезжает до базы, а не подменяется значением по умолчанию
func TestJobCreate_ExplicitInactivePersisted(t *testing.T) {
	t.Parallel()

	tx := beginTx(t)
	owner := seedUser(t, tx, "inactive-job@test.com", "Inactive Job Owner")
	jobRepo := repositories.NewJobRepository(tx)

	job := &models.Job{
		UserID:      owner.ID,
		Title:       "Draft",
		Description: "Not published yet",
		IsActive:    false,
	}
	require.NoError(t, jobRepo.Create(job))

	stored, err := jobRepo.FindByID(job.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsActive)
}

// TestUserDelete_InactiveJobsRemoved - пользователь с только
// неактивными вакансиями удаляется, вакансии уходят вместе с ним
func TestUserDelete_InactiveJobsRemoved(t *testing.T) {
	t.Parallel()

	tx := beginTx(t)
	owner := seedUser(t, tx, "retired@test.com", "Retired Employer")
	userRepo := repositories.NewUserRepository(tx)
	jobRepo := repositories.NewJobRepository(tx)

	job := &models.Job{
		UserID:      owner.ID,
		Title:       "Closed Position",
		Description: "Backend",
		IsActive:    false,
	}
	require.NoError(t, jobRepo.Create(job))

	require.NoError(t, userRepo.Delete(owner.ID))

	_, err := userRepo.FindByID(owner.ID)
	assert.ErrorIs(t, err, repositories.ErrUserNotFound)
	_, err = jobRepo.FindByID(job.ID)
	assert.ErrorIs(t, err, repositories.ErrJobNotFound)
}

// TestUserDelete_ActiveJobGuard - активная вакансия блокирует удаление
func TestUserDelete_ActiveJobGuard(t *testing.T) {
	t.Parallel()

	tx := beginTx(t)
	owner := seedUser(t, tx, "busy@test.com", "Busy Employer")
	userRepo := repositories.NewUserRepository(tx)
	jobRepo := repositories.NewJobRepository(tx)

	require.NoError(t, jobRepo.Create(&models.Job{
		UserID:      owner.ID,
		Title:       "Open Position",
		Description: "Backend",
		IsActive:    true,
	}))

	err := userRepo.Delete(owner.ID)
	assert.ErrorIs(t, err, repositories.ErrUserHasActiveJobs)

	_, err = userRepo.FindByID(owner.ID)
	assert.NoError(t, err)
}

// TestUserCreate_DuplicateKeyTranslated - уникальный индекс базы
// приходит как gorm.ErrDuplicatedKey, репозиторий отдает свой сентинел
func TestUserCreate_DuplicateKeyTranslated(t *testing.T) {
	t.Parallel()

	tx := beginTx(t)
	seedUser(t, tx, "duplicate-db@test.com", "Duplicate DB User")
	userRepo := repositories.NewUserRepository(tx)

	err := userRepo.Create(&models.User{
		Email:          "duplicate-db@test.com",
		Name:           "Another Name Entirely",
		HashedPassword: "not-a-real-hash",
	})
	assert.ErrorIs(t, err, repositories.ErrUserAlreadyExists)

	// Гонку мимо предварительной проверки имитирует прямой INSERT:
	// в точке SAVEPOINT срабатывает сам индекс
	rawErr := tx.Transaction(func(inner *gorm.DB) error {
		return inner.Create(&models.User{
			Email:          "duplicate-db@test.com",
			Name:           "Race Winner",
			HashedPassword: "not-a-real-hash",
		}).Error
	})
	assert.ErrorIs(t, rawErr, gorm.ErrDuplicatedKey)
}

// TestJobCreate_ForeignKeyTranslated - нарушение внешнего ключа
// транслируется в ErrJobOwnerGone
func TestJobCreate_ForeignKeyTranslated(t *testing.T) {
	t.Parallel()

	tx := beginTx(t)
	jobRepo := repositories.NewJobRepository(tx)

	err := jobRepo.Create(&models.Job{
		UserID:      999999999,
		Title:       "Orphan Job",
		Description: "No owner",
		IsActive:    true,
	})
	assert.ErrorIs(t, err, repositories.ErrJobOwnerGone)
}
