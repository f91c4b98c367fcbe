package services

import (
	"sort"
	"time"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
)

// Фейковые репозитории в памяти повторяют контракт настоящих:
// те же ошибки-сентинелы, та же семантика уникальности и
// ссылочной целостности.

type fakeUserRepo struct {
	users  map[int]*models.User
	jobs   *fakeJobRepo
	nextID int
}

type fakeJobRepo struct {
	jobs   map[int]*models.Job
	users  *fakeUserRepo
	nextID int
}

func newFakeRepos() (*fakeUserRepo, *fakeJobRepo) {
	userRepo := &fakeUserRepo{users: map[int]*models.User{}}
	jobRepo := &fakeJobRepo{jobs: map[int]*models.Job{}, users: userRepo}
	userRepo.jobs = jobRepo
	return userRepo, jobRepo
}

func (r *fakeUserRepo) Create(user *models.User) error {
	for _, existing := range r.users {
		if existing.Email == user.Email || existing.Name == user.Name {
			return repositories.ErrUserAlreadyExists
		}
	}
	r.nextID++
	user.ID = r.nextID
	user.CreatedAt = time.Now().UTC()
	user.UpdatedAt = user.CreatedAt
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) FindByID(id int) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	clone := *user
	return &clone, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindAll() ([]models.User, error) {
	users := []models.User{}
	for _, user := range r.users {
		users = append(users, *user)
	}
	// Новые первыми, как Order("created_at DESC") у настоящего
	sort.Slice(users, func(i, j int) bool {
		return users[i].ID > users[j].ID
	})
	return users, nil
}

func (r *fakeUserRepo) Update(user *models.User) error {
	for id, existing := range r.users {
		if id != user.ID && (existing.Email == user.Email || existing.Name == user.Name) {
			return repositories.ErrUserAlreadyExists
		}
	}
	existing, ok := r.users[user.ID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	existing.Email = user.Email
	existing.Name = user.Name
	existing.HashedPassword = user.HashedPassword
	existing.IsCompany = user.IsCompany
	existing.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *fakeUserRepo) MarkVerified(email string) error {
	for _, user := range r.users {
		if user.Email == email {
			user.IsVerified = true
			user.UpdatedAt = time.Now().UTC()
			return nil
		}
	}
	return repositories.ErrUserNotFound
}

func (r *fakeUserRepo) Delete(id int) error {
	if _, ok := r.users[id]; !ok {
		return repositories.ErrUserNotFound
	}
	if r.jobs != nil {
		count, _ := r.jobs.CountActiveByUserID(id)
		if count > 0 {
			return repositories.ErrUserHasActiveJobs
		}
		// Неактивные вакансии уходят вместе с владельцем
		for jobID, job := range r.jobs.jobs {
			if job.UserID == id {
				delete(r.jobs.jobs, jobID)
			}
		}
	}
	delete(r.users, id)
	return nil
}

func (r *fakeJobRepo) Create(job *models.Job) error {
	if r.users != nil {
		if _, ok := r.users.users[job.UserID]; !ok {
			return repositories.ErrJobOwnerGone
		}
	}
	r.nextID++
	job.ID = r.nextID
	job.CreatedAt = time.Now().UTC()
	job.UpdatedAt = job.CreatedAt
	clone := *job
	r.jobs[job.ID] = &clone
	return nil
}

func (r *fakeJobRepo) FindByID(id int) (*models.Job, error) {
	job, ok := r.jobs[id]
	if !ok {
		return nil, repositories.ErrJobNotFound
	}
	clone := *job
	return &clone, nil
}

func (r *fakeJobRepo) FindAll() ([]models.Job, error) {
	jobs := []models.Job{}
	for _, job := range r.jobs {
		jobs = append(jobs, *job)
	}
	sort.Slice(jobs, func(i, j int) bool {
		return jobs[i].ID > jobs[j].ID
	})
	return jobs, nil
}

func (r *fakeJobRepo) Update(job *models.Job) error {
	existing, ok := r.jobs[job.ID]
	if !ok {
		return repositories.ErrJobNotFound
	}
	if r.users != nil {
		if _, userOK := r.users.users[job.UserID]; !userOK {
			return repositories.ErrJobOwnerGone
		}
	}
	existing.UserID = job.UserID
	existing.Title = job.Title
	existing.Description = job.Description
	existing.SalaryFrom = job.SalaryFrom
	existing.SalaryTo = job.SalaryTo
	existing.Experience = job.Experience
	existing.IsActive = job.IsActive
	existing.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *fakeJobRepo) Delete(id int) error {
	if _, ok := r.jobs[id]; !ok {
		return repositories.ErrJobNotFound
	}
	delete(r.jobs, id)
	return nil
}

func (r *fakeJobRepo) CountActiveByUserID(userID int) (int64, error) {
	var count int64
	for _, job := range r.jobs {
		if job.UserID == userID && job.IsActive {
			count++
		}
	}
	return count, nil
}
