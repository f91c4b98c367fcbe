package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strconv"
	"testing"
	"time"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/email"
	"jobboard_backend/internal/handlers"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/routes"
	"jobboard_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// Репозитории в памяти с контрактом настоящих. Хэндлеры тестируются
// через полный роутер, как их видит клиент.

type memUserRepo struct {
	users  map[int]*models.User
	jobs   *memJobRepo
	nextID int
}

type memJobRepo struct {
	jobs   map[int]*models.Job
	users  *memUserRepo
	nextID int
}

func (r *memUserRepo) Create(user *models.User) error {
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

func (r *memUserRepo) FindByID(id int) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	clone := *user
	return &clone, nil
}

func (r *memUserRepo) FindByEmail(emailAddr string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == emailAddr {
			clone := *user
			return &clone, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *memUserRepo) FindAll() ([]models.User, error) {
	users := []models.User{}
	for _, user := range r.users {
		users = append(users, *user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID > users[j].ID })
	return users, nil
}

func (r *memUserRepo) Update(user *models.User) error {
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
	return nil
}

func (r *memUserRepo) MarkVerified(emailAddr string) error {
	for _, user := range r.users {
		if user.Email == emailAddr {
			user.IsVerified = true
			return nil
		}
	}
	return repositories.ErrUserNotFound
}

func (r *memUserRepo) Delete(id int) error {
	if _, ok := r.users[id]; !ok {
		return repositories.ErrUserNotFound
	}
	if count, _ := r.jobs.CountActiveByUserID(id); count > 0 {
		return repositories.ErrUserHasActiveJobs
	}
	for jobID, job := range r.jobs.jobs {
		if job.UserID == id {
			delete(r.jobs.jobs, jobID)
		}
	}
	delete(r.users, id)
	return nil
}

func (r *memJobRepo) Create(job *models.Job) error {
	if _, ok := r.users.users[job.UserID]; !ok {
		return repositories.ErrJobOwnerGone
	}
	r.nextID++
	job.ID = r.nextID
	clone := *job
	r.jobs[job.ID] = &clone
	return nil
}

func (r *memJobRepo) FindByID(id int) (*models.Job, error) {
	job, ok := r.jobs[id]
	if !ok {
		return nil, repositories.ErrJobNotFound
	}
	clone := *job
	return &clone, nil
}

func (r *memJobRepo) FindAll() ([]models.Job, error) {
	jobs := []models.Job{}
	for _, job := range r.jobs {
		jobs = append(jobs, *job)
	}
	sort.Slice(jobs, func(i, j int) bool { return jobs[i].ID > jobs[j].ID })
	return jobs, nil
}

func (r *memJobRepo) Update(job *models.Job) error {
	existing, ok := r.jobs[job.ID]
	if !ok {
		return repositories.ErrJobNotFound
	}
	if _, userOK := r.users.users[job.UserID]; !userOK {
		return repositories.ErrJobOwnerGone
	}
	*existing = *job
	return nil
}

func (r *memJobRepo) Delete(id int) error {
	if _, ok := r.jobs[id]; !ok {
		return repositories.ErrJobNotFound
	}
	delete(r.jobs, id)
	return nil
}

func (r *memJobRepo) CountActiveByUserID(userID int) (int64, error) {
	var count int64
	for _, job := range r.jobs {
		if job.UserID == userID && job.IsActive {
			count++
		}
	}
	return count, nil
}

type testServer struct {
	router  *gin.Engine
	tokens  *auth.TokenService
	mailbox *email.MockProvider
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	userRepo := &memUserRepo{users: map[int]*models.User{}}
	jobRepo := &memJobRepo{jobs: map[int]*models.Job{}, users: userRepo}
	userRepo.jobs = jobRepo

	tokens := auth.NewTokenService([]byte("test-secret-key"), 30*time.Minute)
	mailbox := email.NewMockProvider()

	userService := services.NewUserService(userRepo, jobRepo)
	jobService := services.NewJobService(jobRepo, userRepo)
	authService := services.NewAuthService(userService, userRepo, tokens, mailbox)

	appHandlers := handlers.NewAppHandlers(&services.ServiceContainer{
		UserService:  userService,
		JobService:   jobService,
		AuthService:  authService,
		EmailService: mailbox,
	})

	router := gin.New()
	routes.RegisterRoutes(router, appHandlers, tokens)

	return &testServer{router: router, tokens: tokens, mailbox: mailbox}
}

func (ts *testServer) send(t *testing.T, method, path, token string, body interface{}) (*httptest.ResponseRecorder, string) {
	t.Helper()

	var reader *bytes.Reader
	contentType := "application/json"
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case url.Values:
		reader = bytes.NewReader([]byte(b.Encode()))
		contentType = "application/x-www-form-urlencoded"
	default:
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", contentType)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	return rec, rec.Body.String()
}

func itoa(id int) string {
	return strconv.Itoa(id)
}

// registerUser создает пользователя через API и возвращает его id
func (ts *testServer) registerUser(t *testing.T, emailAddr, name string, isCompany bool) int {
	t.Helper()

	rec, body := ts.send(t, http.MethodPost, "/users", "", map[string]interface{}{
		"email":      emailAddr,
		"name":       name,
		"password":   "super_password123",
		"is_company": isCompany,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("register %s: status %d, body %s", emailAddr, rec.Code, body)
	}

	var user models.User
	if err := json.Unmarshal([]byte(body), &user); err != nil {
		t.Fatalf("unmarshal user: %v", err)
	}
	return user.ID
}

// login подтверждает email через токен из письма и логинится
func (ts *testServer) login(t *testing.T, emailAddr string) string {
	t.Helper()

	var verifyToken string
	for _, msg := range ts.mailbox.Sent {
		if msg.To == emailAddr {
			verifyToken = msg.Token
		}
	}
	if verifyToken == "" {
		t.Fatalf("no verification email for %s", emailAddr)
	}

	rec, body := ts.send(t, http.MethodGet, "/verify-email?token="+url.QueryEscape(verifyToken), "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("verify %s: status %d, body %s", emailAddr, rec.Code, body)
	}

	form := url.Values{}
	form.Set("username", emailAddr)
	form.Set("password", "super_password123")
	rec, body = ts.send(t, http.MethodPost, "/login", "", form)
	if rec.Code != http.StatusOK {
		t.Fatalf("login %s: status %d, body %s", emailAddr, rec.Code, body)
	}

	var resp struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		t.Fatalf("unmarshal token: %v", err)
	}
	if resp.TokenType != "bearer" {
		t.Fatalf("unexpected token type %q", resp.TokenType)
	}
	return resp.AccessToken
}
