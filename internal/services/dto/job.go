package dto

// CreateJobRequest - тело запроса создания и обновления вакансии.
// IsActive - указатель: отсутствие поля означает true при создании.
type CreateJobRequest struct {
	UserID      int    `json:"user_id" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	SalaryFrom  int    `json:"salary_from" validate:"min=0"`
	SalaryTo    int    `json:"salary_to" validate:"min=0"`
	Experience  *int   `json:"experience,omitempty"`
	IsActive    *bool  `json:"is_active,omitempty"`
}
