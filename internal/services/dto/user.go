package dto

// CreateUserRequest - тело запроса регистрации и обновления
// пользователя (обновление полностью перезаписывает поля)
type CreateUserRequest struct {
	Email     string `json:"email" validate:"required,email,min=5"`
	Name      string `json:"name" validate:"required,min=2"`
	Password  string `json:"password" validate:"required,min=6"`
	IsCompany bool   `json:"is_company"`
}
