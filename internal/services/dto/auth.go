package dto

// LoginRequest - OAuth2-style форма логина: в поле username
// передается email пользователя
type LoginRequest struct {
	Username string `form:"username" json:"username" validate:"required"`
	Password string `form:"password" json:"password" validate:"required"`
}

// TokenResponse - ответ успешного логина
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// VerifyEmailRequest - параметры подтверждения email
type VerifyEmailRequest struct {
	Token string `form:"token" json:"token" validate:"required"`
}

// ResendVerificationRequest - параметры повторной отправки письма
type ResendVerificationRequest struct {
	Email string `form:"email" json:"email" validate:"required,email"`
}
