package appErrors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorCode - тип для кодов ошибок
type ErrorCode string

// AppError - основная структура ошибки приложения
type AppError struct {
	Code     ErrorCode   `json:"code"`
	Message  string      `json:"message"`
	Details  interface{} `json:"details,omitempty"`
	Err      error       `json:"-"`
	HTTPCode int         `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Конструктор
func New(code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: httpCode,
	}
}

// С цепочкой ошибок
func Wrap(err error, code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

// Вспомогательные методы
func (e *AppError) WithDetails(details interface{}) *AppError {
	return &AppError{
		Code:     e.Code,
		Message:  e.Message,
		Details:  details,
		Err:      e.Err,
		HTTPCode: e.HTTPCode,
	}
}

func (e *AppError) WithError(err error) *AppError {
	return &AppError{
		Code:     e.Code,
		Message:  e.Message,
		Details:  e.Details,
		Err:      err,
		HTTPCode: e.HTTPCode,
	}
}

// Для маршалинга в JSON
func (e *AppError) MarshalJSON() ([]byte, error) {
	type alias struct {
		Code    ErrorCode   `json:"code"`
		Message string      `json:"message"`
		Details interface{} `json:"details,omitempty"`
	}
	return json.Marshal(&alias{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	})
}

// Is - обертка над стандартной функцией errors.Is
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As - обертка над стандартной функцией errors.As
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// Предопределенные ошибки
var (
	// Аутентификация
	ErrInvalidCredentials = New(CodeInvalidCredentials, "Incorrect email or password", http.StatusUnauthorized)
	ErrUnauthorized       = New(CodeUnauthorized, "Authentication required", http.StatusUnauthorized)
	ErrForbidden          = New(CodeForbidden, "Not enough permissions", http.StatusForbidden)
	ErrInvalidToken       = New(CodeInvalidToken, "Invalid or expired token", http.StatusBadRequest)
	ErrUserNotVerified    = New(CodeUserNotVerified, "Email not verified. Check your email.", http.StatusUnauthorized)
	ErrAlreadyVerified    = New(CodeAlreadyVerified, "Email already verified", http.StatusBadRequest)

	// Пользователи
	ErrUserNotFound      = New(CodeUserNotFound, "User not found", http.StatusNotFound)
	ErrUserAlreadyExists = New(CodeUserAlreadyExists, "Email or name already registered", http.StatusConflict)
	ErrUserConflict      = New(CodeUserAlreadyExists, "Email or name already in use", http.StatusConflict)
	ErrUserHasActiveJobs = New(CodeUserHasActiveJobs, "Cannot delete user with active jobs", http.StatusConflict)

	// Вакансии
	ErrJobNotFound        = New(CodeJobNotFound, "Job not found", http.StatusNotFound)
	ErrJobUserNotFound    = New(CodeUserNotFound, "User not found", http.StatusBadRequest)
	ErrInvalidSalaryRange = New(CodeInvalidSalaryRange, "salary_from cannot be greater than salary_to", http.StatusBadRequest)

	// Валидация
	ErrValidationFailed = New(CodeValidationFailed, "Validation failed", http.StatusBadRequest)
)

// Функции-помощники для создания ошибок с деталями
func ValidationError(details interface{}) *AppError {
	return ErrValidationFailed.WithDetails(details)
}

func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "Internal server error", http.StatusInternalServerError)
}

func NewUnauthorizedError(message string) *AppError {
	return New(CodeUnauthorized, message, http.StatusUnauthorized)
}

func NewBadRequestError(message string) *AppError {
	return New(CodeValidationFailed, message, http.StatusBadRequest)
}
