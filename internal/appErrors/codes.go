package appErrors

// Коды ошибок сгруппированные по доменам
const (
	// Аутентификация и авторизация
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"
	CodeTokenExpired       ErrorCode = "TOKEN_EXPIRED"

	// Валидация
	CodeValidationFailed   ErrorCode = "VALIDATION_FAILED"
	CodeInvalidSalaryRange ErrorCode = "INVALID_SALARY_RANGE"

	// Ресурсы
	CodeUserNotFound ErrorCode = "USER_NOT_FOUND"
	CodeJobNotFound  ErrorCode = "JOB_NOT_FOUND"

	// Бизнес-логика
	CodeUserAlreadyExists ErrorCode = "USER_ALREADY_EXISTS"
	CodeUserNotVerified   ErrorCode = "USER_NOT_VERIFIED"
	CodeAlreadyVerified   ErrorCode = "ALREADY_VERIFIED"
	CodeUserHasActiveJobs ErrorCode = "USER_HAS_ACTIVE_JOBS"

	// Системные ошибки
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError ErrorCode = "DATABASE_ERROR"
)
