package services

import (
	"jobboard_backend/internal/appErrors"
	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/email"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
)

type AuthService interface {
	Register(req *dto.CreateUserRequest) (*models.User, error)
	Login(req *dto.LoginRequest) (*dto.TokenResponse, error)
	VerifyEmail(token string) error
	ResendVerification(emailAddr string) error
}

type AuthServiceImpl struct {
	userService   *UserService
	userRepo      repositories.UserRepository
	tokens        *auth.TokenService
	emailProvider email.Provider
}

func NewAuthService(
	userService *UserService,
	userRepo repositories.UserRepository,
	tokens *auth.TokenService,
	emailProvider email.Provider,
) AuthService {
	return &AuthServiceImpl{
		userService:   userService,
		userRepo:      userRepo,
		tokens:        tokens,
		emailProvider: emailProvider,
	}
}

// Register - регистрация нового пользователя. Аккаунт создается
// неподтвержденным, письмо с токеном подтверждения уходит следом.
// Сбой отправки письма регистрацию не откатывает: пользователь
// уже создан и может запросить повторную отправку.
func (s *AuthServiceImpl) Register(req *dto.CreateUserRequest) (*models.User, error) {
	user, err := s.userService.Create(req)
	if err != nil {
		return nil, err
	}

	verificationToken, err := s.tokens.IssueVerificationToken(user.Email)
	if err != nil {
		logger.Error("failed to issue verification token", "email", user.Email, "error", err)
		return user, nil
	}

	if err := s.emailProvider.SendVerification(user.Email, user.Name, verificationToken); err != nil {
		logger.Error("failed to send verification email", "email", user.Email, "error", err)
	}

	return user, nil
}

// Login - аутентификация пользователя.
// Несуществующий email и неверный пароль дают одну и ту же ошибку,
// чтобы по ответу нельзя было перебирать аккаунты. Неподтвержденный
// email сообщается отдельно - это осознанное исключение.
func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Username)
	if err != nil {
		if appErrors.Is(err, repositories.ErrUserNotFound) {
			return nil, appErrors.ErrInvalidCredentials
		}
		return nil, appErrors.InternalError(err)
	}

	if !user.IsVerified {
		return nil, appErrors.ErrUserNotVerified
	}

	if !auth.CheckPasswordHash(req.Password, user.HashedPassword) {
		return nil, appErrors.ErrInvalidCredentials
	}

	accessToken, err := s.tokens.IssueAccessToken(user.ID, user.Email, user.Name, user.IsCompany, s.tokens.AccessTTL())
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	return &dto.TokenResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
	}, nil
}

// VerifyEmail - подтверждение email по токену из письма.
// Повторное подтверждение безвредно: флаг переключается только
// в одну сторону.
func (s *AuthServiceImpl) VerifyEmail(token string) error {
	emailAddr, err := s.tokens.ParseVerificationToken(token)
	if err != nil {
		return appErrors.ErrInvalidToken
	}

	return s.userService.MarkVerified(emailAddr)
}

// ResendVerification - повторная отправка письма подтверждения.
// Для уже подтвержденного аккаунта возвращается ошибка. В отличие
// от регистрации сбой отправки здесь фатален - отправка и есть
// смысл операции.
func (s *AuthServiceImpl) ResendVerification(emailAddr string) error {
	user, err := s.userRepo.FindByEmail(emailAddr)
	if err != nil {
		if appErrors.Is(err, repositories.ErrUserNotFound) {
			return appErrors.ErrUserNotFound
		}
		return appErrors.InternalError(err)
	}

	if user.IsVerified {
		return appErrors.ErrAlreadyVerified
	}

	verificationToken, err := s.tokens.IssueVerificationToken(user.Email)
	if err != nil {
		return appErrors.InternalError(err)
	}

	if err := s.emailProvider.SendVerification(user.Email, user.Name, verificationToken); err != nil {
		return appErrors.InternalError(err)
	}

	return nil
}
