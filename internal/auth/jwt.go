package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

const (
	// TTL access-токена, если вызывающий не задал свой
	DefaultAccessTokenTTL = 15 * time.Minute
	// Токен подтверждения email живет сутки
	VerificationTokenTTL = 24 * time.Hour
)

// Claims — утверждения access-токена: стандартные плюс данные
// пользователя, чтобы не ходить в базу на каждый запрос
type Claims struct {
	jwt.RegisteredClaims
	Email     string `json:"email"`
	Name      string `json:"name"`
	IsCompany bool   `json:"is_company"`
}

// UserID возвращает идентификатор пользователя из sub
func (c *Claims) UserID() (int, error) {
	id, err := strconv.Atoi(c.Subject)
	if err != nil {
		return 0, ErrInvalidToken
	}
	return id, nil
}

// TokenService выпускает и проверяет подписанные токены.
// Ключ подписи и часы передаются в конструктор, чтобы логика
// истечения была тестируемой.
type TokenService struct {
	secretKey []byte
	accessTTL time.Duration
	now       func() time.Time
}

func NewTokenService(secretKey []byte, accessTTL time.Duration) *TokenService {
	if accessTTL <= 0 {
		accessTTL = DefaultAccessTokenTTL
	}
	return &TokenService{
		secretKey: secretKey,
		accessTTL: accessTTL,
		now:       time.Now,
	}
}

// WithClock подменяет источник времени (для тестов)
func (s *TokenService) WithClock(now func() time.Time) *TokenService {
	s.now = now
	return s
}

// AccessTTL возвращает настроенный TTL access-токена
func (s *TokenService) AccessTTL() time.Duration {
	return s.accessTTL
}

// IssueAccessToken выпускает access-токен с данными пользователя.
// ttl <= 0 означает TTL по умолчанию (15 минут).
func (s *TokenService) IssueAccessToken(userID int, email, name string, isCompany bool, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = DefaultAccessTokenTTL
	}

	now := s.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(userID),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Email:     email,
		Name:      name,
		IsCompany: isCompany,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

// IssueVerificationToken выпускает токен подтверждения email
// с sub = email и сроком жизни 24 часа
func (s *TokenService) IssueVerificationToken(email string) (string, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   email,
		ExpiresAt: jwt.NewNumericDate(now.Add(VerificationTokenTTL)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

// ParseAccessToken проверяет подпись и срок жизни access-токена.
// ErrTokenExpired возвращается только для истекших токенов,
// все остальные проблемы - ErrInvalidToken.
func (s *TokenService) ParseAccessToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, s.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// ParseVerificationToken проверяет токен подтверждения и возвращает
// email из sub. Подпись, формат и истечение схлопываются в одну
// ошибку - вызывающему незачем их различать.
func (s *TokenService) ParseVerificationToken(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, s.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}

func (s *TokenService) keyFunc(t *jwt.Token) (interface{}, error) {
	return s.secretKey, nil
}
