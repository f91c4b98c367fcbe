package middleware

import (
	"net/http"
	"strings"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// Ключи, под которыми claims кладутся в gin.Context
const (
	ContextUserIDKey = "userID"
	ContextClaimsKey = "claims"
)

// AuthMiddleware - middleware проверки JWT
func AuthMiddleware(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing or invalid"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := tokens.ParseAccessToken(tokenStr)
		if err != nil {
			// Истечение и неверная подпись наружу не различаются
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Could not validate credentials"})
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Could not validate credentials"})
			return
		}

		// Сохраняем claims в контекст
		c.Set(ContextUserIDKey, userID)
		c.Set(ContextClaimsKey, claims)
		c.Request = c.Request.WithContext(logger.WithUserID(c.Request.Context(), userID))
		c.Next()
	}
}

// CurrentClaims достает claims текущего пользователя из контекста
func CurrentClaims(c *gin.Context) (*auth.Claims, bool) {
	val, exists := c.Get(ContextClaimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := val.(*auth.Claims)
	return claims, ok
}
