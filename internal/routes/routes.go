package routes

import (
	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/handlers"
	"jobboard_backend/internal/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes регистрирует все HTTP маршруты приложения.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	tokens *auth.TokenService,
) {
	authRequired := middleware.AuthMiddleware(tokens)

	root := ginRouter.Group("/")
	{
		appHandlers.Auth.RegisterRoutes(root)
		appHandlers.User.RegisterRoutes(root)
		appHandlers.Job.RegisterRoutes(root, authRequired)
	}

	ginRouter.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Биржа труда"})
	})
	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	ginRouter.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
