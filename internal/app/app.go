package app

import (
	"fmt"
	"time"

	"jobboard_backend/database"
	"jobboard_backend/internal/config"
	"jobboard_backend/internal/email"
	"jobboard_backend/internal/handlers"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/routes"
	"jobboard_backend/internal/services"

	"jobboard_backend/internal/auth"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := database.ConnectGorm()
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("🚀 Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	tokens := auth.NewTokenService(
		[]byte(cfg.JWT.Secret),
		time.Duration(cfg.JWT.TTL)*time.Minute,
	)

	serviceContainer := initializeServices(cfg, gormDB, tokens)
	appHandlers := handlers.NewAppHandlers(serviceContainer)

	ginRouter := initializeGinRouter(cfg)
	routes.RegisterRoutes(ginRouter, appHandlers, tokens)

	return ginRouter
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB, tokens *auth.TokenService) *services.ServiceContainer {
	emailService := initializeEmailProvider(cfg)

	userRepo := repositories.NewUserRepository(gormDB)
	jobRepo := repositories.NewJobRepository(gormDB)

	userService := services.NewUserService(userRepo, jobRepo)
	jobService := services.NewJobService(jobRepo, userRepo)
	authService := services.NewAuthService(userService, userRepo, tokens, emailService)

	return &services.ServiceContainer{
		UserService:  userService,
		JobService:   jobService,
		AuthService:  authService,
		EmailService: emailService,
	}
}

func initializeEmailProvider(cfg *config.Config) email.Provider {
	if !cfg.Email.Enabled {
		logger.Warn("Email delivery disabled, using mock provider")
		return email.NewMockProvider()
	}

	provider, err := email.NewSMTPProvider(&email.SMTPConfig{
		Host:      cfg.Email.SMTPHost,
		Port:      cfg.Email.SMTPPort,
		Username:  cfg.Email.SMTPUsername,
		Password:  cfg.Email.SMTPPassword,
		FromEmail: cfg.Email.FromEmail,
		FromName:  cfg.Email.FromName,
		BaseURL:   cfg.Email.BaseURL,
	})
	if err != nil {
		logger.Fatal("Failed to initialize SMTP provider", "error", err)
	}
	return provider
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}
