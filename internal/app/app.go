package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/auth"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/config"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/email"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/handlers"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/logger"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/middleware"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/models"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/routes"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/services"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/utils"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/validator"
)

func Run() {
	cfg, err := config.LoadConfig()
	if err != nil {
		// логгер еще не настроен
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	auth.Init(cfg.Auth.JWTSecret, cfg.TokenTTL())

	logger.Info("Connecting to database...")
	gormDB, err := openDatabase(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	logger.Info("Database connected")

	if err := gormDB.AutoMigrate(models.All()...); err != nil {
		logger.Fatal("Failed to migrate database", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB, emailProvider(cfg))

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter собирает сервисы, хэндлеры и middleware; тесты хэндлеров
// вызывают его с sqlite-базой и тестовым провайдером почты.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB, provider email.Provider) *gin.Engine {
	serviceContainer := services.NewServiceContainer(provider, cfg.TokenTTL())
	appHandlers := handlers.NewAppHandlers(serviceContainer, validator.New(), cfg.Auth.LoginPage)

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ginRouter := gin.New()
	ginRouter.Use(gin.Recovery())
	ginRouter.Use(middleware.RequestIDMiddleware())
	ginRouter.Use(middleware.LoggingMiddleware())
	ginRouter.Use(middleware.CORSMiddleware(cfg.Server.CORSOrigins))
	ginRouter.Use(middleware.DBMiddleware(gormDB))

	routes.RegisterRoutes(ginRouter, appHandlers)
	return ginRouter
}

func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get *sql.DB from GORM: %w", err)
	}
	if cfg.Database.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	}
	if cfg.Database.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("database unavailable: %w", err)
	}
	return gormDB, nil
}

// emailProvider - SMTP при email.enabled, иначе письма только пишутся в лог
func emailProvider(cfg *config.Config) email.Provider {
	if !cfg.Email.Enabled {
		logger.Warn("Email delivery disabled, using log provider")
		return email.LogProvider{}
	}

	smtpCfg := email.DefaultConfig()
	smtpCfg.Host = cfg.Email.SMTPHost
	smtpCfg.Port = cfg.Email.SMTPPort
	smtpCfg.Username = cfg.Email.SMTPUsername
	smtpCfg.Password = cfg.Email.SMTPPassword
	smtpCfg.FromEmail = cfg.Email.FromEmail
	if cfg.Email.FromName != "" {
		smtpCfg.FromName = cfg.Email.FromName
	}
	if cfg.Email.TimeoutSeconds > 0 {
		smtpCfg.Timeout = time.Duration(cfg.Email.TimeoutSeconds) * time.Second
	}

	provider := email.NewSMTPProvider(smtpCfg)
	if err := provider.Validate(); err != nil {
		logger.Fatal("Invalid SMTP configuration", "error", err)
	}
	return provider
}

func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := utils.NormalizeEmail(cfg.Admin.FirstAdminEmail)
	adminPassword := cfg.Admin.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var existing models.User
		err := tx.Where("email = ?", adminEmail).First(&existing).Error
		if err == nil {
			logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check for admin user: %w", err)
		}

		hash, err := auth.HashPassword(adminPassword)
		if err != nil {
			return fmt.Errorf("failed to hash admin password: %w", err)
		}

		name := cfg.Admin.FirstAdminName
		if name == "" {
			name = "Administrator"
		}

		admin := &models.User{
			Email:        adminEmail,
			Name:         name,
			PasswordHash: hash,
			Role:         models.UserRoleAdmin,
		}
		if err := tx.Create(admin).Error; err != nil {
			return fmt.Errorf("failed to create admin user: %w", err)
		}

		logger.Info("Created first admin user", "email", adminEmail)
		return nil
	})
}
