package app

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"stagelink_backend/internal/auth"
	"stagelink_backend/internal/config"
	"stagelink_backend/internal/email"
	"stagelink_backend/internal/handlers"
	"stagelink_backend/internal/logger"
	"stagelink_backend/internal/middleware"
	"stagelink_backend/internal/models"
	"stagelink_backend/internal/repositories"
	"stagelink_backend/internal/routes"
	"stagelink_backend/internal/services"
	"stagelink_backend/internal/validator"
)

// SetupRouter builds the gin engine with the full middleware chain and API
// surface. Tests call this directly with their own database handle and mailer.
func SetupRouter(db *gorm.DB, mailer email.Provider) *gin.Engine {
	cfg := config.GetConfig()
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.CORSMiddleware(),
		middleware.DBMiddleware(db),
	)

	h := handlers.NewAppHandlers(services.NewServiceContainer(mailer), validator.New())
	routes.SetupRoutes(r, h)
	return r
}

// AutoMigrate creates or updates the schema for every model.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Offer{},
		&models.Match{},
		&models.Message{},
		&models.Review{},
	)
}

// Run boots the whole server: config, logging, database, schema, admin seed,
// HTTP listener. It blocks until the listener stops.
func Run() error {
	config.LoadConfig()
	cfg := config.GetConfig()

	logger.Init(cfg.Server.Env)

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}

	if err := AutoMigrate(db); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}

	if err := seedFirstAdmin(db, cfg); err != nil {
		return fmt.Errorf("seed first admin: %w", err)
	}

	// Sweep refresh tokens that expired while the server was down.
	if err := repositories.NewRefreshTokenRepository().DeleteExpired(db); err != nil {
		logger.Warn("expired refresh token sweep failed", "error", err)
	}

	r := SetupRouter(db, email.NewSMTPProvider(cfg.Email))

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("server listening", "addr", addr, "env", cfg.Server.Env)
	return r.Run(addr)
}

// seedFirstAdmin creates the bootstrap admin account on first boot. It is a
// no-op when an admin already exists or the seed credentials are not set.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.FirstAdminEmail == "" || cfg.FirstAdminPassword == "" {
		logger.Warn("first admin seed skipped, credentials not configured")
		return nil
	}

	userRepo := repositories.NewUserRepository()

	count, err := userRepo.CountByRole(db, models.UserRoleAdmin)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(cfg.FirstAdminPassword)
	if err != nil {
		return err
	}

	admin := &models.User{
		Email:        cfg.FirstAdminEmail,
		PasswordHash: hash,
		Role:         models.UserRoleAdmin,
		Name:         "Admin",
		City:         "HQ",
	}
	if err := userRepo.Create(db, admin); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil
		}
		return err
	}

	logger.Info("first admin account created", "email", cfg.FirstAdminEmail)
	return nil
}
