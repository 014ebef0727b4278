package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"jobnest_backend/database"
	"jobnest_backend/internal/auth"
	"jobnest_backend/internal/config"
	"jobnest_backend/internal/email"
	"jobnest_backend/internal/handlers"
	"jobnest_backend/internal/logger"
	"jobnest_backend/internal/middleware"
	"jobnest_backend/internal/repositories"
	"jobnest_backend/internal/routes"
	"jobnest_backend/internal/services"
	"jobnest_backend/internal/storage"
	"jobnest_backend/internal/validator"
	"jobnest_backend/internal/ws"
	"jobnest_backend/pkg/apperrors"
)

// App holds the fully wired application.
type App struct {
	Router *gin.Engine
	DB     *gorm.DB
	Config *config.Config
}

// New builds the application: config, logging, database, migrations and the
// whole service/handler graph.
func New() (*App, error) {
	config.LoadConfig()
	cfg := config.GetConfig()

	logger.Init(cfg.Server.Env)
	apperrors.SetDebug(cfg.Server.Env == "development")

	if err := auth.InitJWT(cfg.JWT.Secret, cfg.JWT.TTL); err != nil {
		return nil, fmt.Errorf("jwt init: %w", err)
	}

	db, err := database.ConnectGorm()
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	st, err := storage.NewStorage(storage.Config{
		Type:       cfg.Storage.Type,
		BasePath:   cfg.Storage.BasePath,
		BaseURL:    cfg.Storage.BaseURL,
		Bucket:     cfg.Storage.Bucket,
		Region:     cfg.Storage.Region,
		AccessKey:  cfg.Storage.AccessKey,
		SecretKey:  cfg.Storage.SecretKey,
		Endpoint:   cfg.Storage.Endpoint,
		PublicRead: cfg.Storage.PublicRead,
	})
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}

	var sender email.Sender
	if cfg.SMTP.Enabled {
		sender, err = email.NewSMTPSender(email.Config{
			Host:      cfg.SMTP.Host,
			Port:      cfg.SMTP.Port,
			Username:  cfg.SMTP.Username,
			Password:  cfg.SMTP.Password,
			FromEmail: cfg.SMTP.FromEmail,
			FromName:  cfg.SMTP.FromName,
		})
		if err != nil {
			return nil, fmt.Errorf("email: %w", err)
		}
	} else {
		sender = email.NoopSender{}
	}

	wsManager := ws.NewManager()
	go wsManager.Run()

	sc := buildServices(db, st, sender, wsManager, cfg)

	router := buildRouter(cfg, db, sc, wsManager)

	logger.Info("application initialized", "env", cfg.Server.Env, "storage", cfg.Storage.Type)
	return &App{Router: router, DB: db, Config: cfg}, nil
}

func buildServices(db *gorm.DB, st storage.Storage, sender email.Sender, publisher services.Publisher, cfg *config.Config) *services.ServiceContainer {
	userRepo := repositories.NewUserRepository(db)
	companyRepo := repositories.NewCompanyRepository(db)
	jobRepo := repositories.NewJobRepository(db)
	applicationRepo := repositories.NewApplicationRepository(db)
	favoriteRepo := repositories.NewFavoriteRepository(db)
	profileRepo := repositories.NewProfileRepository(db)
	skillRepo := repositories.NewSkillRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)

	uploadService := services.NewUploadService(st, cfg.Upload)
	notificationService := services.NewNotificationService(notificationRepo, publisher)

	return &services.ServiceContainer{
		Auth:    services.NewAuthService(userRepo, companyRepo, sender),
		Job:     services.NewJobService(jobRepo, companyRepo),
		Company: services.NewCompanyService(db, companyRepo, userRepo, jobRepo, notificationRepo, uploadService),
		Application: services.NewApplicationService(
			applicationRepo, jobRepo, companyRepo, userRepo,
			uploadService, notificationService, sender),
		Favorite:     services.NewFavoriteService(favoriteRepo, jobRepo),
		Profile:      services.NewProfileService(profileRepo),
		Skill:        services.NewSkillService(skillRepo),
		Notification: notificationService,
		Upload:       uploadService,
	}
}

func buildRouter(cfg *config.Config, db *gorm.DB, sc *services.ServiceContainer, wsManager *ws.Manager) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))

	// Locally stored uploads are served straight from disk.
	if cfg.Storage.Type == "local" {
		router.Static("/api/files", cfg.Storage.BasePath)
	}

	appHandlers := handlers.NewAppHandlers(sc, validator.New())
	routes.RegisterRoutes(router, appHandlers, wsManager)

	return router
}

// SetupRouter wires the full handler graph on top of an existing database
// connection. Used by the integration test server, which owns the connection.
func SetupRouter(cfg *config.Config, db *gorm.DB) (*gin.Engine, error) {
	logger.Init(cfg.Server.Env)
	apperrors.SetDebug(cfg.Server.Env != "production")

	if err := auth.InitJWT(cfg.JWT.Secret, cfg.JWT.TTL); err != nil {
		return nil, fmt.Errorf("jwt init: %w", err)
	}

	st, err := storage.NewStorage(storage.Config{
		Type:     cfg.Storage.Type,
		BasePath: cfg.Storage.BasePath,
		BaseURL:  cfg.Storage.BaseURL,
	})
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}

	wsManager := ws.NewManager()
	go wsManager.Run()

	sc := buildServices(db, st, email.NoopSender{}, wsManager, cfg)
	return buildRouter(cfg, db, sc, wsManager), nil
}

// Run starts the HTTP server.
func (a *App) Run() error {
	addr := fmt.Sprintf("%s:%d", a.Config.Server.Host, a.Config.Server.Port)
	logger.Info("server listening", "addr", addr)
	return a.Router.Run(addr)
}
