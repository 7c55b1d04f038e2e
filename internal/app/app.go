package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"recruitment_backend/database"
	"recruitment_backend/internal/config"
	"recruitment_backend/internal/email"
	"recruitment_backend/internal/handlers"
	"recruitment_backend/internal/logger"
	"recruitment_backend/internal/middleware"
	"recruitment_backend/internal/repositories"
	"recruitment_backend/internal/routes"
	"recruitment_backend/internal/services"
	"recruitment_backend/internal/session"
	"recruitment_backend/internal/storage"
	"recruitment_backend/internal/validator"
	"recruitment_backend/internal/views"
	"recruitment_backend/internal/workers"
	"recruitment_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// App - собранное приложение: роутер и сервисы поверх одной БД.
type App struct {
	Router   *gin.Engine
	Services *services.ServiceContainer

	sessionWorker *workers.SessionWorker
}

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := database.Open(cfg.Database.DSN, database.Options{
		Env:             cfg.Server.Env,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Failed to migrate database", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application, err := New(ctx, cfg, gormDB)
	if err != nil {
		logger.Fatal("Failed to initialize application", "error", err)
	}

	if err := seedFirstAdmin(ctx, gormDB, cfg, application.Services.AdminService); err != nil {
		// без администратора модерация невозможна
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	application.StartWorkers(ctx)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:              address,
		Handler:           application.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", "address", address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server startup error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}
}

// New собирает хранилище, почту, сессии, сервисы, хэндлеры и роутер.
func New(ctx context.Context, cfg *config.Config, gormDB *gorm.DB) (*App, error) {
	apperrors.DefaultHandler.Debug = !cfg.IsProduction()

	storageInstance, err := storage.NewStorage(ctx, storage.Config{
		Type:            cfg.Storage.Type,
		BasePath:        cfg.Storage.BasePath,
		Bucket:          cfg.Storage.Bucket,
		Region:          cfg.Storage.Region,
		AccessKey:       cfg.Storage.AccessKey,
		SecretKey:       cfg.Storage.SecretKey,
		Endpoint:        cfg.Storage.Endpoint,
		CredentialsFile: cfg.Storage.CredentialsFile,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	mailer, err := initializeMailer(cfg)
	if err != nil {
		return nil, err
	}

	sessionStore, sessionWorker, err := initializeSessionStore(ctx, cfg, gormDB)
	if err != nil {
		return nil, err
	}
	sessions := session.NewManager(sessionStore, cfg.SecretKey, cfg.Session.TTL, cfg.Session.CookieSecure)

	// 1. Сервисы
	serviceContainer := services.NewServiceContainer(storageInstance, mailer, &services.ResumeConfig{
		MaxSize:           cfg.Upload.MaxSize,
		AllowedExtensions: cfg.Upload.AllowedExtensions,
	})

	// 2. Хэндлеры
	appHandlers := handlers.NewAppHandlers(serviceContainer, sessions, validator.New())

	// 3. Gin
	ginRouter, err := initializeGinRouter(cfg, gormDB, sessions, appHandlers)
	if err != nil {
		return nil, err
	}

	// 4. Маршруты
	routes.RegisterRoutes(ginRouter, appHandlers)

	return &App{
		Router:        ginRouter,
		Services:      serviceContainer,
		sessionWorker: sessionWorker,
	}, nil
}

// StartWorkers запускает фоновые задачи до отмены ctx.
func (a *App) StartWorkers(ctx context.Context) {
	if a.sessionWorker != nil {
		a.sessionWorker.Start(ctx)
	}
}

func initializeMailer(cfg *config.Config) (*email.Mailer, error) {
	provider, err := email.NewProvider(cfg.Email.Provider, email.SMTPConfig{
		Host:      cfg.Email.SMTPHost,
		Port:      cfg.Email.SMTPPort,
		Username:  cfg.Email.SMTPUsername,
		Password:  cfg.Email.SMTPPassword,
		FromEmail: cfg.Email.FromEmail,
		FromName:  cfg.Email.FromName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize mail provider: %w", err)
	}

	templates, err := email.NewDefaultTemplateManager()
	if err != nil {
		return nil, fmt.Errorf("failed to load email templates: %w", err)
	}
	logger.Info("Mailer initialized", "provider", cfg.Email.Provider)
	return email.NewMailer(provider, templates, cfg.Email.FromEmail), nil
}

// initializeSessionStore: Redis хранит TTL сам, для БД нужен воркер очистки.
func initializeSessionStore(ctx context.Context, cfg *config.Config, gormDB *gorm.DB) (session.Store, *workers.SessionWorker, error) {
	switch cfg.Session.Store {
	case "redis":
		rdb, err := session.NewRedisClient(ctx, cfg.Redis.URL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		logger.Info("Session store initialized", "store", "redis")
		return session.NewRedisStore(rdb, cfg.Session.TTL), nil, nil
	default:
		store := session.NewGormStore(gormDB, repositories.NewSessionRepository(), cfg.Session.TTL)
		logger.Info("Session store initialized", "store", "database")
		return store, workers.NewSessionWorker(store, time.Hour), nil
	}
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB, sessions *session.Manager, appHandlers *handlers.AppHandlers) (*gin.Engine, error) {
	switch {
	case cfg.Server.Env == "test":
		gin.SetMode(gin.TestMode)
	case cfg.IsProduction():
		gin.SetMode(gin.ReleaseMode)
	}

	renderer, err := views.New()
	if err != nil {
		return nil, fmt.Errorf("failed to load page templates: %w", err)
	}

	router := gin.New()
	router.HTMLRender = renderer
	router.MaxMultipartMemory = cfg.Upload.MaxSize

	// первым идет SessionMiddleware, чтобы страница ошибки знала пользователя
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.SessionMiddleware(sessions))
	router.Use(middleware.RecoveryMiddleware(func(c *gin.Context) {
		appHandlers.PublicHandler.RenderError(c, apperrors.InternalError(nil))
	}))
	router.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))
	router.Use(middleware.DBMiddleware(db))
	return router, nil
}

func seedFirstAdmin(ctx context.Context, db *gorm.DB, cfg *config.Config, adminService services.AdminService) error {
	if cfg.FirstAdminEmail == "" || cfg.FirstAdminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	created, err := adminService.EnsureAdmin(ctx, db, cfg.FirstAdminName, cfg.FirstAdminEmail, cfg.FirstAdminPassword)
	if err != nil {
		return err
	}
	if created {
		logger.Info("Created first admin user", "email", cfg.FirstAdminEmail)
	} else {
		logger.Info("Admin user already exists. Skipping creation.", "email", cfg.FirstAdminEmail)
	}
	return nil
}
