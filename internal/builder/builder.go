package builder

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/nqkhanh/commune-backend/internal/api"
	askapi "github.com/nqkhanh/commune-backend/internal/api/ask"
	carouselapi "github.com/nqkhanh/commune-backend/internal/api/carousel"
	documentapi "github.com/nqkhanh/commune-backend/internal/api/document"
	"github.com/nqkhanh/commune-backend/internal/api/middleware"
	"github.com/nqkhanh/commune-backend/internal/config"
	"github.com/nqkhanh/commune-backend/internal/integration/llm"
	"github.com/nqkhanh/commune-backend/internal/pkg/formatter"
	"github.com/nqkhanh/commune-backend/internal/pkg/validator"
	"github.com/nqkhanh/commune-backend/internal/repository"
	"github.com/nqkhanh/commune-backend/internal/storage"
	askuc "github.com/nqkhanh/commune-backend/internal/usecase/ask"
	carouseluc "github.com/nqkhanh/commune-backend/internal/usecase/carousel"
	documentuc "github.com/nqkhanh/commune-backend/internal/usecase/document"
)

func Build() (*App, error) {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := setupLogger(cfg.LogLevel, cfg.Environment)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	logger.Info("Building application",
		zap.String("environment", cfg.Environment),
		zap.String("server_addr", cfg.ServerAddr),
	)

	// Setup database connection
	db, err := setupDatabase(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("setup database: %w", err)
	}

	// Run database migrations
	logger.Info("Running database migrations")
	if err := repository.RunMigrations(cfg.DatabaseURL); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	logger.Info("Database migrations completed successfully")

	// Initialize repositories
	documentRepo := repository.NewDocumentPostgres(db)
	carouselRepo := repository.NewCarouselPostgres(db)
	logger.Info("Repositories initialized")

	// Initialize upload storage
	diskStore, err := storage.NewDisk(cfg.UploadCfg.Dir, cfg.UploadCfg.BaseURL, logger)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("setup upload storage: %w", err)
	}
	fileNamer := storage.NewFileNamer()
	logger.Info("Upload storage initialized", zap.String("dir", diskStore.Dir()))

	// Initialize generation connector (with mock support). A missing
	// service URL leaves the generator nil: the ask endpoint then
	// reports a configuration error instead of degrading silently.
	var generator askuc.Generator
	switch {
	case cfg.EnableMocks:
		logger.Info("Using mock connector for the generation service")
		generator = llm.NewMockConnector(logger)
	case cfg.LLMConnectorCfg.Url != "":
		logger.Info("Using real connector for the generation service")
		generator = llm.NewConnector(cfg.LLMConnectorCfg, logger)
	default:
		logger.Warn("Generation service URL not set; /api/ask will return a configuration error")
	}

	// Initialize validators
	uploadValidator := validator.NewUploadValidator(cfg.UploadCfg)
	logger.Info("Validators initialized")

	// Initialize use cases
	askUC := askuc.NewUsecase(documentRepo, generator, logger)
	documentUC := documentuc.NewUsecase(documentRepo, uploadValidator, formatter.NewFactory(), logger)
	carouselUC := carouseluc.NewUsecase(carouselRepo, diskStore, fileNamer, uploadValidator, logger)
	logger.Info("Use cases initialized")

	// Setup API handlers
	askHandler := askapi.NewHandler(askUC)
	documentHandler := documentapi.NewHandler(documentUC, cfg.UploadCfg)
	carouselHandler := carouselapi.NewHandler(carouselUC, cfg.UploadCfg)
	logger.Info("API handlers initialized")

	// Rate limiter for the ask endpoint
	askRateLimiter := middleware.NewRateLimiter(cfg.AskRateLimitPerMinute, cfg.AskRateLimitBurst, logger)

	// Setup router
	router := api.SetupRouter(askHandler, documentHandler, carouselHandler, askRateLimiter, cfg.UploadCfg.Dir, logger)
	logger.Info("HTTP router configured")

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("Application built successfully",
		zap.String("environment", cfg.Environment),
	)

	return &App{
		server: server,
		db:     db,
		logger: logger,
	}, nil
}
