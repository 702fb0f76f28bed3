package api

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "github.com/dhima/calorie-tracker/docs"
	"github.com/dhima/calorie-tracker/internal/api/handlers"
	"github.com/dhima/calorie-tracker/internal/api/middleware"
	"github.com/dhima/calorie-tracker/internal/logentries"
	"github.com/dhima/calorie-tracker/internal/logging"
	"github.com/dhima/calorie-tracker/internal/metrics"
	"github.com/dhima/calorie-tracker/internal/storage"
	"github.com/dhima/calorie-tracker/internal/summaries"
	"github.com/dhima/calorie-tracker/pkg/clock"
	"github.com/dhima/calorie-tracker/pkg/config"
	"github.com/dhima/calorie-tracker/platform/events"
	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Dependencies are the collaborators the HTTP routes are built on.
type Dependencies struct {
	Logger      logging.Logger
	LogEntries  handlers.LogEntryService
	Summaries   handlers.SummaryService
	Database    handlers.Pinger
	CORSOrigins []string
}

// Server orchestrates HTTP routing and dependencies for the API service.
type Server struct {
	config    config.App
	logger    logging.Logger
	router    *gin.Engine
	db        *sql.DB
	publisher entryPublisher
}

type entryPublisher interface {
	logentries.EventPublisher
	Close() error
}

// NewServer connects to the database and wires the API dependencies together.
func NewServer(ctx context.Context, cfg config.App, logger logging.Logger) (*Server, error) {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is required")
	}
	db, err := storage.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if cfg.RunMigrations {
		if err := storage.ApplyMigrations(ctx, db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("run migrations: %w", err)
		}
		logger.Info("database migrations applied")
	}

	loc, err := cfg.Location()
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	var publisher entryPublisher = events.NoopPublisher{}
	if cfg.KafkaEnabled() {
		publisher = events.NewPublisher(cfg.KafkaBrokers, cfg.KafkaEntryTopic, logger.Zap())
		logger.Info("publishing log entry events",
			zap.Strings("brokers", cfg.KafkaBrokers),
			zap.String("topic", cfg.KafkaEntryTopic),
		)
	}

	store := storage.NewMySQLClient(db)
	server := &Server{
		config:    cfg,
		logger:    logger,
		db:        db,
		publisher: publisher,
	}
	server.router = NewRouter(Dependencies{
		Logger:      logger,
		LogEntries:  logentries.NewService(store, publisher, logger),
		Summaries:   summaries.NewService(store, nil, logger, clock.RealClock{}, loc),
		Database:    store,
		CORSOrigins: cfg.CORSOrigins,
	})
	return server, nil
}

// NewRouter configures the Gin router with middleware and routes.
func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	zapLogger := deps.Logger.Zap()

	// Recovery first so it catches panics from the other middleware.
	router.Use(ginzap.RecoveryWithZap(zapLogger, true))
	router.Use(middleware.RequestID())
	router.Use(ginzap.GinzapWithConfig(zapLogger, &ginzap.Config{
		TimeFormat: time.RFC3339,
		UTC:        true,
		SkipPaths:  []string{"/health", "/metrics"},
		Context: func(c *gin.Context) []zap.Field {
			return []zap.Field{zap.String("request_id", c.GetString(middleware.RequestIDKey))}
		},
	}))
	router.Use(middleware.Metrics())
	router.Use(cors.New(corsConfig(deps.CORSOrigins)))

	router.GET("/health", handlers.NewHealthHandler(deps.Logger, deps.Database).Health)
	router.GET("/metrics", handlers.NewMetricsHandler(metrics.Handler()).Metrics)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	logEntryHandler := handlers.NewLogEntryHandler(deps.Logger, deps.LogEntries)
	log := router.Group("/log")
	{
		log.GET("", logEntryHandler.ListLogEntries)
		log.POST("", logEntryHandler.CreateLogEntry)
		log.GET("/type/:type", logEntryHandler.ListLogEntriesByType)
		log.GET("/:id", logEntryHandler.GetLogEntry)
		log.PUT("/:id", logEntryHandler.UpdateLogEntry)
		log.DELETE("/:id", logEntryHandler.DeleteLogEntry)
	}

	summaryHandler := handlers.NewSummaryHandler(deps.Logger, deps.Summaries)
	router.GET("/summaries/:day", summaryHandler.GetDailySummary)

	return router
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}

	for _, origin := range origins {
		if strings.TrimSpace(origin) == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}

	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}

// Handler exposes the configured router.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Serve starts the HTTP server and shuts it down gracefully on SIGINT,
// SIGTERM or when ctx is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	addr := ":" + s.config.APIPort
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		s.logger.Info("starting API server",
			zap.String("address", addr),
			zap.String("environment", s.config.Environment),
			zap.String("log_level", s.config.LogLevel),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err, ok := <-serveErr:
		if ok {
			s.close()
			return fmt.Errorf("listen on %s: %w", addr, err)
		}
	case <-ctx.Done():
	}
	s.logger.Info("shutting down server gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("server forced to shutdown", zap.Error(err))
		s.close()
		return err
	}

	s.close()
	s.logger.Info("server stopped")
	return nil
}

func (s *Server) close() {
	if s.publisher != nil {
		if err := s.publisher.Close(); err != nil {
			s.logger.Error("failed to close event publisher", zap.Error(err))
		}
	}
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			s.logger.Error("failed to close database connection", zap.Error(err))
		}
	}
}
