package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dhima/calorie-tracker/internal/logging"
	"github.com/dhima/calorie-tracker/internal/scheduler"
	"github.com/dhima/calorie-tracker/internal/storage"
	"github.com/dhima/calorie-tracker/internal/summaries"
	"github.com/dhima/calorie-tracker/pkg/clock"
	"github.com/dhima/calorie-tracker/pkg/config"
	"github.com/dhima/calorie-tracker/platform/events"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "calorie-scheduler",
	Short:         "Publishes the previous day's calorie summary on a cron schedule",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		logger, err := logging.NewLogger(cfg.Environment, cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer func() { _ = logger.Sync() }()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return run(ctx, cfg, logger)
	},
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "path to a YAML config file")
}

func run(ctx context.Context, cfg config.App, logger logging.Logger) error {
	if cfg.DatabaseURL == "" {
		return errors.New("DATABASE_URL is required")
	}
	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	db, err := storage.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	var publisher interface {
		summaries.Publisher
		Close() error
	} = events.NoopPublisher{}
	if cfg.KafkaEnabled() {
		publisher = events.NewPublisher(cfg.KafkaBrokers, cfg.KafkaSummaryTopic, logger.Zap())
	} else {
		logger.Warn("KAFKA_BROKERS not set, summaries will not be published")
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Error("failed to close summary publisher", zap.Error(err))
		}
	}()

	service := summaries.NewService(storage.NewMySQLClient(db), publisher, logger, clock.RealClock{}, loc)

	engine := scheduler.NewEngine(loc, logger)
	if err := engine.AddSummaryJob(cfg.SummaryCron, service); err != nil {
		return err
	}

	logger.Info("starting scheduler",
		zap.String("summary_cron", cfg.SummaryCron),
		zap.String("timezone", loc.String()),
	)
	if err := engine.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
