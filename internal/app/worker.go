package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"aparthotel/internal/auth"
	"aparthotel/internal/config"
	"aparthotel/internal/messaging/kafka"
	"aparthotel/internal/messaging/kafka/producer"
	"aparthotel/internal/shared/connection"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// cleanupSchedule runs the expired reset token sweep daily at 03:00.
const cleanupSchedule = "0 3 * * *"

// RunWorker relays outbox events to Kafka and runs the scheduled cleanups
// until SIGINT/SIGTERM.
func RunWorker(cfg *config.Config) error {
	logger := zap.L().Named("app.worker")

	db, err := connection.ConnectGORMWithRetry(cfg, 5)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if cfg.KafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	kafkaWriter, err := connection.ConnectKafkaWithRetry(cfg.KafkaBroker, 5)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	outboxRepo := kafka.NewOutboxRepository(db)
	authService := auth.NewService(db, auth.NewRepository(db), auth.Config{
		JWTSecret:     cfg.JWTSecret,
		ResetTokenTTL: cfg.ResetTokenTTL,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go producer.ProcessOutboxEvents(
		ctx,
		outboxRepo,
		kafkaWriter,
		logger,
		3*time.Second,
	)

	c := cron.New()
	if _, err := c.AddFunc(cleanupSchedule, func() {
		n, err := authService.CleanupExpiredResets(ctx)
		if err != nil {
			logger.Error("reset token cleanup failed", zap.Error(err))
			return
		}
		logger.Info("reset token cleanup done", zap.Int64("deleted", n))
	}); err != nil {
		return err
	}
	c.Start()
	defer c.Stop()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("worker shutting down")
	cancel()

	return nil
}
