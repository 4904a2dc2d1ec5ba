package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/rohitchirag97/HazriPro-Server/internal/config"
	"github.com/rohitchirag97/HazriPro-Server/internal/infrastructure/auth"
	"github.com/rohitchirag97/HazriPro-Server/internal/infrastructure/database"
	"github.com/rohitchirag97/HazriPro-Server/internal/infrastructure/notifications"
	"github.com/rohitchirag97/HazriPro-Server/internal/infrastructure/queue"
	"github.com/rohitchirag97/HazriPro-Server/internal/infrastructure/repositories"
	"github.com/rohitchirag97/HazriPro-Server/internal/services"
)

// Standalone OTP dispatch worker. Runs the same consumer the API can
// embed, as its own process, for deployments that scale delivery
// separately from the HTTP tier.
func main() {
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("config", zap.Error(err))
	}

	rdb := database.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB).Client
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		logger.Fatal("redis", zap.Error(err))
	}
	defer rdb.Close()

	var mailer *notifications.SMTPSender
	if cfg.SMTPHost != "" {
		mailer, err = notifications.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPFrom, cfg.SMTPFromName)
		if err != nil {
			logger.Fatal("smtp", zap.Error(err))
		}
	}
	notificationSvc := notifications.NewNotificationService(cfg.TwilioSID, cfg.TwilioToken, cfg.TwilioFrom, mailer, logger)

	otpRepo := repositories.NewOTPRepository(rdb)
	passwordSvc := auth.NewPasswordService()
	worker := services.NewOTPWorker(otpRepo, passwordSvc, notificationSvc, cfg.PhoneOTPTTL, cfg.EmailOTPTTL, logger)
	q := queue.NewRedisQueue(rdb, cfg.QueueName, cfg.QueueMaxAttempts, cfg.QueueBackoff, logger)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		sig := <-quit
		logger.Info("shutting down", zap.String("signal", sig.String()))
		cancel()
	}()

	logger.Info("otp worker started",
		zap.String("queue", cfg.QueueName),
		zap.Int("concurrency", cfg.QueueConcurrency),
	)
	q.Consume(ctx, cfg.QueueConcurrency, worker.Process)
}
