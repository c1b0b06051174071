package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	apiHttp "github.com/vopial/kyc-backend/internal/api/http"
	"github.com/vopial/kyc-backend/internal/cache"
	"github.com/vopial/kyc-backend/internal/config"
	"github.com/vopial/kyc-backend/internal/db"
	"github.com/vopial/kyc-backend/internal/queue/asynqserver"
	queueClient "github.com/vopial/kyc-backend/internal/queue/client"
	"github.com/vopial/kyc-backend/internal/repository"
	"github.com/vopial/kyc-backend/internal/server"
	"github.com/vopial/kyc-backend/internal/service"
	"github.com/vopial/kyc-backend/internal/service/imagekit"
	"github.com/vopial/kyc-backend/internal/uploads"
	"github.com/vopial/kyc-backend/internal/worker"
	"github.com/vopial/kyc-backend/pkg/auth"
	"github.com/vopial/kyc-backend/pkg/email/smtp"
	"github.com/vopial/kyc-backend/pkg/logger"
	"github.com/vopial/kyc-backend/pkg/otp"
)

func main() {
	// Init cfg from environment variables
	cfg := config.MustLoad()

	// Dependencies
	logger.SetupLogger(cfg.Env, cfg.LogLevel)

	logger.Info("starting kyc backend", zap.String("env", cfg.Env))
	logger.Debug("debug messages are enabled")

	// Init database
	dbMySQL, err := db.New(cfg.Database)
	if err != nil {
		logger.Error("mysql connect problem", zap.Error(err))
		os.Exit(1)
	}
	defer func() {
		if err = dbMySQL.Close(); err != nil {
			logger.Error("error when closing", zap.Error(err))
		}
	}()
	logger.Info("mysql connection done")

	redisClient, err := cache.NewRedis(cfg.Cache)
	if err != nil {
		logger.Error("redis connect problem", zap.Error(err))
		os.Exit(1)
	}
	defer func() {
		if err = redisClient.Close(); err != nil {
			logger.Error("error when closing redis", zap.Error(err))
		}
	}()
	logger.Info("redis connection done")

	emailSender, err := smtp.NewSMTPSender(cfg.SMTP.From, cfg.SMTP.Pass, cfg.SMTP.Host, cfg.SMTP.Port)
	if err != nil {
		logger.Error("smtp sender creation failed", zap.Error(err))
		return
	}

	tokenManager, err := auth.NewManager(cfg.Auth.JWT)
	if err != nil {
		logger.Error("auth manager creation err", zap.Error(err))
		return
	}

	otpGenerator := otp.NewNumericGenerator()
	imagekitClient := imagekit.NewClient(cfg.ImageKit)
	relay := uploads.NewRelay(imagekitClient, cfg.Uploads)

	// Services, Repos & API Handlers
	repos := repository.NewRepositories(dbMySQL)
	services := service.NewServices(service.Deps{
		Config:       cfg,
		TokenManager: tokenManager,
		OtpGenerator: otpGenerator,
		Repos:        repos,
		Relay:        relay,
		ImageKit:     imagekitClient,
		Redis:        redisClient,
	})

	// Email dispatch queue
	workers := worker.NewWorkers(worker.Deps{
		Repos:         repos,
		EmailProvider: emailSender,
		Config:        cfg,
	})
	asynqSrv, mux := asynqserver.New(cfg.Cache, workers)
	if err := asynqSrv.Start(mux); err != nil {
		logger.Error("asynq server start failed", zap.Error(err))
		os.Exit(1)
	}

	asynqClient := asynq.NewClient(asynqserver.RedisOptions(cfg.Cache))
	defer func() {
		if err = asynqClient.Close(); err != nil {
			logger.Error("error when closing asynq client", zap.Error(err))
		}
	}()
	queueClient.SetClient(asynqClient)

	handlers := apiHttp.NewHandlers(services, tokenManager, cfg)

	// HTTP Server
	srv := server.NewServer(cfg, handlers.Init(cfg))
	go func() {
		if err := srv.Run(); !errors.Is(err, http.ErrServerClosed) {
			logger.Error("error occurred while running http server", zap.Error(err))
		}
	}()
	logger.Info("server started")

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	<-quit

	const timeout = 5 * time.Second

	ctx, shutdown := context.WithTimeout(context.Background(), timeout)
	defer shutdown()

	if err := srv.Stop(ctx); err != nil {
		logger.Error("failed to stop server", zap.Error(err))
	}

	asynqSrv.Shutdown()

	logger.Info("app stopped")
}
