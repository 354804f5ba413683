// README: Entry point; loads config, wires services, starts the HTTP server.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"chatbotai/internal/ai"
	"chatbotai/internal/config"
	httptransport "chatbotai/internal/http"
	"chatbotai/internal/infra"
	"chatbotai/internal/logger"
	"chatbotai/internal/modules/feedback"
	"chatbotai/internal/modules/intent"
	"chatbotai/internal/modules/usage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.Log.Level)
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	oracle, err := ai.NewGeminiOracle(ctx, cfg.Gemini.Key, cfg.Gemini.Model, cfg.Gemini.Temperature, log)
	if err != nil {
		log.Fatal("gemini init", zap.Error(err))
	}
	defer oracle.Close()

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = infra.NewRedis(cfg.Redis.Addr)
	}

	var usageSvc *usage.Service
	if cfg.DB.DSN != "" {
		dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
		if err != nil {
			log.Fatal("db init", zap.Error(err))
		}
		defer dbPool.Close()
		usageSvc = usage.NewService(usage.NewStore(dbPool), log)
	}

	catalogStore := intent.NewStore(cfg.Data.IntentsPath, cfg.Data.ResponseTemplatePath, redisClient, log)
	intentSvc := intent.NewService(catalogStore, oracle, log)
	feedbackSvc := feedback.NewService(oracle, log)

	handler := httptransport.NewRouter(httptransport.RouterDeps{
		Intent:   intentSvc,
		Feedback: feedbackSvc,
		Catalog:  catalogStore,
		Usage:    usageSvc,
		APIKey:   cfg.Auth.APIKey,
		Log:      log,
	})

	server := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	log.Info("chatbot-ai listening", zap.String("addr", cfg.HTTP.Addr))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("server", zap.Error(err))
	}
}
