package main

import (
	"context"
	"log"
	"time"

	"social-media/config"
	"social-media/internal/handler"
	"social-media/internal/redis"
	"social-media/internal/repository"
	"social-media/internal/repository/memory"
	"social-media/internal/server"
	"social-media/internal/services"
	"social-media/pkg/database"
	"social-media/pkg/logger"
)

type storage struct {
	accounts repository.AccountRepository
	messages repository.MessageRepository
	health   repository.Pinger
	close    func()
}

func main() {
	cfg := config.LoadConfig()

	l := logger.New(cfg.AppEnv)
	logger.SetGlobalLogger(l)
	defer l.Sync()

	store, err := openStorage(cfg, l)
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}
	defer store.close()

	accountService := services.NewAccountService(store.accounts)
	messageService := services.NewMessageService(store.messages, store.accounts)
	tokenService := services.NewTokenService(cfg.JWTSecret, time.Duration(cfg.JWTExpiryMin)*time.Minute)

	opts := server.Options{Health: store.health}
	if cfg.RedisEnabled {
		client := redis.NewClient(redis.Config{
			Host:     cfg.RedisHost,
			Port:     cfg.RedisPort,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer client.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := redis.Ping(pingCtx, client)
		cancel()
		if err != nil {
			store.close()
			log.Fatalf("Failed to connect to redis: %v", err)
		}

		limiter := redis.NewRateLimiter(client, redis.RateLimitConfig{
			AuthLimit:  cfg.AuthRateLimit,
			AuthWindow: time.Duration(cfg.AuthRateWindowSec) * time.Second,
		})
		opts.AuthLimiter = limiter
		limits := limiter.Config()
		l.Infof("Auth rate limiting enabled: %d attempts per %s", limits.AuthLimit, limits.AuthWindow)
	}

	srv := server.New(cfg, l)
	srv.SetupRoutes(&server.Handlers{
		Account: handler.NewAccountHandler(accountService, tokenService),
		Message: handler.NewMessageHandler(messageService),
	}, opts)

	if err := srv.Start(); err != nil {
		l.Errorf("Server exited with error: %v", err)
	}
}

func openStorage(cfg *config.Config, l *logger.Logger) (*storage, error) {
	if cfg.StoreDriver == config.StoreDriverMemory {
		l.Warnf("Using in-memory storage; data is lost on restart")
		accounts := memory.NewAccountStore()
		return &storage{
			accounts: accounts,
			messages: memory.NewMessageStore(),
			health:   accounts,
			close:    func() {},
		}, nil
	}

	db, err := database.Connect(cfg, l)
	if err != nil {
		return nil, err
	}
	if err := database.Prepare(db, repository.InitSchema); err != nil {
		return nil, err
	}
	return &storage{
		accounts: repository.NewAccountRepository(db),
		messages: repository.NewMessageRepository(db),
		health:   database.NewHealthChecker(db),
		close: func() {
			if err := database.Close(db); err != nil {
				l.Errorf("Failed to close database: %v", err)
			}
		},
	}, nil
}
