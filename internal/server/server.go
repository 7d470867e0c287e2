package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"social-media/config"
	"social-media/internal/handler"
	"social-media/internal/middleware"
	"social-media/internal/repository"
	"social-media/internal/transport/httpdto"
	"social-media/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Server struct {
	httpServer *http.Server
	engine     *gin.Engine
	config     *config.Config
	logger     *logger.Logger
}

var (
	ReleaseMode = "release"
	DebugMode   = "debug"
	TestMode    = "test"
)

// routePrefixes are the mount points of the public API; every route answers
// both at the root and under /api.
var routePrefixes = []string{"", "/api"}

type Handlers struct {
	Account *handler.AccountHandler
	Message *handler.MessageHandler
}

// Options carries the optional collaborators of SetupRoutes.
type Options struct {
	// AuthLimiter rate limits /register and /login when set.
	AuthLimiter middleware.AuthLimiter
	// Health backs GET /health when set.
	Health repository.Pinger
}

func New(cfg *config.Config, l *logger.Logger) *Server {
	if cfg.AppMode == ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	} else if cfg.AppMode == TestMode {
		gin.SetMode(gin.TestMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%s", cfg.AppPort),
			Handler:           engine,
			ReadHeaderTimeout: 10 * time.Second,
		},
		engine: engine,
		config: cfg,
		logger: l,
	}
}

// Handler exposes the router, mainly for httptest.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) SetupRoutes(handlers *Handlers, opts Options) {
	s.engine.Use(middleware.RequestIDMiddleware())
	s.engine.Use(middleware.LoggingMiddleware(s.logger))
	s.engine.Use(middleware.ErrorHandler(s.logger))

	s.engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	s.engine.GET("/health", func(c *gin.Context) {
		if opts.Health != nil {
			if err := opts.Health.Ping(c.Request.Context()); err != nil {
				if s.logger != nil {
					s.logger.ErrorCtx(c.Request.Context(), "health check failed", zap.Error(err))
				}
				c.JSON(http.StatusServiceUnavailable, httpdto.NewErrorResponse("storage unavailable", "UNHEALTHY"))
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	authRoute := func(limit func(middleware.AuthLimiter) gin.HandlerFunc, h gin.HandlerFunc) []gin.HandlerFunc {
		if opts.AuthLimiter == nil {
			return []gin.HandlerFunc{h}
		}
		return []gin.HandlerFunc{limit(opts.AuthLimiter), h}
	}

	for _, prefix := range routePrefixes {
		api := s.engine.Group(prefix)
		{
			api.POST("/register", authRoute(middleware.AuthRateLimitMiddleware, handlers.Account.Register)...)
			api.POST("/login", authRoute(middleware.LoginRateLimitMiddleware, handlers.Account.Login)...)

			api.POST("/messages", handlers.Message.Create)
			api.GET("/messages", handlers.Message.List)
			api.GET("/messages/:id", handlers.Message.GetByID)
			api.DELETE("/messages/:id", handlers.Message.Delete)
			api.PATCH("/messages/:id", handlers.Message.UpdateText)

			api.GET("/accounts/:id/messages", handlers.Message.ListByAccount)
		}
	}
}

func (s *Server) Start() error {
	go func() {
		if s.logger != nil {
			s.logger.Infof("Starting the server on port %s...", s.config.AppPort)
		}
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			if s.logger != nil {
				s.logger.Errorf("Error in starting the server: %s", err)
			}
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	if s.logger != nil {
		s.logger.Infof("Server is running on :%s", s.config.AppPort)
	}

	<-quit

	if s.logger != nil {
		s.logger.Infof("Quitting signal received.. Shutting down after 5 seconds")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		if s.logger != nil {
			s.logger.Infof("Error in the graceful shutdown of the server: %s", err)
		}
		return err
	}

	if s.logger != nil {
		s.logger.Infof("Server stopped gracefully")
	}

	return nil
}
