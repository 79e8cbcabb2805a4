package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"linkedpro/internal/application/services"
	"linkedpro/internal/config"
	"linkedpro/internal/delivery/handler"
	"linkedpro/internal/delivery/middleware"
	"linkedpro/internal/domain/entities"
	"linkedpro/internal/infrastructure"
	"linkedpro/internal/infrastructure/memory"
	"linkedpro/internal/session"
)

func main() {
	// .env is optional; real environments configure through the process env.
	_ = godotenv.Load()
	cfg := config.Load()

	logger, err := infrastructure.NewLogger(cfg.Env)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	var seedUsers []*entities.User
	var seedPosts []*entities.Post
	if cfg.SeedDemoData {
		seedUsers = memory.SeedUsers()
		seedPosts = memory.SeedPosts()
	}
	userRepo := memory.NewUserRepository(seedUsers...)
	postRepo := memory.NewPostRepository(seedPosts...)

	jwtService := infrastructure.NewJWTService(cfg.JWTSecretKey, cfg.JWTTTL)
	sessions := session.NewRegistry()
	loginLimiter := infrastructure.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	defer loginLimiter.Stop()

	userService := services.NewUserService(userRepo, jwtService, sessions, logger)
	postService := services.NewPostService(postRepo, userRepo, logger)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogStatus:  true,
		LogURI:     true,
		LogMethod:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			logger.Info("request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency))
			return nil
		},
	}))

	h := handler.NewHandler(userService, postService, logger)
	h.Register(e, middleware.Auth(jwtService, sessions), middleware.RateLimit(loginLimiter))

	go func() {
		logger.Info("server starting", zap.String("addr", cfg.Addr))
		if err := e.Start(cfg.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("shutdown failed", zap.Error(err))
	}
	logger.Info("server stopped")
}
