package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	"task-service/internal/application/services"
	"task-service/internal/config"
	delivery "task-service/internal/delivery/http"
	"task-service/internal/infrastructure"
	"task-service/internal/infrastructure/db/postgres"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL must be set")
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	db, err := postgres.Open(cfg.DatabaseURL)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}
	if err := postgres.AutoMigrate(db); err != nil {
		log.WithError(err).Fatal("failed to run migrations")
	}

	userRepo := postgres.NewUserRepository(db)
	roleRepo := postgres.NewRoleRepository(db)
	taskRepo := postgres.NewTaskRepository(db)
	assignmentRepo := postgres.NewAssignmentRepository(db)

	jwtService := infrastructure.NewJWTService(cfg.JWTSecret, cfg.TokenTTL)
	rateLimiter := infrastructure.NewRateLimiter(cfg.LoginRatePerMinute, cfg.LoginRateBurst)

	authService := services.NewAuthService(userRepo, roleRepo, jwtService, rateLimiter, cfg.BcryptCost, log)
	taskService := services.NewTaskService(taskRepo, userRepo, assignmentRepo)
	adminService := services.NewAdminService(taskRepo, userRepo, assignmentRepo, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := authService.EnsureAdminUser(ctx, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		log.WithError(err).Fatal("failed to seed admin user")
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogStatus: true,
		LogMethod: true,
		LogURI:    true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			log.WithFields(logrus.Fields{
				"method": v.Method,
				"uri":    v.URI,
				"status": v.Status,
			}).Info("request")
			return nil
		},
	}))

	handler := delivery.NewHandler(authService, taskService, adminService, log)
	delivery.RegisterRoutes(e, handler, authService)

	go func() {
		if err := e.Start(cfg.HTTPAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server stopped")
		}
	}()
	log.WithField("addr", cfg.HTTPAddr).Info("server running")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("shutdown failed")
	}
}
