// @title Federal Parts Admin API
// @version 1.0
// @description Admin backend for the Federal Parts Philippines catalogue
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/config"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/database"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/models"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/routes"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/services"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger, err := config.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("❌ server error", zap.Error(err))
	}
	logger.Info("✅ server stopped")
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	// Step 1: Database
	db, err := config.OpenDB(cfg.Database, cfg.IsProduction())
	if err != nil {
		return err
	}
	defer config.CloseDB(db, logger)
	if err := database.Migrate(ctx, db, cfg.Database.Driver); err != nil {
		return err
	}
	logger.Info("✅ database ready", zap.String("driver", cfg.Database.Driver))

	// Step 2: Optional collaborators
	rdb, err := config.ConnectRedis(ctx, cfg.Redis.URL)
	if err != nil {
		logger.Warn("⚠️ redis unavailable, rate limiting disabled", zap.Error(err))
		rdb = nil
	}
	if rdb != nil {
		defer func() { _ = rdb.Close() }()
	}

	var cld *services.CloudinaryService
	if cfg.Images.CloudinaryCloudName != "" {
		cld, err = services.NewCloudinaryService(cfg.Images.CloudinaryCloudName, cfg.Images.CloudinaryAPIKey, cfg.Images.CloudinaryAPISecret)
		if err != nil {
			return err
		}
	} else {
		logger.Info("cloudinary not configured, uploads disabled")
	}

	// Step 3: Bootstrap admin
	if cfg.Auth.BootstrapPassword != "" {
		jwt, err := services.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.JWTTTL)
		if err != nil {
			return err
		}
		created, err := services.NewAdminAuthService(db, jwt).
			EnsureAdmin(ctx, cfg.Auth.BootstrapEmail, "Administrator", cfg.Auth.BootstrapPassword, models.AdminRoleSuperAdmin)
		if err != nil {
			return err
		}
		if created {
			logger.Info("✅ bootstrap admin created", zap.String("email", cfg.Auth.BootstrapEmail))
		}
	}

	// Step 4: HTTP
	router, err := routes.NewRouter(routes.Deps{
		Config:     cfg,
		DB:         db,
		Redis:      rdb,
		Cloudinary: cld,
		Log:        logger,
	})
	if err != nil {
		return err
	}
	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		logger.Info("🚀 server listening", zap.String("address", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	eg.Go(func() error {
		<-egCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})
	return eg.Wait()
}
