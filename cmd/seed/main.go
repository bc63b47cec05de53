// Command seed fills the database with fixture data and a super admin.
//
// Usage: go run ./cmd/seed --products 120 --orders 80 --reset
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/config"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/database"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/database/fixtures"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/models"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/services"
)

func main() {
	def := fixtures.DefaultOptions()

	cmd := &cli.Command{
		Name:  "seed",
		Usage: "Seed the Federal Parts database with fixture data",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "categories", Value: def.Categories, Usage: "number of categories (max 10)"},
			&cli.IntFlag{Name: "products", Value: def.Products, Usage: "number of products"},
			&cli.IntFlag{Name: "orders", Value: def.Orders, Usage: "number of orders"},
			&cli.Uint64Flag{Name: "seed", Value: def.Seed, Usage: "random seed; the same seed gives the same data"},
			&cli.BoolFlag{Name: "reset", Usage: "delete existing catalogue and orders first"},
			&cli.StringFlag{Name: "admin-email", Sources: cli.EnvVars("BOOTSTRAP_ADMIN_EMAIL"), Value: "admin@federalparts.ph"},
			&cli.StringFlag{Name: "admin-password", Sources: cli.EnvVars("BOOTSTRAP_ADMIN_PASSWORD"), Usage: "creates a super admin when set"},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger, err := config.NewLogger(cfg.Logger)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	db, err := config.OpenDB(cfg.Database, cfg.IsProduction())
	if err != nil {
		return err
	}
	defer config.CloseDB(db, logger)
	if err := database.Migrate(ctx, db, cfg.Database.Driver); err != nil {
		return err
	}

	start := time.Now()
	res, err := fixtures.Seed(ctx, db, fixtures.Options{
		Seed:       cmd.Uint64("seed"),
		Categories: cmd.Int("categories"),
		Products:   cmd.Int("products"),
		Orders:     cmd.Int("orders"),
	}, cmd.Bool("reset"))
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	logger.Info("✅ fixtures inserted",
		zap.Int("categories", res.Categories),
		zap.Int("products", res.Products),
		zap.Int("orders", res.Orders),
		zap.Duration("took", time.Since(start)),
	)

	password := cmd.String("admin-password")
	if password == "" {
		logger.Info("no admin password given, skipping admin")
		return nil
	}
	jwt, err := services.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.JWTTTL)
	if err != nil {
		return err
	}
	email := cmd.String("admin-email")
	created, err := services.NewAdminAuthService(db, jwt).
		EnsureAdmin(ctx, email, "Administrator", password, models.AdminRoleSuperAdmin)
	if err != nil {
		return fmt.Errorf("create admin: %w", err)
	}
	if created {
		logger.Info("✅ super admin created", zap.String("email", email))
	} else {
		logger.Info("admin already exists", zap.String("email", email))
	}
	return nil
}
