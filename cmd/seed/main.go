package main

import (
	"context"
	"flag"
	"log"

	"github.com/saradorri/backoffice/internal/config"
	"github.com/saradorri/backoffice/internal/infrastructure/auth"
	"github.com/saradorri/backoffice/internal/infrastructure/database"
	"github.com/saradorri/backoffice/internal/infrastructure/logger"
	"github.com/saradorri/backoffice/internal/infrastructure/repository"
	"github.com/saradorri/backoffice/internal/infrastructure/seeder"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	var (
		configPath = flag.String("config", "./config", "Path to config directory")
		env        = flag.String("env", config.GetEnvironment(), "Environment")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath, *env)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	appLogger := logger.NewLogger(*env, cfg.Log.Level)
	defer func() { _ = appLogger.Sync() }()

	db, err := database.NewDatabase(&database.Config{
		DSN:             cfg.GetDSN(),
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	})
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	gdb := db.GetDB()
	s := seeder.NewSeeder(
		repository.NewRoleRepository(gdb),
		repository.NewUserRepository(gdb),
		repository.NewGameRepository(gdb),
		repository.NewCommissionRepository(gdb),
		auth.NewPasswordHasher(bcrypt.DefaultCost),
		appLogger,
	)

	appLogger.Info("Starting database seeding...")
	if err := s.Run(context.Background()); err != nil {
		appLogger.Fatal("Failed to seed database", zap.Error(err))
	}
	appLogger.Info("Database seeding completed successfully")
}
