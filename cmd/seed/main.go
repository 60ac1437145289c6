package main

import (
	"log"
	"os"

	"carlookup/internal/config"
	"carlookup/internal/database"
	"carlookup/internal/models"
	"carlookup/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	zlog, err := logger.New(!cfg.IsProduction())
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync(zlog)

	db, err := database.Connect(cfg)
	if err != nil {
		zlog.Fatal("Failed to connect to database", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		zlog.Fatal("Failed to run migrations", zap.Error(err))
	}

	users := []database.SeedUser{
		{
			Username: getEnv("SEED_ADMIN_USERNAME", "admin"),
			Email:    getEnv("SEED_ADMIN_EMAIL", "admin@carlookup.local"),
			Password: os.Getenv("SEED_ADMIN_PASSWORD"),
			Role:     models.RoleAdmin,
		},
		{
			Username: getEnv("SEED_EDITOR_USERNAME", "editor"),
			Email:    getEnv("SEED_EDITOR_EMAIL", "editor@carlookup.local"),
			Password: os.Getenv("SEED_EDITOR_PASSWORD"),
			Role:     models.RoleEditor,
		},
		{
			Username: getEnv("SEED_READER_USERNAME", "reader"),
			Email:    getEnv("SEED_READER_EMAIL", "reader@carlookup.local"),
			Password: os.Getenv("SEED_READER_PASSWORD"),
			Role:     models.RoleReader,
		},
	}

	for _, u := range users {
		if u.Password == "" {
			zlog.Fatal("Missing seed password", zap.String("role", u.Role),
				zap.String("hint", "set SEED_ADMIN_PASSWORD, SEED_EDITOR_PASSWORD and SEED_READER_PASSWORD"))
		}
	}

	if err := database.Seed(db, users, zlog); err != nil {
		zlog.Fatal("Seeding failed", zap.Error(err))
	}

	zlog.Info("Seeding complete")
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
