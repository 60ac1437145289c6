package database

import (
	"fmt"

	"carlookup/internal/config"
	"carlookup/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the database connection described by the config.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	return db, nil
}

// Migrate runs schema auto-migration for all entities.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.CarMake{},
		&models.CarModel{},
		&models.User{},
		&models.Role{},
		&models.UserRole{},
	)
}
