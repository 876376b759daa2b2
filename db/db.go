package db

import (
	"fmt"
	"time"

	apmgormv2 "go.elastic.co/apm/module/apmgormv2/v2/driver/postgres"
	"gorm.io/gorm"

	"ispbilling-backend/config"
	"ispbilling-backend/logger"
)

var DB *gorm.DB

func ConnectDatabase(cfg *config.Config) error {
	dsn := fmt.Sprintf("host=%s user=%s dbname=%s sslmode=disable password=%s port=%s",
		cfg.PGHost,
		cfg.PGUser,
		cfg.PGDBName,
		cfg.PGPassword,
		cfg.PGPort,
	)

	database, err := gorm.Open(apmgormv2.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		logger.Logger.WithError(err).Error("Failed to connect to database")
		return err
	}

	sqlDB, err := database.DB()
	if err != nil {
		logger.Logger.WithError(err).Error("Failed to get database instance")
		return err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := RunMigrations(database); err != nil {
		logger.Logger.WithError(err).Error("Failed to run migrations")
		return err
	}

	logger.Logger.Info("Database connected successfully")
	DB = database
	return nil
}
