package database

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/camden-git/hrmbackend/models"
)

// InitGormDB initializes and returns a GORM database instance
func InitGormDB(dataSourceName, logLevel string, zl *zap.Logger) (*gorm.DB, error) {
	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags), // io writer
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  parseGormLogLevel(logLevel),
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database using GORM: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB from GORM: %w", err)
	}

	// enable write-ahead logging and foreign keys for every connection
	if err := db.Exec("PRAGMA journal_mode=WAL;").Error; err != nil {
		zl.Warn("failed to set WAL mode", zap.Error(err))
	}
	if err := db.Exec("PRAGMA foreign_keys=ON;").Error; err != nil {
		zl.Warn("failed to enable foreign keys", zap.Error(err))
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	zl.Info("GORM database initialized", zap.String("path", dataSourceName))
	return db, nil
}

// AutoMigrateModels migrates every HR table. Safe to run on each start.
func AutoMigrateModels(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Location{},
		&models.Category{},
		&models.Technology{},
		&models.Group{},
		&models.Person{},
		&models.Project{},
		&models.CategoryPerson{},
		&models.Education{},
		&models.Account{},
	)
	if err != nil {
		return fmt.Errorf("GORM AutoMigrate failed: %w", err)
	}
	return nil
}

func parseGormLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}
