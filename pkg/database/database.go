package database

import (
	"fmt"

	"maritime-service/internal/model"
	"maritime-service/pkg/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var db *gorm.DB

// Connect opens the database connection with the provided configuration,
// applies the connection pool settings and migrates the models.
func Connect(cfg *config.DBConfig) (*gorm.DB, error) {
	// PreferSimpleProtocol disables implicit prepared statement usage and
	// avoids "prepared statement already exists" errors behind poolers.
	pgConfig := postgres.Config{
		DSN:                  cfg.GetDSN(),
		PreferSimpleProtocol: true,
	}

	conn, err := gorm.Open(postgres.New(pgConfig), &gorm.Config{
		Logger: logger.Default.LogMode(cfg.LogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}

	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	// The unique indexes created here are the authoritative guard against
	// duplicate port codes, terminal names per port and user accounts.
	if err := conn.AutoMigrate(&model.Port{}, &model.Terminal{}, &model.UserInfo{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	db = conn
	return conn, nil
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return db
}
