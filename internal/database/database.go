package database

import (
	"context"
	"fmt"
	"time"

	"padhobadho/internal/config"
	"padhobadho/internal/logger"

	_ "github.com/godror/godror"   // OCI-based Oracle driver, registered as "godror"
	"github.com/jmoiron/sqlx"
	_ "github.com/sijms/go-ora/v2" // pure Go Oracle driver, registered as "oracle"
	"go.uber.org/zap"
)

// NewSQLXOracleDB opens a pooled connection using the driver selected by db.driver.
func NewSQLXOracleDB(cfg *config.Config) (*sqlx.DB, error) {
	driver := cfg.DB.Driver
	switch driver {
	case config.DriverGoOra, config.DriverGodror:
	case "":
		driver = config.DriverGoOra
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := sqlx.Open(driver, cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open Oracle database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping Oracle database: %w", err)
	}

	logger.Get().Info("Successfully connected to Oracle database",
		zap.String("driver", driver),
		zap.String("host", cfg.DB.Host),
		zap.String("service", cfg.DB.DBName))
	return db, nil
}
