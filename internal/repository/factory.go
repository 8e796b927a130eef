package repository

import (
	"strings"

	"biolink/internal/config"
)

// Storage drivers
const (
	DriverSQLite   = "sqlite"
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverCSV      = "csv"
)

// NewVisitStore builds the store selected by cfg. The store is not initialized.
func NewVisitStore(cfg *config.StorageConfig) VisitStore {
	driver := cfg.Driver
	if driver == "" {
		driver = DetectDriver(cfg.DSN)
	}

	if driver == DriverCSV {
		return NewCSVStore(cfg.DSN)
	}
	return NewSQLStore(driver, cfg.DSN)
}

// DetectDriver guesses the storage driver from the shape of a DSN or path
func DetectDriver(dsn string) string {
	lower := strings.ToLower(dsn)
	switch {
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return DriverPostgres
	case strings.Contains(lower, "@tcp("):
		return DriverMySQL
	case strings.HasSuffix(lower, ".csv"):
		return DriverCSV
	default:
		return DriverSQLite
	}
}
