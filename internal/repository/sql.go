package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"biolink/internal/model"

	_ "github.com/lib/pq"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SQLStore keeps visits in the tracking_data table of a SQL database.
// The connection is opened lazily: a failed Init leaves the store degraded
// and the next Append or ListAll retries it.
type SQLStore struct {
	driver string
	dsn    string

	mu    sync.Mutex
	db    *gorm.DB
	ready bool
}

// NewSQLStore creates a store for driver (mysql, postgres or sqlite) at dsn
func NewSQLStore(driver, dsn string) *SQLStore {
	return &SQLStore{driver: driver, dsn: dsn}
}

// Init opens the database and creates the table if it does not exist
func (s *SQLStore) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ready {
		return nil
	}

	if s.db == nil {
		db, err := openDB(s.driver, s.dsn)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
		}
		s.db = db
	}

	if err := s.db.WithContext(ctx).AutoMigrate(&model.Visit{}); err != nil {
		return fmt.Errorf("%w: failed to migrate: %w", ErrStoreUnavailable, err)
	}

	s.ready = true
	log.Info().Str("driver", s.driver).Msg("Visit store initialized")
	return nil
}

// Append inserts one visit
func (s *SQLStore) Append(ctx context.Context, visit *model.Visit) error {
	db, err := s.conn(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrAppendFailed, err)
	}

	row := *visit
	row.ID = 0
	if err := db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("%w: %w", ErrAppendFailed, err)
	}
	return nil
}

// ListAll returns every visit ordered by insertion
func (s *SQLStore) ListAll(ctx context.Context) ([]model.Visit, error) {
	db, err := s.conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrListFailed, err)
	}

	visits := make([]model.Visit, 0)
	if err := db.WithContext(ctx).Order("id ASC").Find(&visits).Error; err != nil {
		return nil, fmt.Errorf("%w: %w", ErrListFailed, err)
	}
	return visits, nil
}

// Close closes the database connection
func (s *SQLStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *SQLStore) conn(ctx context.Context) (*gorm.DB, error) {
	if err := s.Init(ctx); err != nil {
		return nil, err
	}
	return s.db, nil
}

func openDB(driver, dsn string) (*gorm.DB, error) {
	dialector, err := dialectorFor(driver, dsn)
	if err != nil {
		return nil, err
	}

	var gormLogger logger.Interface
	if zerolog.GlobalLevel() > zerolog.DebugLevel {
		gormLogger = logger.Default.LogMode(logger.Silent)
	} else {
		gormLogger = logger.Default.LogMode(logger.Info)
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: gormLogger})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", driver, err)
	}

	// SQLite allows a single writer; one connection serializes concurrent appends.
	if driver == DriverSQLite {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	return db, nil
}

func dialectorFor(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case DriverMySQL:
		return mysql.Open(dsn), nil
	case DriverPostgres:
		conn, err := sql.Open("postgres", dsn)
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres: %w", err)
		}
		return postgres.New(postgres.Config{Conn: conn}), nil
	case DriverSQLite:
		if err := ensureParentDir(dsn); err != nil {
			return nil, err
		}
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported sql driver %q", driver)
	}
}

// ensureParentDir creates the directory holding a SQLite database file
func ensureParentDir(dsn string) error {
	if strings.HasPrefix(dsn, "file:") || strings.Contains(dsn, ":memory:") {
		return nil
	}

	dir := filepath.Dir(dsn)
	if dir == "." || dir == "" {
		return nil
	}

	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return errors.New("database path parent is not a directory")
		}
		return nil
	}

	if os.IsNotExist(err) {
		return os.MkdirAll(dir, 0o755)
	}

	return err
}
