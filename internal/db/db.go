// Package db implements the persistence manager over GORM: per-entity query
// methods, scoped transactions and the translation of driver constraint
// violations into the domain error taxonomy.
package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cenkalti/backoff/v4"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	apperrors "github.com/vendira/commerce/internal/errors"
	"github.com/vendira/commerce/internal/models"
)

// Store executes queries against a single gorm handle. A Store produced by
// WithTransaction is bound to that transaction's connection.
type Store struct {
	db *gorm.DB
}

// Config holds the connection parameters.
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// Open connects to postgres, retrying with exponential backoff while the
// database comes up, then migrates the schema.
func Open(cfg *Config) (*Store, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode)

	var gdb *gorm.DB
	connect := func() error {
		var err error
		gdb, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
		return err
	}
	if err := backoff.Retry(connect, backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 5)); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := Migrate(gdb); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return New(gdb), nil
}

// New wraps an existing gorm handle. Used by Open and by tests running on
// in-memory SQLite.
func New(gdb *gorm.DB) *Store {
	return &Store{db: gdb}
}

// Migrate creates or updates the schema for every entity.
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&models.Address{},
		&models.Company{},
		&models.Customer{},
		&models.Product{},
		&models.Sale{},
		&models.SaleItem{},
		&models.User{},
		&models.CompanyUser{},
	)
}

// WithTransaction runs fn with a Store bound to one transaction, committing
// on a nil return and rolling back on any error. The connection is released
// on every exit path. Aggregate operations must pass the yielded Store to
// every sub-step instead of opening their own transactions.
func (s *Store) WithTransaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx})
	})
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// ListOptions paginates list queries.
type ListOptions struct {
	Limit int
	Page  int
}

const defaultLimit = 10

// limitOffset resolves the effective limit and offset, applying defaults.
func (o ListOptions) limitOffset() (int, int) {
	limit := o.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	page := o.Page
	if page <= 0 {
		page = 1
	}
	return limit, limit * (page - 1)
}

// translateError maps driver and ORM failures onto the taxonomy. Unique
// violations surface as DUPLICATE, missing foreign rows as INVALID_REQUEST.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	var domainErr *apperrors.Error
	if errors.As(err, &domainErr) {
		return err
	}
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperrors.Duplicate("resource already exists")
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return apperrors.InvalidRequest("referenced resource does not exist")
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperrors.NotFound("resource not found")
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"),
		strings.Contains(msg, "duplicate key value violates unique constraint"):
		return apperrors.Duplicate("resource already exists")
	case strings.Contains(msg, "FOREIGN KEY constraint failed"),
		strings.Contains(msg, "violates foreign key constraint"):
		return apperrors.InvalidRequest("referenced resource does not exist")
	}
	return err
}
