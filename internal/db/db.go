package db

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

const uniqueViolationCode = "23505"

var ErrNotFound = errors.New("record not found")
var ErrDuplicateKey = errors.New("duplicate key")

// PostgresDB is the process-wide connection handle. It is created unconnected;
// the first Connect (explicit or from a data method) opens it and migrates the
// registered models. A failed Connect leaves the handle unconnected so a later
// call tries again.
type PostgresDB struct {
	dialector gorm.Dialector
	timeout   time.Duration
	models    []any

	mu sync.Mutex
	db *gorm.DB
}

func NewPostgresDB(dsn string, timeout time.Duration, models ...any) *PostgresDB {
	return NewWithDialector(postgres.Open(dsn), timeout, models...)
}

func NewWithDialector(dialector gorm.Dialector, timeout time.Duration, models ...any) *PostgresDB {
	return &PostgresDB{
		dialector: dialector,
		timeout:   timeout,
		models:    models,
	}
}

// Connect opens the connection and migrates the models once. It is safe to call
// from concurrent requests.
func (f *PostgresDB) Connect(ctx context.Context) error {
	_, err := f.conn(ctx)
	return err
}

func (f *PostgresDB) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.db == nil {
		return nil
	}

	sqlDB, err := f.db.DB()
	if err != nil {
		return fmt.Errorf("get sql db conn: %w", err)
	}
	f.db = nil

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("close sql db conn: %w", err)
	}
	return nil
}

func (f *PostgresDB) conn(ctx context.Context) (*gorm.DB, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.db != nil {
		return f.db, nil
	}

	db, err := gorm.Open(f.dialector, &gorm.Config{
		Logger:               logger.Default.LogMode(logger.Warn),
		DisableAutomaticPing: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db conn: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if len(f.models) > 0 {
		if err := db.WithContext(ctx).AutoMigrate(f.models...); err != nil {
			return nil, fmt.Errorf("failed to migrate table: %w", err)
		}
	}

	f.db = db
	return f.db, nil
}

func (f *PostgresDB) Create(ctx context.Context, record any) error {
	db, err := f.conn(ctx)
	if err != nil {
		return err
	}

	if err := db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("insert to table: %w", mapError(err))
	}

	return nil
}

func (f *PostgresDB) GetOneBy(ctx context.Context, column string, value any, entity any) error {
	db, err := f.conn(ctx)
	if err != nil {
		return err
	}

	query := fmt.Sprintf("%s = ?", column)
	err = db.WithContext(ctx).Where(query, value).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %q: %w", column, err)
	}
	return nil
}

// UpdateOneBy loads the record matching column = value into entity with a row
// lock, calls mutate, and saves entity when mutate reports a change. All of it
// runs in one transaction; an error from mutate rolls back and is returned as is.
func (f *PostgresDB) UpdateOneBy(ctx context.Context, column string, value any, entity any, mutate func() (bool, error)) error {
	db, err := f.conn(ctx)
	if err != nil {
		return err
	}

	query := fmt.Sprintf("%s = ?", column)
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where(query, value).First(entity).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("getting record by %q: %w", column, err)
		}

		changed, err := mutate()
		if err != nil {
			return err
		}
		if !changed {
			return nil
		}

		if err := tx.Save(entity).Error; err != nil {
			return fmt.Errorf("update record: %w", mapError(err))
		}
		return nil
	})
}

func mapError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return fmt.Errorf("%w: %s", ErrDuplicateKey, pgErr.ConstraintName)
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateKey
	}
	return err
}
