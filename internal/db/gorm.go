package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type GormDB struct {
	db *gorm.DB
}

var _ Store = (*GormDB)(nil)

func NewPostgresDB(dsn string, logLevel logger.LogLevel) (*GormDB, error) {
	return NewGormDB(postgres.Open(dsn), logLevel)
}

func NewSQLiteDB(path string, logLevel logger.LogLevel) (*GormDB, error) {
	g, err := NewGormDB(sqlite.Open(path), logLevel)
	if err != nil {
		return nil, err
	}

	// sqlite ignores foreign keys unless asked per connection
	if err := g.db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return nil, fmt.Errorf("enable sqlite foreign keys: %w", err)
	}

	return g, nil
}

// NewGormDB opens a gorm connection over the given dialector. Driver errors are
// translated so unique violations surface as ErrDuplicateKey.
func NewGormDB(dialector gorm.Dialector, logLevel logger.LogLevel) (*GormDB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &GormDB{
		db: db,
	}, nil
}

// ParseLogLevel maps a textual level to gorm's logger level, defaulting to warn.
func ParseLogLevel(level string) logger.LogLevel {
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

func (f *GormDB) MigrateModels(models ...any) error {
	err := f.db.AutoMigrate(models...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

func (f *GormDB) Create(ctx context.Context, record any) error {
	err := f.db.WithContext(ctx).Create(record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("insert to table: %w", err)
	}

	return nil
}

func (f *GormDB) GetBy(ctx context.Context, column string, value any, entity any) error {
	query := fmt.Sprintf("%s = ?", column)
	err := f.db.WithContext(ctx).Where(query, value).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %q: %w", column, err)
	}
	return nil
}

// GetAllBy loads every row whose column matches value into entities. A slice value
// becomes an IN clause. An empty order keeps the database's order and omitted
// columns are left out of the select list.
func (f *GormDB) GetAllBy(ctx context.Context, column string, value any, entities any, order string, omit ...string) error {
	operator := "="
	if isSlice(value) {
		operator = "IN"
	}

	tx := f.db.WithContext(ctx).Where(fmt.Sprintf("%s %s ?", column, operator), value)
	if order != "" {
		tx = tx.Order(order)
	}
	if len(omit) > 0 {
		tx = tx.Omit(omit...)
	}

	if err := tx.Find(entities).Error; err != nil {
		return fmt.Errorf("getting records by %q: %w", column, err)
	}
	return nil
}

func (f *GormDB) DeleteBy(ctx context.Context, column string, value any, model any) (int64, error) {
	tx := f.db.WithContext(ctx).Where(fmt.Sprintf("%s = ?", column), value).Delete(model)
	if tx.Error != nil {
		return 0, fmt.Errorf("deleting records by %q: %w", column, tx.Error)
	}
	return tx.RowsAffected, nil
}

// Transaction runs fn inside a single database transaction. Any error returned by fn
// rolls back every write made through tx.
func (f *GormDB) Transaction(ctx context.Context, fn func(tx Store) error) error {
	return f.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormDB{db: tx})
	})
}

func isSlice(value any) bool {
	switch value.(type) {
	case []uint, []int, []int64, []string:
		return true
	default:
		return false
	}
}
