package db

import (
	"context"
	"errors"
)

var (
	ErrNotFound     = errors.New("record not found")
	ErrDuplicateKey = errors.New("duplicate key")
)

// Store is the set of persistence primitives offered both on the root connection
// and on a transaction handed to Transaction's callback.
type Store interface {
	MigrateModels(models ...any) error
	Create(ctx context.Context, record any) error
	GetBy(ctx context.Context, column string, value any, entity any) error
	GetAllBy(ctx context.Context, column string, value any, entities any, order string, omit ...string) error
	DeleteBy(ctx context.Context, column string, value any, model any) (int64, error)
	Transaction(ctx context.Context, fn func(tx Store) error) error
}
