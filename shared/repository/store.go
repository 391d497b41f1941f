package repository

import (
	"context"
	"errors"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/shared/dto"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")

	errRequiredFilter = errors.New("required filter")
)

// Keyed is implemented by value-typed models that carry a string primary key.
type Keyed[T any] interface {
	Key() string
	WithKey(id string) T
}

// Definition names the table backing an entity and the prefix of its generated ids.
type Definition struct {
	Entity string
	Table  string
	Prefix string
}

// Store is one logical table of entities. Records come back in insertion order.
type Store[T Keyed[T]] interface {
	GetAll(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id string) (T, error)
	Find(ctx context.Context, filter dto.FilterGroup) ([]T, error)
	Exist(ctx context.Context, filter dto.FilterGroup) (bool, error)
	Insert(ctx context.Context, model T) (T, error)
	InsertUnique(ctx context.Context, model T, field string) (T, error)
	Update(ctx context.Context, id string, mutate func(*T) error) (T, error)
	Delete(ctx context.Context, id string) error
}

// New picks the storage driver configured in STORE_DRIVER.
func New[T Keyed[T]](cfg *config.Config, db *postgres.Connection, otl otel.Otel, def Definition) Store[T] {
	if cfg.Store.Driver == config.StoreDriverPostgres && db != nil {
		return NewPostgres[T](db, otl, def)
	}

	return NewMemory[T](otl, def)
}
