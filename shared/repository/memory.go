package repository

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"sync"

	"hotel/infras/otel"
	"hotel/shared/constant"
	"hotel/shared/dto"
)

// Memory keeps an entity table in process. Every read-modify-write runs under the write lock.
type Memory[T Keyed[T]] struct {
	mu    sync.RWMutex
	def   Definition
	otel  otel.Otel
	rows  []T
	index map[string]int
	next  int
}

func NewMemory[T Keyed[T]](otl otel.Otel, def Definition) *Memory[T] {
	return &Memory[T]{
		def:   def,
		otel:  otl,
		index: map[string]int{},
	}
}

func (repo *Memory[T]) scope(ctx context.Context, op string) (context.Context, otel.Scope) {
	return repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, repo.def.Entity, op))
}

func (repo *Memory[T]) GetAll(ctx context.Context) ([]T, error) {
	_, scope := repo.scope(ctx, "GetAll")
	defer scope.End()

	repo.mu.RLock()
	defer repo.mu.RUnlock()

	return slices.Clone(repo.rows), nil
}

func (repo *Memory[T]) Get(ctx context.Context, id string) (T, error) {
	_, scope := repo.scope(ctx, "Get")
	defer scope.End()

	repo.mu.RLock()
	defer repo.mu.RUnlock()

	pos, ok := repo.index[id]
	if !ok {
		var zero T

		return zero, ErrNotFound
	}

	return repo.rows[pos], nil
}

func (repo *Memory[T]) Find(ctx context.Context, filter dto.FilterGroup) ([]T, error) {
	_, scope := repo.scope(ctx, "Find")
	defer scope.End()

	repo.mu.RLock()
	defer repo.mu.RUnlock()

	models := []T{}

	for _, row := range repo.rows {
		if filter.Match(columnValues(row)) {
			models = append(models, row)
		}
	}

	return models, nil
}

func (repo *Memory[T]) Exist(ctx context.Context, filter dto.FilterGroup) (bool, error) {
	_, scope := repo.scope(ctx, "Exist")
	defer scope.End()

	if len(filter.Filters) == 0 {
		return false, errRequiredFilter
	}

	repo.mu.RLock()
	defer repo.mu.RUnlock()

	for _, row := range repo.rows {
		if filter.Match(columnValues(row)) {
			return true, nil
		}
	}

	return false, nil
}

func (repo *Memory[T]) Insert(ctx context.Context, model T) (T, error) {
	_, scope := repo.scope(ctx, "Insert")
	defer scope.End()

	repo.mu.Lock()
	defer repo.mu.Unlock()

	return repo.insert(model), nil
}

func (repo *Memory[T]) InsertUnique(ctx context.Context, model T, field string) (T, error) {
	_, scope := repo.scope(ctx, "InsertUnique")
	defer scope.End()

	scope.SetAttribute("unique.field", field)

	unique := dto.Filter{Field: field, Operator: dto.FilterOperatorEq, Value: columnValues(model)[field]}

	repo.mu.Lock()
	defer repo.mu.Unlock()

	for _, row := range repo.rows {
		if unique.Match(columnValues(row)) {
			var zero T

			return zero, ErrDuplicate
		}
	}

	return repo.insert(model), nil
}

// insert must be called with the write lock held.
func (repo *Memory[T]) insert(model T) T {
	repo.next++
	model = model.WithKey(repo.def.Prefix + strconv.Itoa(repo.next))

	repo.index[model.Key()] = len(repo.rows)
	repo.rows = append(repo.rows, model)

	return model
}

func (repo *Memory[T]) Update(ctx context.Context, id string, mutate func(*T) error) (T, error) {
	_, scope := repo.scope(ctx, "Update")
	defer scope.End()

	repo.mu.Lock()
	defer repo.mu.Unlock()

	var zero T

	pos, ok := repo.index[id]
	if !ok {
		return zero, ErrNotFound
	}

	model := repo.rows[pos]
	if err := mutate(&model); err != nil {
		return zero, err
	}

	model = model.WithKey(id)
	repo.rows[pos] = model

	return model, nil
}

func (repo *Memory[T]) Delete(ctx context.Context, id string) error {
	_, scope := repo.scope(ctx, "Delete")
	defer scope.End()

	repo.mu.Lock()
	defer repo.mu.Unlock()

	pos, ok := repo.index[id]
	if !ok {
		return ErrNotFound
	}

	repo.rows = slices.Delete(repo.rows, pos, pos+1)
	delete(repo.index, id)

	for i := pos; i < len(repo.rows); i++ {
		repo.index[repo.rows[i].Key()] = i
	}

	return nil
}
