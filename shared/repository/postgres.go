package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/shared/constant"
	"hotel/shared/dto"
	"hotel/shared/logger"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const orderByInsertion = "ORDER BY LENGTH(id), id"

type execer interface {
	NamedExecContext(ctx context.Context, query string, arg any) (sql.Result, error)
}

// Postgres stores an entity table with sqlx. Ids come from the <table>_seq sequence.
type Postgres[T Keyed[T]] struct {
	db      *postgres.Connection
	otel    otel.Otel
	def     Definition
	columns []string
}

func NewPostgres[T Keyed[T]](db *postgres.Connection, otl otel.Otel, def Definition) *Postgres[T] {
	var zero T

	return &Postgres[T]{
		db:      db,
		otel:    otl,
		def:     def,
		columns: getColumns(reflectTypeOf(zero)),
	}
}

func (repo *Postgres[T]) scope(ctx context.Context, op string) (context.Context, otel.Scope) {
	return repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, repo.def.Entity, op))
}

func (repo *Postgres[T]) selectQuery(where string) string {
	parts := []string{"SELECT", strings.Join(repo.columns, ", "), "FROM", repo.def.Table}
	if where != "" {
		parts = append(parts, where)
	}

	return strings.Join(append(parts, orderByInsertion), " ")
}

func (repo *Postgres[T]) insertQuery() string {
	placeholders := make([]string, len(repo.columns))
	for i, col := range repo.columns {
		placeholders[i] = ":" + col
	}

	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", repo.def.Table, strings.Join(repo.columns, ", "), strings.Join(placeholders, ", "))
}

func (repo *Postgres[T]) updateQuery() string {
	sets := []string{}

	for _, col := range repo.columns {
		if col == primaryColumn {
			continue
		}

		sets = append(sets, fmt.Sprintf("%s = :%s", col, col))
	}

	return fmt.Sprintf("UPDATE %s SET %s WHERE %s = :%s", repo.def.Table, strings.Join(sets, ", "), primaryColumn, primaryColumn)
}

func (repo *Postgres[T]) sequence() string {
	return repo.def.Table + "_seq"
}

func (repo *Postgres[T]) BuildWhereClause(filter dto.FilterGroup) (string, map[string]any) {
	where, args := filter.GetWhereClause()

	if where == "" {
		return where, map[string]any{}
	}

	return fmt.Sprintf("WHERE %s", where), args
}

func (repo *Postgres[T]) GetAll(ctx context.Context) ([]T, error) {
	return repo.Find(ctx, dto.FilterGroup{})
}

func (repo *Postgres[T]) Get(ctx context.Context, id string) (T, error) {
	ctx, scope := repo.scope(ctx, "Get")
	defer scope.End()

	query := repo.selectQuery(fmt.Sprintf("WHERE %s = $1", primaryColumn))
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var model T

	err := repo.db.Read.GetContext(ctx, &model, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return model, ErrNotFound
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return model, fmt.Errorf("failed to get data (%s): %w", repo.def.Entity, err)
	}

	return model, nil
}

func (repo *Postgres[T]) Find(ctx context.Context, filter dto.FilterGroup) ([]T, error) {
	ctx, scope := repo.scope(ctx, "Find")
	defer scope.End()

	where, args := repo.BuildWhereClause(filter)
	query := repo.selectQuery(where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	models := []T{}

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return models, fmt.Errorf("failed to prepare statement (%s): %w", repo.def.Entity, err)
	}
	defer prepare.Close()

	if err = prepare.SelectContext(ctx, &models, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return models, fmt.Errorf("failed to get all data (%s): %w", repo.def.Entity, err)
	}

	return models, nil
}

func (repo *Postgres[T]) Exist(ctx context.Context, filter dto.FilterGroup) (bool, error) {
	ctx, scope := repo.scope(ctx, "Exist")
	defer scope.End()

	where, args := repo.BuildWhereClause(filter)
	if where == "" {
		return false, errRequiredFilter
	}

	query := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s %s)", repo.def.Table, where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	exist := false

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to check exist data (%s): %w", repo.def.Entity, err)
	}
	defer prepare.Close()

	if err = prepare.GetContext(ctx, &exist, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to check exist data (%s): %w", repo.def.Entity, err)
	}

	return exist, nil
}

func (repo *Postgres[T]) Insert(ctx context.Context, model T) (T, error) {
	ctx, scope := repo.scope(ctx, "Insert")
	defer scope.End()

	return repo.insert(ctx, scope, model)
}

// InsertUnique relies on the unique index over field to reject concurrent duplicates.
func (repo *Postgres[T]) InsertUnique(ctx context.Context, model T, field string) (T, error) {
	ctx, scope := repo.scope(ctx, "InsertUnique")
	defer scope.End()

	scope.SetAttribute("unique.field", field)

	return repo.insert(ctx, scope, model)
}

func (repo *Postgres[T]) insert(ctx context.Context, scope otel.Scope, model T) (T, error) {
	var (
		zero T
		next int64
	)

	if err := repo.db.Write.GetContext(ctx, &next, "SELECT nextval($1)", repo.sequence()); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return zero, fmt.Errorf("failed to allocate id (%s): %w", repo.def.Entity, err)
	}

	model = model.WithKey(repo.def.Prefix + strconv.FormatInt(next, 10))

	query := repo.insertQuery()
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err := repo.exec(ctx, repo.db.Write, query, model); err != nil {
		scope.TraceError(err)

		return zero, err
	}

	return model, nil
}

func (repo *Postgres[T]) Update(ctx context.Context, id string, mutate func(*T) error) (res T, err error) {
	ctx, scope := repo.scope(ctx, "Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var zero T

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		return zero, fmt.Errorf("failed to begin transaction (%s): %w", repo.def.Entity, err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var model T

	lock := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1 FOR UPDATE", strings.Join(repo.columns, ", "), repo.def.Table, primaryColumn)
	if err = tx.GetContext(ctx, &model, lock, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return zero, ErrNotFound
		}

		return zero, fmt.Errorf("failed to lock data (%s): %w", repo.def.Entity, err)
	}

	if err = mutate(&model); err != nil {
		return zero, err
	}

	model = model.WithKey(id)

	query := repo.updateQuery()
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err = repo.exec(ctx, tx, query, model); err != nil {
		return zero, err
	}

	if err = tx.Commit(); err != nil {
		return zero, fmt.Errorf("failed to commit transaction (%s): %w", repo.def.Entity, err)
	}

	return model, nil
}

func (repo *Postgres[T]) Delete(ctx context.Context, id string) error {
	ctx, scope := repo.scope(ctx, "Delete")
	defer scope.End()

	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", repo.def.Table, primaryColumn)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := repo.db.Write.ExecContext(ctx, query, id)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to delete data (%s): %w", repo.def.Entity, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows (%s): %w", repo.def.Entity, err)
	}

	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

func (repo *Postgres[T]) exec(ctx context.Context, exec execer, query string, model T) error {
	_, err := exec.NamedExecContext(ctx, query, model)
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation {
		return ErrDuplicate
	}

	logger.ErrorWithStack(err)

	return fmt.Errorf("failed to write data (%s): %w", repo.def.Entity, err)
}

var (
	_ execer = (*sqlx.Tx)(nil)
	_ execer = (*sqlx.DB)(nil)
)
