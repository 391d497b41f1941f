package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/employee/model"
	"hotel/shared"
	gDto "hotel/shared/dto"
	gRepo "hotel/shared/repository"
)

type Employee interface {
	GetAll(ctx context.Context) ([]model.Employee, error)
	Get(ctx context.Context, id string) (model.Employee, error)
	Find(ctx context.Context, filter gDto.FilterGroup) ([]model.Employee, error)
	FindByJobTitle(ctx context.Context, jobTitle string) ([]model.Employee, error)
	Search(ctx context.Context, query string) ([]model.Employee, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Insert(ctx context.Context, employee model.Employee) (model.Employee, error)
	Update(ctx context.Context, id string, mutate func(*model.Employee) error) (model.Employee, error)
	Delete(ctx context.Context, id string) error
}

type repositoryImpl struct {
	gRepo.Store[model.Employee]
}

func New(cfg *config.Config, db *postgres.Connection, otel otel.Otel) Employee {
	return &repositoryImpl{
		Store: gRepo.New[model.Employee](cfg, db, otel, gRepo.Definition{
			Entity: model.EntityName,
			Table:  model.TableName,
			Prefix: model.IDPrefix,
		}),
	}
}

func (r *repositoryImpl) FindByJobTitle(ctx context.Context, jobTitle string) ([]model.Employee, error) {
	return r.Find(ctx, shared.FilterByField(model.FieldJobTitle, jobTitle)) //nolint:wrapcheck
}

// Search matches query case-insensitively against name, email and phone.
func (r *repositoryImpl) Search(ctx context.Context, query string) ([]model.Employee, error) {
	filters := []any{}
	for _, field := range []string{model.FieldFullName, model.FieldEmail, model.FieldPhone} {
		filters = append(filters, gDto.Filter{Field: field, Operator: gDto.FilterOperatorLike, Value: query})
	}

	return r.Find(ctx, gDto.FilterGroup{Operator: gDto.FilterGroupOperatorOr, Filters: filters}) //nolint:wrapcheck
}
