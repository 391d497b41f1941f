package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"time"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/bill/model"
	"hotel/shared"
	gDto "hotel/shared/dto"
	gRepo "hotel/shared/repository"
)

type Bill interface {
	GetAll(ctx context.Context) ([]model.Bill, error)
	Get(ctx context.Context, id string) (model.Bill, error)
	Find(ctx context.Context, filter gDto.FilterGroup) ([]model.Bill, error)
	FindByCustomer(ctx context.Context, customerID string) ([]model.Bill, error)
	FindIssuedBetween(ctx context.Context, start, end time.Time) ([]model.Bill, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Insert(ctx context.Context, bill model.Bill) (model.Bill, error)
	Update(ctx context.Context, id string, mutate func(*model.Bill) error) (model.Bill, error)
	Delete(ctx context.Context, id string) error
}

type repositoryImpl struct {
	gRepo.Store[model.Bill]
}

func New(cfg *config.Config, db *postgres.Connection, otel otel.Otel) Bill {
	return &repositoryImpl{
		Store: gRepo.New[model.Bill](cfg, db, otel, gRepo.Definition{
			Entity: model.EntityName,
			Table:  model.TableName,
			Prefix: model.IDPrefix,
		}),
	}
}

func (r *repositoryImpl) FindByCustomer(ctx context.Context, customerID string) ([]model.Bill, error) {
	return r.Find(ctx, shared.FilterByField(model.FieldCustomerID, customerID)) //nolint:wrapcheck
}

// FindIssuedBetween returns bills whose issue date lies in [start, end].
func (r *repositoryImpl) FindIssuedBetween(ctx context.Context, start, end time.Time) ([]model.Bill, error) {
	return r.Find(ctx, gDto.FilterGroup{ //nolint:wrapcheck
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldIssueDate, ArgName: "issue_from", Operator: gDto.FilterOperatorGreaterEq, Value: start},
			gDto.Filter{Field: model.FieldIssueDate, ArgName: "issue_to", Operator: gDto.FilterOperatorLessEq, Value: end},
		},
	})
}
