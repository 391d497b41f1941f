package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/customer/model"
	gDto "hotel/shared/dto"
	gRepo "hotel/shared/repository"
)

type Customer interface {
	GetAll(ctx context.Context) ([]model.Customer, error)
	Get(ctx context.Context, id string) (model.Customer, error)
	Find(ctx context.Context, filter gDto.FilterGroup) ([]model.Customer, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Insert(ctx context.Context, customer model.Customer) (model.Customer, error)
	Update(ctx context.Context, id string, mutate func(*model.Customer) error) (model.Customer, error)
	Delete(ctx context.Context, id string) error
}

type repositoryImpl struct {
	gRepo.Store[model.Customer]
}

func New(cfg *config.Config, db *postgres.Connection, otel otel.Otel) Customer {
	return &repositoryImpl{
		Store: gRepo.New[model.Customer](cfg, db, otel, gRepo.Definition{
			Entity: model.EntityName,
			Table:  model.TableName,
			Prefix: model.IDPrefix,
		}),
	}
}
